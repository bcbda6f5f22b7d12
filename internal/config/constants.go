package config

const (
	// DefaultConfigPath is the config file looked up in the working directory.
	// DefaultConfigPath 是在工作目录中查找的配置文件。
	DefaultConfigPath = "wallfetch.yaml"

	// DefaultInput is the DevTools "Copy all as fetch" export.
	// DefaultInput 是 DevTools "Copy all as fetch" 导出的文件。
	DefaultInput = "new_chromecast_photos_as_fetch.txt"

	// DefaultOutput receives the generated URL records.
	// DefaultOutput 接收生成的 URL 记录。
	DefaultOutput = "urls.txt"

	// ChromecastAspect is the aspect ratio of the Chromecast backgrounds (16:9).
	ChromecastAspect = "1.78"
)
