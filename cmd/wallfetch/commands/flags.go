package commands

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/output"
)

// convertOptions holds the command line overrides for a conversion.
// convertOptions 保存转换时的命令行覆盖项。
type convertOptions struct {
	input       string
	output      string
	format      string
	from        string
	to          string
	filter      string
	aspect      string
	metricsFile string
}

// bindConvertFlags registers the conversion flags on fs. Defaults are empty so
// that only flags the user actually set override the config file.
// bindConvertFlags 在 fs 上注册转换参数。默认值为空，只有用户显式设置的参数才会覆盖配置文件。
func bindConvertFlags(fs *pflag.FlagSet, o *convertOptions) {
	fs.StringVarP(&o.input, "input", "i", "", "Capture file exported with DevTools \"Copy all as fetch\" (default: "+config.DefaultInput+")")
	fs.StringVarP(&o.output, "output", "o", "", "File to write the URL records to (default: "+config.DefaultOutput+")")
	fs.StringVarP(&o.format, "format", "f", "", "Output format: "+strings.Join(output.Formats(), ", "))
	fs.StringVar(&o.from, "from", "", "Resolution token to replace")
	fs.StringVar(&o.to, "to", "", "Replacement resolution token")
	fs.StringVar(&o.filter, "filter", "", `Expression selecting URLs to keep, e.g. 'ext in ["jpg", "png"]'`)
	fs.StringVar(&o.aspect, "aspect", "", "Aspect ratio written as \"asp\" by the json and yaml formats")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
}

// apply copies every flag that was set on fs into cfg.
// apply 将 fs 上已设置的参数复制到 cfg。
func (o *convertOptions) apply(fs *pflag.FlagSet, cfg *config.Config) {
	overrides := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"input", o.input, &cfg.Input},
		{"output", o.output, &cfg.Output},
		{"format", o.format, &cfg.Format},
		{"from", o.from, &cfg.Token.From},
		{"to", o.to, &cfg.Token.To},
		{"filter", o.filter, &cfg.Filter},
		{"aspect", o.aspect, &cfg.Aspect},
		{"metrics-file", o.metricsFile, &cfg.MetricsFile},
	}
	for _, ov := range overrides {
		if fs.Changed(ov.flag) {
			*ov.dst = ov.value
		}
	}
}
