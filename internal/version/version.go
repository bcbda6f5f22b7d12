package version

import "runtime/debug"

// Version is overridden at build time:
// go build -ldflags "-X github.com/livp123/wallfetch/internal/version.Version=v1.0.0"
var Version = "dev"

// String returns Version followed by the short VCS revision when the binary
// was built from a checkout.
// String 返回版本号，如果二进制是从代码仓库构建的，则附带简短的提交哈希。
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	return format(Version, info.Settings)
}

func format(v string, settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return v
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return v + " (" + rev + ")"
}
