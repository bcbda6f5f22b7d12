package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/wallfetch/internal/app"
	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/utils/fmtutil"
)

func newConvertCmd(cfg **config.Config) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a fetch capture into URL records",
		// Short: 将 fetch 抓包转换为 URL 记录
		Long: `Convert a fetch capture into URL records.
将 fetch 抓包转换为 URL 记录。

Examples:
  wallfetch convert
  wallfetch convert -i new_chromecast_photos_as_fetch.txt -o urls.txt
  wallfetch convert -f json --aspect 1.78 --filter 'host endsWith "googleusercontent.com"'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, &opts, *cfg)
		},
	}
	bindConvertFlags(cmd.Flags(), &opts)
	return cmd
}

// runConvert merges flag overrides into cfg and runs the conversion.
// runConvert 将命令行覆盖合并到配置中并执行转换。
func runConvert(cmd *cobra.Command, opts *convertOptions, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	opts.apply(cmd.Flags(), cfg)

	res, err := app.Convert(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	size := "?"
	if info, err := os.Stat(res.Output); err == nil {
		size = fmtutil.FormatBytes(info.Size())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s of %s captured URLs (%s rewritten) to %s (%s) in %s\n",
		fmtutil.FormatCount(res.Written), fmtutil.FormatCount(res.Captured), fmtutil.FormatCount(res.Rewritten),
		res.Output, size, fmtutil.FormatElapsed(res.Duration))
	return nil
}
