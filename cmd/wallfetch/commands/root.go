package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/livp123/wallfetch/internal/config"
	"github.com/livp123/wallfetch/internal/utils/logger"
)

// NewRootCmd builds the wallfetch command tree. Running the root command
// without a subcommand performs a conversion.
// NewRootCmd 构建 wallfetch 命令树。不带子命令运行根命令即执行转换。
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		opts       convertOptions
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "wallfetch",
		Short: "Turn a DevTools fetch capture into a wallpaper URL list",
		// Short: 将 DevTools fetch 抓包转换为壁纸 URL 列表
		Long: `wallfetch reads a network log exported with DevTools "Copy all as fetch",
extracts every fetch("<url>") target in order, upgrades the thumbnail resolution
token (s240-w240-h135) to display size (s1920-w1920-h1080) and writes the list
of URLs for the screensaver asset store.
wallfetch 读取 DevTools "Copy all as fetch" 导出的网络日志，按顺序提取所有 fetch("<url>")，
将缩略图分辨率标记替换为显示分辨率，并写出供屏保资源库使用的 URL 列表。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration to get logging settings
			// 加载配置以获取日志设置
			var err error
			if cmd.Flags().Changed("config") {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.LoadOrDefault(config.DefaultConfigPath)
			}
			if err != nil {
				logger.Init(logger.DefaultLoggingConfig())
				return err
			}
			logger.Init(cfg.Logging)

			// Inject logger into context
			// 将 Logger 注入 Context
			cmd.SetContext(logger.WithContext(cmd.Context(), logger.Get(nil)))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, &opts, cfg)
		},
	}

	// Config file path
	// 配置文件路径
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to configuration file (optional)")
	bindConvertFlags(rootCmd.Flags(), &opts)

	rootCmd.AddCommand(newConvertCmd(&cfg))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.CompletionOptions.DisableDescriptions = true
	return rootCmd
}

// useConsoleLogger replaces the config-driven setup for commands that must
// work without a readable config file.
func useConsoleLogger(cmd *cobra.Command, args []string) {
	logger.Init(logger.DefaultLoggingConfig())
	cmd.SetContext(logger.WithContext(cmd.Context(), logger.Get(nil)))
}

// Execute runs the root command and exits non-zero on failure.
// Execute 运行根命令，失败时以非零状态退出。
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
