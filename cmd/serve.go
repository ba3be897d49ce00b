package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"darkai/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the DarkAI API server with the specified configuration.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	bindServeFlags(serveCmd.Flags(), viper.GetViper())
}

// bindServeFlags 注册 serve 命令参数并绑定到 viper
func bindServeFlags(flags *pflag.FlagSet, v *viper.Viper) {
	// Server flags
	flags.StringP("host", "H", "0.0.0.0", "server host")
	flags.IntP("port", "p", 8000, "server port")
	flags.String("mode", "release", "server mode (debug/release/test)")

	// Upstream flags
	flags.String("video-url", "", "video generation endpoint (default: built-in upstream)")
	flags.String("image-edit-url", "", "image editing endpoint (default: built-in upstream)")
	flags.Duration("upstream-timeout", 0, "upstream request timeout (default: 60s)")
	flags.Bool("raw-text", false, "pass upstream responses through as text without JSON decoding")
	flags.Bool("no-edit-image", false, "disable the /edit-img route")

	// Log flags
	flags.String("log-level", "info", "log level (trace/debug/info/warn/error/fatal)")
	flags.String("log-format", "console", "log format (json/console)")

	// Bind flags to viper
	_ = v.BindPFlag("server.host", flags.Lookup("host"))
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("server.mode", flags.Lookup("mode"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
}

// applyServeFlags 只有显式传入的上游参数才覆盖配置文件
func applyServeFlags(flags *pflag.FlagSet, v *viper.Viper) {
	if f := flags.Lookup("video-url"); f != nil && f.Changed {
		v.Set("upstream.video_url", f.Value.String())
	}
	if f := flags.Lookup("image-edit-url"); f != nil && f.Changed {
		v.Set("upstream.image_edit_url", f.Value.String())
	}
	if f := flags.Lookup("upstream-timeout"); f != nil && f.Changed {
		v.Set("upstream.timeout", f.Value.String())
	}
	if raw, err := flags.GetBool("raw-text"); err == nil && raw {
		v.Set("upstream.parse_json", false)
	}
	if noEdit, err := flags.GetBool("no-edit-image"); err == nil && noEdit {
		v.Set("routes.edit_image", false)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeFlags(cmd.Flags(), viper.GetViper())

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Create server
	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().
		Str("addr", addr).
		Str("mode", cfg.Server.Mode).
		Bool("edit_image", cfg.Routes.EditImage).
		Msg("starting server")

	return srv.Run(ctx, addr)
}
