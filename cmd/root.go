package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"darkai/internal/config"
	"darkai/internal/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "darkai",
	Short: "DarkAI Unified API - video generation and image editing gateway",
	Long: `DarkAI Unified API forwards text-to-video, image-to-video and image editing
requests to the upstream generation service and returns a uniform JSON envelope.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./configs/config.yaml)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.darkai")
	}

	// 环境变量设置
	viper.SetEnvPrefix("DARKAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 设置默认值
	setDefaults(viper.GetViper())

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Fprintln(os.Stderr, "No config file found, using defaults and environment variables")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
			os.Exit(1)
		}
	}

	// 反序列化到结构体
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

// setDefaults 默认值与 config.Default 保持一致
func setDefaults(v *viper.Viper) {
	d := config.Default()

	// Server
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)

	// Upstream
	v.SetDefault("upstream.video_url", d.Upstream.VideoURL)
	v.SetDefault("upstream.image_edit_url", d.Upstream.ImageEditURL)
	v.SetDefault("upstream.user_agent", d.Upstream.UserAgent)
	v.SetDefault("upstream.timeout", d.Upstream.Timeout)
	v.SetDefault("upstream.parse_json", d.Upstream.ParseJSON)

	// Routes
	v.SetDefault("routes.edit_image", d.Routes.EditImage)

	// Log
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.time_format", d.Log.TimeFormat)
}

// loadConfig 将 viper 中的配置反序列化为 Config
func loadConfig(v *viper.Viper) (*config.Config, error) {
	c := &config.Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
