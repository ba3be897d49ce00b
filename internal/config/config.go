package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// 上游接口默认值
const (
	DefaultVideoURL     = "https://sii3.moayman.top/api/veo3.php"   // 文生视频 / 图生视频
	DefaultImageEditURL = "https://sii3.moayman.top/api/gpt-img.php" // 图片编辑
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	DefaultTimeout      = 60 * time.Second
)

// Config 应用配置根结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Routes   RoutesConfig   `mapstructure:"routes"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// UpstreamConfig 上游生成接口配置
type UpstreamConfig struct {
	VideoURL     string        `mapstructure:"video_url"`      // 视频生成接口
	ImageEditURL string        `mapstructure:"image_edit_url"` // 图片编辑接口
	UserAgent    string        `mapstructure:"user_agent"`     // 固定 User-Agent
	Timeout      time.Duration `mapstructure:"timeout"`        // 单次请求超时
	ParseJSON    bool          `mapstructure:"parse_json"`     // false 时原样透传文本
}

// RoutesConfig 路由开关
type RoutesConfig struct {
	EditImage bool `mapstructure:"edit_image"` // 是否暴露 /edit-img
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			Mode:         "release",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 90 * time.Second,
		},
		Upstream: UpstreamConfig{
			VideoURL:     DefaultVideoURL,
			ImageEditURL: DefaultImageEditURL,
			UserAgent:    DefaultUserAgent,
			Timeout:      DefaultTimeout,
			ParseJSON:    true,
		},
		Routes: RoutesConfig{
			EditImage: true,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			Output:     "stdout",
			TimeFormat: "RFC3339",
		},
	}
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	return c.Upstream.Validate()
}

// Validate 验证上游配置
func (u *UpstreamConfig) Validate() error {
	if err := validateHTTPURL("upstream.video_url", u.VideoURL); err != nil {
		return err
	}
	if err := validateHTTPURL("upstream.image_edit_url", u.ImageEditURL); err != nil {
		return err
	}
	if u.Timeout <= 0 {
		return errors.New("upstream.timeout must be positive")
	}
	return nil
}

func validateHTTPURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}
