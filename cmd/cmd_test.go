package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"darkai/internal/config"
)

func newTestViper() (*viper.Viper, *pflag.FlagSet) {
	v := viper.New()
	setDefaults(v)
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	bindServeFlags(flags, v)
	return v, flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	Convey("未提供配置时使用默认值", t, func() {
		v, _ := newTestViper()
		cfg, err := loadConfig(v)
		So(err, ShouldBeNil)
		So(cfg, ShouldResemble, config.Default())
		So(cfg.Validate(), ShouldBeNil)
	})
}

func TestLoadConfig_File(t *testing.T) {
	Convey("配置文件覆盖默认值", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
server:
  port: 9090
upstream:
  video_url: http://127.0.0.1:8188/veo3.php
  timeout: 15s
  parse_json: false
routes:
  edit_image: false
`
		So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)

		v, _ := newTestViper()
		v.SetConfigFile(path)
		So(v.ReadInConfig(), ShouldBeNil)

		cfg, err := loadConfig(v)
		So(err, ShouldBeNil)
		So(cfg.Server.Port, ShouldEqual, 9090)
		So(cfg.Upstream.VideoURL, ShouldEqual, "http://127.0.0.1:8188/veo3.php")
		So(cfg.Upstream.ImageEditURL, ShouldEqual, config.DefaultImageEditURL)
		So(cfg.Upstream.Timeout, ShouldEqual, 15*time.Second)
		So(cfg.Upstream.ParseJSON, ShouldBeFalse)
		So(cfg.Routes.EditImage, ShouldBeFalse)
	})
}

func TestApplyServeFlags(t *testing.T) {
	Convey("serve 参数覆盖上游配置", t, func() {
		v, flags := newTestViper()

		Convey("未传参数时保持默认", func() {
			So(flags.Parse([]string{}), ShouldBeNil)
			applyServeFlags(flags, v)
			cfg, err := loadConfig(v)
			So(err, ShouldBeNil)
			So(cfg.Upstream, ShouldResemble, config.Default().Upstream)
			So(cfg.Routes.EditImage, ShouldBeTrue)
		})

		Convey("视频单接口原样透传部署", func() {
			So(flags.Parse([]string{
				"--port", "8081",
				"--video-url", "http://upstream.internal/veo3.php",
				"--upstream-timeout", "30s",
				"--raw-text",
				"--no-edit-image",
			}), ShouldBeNil)
			applyServeFlags(flags, v)

			cfg, err := loadConfig(v)
			So(err, ShouldBeNil)
			So(cfg.Server.Port, ShouldEqual, 8081)
			So(cfg.Upstream.VideoURL, ShouldEqual, "http://upstream.internal/veo3.php")
			So(cfg.Upstream.Timeout, ShouldEqual, 30*time.Second)
			So(cfg.Upstream.ParseJSON, ShouldBeFalse)
			So(cfg.Routes.EditImage, ShouldBeFalse)
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}
