package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"

	"darkai/internal/config"
)

func TestNew_JSONFormat(t *testing.T) {
	Convey("json 格式输出结构化日志", t, func() {
		var buf bytes.Buffer
		l := New(&buf, "json")
		l.Info().Str("endpoint", "veo3").Msg("forwarded")

		var entry map[string]interface{}
		So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
		So(entry["message"], ShouldEqual, "forwarded")
		So(entry["endpoint"], ShouldEqual, "veo3")
		So(entry, ShouldContainKey, "time")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_FileOutput(t *testing.T) {
	Convey("file 输出需要 file_path", t, func() {
		err := Init(&config.LogConfig{Level: "info", Format: "json", Output: "file"})
		So(err, ShouldNotBeNil)

		path := filepath.Join(t.TempDir(), "darkai.log")
		err = Init(&config.LogConfig{Level: "info", Format: "json", Output: "file", FilePath: path})
		So(err, ShouldBeNil)
	})
}
