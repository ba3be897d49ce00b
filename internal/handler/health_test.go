package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"darkai/internal/config"
)

func readyStatus(upstream *config.UpstreamConfig) (int, map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ready", NewHealthHandler(upstream).Ready)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestHealthHandler_Ready(t *testing.T) {
	Convey("/ready 反映上游配置", t, func() {
		upstream := config.Default().Upstream

		Convey("配置有效时就绪", func() {
			code, body := readyStatus(&upstream)
			So(code, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "ready")
			So(body["video_url"], ShouldEqual, config.DefaultVideoURL)
			So(body["image_edit_url"], ShouldEqual, config.DefaultImageEditURL)
		})

		Convey("上游地址无效时返回 503", func() {
			upstream.ImageEditURL = "ftp://files.example.com/edit"
			code, body := readyStatus(&upstream)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(body["status"], ShouldEqual, "not ready")
			So(body["error"], ShouldContainSubstring, "upstream.image_edit_url")
		})

		Convey("超时为 0 时返回 503", func() {
			upstream.Timeout = 0
			code, body := readyStatus(&upstream)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(body["error"], ShouldEqual, "upstream.timeout must be positive")
		})

		Convey("未配置上游", func() {
			code, body := readyStatus(nil)
			So(code, ShouldEqual, http.StatusServiceUnavailable)
			So(body["error"], ShouldEqual, "upstream not configured")
		})
	})

	Convey("/health 始终返回 ok", t, func() {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/health", NewHealthHandler(nil).Health)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldEqualJSON, `{"status":"ok"}`)
	})
}
