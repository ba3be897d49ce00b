package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"darkai/internal/pkg/id"
	"darkai/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecovery(t *testing.T) {
	Convey("Recovery 将 panic 转换为 500 响应", t, func() {
		r := gin.New()
		r.Use(Recovery())
		r.GET("/panic", func(c *gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldEqualJSON, `{"success":false,"error":"Internal Server Error"}`)
	})
}

func TestRequestID(t *testing.T) {
	Convey("RequestID 注入请求ID与带字段的 logger", t, func() {
		var seen string
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) {
			seen = c.GetString("request_id")
			l := logger.FromContext(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"logger_level": l.GetLevel().String()})
		})

		Convey("无请求头时生成新ID", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			So(id.IsValid(seen), ShouldBeTrue)
			So(w.Header().Get(RequestIDHeader), ShouldEqual, seen)

			var body map[string]string
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body["logger_level"], ShouldNotEqual, "disabled")
		})

		Convey("非法请求头被替换", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, "\n injected")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			So(seen, ShouldNotEqual, "\n injected")
			So(id.IsValid(w.Header().Get(RequestIDHeader)), ShouldBeTrue)
		})
	})
}
