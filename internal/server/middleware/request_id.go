package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"darkai/internal/pkg/id"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// RequestID 请求ID中间件
// 调用方传入合法 UUID 格式的 X-Request-ID 时沿用，否则生成新的；
// 同时把带 request_id 字段的 logger 注入到请求 context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || !id.IsValid(requestID) {
			requestID = id.New()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		l := log.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))

		c.Next()
	}
}
