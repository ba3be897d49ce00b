package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"darkai/internal/config"
)

// HealthHandler 存活与就绪检查
type HealthHandler struct {
	upstream *config.UpstreamConfig
}

// NewHealthHandler 创建健康检查处理器，upstream 为当前生效的上游配置
func NewHealthHandler(upstream *config.UpstreamConfig) *HealthHandler {
	return &HealthHandler{upstream: upstream}
}

// Health 存活检查
// @Summary      存活检查
// @Tags         系统
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready 就绪检查
// 上游配置无效时返回 503，不会请求上游
// @Summary      就绪检查
// @Tags         系统
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.upstream == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "upstream not configured",
		})
		return
	}
	if err := h.upstream.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ready",
		"video_url":      h.upstream.VideoURL,
		"image_edit_url": h.upstream.ImageEditURL,
	})
}
