package generation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "darkai/internal/pkg/http"
	"darkai/internal/service"
)

// GenerateParams 视频生成参数
type GenerateParams struct {
	Text string `form:"text" binding:"required"` // 视频描述（必填）
	Link string `form:"link"`                    // 参考图片URL（可选，图生视频）
}

// Generate 生成视频
// @Summary      生成视频
// @Description  文生视频；提供 link 时为图生视频。GET 读取查询参数，POST 读取表单
// @Tags         视频
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        text  query     string  true   "视频描述"
// @Param        link  query     string  false  "参考图片URL"
// @Success      200   {object}  Envelope  "{\"success\": true, \"data\": ...} 或 {\"success\": false, \"error\": \"...\"}"
// @Failure      422   {object}  Envelope  "缺少必填参数"
// @Router       /generate [get]
// @Router       /generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var params GenerateParams
	if err := bindParams(c, &params); err != nil {
		abortInvalidParams(c, err)
		return
	}

	result := h.generationService.Generate(c.Request.Context(), &service.GenerateRequest{
		Method: c.Request.Method,
		Text:   params.Text,
		Link:   params.Link,
	})

	c.JSON(http.StatusOK, httputil.FromResult(result))
}
