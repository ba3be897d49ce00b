package generation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httputil "darkai/internal/pkg/http"
	"darkai/internal/service"
)

// EditImageParams 图片编辑参数
type EditImageParams struct {
	Text string `form:"text" binding:"required"` // 编辑提示词（必填）
	Link string `form:"link" binding:"required"` // 待编辑图片URL（必填）
}

// EditImage 编辑图片
// @Summary      编辑图片
// @Description  根据提示词编辑 link 指向的图片。GET 读取查询参数，POST 读取表单
// @Tags         图片
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        text  query     string  true  "编辑提示词"
// @Param        link  query     string  true  "待编辑图片URL"
// @Success      200   {object}  Envelope  "{\"success\": true, \"data\": ...} 或 {\"success\": false, \"error\": \"...\"}"
// @Failure      422   {object}  Envelope  "缺少必填参数"
// @Router       /edit-img [get]
// @Router       /edit-img [post]
func (h *Handler) EditImage(c *gin.Context) {
	var params EditImageParams
	if err := bindParams(c, &params); err != nil {
		abortInvalidParams(c, err)
		return
	}

	result := h.generationService.EditImage(c.Request.Context(), &service.EditImageRequest{
		Method: c.Request.Method,
		Text:   params.Text,
		Link:   params.Link,
	})

	c.JSON(http.StatusOK, httputil.FromResult(result))
}
