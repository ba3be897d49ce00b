package generation

import (
	"darkai/internal/service"
)

// Handler 生成模块处理器
// /generate 与 /edit-img 都通过这个结构体访问 Service
type Handler struct {
	generationService service.GenerationService
}

// NewHandler 创建生成模块处理器
func NewHandler(generationService service.GenerationService) *Handler {
	return &Handler{
		generationService: generationService,
	}
}
