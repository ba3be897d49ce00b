package service

import (
	"context"

	"darkai/internal/config"
	"darkai/internal/pkg/forward"
)

// Forwarder 上游转发能力，*forward.Client 实现了该接口
type Forwarder interface {
	Forward(ctx context.Context, method, endpointURL string, fields forward.Fields) forward.Result
}

// GenerationService 生成服务接口
// 定义视频生成与图片编辑两种能力，均只做参数整理与转发
type GenerationService interface {
	// Generate 文生视频 / 图生视频
	// Link 为空时不会向上游传递 link 参数
	Generate(ctx context.Context, req *GenerateRequest) forward.Result

	// EditImage 图片编辑，Text 与 Link 都需要提供
	EditImage(ctx context.Context, req *EditImageRequest) forward.Result
}

// GenerateRequest 视频生成请求
type GenerateRequest struct {
	Method string // GET / POST，决定上游参数编码方式
	Text   string
	Link   string
}

// EditImageRequest 图片编辑请求
type EditImageRequest struct {
	Method string
	Text   string
	Link   string
}

// generationService 生成服务实现
type generationService struct {
	forwarder    Forwarder
	videoURL     string
	imageEditURL string
}

// NewGenerationService 创建生成服务
func NewGenerationService(forwarder Forwarder, cfg *config.UpstreamConfig) GenerationService {
	return &generationService{
		forwarder:    forwarder,
		videoURL:     cfg.VideoURL,
		imageEditURL: cfg.ImageEditURL,
	}
}

func (s *generationService) Generate(ctx context.Context, req *GenerateRequest) forward.Result {
	fields := forward.Fields{"text": req.Text}
	if req.Link != "" {
		fields["link"] = req.Link
	}
	return s.forwarder.Forward(ctx, req.Method, s.videoURL, fields)
}

func (s *generationService) EditImage(ctx context.Context, req *EditImageRequest) forward.Result {
	fields := forward.Fields{
		"text": req.Text,
		"link": req.Link,
	}
	return s.forwarder.Forward(ctx, req.Method, s.imageEditURL, fields)
}
