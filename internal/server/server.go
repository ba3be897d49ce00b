package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "darkai/docs"
	"darkai/internal/config"
	"darkai/internal/handler"
	"darkai/internal/handler/generation"
	"darkai/internal/pkg/forward"
	httputil "darkai/internal/pkg/http"
	"darkai/internal/server/middleware"
	"darkai/internal/service"
)

// shutdownTimeout 优雅关闭等待时间，需覆盖一次上游调用
const shutdownTimeout = 65 * time.Second

// Server HTTP 服务器
type Server struct {
	cfg           *config.Config
	engine        *gin.Engine
	generationSvc service.GenerationService
}

// New 创建服务器实例
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	// 上游客户端启动时创建一次，之后只读
	forwarder := forward.NewClient(&cfg.Upstream)
	log.Info().
		Str("video_url", cfg.Upstream.VideoURL).
		Str("image_edit_url", cfg.Upstream.ImageEditURL).
		Dur("timeout", cfg.Upstream.Timeout).
		Bool("parse_json", cfg.Upstream.ParseJSON).
		Msg("initialized upstream client")

	srv := &Server{
		cfg:           cfg,
		engine:        engine,
		generationSvc: service.NewGenerationService(forwarder, &cfg.Upstream),
	}

	// 设置路由
	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.NewErrorEnvelope("Not Found"))
	})
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.NewErrorEnvelope("Method Not Allowed"))
	})

	// 健康检查
	healthHandler := handler.NewHealthHandler(&s.cfg.Upstream)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	genHdl := generation.NewHandler(s.generationSvc)

	// 视频生成（文生视频 / 图生视频）
	s.engine.GET("/generate", genHdl.Generate)
	s.engine.POST("/generate", genHdl.Generate)

	// 图片编辑
	if s.cfg.Routes.EditImage {
		s.engine.GET("/edit-img", genHdl.EditImage)
		s.engine.POST("/edit-img", genHdl.EditImage)
	} else {
		log.Info().Msg("edit-img route disabled")
	}
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
