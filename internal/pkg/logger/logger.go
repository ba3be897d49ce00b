package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"darkai/internal/config"
)

// Init 初始化全局日志
func Init(cfg *config.LogConfig) error {
	output, err := openOutput(cfg)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = timeFieldFormat(cfg.TimeFormat)

	log.Logger = New(output, cfg.Format)
	return nil
}

// New 基于给定输出创建 logger，format 为 console 时使用可读格式
func New(output io.Writer, format string) zerolog.Logger {
	if format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(output).With().Timestamp().Caller().Logger()
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

func timeFieldFormat(s string) string {
	switch s {
	case "Unix":
		return zerolog.TimeFormatUnix
	case "UnixMs":
		return zerolog.TimeFormatUnixMs
	default:
		return time.RFC3339
	}
}

func openOutput(cfg *config.LogConfig) (io.Writer, error) {
	switch cfg.Output {
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("log.file_path is required when log.output is file")
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return file, nil
	default:
		return os.Stdout, nil
	}
}
