package http

import (
	"darkai/internal/pkg/forward"
)

// Envelope 统一响应包装（所有转发接口共用）
// success 为 true 时携带 data，否则携带 error
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Error   string      `json:"error,omitempty"`
}

// NewSuccessEnvelope 创建成功响应
func NewSuccessEnvelope(data interface{}) *Envelope {
	return &Envelope{
		Success: true,
		Data:    data,
	}
}

// NewErrorEnvelope 创建失败响应
func NewErrorEnvelope(message string) *Envelope {
	return &Envelope{
		Success: false,
		Error:   message,
	}
}

// FromResult 将转发结果转换为响应
func FromResult(r forward.Result) *Envelope {
	if r.OK {
		return NewSuccessEnvelope(r.Payload)
	}
	return NewErrorEnvelope(r.Err)
}
