package id

import (
	"github.com/google/uuid"
)

// New 生成按时间有序的请求ID（UUIDv7），失败时退回随机 UUIDv4
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}

// IsValid 验证请求ID是否为合法 UUID
func IsValid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
