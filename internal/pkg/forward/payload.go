package forward

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Payload 上游返回的有效载荷
// 只有两种实现：StructuredPayload（JSON 解析结果）与 TextPayload（原始文本）
type Payload interface {
	json.Marshaler
	// IsEmpty 空字符串、null、空对象、空数组视为空
	IsEmpty() bool
	isPayload()
}

// StructuredPayload 已解析的 JSON 值
// 数字以 json.Number 保存，回写时与上游保持一致
type StructuredPayload struct {
	Data interface{}
}

// TextPayload 去除首尾空白后的原始文本
type TextPayload struct {
	Text string
}

func (StructuredPayload) isPayload() {}
func (TextPayload) isPayload()       {}

func (p StructuredPayload) IsEmpty() bool {
	switch v := p.Data.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]interface{}:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	default:
		return false
	}
}

func (p StructuredPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Data)
}

func (p TextPayload) IsEmpty() bool {
	return p.Text == ""
}

func (p TextPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Text)
}

// decodePayload 将响应体解析为 Payload
// parseJSON 为 true 时优先按 JSON 解析，失败回退为文本
func decodePayload(body []byte, parseJSON bool) Payload {
	if parseJSON {
		if v, err := decodeJSON(body); err == nil {
			return StructuredPayload{Data: v}
		}
	}
	return TextPayload{Text: strings.TrimSpace(string(body))}
}

// decodeJSON 要求整个响应体恰好是一个 JSON 值
func decodeJSON(body []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}
