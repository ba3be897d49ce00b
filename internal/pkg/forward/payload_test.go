package forward

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecodePayload(t *testing.T) {
	Convey("decodePayload 区分 JSON 与文本", t, func() {
		Convey("完整 JSON 值解析为结构", func() {
			p := decodePayload([]byte(`{"id":12345678901234567890}`), true)
			So(p, ShouldHaveSameTypeAs, StructuredPayload{})

			out, err := json.Marshal(p)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"id":12345678901234567890}`)
		})

		Convey("带多余内容的 JSON 按文本处理", func() {
			p := decodePayload([]byte(`{"a":1} trailing`), true)
			So(p, ShouldResemble, TextPayload{Text: `{"a":1} trailing`})
		})

		Convey("JSON 字符串保持原值", func() {
			p := decodePayload([]byte(`"  padded  "`), true)
			So(p, ShouldResemble, StructuredPayload{Data: "  padded  "})
		})
	})
}

func TestPayload_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		p    Payload
		want bool
	}{
		{"null", StructuredPayload{Data: nil}, true},
		{"empty string", StructuredPayload{Data: ""}, true},
		{"empty object", StructuredPayload{Data: map[string]interface{}{}}, true},
		{"empty array", StructuredPayload{Data: []interface{}{}}, true},
		{"zero number", StructuredPayload{Data: json.Number("0")}, false},
		{"false", StructuredPayload{Data: false}, false},
		{"object", StructuredPayload{Data: map[string]interface{}{"url": "x"}}, false},
		{"empty text", TextPayload{}, true},
		{"text", TextPayload{Text: "ok"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
