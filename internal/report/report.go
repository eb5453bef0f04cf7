package report

import (
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/tidwall/sjson"

	"beaconscope/pkg/model"
)

// Writer 将解析结果以 JSON Lines 形式写出
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter 创建结果写出器
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write 输出单条结果
func (w *Writer) Write(res model.ParseResult) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	_, err = w.w.Write([]byte{'\n'})
	return err
}

// Nest 将扁平字段按路径重建为嵌套 JSON，隐藏字段不参与。
// 这是载荷展平的逆操作，用于导出时还原结构。
func Nest(fields []model.ParsedField) string {
	out := "{}"
	for _, f := range fields {
		if f.Hidden || f.Key == "" {
			continue
		}
		v, err := sjson.Set(out, nestPath(f.Key), f.Value)
		if err != nil {
			continue
		}
		out = v
	}
	return out
}

// nestPath 将 a.b[0].c 形式的展平路径转换为 sjson 的 a.b.0.c 路径
func nestPath(key string) string {
	r := strings.NewReplacer("[", ".", "]", "")
	return r.Replace(key)
}
