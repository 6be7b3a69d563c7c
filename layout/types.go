package layout

import (
	"fmt"
	"strings"
)

// 该文件定义合成与装配共用的数据类型。

// Alignment 表示多行块画在统一宽度内的水平对齐方式。
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String 返回对齐方式的小写名称。
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment 解析对齐方式名称，支持 start/end 别名。
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left", "start":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right", "end":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("layout: 未知的对齐方式 %q", s)
	}
}

// Block 是单行输入文本合成后的中间结果：Height 行文本，
// Width 为内容宽度（列数），对齐填充前各行宽度可能不同。
type Block struct {
	Rows  []string `json:"rows"`
	Width int      `json:"width"`
}

// Result 保存装配完成的块画。不变式：所有行的列数均为 Width。
type Result struct {
	Rows  []string `json:"rows"`
	Width int      `json:"width"`
}

// String 以换行符拼接全部行。
func (r *Result) String() string {
	return strings.Join(r.Rows, "\n")
}

// Height 返回装配结果的总行数。
func (r *Result) Height() int { return len(r.Rows) }

// Options 配置装配阶段的行为。
type Options struct {
	Align       Alignment
	LineSpacing int  // 文本行之间插入的全空白行数
	Spacing     *int // 字符间距覆盖值，nil 表示使用字体默认值
}
