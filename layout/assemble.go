package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/mosaic/font"
)

// Assemble 将多行输入文本逐行合成并垂直装配：按换行符拆分，
// 每行各自合成 Block，再按对齐方式补齐到全局最大宽度，
// 块与块之间插入 LineSpacing 行全空白（首尾不加）。
// 输出保证每一行的列数都等于最大内容宽度。
func Assemble(f *font.Font, text string, opts Options) *Result {
	spacing := -1
	if opts.Spacing != nil {
		spacing = *opts.Spacing
	}
	lineSpacing := opts.LineSpacing
	if lineSpacing < 0 {
		lineSpacing = 0
	}

	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	maxWidth := 0
	for _, line := range lines {
		b := ComposeLine(f, strings.TrimSuffix(line, "\r"), spacing)
		if b.Width > maxWidth {
			maxWidth = b.Width
		}
		blocks = append(blocks, b)
	}

	blank := strings.Repeat(" ", maxWidth)
	rows := make([]string, 0, len(blocks)*f.Height()+(len(blocks)-1)*lineSpacing)
	for i, b := range blocks {
		if i > 0 {
			for j := 0; j < lineSpacing; j++ {
				rows = append(rows, blank)
			}
		}
		for _, row := range b.Rows {
			rows = append(rows, alignRow(row, maxWidth, opts.Align))
		}
	}
	return &Result{Rows: rows, Width: maxWidth}
}

// alignRow 将 row 填充到 width 列。居中且差值为奇数时，
// 多出的一列放在行尾。
func alignRow(row string, width int, align Alignment) string {
	deficit := width - utf8.RuneCountInString(row)
	if deficit <= 0 {
		return row
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", deficit) + row
	case AlignCenter:
		lead := deficit / 2
		return strings.Repeat(" ", lead) + row + strings.Repeat(" ", deficit-lead)
	default:
		return row + strings.Repeat(" ", deficit)
	}
}
