package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/mosaic/font"
)

// ComposeLine 将一行文本按字体逐字符合成为 Block：对每个行号拼接
// 各字形的对应行，字形之间插入 spacing 列空白（末尾不加）。
// spacing 为负时使用字体默认间距。未收录的字符退化为整块空白，
// 不会中断渲染。
func ComposeLine(f *font.Font, line string, spacing int) Block {
	if spacing < 0 {
		spacing = f.Spacing()
	}
	height := f.Height()
	gap := strings.Repeat(" ", spacing)

	builders := make([]strings.Builder, height)
	first := true
	for _, r := range line {
		glyph, ok := f.GlyphFor(r)
		for i := 0; i < height; i++ {
			if !first {
				builders[i].WriteString(gap)
			}
			var row string
			if ok && i < len(glyph) {
				row = glyph[i]
			}
			builders[i].WriteString(padRow(row, f.Width()))
		}
		first = false
	}

	rows := make([]string, height)
	width := 0
	for i := range builders {
		rows[i] = builders[i].String()
		if w := utf8.RuneCountInString(rows[i]); w > width {
			width = w
		}
	}
	return Block{Rows: rows, Width: width}
}

// padRow 将短行右侧补空格到 width 列；超宽的行保留原样
// （字体允许用超宽行做双宽装饰）。
func padRow(row string, width int) string {
	n := utf8.RuneCountInString(row)
	if n >= width {
		return row
	}
	return row + strings.Repeat(" ", width-n)
}
