package layout

import "github.com/ByLCY/mosaic/font"

// 本文件提供最常用的便捷入口，均为 Assemble 的薄封装。

// Render 使用内置标准字体渲染文本：左对齐、字体默认间距、行距 0。
func Render(text string) string {
	return RenderWithFont(text, font.Standard())
}

// RenderWithFont 使用指定字体渲染文本，其余配置同 Render。
func RenderWithFont(text string, f *font.Font) string {
	return Assemble(f, text, Options{}).String()
}

// RenderCompact 使用内置 compact 半块字体渲染文本。
func RenderCompact(text string) string {
	return RenderWithFont(text, font.Compact())
}

// RenderMini 使用内置 2x2 mini 字体渲染文本。
func RenderMini(text string) string {
	return RenderWithFont(text, font.Mini())
}
