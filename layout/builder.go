package layout

import (
	"errors"

	"github.com/ByLCY/mosaic/font"
)

// ErrMissingText 表示 Build 被调用时从未设置过文本。
var ErrMissingText = errors.New("layout: 未设置文本")

// Builder 以链式调用累积渲染配置。每个设置方法返回更新后的副本，
// 同一项重复设置时以最后一次为准；Build 负责校验并委托 Assemble。
type Builder struct {
	text        string
	textSet     bool
	font        *font.Font
	spacing     *int
	lineSpacing int
	align       Alignment
}

// NewBuilder 返回空配置：左对齐、字体默认间距、行距 0。
func NewBuilder() Builder {
	return Builder{}
}

// Text 设置要渲染的文本，可包含换行符表示多行。
func (b Builder) Text(text string) Builder {
	b.text = text
	b.textSet = true
	return b
}

// Font 设置渲染字体；未设置时 Build 使用内置标准字体。
func (b Builder) Font(f *font.Font) Builder {
	b.font = f
	return b
}

// Spacing 覆盖字体默认的字符间距，负值按 0 处理。
func (b Builder) Spacing(n int) Builder {
	if n < 0 {
		n = 0
	}
	b.spacing = &n
	return b
}

// LineSpacing 设置文本行之间插入的空白行数，负值按 0 处理。
func (b Builder) LineSpacing(n int) Builder {
	if n < 0 {
		n = 0
	}
	b.lineSpacing = n
	return b
}

// AlignLeft 设置左对齐（默认值）。
func (b Builder) AlignLeft() Builder {
	b.align = AlignLeft
	return b
}

// AlignCenter 设置居中对齐。
func (b Builder) AlignCenter() Builder {
	b.align = AlignCenter
	return b
}

// AlignRight 设置右对齐。
func (b Builder) AlignRight() Builder {
	b.align = AlignRight
	return b
}

// Build 校验配置并渲染。文本从未设置时返回 ErrMissingText。
func (b Builder) Build() (string, error) {
	res, err := b.BuildResult()
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// BuildResult 与 Build 相同，但保留结构化的装配结果，
// 供 renderer 等需要逐行访问的调用方使用。
func (b Builder) BuildResult() (*Result, error) {
	if !b.textSet {
		return nil, ErrMissingText
	}
	f := b.font
	if f == nil {
		f = font.Standard()
	}
	return Assemble(f, b.text, Options{
		Align:       b.align,
		LineSpacing: b.lineSpacing,
		Spacing:     b.spacing,
	}), nil
}
