package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/mosaic/layout"
	"github.com/ByLCY/mosaic/renderer"
)

const (
	defaultCellSize   = 2.0 // mm
	defaultResolution = 4.0 // 像素/mm，仅 PNG 使用
)

// Format 指定导出格式。
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Options 配置 canvas 导出器。
type Options struct {
	Format     Format
	CellSize   float64     // 单元格边长（mm），<=0 时取 2mm
	Resolution float64     // PNG 光栅化分辨率（像素/mm），<=0 时取 4
	Foreground color.Color // 前景色，默认黑
	Background color.Color // 底色，默认白；设为透明色可不铺底
}

// Renderer 通过 github.com/tdewolff/canvas 把块画绘制成 PNG 或 PDF：
// 每个非空白单元格映射为一个填充矩形，半块/四分块字符映射为
// 对应的部分矩形。
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建导出器并补齐默认配置。
func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if opts.CellSize <= 0 {
		opts.CellSize = defaultCellSize
	}
	if opts.Resolution <= 0 {
		opts.Resolution = defaultResolution
	}
	if opts.Foreground == nil {
		opts.Foreground = canvas.Black
	}
	if opts.Background == nil {
		opts.Background = canvas.White
	}
	return &Renderer{opts: opts}
}

// Render 将装配结果导出为配置的格式。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil || len(result.Rows) == 0 {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Width == 0 {
		return nil, fmt.Errorf("渲染结果宽度为 0，无可绘制内容")
	}

	cell := r.opts.CellSize
	width := float64(result.Width) * cell
	height := float64(len(result.Rows)) * cell

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与行列保持左上角为原点

	ctx.SetFillColor(r.opts.Background)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))

	ctx.SetFillColor(r.opts.Foreground)
	for rowIdx, row := range result.Rows {
		col := 0
		for _, rn := range row {
			drawCell(ctx, rn, col, rowIdx, cell)
			col++
		}
	}

	switch r.opts.Format {
	case FormatPDF:
		var buf bytes.Buffer
		writer := pdf.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
		return buf.Bytes(), nil
	case FormatPNG:
		img := rasterizer.Draw(c, canvas.DPMM(r.opts.Resolution), canvas.DefaultColorSpace)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("编码 PNG 失败: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("不支持的导出格式 %q", r.opts.Format)
	}
}

// quadrants 记录半块/四分块字符点亮的象限：上左、上右、下左、下右。
var quadrants = map[rune][4]bool{
	'▀': {true, true, false, false},
	'▄': {false, false, true, true},
	'▌': {true, false, true, false},
	'▐': {false, true, false, true},
	'▘': {true, false, false, false},
	'▝': {false, true, false, false},
	'▖': {false, false, true, false},
	'▗': {false, false, false, true},
	'▚': {true, false, false, true},
	'▞': {false, true, true, false},
	'▛': {true, true, true, false},
	'▜': {true, true, false, true},
	'▙': {true, false, true, true},
	'▟': {false, true, true, true},
}

// drawCell 绘制一个单元格：空白跳过，半块/四分块按象限绘制，
// 其余字符按整格填充。
func drawCell(ctx *canvas.Context, r rune, col, rowIdx int, cell float64) {
	if unicode.IsSpace(r) {
		return
	}
	x := float64(col) * cell
	y := float64(rowIdx) * cell

	quads, ok := quadrants[r]
	if !ok {
		ctx.DrawPath(x, y, canvas.Rectangle(cell, cell))
		return
	}
	half := cell / 2
	if quads[0] {
		ctx.DrawPath(x, y, canvas.Rectangle(half, half))
	}
	if quads[1] {
		ctx.DrawPath(x+half, y, canvas.Rectangle(half, half))
	}
	if quads[2] {
		ctx.DrawPath(x, y+half, canvas.Rectangle(half, half))
	}
	if quads[3] {
		ctx.DrawPath(x+half, y+half, canvas.Rectangle(half, half))
	}
}
