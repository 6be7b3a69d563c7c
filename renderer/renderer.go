package renderer

import "github.com/ByLCY/mosaic/layout"

// Renderer 将装配结果导出为最终文件，例如 PNG 或 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
