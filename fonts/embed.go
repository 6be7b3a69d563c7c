package fonts

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.json *.bfont
var fontFS embed.FS

// Load 返回内置字体描述文件的字节数据，path 可写为 "embed:standard.json"
// 或直接 "standard.json"。
func Load(path string) ([]byte, error) {
	target := strings.TrimPrefix(path, "embed:")
	data, err := fontFS.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("读取内置字体 %s 失败: %w", target, err)
	}
	return data, nil
}

// Names 列出全部内置字体描述文件名。
func Names() []string {
	entries, err := fontFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
