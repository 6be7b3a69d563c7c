package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/mosaic/binding"
	"github.com/ByLCY/mosaic/font"
	"github.com/ByLCY/mosaic/layout"
	canvasrenderer "github.com/ByLCY/mosaic/renderer/canvas"
)

func main() {
	text := flag.String("text", "", "要渲染的文本，\\n 表示换行")
	input := flag.String("in", "", "从文件读取要渲染的文本（与 -text 二选一）")
	fontPath := flag.String("font", "", "字体描述文件路径（.json 或 .bfont），缺省用内置字体")
	builtin := flag.String("builtin", "standard", "内置字体名：standard/compact/mini")
	align := flag.String("align", "left", "对齐方式：left/center/right")
	spacing := flag.Int("spacing", -1, "字符间距（列数），负值表示用字体默认值")
	lineSpacing := flag.Int("line-spacing", 0, "文本行之间插入的空白行数")
	dataJSON := flag.String("data", "", "绑定到 ${path} 占位符的 JSON 数据")
	output := flag.String("out", "", "输出路径，按扩展名导出 .png/.pdf/.txt，留空打印到标准输出")
	debug := flag.String("debug", "", "把装配结果以 JSON 形式写到指定路径，便于调试")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	if err := run(*text, *input, *fontPath, *builtin, *align, *spacing, *lineSpacing, inputData, *output, *debug); err != nil {
		log.Fatalf("渲染失败: %v", err)
	}
}

// run 串联字体加载、数据绑定、合成与导出。
func run(text, inputPath, fontPath, builtin, align string, spacing, lineSpacing int, data any, outputPath, debugPath string) error {
	if text == "" && inputPath != "" {
		raw, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("无法读取文本文件 %s: %w", inputPath, err)
		}
		text = strings.TrimRight(string(raw), "\n")
	}
	// 命令行里写 \n 比真实换行方便
	text = strings.ReplaceAll(text, `\n`, "\n")

	f, err := resolveFont(fontPath, builtin)
	if err != nil {
		return err
	}
	alignment, err := layout.ParseAlignment(align)
	if err != nil {
		return err
	}

	b := layout.NewBuilder().
		Text(binding.Interpolate(text, data)).
		Font(f).
		LineSpacing(lineSpacing)
	if spacing >= 0 {
		b = b.Spacing(spacing)
	}
	switch alignment {
	case layout.AlignCenter:
		b = b.AlignCenter()
	case layout.AlignRight:
		b = b.AlignRight()
	default:
		b = b.AlignLeft()
	}

	result, err := b.BuildResult()
	if err != nil {
		return err
	}

	if debugPath != "" {
		if err := layout.WriteDebugJSON(result, debugPath); err != nil {
			return fmt.Errorf("写入调试 JSON 失败: %w", err)
		}
	}

	if outputPath == "" {
		fmt.Println(result.String())
		return nil
	}
	return writeOutput(result, outputPath)
}

// resolveFont 优先使用 -font 指定的文件，否则按 -builtin 取内置字体。
func resolveFont(fontPath, builtin string) (*font.Font, error) {
	if fontPath != "" {
		f, err := font.FromFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("加载字体 %s 失败: %w", fontPath, err)
		}
		return f, nil
	}
	switch strings.ToLower(builtin) {
	case "", "standard":
		return font.Standard(), nil
	case "compact":
		return font.Compact(), nil
	case "mini":
		return font.Mini(), nil
	default:
		return nil, fmt.Errorf("未知的内置字体 %q，可选：standard/compact/mini", builtin)
	}
}

// writeOutput 按扩展名选择导出方式：.png/.pdf 走 canvas 导出器，
// 其余扩展名按纯文本写入。
func writeOutput(result *layout.Result, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	var payload []byte
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".png":
		r := canvasrenderer.NewRenderer(canvasrenderer.Options{Format: canvasrenderer.FormatPNG})
		data, err := r.Render(result)
		if err != nil {
			return err
		}
		payload = data
	case ".pdf":
		r := canvasrenderer.NewRenderer(canvasrenderer.Options{Format: canvasrenderer.FormatPDF})
		data, err := r.Render(result)
		if err != nil {
			return err
		}
		payload = data
	default:
		payload = []byte(result.String() + "\n")
	}

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("写入输出文件 %s 失败: %w", outputPath, err)
	}
	return nil
}
