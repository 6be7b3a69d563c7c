package layout_test

import (
	"errors"
	"testing"

	"github.com/ByLCY/mosaic/font"
	"github.com/ByLCY/mosaic/layout"
)

// TestBuilderMatchesAssemble 验证链式配置与直接调用 Assemble 等价。
func TestBuilderMatchesAssemble(t *testing.T) {
	got, err := layout.NewBuilder().
		Text("Hi").
		AlignCenter().
		LineSpacing(1).
		Build()
	if err != nil {
		t.Fatalf("Build 失败: %v", err)
	}
	want := layout.Assemble(font.Standard(), "Hi", layout.Options{
		Align:       layout.AlignCenter,
		LineSpacing: 1,
	}).String()
	if got != want {
		t.Fatalf("Builder 输出与 Assemble 不一致:\n%q\nvs\n%q", got, want)
	}
}

// TestBuilderMissingText 验证从未设置文本时 Build 返回 ErrMissingText。
func TestBuilderMissingText(t *testing.T) {
	_, err := layout.NewBuilder().AlignRight().Build()
	if !errors.Is(err, layout.ErrMissingText) {
		t.Fatalf("期望 ErrMissingText，实际 %v", err)
	}
}

// TestBuilderEmptyTextIsSet 验证显式设置空文本不算缺失。
func TestBuilderEmptyTextIsSet(t *testing.T) {
	f := narrowFont(t)
	out, err := layout.NewBuilder().Text("").Font(f).Build()
	if err != nil {
		t.Fatalf("空文本应可渲染: %v", err)
	}
	// 单个空行 → 字体高度行数的零宽空块
	if out != "\n" {
		t.Fatalf("空文本应得到高度行数的空行: %q", out)
	}
}

// TestBuilderLastWriteWins 验证同一设置重复调用以最后一次为准。
func TestBuilderLastWriteWins(t *testing.T) {
	f := narrowFont(t)
	got, err := layout.NewBuilder().
		Text("B").
		Text("A").
		AlignRight().
		AlignLeft().
		Spacing(5).
		Spacing(0).
		Font(f).
		Build()
	if err != nil {
		t.Fatalf("Build 失败: %v", err)
	}
	want := layout.Assemble(f, "A", layout.Options{}).String()
	if got != want {
		t.Fatalf("最后一次设置未生效:\n%q\nvs\n%q", got, want)
	}
}

// TestBuilderSpacingOverride 验证间距覆盖传递到合成阶段。
func TestBuilderSpacingOverride(t *testing.T) {
	f := testFont(t) // 默认间距 1
	got, err := layout.NewBuilder().Text("AB").Font(f).Spacing(3).Build()
	if err != nil {
		t.Fatalf("Build 失败: %v", err)
	}
	spacing := 3
	want := layout.Assemble(f, "AB", layout.Options{Spacing: &spacing}).String()
	if got != want {
		t.Fatalf("间距覆盖未生效:\n%q\nvs\n%q", got, want)
	}
	if got == layout.Assemble(f, "AB", layout.Options{}).String() {
		t.Fatalf("覆盖后的输出不应等于默认间距输出")
	}
}

// TestBuilderReusableAsValue 验证 Builder 是值语义：派生配置互不影响。
func TestBuilderReusableAsValue(t *testing.T) {
	f := narrowFont(t)
	base := layout.NewBuilder().Font(f).Text("A")
	left, err := base.AlignLeft().Build()
	if err != nil {
		t.Fatalf("Build 失败: %v", err)
	}
	right, err := base.AlignRight().Build()
	if err != nil {
		t.Fatalf("Build 失败: %v", err)
	}
	// 单行输入无需填充，两者应一致；关键是互不破坏 base
	if left != right {
		t.Fatalf("单行输入不同对齐输出应一致: %q vs %q", left, right)
	}
	again, err := base.Build()
	if err != nil || again != left {
		t.Fatalf("base 配置被派生配置污染: %q err=%v", again, err)
	}
}
