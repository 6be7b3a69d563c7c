package fonts

import (
	"bytes"
	"testing"
)

func TestLoadEmbedPrefix(t *testing.T) {
	plain, err := Load("standard.json")
	if err != nil {
		t.Fatalf("读取 standard.json 失败: %v", err)
	}
	prefixed, err := Load("embed:standard.json")
	if err != nil {
		t.Fatalf("embed: 前缀形式读取失败: %v", err)
	}
	if !bytes.Equal(plain, prefixed) {
		t.Fatalf("两种路径形式应返回同一份数据")
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("missing.json"); err == nil {
		t.Fatalf("不存在的字体文件应返回错误")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := map[string]bool{
		"standard.json": false,
		"compact.bfont": false,
		"mini.json":     false,
	}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Fatalf("内置字体清单缺少 %s，实际为 %v", n, names)
		}
	}
}
