package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/mosaic/dsl"
)

const sampleBFont = `
// three-row demo font
font demo v1 {
  width: 3
  height: 3
  spacing: 1

  glyph "A" {
    "▄▀▄"
    "█▀█"
    "▀ ▀"
  }

  glyph "!" {
    " █ "
    " █ "
    " ▀ "
  }

  glyph "\n" {
    "   "
    "   "
    "   "
  }
}
`

func TestParseFont(t *testing.T) {
	f, err := dsl.ParseString(sampleBFont)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if f.Name != "demo" {
		t.Fatalf("expected font name demo, got %s", f.Name)
	}
	if f.Version != "v1" {
		t.Fatalf("expected version v1, got %s", f.Version)
	}

	metrics := f.Metrics()
	if metrics["width"] != 3 || metrics["height"] != 3 || metrics["spacing"] != 1 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}

	glyphs := f.GlyphDefs()
	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyph definitions, got %d", len(glyphs))
	}
	if string(glyphs[0].Key) != "A" {
		t.Fatalf("expected first glyph key A, got %q", glyphs[0].Key)
	}
	if len(glyphs[0].Rows) != 3 {
		t.Fatalf("expected 3 rows for A, got %d", len(glyphs[0].Rows))
	}
	if string(glyphs[0].Rows[1]) != "█▀█" {
		t.Fatalf("unexpected middle row for A: %q", glyphs[0].Rows[1])
	}
	if string(glyphs[2].Key) != "\n" {
		t.Fatalf("escape sequence in glyph key not unquoted: %q", glyphs[2].Key)
	}
}

func TestParseFromReader(t *testing.T) {
	f, err := dsl.Parse(strings.NewReader(sampleBFont))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if f.Name != "demo" {
		t.Fatalf("expected font name demo, got %s", f.Name)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{
		`font broken v1 { width: }`,
		`font broken v1 { glyph "A" }`,
		`doc broken v1 {}`,
		`font broken v1 { glyph "A" { "x" `,
	}
	for _, input := range cases {
		if _, err := dsl.ParseString(input); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestParseMetricLastWriteWins(t *testing.T) {
	f, err := dsl.ParseString(`font demo v1 {
  width: 3
  width: 5
  height: 2
  glyph "A" { "x" "x" }
}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if f.Metrics()["width"] != 5 {
		t.Fatalf("expected last width assignment to win, got %d", f.Metrics()["width"])
	}
}
