package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	bfontLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:]`},
	})

	fontParser = participle.MustBuild[Font](
		participle.Lexer(bfontLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Font is the root AST node for a .bfont file.
type Font struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Name       string         `parser:"Newline* 'font' @Ident"`
	Version    string         `parser:"@Ident"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Statement is a single entry in the font body: either a glyph
// definition or a metric assignment (width/height/spacing).
type Statement struct {
	Glyph  *GlyphDef `parser:"  @@"`
	Metric *Metric   `parser:"| @@"`
}

// Metric is a `key: value` assignment of an integer font metric.
type Metric struct {
	Key   string `parser:"@Ident ':' Newline*"`
	Value int    `parser:"@Number"`
}

// GlyphDef declares the row pattern for a single character.
type GlyphDef struct {
	Pos  lexer.Position  `parser:"" json:"-"`
	Key  StringLiteral   `parser:"'glyph' @String"`
	Rows []StringLiteral `parser:"'{' Newline* ( @String Newline* )* '}'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Metrics collects the metric assignments into a map. Later
// assignments of the same key win.
func (f *Font) Metrics() map[string]int {
	out := make(map[string]int)
	for _, st := range f.Statements {
		if st.Metric != nil {
			out[st.Metric.Key] = st.Metric.Value
		}
	}
	return out
}

// GlyphDefs collects the glyph definitions in declaration order.
func (f *Font) GlyphDefs() []*GlyphDef {
	var out []*GlyphDef
	for _, st := range f.Statements {
		if st.Glyph != nil {
			out = append(out, st.Glyph)
		}
	}
	return out
}

// Parse parses .bfont content from an io.Reader.
func Parse(r io.Reader) (*Font, error) {
	return fontParser.Parse("", r)
}

// ParseString parses .bfont content from a string.
func ParseString(input string) (*Font, error) {
	return fontParser.ParseString("", input)
}
