package font

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/mosaic/dsl"
)

// Loading failure reasons, matchable with errors.Is.
var (
	// ErrParse wraps an underlying document parse failure.
	ErrParse = errors.New("font: parse error")
	// ErrInvalidDimensions reports a missing or non-positive width/height.
	ErrInvalidDimensions = errors.New("font: invalid dimensions")
	// ErrInvalidGlyphKey reports a glyph key that is not exactly one character.
	ErrInvalidGlyphKey = errors.New("font: invalid glyph key")
	// ErrGlyphHeight reports a glyph whose row count differs from the font height.
	ErrGlyphHeight = errors.New("font: glyph height mismatch")
	// ErrEmptyFont reports a document with no glyphs at all.
	ErrEmptyFont = errors.New("font: empty glyph map")
)

// Document is the external description of a font, the shape produced
// by deserializing a JSON font file or converting a .bfont AST.
type Document struct {
	Width   int                 `json:"width"`
	Height  int                 `json:"height"`
	Spacing int                 `json:"spacing"`
	Glyphs  map[string][]string `json:"glyphs"`
}

// FromDocument validates doc and builds a Font from it. Rows are kept
// verbatim: short rows are padded and long rows tolerated at
// composition time, not here.
func FromDocument(doc Document) (*Font, error) {
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d (both must be positive)", ErrInvalidDimensions, doc.Width, doc.Height)
	}
	if doc.Spacing < 0 {
		return nil, fmt.Errorf("%w: spacing=%d (must not be negative)", ErrInvalidDimensions, doc.Spacing)
	}
	if len(doc.Glyphs) == 0 {
		return nil, ErrEmptyFont
	}

	glyphs := make(map[rune]Glyph, len(doc.Glyphs))
	for key, rows := range doc.Glyphs {
		r, err := decodeGlyphKey(key)
		if err != nil {
			return nil, err
		}
		if len(rows) != doc.Height {
			return nil, fmt.Errorf("%w: glyph %q has %d rows, font height is %d", ErrGlyphHeight, key, len(rows), doc.Height)
		}
		glyphs[r] = Glyph(rows)
	}

	return &Font{
		width:   doc.Width,
		height:  doc.Height,
		spacing: doc.Spacing,
		glyphs:  glyphs,
	}, nil
}

// FromJSON parses a JSON font document and validates it.
func FromJSON(data []byte) (*Font, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromDocument(doc)
}

// FromDSL converts a parsed .bfont AST into a Font. Unknown metric
// keys are ignored so the format can grow without breaking old loaders.
func FromDSL(ast *dsl.Font) (*Font, error) {
	if ast == nil {
		return nil, fmt.Errorf("%w: nil AST", ErrParse)
	}
	metrics := ast.Metrics()
	doc := Document{
		Width:   metrics["width"],
		Height:  metrics["height"],
		Spacing: metrics["spacing"],
		Glyphs:  map[string][]string{},
	}
	for _, def := range ast.GlyphDefs() {
		rows := make([]string, len(def.Rows))
		for i, row := range def.Rows {
			rows[i] = string(row)
		}
		doc.Glyphs[string(def.Key)] = rows
	}
	return FromDocument(doc)
}

// FromBFont parses textual .bfont content and validates it.
func FromBFont(data []byte) (*Font, error) {
	ast, err := dsl.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromDSL(ast)
}

// FromFile loads a font description from disk, choosing the format by
// file extension: .bfont parses as the textual DSL, anything else as JSON.
func FromFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".bfont") {
		return FromBFont(data)
	}
	return FromJSON(data)
}

// decodeGlyphKey maps a glyph map key to its rune. Keys are a single
// character, or one of a small set of escape sequences so control
// characters stay representable in JSON keys.
func decodeGlyphKey(key string) (rune, error) {
	runes := []rune(key)
	switch {
	case len(runes) == 1:
		return runes[0], nil
	case len(runes) == 0:
		return 0, fmt.Errorf("%w: empty key", ErrInvalidGlyphKey)
	case runes[0] != '\\':
		return 0, fmt.Errorf("%w: %q is %d characters, want 1", ErrInvalidGlyphKey, key, len(runes))
	}

	switch key {
	case `\n`:
		return '\n', nil
	case `\t`:
		return '\t', nil
	case `\r`:
		return '\r', nil
	case `\0`:
		return 0, nil
	case `\'`:
		return '\'', nil
	case `\"`:
		return '"', nil
	case `\\`:
		return '\\', nil
	}

	// \u{HEX} escapes cover everything else.
	if strings.HasPrefix(key, `\u{`) && strings.HasSuffix(key, "}") {
		hex := key[3 : len(key)-1]
		code, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: bad unicode escape %q", ErrInvalidGlyphKey, key)
		}
		r := rune(code)
		if !utf8.ValidRune(r) {
			return 0, fmt.Errorf("%w: %q is not a valid code point", ErrInvalidGlyphKey, key)
		}
		return r, nil
	}
	return 0, fmt.Errorf("%w: unknown escape sequence %q", ErrInvalidGlyphKey, key)
}
