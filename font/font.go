package font

// Glyph is the row pattern of a single character. Rows are stored
// verbatim as loaded; composition treats each row as Width columns.
type Glyph []string

// Font maps characters to fixed-height glyphs sharing a common cell
// size. A Font is immutable after loading and safe to share across
// concurrent renders.
type Font struct {
	width   int
	height  int
	spacing int
	glyphs  map[rune]Glyph
}

// Width returns the number of columns per glyph cell.
func (f *Font) Width() int { return f.width }

// Height returns the number of rows per glyph cell.
func (f *Font) Height() int { return f.height }

// Spacing returns the default number of blank columns between glyphs.
func (f *Font) Spacing() int { return f.spacing }

// Len returns the number of characters the font defines.
func (f *Font) Len() int { return len(f.glyphs) }

// GlyphFor returns the glyph for r, or false when the font does not
// define it. Callers decide the fallback policy.
func (f *Font) GlyphFor(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}
