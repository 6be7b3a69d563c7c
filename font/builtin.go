package font

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ByLCY/mosaic/fonts"
)

// Built-in fonts are decoded from the embedded documents once and then
// shared read-only for the process lifetime.
var (
	standardOnce sync.Once
	standardFont *Font

	compactOnce sync.Once
	compactFont *Font

	miniOnce sync.Once
	miniFont *Font
)

// Standard returns the default 5x5 built-in font.
func Standard() *Font {
	standardOnce.Do(func() {
		standardFont = mustBuiltin("standard.json")
	})
	return standardFont
}

// Compact returns the 3-row half-block built-in font.
func Compact() *Font {
	compactOnce.Do(func() {
		compactFont = mustBuiltin("compact.bfont")
	})
	return compactFont
}

// Mini returns the 2x2 built-in font.
func Mini() *Font {
	miniOnce.Do(func() {
		miniFont = mustBuiltin("mini.json")
	})
	return miniFont
}

// mustBuiltin decodes an embedded font document. The documents are
// compiled into the binary, so a failure here is a packaging bug.
func mustBuiltin(name string) *Font {
	data, err := fonts.Load(name)
	if err != nil {
		panic(fmt.Sprintf("builtin font %s unavailable: %v", name, err))
	}
	var f *Font
	if strings.HasSuffix(name, ".bfont") {
		f, err = FromBFont(data)
	} else {
		f, err = FromJSON(data)
	}
	if err != nil {
		panic(fmt.Sprintf("builtin font %s invalid: %v", name, err))
	}
	return f
}
