// Package font provides fixed-cell bitmap fonts for the text renderer.
package font

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"tinygo.org/x/tinyfont"
)

// Font is a fixed-width, fixed-height glyph source.
//
// Every code point occupies one W×H cell. Face draws at the baseline, which
// sits Ascent pixels below the top of the cell.
type Font struct {
	Face   tinyfont.Fonter
	W, H   uint16
	Ascent int16
}

// Unaccent maps r to its base letter when r carries combining marks and the
// stripped form is a single code point (é → e, Ž → Z). Otherwise r is
// returned unchanged.
func Unaccent(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(strip, string(r))
	if err != nil {
		return r
	}
	base, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || base == utf8.RuneError {
		return r
	}
	return base
}
