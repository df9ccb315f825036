package font

import (
	"image"
	"image/color"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Basic7x13 is the system font: 7x13 cells from the x/image basic face.
//
// Glyphs missing from the face fall back to their unaccented base letter,
// then to '?'. Concurrent drawing is not safe due to internal glyph reuse.
var Basic7x13 = &Font{
	Face:   &basicFonter{face: basicfont.Face7x13, cellW: 7, cellH: 13, ascent: 11},
	W:      7,
	H:      13,
	Ascent: 11,
}

type basicFonter struct {
	face   xfont.Face
	cellW  uint8
	cellH  uint8
	ascent int8
	g      basicGlyph
}

type basicGlyph struct {
	f *basicFonter
	r rune
}

func (f *basicFonter) GetYAdvance() uint8 { return f.cellH }

func (f *basicFonter) GetGlyph(r rune) tinyfont.Glypher {
	f.g = basicGlyph{f: f, r: f.resolve(r)}
	return &f.g
}

// resolve picks the rune actually drawn for r.
func (f *basicFonter) resolve(r rune) rune {
	if f.has(r) {
		return r
	}
	if base := Unaccent(r); base != r && f.has(base) {
		return base
	}
	return '?'
}

func (f *basicFonter) has(r rune) bool {
	_, ok := f.face.GlyphAdvance(r)
	return ok
}

func (g *basicGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	dr, mask, maskp, _, ok := g.f.face.Glyph(fixed.P(int(x), int(y)), g.r)
	if !ok || mask == nil {
		return
	}
	drawMask(display, dr, mask, maskp, c)
}

func (g *basicGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.f.cellW,
		Height:   g.f.cellH,
		XAdvance: g.f.cellW,
		XOffset:  0,
		YOffset:  -g.f.ascent,
	}
}

// drawMask sets every pixel of dr whose mask alpha is at least half.
func drawMask(display drivers.Displayer, dr image.Rectangle, mask image.Image, maskp image.Point, c color.RGBA) {
	for py := dr.Min.Y; py < dr.Max.Y; py++ {
		for px := dr.Min.X; px < dr.Max.X; px++ {
			_, _, _, a := mask.At(maskp.X+px-dr.Min.X, maskp.Y+py-dr.Min.Y).RGBA()
			if a < 0x8000 {
				continue
			}
			display.SetPixel(int16(px), int16(py), c)
		}
	}
}
