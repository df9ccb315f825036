// Package render draws text and icons into fixed rectangles.
//
// Every entry point paints the whole destination rectangle exactly once:
// glyph cells and icons cover their part and the remainder is filled with
// the background color band by band, so nothing is cleared ahead of drawing
// and a redraw does not flicker.
package render

import (
	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/text"
)

// Flags selects alignment and line breaking for text, and alignment plus
// raster options for icons.
//
// Bits 0-7 hold a geom.Align, bits 8-11 a display.Rop and bit 12 enables
// word wrapping.
type Flags uint16

const (
	FlagWordWrap Flags = 1 << 12

	alignMask Flags = 0x00ff
	ropShift        = 8
)

// WithAlign returns flags carrying alignment a.
func WithAlign(a geom.Align) Flags { return Flags(a) }

// WithRop returns flags carrying raster options r.
func WithRop(r display.Rop) Flags { return Flags(r&display.RopMask) << ropShift }

func (f Flags) Align() geom.Align { return geom.Align(f & alignMask) }
func (f Flags) Rop() display.Rop  { return display.Rop(f>>ropShift) & display.RopMask }

// FillBetween paints the parts of outer not covered by inner: a top band, a
// bottom band, then left and right bands beside inner. inner must lie within
// outer; otherwise nothing is drawn.
func FillBetween(d display.Display, outer, inner geom.Rect, c display.Color) {
	if !geom.InRect(inner, outer) {
		return
	}
	bands := [4]geom.Rect{
		{X: outer.X, Y: outer.Y, W: outer.W, H: inner.Y - outer.Y},
		{X: outer.X, Y: inner.Y + inner.H, W: outer.W, H: (outer.Y + outer.H) - (inner.Y + inner.H)},
		{X: outer.X, Y: inner.Y, W: inner.X - outer.X, H: inner.H},
		{X: inner.X + inner.W, Y: inner.Y, W: (outer.X + outer.W) - (inner.X + inner.W), H: inner.H},
	}
	for _, b := range bands {
		if b.Empty() {
			continue
		}
		d.FillRect(b, c)
	}
}

// Text draws code points from cur into rc and returns the area covered: the
// rows used and, without word wrapping, the width up to the last glyph.
//
// Without FlagWordWrap every code point, newline included, is drawn on one
// row and drawing stops at the first glyph that does not fit. With
// FlagWordWrap, '\n' moves to the next row, the word-wrap policy inserts
// width breaks, the unused tail of each finished row is filled with bg and
// drawing stops at the first row that does not fit.
func Text(d display.Display, rc geom.Rect, cur *text.Cursor, f *font.Font, bg, fg display.Color, flags Flags) geom.Rect {
	wrap := flags&FlagWordWrap != 0
	var policy text.Policy = text.NoWrap{}
	if wrap {
		policy = text.NewWordWrap(rc.W, f.W)
	}

	right := int(rc.X) + int(rc.W)
	bottom := int(rc.Y) + int(rc.H)
	x, y := int(rc.X), int(rc.Y)
	covered := 0

	for {
		r := policy.Next(cur)
		if r == 0 {
			break
		}
		if r == '\n' && wrap {
			if y+int(f.H) > bottom {
				break
			}
			fillRowTail(d, rc, x, y, f.H, bg)
			y += int(f.H)
			x = int(rc.X)
			covered = y - int(rc.Y)
			continue
		}
		if x+int(f.W) > right || y+int(f.H) > bottom {
			break
		}
		d.DrawChar(geom.Point{X: uint16(x), Y: uint16(y)}, r, f, bg, fg)
		x += int(f.W)
		covered = y + int(f.H) - int(rc.Y)
	}
	if !wrap {
		return geom.Rect{X: rc.X, Y: rc.Y, W: uint16(x - int(rc.X)), H: uint16(covered)}
	}
	if x > int(rc.X) {
		fillRowTail(d, rc, x, y, f.H, bg)
	}
	return geom.Rect{X: rc.X, Y: rc.Y, W: rc.W, H: uint16(covered)}
}

func fillRowTail(d display.Display, rc geom.Rect, x, y int, h uint16, bg display.Color) {
	right := int(rc.X) + int(rc.W)
	if x >= right {
		return
	}
	d.FillRect(geom.Rect{X: uint16(x), Y: uint16(y), W: uint16(right - x), H: h}, bg)
}

// TextAligned draws cur into rc after removing padding, filling every pixel
// of rc that no glyph covers with bg.
//
// Word-wrapped text is drawn from the top and the band below the last used
// row is filled afterwards, whatever height the wrap produced. Other text is
// measured first, aligned and clipped to the padded area, and the gap around
// it is filled before the glyphs are drawn; whatever the glyphs leave blank
// inside the text box is filled after.
func TextAligned(d display.Display, rc geom.Rect, cur *text.Cursor, f *font.Font, bg, fg display.Color, pad geom.Padding, flags Flags) {
	rcPad := geom.SubPadding(rc, pad)

	if flags&FlagWordWrap != 0 {
		used := Text(d, rcPad, cur, f, bg, fg, FlagWordWrap)
		if used.H < rcPad.H {
			d.FillRect(geom.Rect{X: rcPad.X, Y: rcPad.Y + used.H, W: rcPad.W, H: rcPad.H - used.H}, bg)
		}
		FillBetween(d, rc, rcPad, bg)
		return
	}

	size, n := text.Measure(cur, f.W, f.H)
	if size.Empty() {
		d.FillRect(rc, bg)
		return
	}

	rcTxt := geom.Intersect(rcPad, geom.AlignRect(rcPad, size, flags.Align()))
	unused := uint16(0)
	if n*int(f.W) > int(rcTxt.W) {
		unused = rcTxt.W % f.W
	}

	inner := geom.Rect{X: rcTxt.X, Y: rcTxt.Y, W: rcTxt.W - unused, H: rcTxt.H}
	FillBetween(d, rc, inner, bg)
	cur.Rewind()
	used := Text(d, rcTxt, cur, f, bg, fg, 0)
	fillUncovered(d, inner, used, bg)
}

// fillUncovered fills the part of box that Text left blank: the strip right
// of the drawn glyphs and the band below them. Plain text stops early on a
// newline or when a cell is taller than box.
func fillUncovered(d display.Display, box, used geom.Rect, bg display.Color) {
	if used.W > box.W {
		used.W = box.W
	}
	if used.H > box.H {
		used.H = box.H
	}
	if used.H > 0 && used.W < box.W {
		d.FillRect(geom.Rect{X: box.X + used.W, Y: box.Y, W: box.W - used.W, H: used.H}, bg)
	}
	if used.H < box.H {
		d.FillRect(geom.Rect{X: box.X, Y: box.Y + used.H, W: box.W, H: box.H - used.H}, bg)
	}
}
