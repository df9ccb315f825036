// Package display defines the drawing primitives the renderer relies on and
// implements them over a hal.Framebuffer.
package display

import (
	"image/color"

	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/res"
)

// Color is a packed 0x00RRGGBB value. The top byte is ignored when drawing.
type Color uint32

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Invert complements every bit of c.
func (c Color) Invert() Color { return c ^ 0xffffffff }

// ToRGBA converts c to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

const (
	ColorBlack    Color = 0x000000
	ColorWhite    Color = 0xffffff
	ColorDisabled Color = 0x808080
	ColorOrange   Color = 0xff9900
)

// Rop holds raster options for icon drawing.
type Rop uint8

const (
	RopMirrorH Rop = 1 << iota
	RopMirrorV
	RopSwapBW
	RopDisable

	// RopMask covers every option passed through to Display.DrawIcon.
	RopMask Rop = 0x0f
)

// Display is the primitive surface. Every call completes synchronously.
type Display interface {
	// DrawChar paints one font cell at pt: bg everywhere, fg on the glyph.
	DrawChar(pt geom.Point, r rune, f *font.Font, bg, fg Color)
	// DrawIcon paints icon id with its top-left corner at rc's origin.
	// Mask pixels outside rc are not painted.
	DrawIcon(rc geom.Rect, id res.ID, bg Color, rop Rop)
	// FillRect paints rc with a solid color.
	FillRect(rc geom.Rect, c Color)
}
