package display

import (
	"image/color"

	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/res"
	"ember/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = (*FB)(nil)

// FB draws onto an RGB565 framebuffer. Glyphs go through tinyfont; icons are
// resolved from an icon registry.
type FB struct {
	fb    hal.Framebuffer
	icons *res.Registry
}

func NewFB(fb hal.Framebuffer, icons *res.Registry) *FB {
	return &FB{fb: fb, icons: icons}
}

func (d *FB) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FB) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *FB) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *FB) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *FB) FillRect(rc geom.Rect, c Color) {
	if rc.Empty() {
		return
	}
	_ = d.FillRectangle(int16(rc.X), int16(rc.Y), int16(rc.W), int16(rc.H), c.ToRGBA())
}

func (d *FB) DrawChar(pt geom.Point, r rune, f *font.Font, bg, fg Color) {
	if f == nil || f.Face == nil {
		return
	}
	d.FillRect(geom.Rect{X: pt.X, Y: pt.Y, W: f.W, H: f.H}, bg)
	tinyfont.DrawChar(d, f.Face, int16(pt.X), int16(pt.Y)+f.Ascent, r, fg.ToRGBA())
}

// DrawIcon blends the icon mask between bg and the icon color.
//
// RopSwapBW exchanges the two colors, RopDisable draws the mask in
// ColorDisabled and the mirror options flip the mask. The mask is mirrored
// as a whole and then clipped to rc.
func (d *FB) DrawIcon(rc geom.Rect, id res.ID, bg Color, rop Rop) {
	ic, ok := d.icons.Icon(id)
	if !ok {
		return
	}
	fg := ic.FG
	back := bg.ToRGBA()
	if rop&RopDisable != 0 {
		fg = ColorDisabled.ToRGBA()
	}
	if rop&RopSwapBW != 0 {
		fg, back = back, fg
	}

	b := ic.Mask.Bounds()
	w, h := b.Dx(), b.Dy()
	cw, ch := min(w, int(rc.W)), min(h, int(rc.H))
	for y := 0; y < ch; y++ {
		sy := y
		if rop&RopMirrorV != 0 {
			sy = h - 1 - y
		}
		for x := 0; x < cw; x++ {
			sx := x
			if rop&RopMirrorH != 0 {
				sx = w - 1 - x
			}
			a := ic.Mask.AlphaAt(b.Min.X+sx, b.Min.Y+sy).A
			d.SetPixel(int16(int(rc.X)+x), int16(int(rc.Y)+y), mix(fg, back, a))
		}
	}
}

func mix(fg, bg color.RGBA, a uint8) color.RGBA {
	switch a {
	case 0:
		return bg
	case 0xff:
		return fg
	}
	blend := func(f, b uint8) uint8 {
		return uint8((int(f)*int(a) + int(b)*(255-int(a))) / 255)
	}
	return color.RGBA{R: blend(fg.R, bg.R), G: blend(fg.G, bg.G), B: blend(fg.B, bg.B), A: 0xff}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
