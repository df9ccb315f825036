package render

import (
	"ember/gui/display"
	"ember/gui/geom"
	"ember/gui/res"
)

// Invert tells IconAligned whether an icon supports color inversion.
type Invert bool

const (
	Invertible    Invert = true
	NotInvertible Invert = false
)

// IconSizer resolves the intrinsic size of an icon. A zero size means the
// resource is missing.
type IconSizer interface {
	Size(id res.ID) geom.Size
}

// IconColor derives the fill color for an icon background from rop.
//
// RopSwapBW alone inverts c; RopSwapBW together with RopDisable selects
// display.ColorDisabled; RopDisable alone or no option keeps c.
func IconColor(c display.Color, rop display.Rop) display.Color {
	switch rop & (display.RopSwapBW | display.RopDisable) {
	case display.RopSwapBW | display.RopDisable:
		return display.ColorDisabled
	case display.RopSwapBW:
		return c.Invert()
	default:
		return c
	}
}

// IconAligned draws icon id aligned inside rc and fills the rest of rc with
// the derived background color. A missing icon fills all of rc.
//
// Icons that cannot be inverted have RopSwapBW cleared before the color is
// derived and before the options reach the display.
func IconAligned(d display.Display, icons IconSizer, rc geom.Rect, id res.ID, c display.Color, flags Flags, inv Invert) {
	rop := flags.Rop()
	if !inv {
		rop &^= display.RopSwapBW
	}
	fill := IconColor(c, rop)

	size := icons.Size(id)
	if size.Empty() {
		d.FillRect(rc, fill)
		return
	}
	rcIco := geom.Intersect(rc, geom.AlignRect(rc, size, flags.Align()))
	FillBetween(d, rc, rcIco, fill)
	d.DrawIcon(rcIco, id, c, rop)
}
