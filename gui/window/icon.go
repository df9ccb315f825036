package window

import (
	"ember/gui/display"
	"ember/gui/geom"
	"ember/gui/render"
	"ember/gui/res"
)

// Icon draws one icon resource centered in its window. A shadowed icon is
// drawn with display.RopDisable.
type Icon struct {
	Window
	icons render.IconSizer
	id    res.ID
	Align geom.Align
	Inv   render.Invert
}

func NewIcon(rc geom.Rect, bg display.Color, icons render.IconSizer, id res.ID) *Icon {
	return &Icon{
		Window: New(rc, bg),
		icons:  icons,
		id:     id,
		Align:  geom.AlignCenter,
		Inv:    render.NotInvertible,
	}
}

func (ic *Icon) ID() res.ID { return ic.id }

// SetID switches the icon resource.
func (ic *Icon) SetID(id res.ID) {
	if ic.id == id {
		return
	}
	ic.id = id
	ic.Invalidate()
}

func (ic *Icon) Draw(d display.Display) {
	var rop display.Rop
	if !ic.IsEnabled() {
		rop |= display.RopDisable
	}
	render.IconAligned(d, ic.icons, ic.Rect, ic.id, ic.Bg, render.WithAlign(ic.Align)|render.WithRop(rop), ic.Inv)
}
