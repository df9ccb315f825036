package window

import (
	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/render"
	"ember/gui/roll"
	"ember/gui/text"
)

// Text is a static label.
type Text struct {
	Window
	Font  *font.Font
	Fg    display.Color
	Pad   geom.Padding
	Align geom.Align
	Wrap  bool

	s   string
	cur *text.Cursor
}

func NewText(rc geom.Rect, bg, fg display.Color, f *font.Font, s string) *Text {
	t := &Text{Window: New(rc, bg), Font: f, Fg: fg, Align: geom.AlignLeftCenter}
	t.setText(s)
	return t
}

// Label returns the current text.
func (t *Text) Label() string { return t.s }

// SetText replaces the label and requests a redraw.
func (t *Text) SetText(s string) {
	t.setText(s)
	t.Invalidate()
}

func (t *Text) setText(s string) {
	t.s = s
	t.cur = text.NewCursor(s)
}

func (t *Text) fg() display.Color {
	if t.IsEnabled() {
		return t.Fg
	}
	return display.ColorDisabled
}

func (t *Text) Draw(d display.Display) {
	flags := render.WithAlign(t.Align)
	if t.Wrap {
		flags |= render.FlagWordWrap
	}
	t.cur.Rewind()
	render.TextAligned(d, t.Rect, t.cur, t.Font, t.Bg, t.fg(), t.Pad, flags)
}

// RollText is a single-line label that scrolls when its text does not fit.
type RollText struct {
	Text
	roll roll.Roll
}

func NewRollText(rc geom.Rect, bg, fg display.Color, f *font.Font, s string) *RollText {
	rt := &RollText{Text: Text{Window: New(rc, bg), Font: f, Fg: fg, Align: geom.AlignLeftCenter}}
	rt.SetText(s)
	return rt
}

// SetText replaces the label, re-measures it and starts scrolling after a
// pause when it overflows.
func (rt *RollText) SetText(s string) {
	rt.setText(s)
	rt.roll.Init(rt.Rect, rt.cur, rt.Font, rt.Pad, rt.Align)
	if rt.roll.State == roll.Idle {
		rt.SetTimer(0)
	} else {
		rt.SetTimer(roll.PauseDelay)
	}
	rt.Invalidate()
}

// Rolling reports whether the label is animating.
func (rt *RollText) Rolling() bool { return rt.roll.State != roll.Idle }

func (rt *RollText) OnTimer() { rt.roll.Advance(&rt.Window) }

func (rt *RollText) Draw(d display.Display) {
	if rt.roll.State == roll.Pending {
		rt.roll.Init(rt.Rect, rt.cur, rt.Font, rt.Pad, rt.Align)
	}
	if rt.roll.State == roll.Idle {
		rt.Text.Draw(d)
		return
	}
	rt.roll.Render(d, rt.Rect, rt.cur, rt.Font, rt.Bg, rt.fg())
}
