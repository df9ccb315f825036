// Package roll scrolls text that is wider than its box, one pixel per timer
// tick, pausing between passes.
package roll

import (
	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/render"
	"ember/gui/text"
)

// Timer periods requested from the host, in milliseconds.
const (
	StepDelay  = 20
	PauseDelay = 1000
)

// State is the position of a Roll in its animation cycle.
//
//	Idle                          text fits, never animates
//	Pending -> Setup              re-measure on the next redraw (Init)
//	Setup -> Go -> Stop -> Restart -> Pending -> Setup ...
type State uint8

const (
	Idle State = iota
	Pending
	Setup
	Go
	Stop
	Restart
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Setup:
		return "setup"
	case Go:
		return "go"
	case Stop:
		return "stop"
	case Restart:
		return "restart"
	default:
		return "unknown"
	}
}

// Host is the widget that owns a Roll.
type Host interface {
	Invalidate()
	SetTimer(ms uint32)
}

// Roll is the scroll state for one text assignment.
type Roll struct {
	// Rect is the measured text box, aligned and clipped to the padded widget area.
	Rect geom.Rect
	// Count is the number of whole-character shifts still to make.
	Count int
	// Progress is the number of characters already scrolled out.
	Progress int
	// PxCountdown is the sub-character shift still applied to the text.
	PxCountdown uint16
	State       State

	cellW uint16
}

// Init measures the text and computes the shift budget. Text that fits
// leaves the roll Idle; otherwise it is ready to animate from the start.
func (r *Roll) Init(rc geom.Rect, cur *text.Cursor, f *font.Font, pad geom.Padding, a geom.Align) {
	r.Rect = measureRect(rc, cur, f, pad, a)
	r.Count = text.ScrollSteps(r.Rect, cur, f.W)
	r.Progress = 0
	r.PxCountdown = 0
	r.cellW = f.W
	if r.Count == 0 {
		r.State = Idle
		return
	}
	r.State = Setup
}

// Reset puts the roll back in Pending so the next redraw re-measures.
func (r *Roll) Reset() {
	r.State = Pending
}

func measureRect(rc geom.Rect, cur *text.Cursor, f *font.Font, pad geom.Padding, a geom.Align) geom.Rect {
	rcPad := geom.SubPadding(rc, pad)
	size, _ := text.Measure(cur, f.W, f.H)
	cur.Rewind()
	if size.Empty() {
		return geom.Rect{}
	}
	return geom.Intersect(rcPad, geom.AlignRect(rcPad, size, a))
}

// Advance runs one timer tick of the animation.
func (r *Roll) Advance(h Host) {
	switch r.State {
	case Idle:
		return
	case Pending:
		h.SetTimer(StepDelay)
		h.Invalidate()
	case Setup:
		h.SetTimer(StepDelay)
		r.State = Go
		h.Invalidate()
	case Go:
		if r.Count == 0 && r.PxCountdown == 0 {
			r.State = Stop
			return
		}
		if r.PxCountdown == 0 {
			r.PxCountdown = r.cellW
			r.Count--
			r.Progress++
		}
		r.PxCountdown--
		h.Invalidate()
	case Stop:
		r.State = Restart
		h.SetTimer(PauseDelay)
	case Restart:
		r.State = Pending
		h.Invalidate()
	}
}

// Render draws the visible part of the text into rc. It draws nothing while
// the roll is Idle or Pending.
func (r *Roll) Render(d display.Display, rc geom.Rect, cur *text.Cursor, f *font.Font, bg, fg display.Color) {
	if r.State == Idle || r.State == Pending {
		return
	}
	if cur.Null() {
		d.FillRect(rc, bg)
		return
	}

	if unused := r.Rect.W % f.W; unused != 0 {
		d.FillRect(geom.Rect{X: r.Rect.X + r.Rect.W - unused, Y: r.Rect.Y, W: unused, H: r.Rect.H}, bg)
	}

	cur.Rewind()
	cur.Skip(r.Progress)

	set := r.Rect
	if r.PxCountdown != 0 {
		if r.PxCountdown >= set.W {
			set.W = 0
		} else {
			set.X += r.PxCountdown
			set.W -= r.PxCountdown
		}
	}

	if set.Empty() {
		d.FillRect(rc, bg)
		return
	}
	render.FillBetween(d, rc, set, bg)
	used := render.Text(d, set, cur, f, bg, fg, 0)
	if used.W < set.W {
		d.FillRect(geom.Rect{X: set.X + used.W, Y: set.Y, W: set.W - used.W, H: set.H}, bg)
	}
}
