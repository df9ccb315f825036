// Package window provides the widget base, the screen loop that drives
// timers and redraws, and the basic icon and text widgets.
package window

import (
	"ember/gui/display"
	"ember/gui/geom"
)

const (
	flagVisible uint8 = 1 << iota
	flagShadowed
	flagInvalid
)

// Window is the state every widget shares: its rectangle, background,
// visibility flags and an optional periodic timer.
//
// A new Window is visible, enabled and invalid.
type Window struct {
	Rect geom.Rect
	Bg   display.Color

	flags uint8

	period uint32
	due    uint64
	rearm  bool
}

// New returns a window covering rc.
func New(rc geom.Rect, bg display.Color) Window {
	return Window{Rect: rc, Bg: bg, flags: flagVisible | flagInvalid}
}

func (w *Window) Win() *Window { return w }

// Invalidate requests a redraw on the next screen step.
func (w *Window) Invalidate() { w.flags |= flagInvalid }

func (w *Window) IsInvalid() bool { return w.flags&flagInvalid != 0 }
func (w *Window) IsVisible() bool { return w.flags&flagVisible != 0 }

// IsEnabled reports whether the window is drawn in its normal colors.
func (w *Window) IsEnabled() bool { return w.flags&flagShadowed == 0 }

func (w *Window) Show()     { w.set(flagVisible, true) }
func (w *Window) Hide()     { w.set(flagVisible, false) }
func (w *Window) Shadow()   { w.set(flagShadowed, true) }
func (w *Window) Unshadow() { w.set(flagShadowed, false) }

func (w *Window) set(flag uint8, on bool) {
	old := w.flags
	if on {
		w.flags |= flag
	} else {
		w.flags &^= flag
	}
	if w.flags != old {
		w.Invalidate()
	}
}

// SetTimer fires the window's OnTimer every ms milliseconds, counted from
// the next screen step. Zero stops the timer.
func (w *Window) SetTimer(ms uint32) {
	w.period = ms
	w.rearm = ms != 0
}

// TimerPeriod returns the current timer period, zero when stopped.
func (w *Window) TimerPeriod() uint32 { return w.period }

// fire reports whether the timer expired at now and schedules the next
// expiry.
func (w *Window) fire(now uint64) bool {
	if w.period == 0 {
		return false
	}
	if w.rearm {
		w.rearm = false
		w.due = now + uint64(w.period)
		return false
	}
	if now < w.due {
		return false
	}
	w.due = now + uint64(w.period)
	return true
}

// Widget is anything the screen can draw.
type Widget interface {
	Win() *Window
	// Draw paints every pixel of Win().Rect.
	Draw(d display.Display)
}

// Timed widgets receive OnTimer when their window timer expires.
type Timed interface {
	OnTimer()
}

// Container widgets own child widgets, drawn after the container itself.
type Container interface {
	Children() []Widget
}
