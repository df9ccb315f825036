package window

import "ember/gui/display"

// Screen runs the cooperative GUI loop over a set of top-level widgets.
type Screen struct {
	d       display.Display
	widgets []Widget
	now     uint64
}

func NewScreen(d display.Display) *Screen {
	return &Screen{d: d}
}

func (s *Screen) Add(w Widget) { s.widgets = append(s.widgets, w) }

// Now returns the time passed to the last Step, in milliseconds.
func (s *Screen) Now() uint64 { return s.now }

// Step fires expired timers and redraws invalid widgets. It returns the
// number of widgets painted.
func (s *Screen) Step(now uint64) int {
	s.now = now
	for _, w := range s.widgets {
		s.tick(w, now)
	}
	n := 0
	for _, w := range s.widgets {
		n += s.paint(w)
	}
	return n
}

func (s *Screen) tick(w Widget, now uint64) {
	if t, ok := w.(Timed); ok && w.Win().fire(now) {
		t.OnTimer()
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			s.tick(child, now)
		}
	}
}

func (s *Screen) paint(w Widget) int {
	n := 0
	win := w.Win()
	if win.IsInvalid() {
		win.flags &^= flagInvalid
		if win.IsVisible() {
			w.Draw(s.d)
		} else {
			s.d.FillRect(win.Rect, win.Bg)
		}
		n++
	}
	if c, ok := w.(Container); ok && win.IsVisible() {
		for _, child := range c.Children() {
			n += s.paint(child)
		}
	}
	return n
}
