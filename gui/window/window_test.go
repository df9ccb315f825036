package window

import (
	"testing"

	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/res"
	"ember/gui/roll"
)

var testFont = &font.Font{W: 7, H: 13, Ascent: 11}

type iconCall struct {
	rc  geom.Rect
	id  res.ID
	rop display.Rop
}

type fakeDisplay struct {
	fills  []geom.Rect
	colors []display.Color
	runes  []rune
	fgs    []display.Color
	icons  []iconCall
}

func (d *fakeDisplay) FillRect(rc geom.Rect, c display.Color) {
	d.fills = append(d.fills, rc)
	d.colors = append(d.colors, c)
}

func (d *fakeDisplay) DrawChar(pt geom.Point, r rune, f *font.Font, bg, fg display.Color) {
	d.runes = append(d.runes, r)
	d.fgs = append(d.fgs, fg)
}

func (d *fakeDisplay) DrawIcon(rc geom.Rect, id res.ID, bg display.Color, rop display.Rop) {
	d.icons = append(d.icons, iconCall{rc: rc, id: id, rop: rop})
}

func (d *fakeDisplay) reset() { *d = fakeDisplay{} }

type sizer map[res.ID]geom.Size

func (s sizer) Size(id res.ID) geom.Size { return s[id] }

type ticker struct {
	Window
	fired int
}

func (tk *ticker) Draw(d display.Display) { d.FillRect(tk.Rect, tk.Bg) }
func (tk *ticker) OnTimer()               { tk.fired++ }

type group struct {
	Window
	kids  []Widget
	drawn int
}

func (g *group) Draw(d display.Display) {
	g.drawn++
	d.FillRect(g.Rect, g.Bg)
}

func (g *group) Children() []Widget { return g.kids }

func TestScreenRedrawsOnlyInvalid(t *testing.T) {
	d := &fakeDisplay{}
	s := NewScreen(d)
	tk := &ticker{Window: New(geom.R(0, 0, 10, 10), display.ColorBlack)}
	s.Add(tk)

	if n := s.Step(0); n != 1 {
		t.Fatalf("expected first step to paint 1 widget, got %d", n)
	}
	if n := s.Step(1); n != 0 {
		t.Fatalf("expected nothing to paint, got %d", n)
	}
	tk.Invalidate()
	if n := s.Step(2); n != 1 {
		t.Fatalf("expected invalidated widget to paint, got %d", n)
	}
}

func TestHiddenWidgetFillsBackground(t *testing.T) {
	d := &fakeDisplay{}
	s := NewScreen(d)
	ic := NewIcon(geom.R(0, 0, 16, 16), display.ColorOrange, sizer{res.USB: {W: 16, H: 16}}, res.USB)
	s.Add(ic)
	s.Step(0)
	if len(d.icons) != 1 {
		t.Fatalf("expected icon drawn, got %d", len(d.icons))
	}

	d.reset()
	ic.Hide()
	s.Step(1)
	if len(d.icons) != 0 || len(d.fills) != 1 || d.fills[0] != ic.Rect || d.colors[0] != display.ColorOrange {
		t.Fatalf("expected hidden icon to be cleared to background, got fills %v icons %v", d.fills, d.icons)
	}

	d.reset()
	ic.Hide()
	if n := s.Step(2); n != 0 {
		t.Fatalf("expected repeated hide to be a no-op, got %d paints", n)
	}
}

func TestTimerPeriod(t *testing.T) {
	s := NewScreen(&fakeDisplay{})
	tk := &ticker{Window: New(geom.R(0, 0, 1, 1), 0)}
	s.Add(tk)
	tk.SetTimer(20)

	tcs := []struct {
		now   uint64
		fired int
	}{
		{now: 100, fired: 0},
		{now: 110, fired: 0},
		{now: 120, fired: 1},
		{now: 139, fired: 1},
		{now: 140, fired: 2},
		{now: 175, fired: 3},
	}
	for _, tc := range tcs {
		s.Step(tc.now)
		if tk.fired != tc.fired {
			t.Fatalf("at %d: expected %d fires, got %d", tc.now, tc.fired, tk.fired)
		}
	}

	tk.SetTimer(0)
	s.Step(1000)
	if tk.fired != 3 {
		t.Fatalf("expected stopped timer, got %d fires", tk.fired)
	}
}

func TestShadowedIconDrawsDisabled(t *testing.T) {
	d := &fakeDisplay{}
	ic := NewIcon(geom.R(0, 0, 20, 16), display.ColorOrange, sizer{res.LAN: {W: 16, H: 16}}, res.LAN)
	ic.Shadow()
	if ic.IsEnabled() {
		t.Fatalf("expected shadowed icon to be disabled")
	}
	ic.Draw(d)
	if len(d.icons) != 1 || d.icons[0].rop&display.RopDisable == 0 {
		t.Fatalf("expected RopDisable, got %+v", d.icons)
	}
	if d.icons[0].rc.Origin() != (geom.Point{X: 2, Y: 0}) {
		t.Fatalf("expected centered icon at (2,0), got %v", d.icons[0].rc)
	}

	d.reset()
	ic.Unshadow()
	ic.Draw(d)
	if d.icons[0].rop != 0 {
		t.Fatalf("expected no raster options, got %v", d.icons[0].rop)
	}
}

func TestContainerPaintsChildren(t *testing.T) {
	d := &fakeDisplay{}
	s := NewScreen(d)
	kid := &ticker{Window: New(geom.R(2, 2, 4, 4), display.ColorWhite)}
	g := &group{Window: New(geom.R(0, 0, 10, 10), display.ColorBlack), kids: []Widget{kid}}
	s.Add(g)

	if n := s.Step(0); n != 2 {
		t.Fatalf("expected parent and child painted, got %d", n)
	}
	if d.fills[0] != g.Rect || d.fills[1] != kid.Rect {
		t.Fatalf("expected parent before child, got %v", d.fills)
	}

	kid.SetTimer(5)
	s.Step(10)
	s.Step(15)
	if kid.fired != 1 {
		t.Fatalf("expected child timer to fire, got %d", kid.fired)
	}

	g.Hide()
	kid.Invalidate()
	d.reset()
	if n := s.Step(20); n != 1 || len(d.fills) != 1 || d.fills[0] != g.Rect {
		t.Fatalf("expected only the hidden parent to be cleared, got %d paints %v", n, d.fills)
	}
}

func TestTextShadowedUsesDisabledColor(t *testing.T) {
	d := &fakeDisplay{}
	tx := NewText(geom.R(0, 0, 70, 13), display.ColorBlack, display.ColorWhite, testFont, "hi")
	tx.Shadow()
	tx.Draw(d)
	if string(d.runes) != "hi" {
		t.Fatalf("expected \"hi\", got %q", string(d.runes))
	}
	for _, fg := range d.fgs {
		if fg != display.ColorDisabled {
			t.Fatalf("expected disabled color, got %v", fg)
		}
	}

	tx.SetText("bye")
	if !tx.IsInvalid() || tx.Label() != "bye" {
		t.Fatalf("expected SetText to invalidate and store the label")
	}
}

func TestRollTextFittingDoesNotAnimate(t *testing.T) {
	rt := NewRollText(geom.R(0, 0, 70, 13), display.ColorBlack, display.ColorWhite, testFont, "short")
	if rt.Rolling() || rt.TimerPeriod() != 0 {
		t.Fatalf("expected a static label, got rolling=%v timer=%d", rt.Rolling(), rt.TimerPeriod())
	}
	d := &fakeDisplay{}
	rt.Draw(d)
	if string(d.runes) != "short" {
		t.Fatalf("expected \"short\", got %q", string(d.runes))
	}
}

func TestRollTextScrolls(t *testing.T) {
	d := &fakeDisplay{}
	s := NewScreen(d)
	rt := NewRollText(geom.R(0, 0, 28, 13), display.ColorBlack, display.ColorWhite, testFont, "abcdefg")
	s.Add(rt)
	if !rt.Rolling() || rt.TimerPeriod() != roll.PauseDelay {
		t.Fatalf("expected rolling label waiting %dms, got timer=%d", roll.PauseDelay, rt.TimerPeriod())
	}

	s.Step(0)
	if string(d.runes) != "abcd" {
		t.Fatalf("expected first frame \"abcd\", got %q", string(d.runes))
	}

	// Pause expires: the roll switches to the step delay.
	s.Step(roll.PauseDelay)
	if rt.TimerPeriod() != roll.StepDelay {
		t.Fatalf("expected step delay, got %d", rt.TimerPeriod())
	}

	now := uint64(roll.PauseDelay)
	for i := 0; i < 3*int(testFont.W)+1; i++ {
		now += roll.StepDelay
		s.Step(now)
	}
	d.reset()
	rt.Invalidate()
	s.Step(now)
	if string(d.runes) != "defg" {
		t.Fatalf("expected scrolled frame \"defg\", got %q", string(d.runes))
	}
}
