package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/header"
	"ember/gui/res"
	"ember/gui/status"
	"ember/gui/window"
	"ember/hal"
)

const headerHeight = 24

type Config struct {
	// Titles are cycled through with Enter; the first one is shown at start.
	Titles []string
	// LinkPoll is the link state polling period; zero selects one second.
	LinkPoll time.Duration
	// IconPx is the rasterised icon size; zero selects 16.
	IconPx int
}

var defaultTitles = []string{
	"Home",
	"Printing: a_rather_long_file_name_that_does_not_fit.gcode",
	"Settings",
}

type system struct {
	log hal.Logger
	fb  hal.Framebuffer
	src *status.Source

	screen *window.Screen
	header *header.Header
	body   *window.Text

	keys   <-chan hal.KeyEvent
	ticks  <-chan uint64
	now    uint64
	titles []string
	title  int
}

// NewWithConfig builds the GUI over h and starts the status producers. The
// returned step function runs one iteration of the GUI loop; producers stop
// when ctx is done.
func NewWithConfig(ctx context.Context, h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(ctx, h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(ctx context.Context, h hal.HAL, cfg Config) (*system, error) {
	if cfg.LinkPoll <= 0 {
		cfg.LinkPoll = time.Second
	}
	if cfg.IconPx <= 0 {
		cfg.IconPx = 16
	}
	if len(cfg.Titles) == 0 {
		cfg.Titles = defaultTitles
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}

	s := &system{
		log:    h.Logger(),
		fb:     fb,
		src:    &status.Source{},
		titles: cfg.Titles,
	}

	icons, err := res.Builtin(cfg.IconPx, display.ColorWhite.ToRGBA())
	if err != nil {
		// Missing icons degrade to solid fills.
		s.log.WriteLineString(fmt.Sprintf("app: icons: %v", err))
	}

	s.src.SetLink(h.Network().Link())
	s.src.SetMediaInserted(h.Media().Present())

	w := uint16(fb.Width())
	s.header = header.New(header.Config{
		Rect:   geom.R(0, 0, w, headerHeight),
		Bg:     display.ColorOrange,
		Fg:     display.ColorBlack,
		Font:   font.Basic7x13,
		Icons:  icons,
		Source: s.src,
		Logger: s.log,
	})
	s.header.SetIcon(res.Home)
	s.header.SetText(s.titles[0])

	s.body = window.NewText(geom.R(0, headerHeight, w, uint16(fb.Height())-headerHeight), display.ColorBlack, display.ColorWhite, font.Basic7x13, "")
	s.body.Pad = geom.Pad(6)
	s.body.Wrap = true
	s.body.Align = geom.AlignLeftTop

	s.screen = window.NewScreen(display.NewFB(fb, icons))
	s.screen.Add(s.header)
	s.screen.Add(s.body)

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	s.startProducers(ctx, h, cfg.LinkPoll)
	s.updateBody()
	fb.ClearRGB(0, 0, 0)
	return s, nil
}

// startProducers runs the link poller and media watcher. The two are
// independent: a failing producer is logged and the other keeps publishing.
func (s *system) startProducers(ctx context.Context, h hal.HAL, poll time.Duration) {
	var g errgroup.Group
	g.Go(func() error {
		return pollLink(ctx, h.Network(), s.src, poll)
	})
	g.Go(func() error {
		err := h.Media().Watch(ctx, func(ev hal.MediaEvent) {
			switch ev {
			case hal.MediaInserted:
				s.src.SetMediaInserted(true)
			case hal.MediaRemoved:
				s.src.SetMediaInserted(false)
			case hal.MediaError:
				s.src.Raise(status.EventMediaError)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			s.log.WriteLineString(fmt.Sprintf("media: watch: %v", err))
		}
		return err
	})
	go func() {
		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			s.log.WriteLineString(fmt.Sprintf("app: producers stopped: %v", err))
		}
	}()
}

// pollLink publishes the link state whenever it differs from the state last
// published on src.
func pollLink(ctx context.Context, n hal.Network, src *status.Source, every time.Duration) error {
	last := src.Link()
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if l := n.Link(); l != last {
				last = l
				src.SetLink(l)
			}
		}
	}
}

func (s *system) step() error {
	s.drainTicks()
	s.drainKeys()

	usb, lan := s.header.StateUSB(), s.header.StateLAN()
	s.header.EventClr()
	if usb != s.header.StateUSB() || lan != s.header.StateLAN() {
		s.updateBody()
	}

	if s.screen.Step(s.now) == 0 {
		return nil
	}
	if err := s.fb.Present(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (s *system) drainTicks() {
	for {
		select {
		case seq := <-s.ticks:
			s.now = seq
		default:
			return
		}
	}
}

func (s *system) drainKeys() {
	for {
		select {
		case ev := <-s.keys:
			if ev.Press {
				s.handleKey(ev.Code)
			}
		default:
			return
		}
	}
}

func (s *system) handleKey(code hal.KeyCode) {
	switch code {
	case hal.KeyF1:
		s.src.SetMediaInserted(true)
	case hal.KeyF2:
		s.src.SetMediaInserted(false)
	case hal.KeyF3:
		s.src.Raise(status.EventMediaError)
	case hal.KeyTab:
		s.src.SetLink((s.src.Link() + 1) % (hal.LinkUp + 1))
	case hal.KeyEnter:
		s.title = (s.title + 1) % len(s.titles)
		s.header.SetText(s.titles[s.title])
	}
}

func (s *system) updateBody() {
	s.body.SetText(fmt.Sprintf("USB media: %v\nNetwork link: %v (%v)\n\nF1 insert, F2 remove, F3 media error, Tab cycle link, Enter next title.",
		s.header.StateUSB(), s.header.StateLAN(), s.src.Link()))
}
