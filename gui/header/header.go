// Package header implements the status bar at the top of the screen: a base
// icon, a title and the USB media and network link indicators.
package header

import (
	"ember/gui/display"
	"ember/gui/font"
	"ember/gui/geom"
	"ember/gui/render"
	"ember/gui/res"
	"ember/gui/status"
	"ember/gui/window"
	"ember/hal"
)

const (
	iconUSBWidth = 36 + 10
	iconLANWidth = 20 + 10
	iconsWidth   = iconUSBWidth + iconLANWidth
	marginLeft   = 10
)

// State is the tri-state of one indicator.
type State uint8

const (
	Off State = iota
	On
	Active
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Source reports link and media status and owns the pending media events.
type Source interface {
	Link() hal.LinkState
	MediaInserted() bool
	Clear(ev status.Event) bool
}

// Header is the status bar widget.
//
// Off hides an indicator, On shows it shadowed and Active shows it in full
// color. Only the transition methods below change indicator state.
type Header struct {
	window.Window

	src Source
	log hal.Logger

	base  *window.Icon
	label *window.RollText
	usb   *window.Icon
	lan   *window.Icon
}

// Config describes the header's collaborators.
type Config struct {
	Rect   geom.Rect
	Bg, Fg display.Color
	Font   *font.Font
	Icons  render.IconSizer
	Source Source
	Logger hal.Logger
}

// New builds a header and seeds both indicators from the current status.
func New(cfg Config) *Header {
	rc := cfg.Rect
	h := &Header{
		Window: window.New(rc, cfg.Bg),
		src:    cfg.Source,
		log:    cfg.Logger,
	}

	h.base = window.NewIcon(geom.R(rc.X+marginLeft, rc.Y, rc.H, rc.H), cfg.Bg, cfg.Icons, res.None)
	labelW := 0
	if w := int(rc.W) - iconsWidth - marginLeft - int(rc.H); w > 0 {
		labelW = w
	}
	h.label = window.NewRollText(geom.R(rc.X+marginLeft+rc.H, rc.Y, uint16(labelW), rc.H), cfg.Bg, cfg.Fg, cfg.Font, "")
	h.label.Align = geom.AlignLeftCenter
	h.usb = window.NewIcon(geom.R(rightOf(rc, iconUSBWidth), rc.Y, iconUSBWidth, rc.H), cfg.Bg, cfg.Icons, res.USB)
	h.lan = window.NewIcon(geom.R(rightOf(rc, iconsWidth), rc.Y, iconLANWidth, rc.H), cfg.Bg, cfg.Icons, res.LAN)

	if h.src.MediaInserted() {
		h.usbActivate()
	} else {
		h.usbOn()
	}
	h.updateLAN()
	return h
}

func rightOf(rc geom.Rect, w uint16) uint16 {
	if rc.W < w {
		return rc.X
	}
	return rc.X + rc.W - w
}

func (h *Header) Children() []window.Widget {
	return []window.Widget{h.base, h.label, h.usb, h.lan}
}

// Draw fills the strips no child covers and leaves the rest to the
// children, which are all repainted.
func (h *Header) Draw(d display.Display) {
	rc := h.Rect
	if m := min(uint16(marginLeft), rc.W); m > 0 {
		d.FillRect(geom.Rect{X: rc.X, Y: rc.Y, W: m, H: rc.H}, h.Bg)
	}
	if gapL, gapR := h.label.Rect.X+h.label.Rect.W, h.lan.Rect.X; gapL < gapR {
		d.FillRect(geom.Rect{X: gapL, Y: rc.Y, W: gapR - gapL, H: rc.H}, h.Bg)
	}
	for _, c := range h.Children() {
		c.Win().Invalidate()
	}
}

// SetIcon sets the base icon shown left of the title.
func (h *Header) SetIcon(id res.ID) {
	h.base.SetID(id)
	h.Invalidate()
}

// SetText sets the title.
func (h *Header) SetText(s string) {
	h.label.SetText(s)
	h.Invalidate()
}

func (h *Header) Text() string { return h.label.Label() }
func (h *Header) Icon() res.ID { return h.base.ID() }

// EventClr clears every media event.
func (h *Header) EventClr() {
	h.EventClrMediaInserted()
	h.EventClrMediaRemoved()
	h.EventClrMediaError()
}

// EventClrMediaInserted refreshes the link indicator, then consumes a
// pending media-inserted event and activates the USB indicator. It reports
// whether an event was pending.
func (h *Header) EventClrMediaInserted() bool {
	h.updateLAN()
	if !h.src.Clear(status.EventMediaInserted) {
		return false
	}
	h.usbActivate()
	return true
}

// EventClrMediaRemoved is EventClrMediaInserted for removal; the USB
// indicator drops back to On.
func (h *Header) EventClrMediaRemoved() bool {
	h.updateLAN()
	if !h.src.Clear(status.EventMediaRemoved) {
		return false
	}
	h.usbOn()
	return true
}

// EventClrMediaError consumes a pending media error. Indicators are left as
// they are apart from the link refresh.
func (h *Header) EventClrMediaError() bool {
	h.updateLAN()
	if !h.src.Clear(status.EventMediaError) {
		return false
	}
	h.logLine("header: media error")
	return true
}

// Link state is read without synchronising with the producer; a stale value
// is corrected on the next refresh.
func (h *Header) updateLAN() {
	switch h.src.Link() {
	case hal.LinkUnlinked:
		h.lanOff()
	case hal.LinkDown:
		h.lanOn()
	default:
		h.lanActivate()
	}
}

func (h *Header) usbOn()       { h.set(h.usb, On, "usb") }
func (h *Header) usbActivate() { h.set(h.usb, Active, "usb") }
func (h *Header) lanOff()      { h.set(h.lan, Off, "lan") }
func (h *Header) lanOn()       { h.set(h.lan, On, "lan") }
func (h *Header) lanActivate() { h.set(h.lan, Active, "lan") }

func (h *Header) set(ic *window.Icon, s State, name string) {
	if stateOf(ic) == s {
		return
	}
	switch s {
	case Off:
		ic.Hide()
	case On:
		ic.Show()
		ic.Shadow()
	case Active:
		ic.Show()
		ic.Unshadow()
	}
	h.logLine("header: " + name + "=" + s.String())
}

func stateOf(ic *window.Icon) State {
	if !ic.IsVisible() {
		return Off
	}
	if ic.IsEnabled() {
		return Active
	}
	return On
}

func (h *Header) StateUSB() State { return stateOf(h.usb) }
func (h *Header) StateLAN() State { return stateOf(h.lan) }

func (h *Header) logLine(s string) {
	if h.log != nil {
		h.log.WriteLineString(s)
	}
}
