// Package res resolves icon ids to alpha-mask bitmaps.
package res

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"ember/gui/geom"
)

// ID identifies an icon resource. Zero is never registered.
type ID uint16

const (
	None ID = iota
	Home
	USB
	LAN
)

// Icon is a rasterised icon: an alpha mask drawn in a fixed foreground color.
type Icon struct {
	Mask *image.Alpha
	FG   color.RGBA
}

// Registry maps ids to icons. It is filled at startup and read-only afterwards.
type Registry struct {
	icons map[ID]Icon
}

func NewRegistry() *Registry {
	return &Registry{icons: make(map[ID]Icon)}
}

// Register stores mask under id.
func (r *Registry) Register(id ID, mask *image.Alpha, fg color.RGBA) error {
	if id == None {
		return errors.New("res: cannot register icon id 0")
	}
	if mask == nil {
		return fmt.Errorf("res: icon %d: nil mask", id)
	}
	r.icons[id] = Icon{Mask: mask, FG: fg}
	return nil
}

// RegisterIconVG rasterises IconVG data into a px×px mask and stores it under id.
func (r *Registry) RegisterIconVG(id ID, data []byte, px int, fg color.RGBA) error {
	if px <= 0 {
		return fmt.Errorf("res: icon %d: invalid size %d", id, px)
	}
	mask := image.NewAlpha(image.Rect(0, 0, px, px))
	var z iconvg.Rasterizer
	z.SetDstImage(mask, mask.Bounds(), draw.Over)
	if err := iconvg.Decode(&z, data, nil); err != nil {
		return fmt.Errorf("res: icon %d: %w", id, err)
	}
	return r.Register(id, mask, fg)
}

// Size returns the intrinsic pixel size of id. Missing icons report 0x0.
func (r *Registry) Size(id ID) geom.Size {
	if r == nil {
		return geom.Size{}
	}
	ic, ok := r.icons[id]
	if !ok {
		return geom.Size{}
	}
	b := ic.Mask.Bounds()
	return geom.Size{W: uint16(b.Dx()), H: uint16(b.Dy())}
}

// Icon returns the icon registered under id.
func (r *Registry) Icon(id ID) (Icon, bool) {
	if r == nil {
		return Icon{}, false
	}
	ic, ok := r.icons[id]
	return ic, ok
}

// Builtin returns a registry holding the header icons at px pixels.
//
// Icons that fail to rasterise are left out; the renderer fills their area
// with a solid color instead. The returned error lists every failure.
func Builtin(px int, fg color.RGBA) (*Registry, error) {
	r := NewRegistry()
	var errs []error
	for _, b := range []struct {
		id   ID
		data []byte
	}{
		{id: Home, data: icons.ActionHome},
		{id: USB, data: icons.HardwareMemory},
		{id: LAN, data: icons.ActionSettingsEthernet},
	} {
		if err := r.RegisterIconVG(b.id, b.data, px, fg); err != nil {
			errs = append(errs, err)
		}
	}
	return r, errors.Join(errs...)
}
