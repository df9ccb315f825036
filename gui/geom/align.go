package geom

// Align selects where a box is placed inside an outer rectangle.
//
// The low nibble holds the horizontal mode, the high nibble the vertical one.
type Align uint8

const (
	AlignLeft    Align = 0x00
	AlignHCenter Align = 0x01
	AlignRight   Align = 0x02

	AlignTop     Align = 0x00
	AlignVCenter Align = 0x10
	AlignBottom  Align = 0x20

	alignHMask Align = 0x0f
	alignVMask Align = 0xf0
)

const (
	AlignLeftTop      = AlignLeft | AlignTop
	AlignLeftCenter   = AlignLeft | AlignVCenter
	AlignLeftBottom   = AlignLeft | AlignBottom
	AlignCenterTop    = AlignHCenter | AlignTop
	AlignCenter       = AlignHCenter | AlignVCenter
	AlignCenterBottom = AlignHCenter | AlignBottom
	AlignRightTop     = AlignRight | AlignTop
	AlignRightCenter  = AlignRight | AlignVCenter
	AlignRightBottom  = AlignRight | AlignBottom
)

// AlignRect places a box of size s inside outer.
//
// The result is not clipped to outer. A box larger than outer on an axis is
// anchored at outer's origin on that axis.
func AlignRect(outer Rect, s Size, a Align) Rect {
	out := Rect{X: outer.X, Y: outer.Y, W: s.W, H: s.H}

	if outer.W > s.W {
		switch a & alignHMask {
		case AlignHCenter:
			out.X = outer.X + (outer.W-s.W)/2
		case AlignRight:
			out.X = outer.X + outer.W - s.W
		}
	}
	if outer.H > s.H {
		switch a & alignVMask {
		case AlignVCenter:
			out.Y = outer.Y + (outer.H-s.H)/2
		case AlignBottom:
			out.Y = outer.Y + outer.H - s.H
		}
	}
	return out
}
