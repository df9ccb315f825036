// Package geom holds the integer pixel geometry shared by the renderer and widgets.
package geom

// Point is a pixel position.
type Point struct {
	X, Y uint16
}

// Size is a pixel extent.
type Size struct {
	W, H uint16
}

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool { return s.W == 0 || s.H == 0 }

// Rect is a pixel rectangle. The zero value is an empty rectangle at the origin.
type Rect struct {
	X, Y, W, H uint16
}

// R is shorthand for a Rect literal.
func R(x, y, w, h uint16) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Size() Size    { return Size{W: r.W, H: r.H} }
func (r Rect) Empty() bool   { return r.W == 0 || r.H == 0 }
func (r Rect) Area() int     { return int(r.W) * int(r.H) }

func (r Rect) right() int  { return int(r.X) + int(r.W) }
func (r Rect) bottom() int { return int(r.Y) + int(r.H) }

// Padding is a set of insets applied to a rectangle.
type Padding struct {
	Left, Top, Right, Bottom uint8
}

// Pad returns a Padding with the same inset on all four sides.
func Pad(all uint8) Padding {
	return Padding{Left: all, Top: all, Right: all, Bottom: all}
}

// InRect reports whether all four edges of inner lie within outer (inclusive).
func InRect(inner, outer Rect) bool {
	return inner.X >= outer.X &&
		inner.Y >= outer.Y &&
		inner.right() <= outer.right() &&
		inner.bottom() <= outer.bottom()
}

// Intersect returns the largest rectangle contained in both a and b.
// Disjoint rectangles yield the zero Rect.
func Intersect(a, b Rect) Rect {
	x0 := maxInt(int(a.X), int(b.X))
	y0 := maxInt(int(a.Y), int(b.Y))
	x1 := minInt(a.right(), b.right())
	y1 := minInt(a.bottom(), b.bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: uint16(x0), Y: uint16(y0), W: uint16(x1 - x0), H: uint16(y1 - y0)}
}

// SubPadding shrinks r by the insets of p. Width and height clamp at zero.
func SubPadding(r Rect, p Padding) Rect {
	dw := int(p.Left) + int(p.Right)
	dh := int(p.Top) + int(p.Bottom)
	out := Rect{X: r.X + uint16(p.Left), Y: r.Y + uint16(p.Top)}
	if int(r.W) > dw {
		out.W = r.W - uint16(dw)
	}
	if int(r.H) > dh {
		out.H = r.H - uint16(dh)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
