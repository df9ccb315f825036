package text

import "ember/gui/geom"

// Measure streams every remaining code point from c and returns the bounding
// box in pixels plus the number of code points consumed.
//
// A newline starts a new row; any other code point advances one cell. The
// cursor is left exhausted; callers rewind it before drawing.
func Measure(c *Cursor, cellW, cellH uint16) (size geom.Size, n int) {
	var x, y, w, h int
	for {
		r := c.Next()
		if r == 0 {
			break
		}
		n++
		if r == '\n' {
			if x > w {
				w = x
			}
			y += int(cellH)
			x = 0
		} else {
			x += int(cellW)
		}
		h = y + int(cellH)
	}
	if x > w {
		w = x
	}
	return geom.Size{W: clampU16(w), H: clampU16(h)}, n
}

// ScrollSteps returns how many whole-character shifts are needed to scroll
// the text through a box of width rect.W. Text that fits needs none.
func ScrollSteps(rect geom.Rect, c *Cursor, cellW uint16) int {
	if cellW == 0 {
		return 0
	}
	n := c.CountAndRewind()
	if n*int(cellW) > int(rect.W) {
		return n - int(rect.W/cellW)
	}
	return 0
}

func clampU16(v int) uint16 {
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}
