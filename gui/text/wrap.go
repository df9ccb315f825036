package text

import "github.com/rivo/uniseg"

// Policy decides where line breaks occur while characters are streamed from
// a Cursor. Next returns 0 at the end of the text and '\n' where a line
// break must be taken.
type Policy interface {
	Next(c *Cursor) rune
}

// NoWrap passes code points through unchanged. Embedded newlines are not
// treated specially; the renderer draws them like any other glyph.
type NoWrap struct{}

func (NoWrap) Next(c *Cursor) rune { return c.Next() }

// WordWrap breaks lines at Unicode line-break opportunities so that no line
// exceeds Cells glyph cells. A segment longer than a full line is split
// mid-word.
type WordWrap struct {
	Cells int

	col     int
	pending []rune
	state   int
}

// NewWordWrap returns a word-wrap policy for a line of the given pixel
// width and cell width.
func NewWordWrap(width, cellW uint16) *WordWrap {
	cells := 0
	if cellW > 0 {
		cells = int(width / cellW)
	}
	return &WordWrap{Cells: cells, state: -1}
}

// Reset clears buffered state so the policy can be reused on a rewound cursor.
func (w *WordWrap) Reset() {
	w.col = 0
	w.pending = w.pending[:0]
	w.state = -1
}

func (w *WordWrap) Next(c *Cursor) rune {
	if w.Cells <= 0 {
		return 0
	}
	if len(w.pending) == 0 && !w.fill(c) {
		return 0
	}

	r := w.pending[0]
	if r == '\n' {
		w.pending = w.pending[1:]
		w.col = 0
		return '\n'
	}
	if w.col >= w.Cells {
		w.col = 0
		if r == ' ' {
			// A space that lands on the break is swallowed by it.
			w.pending = w.pending[1:]
		}
		return '\n'
	}
	w.pending = w.pending[1:]
	w.col++
	return r
}

// fill loads the next line segment from the cursor, inserting a break in
// front of it when its visible part does not fit on the current line.
func (w *WordWrap) fill(c *Cursor) bool {
	rest := c.rest()
	if len(rest) == 0 {
		return false
	}
	seg, _, _, state := uniseg.FirstLineSegment(rest, w.state)
	w.state = state

	w.pending = w.pending[:0]
	end := c.pos + len(seg)
	for c.pos < end {
		r := c.Next()
		if r == 0 {
			break
		}
		w.pending = append(w.pending, r)
	}
	if len(w.pending) == 0 {
		return false
	}

	visible := visibleLen(w.pending)
	if w.col > 0 && visible <= w.Cells && w.col+visible > w.Cells {
		w.pending = append([]rune{'\n'}, w.pending...)
	}
	return true
}

// visibleLen is the segment length without trailing spaces and newlines.
func visibleLen(seg []rune) int {
	n := len(seg)
	for n > 0 && (seg[n-1] == ' ' || seg[n-1] == '\n' || seg[n-1] == '\r') {
		n--
	}
	return n
}
