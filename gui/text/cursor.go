// Package text decodes, wraps and measures UTF-8 text for fixed-cell fonts.
package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Cursor walks a UTF-8 byte buffer one code point at a time.
//
// The buffer is normalised to NFC on construction so that a base letter and
// its combining marks occupy a single glyph cell where the composed form
// exists. A Cursor is per-call state and not safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor over s.
func NewCursor(s string) *Cursor {
	return &Cursor{buf: norm.NFC.Bytes([]byte(s))}
}

// NewCursorBytes returns a cursor over b. The caller must not modify b afterwards.
func NewCursorBytes(b []byte) *Cursor {
	if norm.NFC.IsNormal(b) {
		return &Cursor{buf: b}
	}
	return &Cursor{buf: norm.NFC.Bytes(b)}
}

// Null reports whether the cursor carries no text at all.
func (c *Cursor) Null() bool { return c == nil || len(c.buf) == 0 }

// Next returns the next code point, or 0 once the buffer is exhausted.
//
// Invalid sequences decode to utf8.RuneError and consume one byte. An
// embedded NUL terminates the stream.
func (c *Cursor) Next() rune {
	if c == nil || c.pos >= len(c.buf) {
		return 0
	}
	r, size := utf8.DecodeRune(c.buf[c.pos:])
	if r == 0 {
		c.pos = len(c.buf)
		return 0
	}
	c.pos += size
	return r
}

// Rewind moves the cursor back to the start of the buffer.
func (c *Cursor) Rewind() {
	if c != nil {
		c.pos = 0
	}
}

// Skip discards up to n code points and returns how many were consumed.
func (c *Cursor) Skip(n int) int {
	i := 0
	for ; i < n; i++ {
		if c.Next() == 0 {
			break
		}
	}
	return i
}

// CountAndRewind counts every remaining code point from the start and
// rewinds the cursor.
func (c *Cursor) CountAndRewind() int {
	c.Rewind()
	n := 0
	for c.Next() != 0 {
		n++
	}
	c.Rewind()
	return n
}

// rest returns the undecoded remainder of the buffer.
func (c *Cursor) rest() []byte {
	if c == nil || c.pos >= len(c.buf) {
		return nil
	}
	return c.buf[c.pos:]
}
