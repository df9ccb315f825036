package text

import (
	"testing"

	"ember/gui/geom"
)

func TestCursorNextAndRewind(t *testing.T) {
	c := NewCursor("aé€😀")
	want := []rune{'a', 'é', '€', '😀', 0, 0}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Fatalf("rune %d: expected %q, got %q", i, w, got)
		}
	}
	c.Rewind()
	if got := c.Next(); got != 'a' {
		t.Fatalf("expected 'a' after rewind, got %q", got)
	}
}

func TestCursorComposesCombiningMarks(t *testing.T) {
	c := NewCursor("e\u0301x")
	if n := c.CountAndRewind(); n != 2 {
		t.Fatalf("expected 2 code points after NFC, got %d", n)
	}
	if got := c.Next(); got != '\u00e9' {
		t.Fatalf("expected composed é, got %q", got)
	}
}

func TestCursorStopsAtNUL(t *testing.T) {
	c := NewCursor("ab\x00cd")
	if n := c.CountAndRewind(); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestCursorNull(t *testing.T) {
	var nilCur *Cursor
	if !nilCur.Null() || !NewCursor("").Null() {
		t.Fatal("expected nil and empty cursors to be null")
	}
	if nilCur.Next() != 0 {
		t.Fatal("expected nil cursor to yield 0")
	}
	if NewCursor("x").Null() {
		t.Fatal("expected non-empty cursor not to be null")
	}
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor("abc")
	if n := c.Skip(2); n != 2 {
		t.Fatalf("expected to skip 2, got %d", n)
	}
	if r := c.Next(); r != 'c' {
		t.Fatalf("expected 'c', got %q", r)
	}
	if n := c.Skip(5); n != 0 {
		t.Fatalf("expected nothing left to skip, got %d", n)
	}
}

func TestMeasure(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		size geom.Size
		n    int
	}{
		{name: "empty", in: "", size: geom.Size{}, n: 0},
		{name: "single_line", in: "abcd", size: geom.Size{W: 28, H: 13}, n: 4},
		{name: "two_lines", in: "ab\nabcde", size: geom.Size{W: 35, H: 26}, n: 8},
		{name: "longer_first", in: "abcdef\nab", size: geom.Size{W: 42, H: 26}, n: 9},
		{name: "utf8", in: "žluť", size: geom.Size{W: 28, H: 13}, n: 4},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.in)
			size, n := Measure(c, 7, 13)
			if size != tc.size || n != tc.n {
				t.Fatalf("Measure(%q) = %v, %d; want %v, %d", tc.in, size, n, tc.size, tc.n)
			}
			if c.Next() != 0 {
				t.Fatal("expected cursor to be exhausted")
			}
		})
	}
}

func TestScrollSteps(t *testing.T) {
	tcs := []struct {
		name string
		in   string
		w    uint16
		want int
	}{
		{name: "fits", in: "abc", w: 21, want: 0},
		{name: "fits_with_spare", in: "abc", w: 30, want: 0},
		{name: "overflow", in: "abcdefghij", w: 30, want: 6},
		{name: "empty", in: "", w: 30, want: 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(tc.in)
			got := ScrollSteps(geom.R(0, 0, tc.w, 13), c, 7)
			if got != tc.want {
				t.Fatalf("ScrollSteps(%q, w=%d) = %d; want %d", tc.in, tc.w, got, tc.want)
			}
			if len(tc.in) > 0 && c.Next() != rune(tc.in[0]) {
				t.Fatal("expected cursor rewound after counting")
			}
		})
	}
}

func drain(p Policy, c *Cursor) string {
	var out []rune
	for {
		r := p.Next(c)
		if r == 0 {
			return string(out)
		}
		out = append(out, r)
	}
}

func TestNoWrapPassesThrough(t *testing.T) {
	in := "one two\nthree"
	if got := drain(NoWrap{}, NewCursor(in)); got != in {
		t.Fatalf("expected %q, got %q", in, got)
	}
}

func TestWordWrap(t *testing.T) {
	tcs := []struct {
		name  string
		in    string
		cells int
		want  string
	}{
		{name: "fits", in: "hello", cells: 10, want: "hello"},
		{name: "break_at_space", in: "hello world", cells: 5, want: "hello\nworld"},
		{name: "move_word_down", in: "ab cd", cells: 4, want: "ab \ncd"},
		{name: "hard_break", in: "ab\ncd", cells: 10, want: "ab\ncd"},
		{name: "split_long_word", in: "abcdefgh", cells: 3, want: "abc\ndef\ngh"},
		{name: "zero_width", in: "abc", cells: 0, want: ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			w := &WordWrap{Cells: tc.cells, state: -1}
			if got := drain(w, NewCursor(tc.in)); got != tc.want {
				t.Fatalf("wrap(%q, %d) = %q; want %q", tc.in, tc.cells, got, tc.want)
			}
		})
	}
}

func TestNewWordWrapCells(t *testing.T) {
	if got := NewWordWrap(50, 7).Cells; got != 7 {
		t.Fatalf("expected 7 cells, got %d", got)
	}
	if got := NewWordWrap(50, 0).Cells; got != 0 {
		t.Fatalf("expected 0 cells for zero cell width, got %d", got)
	}
}
