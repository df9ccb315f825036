package hal

import (
	"context"
	"errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
	KeyF3
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides the GUI clock.
//
// Ticks delivers the milliseconds elapsed since start. Only the latest value
// is buffered; readers keep the last one they receive.
type Time interface {
	Ticks() <-chan uint64
}

// LinkState is the state of the wired network interface.
type LinkState uint32

const (
	LinkUnlinked LinkState = iota
	LinkDown
	LinkUp
)

func (l LinkState) String() string {
	switch l {
	case LinkUnlinked:
		return "unlinked"
	case LinkDown:
		return "down"
	case LinkUp:
		return "up"
	default:
		return "unknown"
	}
}

// Network reports the link state of the wired interface.
type Network interface {
	Link() LinkState
}

// MediaEvent is a removable media notification.
type MediaEvent uint8

const (
	MediaInserted MediaEvent = iota + 1
	MediaRemoved
	MediaError
)

func (e MediaEvent) String() string {
	switch e {
	case MediaInserted:
		return "inserted"
	case MediaRemoved:
		return "removed"
	case MediaError:
		return "error"
	default:
		return "unknown"
	}
}

// Media reports removable media presence.
type Media interface {
	Present() bool
	// Watch calls fn for every media change until ctx is done.
	Watch(ctx context.Context, fn func(MediaEvent)) error
}

// HAL provides the only contact point between the GUI and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Network() Network
	Media() Media
}
