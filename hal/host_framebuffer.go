//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is an RGB565 buffer in memory. Present publishes the
// buffer as a numbered frame; the preview window copies a frame only once.
type hostFramebuffer struct {
	width, height int
	stride        int
	buf           []byte

	mu    sync.Mutex
	frame uint64
	shown []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		shown:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present copies the drawing buffer into the published frame.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.shown, f.buf)
	f.frame++
	return nil
}

// ClearRGB fills the drawing buffer and presents it.
func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo, hi := byte(pixel), byte(pixel>>8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
	_ = f.Present()
}

// snapshotRGB565 copies the latest presented frame into dst when it is newer
// than seen. It returns the frame number and whether dst was written.
func (f *hostFramebuffer) snapshotRGB565(dst []byte, seen uint64) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.frame == seen {
		return seen, false
	}
	copy(dst, f.shown)
	return f.frame, true
}
