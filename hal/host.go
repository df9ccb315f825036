//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig selects the simulated hardware of the host HAL.
type HostConfig struct {
	// Width and Height of the framebuffer; zero selects 240x320.
	Width, Height int
	// Iface is the network interface whose link state is reported. Empty
	// reports LinkUnlinked.
	Iface string
	// MediaPath is watched for removable media: the path existing means
	// media is inserted. Empty reports no media.
	MediaPath string
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
	net    Network
	media  Media
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 240
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	logger := &hostLogger{w: os.Stdout}

	var net Network = nullNetwork{}
	if cfg.Iface != "" {
		net = &hostNetwork{iface: cfg.Iface}
	}
	var media Media = nullMedia{}
	if cfg.MediaPath != "" {
		media = &hostMedia{path: cfg.MediaPath}
	}

	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(nil),
		net:    net,
		media:  media,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Network() Network { return h.net }
func (h *hostHAL) Media() Media     { return h.media }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
