//go:build !tinygo

package hal

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRGB565(t *testing.T) {
	tcs := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{name: "black", want: 0x0000},
		{name: "white", r: 0xff, g: 0xff, b: 0xff, want: 0xffff},
		{name: "red", r: 0xff, want: 0xf800},
		{name: "green", g: 0xff, want: 0x07e0},
		{name: "blue", b: 0xff, want: 0x001f},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := RGB565(tc.r, tc.g, tc.b)
			if got != tc.want {
				t.Fatalf("expected %#04x, got %#04x", tc.want, got)
			}
			r, g, b := rgb888From565(got)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Fatalf("expected round trip %d,%d,%d, got %d,%d,%d", tc.r, tc.g, tc.b, r, g, b)
			}
		})
	}
}

func TestLinkFromFlags(t *testing.T) {
	tcs := []struct {
		name  string
		flags net.Flags
		want  LinkState
	}{
		{name: "admin_down", flags: 0, want: LinkDown},
		{name: "no_carrier", flags: net.FlagUp, want: LinkDown},
		{name: "up", flags: net.FlagUp | net.FlagRunning, want: LinkUp},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := linkFromFlags(tc.flags); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMissingInterfaceIsUnlinked(t *testing.T) {
	n := &hostNetwork{iface: "ember-does-not-exist0"}
	if got := n.Link(); got != LinkUnlinked {
		t.Fatalf("expected unlinked, got %v", got)
	}
}

func TestNewDefaults(t *testing.T) {
	h := newHost(HostConfig{})
	fb := h.Display().Framebuffer()
	if fb.Width() != 240 || fb.Height() != 320 {
		t.Fatalf("expected 240x320, got %dx%d", fb.Width(), fb.Height())
	}
	if h.Network().Link() != LinkUnlinked {
		t.Fatalf("expected unlinked without an interface")
	}
	if h.Media().Present() {
		t.Fatalf("expected no media without a path")
	}
}

func TestHostMediaWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card")
	m := &hostMedia{path: path}
	if m.Present() {
		t.Fatalf("expected no media before the path exists")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan MediaEvent, 8)
	done := make(chan error, 1)
	go func() {
		done <- m.Watch(ctx, func(ev MediaEvent) { events <- ev })
	}()
	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	expectEvent(t, events, MediaInserted)

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	expectEvent(t, events, MediaRemoved)

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func expectEvent(t *testing.T, events <-chan MediaEvent, want MediaEvent) {
	t.Helper()
	select {
	case got := <-events:
		if got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %v", want)
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestHostTimePublishesLatestMillis(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	ht := newHostTime(c.now)

	ht.step()
	if got := <-ht.Ticks(); got != 0 {
		t.Fatalf("expected 0 at start, got %d", got)
	}

	c.t = c.t.Add(15 * time.Millisecond)
	ht.step()
	c.t = c.t.Add(1500 * time.Microsecond)
	ht.step()
	if got := <-ht.Ticks(); got != 16 {
		t.Fatalf("expected only the latest time 16, got %d", got)
	}
	select {
	case v := <-ht.Ticks():
		t.Fatalf("expected one buffered value, got extra %d", v)
	default:
	}

	c.t = c.t.Add(-10 * time.Millisecond)
	ht.step()
	if got := <-ht.Ticks(); got != 16 {
		t.Fatalf("expected time not to go backwards, got %d", got)
	}
}

func TestHostKeyboardDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch); i++ {
		if !k.emit(KeyEvent{Code: KeyEnter, Press: true}) {
			t.Fatalf("expected event %d queued", i)
		}
	}
	if k.emit(KeyEvent{Code: KeyTab, Press: true}) {
		t.Fatalf("expected event dropped on a full queue")
	}
	if ev := <-k.Events(); ev.Code != KeyEnter {
		t.Fatalf("expected the oldest event first, got %+v", ev)
	}
}

func TestHostFramebufferSnapshot(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	dst := make([]byte, len(fb.Buffer()))

	if _, fresh := fb.snapshotRGB565(dst, 0); fresh {
		t.Fatalf("expected no frame before the first present")
	}

	fb.Buffer()[0] = 0xaa
	if _, fresh := fb.snapshotRGB565(dst, 0); fresh {
		t.Fatalf("expected drawing without present to stay unpublished")
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.Buffer()[0] = 0xbb

	seen, fresh := fb.snapshotRGB565(dst, 0)
	if !fresh || seen != 1 {
		t.Fatalf("expected frame 1, got %d (fresh=%v)", seen, fresh)
	}
	if dst[0] != 0xaa {
		t.Fatalf("expected the presented pixel 0xaa, got %#x", dst[0])
	}
	if _, fresh := fb.snapshotRGB565(dst, seen); fresh {
		t.Fatalf("expected an unchanged frame to be skipped")
	}

	fb.ClearRGB(0xff, 0xff, 0xff)
	if seen, fresh = fb.snapshotRGB565(dst, seen); !fresh || seen != 2 {
		t.Fatalf("expected ClearRGB to present frame 2, got %d (fresh=%v)", seen, fresh)
	}
	if dst[0] != 0xff || dst[3] != 0xff {
		t.Fatalf("expected a white frame, got % x", dst)
	}
}

