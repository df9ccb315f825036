//go:build !tinygo

package hal

import "time"

// hostTime publishes the milliseconds elapsed since it was created.
type hostTime struct {
	ch    chan uint64
	now   func() time.Time
	start time.Time
	last  uint64
}

func newHostTime(now func() time.Time) *hostTime {
	if now == nil {
		now = time.Now
	}
	return &hostTime{ch: make(chan uint64, 1), now: now, start: now()}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the current time. An unread older value is replaced, so a
// slow reader only ever sees the latest time. Published times never go
// backwards.
func (t *hostTime) step() {
	if d := t.now().Sub(t.start); d > 0 {
		if ms := uint64(d / time.Millisecond); ms > t.last {
			t.last = ms
		}
	}
	for {
		select {
		case t.ch <- t.last:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
