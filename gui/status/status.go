// Package status holds the link and media state shared between hardware
// producers and the GUI task.
//
// Producers write from their own goroutines; the GUI reads each value with a
// single atomic load and tolerates a value that is one update stale.
package status

import (
	"sync/atomic"

	"ember/hal"
)

// Event is one pending media notification.
type Event uint32

const (
	EventMediaInserted Event = 1 << iota
	EventMediaRemoved
	EventMediaError

	EventAll = EventMediaInserted | EventMediaRemoved | EventMediaError
)

func (e Event) String() string {
	switch e {
	case EventMediaInserted:
		return "media-inserted"
	case EventMediaRemoved:
		return "media-removed"
	case EventMediaError:
		return "media-error"
	default:
		return "mixed"
	}
}

// Source is the event source read by the header.
type Source struct {
	link    atomic.Uint32
	media   atomic.Bool
	pending atomic.Uint32
}

func (s *Source) Link() hal.LinkState     { return hal.LinkState(s.link.Load()) }
func (s *Source) MediaInserted() bool     { return s.media.Load() }
func (s *Source) Pending() Event          { return Event(s.pending.Load()) }
func (s *Source) SetLink(l hal.LinkState) { s.link.Store(uint32(l)) }

// SetMediaInserted records the media presence and raises the matching
// event when it changes.
func (s *Source) SetMediaInserted(v bool) {
	if s.media.Swap(v) == v {
		return
	}
	if v {
		s.Raise(EventMediaInserted)
	} else {
		s.Raise(EventMediaRemoved)
	}
}

// Raise marks ev pending until a consumer clears it.
func (s *Source) Raise(ev Event) {
	for {
		old := s.pending.Load()
		if s.pending.CompareAndSwap(old, old|uint32(ev)) {
			return
		}
	}
}

// Clear reports whether ev was pending and clears it. Exactly one caller
// observes true per raise.
func (s *Source) Clear(ev Event) bool {
	for {
		old := s.pending.Load()
		if old&uint32(ev) == 0 {
			return false
		}
		if s.pending.CompareAndSwap(old, old&^uint32(ev)) {
			return true
		}
	}
}
