// Package frame coalesces layout work to at most one run per rendering frame.
//
// A Scheduler holds a single pending slot. Scheduling while a tick is already
// pending supersedes it: the older tick still arrives, but Accept rejects it,
// so only the most recent request does any work. This is the same tagging
// scheme bubbles uses to keep stale spinner ticks from advancing a spinner.
package frame

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is one frame at 60 fps.
const DefaultInterval = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Msg is delivered when a scheduled frame boundary is reached.
type Msg struct {
	// ID identifies the Scheduler the tick belongs to.
	ID int
	// Gen is the scheduling generation; only the latest one is accepted.
	Gen  int
	Time time.Time
}

// Scheduler is a cancelable single-slot frame task. It is used from a single
// Bubble Tea Update loop and is not safe for concurrent use.
type Scheduler struct {
	id       int
	gen      int
	pending  bool
	interval time.Duration
}

// New returns a Scheduler ticking after interval. A non-positive interval
// selects DefaultInterval.
func New(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{id: nextID(), interval: interval}
}

// ID returns the scheduler's identity, carried in every Msg it produces.
func (s *Scheduler) ID() int { return s.id }

// Interval returns the frame interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Pending reports whether a frame is scheduled and not yet accepted.
func (s *Scheduler) Pending() bool { return s.pending }

// Schedule requests work at the next frame boundary, replacing any request
// that has not fired yet. Boundaries are aligned to the clock, so a steady
// stream of requests still gets one frame per interval.
func (s *Scheduler) Schedule() tea.Cmd {
	s.gen++
	s.pending = true
	id, gen := s.id, s.gen
	return tea.Every(s.interval, func(t time.Time) tea.Msg {
		return Msg{ID: id, Gen: gen, Time: t}
	})
}

// Accept reports whether msg is the scheduler's current pending frame. An
// accepted frame clears the slot; stale, foreign and cancelled ticks are
// rejected.
func (s *Scheduler) Accept(msg Msg) bool {
	if msg.ID != s.id || !s.pending || msg.Gen != s.gen {
		return false
	}
	s.pending = false
	return true
}

// Cancel drops any pending frame so that it is rejected when it arrives.
func (s *Scheduler) Cancel() {
	if !s.pending {
		return
	}
	s.gen++
	s.pending = false
}
