package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fire runs a scheduled command and returns its frame message.
func fire(t *testing.T, s *Scheduler) Msg {
	t.Helper()
	cmd := s.Schedule()
	require.NotNil(t, cmd)
	msg, ok := cmd().(Msg)
	require.True(t, ok)
	return msg
}

func TestNew_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, New(0).Interval())
	assert.Equal(t, time.Millisecond, New(time.Millisecond).Interval())
}

func TestAccept_CurrentFrame(t *testing.T) {
	s := New(time.Millisecond)
	msg := fire(t, s)
	assert.True(t, s.Pending())
	assert.True(t, s.Accept(msg))
	assert.False(t, s.Pending())
	assert.False(t, s.Accept(msg), "a frame is accepted only once")
}

func TestAccept_LastScheduleWins(t *testing.T) {
	s := New(time.Millisecond)
	first := fire(t, s)
	second := fire(t, s)

	assert.False(t, s.Accept(first), "superseded frame must be dropped")
	assert.True(t, s.Pending())
	assert.True(t, s.Accept(second))
}

func TestAccept_BurstCoalescesToOne(t *testing.T) {
	s := New(time.Millisecond)
	var msgs []Msg
	for i := 0; i < 5; i++ {
		msgs = append(msgs, fire(t, s))
	}
	accepted := 0
	for _, m := range msgs {
		if s.Accept(m) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestAccept_ForeignScheduler(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)
	msg := fire(t, a)
	b.Schedule()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, b.Accept(msg))
	assert.True(t, a.Accept(msg))
}

func TestCancel(t *testing.T) {
	s := New(time.Millisecond)
	msg := fire(t, s)
	s.Cancel()
	assert.False(t, s.Pending())
	assert.False(t, s.Accept(msg), "cancelled frame must not run")

	s.Cancel()
	next := fire(t, s)
	assert.True(t, s.Accept(next), "scheduler is reusable after cancel")
}

func TestSchedule_AlignsToFrameBoundary(t *testing.T) {
	const interval = 100 * time.Millisecond
	s := New(interval)

	for i := 0; i < 3; i++ {
		// Requests made at arbitrary points still fire on a boundary.
		time.Sleep(time.Duration(15*(i+1)) * time.Millisecond)
		msg := fire(t, s)
		assert.Less(t, msg.Time.Sub(msg.Time.Truncate(interval)), 40*time.Millisecond)
		assert.True(t, s.Accept(msg))
	}
}
