package debate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/models"
)

// fakeClock is a manually advanced Clock shared by the core tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time

	timersMu sync.Mutex
	timers   []fakeTimer
}

type fakeTimer struct {
	at time.Time
	ch chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) ElapsedSince(t time.Time) int64 {
	return c.Now().Sub(t).Milliseconds()
}

func (c *fakeClock) NewTimer(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.timersMu.Lock()
	c.timers = append(c.timers, fakeTimer{at: c.Now().Add(d), ch: ch})
	c.timersMu.Unlock()
	return ch
}

// Advance moves the clock forward and fires any due timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	c.timersMu.Lock()
	defer c.timersMu.Unlock()
	remaining := c.timers[:0]
	for _, t := range c.timers {
		if !t.at.After(now) {
			t.ch <- now
		} else {
			remaining = append(remaining, t)
		}
	}
	c.timers = remaining
}

func TestStateMachineLegalPath(t *testing.T) {
	clock := newFakeClock()
	m := NewStateMachine(clock)

	path := []models.Phase{
		models.PhaseOpening, models.PhaseConstructive, models.PhaseCrossExam,
		models.PhaseRebuttal, models.PhaseClosing, models.PhaseSynthesis,
		models.PhaseCompleted,
	}

	prev := models.PhaseInitializing
	for _, next := range path {
		tr, err := m.TransitionTo(next, models.SpeakerSystem)
		require.NoError(t, err)
		assert.Equal(t, prev, tr.From)
		assert.Equal(t, next, tr.To)
		assert.Equal(t, next, m.Phase())
		prev = next
	}
}

func TestStateMachineInformalPath(t *testing.T) {
	m := NewStateMachine(newFakeClock())

	for _, next := range []models.Phase{models.PhaseInformal, models.PhaseWrapup, models.PhaseCompleted} {
		_, err := m.TransitionTo(next, models.SpeakerSystem)
		require.NoError(t, err)
	}
	assert.Equal(t, models.PhaseCompleted, m.Phase())
}

func TestStateMachineInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []models.Phase
		to   models.Phase
	}{
		{"skip phase", []models.Phase{models.PhaseOpening}, models.PhaseCrossExam},
		{"backwards", []models.Phase{models.PhaseOpening, models.PhaseConstructive}, models.PhaseOpening},
		{"pause from initializing", nil, models.PhasePaused},
		{"pause synthesis", []models.Phase{models.PhaseOpening, models.PhaseConstructive, models.PhaseCrossExam, models.PhaseRebuttal, models.PhaseClosing, models.PhaseSynthesis}, models.PhasePaused},
		{"completed is terminal", []models.Phase{models.PhaseInformal, models.PhaseWrapup, models.PhaseCompleted}, models.PhaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStateMachine(newFakeClock())
			for _, p := range tt.path {
				_, err := m.TransitionTo(p, models.SpeakerSystem)
				require.NoError(t, err)
			}
			before := m.Phase()

			_, err := m.TransitionTo(tt.to, models.SpeakerSystem)
			require.Error(t, err)
			assert.True(t, IsInvalidTransition(err))
			assert.Equal(t, before, m.Phase(), "state must not mutate on invalid transition")
		})
	}
}

func TestStateMachinePauseSnapshot(t *testing.T) {
	m := NewStateMachine(newFakeClock())
	_, err := m.TransitionTo(models.PhaseOpening, models.SpeakerSystem)
	require.NoError(t, err)
	_, err = m.TransitionTo(models.PhaseConstructive, models.SpeakerPro)
	require.NoError(t, err)

	_, err = m.TransitionTo(models.PhasePaused, models.SpeakerUser)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseConstructive, m.PreviousPhase())

	// From paused, only the previous phase or error is legal.
	_, err = m.TransitionTo(models.PhaseCrossExam, models.SpeakerSystem)
	assert.True(t, IsInvalidTransition(err))

	tr, err := m.TransitionTo(models.PhaseConstructive, models.SpeakerPro)
	require.NoError(t, err)
	assert.Equal(t, models.PhasePaused, tr.From)
	assert.Equal(t, models.PhaseConstructive, m.Phase())
}

func TestStateMachineElapsedExcludesPaused(t *testing.T) {
	clock := newFakeClock()
	m := NewStateMachine(clock)
	_, err := m.TransitionTo(models.PhaseOpening, models.SpeakerSystem)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	_, err = m.TransitionTo(models.PhaseConstructive, models.SpeakerPro)
	require.NoError(t, err)

	_, err = m.TransitionTo(models.PhasePaused, models.SpeakerUser)
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	assert.Equal(t, int64(10_000), m.ElapsedMS(), "paused time excluded while paused")

	_, err = m.TransitionTo(models.PhaseConstructive, models.SpeakerPro)
	require.NoError(t, err)
	clock.Advance(5 * time.Second)

	assert.Equal(t, int64(15_000), m.ElapsedMS())
	assert.Equal(t, int64(30_000), m.PausedMS())
}

func TestStateMachineNextPhase(t *testing.T) {
	m := NewStateMachine(newFakeClock())
	assert.Equal(t, models.PhaseOpening, m.NextPhase())

	_, err := m.TransitionTo(models.PhaseOpening, models.SpeakerSystem)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseConstructive, m.NextPhase())

	_, err = m.TransitionTo(models.PhasePaused, models.SpeakerUser)
	require.NoError(t, err)
	assert.Equal(t, models.Phase(""), m.NextPhase())
}
