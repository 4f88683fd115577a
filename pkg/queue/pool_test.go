package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/models"
)

// stubControl records control calls for registry tests.
type stubControl struct {
	stopped bool
	reason  string
}

func (s *stubControl) Pause() {}

func (s *stubControl) Resume() {}

func (s *stubControl) Stop(reason string) { s.stopped = true; s.reason = reason }

func (s *stubControl) Continue() {}

func (s *stubControl) ReassignModel(models.Speaker, string) {}

func (s *stubControl) Interventions() []*models.Intervention { return nil }

func (s *stubControl) Intervene(_ context.Context, iv models.Intervention) (*models.Intervention, error) {
	return &iv, nil
}

func TestPoolRegisterAndCancelDebate(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterDebate("debate-1", cancel)

	// Cancel should succeed for a registered debate
	assert.True(t, pool.CancelDebate("debate-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown debate
	assert.False(t, pool.CancelDebate("unknown"))
}

func TestPoolUnregisterDebate(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterDebate("debate-1", cancel)
	assert.True(t, pool.CancelDebate("debate-1"))

	pool.UnregisterDebate("debate-1")
	assert.False(t, pool.CancelDebate("debate-1"))
}

func TestPoolControlRouting(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	// No control before the orchestrator attaches.
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.RegisterDebate("debate-1", cancel)
	_, ok := pool.Control("debate-1")
	assert.False(t, ok)

	ctrl := &stubControl{}
	pool.AttachControl("debate-1", ctrl)

	h, ok := pool.Control("debate-1")
	require.True(t, ok)
	h.Stop("test")
	assert.True(t, ctrl.stopped)
	assert.Equal(t, "test", ctrl.reason)

	// Unregister clears the control handle too.
	pool.UnregisterDebate("debate-1")
	_, ok = pool.Control("debate-1")
	assert.False(t, ok)
}

func TestPoolGetActiveDebateIDs(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	assert.Empty(t, pool.getActiveDebateIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterDebate("debate-a", cancel1)
	pool.RegisterDebate("debate-b", cancel2)

	ids := pool.getActiveDebateIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "debate-a")
	assert.Contains(t, ids, "debate-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, testQueueConfig(), nil)

	// First call closes the stop channel.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}
