package debate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/models"
)

func newTestQueue() (*InterventionQueue, *fakeClock) {
	clock := newFakeClock()
	return NewInterventionQueue(clock), clock
}

func TestInterventionQueueEnqueueValidation(t *testing.T) {
	q, _ := newTestQueue()

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := q.Enqueue(models.Intervention{Type: "heckle"})
		assert.True(t, IsInvalidIntervention(err))
	})

	t.Run("content required for questions", func(t *testing.T) {
		_, err := q.Enqueue(models.Intervention{Type: models.InterventionQuestion})
		assert.True(t, IsInvalidIntervention(err))
	})

	t.Run("control types need no content", func(t *testing.T) {
		iv, err := q.Enqueue(models.Intervention{Type: models.InterventionPauseRequest})
		require.NoError(t, err)
		assert.NotEmpty(t, iv.ID)
		assert.Equal(t, models.InterventionQueued, iv.Status)
	})

	t.Run("reassign requires target", func(t *testing.T) {
		_, err := q.Enqueue(models.Intervention{Type: models.InterventionReassignModel, Content: "gpt-4o"})
		assert.True(t, IsInvalidIntervention(err))

		_, err = q.Enqueue(models.Intervention{
			Type:       models.InterventionReassignModel,
			Content:    "gpt-4o",
			DirectedTo: models.SpeakerPro,
		})
		assert.NoError(t, err)
	})
}

func TestInterventionQueueClientKeyDedup(t *testing.T) {
	q, _ := newTestQueue()

	first, err := q.Enqueue(models.Intervention{
		Type:      models.InterventionQuestion,
		Content:   "What about energy costs?",
		ClientKey: "key-1",
	})
	require.NoError(t, err)

	second, err := q.Enqueue(models.Intervention{
		Type:      models.InterventionQuestion,
		Content:   "What about energy costs?",
		ClientKey: "key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "retried submission returns the original")
	assert.Equal(t, 1, q.PendingCount())
}

func TestInterventionQueueFIFOAndClarificationDeferral(t *testing.T) {
	q, _ := newTestQueue()

	clar, err := q.Enqueue(models.Intervention{Type: models.InterventionClarification, Content: "Define moratorium."})
	require.NoError(t, err)
	question, err := q.Enqueue(models.Intervention{Type: models.InterventionQuestion, Content: "Costs?"})
	require.NoError(t, err)

	// At a turn boundary the older clarification is skipped.
	ready := q.PeekReady(false)
	require.NotNil(t, ready)
	assert.Equal(t, question.ID, ready.ID)

	// At a phase boundary FIFO order holds and the clarification surfaces.
	ready = q.PeekReady(true)
	require.NotNil(t, ready)
	assert.Equal(t, clar.ID, ready.ID)
}

func TestInterventionQueueStatusLifecycle(t *testing.T) {
	q, clock := newTestQueue()

	iv, err := q.Enqueue(models.Intervention{Type: models.InterventionChallenge, Content: "Outdated data."})
	require.NoError(t, err)

	require.NoError(t, q.MarkProcessing(iv.ID))
	assert.Equal(t, models.InterventionProcessing, q.Get(iv.ID).Status)
	assert.Equal(t, 1, q.PendingCount(), "processing still counts as pending")

	clock.Advance(2 * time.Second)
	require.NoError(t, q.MarkCompleted(iv.ID, "Addressed in the next turn."))

	got := q.Get(iv.ID)
	assert.Equal(t, models.InterventionCompleted, got.Status)
	assert.Equal(t, "Addressed in the next turn.", got.Response)
	require.NotNil(t, got.ProcessedAt)
	assert.Equal(t, clock.Now(), *got.ProcessedAt)
	assert.Equal(t, 0, q.PendingCount())
	assert.Nil(t, q.PeekReady(true), "terminal interventions never surface again")
}

func TestInterventionQueueStatusMonotonic(t *testing.T) {
	q, _ := newTestQueue()

	iv, err := q.Enqueue(models.Intervention{Type: models.InterventionStop})
	require.NoError(t, err)

	require.NoError(t, q.MarkProcessing(iv.ID))
	require.NoError(t, q.MarkFailed(iv.ID, "worker lost"))

	err = q.MarkProcessing(iv.ID)
	assert.True(t, IsInvalidIntervention(err), "terminal status never regresses")
	err = q.MarkCompleted(iv.ID, "late response")
	assert.True(t, IsInvalidIntervention(err))
}

func TestInterventionQueueCompletedRequiresResponse(t *testing.T) {
	q, _ := newTestQueue()

	iv, err := q.Enqueue(models.Intervention{Type: models.InterventionQuestion, Content: "Why?"})
	require.NoError(t, err)
	require.NoError(t, q.MarkProcessing(iv.ID))

	err = q.MarkCompleted(iv.ID, "")
	assert.True(t, IsInvalidIntervention(err))
}

func TestInterventionQueueUnknownID(t *testing.T) {
	q, _ := newTestQueue()
	assert.ErrorIs(t, q.MarkProcessing("missing"), ErrNotFound)
}
