package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entutterance "github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/models"
	testdb "github.com/debatelab/agora/test/database"
)

func newTestID() string {
	return uuid.New().String()
}

func TestEntStore_AppendUtterance(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Append test"})
	require.NoError(t, err)

	u := &models.Utterance{
		ID:        newTestID(),
		DebateID:  d.ID,
		TurnIndex: 0,
		OffsetMS:  1200,
		Phase:     models.PhaseOpening,
		Speaker:   models.SpeakerPro,
		Content:   "Opening statement",
		Metadata: models.UtteranceMetadata{
			Model:     "gpt-4o",
			Usage:     models.TokenUsage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
			LatencyMS: 900,
		},
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.AppendUtterance(ctx, u))

	t.Run("replayed append of the same turn index is a no-op", func(t *testing.T) {
		replay := *u
		replay.ID = newTestID()
		require.NoError(t, store.AppendUtterance(ctx, &replay))

		count, err := client.Utterance.Query().
			Where(entutterance.DebateIDEQ(d.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("metadata round-trips through JSONB", func(t *testing.T) {
		loaded, err := store.LoadTranscript(ctx, d.ID)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "gpt-4o", loaded[0].Metadata.Model)
		assert.Equal(t, 52, loaded[0].Metadata.Usage.TotalTokens)
		assert.Equal(t, int64(1200), loaded[0].OffsetMS)
	})
}

func TestEntStore_InterventionLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Intervention test"})
	require.NoError(t, err)

	iv := &models.Intervention{
		ID:         newTestID(),
		DebateID:   d.ID,
		Type:       models.InterventionQuestion,
		Content:    "How does this scale?",
		DirectedTo: models.SpeakerCon,
		Status:     models.InterventionQueued,
		ClientKey:  "client-key-1",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, store.AppendIntervention(ctx, iv))

	t.Run("duplicate client key is rejected", func(t *testing.T) {
		dup := *iv
		dup.ID = newTestID()
		err := store.AppendIntervention(ctx, &dup)
		assert.ErrorIs(t, err, ErrAlreadyExists)

		// The original resolves through its client key.
		existing, err := service.FindInterventionByClientKey(ctx, d.ID, "client-key-1")
		require.NoError(t, err)
		assert.Equal(t, iv.ID, existing.ID)
	})

	t.Run("empty client keys do not collide", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			err := store.AppendIntervention(ctx, &models.Intervention{
				ID:        newTestID(),
				DebateID:  d.ID,
				Type:      models.InterventionChallenge,
				Content:   "Challenge",
				Status:    models.InterventionQueued,
				CreatedAt: time.Now(),
			})
			require.NoError(t, err)
		}
	})

	t.Run("terminal status stamps processed_at", func(t *testing.T) {
		require.NoError(t, store.UpdateInterventionStatus(ctx, iv.ID, models.InterventionProcessing, ""))
		got, err := service.GetIntervention(ctx, iv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InterventionProcessing, got.Status)
		assert.Nil(t, got.ProcessedAt)

		require.NoError(t, store.UpdateInterventionStatus(ctx, iv.ID, models.InterventionCompleted, "Answered in turn 4"))
		got, err = service.GetIntervention(ctx, iv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InterventionCompleted, got.Status)
		assert.Equal(t, "Answered in turn 4", got.Response)
		assert.NotNil(t, got.ProcessedAt)
	})

	t.Run("unknown intervention reports not found", func(t *testing.T) {
		err := store.UpdateInterventionStatus(ctx, "nonexistent", models.InterventionFailed, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEntStore_UpdateDebatePhase(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Phase test"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateDebatePhase(ctx, d.ID, models.PhaseConstructive, models.SpeakerPro, models.StatusRunning))

	t.Run("pausing snapshots the prior phase", func(t *testing.T) {
		require.NoError(t, store.UpdateDebatePhase(ctx, d.ID, models.PhasePaused, models.SpeakerPro, models.StatusPaused))

		got, err := store.LoadDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PhasePaused, got.Phase)
		assert.Equal(t, models.PhaseConstructive, got.PreviousPhase)
		assert.Equal(t, models.StatusPaused, got.Status)
	})

	t.Run("resuming clears the snapshot", func(t *testing.T) {
		require.NoError(t, store.UpdateDebatePhase(ctx, d.ID, models.PhaseConstructive, models.SpeakerPro, models.StatusRunning))

		got, err := store.LoadDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PhaseConstructive, got.Phase)
		assert.Empty(t, got.PreviousPhase)
		assert.Equal(t, models.SpeakerPro, got.CurrentSpeaker)
	})

	t.Run("unknown debate reports not found", func(t *testing.T) {
		err := store.UpdateDebatePhase(ctx, "nonexistent", models.PhaseOpening, models.SpeakerPro, models.StatusRunning)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEntStore_FinishDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	t.Run("clean completion leaves no error message", func(t *testing.T) {
		d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Finish clean"})
		require.NoError(t, err)

		require.NoError(t, store.FinishDebate(ctx, d.ID, models.StatusCompleted, ""))
		got, err := store.LoadDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
		assert.Empty(t, got.ErrorMessage)
	})

	t.Run("failure records the error message", func(t *testing.T) {
		d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Finish failed"})
		require.NoError(t, err)

		require.NoError(t, store.FinishDebate(ctx, d.ID, models.StatusFailed, "model unavailable"))
		got, err := store.LoadDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, got.Status)
		assert.Equal(t, "model unavailable", got.ErrorMessage)
	})
}

func TestEntStore_RecordEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Event test"})
	require.NoError(t, err)

	type failurePayload struct {
		Role  string `json:"role"`
		Model string `json:"model"`
	}
	require.NoError(t, store.RecordEvent(ctx, d.ID, "model_failure", failurePayload{Role: "pro", Model: "gpt-4o"}))
	require.NoError(t, store.RecordEvent(ctx, d.ID, "turn_abandoned", nil))

	events, err := client.SystemEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	byChannel := map[string]map[string]interface{}{}
	for _, ev := range events {
		byChannel[ev.Channel] = ev.Payload
	}
	require.Contains(t, byChannel, "model_failure")
	assert.Equal(t, "pro", byChannel["model_failure"]["role"])
	assert.Nil(t, byChannel["turn_abandoned"])
}
