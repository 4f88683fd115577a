package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdebate "github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
	testdb "github.com/debatelab/agora/test/database"
)

// testDefaults returns a valid server-wide default config with models
// assigned, the way config.Initialize would produce it.
func testDefaults() *config.DebateConfig {
	cfg := config.DefaultDebateConfig()
	cfg.Models = config.ModelAssignments{
		Pro:       "gpt-4o",
		Con:       "gpt-4o",
		Moderator: "gpt-4o-mini",
	}
	return cfg
}

func TestDebateService_CreateDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	t.Run("creates pending debate with merged defaults", func(t *testing.T) {
		d, err := service.CreateDebate(ctx, models.CreateDebateRequest{
			Proposition: "Remote work should be the default for knowledge workers",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.Equal(t, models.StatusPending, d.Status)
		assert.Equal(t, models.PhaseInitializing, d.Phase)
		// Unset request fields keep server defaults.
		assert.Equal(t, config.ModeTurnBased, d.Config.Mode)
		assert.Equal(t, 1024, d.Config.MaxTokens)
		assert.Equal(t, "gpt-4o", d.Config.Models.Pro)
	})

	t.Run("request overrides merge over defaults", func(t *testing.T) {
		d, err := service.CreateDebate(ctx, models.CreateDebateRequest{
			Proposition: "Nuclear power is essential for decarbonisation",
			Context:     "EU energy policy, 2030 targets",
			Config: &config.DebateConfig{
				Brevity:   5,
				MaxTokens: 2048,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, d.Config.Brevity)
		assert.Equal(t, 2048, d.Config.MaxTokens)
		// Everything else stays at the server default.
		assert.Equal(t, 2, d.Config.ConstructiveRounds)
		assert.Equal(t, "EU energy policy, 2030 targets", d.Context)
	})

	t.Run("pacing preset expands after merge", func(t *testing.T) {
		d, err := service.CreateDebate(ctx, models.CreateDebateRequest{
			Proposition: "Test pacing preset",
			Config: &config.DebateConfig{
				Mode:   config.ModeLively,
				Lively: config.LivelyConfig{Pacing: config.PacingFast},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, d.Config.Lively.Aggression)
		assert.Equal(t, 3, d.Config.Lively.MaxInterruptsPerMinute)
	})

	t.Run("rejects blank proposition", func(t *testing.T) {
		_, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "   "})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid config overrides", func(t *testing.T) {
		_, err := service.CreateDebate(ctx, models.CreateDebateRequest{
			Proposition: "Invalid overrides",
			Config:      &config.DebateConfig{Brevity: 9},
		})
		require.Error(t, err)
		assert.True(t, config.IsValidationError(err))
	})
}

func TestDebateService_GetDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	created, err := service.CreateDebate(ctx, models.CreateDebateRequest{
		Proposition: "Test get",
	})
	require.NoError(t, err)

	got, err := service.GetDebate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Test get", got.Proposition)

	_, err = service.GetDebate(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDebateService_ListDebates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateDebate(ctx, models.CreateDebateRequest{
			Proposition: "Turn-based proposition",
		})
		require.NoError(t, err)
	}
	lively, err := service.CreateDebate(ctx, models.CreateDebateRequest{
		Proposition: "Lively proposition",
		Config:      &config.DebateConfig{Mode: config.ModeLively},
	})
	require.NoError(t, err)

	t.Run("lists all with pagination", func(t *testing.T) {
		resp, err := service.ListDebates(ctx, models.DebateFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Debates, 2)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		require.NoError(t, service.UpdateDebateStatus(ctx, lively.ID, models.StatusCompleted))

		resp, err := service.ListDebates(ctx, models.DebateFilters{Status: models.StatusPending})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("filters by mode", func(t *testing.T) {
		resp, err := service.ListDebates(ctx, models.DebateFilters{Mode: config.ModeLively})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		assert.Equal(t, lively.ID, resp.Debates[0].ID)
	})
}

func TestDebateService_SearchDebates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	_, err := service.CreateDebate(ctx, models.CreateDebateRequest{
		Proposition: "Universal basic income reduces poverty",
	})
	require.NoError(t, err)
	_, err = service.CreateDebate(ctx, models.CreateDebateRequest{
		Proposition: "Space exploration deserves public funding",
	})
	require.NoError(t, err)

	results, err := service.SearchDebates(ctx, "poverty", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Proposition, "basic income")

	results, err = service.SearchDebates(ctx, "blockchain", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDebateService_UpdateDebateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Status test"})
	require.NoError(t, err)

	t.Run("non-terminal status leaves completed_at unset", func(t *testing.T) {
		require.NoError(t, service.UpdateDebateStatus(ctx, d.ID, models.StatusRunning))
		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRunning, got.Status)
		assert.Nil(t, got.CompletedAt)
	})

	t.Run("terminal status sets completed_at", func(t *testing.T) {
		require.NoError(t, service.UpdateDebateStatus(ctx, d.ID, models.StatusCompleted))
		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		err := service.UpdateDebateStatus(ctx, "nonexistent", models.StatusRunning)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDebateService_ClaimNextPendingDebate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	t.Run("nothing pending returns nil", func(t *testing.T) {
		claimed, err := service.ClaimNextPendingDebate(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	first, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "First in queue"})
	require.NoError(t, err)
	second, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Second in queue"})
	require.NoError(t, err)

	t.Run("claims oldest pending first", func(t *testing.T) {
		claimed, err := service.ClaimNextPendingDebate(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, models.StatusRunning, claimed.Status)
		assert.Equal(t, "pod-1", claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})

	t.Run("subsequent claim takes the next debate", func(t *testing.T) {
		claimed, err := service.ClaimNextPendingDebate(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, second.ID, claimed.ID)
	})
}

func TestDebateService_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Orphan test"})
	require.NoError(t, err)
	claimed, err := service.ClaimNextPendingDebate(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("fresh heartbeat is not orphaned", func(t *testing.T) {
		orphans, err := service.FindOrphanedDebates(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("stale heartbeat is orphaned", func(t *testing.T) {
		// Age the heartbeat past the threshold.
		err := client.Debate.UpdateOneID(d.ID).
			SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		orphans, err := service.FindOrphanedDebates(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, d.ID, orphans[0].ID)
	})

	t.Run("requeue returns the debate to pending", func(t *testing.T) {
		require.NoError(t, service.RequeueDebate(ctx, d.ID))

		got, err := service.GetDebate(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Equal(t, models.PhaseInitializing, got.Phase)
		assert.Empty(t, got.PodID)
		assert.Nil(t, got.LastInteractionAt)
	})

	t.Run("requeue of a pending debate reports concurrent modification", func(t *testing.T) {
		err := service.RequeueDebate(ctx, d.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestDebateService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Heartbeat test"})
	require.NoError(t, err)

	require.NoError(t, service.Heartbeat(ctx, d.ID))

	row, err := client.Debate.Query().Where(entdebate.IDEQ(d.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.LastInteractionAt)
	assert.WithinDuration(t, time.Now(), *row.LastInteractionAt, 5*time.Second)

	assert.ErrorIs(t, service.Heartbeat(ctx, "nonexistent"), ErrNotFound)
}

func TestDebateService_GetTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDebateService(client.Client, testDefaults())
	store := NewEntStore(client.Client)
	ctx := context.Background()

	d, err := service.CreateDebate(ctx, models.CreateDebateRequest{Proposition: "Transcript test"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendUtterance(ctx, &models.Utterance{
			ID:        newTestID(),
			DebateID:  d.ID,
			TurnIndex: i,
			Phase:     models.PhaseOpening,
			Speaker:   models.SpeakerPro,
			Content:   "Opening remarks",
			CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, store.AppendIntervention(ctx, &models.Intervention{
		ID:        newTestID(),
		DebateID:  d.ID,
		Type:      models.InterventionQuestion,
		Content:   "What about the costs?",
		Status:    models.InterventionQueued,
		CreatedAt: time.Now(),
	}))

	transcript, err := service.GetTranscript(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, transcript.Debate.ID)
	require.Len(t, transcript.Utterances, 3)
	for i, u := range transcript.Utterances {
		assert.Equal(t, i, u.TurnIndex)
	}
	require.Len(t, transcript.Interventions, 1)
	assert.Equal(t, models.InterventionQuestion, transcript.Interventions[0].Type)

	_, err = service.GetTranscript(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}
