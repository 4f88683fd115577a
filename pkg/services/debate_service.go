package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/debatelab/agora/ent"
	entdebate "github.com/debatelab/agora/ent/debate"
	entintervention "github.com/debatelab/agora/ent/intervention"
	entutterance "github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// DebateService manages debate lifecycle: creation, listing, queue claiming
// and orphan recovery.
type DebateService struct {
	client   *ent.Client
	defaults *config.DebateConfig
}

// NewDebateService creates a new DebateService. defaults is the server-wide
// debate configuration that per-request overrides merge over.
func NewDebateService(client *ent.Client, defaults *config.DebateConfig) *DebateService {
	return &DebateService{client: client, defaults: defaults}
}

// CreateDebate validates the request, merges the config overrides over the
// server defaults and persists the debate in the pending status.
func (s *DebateService) CreateDebate(httpCtx context.Context, req models.CreateDebateRequest) (*models.Debate, error) {
	proposition := strings.TrimSpace(req.Proposition)
	if proposition == "" {
		return nil, NewValidationError("proposition", "required")
	}

	cfg, err := s.mergeConfig(req.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.Debate.Create().
		SetID(uuid.New().String()).
		SetProposition(proposition).
		SetContext(strings.TrimSpace(req.Context)).
		SetStatus(entdebate.StatusPending).
		SetPhase(string(models.PhaseInitializing)).
		SetConfig(cfg).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create debate: %w", err)
	}

	return toModelDebate(row), nil
}

// mergeConfig deep-copies the server defaults and overlays the per-request
// overrides. Pacing presets expand after the merge so a preset named in the
// request wins over individually configured knobs.
func (s *DebateService) mergeConfig(overrides *config.DebateConfig) (*config.DebateConfig, error) {
	raw, err := json.Marshal(s.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to clone default config: %w", err)
	}
	merged := &config.DebateConfig{}
	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, fmt.Errorf("failed to clone default config: %w", err)
	}

	if overrides != nil {
		if err := mergo.Merge(merged, overrides, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config overrides: %w", err)
		}
	}
	merged.Lively.ApplyPacing()
	return merged, nil
}

// GetDebate retrieves a debate by ID.
func (s *DebateService) GetDebate(ctx context.Context, debateID string) (*models.Debate, error) {
	row, err := s.client.Debate.Get(ctx, debateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get debate: %w", err)
	}
	return toModelDebate(row), nil
}

// ListDebates lists debates with filtering and pagination.
func (s *DebateService) ListDebates(ctx context.Context, filters models.DebateFilters) (*models.DebateListResponse, error) {
	query := s.client.Debate.Query()

	if filters.Status != "" {
		query = query.Where(entdebate.StatusEQ(entdebate.Status(filters.Status)))
	}
	if filters.Mode != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(entdebate.FieldConfig, string(filters.Mode), sqljson.Path("mode")))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(entdebate.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(entdebate.CreatedAtLT(*filters.CreatedBefore))
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count debates: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entdebate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debates: %w", err)
	}

	return &models.DebateListResponse{
		Debates:    toModelDebates(rows),
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// SearchDebates performs full-text search on proposition and context.
func (s *DebateService) SearchDebates(ctx context.Context, query string, limit int) ([]*models.Debate, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.client.Debate.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', proposition) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(context, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(entdebate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search debates: %w", err)
	}

	return toModelDebates(rows), nil
}

// GetTranscript returns a debate with its ordered utterances and
// interventions.
func (s *DebateService) GetTranscript(ctx context.Context, debateID string) (*models.TranscriptResponse, error) {
	d, err := s.GetDebate(ctx, debateID)
	if err != nil {
		return nil, err
	}

	utterances, err := s.client.Utterance.Query().
		Where(entutterance.DebateIDEQ(debateID)).
		Order(ent.Asc(entutterance.FieldTurnIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	interventions, err := s.client.Intervention.Query().
		Where(entintervention.DebateIDEQ(debateID)).
		Order(ent.Asc(entintervention.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load interventions: %w", err)
	}

	return &models.TranscriptResponse{
		Debate:        d,
		Utterances:    toModelUtterances(utterances),
		Interventions: toModelInterventions(interventions),
	}, nil
}

// ListInterventions lists a debate's interventions in submission order.
func (s *DebateService) ListInterventions(ctx context.Context, debateID string) ([]*models.Intervention, error) {
	rows, err := s.client.Intervention.Query().
		Where(entintervention.DebateIDEQ(debateID)).
		Order(ent.Asc(entintervention.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}
	return toModelInterventions(rows), nil
}

// GetIntervention retrieves a single intervention by ID.
func (s *DebateService) GetIntervention(ctx context.Context, interventionID string) (*models.Intervention, error) {
	row, err := s.client.Intervention.Get(ctx, interventionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get intervention: %w", err)
	}
	return toModelIntervention(row), nil
}

// FindInterventionByClientKey resolves a deduplication key to the
// intervention it previously created, if any.
func (s *DebateService) FindInterventionByClientKey(ctx context.Context, debateID, clientKey string) (*models.Intervention, error) {
	row, err := s.client.Intervention.Query().
		Where(
			entintervention.DebateIDEQ(debateID),
			entintervention.ClientKeyEQ(clientKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up intervention by client key: %w", err)
	}
	return toModelIntervention(row), nil
}

// UpdateDebateStatus updates a debate's status. Terminal statuses also set
// the completion timestamp.
func (s *DebateService) UpdateDebateStatus(ctx context.Context, debateID string, status models.DebateStatus) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Debate.UpdateOneID(debateID).
		SetStatus(entdebate.Status(status)).
		SetLastInteractionAt(time.Now())

	if status.IsTerminal() {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update debate status: %w", err)
	}

	return nil
}

// ClaimNextPendingDebate atomically claims the oldest pending debate for the
// given pod. Returns nil when nothing is pending or another worker won the
// race.
func (s *DebateService) ClaimNextPendingDebate(ctx context.Context, podID string) (*models.Debate, error) {
	// Use background context with timeout
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Oldest pending debate first
	row, err := tx.Debate.Query().
		Where(entdebate.StatusEQ(entdebate.StatusPending)).
		Order(ent.Asc(entdebate.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending debates
		}
		return nil, fmt.Errorf("failed to query pending debate: %w", err)
	}

	// Conditional update: only claim if still pending
	count, err := tx.Debate.Update().
		Where(
			entdebate.IDEQ(row.ID),
			entdebate.StatusEQ(entdebate.StatusPending),
		).
		SetStatus(entdebate.StatusRunning).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim debate: %w", err)
	}
	if count == 0 {
		// Another worker claimed it first
		return nil, nil
	}

	row, err = tx.Debate.Get(claimCtx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed debate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return toModelDebate(row), nil
}

// Heartbeat records worker liveness on a running debate.
func (s *DebateService) Heartbeat(ctx context.Context, debateID string) error {
	err := s.client.Debate.UpdateOneID(debateID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// FindOrphanedDebates finds debates whose worker heartbeat is older than the
// threshold. Running and paused debates are both worker-owned.
func (s *DebateService) FindOrphanedDebates(ctx context.Context, threshold time.Duration) ([]*models.Debate, error) {
	cutoff := time.Now().Add(-threshold)

	rows, err := s.client.Debate.Query().
		Where(
			entdebate.StatusIn(entdebate.StatusRunning, entdebate.StatusPaused),
			entdebate.LastInteractionAtNotNil(),
			entdebate.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned debates: %w", err)
	}

	return toModelDebates(rows), nil
}

// QueueDepth counts pending debates waiting for a worker.
func (s *DebateService) QueueDepth(ctx context.Context) (int, error) {
	count, err := s.client.Debate.Query().
		Where(entdebate.StatusEQ(entdebate.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending debates: %w", err)
	}
	return count, nil
}

// CountRunning counts running debates across all pods, for the global
// concurrency cap.
func (s *DebateService) CountRunning(ctx context.Context) (int, error) {
	count, err := s.client.Debate.Query().
		Where(entdebate.StatusIn(entdebate.StatusRunning, entdebate.StatusPaused)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running debates: %w", err)
	}
	return count, nil
}

// CountActiveOnPod counts worker-owned debates claimed by the given pod.
func (s *DebateService) CountActiveOnPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Debate.Query().
		Where(
			entdebate.StatusIn(entdebate.StatusRunning, entdebate.StatusPaused),
			entdebate.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active debates: %w", err)
	}
	return count, nil
}

// RequeueDebate returns an orphaned debate to the pending pool so another
// worker can claim it. Conditional on the debate still being worker-owned;
// returns ErrConcurrentModification when the status moved underneath us.
func (s *DebateService) RequeueDebate(ctx context.Context, debateID string) error {
	// Use background context with timeout
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Debate.Update().
		Where(
			entdebate.IDEQ(debateID),
			entdebate.StatusIn(entdebate.StatusRunning, entdebate.StatusPaused),
		).
		SetStatus(entdebate.StatusPending).
		SetPhase(string(models.PhaseInitializing)).
		ClearPreviousPhase().
		ClearCurrentSpeaker().
		ClearPodID().
		ClearLastInteractionAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to requeue debate: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}
