package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/debatelab/agora/ent"
	entdebate "github.com/debatelab/agora/ent/debate"
	entintervention "github.com/debatelab/agora/ent/intervention"
	entutterance "github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/debate"
	"github.com/debatelab/agora/pkg/models"
)

// EntStore is the Ent-backed implementation of the orchestrator's
// persistence gateway. All errors pass through the transient classifier so
// the orchestrator's retry loop can distinguish connection blips from
// permanent failures.
type EntStore struct {
	client *ent.Client
}

var _ debate.Store = (*EntStore)(nil)

// NewEntStore creates an EntStore over the given client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// AppendUtterance persists a completed utterance. Idempotent on
// (debate_id, turn_index): a replayed append whose row already exists is a
// no-op.
func (s *EntStore) AppendUtterance(ctx context.Context, u *models.Utterance) error {
	err := s.client.Utterance.Create().
		SetID(u.ID).
		SetDebateID(u.DebateID).
		SetTurnIndex(u.TurnIndex).
		SetOffsetMs(u.OffsetMS).
		SetPhase(string(u.Phase)).
		SetSpeaker(string(u.Speaker)).
		SetContent(u.Content).
		SetMetadata(u.Metadata).
		SetCreatedAt(u.CreatedAt).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if ent.IsConstraintError(err) {
		// A row at this turn index means a retried append of an already
		// persisted utterance.
		exists, checkErr := s.client.Utterance.Query().
			Where(
				entutterance.DebateIDEQ(u.DebateID),
				entutterance.TurnIndexEQ(u.TurnIndex),
			).
			Exist(ctx)
		if checkErr != nil {
			return classifyStoreError(fmt.Errorf("failed to check utterance replay: %w", checkErr))
		}
		if exists {
			return nil
		}
		return fmt.Errorf("failed to append utterance: %w", err)
	}
	return classifyStoreError(fmt.Errorf("failed to append utterance: %w", err))
}

// AppendIntervention persists an accepted intervention. A duplicate client
// key maps to ErrAlreadyExists so retried submissions surface the original.
func (s *EntStore) AppendIntervention(ctx context.Context, iv *models.Intervention) error {
	create := s.client.Intervention.Create().
		SetID(iv.ID).
		SetDebateID(iv.DebateID).
		SetType(entintervention.Type(iv.Type)).
		SetContent(iv.Content).
		SetDirectedTo(string(iv.DirectedTo)).
		SetStatus(entintervention.Status(iv.Status)).
		SetCreatedAt(iv.CreatedAt)
	if iv.ClientKey != "" {
		create = create.SetClientKey(iv.ClientKey)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return classifyStoreError(fmt.Errorf("failed to append intervention: %w", err))
	}
	return nil
}

// UpdateInterventionStatus records a status advance. Terminal statuses also
// stamp the processing time.
func (s *EntStore) UpdateInterventionStatus(ctx context.Context, id string, status models.InterventionStatus, response string) error {
	update := s.client.Intervention.UpdateOneID(id).
		SetStatus(entintervention.Status(status))
	if response != "" {
		update = update.SetResponse(response)
	}
	if status == models.InterventionCompleted || status == models.InterventionFailed {
		update = update.SetProcessedAt(time.Now())
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyStoreError(fmt.Errorf("failed to update intervention status: %w", err))
	}
	return nil
}

// UpdateDebatePhase records the current phase, speaker and status. Entering
// the paused phase snapshots the prior phase so resume can return to it.
func (s *EntStore) UpdateDebatePhase(ctx context.Context, debateID string, phase models.Phase, speaker models.Speaker, status models.DebateStatus) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classifyStoreError(fmt.Errorf("failed to start transaction: %w", err))
	}
	defer tx.Rollback()

	row, err := tx.Debate.Get(ctx, debateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyStoreError(fmt.Errorf("failed to load debate: %w", err))
	}

	update := row.Update().
		SetPhase(string(phase)).
		SetStatus(entdebate.Status(status)).
		SetLastInteractionAt(time.Now())

	if phase == models.PhasePaused {
		update = update.SetPreviousPhase(row.Phase)
	} else {
		update = update.ClearPreviousPhase()
	}
	if speaker != "" {
		update = update.SetCurrentSpeaker(string(speaker))
	} else {
		update = update.ClearCurrentSpeaker()
	}

	if err := update.Exec(ctx); err != nil {
		return classifyStoreError(fmt.Errorf("failed to update debate phase: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return classifyStoreError(fmt.Errorf("failed to commit phase update: %w", err))
	}
	return nil
}

// FinishDebate records the terminal status with the completion time and
// error message (empty for clean completion).
func (s *EntStore) FinishDebate(ctx context.Context, debateID string, status models.DebateStatus, errorMessage string) error {
	update := s.client.Debate.UpdateOneID(debateID).
		SetStatus(entdebate.Status(status)).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now())
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	} else {
		update = update.ClearErrorMessage()
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return classifyStoreError(fmt.Errorf("failed to finish debate: %w", err))
	}
	return nil
}

// RecordEvent appends a diagnostic system event. Payloads marshal through
// JSON so arbitrary structs land as JSONB.
func (s *EntStore) RecordEvent(ctx context.Context, debateID, channel string, payload any) error {
	var payloadMap map[string]interface{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal event payload: %w", err)
		}
		if err := json.Unmarshal(raw, &payloadMap); err != nil {
			return fmt.Errorf("failed to unmarshal event payload: %w", err)
		}
	}

	create := s.client.SystemEvent.Create().
		SetID(uuid.New().String()).
		SetDebateID(debateID).
		SetChannel(channel).
		SetCreatedAt(time.Now())
	if payloadMap != nil {
		create = create.SetPayload(payloadMap)
	}

	if err := create.Exec(ctx); err != nil {
		return classifyStoreError(fmt.Errorf("failed to record system event: %w", err))
	}
	return nil
}

// LoadDebate fetches a debate by ID.
func (s *EntStore) LoadDebate(ctx context.Context, id string) (*models.Debate, error) {
	row, err := s.client.Debate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, classifyStoreError(fmt.Errorf("failed to load debate: %w", err))
	}
	return toModelDebate(row), nil
}

// LoadTranscript fetches a debate's utterances ordered by turn index.
func (s *EntStore) LoadTranscript(ctx context.Context, id string) ([]*models.Utterance, error) {
	rows, err := s.client.Utterance.Query().
		Where(entutterance.DebateIDEQ(id)).
		Order(ent.Asc(entutterance.FieldTurnIndex)).
		All(ctx)
	if err != nil {
		return nil, classifyStoreError(fmt.Errorf("failed to load transcript: %w", err))
	}
	return toModelUtterances(rows), nil
}
