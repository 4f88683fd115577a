package debate

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/debatelab/agora/pkg/events"
	"github.com/debatelab/agora/pkg/models"
)

// Store is the persistence gateway the orchestrator writes through. The ent
// implementation lives in pkg/services; tests substitute an in-memory double.
type Store interface {
	// AppendUtterance persists a completed utterance. Idempotent on
	// (debate_id, turn_index): a replayed append of the same index is a no-op.
	AppendUtterance(ctx context.Context, u *models.Utterance) error

	// AppendIntervention persists an accepted intervention synchronously so
	// it survives a crash between enqueue and consumption.
	AppendIntervention(ctx context.Context, iv *models.Intervention) error

	// UpdateInterventionStatus records a status advance, with the response
	// text for terminal statuses.
	UpdateInterventionStatus(ctx context.Context, id string, status models.InterventionStatus, response string) error

	// UpdateDebatePhase records the current phase, speaker and status.
	UpdateDebatePhase(ctx context.Context, debateID string, phase models.Phase, speaker models.Speaker, status models.DebateStatus) error

	// FinishDebate records the terminal status, completion time and error
	// message (empty for clean completion).
	FinishDebate(ctx context.Context, debateID string, status models.DebateStatus, errorMessage string) error

	// RecordEvent appends a diagnostic system event. Best-effort: callers
	// log failures and continue.
	RecordEvent(ctx context.Context, debateID, channel string, payload any) error

	// LoadDebate fetches a debate by ID.
	LoadDebate(ctx context.Context, id string) (*models.Debate, error)

	// LoadTranscript fetches a debate's utterances ordered by turn index.
	LoadTranscript(ctx context.Context, id string) ([]*models.Utterance, error)
}

// Publisher is the event fan-out the orchestrator publishes through.
// Implemented by events.Broker.
type Publisher interface {
	Publish(debateID, eventType string, payload any) events.Event
}

// TransientError marks a store failure worth retrying: connection drops,
// serialisation conflicts, timeouts. Anything else is treated as permanent.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient store error: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransientStore reports whether err is (or wraps) a TransientError.
func IsTransientStore(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// storeRetryAttempts bounds retries of transient store failures.
const storeRetryAttempts = 3

// withStoreRetry runs op, retrying transient failures with exponential
// backoff up to storeRetryAttempts total attempts. Non-transient errors
// return immediately.
func withStoreRetry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if IsTransientStore(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, storeRetryAttempts-1), ctx))
}
