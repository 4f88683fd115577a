package debate

import (
	"errors"
	"fmt"

	"github.com/debatelab/agora/pkg/models"
)

// Sentinel errors surfaced by the orchestration core.
var (
	// ErrNotFound reports a missing debate or record.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyStarted reports a start on a debate past pending.
	ErrAlreadyStarted = errors.New("debate already started")
	// ErrNotRunning reports a lifecycle command against a debate that is
	// not currently running.
	ErrNotRunning = errors.New("debate is not running")
	// ErrNotPaused reports a resume against a debate that is not paused.
	ErrNotPaused = errors.New("debate is not paused")
	// ErrStopped reports that the orchestrator observed a stop request.
	ErrStopped = errors.New("debate stopped")
	// ErrEmptyResponse reports an LLM turn that produced no usable content
	// after retries.
	ErrEmptyResponse = errors.New("empty response from model")
)

// InvalidTransitionError reports an illegal state machine transition.
// The machine's state is unchanged when this is returned.
type InvalidTransitionError struct {
	From models.Phase
	To   models.Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is (or wraps) an
// InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// InvalidInterventionError reports an intervention rejected at enqueue.
type InvalidInterventionError struct {
	Reason string
}

func (e *InvalidInterventionError) Error() string {
	return fmt.Sprintf("invalid intervention: %s", e.Reason)
}

// IsInvalidIntervention reports whether err is (or wraps) an
// InvalidInterventionError.
func IsInvalidIntervention(err error) bool {
	var iie *InvalidInterventionError
	return errors.As(err, &iie)
}
