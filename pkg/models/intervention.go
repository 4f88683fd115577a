package models

import "time"

// InterventionType classifies a user-originated command against a running
// debate.
type InterventionType string

const (
	InterventionQuestion          InterventionType = "question"
	InterventionChallenge         InterventionType = "challenge"
	InterventionEvidenceInjection InterventionType = "evidence_injection"
	InterventionPauseRequest      InterventionType = "pause_request"
	InterventionClarification     InterventionType = "clarification_request"
	InterventionResume            InterventionType = "resume"
	InterventionStop              InterventionType = "stop"
	// InterventionContinue advances one turn in step flow.
	InterventionContinue InterventionType = "continue"
	// InterventionReassignModel swaps the model for a role; applied at the
	// next turn, re-running the turn that failed if one did.
	InterventionReassignModel InterventionType = "reassign_model"
)

// IsValid checks if the intervention type is valid.
func (t InterventionType) IsValid() bool {
	switch t {
	case InterventionQuestion, InterventionChallenge, InterventionEvidenceInjection,
		InterventionPauseRequest, InterventionClarification, InterventionResume,
		InterventionStop, InterventionContinue, InterventionReassignModel:
		return true
	default:
		return false
	}
}

// RequiresContent reports whether the type needs a non-empty content string.
// Control types (pause/resume/stop/continue) carry no content.
func (t InterventionType) RequiresContent() bool {
	switch t {
	case InterventionPauseRequest, InterventionResume, InterventionStop, InterventionContinue:
		return false
	default:
		return true
	}
}

// InterventionStatus advances monotonically: queued → processing →
// completed | failed.
type InterventionStatus string

const (
	InterventionQueued     InterventionStatus = "queued"
	InterventionProcessing InterventionStatus = "processing"
	InterventionCompleted  InterventionStatus = "completed"
	InterventionFailed     InterventionStatus = "failed"
)

// IsValid checks if the status is valid.
func (s InterventionStatus) IsValid() bool {
	switch s {
	case InterventionQueued, InterventionProcessing, InterventionCompleted, InterventionFailed:
		return true
	default:
		return false
	}
}

// rank orders statuses for the monotonic-advance invariant.
func (s InterventionStatus) rank() int {
	switch s {
	case InterventionQueued:
		return 0
	case InterventionProcessing:
		return 1
	case InterventionCompleted, InterventionFailed:
		return 2
	default:
		return -1
	}
}

// CanAdvanceTo reports whether moving from s to next respects the monotonic
// status invariant.
func (s InterventionStatus) CanAdvanceTo(next InterventionStatus) bool {
	return next.rank() > s.rank()
}

// Intervention is a user command recorded against a debate.
type Intervention struct {
	ID       string           `json:"id"`
	DebateID string           `json:"debate_id"`
	Type     InterventionType `json:"type"`
	Content  string           `json:"content,omitempty"`
	// DirectedTo optionally targets a speaker (questions, reassignment).
	DirectedTo Speaker            `json:"directed_to,omitempty"`
	Status     InterventionStatus `json:"status"`
	// Response is required for the completed status.
	Response string `json:"response,omitempty"`
	// ClientKey deduplicates retried submissions; unique per debate.
	ClientKey   string     `json:"client_key,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
