package models

import (
	"time"

	"github.com/debatelab/agora/pkg/config"
)

// Debate is the top-level session entity as the core sees it. The services
// layer maps it to and from the persistence schema.
type Debate struct {
	ID          string `json:"id"`
	Proposition string `json:"proposition"`
	// Context is optional background material for the proposition.
	Context string `json:"context,omitempty"`
	// Status is the queue lifecycle; Phase is the protocol position.
	Status DebateStatus `json:"status"`
	Phase  Phase        `json:"phase"`
	// PreviousPhase is the snapshot taken on entering paused; resume
	// returns to it.
	PreviousPhase Phase `json:"previous_phase,omitempty"`
	// CurrentSpeaker is the speaker of the most recent phase transition.
	CurrentSpeaker Speaker `json:"current_speaker,omitempty"`

	// Config is the full per-debate configuration bundle, frozen at
	// creation (model reassignments excepted).
	Config *config.DebateConfig `json:"config"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// PausedMS accumulates time spent paused; elapsed time excludes it.
	PausedMS     int64  `json:"paused_ms"`
	ErrorMessage string `json:"error_message,omitempty"`

	// PodID identifies the replica whose worker currently owns the debate.
	PodID string `json:"pod_id,omitempty"`
	// LastInteractionAt is the worker heartbeat used for orphan detection.
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
}

// CreateDebateRequest contains fields for creating a new debate.
type CreateDebateRequest struct {
	Proposition string `json:"proposition"`
	Context     string `json:"context,omitempty"`
	// Config overrides merge over the server's configured defaults.
	Config *config.DebateConfig `json:"config,omitempty"`
}

// DebateFilters contains filtering options for listing debates.
type DebateFilters struct {
	Status        DebateStatus `json:"status,omitempty"`
	Mode          config.Mode  `json:"mode,omitempty"`
	CreatedAfter  *time.Time   `json:"created_after,omitempty"`
	CreatedBefore *time.Time   `json:"created_before,omitempty"`
	Limit         int          `json:"limit,omitempty"`
	Offset        int          `json:"offset,omitempty"`
}

// DebateListResponse contains a paginated debate list.
type DebateListResponse struct {
	Debates    []*Debate `json:"debates"`
	TotalCount int       `json:"total_count"`
	Limit      int       `json:"limit"`
	Offset     int       `json:"offset"`
}

// TranscriptResponse is a debate with its full ordered utterance list.
type TranscriptResponse struct {
	Debate        *Debate         `json:"debate"`
	Utterances    []*Utterance    `json:"utterances"`
	Interventions []*Intervention `json:"interventions,omitempty"`
}

// EnqueueInterventionRequest is the API payload for adding an intervention.
type EnqueueInterventionRequest struct {
	Type       InterventionType `json:"type"`
	Content    string           `json:"content,omitempty"`
	DirectedTo Speaker          `json:"directed_to,omitempty"`
	ClientKey  string           `json:"client_key,omitempty"`
}

// ReassignModelRequest swaps the model serving a role.
type ReassignModelRequest struct {
	Role  Speaker `json:"role"`
	Model string  `json:"model"`
}
