// Package events delivers debate events to live subscribers. An in-memory
// Broker owns per-debate sequence numbers and a bounded replay ring; the
// WebSocket ConnectionManager bridges subscribers to browser clients.
package events

import (
	"time"

	"github.com/debatelab/agora/pkg/models"
)

// Event types published on a debate channel.
const (
	TypeConnected            = "connected"
	TypePhaseTransition      = "phase_transition"
	TypeTurnStarted          = "turn_started"
	TypeToken                = "token"
	TypeUtterance            = "utterance"
	TypeSpeakerCutoff        = "speaker_cutoff"
	TypeInterruptScheduled   = "interrupt_scheduled"
	TypeInterruptFired       = "interrupt_fired"
	TypeInterjection         = "interjection"
	TypeInterventionResponse = "intervention_response"
	TypePaused               = "paused"
	TypeResumed              = "resumed"
	TypeCompleted            = "completed"
	TypeError                = "error"
	TypeHeartbeat            = "heartbeat"
	TypeResyncRequired       = "resync_required"

	// Diagnostic event types surfaced by the orchestrator's failure handling.
	TypeEmptyResponse = "empty_response"
	TypeTimeout       = "timeout"
	TypeModelError    = "model_error"
	TypeStopped       = "stopped"
)

// Event is one sequenced message on a debate channel. Seq is strictly
// increasing and contiguous per debate; heartbeats and resync notices carry
// seq 0 and are never retained for replay.
type Event struct {
	Seq      int64     `json:"seq"`
	Type     string    `json:"type"`
	DebateID string    `json:"debate_id"`
	TS       time.Time `json:"ts"`
	Payload  any       `json:"payload,omitempty"`
}

// PhaseTransitionPayload reports one state machine transition.
type PhaseTransitionPayload struct {
	From      models.Phase   `json:"from"`
	To        models.Phase   `json:"to"`
	Speaker   models.Speaker `json:"speaker,omitempty"`
	ElapsedMS int64          `json:"elapsed_ms"`
}

// TurnStartedPayload announces the turn about to stream.
type TurnStartedPayload struct {
	TurnIndex int               `json:"turn_index"`
	Phase     models.Phase      `json:"phase"`
	Speaker   models.Speaker    `json:"speaker"`
	Kind      models.PromptKind `json:"kind"`
}

// TokenPayload is one streamed text delta. High frequency, not persisted.
type TokenPayload struct {
	Speaker models.Speaker `json:"speaker"`
	Delta   string         `json:"delta"`
}

// UtterancePayload carries a completed, persisted utterance.
type UtterancePayload struct {
	Utterance *models.Utterance `json:"utterance"`
}

// SpeakerCutoffPayload reports a soft cutoff, with the partial text spoken.
type SpeakerCutoffPayload struct {
	Speaker     models.Speaker `json:"speaker"`
	PartialText string         `json:"partial_text"`
}

// InterruptScheduledPayload announces an accepted interruption before the
// cutoff lands.
type InterruptScheduledPayload struct {
	Interrupter models.Speaker `json:"interrupter"`
	Trigger     string         `json:"trigger"`
	Score       float64        `json:"score"`
}

// InterruptFiredPayload reports the interruption taking effect.
type InterruptFiredPayload struct {
	Interrupter models.Speaker `json:"interrupter"`
	Interrupted models.Speaker `json:"interrupted"`
}

// InterjectionPayload reports an arbiter corrective interjection.
type InterjectionPayload struct {
	Speaker   models.Speaker       `json:"speaker"`
	Violation models.ViolationKind `json:"violation,omitempty"`
}

// InterventionResponsePayload reports an intervention reaching a terminal
// status.
type InterventionResponsePayload struct {
	InterventionID string                    `json:"intervention_id"`
	Type           models.InterventionType   `json:"intervention_type"`
	Status         models.InterventionStatus `json:"status"`
	Response       string                    `json:"response,omitempty"`
}

// ErrorPayload carries the failure reason for error and model_error events.
type ErrorPayload struct {
	Reason string         `json:"reason"`
	Role   models.Speaker `json:"role,omitempty"`
}

// ResyncPayload tells a subscriber its last_seq predates the replay ring.
type ResyncPayload struct {
	OldestRetained int64 `json:"oldest_retained"`
}

// ClientMessage is the client → server WebSocket message shape.
type ClientMessage struct {
	Action   string `json:"action"` // "subscribe", "unsubscribe", "catchup", "ping"
	DebateID string `json:"debate_id,omitempty"`
	LastSeq  *int64 `json:"last_seq,omitempty"`
}
