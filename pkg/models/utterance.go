package models

import "time"

// TokenUsage is the token accounting for one LLM call.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// UtteranceMetadata is the free-form metadata persisted alongside an
// utterance.
type UtteranceMetadata struct {
	// Model is the LLM model identifier that produced the text.
	Model string `json:"model,omitempty"`
	// Usage is the token accounting for the producing call.
	Usage TokenUsage `json:"usage,omitempty"`
	// LatencyMS is the wall time of the producing call.
	LatencyMS int64 `json:"latency_ms,omitempty"`
	// Truncated marks an utterance cut off mid-stream by an interruption
	// or a pause.
	Truncated bool `json:"truncated,omitempty"`
	// RespondsTo is the turn index this utterance answers, when any.
	RespondsTo *int `json:"responds_to,omitempty"`
	// InterruptedBy names the speaker whose interjection cut this
	// utterance off.
	InterruptedBy Speaker `json:"interrupted_by,omitempty"`
	// Evaluation is the arbiter's verdict, present on evaluated chair turns.
	Evaluation *QualityEvaluation `json:"evaluation,omitempty"`
}

// Utterance is one completed speech act. Immutable once appended; ordered
// per debate by TurnIndex.
type Utterance struct {
	ID       string `json:"id"`
	DebateID string `json:"debate_id"`
	// TurnIndex is the monotonically assigned index within the debate.
	TurnIndex int `json:"turn_index"`
	// OffsetMS is the timestamp relative to debate start, excluding paused
	// intervals.
	OffsetMS  int64             `json:"offset_ms"`
	Phase     Phase             `json:"phase"`
	Speaker   Speaker           `json:"speaker"`
	Content   string            `json:"content"`
	Metadata  UtteranceMetadata `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}
