package models

import "time"

// PromptKind tags a planned turn with the prompt template it needs.
type PromptKind string

const (
	PromptOpening      PromptKind = "opening"
	PromptConstructive PromptKind = "constructive"
	PromptCrossExamQ   PromptKind = "cross_exam_q"
	PromptCrossExamA   PromptKind = "cross_exam_a"
	PromptRebuttal     PromptKind = "rebuttal"
	PromptClosing      PromptKind = "closing"
	PromptSynthesis    PromptKind = "synthesis"
	PromptInterjection PromptKind = "interjection"
	// PromptResumption re-enters a speaker who was cut off mid-stream.
	PromptResumption PromptKind = "resumption"
	// PromptExchange is a duelogic chair exchange turn.
	PromptExchange PromptKind = "exchange"
	// PromptArbiterOpen / PromptArbiterClose bracket duelogic exchanges.
	PromptArbiterOpen  PromptKind = "arbiter_open"
	PromptArbiterClose PromptKind = "arbiter_close"
	// PromptInformal is a free-form discussion turn.
	PromptInformal PromptKind = "informal"
	// PromptWrapup closes an informal discussion.
	PromptWrapup PromptKind = "wrapup"
)

// TurnDescriptor is the planner's record of one planned speech act.
type TurnDescriptor struct {
	// Phase the turn belongs to.
	Phase Phase `json:"phase"`
	// Number is the turn's position within its phase, 0-based.
	Number int `json:"number"`
	// Speaker who takes the turn.
	Speaker Speaker `json:"speaker"`
	// Kind selects the prompt template.
	Kind PromptKind `json:"kind"`
	// Budget is the expected duration for the turn.
	Budget time.Duration `json:"budget"`
	// RespondsTo back-references the utterance index this turn answers
	// (cross-exam answers, interjections, resumptions). Nil otherwise.
	RespondsTo *int `json:"responds_to,omitempty"`
}
