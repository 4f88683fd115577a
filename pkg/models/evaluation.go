package models

// ViolationKind names the debate-principle violation an arbiter interjection
// corrects.
type ViolationKind string

const (
	ViolationStrawManning           ViolationKind = "straw_manning"
	ViolationMissingSteelMan        ViolationKind = "missing_steel_man"
	ViolationMissingSelfCritique    ViolationKind = "missing_self_critique"
	ViolationFrameworkInconsistency ViolationKind = "framework_inconsistency"
	ViolationRhetoricalEvasion      ViolationKind = "rhetorical_evasion"
)

// QualityEvaluation is the arbiter's verdict on a completed chair utterance.
type QualityEvaluation struct {
	// Score is overall adherence to debate principles, 0..100.
	Score int `json:"score"`
	// SteelManAttempted reports whether the speaker restated the opposing
	// position before attacking it; SteelManQuality grades it 0..100.
	SteelManAttempted bool `json:"steel_man_attempted"`
	SteelManQuality   int  `json:"steel_man_quality"`
	// SelfCritiqueAttempted reports whether the speaker acknowledged
	// weaknesses in their own position; SelfCritiqueQuality grades it.
	SelfCritiqueAttempted bool `json:"self_critique_attempted"`
	SelfCritiqueQuality   int  `json:"self_critique_quality"`
	// FrameworkConsistency grades how faithfully the utterance argues from
	// the chair's assigned framework, 0..100.
	FrameworkConsistency int `json:"framework_consistency"`
	// IntellectualHonesty grades concession and hedging behaviour, 0..100.
	IntellectualHonesty int `json:"intellectual_honesty"`
	// RequiresInterjection is the evaluator's own recommendation; the
	// accountability level decides whether it is acted on.
	RequiresInterjection bool `json:"requires_interjection"`
	// Violation names the dominant violation when one exists.
	Violation ViolationKind `json:"violation,omitempty"`
}
