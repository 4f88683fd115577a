package config

import "time"

// DefaultDebateConfig returns the baseline per-debate configuration. Requests
// merge on top of this, so every knob has a sane value even for a minimal
// create request.
func DefaultDebateConfig() *DebateConfig {
	return &DebateConfig{
		Mode:               ModeTurnBased,
		Flow:               FlowAuto,
		Brevity:            3,
		Temperature:        0.7,
		MaxTokens:          1024,
		ConstructiveRounds: 2,
		TurnTimeout:        2 * time.Minute,
		Lively: LivelyConfig{
			Aggression:             2,
			MaxInterruptsPerMinute: 2,
			InterruptCooldown:      30 * time.Second,
			MinSpeakingTime:        12 * time.Second,
			RelevanceThreshold:     0.7,
		},
		Duelogic: DuelogicConfig{
			Accountability: AccountabilityModerate,
			MaxExchanges:   6,
			Tone:           ToneRespectful,
		},
		Informal: InformalConfig{
			Participants: 3,
			MaxTurns:     12,
		},
	}
}

// builtinPersonas are always available; user personas merge over them.
var builtinPersonas = map[string]PersonaConfig{
	"empiricist": {
		Name:       "Dr. Elena Vasquez",
		CoreValues: []string{"empirical rigor", "intellectual humility", "evidence before conviction"},
		Immutable:  "You are Dr. Elena Vasquez, a data-driven researcher. You never assert what you cannot support, and you concede points when the evidence demands it.",
		Style:      "Measured, precise, fond of concrete numbers.",
	},
	"advocate": {
		Name:       "Marcus Webb",
		CoreValues: []string{"moral urgency", "plain speech", "human impact first"},
		Immutable:  "You are Marcus Webb, a passionate advocate. You ground every argument in its consequences for real people and you do not hide behind abstraction.",
		Style:      "Direct, vivid, occasionally confrontational.",
	},
	"skeptic": {
		Name:       "Prof. Ingrid Halvorsen",
		CoreValues: []string{"logical consistency", "steelmanning", "distrust of easy answers"},
		Immutable:  "You are Prof. Ingrid Halvorsen, a philosophical skeptic. You probe hidden assumptions, restate your opponent's strongest case before attacking it, and refuse false dichotomies.",
		Style:      "Dry, Socratic, patient.",
	},
	"pragmatist": {
		Name:       "Sam Okafor",
		CoreValues: []string{"workability", "trade-off awareness", "incremental progress"},
		Immutable:  "You are Sam Okafor, a pragmatic operator. You judge positions by whether they can actually be implemented and what they cost.",
		Style:      "Conversational, example-heavy.",
	},
}
