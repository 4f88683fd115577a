package config

import "time"

// DebateConfig is the per-debate configuration bundle. It is stored on the
// debate record at creation time and drives planner, prompt builder,
// interruption engine, and arbiter behaviour for the whole session.
type DebateConfig struct {
	Mode Mode `yaml:"mode" json:"mode"`
	Flow Flow `yaml:"flow" json:"flow"`

	// Brevity is a 1..5 prompt verbosity knob (1 = terse, 5 = expansive).
	Brevity int `yaml:"brevity" json:"brevity"`
	// Temperature is the LLM sampling temperature, 0..1.
	Temperature float64 `yaml:"temperature" json:"temperature"`
	// MaxTokens is the per-turn output cap, 64..8192.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`
	// RequireCitations adds a citation addendum to prompts.
	RequireCitations bool `yaml:"require_citations" json:"require_citations"`

	// ConstructiveRounds is the number of pro/con alternations in the
	// constructive phase (K in the protocol schedule).
	ConstructiveRounds int `yaml:"constructive_rounds" json:"constructive_rounds"`

	// TurnTimeout is the hard ceiling for a single turn including retries.
	TurnTimeout time.Duration `yaml:"turn_timeout" json:"turn_timeout"`

	Models   ModelAssignments   `yaml:"models" json:"models"`
	Personas PersonaAssignments `yaml:"personas" json:"personas"`
	Lively   LivelyConfig       `yaml:"lively" json:"lively"`
	Duelogic DuelogicConfig     `yaml:"duelogic" json:"duelogic"`
	Informal InformalConfig     `yaml:"informal" json:"informal"`
}

// ModelAssignments routes each debate role to an LLM model identifier.
// Chair models are keyed by chair position.
type ModelAssignments struct {
	Pro       string            `yaml:"pro" json:"pro"`
	Con       string            `yaml:"con" json:"con"`
	Moderator string            `yaml:"moderator" json:"moderator"`
	Arbiter   string            `yaml:"arbiter" json:"arbiter"`
	Chairs    map[string]string `yaml:"chairs" json:"chairs,omitempty"`
}

// PersonaAssignments binds debate roles to persona identifiers from the
// persona registry. Chair personas are keyed by chair position.
type PersonaAssignments struct {
	Pro    string            `yaml:"pro" json:"pro"`
	Con    string            `yaml:"con" json:"con"`
	Chairs map[string]string `yaml:"chairs" json:"chairs,omitempty"`
}

// LivelyConfig bounds the interruption engine.
type LivelyConfig struct {
	// Aggression 1..5 shifts the trigger score threshold down as it rises.
	Aggression int `yaml:"aggression" json:"aggression"`
	// MaxInterruptsPerMinute caps fired interruptions over a rolling 60s, 0..5.
	MaxInterruptsPerMinute int `yaml:"max_interrupts_per_minute" json:"max_interrupts_per_minute"`
	// InterruptCooldown is the minimum spacing between consecutive interruptions.
	InterruptCooldown time.Duration `yaml:"interrupt_cooldown" json:"interrupt_cooldown"`
	// MinSpeakingTime is the fairness floor before a speaker may be cut off.
	MinSpeakingTime time.Duration `yaml:"min_speaking_time" json:"min_speaking_time"`
	// RelevanceThreshold 0..1 is the minimum trigger score to fire.
	RelevanceThreshold float64 `yaml:"relevance_threshold" json:"relevance_threshold"`
	// Pacing, when set, overrides the individual knobs with a preset bundle.
	Pacing PacingMode `yaml:"pacing" json:"pacing,omitempty"`
}

// ChairConfig defines one duelogic chair.
type ChairConfig struct {
	// Position is the chair key, e.g. "chair_1".
	Position  string    `yaml:"position" json:"position"`
	Framework Framework `yaml:"framework" json:"framework"`
}

// DuelogicConfig controls the chair-exchange mode.
type DuelogicConfig struct {
	Accountability Accountability `yaml:"accountability" json:"accountability"`
	// MaxExchanges bounds the round-robin chair exchanges.
	MaxExchanges int  `yaml:"max_exchanges" json:"max_exchanges"`
	Tone         Tone `yaml:"tone" json:"tone"`
	Chairs       []ChairConfig `yaml:"chairs" json:"chairs"`
	// ArbiterBrackets adds arbiter opening/closing segments around the exchanges.
	ArbiterBrackets bool `yaml:"arbiter_brackets" json:"arbiter_brackets"`
	// Interruptions enables the interruption engine during chair exchanges.
	Interruptions bool `yaml:"interruptions" json:"interruptions"`
}

// InformalConfig controls the free-form discussion mode.
type InformalConfig struct {
	// Participants is the number of rotating participants (participant_1..N).
	Participants int `yaml:"participants" json:"participants"`
	// MaxTurns terminates the rotation when reached.
	MaxTurns int `yaml:"max_turns" json:"max_turns"`
}

// pacingPresets maps each pacing mode to a bundle of interrupt knobs.
// Applied by ApplyPacing when LivelyConfig.Pacing is set.
var pacingPresets = map[PacingMode]LivelyConfig{
	PacingSlow: {
		Aggression:             1,
		MaxInterruptsPerMinute: 1,
		InterruptCooldown:      45 * time.Second,
		MinSpeakingTime:        20 * time.Second,
		RelevanceThreshold:     0.85,
	},
	PacingMedium: {
		Aggression:             2,
		MaxInterruptsPerMinute: 2,
		InterruptCooldown:      30 * time.Second,
		MinSpeakingTime:        12 * time.Second,
		RelevanceThreshold:     0.7,
	},
	PacingFast: {
		Aggression:             4,
		MaxInterruptsPerMinute: 3,
		InterruptCooldown:      15 * time.Second,
		MinSpeakingTime:        8 * time.Second,
		RelevanceThreshold:     0.55,
	},
	PacingFrantic: {
		Aggression:             5,
		MaxInterruptsPerMinute: 5,
		InterruptCooldown:      8 * time.Second,
		MinSpeakingTime:        4 * time.Second,
		RelevanceThreshold:     0.4,
	},
}

// ApplyPacing replaces the individual lively knobs with the preset bundle
// when a pacing mode is configured. No-op for an empty pacing mode.
func (c *LivelyConfig) ApplyPacing() {
	if c.Pacing == "" {
		return
	}
	preset, ok := pacingPresets[c.Pacing]
	if !ok {
		return
	}
	pacing := c.Pacing
	*c = preset
	c.Pacing = pacing
}

// Validate checks the configuration bundle against the permitted domains.
// Returns a ValidationError for the first violation found.
func (c *DebateConfig) Validate() error {
	if !c.Mode.IsValid() {
		return NewValidationError("mode", "must be one of turn-based, lively, informal, duelogic")
	}
	if !c.Flow.IsValid() {
		return NewValidationError("flow", "must be auto or step")
	}
	if c.Brevity < 1 || c.Brevity > 5 {
		return NewValidationError("brevity", "must be in 1..5")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return NewValidationError("temperature", "must be in 0..1")
	}
	if c.MaxTokens < 64 || c.MaxTokens > 8192 {
		return NewValidationError("max_tokens", "must be in 64..8192")
	}
	if c.ConstructiveRounds < 1 {
		return NewValidationError("constructive_rounds", "must be >= 1")
	}

	switch c.Mode {
	case ModeTurnBased, ModeLively:
		if c.Models.Pro == "" || c.Models.Con == "" || c.Models.Moderator == "" {
			return NewValidationError("models", "pro, con and moderator models are required")
		}
	case ModeDuelogic:
		if len(c.Duelogic.Chairs) < 2 {
			return NewValidationError("duelogic.chairs", "at least two chairs are required")
		}
		for _, chair := range c.Duelogic.Chairs {
			if chair.Position == "" {
				return NewValidationError("duelogic.chairs", "chair position is required")
			}
			if !chair.Framework.IsValid() {
				return NewValidationError("duelogic.chairs", "unknown framework: "+string(chair.Framework))
			}
			if c.Models.Chairs[chair.Position] == "" {
				return NewValidationError("models.chairs", "no model assigned to "+chair.Position)
			}
		}
		if c.Models.Arbiter == "" {
			return NewValidationError("models.arbiter", "arbiter model is required")
		}
		if !c.Duelogic.Accountability.IsValid() {
			return NewValidationError("duelogic.accountability", "must be relaxed, moderate or strict")
		}
		if c.Duelogic.MaxExchanges < 1 {
			return NewValidationError("duelogic.max_exchanges", "must be >= 1")
		}
		if !c.Duelogic.Tone.IsValid() {
			return NewValidationError("duelogic.tone", "must be academic, respectful, spirited or heated")
		}
	case ModeInformal:
		if c.Informal.Participants < 2 {
			return NewValidationError("informal.participants", "must be >= 2")
		}
		if c.Informal.MaxTurns < 1 {
			return NewValidationError("informal.max_turns", "must be >= 1")
		}
	}

	if c.Mode.Interruptible() {
		l := &c.Lively
		if l.Pacing != "" && !l.Pacing.IsValid() {
			return NewValidationError("lively.pacing", "must be slow, medium, fast or frantic")
		}
		if l.Aggression < 1 || l.Aggression > 5 {
			return NewValidationError("lively.aggression", "must be in 1..5")
		}
		if l.MaxInterruptsPerMinute < 0 || l.MaxInterruptsPerMinute > 5 {
			return NewValidationError("lively.max_interrupts_per_minute", "must be in 0..5")
		}
		if l.InterruptCooldown < 0 {
			return NewValidationError("lively.interrupt_cooldown", "must be >= 0")
		}
		if l.MinSpeakingTime < 0 {
			return NewValidationError("lively.min_speaking_time", "must be >= 0")
		}
		if l.RelevanceThreshold < 0 || l.RelevanceThreshold > 1 {
			return NewValidationError("lively.relevance_threshold", "must be in 0..1")
		}
	}

	return nil
}
