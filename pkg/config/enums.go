package config

// Mode defines the available debate modes.
type Mode string

const (
	// ModeTurnBased is the structured 6-phase protocol with strict turn order.
	ModeTurnBased Mode = "turn-based"
	// ModeLively is turn-based with opportunistic mid-stream interruptions.
	ModeLively Mode = "lively"
	// ModeInformal is a free-form rotation over N participants.
	ModeInformal Mode = "informal"
	// ModeDuelogic pits framework-bound chairs against each other under an arbiter.
	ModeDuelogic Mode = "duelogic"
)

// IsValid checks if the mode is valid.
func (m Mode) IsValid() bool {
	switch m {
	case ModeTurnBased, ModeLively, ModeInformal, ModeDuelogic:
		return true
	default:
		return false
	}
}

// Interruptible reports whether the interruption engine runs in this mode.
func (m Mode) Interruptible() bool {
	return m == ModeLively || m == ModeDuelogic
}

// Flow defines how the debate advances between turns.
type Flow string

const (
	// FlowAuto advances to the next turn automatically.
	FlowAuto Flow = "auto"
	// FlowStep waits for an explicit user continue between turns.
	FlowStep Flow = "step"
)

// IsValid checks if the flow is valid.
func (f Flow) IsValid() bool {
	return f == FlowAuto || f == FlowStep
}

// PacingMode bundles the lively-mode interrupt knobs into presets.
type PacingMode string

const (
	PacingSlow    PacingMode = "slow"
	PacingMedium  PacingMode = "medium"
	PacingFast    PacingMode = "fast"
	PacingFrantic PacingMode = "frantic"
)

// IsValid checks if the pacing mode is valid.
func (p PacingMode) IsValid() bool {
	switch p {
	case PacingSlow, PacingMedium, PacingFast, PacingFrantic:
		return true
	default:
		return false
	}
}

// Accountability defines how strictly the duelogic arbiter enforces
// debate principles (steel-manning, self-critique).
type Accountability string

const (
	// AccountabilityRelaxed uses heuristic-only evaluation and never interjects.
	AccountabilityRelaxed Accountability = "relaxed"
	// AccountabilityModerate uses LLM evaluation; interjects only on flagged
	// evaluations with score < 40.
	AccountabilityModerate Accountability = "moderate"
	// AccountabilityStrict interjects on any flagged evaluation, score < 60,
	// or a missing steel-man / self-critique.
	AccountabilityStrict Accountability = "strict"
)

// IsValid checks if the accountability level is valid.
func (a Accountability) IsValid() bool {
	switch a {
	case AccountabilityRelaxed, AccountabilityModerate, AccountabilityStrict:
		return true
	default:
		return false
	}
}

// Tone defines the rhetorical register for duelogic prompts.
type Tone string

const (
	ToneAcademic   Tone = "academic"
	ToneRespectful Tone = "respectful"
	ToneSpirited   Tone = "spirited"
	ToneHeated     Tone = "heated"
)

// IsValid checks if the tone is valid.
func (t Tone) IsValid() bool {
	switch t {
	case ToneAcademic, ToneRespectful, ToneSpirited, ToneHeated:
		return true
	default:
		return false
	}
}

// Framework identifies the philosophical framework a duelogic chair argues from.
type Framework string

const (
	FrameworkUtilitarian      Framework = "utilitarian"
	FrameworkVirtueEthics     Framework = "virtue_ethics"
	FrameworkDeontological    Framework = "deontological"
	FrameworkPragmatic        Framework = "pragmatic"
	FrameworkLibertarian      Framework = "libertarian"
	FrameworkCommunitarian    Framework = "communitarian"
	FrameworkCosmopolitan     Framework = "cosmopolitan"
	FrameworkPrecautionary    Framework = "precautionary"
	FrameworkAutonomyCentered Framework = "autonomy_centered"
	FrameworkCareEthics       Framework = "care_ethics"
)

// IsValid checks if the framework is valid.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkUtilitarian, FrameworkVirtueEthics, FrameworkDeontological,
		FrameworkPragmatic, FrameworkLibertarian, FrameworkCommunitarian,
		FrameworkCosmopolitan, FrameworkPrecautionary, FrameworkAutonomyCentered,
		FrameworkCareEthics:
		return true
	default:
		return false
	}
}
