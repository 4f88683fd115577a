package debate

import (
	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// Planner holds the turn cursor for one debate. ScheduleFor is the pure
// planning function; the Planner wraps it with cursor state and dynamic
// insertions (interjections, resumptions). Owned exclusively by the
// orchestrator.
type Planner struct {
	cfg   *config.DebateConfig
	phase models.Phase
	turns []models.TurnDescriptor
	pos   int
}

// NewPlanner creates a planner with an empty plan; call Reset to load the
// first phase.
func NewPlanner(cfg *config.DebateConfig) *Planner {
	return &Planner{cfg: cfg}
}

// Reset replaces the plan with the schedule for the given phase and rewinds
// the cursor.
func (p *Planner) Reset(phase models.Phase) {
	p.phase = phase
	p.turns = ScheduleFor(phase, p.cfg)
	p.pos = 0
}

// Phase returns the phase the current plan belongs to.
func (p *Planner) Phase() models.Phase { return p.phase }

// Current returns the turn at the cursor, or nil when the phase's plan is
// exhausted.
func (p *Planner) Current() *models.TurnDescriptor {
	if p.pos >= len(p.turns) {
		return nil
	}
	return &p.turns[p.pos]
}

// PeekNext returns the turn after the cursor without advancing, or nil.
func (p *Planner) PeekNext() *models.TurnDescriptor {
	if p.pos+1 >= len(p.turns) {
		return nil
	}
	return &p.turns[p.pos+1]
}

// Advance moves the cursor past the current turn.
func (p *Planner) Advance() {
	if p.pos < len(p.turns) {
		p.pos++
	}
}

// IsPhaseComplete reports whether every planned turn has been consumed.
func (p *Planner) IsPhaseComplete() bool {
	return p.pos >= len(p.turns)
}

// Remaining returns the number of turns left including the current one.
func (p *Planner) Remaining() int {
	return len(p.turns) - p.pos
}

// InsertNext places a turn immediately after the current one. Used for
// arbiter interjections and post-cutoff resumptions.
func (p *Planner) InsertNext(turn models.TurnDescriptor) {
	p.insertAt(p.pos+1, turn)
}

func (p *Planner) insertAt(at int, turn models.TurnDescriptor) {
	if at > len(p.turns) {
		at = len(p.turns)
	}
	turn.Phase = p.phase
	turns := make([]models.TurnDescriptor, 0, len(p.turns)+1)
	turns = append(turns, p.turns[:at]...)
	turns = append(turns, turn)
	turns = append(turns, p.turns[at:]...)
	p.turns = turns
}

// OnCutoff reshapes the plan after the current speaker was cut off by an
// interruption. The interjection turn always runs next; whether the cut-off
// speaker then resumes depends on the mode: lively advances to the next
// planned turn, duelogic issues a resumption turn so the chair can finish
// its exchange.
func (p *Planner) OnCutoff(cutoff models.TurnDescriptor, interrupter models.Speaker) {
	num := cutoff.Number
	p.insertAt(p.pos+1, models.TurnDescriptor{
		Number:     num,
		Speaker:    interrupter,
		Kind:       models.PromptInterjection,
		Budget:     cutoff.Budget,
		RespondsTo: &num,
	})
	if p.cfg.Mode == config.ModeDuelogic {
		resume := cutoff
		resume.Kind = models.PromptResumption
		resume.RespondsTo = &num
		p.insertAt(p.pos+2, resume)
	}
}

// ScheduleFor is the pure planning function: given a phase and the debate
// configuration it returns the ordered, finite turn list for that phase.
// Phases a mode does not use get an empty plan and the orchestrator passes
// straight through them.
func ScheduleFor(phase models.Phase, cfg *config.DebateConfig) []models.TurnDescriptor {
	switch cfg.Mode {
	case config.ModeDuelogic:
		return duelogicSchedule(phase, cfg)
	case config.ModeInformal:
		return informalSchedule(phase, cfg)
	default:
		return protocolSchedule(phase, cfg)
	}
}

// protocolSchedule covers turn-based and lively modes: the canonical
// 6-phase debate protocol.
func protocolSchedule(phase models.Phase, cfg *config.DebateConfig) []models.TurnDescriptor {
	budget := cfg.TurnTimeout
	var turns []models.TurnDescriptor
	add := func(speaker models.Speaker, kind models.PromptKind, respondsTo *int) {
		turns = append(turns, models.TurnDescriptor{
			Phase:      phase,
			Number:     len(turns),
			Speaker:    speaker,
			Kind:       kind,
			Budget:     budget,
			RespondsTo: respondsTo,
		})
	}

	switch phase {
	case models.PhaseOpening:
		add(models.SpeakerPro, models.PromptOpening, nil)
		add(models.SpeakerCon, models.PromptOpening, nil)

	case models.PhaseConstructive:
		for round := 0; round < cfg.ConstructiveRounds; round++ {
			add(models.SpeakerPro, models.PromptConstructive, nil)
			add(models.SpeakerCon, models.PromptConstructive, nil)
		}

	case models.PhaseCrossExam:
		// Each round runs both directions: pro examines con, then con
		// examines pro. Answers respond to the question immediately before.
		rounds := cfg.ConstructiveRounds / 2
		for round := 0; round < rounds; round++ {
			add(models.SpeakerPro, models.PromptCrossExamQ, nil)
			q1 := len(turns) - 1
			add(models.SpeakerCon, models.PromptCrossExamA, &q1)
			add(models.SpeakerCon, models.PromptCrossExamQ, nil)
			q2 := len(turns) - 1
			add(models.SpeakerPro, models.PromptCrossExamA, &q2)
		}

	case models.PhaseRebuttal:
		add(models.SpeakerCon, models.PromptRebuttal, nil)
		add(models.SpeakerPro, models.PromptRebuttal, nil)

	case models.PhaseClosing:
		// Pro speaks last.
		add(models.SpeakerCon, models.PromptClosing, nil)
		add(models.SpeakerPro, models.PromptClosing, nil)

	case models.PhaseSynthesis:
		add(models.SpeakerModerator, models.PromptSynthesis, nil)
	}

	return turns
}

// duelogicSchedule maps the chair-exchange protocol onto the phase graph:
// arbiter brackets in opening/closing (when enabled), the round-robin
// exchanges in constructive, everything else empty.
func duelogicSchedule(phase models.Phase, cfg *config.DebateConfig) []models.TurnDescriptor {
	budget := cfg.TurnTimeout
	var turns []models.TurnDescriptor

	switch phase {
	case models.PhaseOpening:
		if cfg.Duelogic.ArbiterBrackets {
			turns = append(turns, models.TurnDescriptor{
				Phase: phase, Number: 0,
				Speaker: models.SpeakerArbiter,
				Kind:    models.PromptArbiterOpen,
				Budget:  budget,
			})
		}

	case models.PhaseConstructive:
		chairs := cfg.Duelogic.Chairs
		if len(chairs) == 0 {
			return nil
		}
		for i := 0; i < cfg.Duelogic.MaxExchanges; i++ {
			chair := chairs[i%len(chairs)]
			turns = append(turns, models.TurnDescriptor{
				Phase:   phase,
				Number:  i,
				Speaker: models.ChairSpeaker(chair.Position),
				Kind:    models.PromptExchange,
				Budget:  budget,
			})
		}

	case models.PhaseClosing:
		if cfg.Duelogic.ArbiterBrackets {
			turns = append(turns, models.TurnDescriptor{
				Phase: phase, Number: 0,
				Speaker: models.SpeakerArbiter,
				Kind:    models.PromptArbiterClose,
				Budget:  budget,
			})
		}
	}

	return turns
}

// informalSchedule rotates participant_1..N until MaxTurns, then a single
// moderator wrap-up.
func informalSchedule(phase models.Phase, cfg *config.DebateConfig) []models.TurnDescriptor {
	budget := cfg.TurnTimeout
	var turns []models.TurnDescriptor

	switch phase {
	case models.PhaseInformal:
		n := cfg.Informal.Participants
		for i := 0; i < cfg.Informal.MaxTurns; i++ {
			turns = append(turns, models.TurnDescriptor{
				Phase:   phase,
				Number:  i,
				Speaker: models.ParticipantSpeaker(i%n + 1),
				Kind:    models.PromptInformal,
				Budget:  budget,
			})
		}

	case models.PhaseWrapup:
		turns = append(turns, models.TurnDescriptor{
			Phase: phase, Number: 0,
			Speaker: models.SpeakerModerator,
			Kind:    models.PromptWrapup,
			Budget:  budget,
		})
	}

	return turns
}

// FirstPhase returns the phase a mode enters from initializing.
func FirstPhase(mode config.Mode) models.Phase {
	if mode == config.ModeInformal {
		return models.PhaseInformal
	}
	return models.PhaseOpening
}
