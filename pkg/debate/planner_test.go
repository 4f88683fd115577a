package debate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

func plannerTurnBasedConfig(rounds int) *config.DebateConfig {
	cfg := config.DefaultDebateConfig()
	cfg.ConstructiveRounds = rounds
	cfg.Models = config.ModelAssignments{Pro: "m", Con: "m", Moderator: "m"}
	return cfg
}

func duelogicConfig(exchanges int, brackets bool) *config.DebateConfig {
	cfg := config.DefaultDebateConfig()
	cfg.Mode = config.ModeDuelogic
	cfg.Models.Arbiter = "m"
	cfg.Models.Chairs = map[string]string{"chair_1": "m", "chair_2": "m"}
	cfg.Duelogic.MaxExchanges = exchanges
	cfg.Duelogic.ArbiterBrackets = brackets
	cfg.Duelogic.Chairs = []config.ChairConfig{
		{Position: "chair_1", Framework: config.FrameworkUtilitarian},
		{Position: "chair_2", Framework: config.FrameworkDeontological},
	}
	return cfg
}

func speakers(turns []models.TurnDescriptor) []models.Speaker {
	out := make([]models.Speaker, len(turns))
	for i, t := range turns {
		out[i] = t.Speaker
	}
	return out
}

func TestScheduleProtocolPhases(t *testing.T) {
	cfg := plannerTurnBasedConfig(2)

	t.Run("opening", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseOpening, cfg)
		assert.Equal(t, []models.Speaker{models.SpeakerPro, models.SpeakerCon}, speakers(turns))
		for _, turn := range turns {
			assert.Equal(t, models.PromptOpening, turn.Kind)
		}
	})

	t.Run("constructive alternates for K rounds", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseConstructive, cfg)
		require.Len(t, turns, 4)
		assert.Equal(t, []models.Speaker{
			models.SpeakerPro, models.SpeakerCon,
			models.SpeakerPro, models.SpeakerCon,
		}, speakers(turns))
	})

	t.Run("cross-exam Q/A with responds_to", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseCrossExam, cfg)
		require.Len(t, turns, 4) // 2*floor(K/2)*2 with K=2

		assert.Equal(t, models.PromptCrossExamQ, turns[0].Kind)
		assert.Equal(t, models.SpeakerPro, turns[0].Speaker)
		assert.Nil(t, turns[0].RespondsTo)

		assert.Equal(t, models.PromptCrossExamA, turns[1].Kind)
		assert.Equal(t, models.SpeakerCon, turns[1].Speaker)
		require.NotNil(t, turns[1].RespondsTo)
		assert.Equal(t, 0, *turns[1].RespondsTo)

		assert.Equal(t, models.PromptCrossExamQ, turns[2].Kind)
		assert.Equal(t, models.SpeakerCon, turns[2].Speaker)

		assert.Equal(t, models.PromptCrossExamA, turns[3].Kind)
		assert.Equal(t, models.SpeakerPro, turns[3].Speaker)
		require.NotNil(t, turns[3].RespondsTo)
		assert.Equal(t, 2, *turns[3].RespondsTo)
	})

	t.Run("rebuttal con first", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseRebuttal, cfg)
		assert.Equal(t, []models.Speaker{models.SpeakerCon, models.SpeakerPro}, speakers(turns))
	})

	t.Run("closing pro last", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseClosing, cfg)
		require.Len(t, turns, 2)
		assert.Equal(t, models.SpeakerCon, turns[0].Speaker)
		assert.Equal(t, models.SpeakerPro, turns[1].Speaker)
	})

	t.Run("synthesis single moderator turn", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseSynthesis, cfg)
		require.Len(t, turns, 1)
		assert.Equal(t, models.SpeakerModerator, turns[0].Speaker)
		assert.Equal(t, models.PromptSynthesis, turns[0].Kind)
	})
}

func TestScheduleDuelogic(t *testing.T) {
	t.Run("round robin bounded by max exchanges", func(t *testing.T) {
		turns := ScheduleFor(models.PhaseConstructive, duelogicConfig(5, false))
		require.Len(t, turns, 5)
		assert.Equal(t, []models.Speaker{
			"chair_1", "chair_2", "chair_1", "chair_2", "chair_1",
		}, speakers(turns))
		for _, turn := range turns {
			assert.Equal(t, models.PromptExchange, turn.Kind)
		}
	})

	t.Run("arbiter brackets", func(t *testing.T) {
		cfg := duelogicConfig(2, true)
		opening := ScheduleFor(models.PhaseOpening, cfg)
		require.Len(t, opening, 1)
		assert.Equal(t, models.SpeakerArbiter, opening[0].Speaker)
		assert.Equal(t, models.PromptArbiterOpen, opening[0].Kind)

		closing := ScheduleFor(models.PhaseClosing, cfg)
		require.Len(t, closing, 1)
		assert.Equal(t, models.PromptArbiterClose, closing[0].Kind)
	})

	t.Run("no brackets means empty opening and closing", func(t *testing.T) {
		cfg := duelogicConfig(2, false)
		assert.Empty(t, ScheduleFor(models.PhaseOpening, cfg))
		assert.Empty(t, ScheduleFor(models.PhaseClosing, cfg))
	})

	t.Run("unused protocol phases are empty", func(t *testing.T) {
		cfg := duelogicConfig(2, true)
		assert.Empty(t, ScheduleFor(models.PhaseCrossExam, cfg))
		assert.Empty(t, ScheduleFor(models.PhaseRebuttal, cfg))
		assert.Empty(t, ScheduleFor(models.PhaseSynthesis, cfg))
	})
}

func TestScheduleInformal(t *testing.T) {
	cfg := config.DefaultDebateConfig()
	cfg.Mode = config.ModeInformal
	cfg.Informal.Participants = 3
	cfg.Informal.MaxTurns = 7

	turns := ScheduleFor(models.PhaseInformal, cfg)
	require.Len(t, turns, 7)
	assert.Equal(t, models.Speaker("participant_1"), turns[0].Speaker)
	assert.Equal(t, models.Speaker("participant_2"), turns[1].Speaker)
	assert.Equal(t, models.Speaker("participant_3"), turns[2].Speaker)
	assert.Equal(t, models.Speaker("participant_1"), turns[3].Speaker)
	assert.Equal(t, models.Speaker("participant_1"), turns[6].Speaker)

	wrapup := ScheduleFor(models.PhaseWrapup, cfg)
	require.Len(t, wrapup, 1)
	assert.Equal(t, models.PromptWrapup, wrapup[0].Kind)
}

func TestPlannerCursor(t *testing.T) {
	p := NewPlanner(plannerTurnBasedConfig(1))
	p.Reset(models.PhaseOpening)

	require.NotNil(t, p.Current())
	assert.Equal(t, models.SpeakerPro, p.Current().Speaker)
	assert.Equal(t, models.SpeakerCon, p.PeekNext().Speaker)
	assert.False(t, p.IsPhaseComplete())
	assert.Equal(t, 2, p.Remaining())

	p.Advance()
	assert.Equal(t, models.SpeakerCon, p.Current().Speaker)
	assert.Nil(t, p.PeekNext())

	p.Advance()
	assert.Nil(t, p.Current())
	assert.True(t, p.IsPhaseComplete())

	// Advancing past the end stays exhausted.
	p.Advance()
	assert.True(t, p.IsPhaseComplete())

	p.Reset(models.PhaseConstructive)
	assert.False(t, p.IsPhaseComplete())
	assert.Equal(t, models.PhaseConstructive, p.Phase())
}

func TestPlannerInsertNext(t *testing.T) {
	p := NewPlanner(plannerTurnBasedConfig(1))
	p.Reset(models.PhaseConstructive)

	p.InsertNext(models.TurnDescriptor{
		Speaker: models.SpeakerArbiter,
		Kind:    models.PromptInterjection,
	})

	assert.Equal(t, models.SpeakerPro, p.Current().Speaker)
	p.Advance()
	assert.Equal(t, models.SpeakerArbiter, p.Current().Speaker)
	assert.Equal(t, models.PhaseConstructive, p.Current().Phase)
	p.Advance()
	assert.Equal(t, models.SpeakerCon, p.Current().Speaker)
}

func TestPlannerOnCutoffLively(t *testing.T) {
	cfg := plannerTurnBasedConfig(1)
	cfg.Mode = config.ModeLively
	p := NewPlanner(cfg)
	p.Reset(models.PhaseConstructive)

	cutoff := *p.Current()
	p.OnCutoff(cutoff, models.SpeakerCon)

	p.Advance()
	interjection := p.Current()
	require.NotNil(t, interjection)
	assert.Equal(t, models.SpeakerCon, interjection.Speaker)
	assert.Equal(t, models.PromptInterjection, interjection.Kind)
	require.NotNil(t, interjection.RespondsTo)
	assert.Equal(t, cutoff.Number, *interjection.RespondsTo)

	// Lively mode: no automatic resumption for the cut-off speaker.
	p.Advance()
	next := p.Current()
	require.NotNil(t, next)
	assert.NotEqual(t, models.PromptResumption, next.Kind)
}

func TestPlannerOnCutoffDuelogic(t *testing.T) {
	p := NewPlanner(duelogicConfig(4, false))
	p.Reset(models.PhaseConstructive)

	cutoff := *p.Current()
	p.OnCutoff(cutoff, models.SpeakerArbiter)

	p.Advance()
	assert.Equal(t, models.PromptInterjection, p.Current().Kind)

	p.Advance()
	resume := p.Current()
	require.NotNil(t, resume)
	assert.Equal(t, models.PromptResumption, resume.Kind)
	assert.Equal(t, cutoff.Speaker, resume.Speaker)
}

func TestFirstPhase(t *testing.T) {
	assert.Equal(t, models.PhaseOpening, FirstPhase(config.ModeTurnBased))
	assert.Equal(t, models.PhaseOpening, FirstPhase(config.ModeDuelogic))
	assert.Equal(t, models.PhaseInformal, FirstPhase(config.ModeInformal))
}
