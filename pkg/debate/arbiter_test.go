package debate

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

func chairUtterance(content string) *models.Utterance {
	return &models.Utterance{
		Speaker: models.ChairSpeaker("chair_1"),
		Content: content,
	}
}

func TestArbiterRelaxedNeverCallsProvider(t *testing.T) {
	provider := llm.NewScriptedProvider()
	a := NewArbiter(config.AccountabilityRelaxed, provider, "eval-model", prompt.NewBuilder(), slog.Default())

	eval := a.Evaluate(context.Background(), chairUtterance("Utility is all that matters."), config.FrameworkUtilitarian, nil)

	assert.Equal(t, 0, provider.CallCount())
	assert.False(t, a.ShouldInterject(eval), "relaxed never interjects")
}

func TestArbiterHeuristicDetectsCues(t *testing.T) {
	a := NewArbiter(config.AccountabilityRelaxed, nil, "", prompt.NewBuilder(), slog.Default())

	t.Run("steel-man and self-critique present", func(t *testing.T) {
		eval := a.Evaluate(context.Background(), chairUtterance(
			"The strongest version of the deontological case holds that rights are inviolable. "+
				"I concede my framework struggles with distributional questions, yet outcomes still decide here."),
			config.FrameworkUtilitarian, nil)

		assert.True(t, eval.SteelManAttempted)
		assert.True(t, eval.SelfCritiqueAttempted)
		assert.False(t, eval.RequiresInterjection)
		assert.GreaterOrEqual(t, eval.Score, 80)
	})

	t.Run("neither cue present", func(t *testing.T) {
		eval := a.Evaluate(context.Background(), chairUtterance(
			"My position is simply correct and the other side has nothing worth engaging."),
			config.FrameworkUtilitarian, nil)

		assert.False(t, eval.SteelManAttempted)
		assert.False(t, eval.SelfCritiqueAttempted)
		assert.True(t, eval.RequiresInterjection)
		assert.Equal(t, models.ViolationMissingSteelMan, eval.Violation)
	})
}

func TestArbiterModerateUsesLLM(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{Text: `{
		"score": 35,
		"steel_man_attempted": false,
		"steel_man_quality": 0,
		"self_critique_attempted": true,
		"self_critique_quality": 55,
		"framework_consistency": 80,
		"intellectual_honesty": 40,
		"requires_interjection": true,
		"violation": "straw_manning"
	}`})
	a := NewArbiter(config.AccountabilityModerate, provider, "eval-model", prompt.NewBuilder(), slog.Default())

	eval := a.Evaluate(context.Background(), chairUtterance("So you admit everything I say."), config.FrameworkVirtueEthics, []string{"utilitarian: outcomes first"})

	require.Equal(t, 1, provider.CallCount())
	call := provider.Calls()[0]
	assert.Equal(t, "eval-model", call.Model)
	assert.True(t, call.Opts.JSONOutput)

	assert.Equal(t, 35, eval.Score)
	assert.Equal(t, models.ViolationStrawManning, eval.Violation)
	assert.True(t, a.ShouldInterject(eval), "moderate interjects when required and score < 40")
}

func TestArbiterModerateThresholds(t *testing.T) {
	a := NewArbiter(config.AccountabilityModerate, nil, "", prompt.NewBuilder(), slog.Default())

	assert.False(t, a.ShouldInterject(models.QualityEvaluation{RequiresInterjection: true, Score: 45}),
		"score at or above 40 holds the interjection")
	assert.False(t, a.ShouldInterject(models.QualityEvaluation{RequiresInterjection: false, Score: 10}),
		"low score alone is not enough at moderate")
	assert.True(t, a.ShouldInterject(models.QualityEvaluation{RequiresInterjection: true, Score: 39}))
}

func TestArbiterStrictThresholds(t *testing.T) {
	a := NewArbiter(config.AccountabilityStrict, nil, "", prompt.NewBuilder(), slog.Default())

	base := models.QualityEvaluation{
		Score:                 75,
		SteelManAttempted:     true,
		SelfCritiqueAttempted: true,
	}
	assert.False(t, a.ShouldInterject(base))

	low := base
	low.Score = 59
	assert.True(t, a.ShouldInterject(low), "strict interjects below 60")

	noSteel := base
	noSteel.SteelManAttempted = false
	assert.True(t, a.ShouldInterject(noSteel))

	noCritique := base
	noCritique.SelfCritiqueAttempted = false
	assert.True(t, a.ShouldInterject(noCritique))

	flagged := base
	flagged.RequiresInterjection = true
	assert.True(t, a.ShouldInterject(flagged))
}

func TestArbiterLLMFailureFallsBackToHeuristics(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{Err: &llm.RequestError{Kind: llm.KindPermanent, Err: assert.AnError}})
	a := NewArbiter(config.AccountabilityStrict, provider, "eval-model", prompt.NewBuilder(), slog.Default())

	eval := a.Evaluate(context.Background(), chairUtterance(
		"To be fair to the other side, their case is coherent. Admittedly my view has a weakness here."),
		config.FrameworkPragmatic, nil)

	assert.Equal(t, 1, provider.CallCount())
	assert.True(t, eval.SteelManAttempted)
	assert.True(t, eval.SelfCritiqueAttempted)
}

func TestArbiterMalformedJSONFallsBack(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{Text: "not json at all"})
	a := NewArbiter(config.AccountabilityModerate, provider, "eval-model", prompt.NewBuilder(), slog.Default())

	eval := a.Evaluate(context.Background(), chairUtterance("Plain assertion."), config.FrameworkUtilitarian, nil)

	assert.Equal(t, 1, provider.CallCount())
	assert.True(t, eval.RequiresInterjection, "heuristic fallback flags the bare assertion")
}

func TestArbiterCachesBySpeakerAndContent(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.SetDefault(llm.ScriptedResponse{Text: `{"score": 70, "steel_man_attempted": true, "self_critique_attempted": true}`})
	a := NewArbiter(config.AccountabilityModerate, provider, "eval-model", prompt.NewBuilder(), slog.Default())

	u := chairUtterance("Identical content.")
	a.Evaluate(context.Background(), u, config.FrameworkUtilitarian, nil)
	a.Evaluate(context.Background(), u, config.FrameworkUtilitarian, nil)
	assert.Equal(t, 1, provider.CallCount(), "identical utterance is served from cache")

	other := &models.Utterance{Speaker: models.ChairSpeaker("chair_2"), Content: "Identical content."}
	a.Evaluate(context.Background(), other, config.FrameworkUtilitarian, nil)
	assert.Equal(t, 2, provider.CallCount(), "same content from another speaker is evaluated fresh")
}

func TestArbiterViolationFor(t *testing.T) {
	a := NewArbiter(config.AccountabilityStrict, nil, "", prompt.NewBuilder(), slog.Default())

	assert.Equal(t, models.ViolationStrawManning,
		a.ViolationFor(models.QualityEvaluation{Violation: models.ViolationStrawManning}),
		"explicit violation wins")
	assert.Equal(t, models.ViolationMissingSteelMan,
		a.ViolationFor(models.QualityEvaluation{SelfCritiqueAttempted: true}))
	assert.Equal(t, models.ViolationMissingSelfCritique,
		a.ViolationFor(models.QualityEvaluation{SteelManAttempted: true}))
	assert.Equal(t, models.ViolationFrameworkInconsistency,
		a.ViolationFor(models.QualityEvaluation{SteelManAttempted: true, SelfCritiqueAttempted: true, FrameworkConsistency: 30}))
	assert.Equal(t, models.ViolationRhetoricalEvasion,
		a.ViolationFor(models.QualityEvaluation{SteelManAttempted: true, SelfCritiqueAttempted: true, FrameworkConsistency: 90}))
}
