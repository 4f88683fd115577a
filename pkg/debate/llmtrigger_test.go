package debate

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

func newLLMScorer(provider llm.Provider) *LLMTriggerScorer {
	return NewLLMTriggerScorer(provider, "trigger-model", prompt.NewBuilder(), slog.Default())
}

func TestLLMTriggerScorerParsesVerdict(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{
		Text: `{"interrupter": "con", "trigger": "bold_claim", "score": 0.82}`,
	})
	scorer := newLLMScorer(provider)

	decision, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
		"This is undeniably the only workable policy. ",
		[]InterruptCandidate{{Speaker: models.SpeakerCon}})
	require.NoError(t, err)
	assert.Equal(t, models.SpeakerCon, decision.Interrupter)
	assert.Equal(t, TriggerBoldClaim, decision.Trigger)
	assert.InDelta(t, 0.82, decision.Score, 0.001)

	calls := provider.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "trigger-model", calls[0].Model)
	assert.True(t, calls[0].Opts.JSONOutput)
}

func TestLLMTriggerScorerRejectsUnknownInterrupter(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{
		Text: `{"interrupter": "moderator", "trigger": "weak_point", "score": 0.9}`,
	})
	scorer := newLLMScorer(provider)

	decision, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
		"Perhaps this could work. ",
		[]InterruptCandidate{{Speaker: models.SpeakerCon}})
	require.NoError(t, err)
	assert.Empty(t, decision.Interrupter)
}

func TestLLMTriggerScorerFallsBackOnCallFailure(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{Err: errors.New("rate limited")})
	scorer := newLLMScorer(provider)

	// The heuristic fallback still recognises the bold claim.
	decision, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
		"This will always work, no one can deny it. ",
		[]InterruptCandidate{{Speaker: models.SpeakerCon}})
	require.NoError(t, err)
	assert.Equal(t, models.SpeakerCon, decision.Interrupter)
	assert.Equal(t, TriggerBoldClaim, decision.Trigger)
}

func TestLLMTriggerScorerFallsBackOnInvalidJSON(t *testing.T) {
	provider := llm.NewScriptedProvider()
	provider.Enqueue(llm.ScriptedResponse{Text: "I would not interrupt here."})
	scorer := newLLMScorer(provider)

	decision, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
		"Hedged, measured, unremarkable speech. ",
		[]InterruptCandidate{{Speaker: models.SpeakerCon}})
	require.NoError(t, err)
	assert.Empty(t, decision.Interrupter)
	assert.NoError(t, err)
}

func TestLLMTriggerScorerNoCandidates(t *testing.T) {
	provider := llm.NewScriptedProvider()
	scorer := newLLMScorer(provider)

	decision, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro, "Anything. ", nil)
	require.NoError(t, err)
	assert.Empty(t, decision.Interrupter)
	assert.Zero(t, provider.CallCount())
}
