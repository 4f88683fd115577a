package debate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

func TestEndsAtSentenceBoundary(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"The claim is", false},
		{"The claim is wrong.", true},
		{"The claim is wrong. ", true},
		{"Is it though? ", true},
		{"Absolutely!", true},
		{"He said \"never.\" ", true},
		{"First paragraph.\n\n", true},
		{"trailing comma, ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EndsAtSentenceBoundary(tt.text), "text %q", tt.text)
	}
}

func TestHeuristicTriggerScorer(t *testing.T) {
	scorer := HeuristicTriggerScorer{}
	candidates := []InterruptCandidate{
		{Speaker: models.SpeakerCon, KeyPhrases: []string{"data centre"}},
	}

	t.Run("bold claim", func(t *testing.T) {
		d, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
			"This policy will obviously succeed and can never fail. ", candidates)
		require.NoError(t, err)
		assert.Equal(t, TriggerBoldClaim, d.Trigger)
		assert.Equal(t, models.SpeakerCon, d.Interrupter)
		assert.GreaterOrEqual(t, d.Score, 0.7)
	})

	t.Run("weak point", func(t *testing.T) {
		d, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
			"Perhaps this might be workable, to some extent. ", candidates)
		require.NoError(t, err)
		assert.Equal(t, TriggerWeakPoint, d.Trigger)
	})

	t.Run("key phrase beats weaker cues", func(t *testing.T) {
		d, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
			"Perhaps the data centre question is harder. ", candidates)
		require.NoError(t, err)
		assert.Equal(t, TriggerKeyPhrase, d.Trigger)
		assert.Equal(t, 0.9, d.Score)
	})

	t.Run("neutral text scores zero", func(t *testing.T) {
		d, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
			"We considered the report in committee last week. ", candidates)
		require.NoError(t, err)
		assert.Zero(t, d.Score)
	})

	t.Run("no candidates", func(t *testing.T) {
		d, err := scorer.ScoreTriggers(context.Background(), models.SpeakerPro,
			"Obviously true. ", nil)
		require.NoError(t, err)
		assert.Empty(t, d.Interrupter)
	})
}

func newTestEngine(clock Clock, cfg config.LivelyConfig) *InterruptionEngine {
	budget := NewInterruptBudget(clock, cfg)
	candidates := []InterruptCandidate{
		{Speaker: models.SpeakerPro},
		{Speaker: models.SpeakerCon},
	}
	return NewInterruptionEngine(cfg, budget, HeuristicTriggerScorer{}, candidates)
}

func TestEngineFiresAtSentenceBoundaryOnly(t *testing.T) {
	clock := newFakeClock()
	cfg := budgetConfig()
	cfg.MinSpeakingTime = 0
	e := newTestEngine(clock, cfg)
	e.SpeakerStarted(models.SpeakerPro)

	// Bold claim present, but no sentence boundary yet.
	d, err := e.Observe(context.Background(), "This will obviously")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = e.Observe(context.Background(), " work and can never fail. ")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, TriggerBoldClaim, d.Trigger)
	assert.Equal(t, models.SpeakerCon, d.Interrupter, "current speaker excluded")
	assert.Equal(t, 1, e.FiredInWindowForTest())
}

// FiredInWindowForTest exposes budget state for assertions.
func (e *InterruptionEngine) FiredInWindowForTest() int {
	return e.budget.FiredInWindow()
}

func TestEngineRespectsBudget(t *testing.T) {
	clock := newFakeClock()
	cfg := budgetConfig()
	cfg.MinSpeakingTime = 0
	cfg.MaxInterruptsPerMinute = 1
	cfg.InterruptCooldown = 30 * time.Second
	e := newTestEngine(clock, cfg)
	e.SpeakerStarted(models.SpeakerPro)

	bold := "Everyone knows this is certainly beyond doubt. "

	d, err := e.Observe(context.Background(), bold)
	require.NoError(t, err)
	require.NotNil(t, d, "first trigger fires")

	// Three more triggers inside the window: all suppressed.
	for i := 0; i < 3; i++ {
		clock.Advance(10 * time.Second)
		d, err = e.Observe(context.Background(), bold)
		require.NoError(t, err)
		assert.Nil(t, d)
	}
	assert.Equal(t, 1, e.FiredInWindowForTest())

	// Past the window and the cooldown, the next trigger fires.
	clock.Advance(40 * time.Second)
	d, err = e.Observe(context.Background(), bold)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestEngineMinSpeakingTime(t *testing.T) {
	clock := newFakeClock()
	cfg := budgetConfig()
	cfg.MinSpeakingTime = 8 * time.Second
	e := newTestEngine(clock, cfg)
	e.SpeakerStarted(models.SpeakerPro)

	d, err := e.Observe(context.Background(), "Obviously and undeniably true. ")
	require.NoError(t, err)
	assert.Nil(t, d, "fairness floor suppresses early interrupts")

	clock.Advance(9 * time.Second)
	d, err = e.Observe(context.Background(), "And it can never be otherwise. ")
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestEngineThresholdAggression(t *testing.T) {
	cfg := budgetConfig()
	cfg.RelevanceThreshold = 0.6

	cfg.Aggression = 1
	e := NewInterruptionEngine(cfg, NewInterruptBudget(newFakeClock(), cfg), HeuristicTriggerScorer{}, nil)
	assert.InDelta(t, 0.6, e.threshold(), 1e-9)

	cfg.Aggression = 5
	e = NewInterruptionEngine(cfg, NewInterruptBudget(newFakeClock(), cfg), HeuristicTriggerScorer{}, nil)
	assert.InDelta(t, 0.44, e.threshold(), 1e-9)
}

func TestEngineAccumulates(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(clock, budgetConfig())
	e.SpeakerStarted(models.SpeakerPro)

	_, _ = e.Observe(context.Background(), "Hello ")
	_, _ = e.Observe(context.Background(), "world. ")
	assert.Equal(t, "Hello world. ", e.Accumulated())

	e.SpeakerStarted(models.SpeakerCon)
	assert.Empty(t, e.Accumulated())
}
