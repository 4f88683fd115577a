package debate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/debatelab/agora/pkg/config"
)

func budgetConfig() config.LivelyConfig {
	return config.LivelyConfig{
		Aggression:             3,
		MaxInterruptsPerMinute: 2,
		InterruptCooldown:      10 * time.Second,
		MinSpeakingTime:        5 * time.Second,
		RelevanceThreshold:     0.5,
	}
}

func TestBudgetMinSpeakingTime(t *testing.T) {
	clock := newFakeClock()
	b := NewInterruptBudget(clock, budgetConfig())
	b.SpeakerStarted()

	assert.False(t, b.Allows(), "fairness floor not reached")

	clock.Advance(5 * time.Second)
	assert.True(t, b.Allows())
}

func TestBudgetCooldown(t *testing.T) {
	clock := newFakeClock()
	b := NewInterruptBudget(clock, budgetConfig())
	b.SpeakerStarted()
	clock.Advance(6 * time.Second)

	assert.True(t, b.Allows())
	b.Mark()

	// New speaker resets the floor but the cooldown still applies.
	b.SpeakerStarted()
	clock.Advance(6 * time.Second)
	assert.False(t, b.Allows(), "cooldown not elapsed")

	clock.Advance(5 * time.Second)
	assert.True(t, b.Allows())
}

func TestBudgetRollingWindow(t *testing.T) {
	clock := newFakeClock()
	b := NewInterruptBudget(clock, budgetConfig())
	b.SpeakerStarted()
	clock.Advance(6 * time.Second)

	b.Mark()
	clock.Advance(15 * time.Second)
	b.Mark()
	assert.Equal(t, 2, b.FiredInWindow())
	clock.Advance(15 * time.Second)
	assert.False(t, b.Allows(), "per-minute cap reached")

	// First mark falls out of the rolling window.
	clock.Advance(32 * time.Second)
	assert.Equal(t, 1, b.FiredInWindow())
	assert.True(t, b.Allows())
}

func TestBudgetZeroCapNeverAllows(t *testing.T) {
	clock := newFakeClock()
	cfg := budgetConfig()
	cfg.MaxInterruptsPerMinute = 0
	b := NewInterruptBudget(clock, cfg)
	b.SpeakerStarted()
	clock.Advance(time.Hour)

	assert.False(t, b.Allows())
}
