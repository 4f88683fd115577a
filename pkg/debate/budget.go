package debate

import (
	"time"

	"github.com/debatelab/agora/pkg/config"
)

// InterruptBudget is the per-session sliding-window accountant for fired
// interruptions. Strictly session-local; owned by the orchestrator's
// interruption watcher.
type InterruptBudget struct {
	clock Clock
	cfg   config.LivelyConfig

	// fired holds the timestamps of interruptions within the rolling window.
	fired []time.Time
	// lastFired is the most recent interruption, for cooldown spacing.
	lastFired time.Time
	// speakerStart is when the current speaker began streaming.
	speakerStart time.Time
}

const interruptWindow = time.Minute

// NewInterruptBudget creates a budget for one session.
func NewInterruptBudget(clock Clock, cfg config.LivelyConfig) *InterruptBudget {
	return &InterruptBudget{clock: clock, cfg: cfg}
}

// SpeakerStarted resets the fairness floor for a new speaker.
func (b *InterruptBudget) SpeakerStarted() {
	b.speakerStart = b.clock.Now()
}

// Allows reports whether an interruption may fire right now. It checks, in
// order: the fairness floor for the current speaker, the cooldown since the
// last interruption, and the rolling per-minute cap.
func (b *InterruptBudget) Allows() bool {
	now := b.clock.Now()

	if b.cfg.MaxInterruptsPerMinute <= 0 {
		return false
	}
	if now.Sub(b.speakerStart) < b.cfg.MinSpeakingTime {
		return false
	}
	if !b.lastFired.IsZero() && now.Sub(b.lastFired) < b.cfg.InterruptCooldown {
		return false
	}

	b.prune(now)
	return len(b.fired) < b.cfg.MaxInterruptsPerMinute
}

// Mark records a fired interruption against the budget.
func (b *InterruptBudget) Mark() {
	now := b.clock.Now()
	b.prune(now)
	b.fired = append(b.fired, now)
	b.lastFired = now
}

// FiredInWindow returns the number of interruptions within the rolling
// 60 s window.
func (b *InterruptBudget) FiredInWindow() int {
	b.prune(b.clock.Now())
	return len(b.fired)
}

func (b *InterruptBudget) prune(now time.Time) {
	cutoff := now.Add(-interruptWindow)
	kept := b.fired[:0]
	for _, t := range b.fired {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	b.fired = kept
}
