package debate

import (
	"time"

	"github.com/debatelab/agora/pkg/models"
)

// successors encodes the legal phase transition graph. Paused is handled
// separately because its successor depends on the snapshotted previous phase.
var successors = map[models.Phase][]models.Phase{
	models.PhaseInitializing: {models.PhaseOpening, models.PhaseInformal, models.PhaseError},
	models.PhaseOpening:      {models.PhaseConstructive, models.PhasePaused, models.PhaseError},
	models.PhaseConstructive: {models.PhaseCrossExam, models.PhasePaused, models.PhaseError},
	models.PhaseCrossExam:    {models.PhaseRebuttal, models.PhasePaused, models.PhaseError},
	models.PhaseRebuttal:     {models.PhaseClosing, models.PhasePaused, models.PhaseError},
	models.PhaseClosing:      {models.PhaseSynthesis, models.PhasePaused, models.PhaseError},
	models.PhaseSynthesis:    {models.PhaseCompleted, models.PhaseError},
	models.PhaseInformal:     {models.PhaseWrapup, models.PhasePaused, models.PhaseError},
	models.PhaseWrapup:       {models.PhaseCompleted, models.PhaseError},
	models.PhaseCompleted:    {},
	models.PhaseError:        {},
}

// Transition records one performed phase change, for publishing.
type Transition struct {
	From      models.Phase
	To        models.Phase
	Speaker   models.Speaker
	ElapsedMS int64
}

// StateMachine holds a debate's current phase and enforces legal
// transitions. Owned exclusively by the orchestrator; not safe for
// concurrent use.
type StateMachine struct {
	clock Clock

	phase         models.Phase
	previousPhase models.Phase

	startedAt time.Time
	pausedAt  time.Time
	pausedMS  int64
}

// NewStateMachine creates a machine in the initializing phase.
func NewStateMachine(clock Clock) *StateMachine {
	return &StateMachine{
		clock:     clock,
		phase:     models.PhaseInitializing,
		startedAt: clock.Now(),
	}
}

// Phase returns the current phase.
func (m *StateMachine) Phase() models.Phase { return m.phase }

// PreviousPhase returns the phase snapshotted on entering paused.
func (m *StateMachine) PreviousPhase() models.Phase { return m.previousPhase }

// PausedMS returns the accumulated paused time in milliseconds, including
// an in-progress pause.
func (m *StateMachine) PausedMS() int64 {
	total := m.pausedMS
	if m.phase == models.PhasePaused {
		total += m.clock.ElapsedSince(m.pausedAt)
	}
	return total
}

// ElapsedMS returns milliseconds since the machine started, excluding time
// spent paused.
func (m *StateMachine) ElapsedMS() int64 {
	return m.clock.ElapsedSince(m.startedAt) - m.PausedMS()
}

// CanTransitionTo reports whether moving to the given phase is legal from
// the current phase.
func (m *StateMachine) CanTransitionTo(to models.Phase) bool {
	if m.phase == models.PhasePaused {
		return to == m.previousPhase || to == models.PhaseError
	}
	for _, legal := range successors[m.phase] {
		if legal == to {
			return true
		}
	}
	return false
}

// TransitionTo performs a transition, returning the record to publish.
// Illegal transitions return InvalidTransitionError without mutating state.
func (m *StateMachine) TransitionTo(to models.Phase, speaker models.Speaker) (Transition, error) {
	if !m.CanTransitionTo(to) {
		return Transition{}, &InvalidTransitionError{From: m.phase, To: to}
	}

	from := m.phase
	switch {
	case to == models.PhasePaused:
		m.previousPhase = from
		m.pausedAt = m.clock.Now()
	case from == models.PhasePaused:
		m.pausedMS += m.clock.ElapsedSince(m.pausedAt)
		m.previousPhase = ""
	}
	m.phase = to

	return Transition{
		From:      from,
		To:        to,
		Speaker:   speaker,
		ElapsedMS: m.ElapsedMS(),
	}, nil
}

// NextPhase returns the protocol successor of the current phase: the first
// legal successor that is neither paused nor error. Returns "" for terminal
// phases and for paused (use PreviousPhase to resume).
func (m *StateMachine) NextPhase() models.Phase {
	if m.phase == models.PhasePaused {
		return ""
	}
	for _, next := range successors[m.phase] {
		if next != models.PhasePaused && next != models.PhaseError {
			return next
		}
	}
	return ""
}

// Fail moves the machine to error from any non-terminal phase.
func (m *StateMachine) Fail(speaker models.Speaker) (Transition, error) {
	return m.TransitionTo(models.PhaseError, speaker)
}
