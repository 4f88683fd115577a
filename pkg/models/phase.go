package models

// Phase is a named segment of a debate with its own allowed speakers and
// turn plan. The state machine in pkg/debate enforces legal successors.
type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhaseOpening      Phase = "opening"
	PhaseConstructive Phase = "constructive"
	PhaseCrossExam    Phase = "cross_exam"
	PhaseRebuttal     Phase = "rebuttal"
	PhaseClosing      Phase = "closing"
	PhaseSynthesis    Phase = "synthesis"
	PhaseInformal     Phase = "informal"
	PhaseWrapup       Phase = "wrapup"
	PhasePaused       Phase = "paused"
	PhaseCompleted    Phase = "completed"
	PhaseError        Phase = "error"
)

// IsValid checks if the phase is valid.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseInitializing, PhaseOpening, PhaseConstructive, PhaseCrossExam,
		PhaseRebuttal, PhaseClosing, PhaseSynthesis, PhaseInformal,
		PhaseWrapup, PhasePaused, PhaseCompleted, PhaseError:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the phase admits no further transitions.
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseError
}

// DebateStatus tracks the queue lifecycle of a debate, orthogonal to Phase.
// A debate is created pending, claimed by a worker into running, and ends
// in completed, failed, or stopped.
type DebateStatus string

const (
	StatusPending   DebateStatus = "pending"
	StatusRunning   DebateStatus = "running"
	StatusPaused    DebateStatus = "paused"
	StatusCompleted DebateStatus = "completed"
	StatusFailed    DebateStatus = "failed"
	StatusStopped   DebateStatus = "stopped"
)

// IsValid checks if the status is valid.
func (s DebateStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted,
		StatusFailed, StatusStopped:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is final.
func (s DebateStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusStopped
}
