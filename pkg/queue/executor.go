package queue

import (
	"context"
	"log/slog"

	"github.com/debatelab/agora/pkg/debate"
	"github.com/debatelab/agora/pkg/models"
)

// Executor runs claimed debates through the orchestration core. One
// instance serves all workers; per-debate state lives in the orchestrator
// it constructs for each execution.
type Executor struct {
	deps debate.OrchestratorDeps
}

var _ DebateExecutor = (*Executor)(nil)

// NewExecutor creates an executor over shared orchestrator dependencies.
func NewExecutor(deps debate.OrchestratorDeps) *Executor {
	return &Executor{deps: deps}
}

// Execute builds an orchestrator for the debate, exposes its control
// surface through the registry, and drives the session to a terminal
// status. The orchestrator persists the terminal status itself; the result
// only mirrors it for worker logging.
func (e *Executor) Execute(ctx context.Context, d *models.Debate, reg DebateRegistry) *ExecutionResult {
	log := e.deps.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("debate_id", d.ID)

	orch := debate.NewOrchestrator(d, e.deps)
	reg.AttachControl(d.ID, orch)

	if err := orch.Run(ctx); err != nil {
		return &ExecutionResult{Status: models.StatusFailed, Error: err}
	}

	// Run finished cleanly for both completion and user stop; the stored
	// status says which. Use a fresh context: ctx is cancelled on timeout.
	final, err := e.deps.Store.LoadDebate(context.Background(), d.ID)
	if err != nil {
		log.Warn("Could not load terminal debate status", "error", err)
		return &ExecutionResult{Status: models.StatusCompleted}
	}
	return &ExecutionResult{Status: final.Status}
}
