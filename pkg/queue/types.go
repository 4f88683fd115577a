// Package queue provides debate queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/debatelab/agora/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoDebatesAvailable indicates no pending debates are in the queue.
	ErrNoDebatesAvailable = errors.New("no debates available")

	// ErrAtCapacity indicates the global concurrent debate limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// ControlHandle is the control surface of a running debate that API
// handlers reach through the pool registry. Implemented by the orchestrator.
type ControlHandle interface {
	Pause()
	Resume()
	Stop(reason string)
	Continue()
	ReassignModel(role models.Speaker, model string)
	Intervene(ctx context.Context, iv models.Intervention) (*models.Intervention, error)
	Interventions() []*models.Intervention
}

// DebateRegistry is the subset of WorkerPool used by workers and executors
// to track debates running on this pod.
type DebateRegistry interface {
	// RegisterDebate stores the cancel function for a claimed debate.
	RegisterDebate(debateID string, cancel context.CancelFunc)
	// UnregisterDebate removes all registry state when processing ends.
	UnregisterDebate(debateID string)
	// AttachControl exposes the orchestrator's control surface while the
	// debate runs.
	AttachControl(debateID string, h ControlHandle)
}

// DebateExecutor drives one claimed debate to a terminal status.
//
// The executor owns the ENTIRE debate lifecycle internally: phases,
// turns, interruptions, interventions and terminal persistence. The worker
// only handles claiming, heartbeat, registry bookkeeping and the failure
// path where the executor could not start at all.
type DebateExecutor interface {
	Execute(ctx context.Context, d *models.Debate, reg DebateRegistry) *ExecutionResult
}

// ExecutionResult is lightweight. The transcript, events and terminal
// status were already written progressively during execution.
type ExecutionResult struct {
	Status models.DebateStatus // completed, stopped, failed
	Error  error               // Error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveDebates    int            `json:"active_debates"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentDebateID  string    `json:"current_debate_id,omitempty"`
	DebatesProcessed int       `json:"debates_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
