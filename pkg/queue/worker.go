package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
	"github.com/debatelab/agora/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// heartbeatInterval spaces last_interaction_at updates while a debate runs.
// Must stay well under the orphan threshold.
const heartbeatInterval = 30 * time.Second

// Worker is a single queue worker that polls for and processes debates.
type Worker struct {
	id       string
	podID    string
	service  *services.DebateService
	config   *config.QueueConfig
	executor DebateExecutor
	pool     DebateRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu               sync.RWMutex
	status           WorkerStatus
	currentDebateID  string
	debatesProcessed int
	lastActivity     time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, service *services.DebateService, cfg *config.QueueConfig, executor DebateExecutor, pool DebateRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		service:      service,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentDebateID:  w.currentDebateID,
		DebatesProcessed: w.debatesProcessed,
		LastActivity:     w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoDebatesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing debate", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a debate, and drives it to a
// terminal status.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.service.CountRunning(ctx)
	if err != nil {
		return fmt.Errorf("checking active debates: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentDebates {
		return ErrAtCapacity
	}

	// 2. Claim next debate
	claimed, err := w.service.ClaimNextPendingDebate(ctx, w.podID)
	if err != nil {
		return err
	}
	if claimed == nil {
		return ErrNoDebatesAvailable
	}

	log := slog.With("debate_id", claimed.ID, "worker_id", w.id)
	log.Info("Debate claimed", "mode", claimed.Config.Mode, "proposition", claimed.Proposition)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create debate context with timeout
	debateCtx, cancelDebate := context.WithTimeout(ctx, w.config.DebateTimeout)
	defer cancelDebate()

	// 4. Register cancel function for shutdown and registry cleanup
	w.pool.RegisterDebate(claimed.ID, cancelDebate)
	defer w.pool.UnregisterDebate(claimed.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(debateCtx)
	defer cancelHeartbeat()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(heartbeatCtx, claimed.ID)
	}()

	// 6. Execute: the orchestrator persists all progress and the terminal
	// status itself.
	result := w.executor.Execute(debateCtx, claimed, w.pool)

	cancelHeartbeat()

	if result == nil {
		result = &ExecutionResult{Status: models.StatusFailed, Error: fmt.Errorf("executor returned nil result")}
	}
	if result.Error != nil {
		log.Error("Debate ended with failure", "status", result.Status, "error", result.Error)
	}

	w.mu.Lock()
	w.debatesProcessed++
	w.mu.Unlock()

	log.Info("Debate processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, debateID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.service.Heartbeat(ctx, debateID); err != nil {
				slog.Warn("Heartbeat update failed", "debate_id", debateID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, debateID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentDebateID = debateID
	w.lastActivity = time.Now()
}
