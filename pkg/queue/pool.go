package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/services"
)

// activeDebate is the per-debate registry entry: the context cancel for
// hard shutdown and the orchestrator control surface for API routing.
type activeDebate struct {
	cancel  context.CancelFunc
	control ControlHandle
}

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	service  *services.DebateService
	config   *config.QueueConfig
	executor DebateExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Debate registry: debate_id -> cancel + control handle
	active map[string]*activeDebate
	mu     sync.RWMutex

	started bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, service *services.DebateService, cfg *config.QueueConfig, executor DebateExecutor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		service:  service,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
		active:   make(map[string]*activeDebate),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.service, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool: workers stop polling, active debates get the
// graceful shutdown window to finish, then their contexts are cancelled and
// the orchestrators record a stopped status.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveDebateIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active debates to finish",
			"count", len(active),
			"debate_ids", active,
			"grace", p.config.GracefulShutdownTimeout)
	}

	// Cut over any debate still running when the grace window closes.
	deadline := time.AfterFunc(p.config.GracefulShutdownTimeout, func() {
		for _, id := range p.getActiveDebateIDs() {
			slog.Warn("Graceful shutdown window closed, stopping debate", "debate_id", id)
			p.mu.RLock()
			entry := p.active[id]
			p.mu.RUnlock()
			if entry == nil {
				continue
			}
			if entry.control != nil {
				entry.control.Stop("server shutting down")
			}
			entry.cancel()
		}
	})
	defer deadline.Stop()

	// Signal all workers to stop (they finish current debates)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterDebate stores a cancel function for shutdown cancellation.
func (p *WorkerPool) RegisterDebate(debateID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[debateID] = &activeDebate{cancel: cancel}
}

// AttachControl exposes the orchestrator's control surface for API routing.
func (p *WorkerPool) AttachControl(debateID string, h ControlHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok := p.active[debateID]; ok {
		entry.control = h
		return
	}
	p.active[debateID] = &activeDebate{cancel: func() {}, control: h}
}

// UnregisterDebate removes registry state when processing ends.
func (p *WorkerPool) UnregisterDebate(debateID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, debateID)
}

// Control returns the control surface of a debate running on this pod.
func (p *WorkerPool) Control(debateID string) (ControlHandle, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	entry, ok := p.active[debateID]
	if !ok || entry.control == nil {
		return nil, false
	}
	return entry.control, true
}

// CancelDebate triggers context cancellation for a debate on this pod.
// Returns true if the debate was found and cancelled on this pod.
func (p *WorkerPool) CancelDebate(debateID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if entry, ok := p.active[debateID]; ok {
		entry.cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.service.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeDebates, errA := p.service.CountActiveOnPod(ctx, p.podID)
	if errA != nil {
		slog.Error("Failed to query active debates for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeDebates <= p.config.MaxConcurrentDebates && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active debates query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveDebates:    activeDebates,
		MaxConcurrent:    p.config.MaxConcurrentDebates,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveDebateIDs returns IDs of currently processing debates (for logging).
func (p *WorkerPool) getActiveDebateIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}
