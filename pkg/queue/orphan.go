package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/debatelab/agora/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned debates.
// All pods run this independently; recovery is conditional on the debate
// still being worker-owned, so concurrent scans cannot double-requeue.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds worker-owned debates with stale heartbeats
// and returns them to the pending pool for another worker to claim.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.service.FindOrphanedDebates(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned debates: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned debates", "count", len(orphans))

	recovered := 0
	for _, d := range orphans {
		// Never requeue a debate this pod still owns: a long store stall can
		// make our own heartbeat look stale.
		if _, ownedHere := p.Control(d.ID); ownedHere {
			continue
		}

		log := slog.With("debate_id", d.ID, "old_pod_id", d.PodID)
		lastHeartbeat := "unknown"
		if d.LastInteractionAt != nil {
			lastHeartbeat = d.LastInteractionAt.Format(time.RFC3339)
		}

		if err := p.service.RequeueDebate(ctx, d.ID); err != nil {
			if errors.Is(err, services.ErrConcurrentModification) {
				continue // Another pod recovered it first
			}
			log.Error("Failed to requeue orphaned debate", "error", err)
			continue
		}

		log.Warn("Orphaned debate returned to queue", "last_heartbeat", lastHeartbeat)
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// CleanupStartupOrphans requeues debates owned by this pod that were
// running when the pod previously crashed. Called once during startup,
// before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, service *services.DebateService, podID string) error {
	orphans, err := service.FindOrphanedDebates(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	requeued := 0
	for _, d := range orphans {
		if d.PodID != podID {
			continue
		}
		if err := service.RequeueDebate(ctx, d.ID); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"debate_id", d.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "debate_id", d.ID)
		requeued++
	}

	if requeued > 0 {
		slog.Warn("Recovered startup orphans from previous run",
			"pod_id", podID,
			"count", requeued)
	}

	return nil
}
