package debate

import (
	"fmt"
	"sync"

	"github.com/debatelab/agora/pkg/models"
)

// InterventionQueue is the per-session FIFO of user interventions. Producers
// (the API) enqueue; the orchestrator drains at safe points. Audience
// clarification requests are deferred to phase boundaries so they never break
// up an exchange mid-phase.
type InterventionQueue struct {
	clock Clock

	mu    sync.Mutex
	items []*models.Intervention
	byKey map[string]*models.Intervention
	byID  map[string]*models.Intervention
}

// NewInterventionQueue creates an empty queue for one debate.
func NewInterventionQueue(clock Clock) *InterventionQueue {
	return &InterventionQueue{
		clock: clock,
		byKey: make(map[string]*models.Intervention),
		byID:  make(map[string]*models.Intervention),
	}
}

// Enqueue validates and appends an intervention. A repeated client key
// returns the previously accepted intervention unchanged, so client retries
// are idempotent. The stored copy is returned.
func (q *InterventionQueue) Enqueue(iv models.Intervention) (*models.Intervention, error) {
	if !iv.Type.IsValid() {
		return nil, &InvalidInterventionError{Reason: fmt.Sprintf("unknown type %q", iv.Type)}
	}
	if iv.Type.RequiresContent() && iv.Content == "" {
		return nil, &InvalidInterventionError{Reason: fmt.Sprintf("type %q requires content", iv.Type)}
	}
	if iv.Type == models.InterventionReassignModel && iv.DirectedTo == "" {
		return nil, &InvalidInterventionError{Reason: "reassign_model requires a target role"}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if iv.ClientKey != "" {
		if existing, ok := q.byKey[iv.ClientKey]; ok {
			return existing, nil
		}
	}

	stored := iv
	if stored.ID == "" {
		stored.ID = NewID()
	}
	stored.Status = models.InterventionQueued
	stored.CreatedAt = q.clock.Now()

	q.items = append(q.items, &stored)
	q.byID[stored.ID] = &stored
	if stored.ClientKey != "" {
		q.byKey[stored.ClientKey] = &stored
	}
	return &stored, nil
}

// PeekReady returns the oldest queued intervention eligible at this safe
// point, or nil. Clarification requests are only eligible at phase
// boundaries; everything else is eligible at any turn boundary.
func (q *InterventionQueue) PeekReady(phaseBoundary bool) *models.Intervention {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, iv := range q.items {
		if iv.Status != models.InterventionQueued {
			continue
		}
		if iv.Type == models.InterventionClarification && !phaseBoundary {
			continue
		}
		return iv
	}
	return nil
}

// MarkProcessing advances an intervention from queued to processing.
func (q *InterventionQueue) MarkProcessing(id string) error {
	return q.advance(id, models.InterventionProcessing, "")
}

// MarkCompleted finishes an intervention. A non-empty response is required.
func (q *InterventionQueue) MarkCompleted(id, response string) error {
	if response == "" {
		return &InvalidInterventionError{Reason: "completed intervention requires a response"}
	}
	return q.advance(id, models.InterventionCompleted, response)
}

// MarkFailed finishes an intervention with a failure note.
func (q *InterventionQueue) MarkFailed(id, reason string) error {
	return q.advance(id, models.InterventionFailed, reason)
}

func (q *InterventionQueue) advance(id string, next models.InterventionStatus, response string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	iv, ok := q.byID[id]
	if !ok {
		return fmt.Errorf("intervention %s: %w", id, ErrNotFound)
	}
	if !iv.Status.CanAdvanceTo(next) {
		return &InvalidInterventionError{
			Reason: fmt.Sprintf("cannot move intervention %s from %s to %s", id, iv.Status, next),
		}
	}

	iv.Status = next
	if response != "" {
		iv.Response = response
	}
	if next == models.InterventionCompleted || next == models.InterventionFailed {
		now := q.clock.Now()
		iv.ProcessedAt = &now
	}
	return nil
}

// Get returns the stored intervention by ID, or nil.
func (q *InterventionQueue) Get(id string) *models.Intervention {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.byID[id]
}

// PendingCount counts interventions not yet in a terminal status.
func (q *InterventionQueue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, iv := range q.items {
		if iv.Status == models.InterventionQueued || iv.Status == models.InterventionProcessing {
			n++
		}
	}
	return n
}

// All returns a snapshot of every intervention in arrival order.
func (q *InterventionQueue) All() []*models.Intervention {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]*models.Intervention, len(q.items))
	copy(out, q.items)
	return out
}
