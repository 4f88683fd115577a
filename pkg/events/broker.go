package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// replayLimit bounds the per-debate replay ring.
	replayLimit = 1024
	// subscriberBuffer sizes each subscriber channel. Large enough to hold a
	// full replay plus live headroom; a subscriber that falls this far behind
	// is dropped.
	subscriberBuffer = replayLimit + 256
	// HeartbeatInterval spaces keep-alive events to subscribers.
	HeartbeatInterval = 15 * time.Second
)

// Subscription is one subscriber's handle. Events arrive on C in sequence
// order; C is closed when the subscriber is dropped or unsubscribed.
type Subscription struct {
	ID       string
	DebateID string
	C        <-chan Event

	ch      chan Event
	dropped bool
	closed  bool
}

// Dropped reports whether the broker removed this subscriber for falling
// behind.
func (s *Subscription) Dropped() bool { return s.dropped }

// channelState is the per-debate broker state: the sequence counter, the
// replay ring, and the live subscribers.
type channelState struct {
	seq  int64
	ring []Event
	subs map[string]*Subscription
}

// Broker is the in-memory event hub. It owns sequence numbering, bounded
// replay, and fan-out with a drop-slow-subscriber policy: debate progress is
// never stalled by a subscriber.
type Broker struct {
	log *slog.Logger

	mu      sync.Mutex
	debates map[string]*channelState
	onEvent func(Event)
}

// NewBroker creates an empty broker.
func NewBroker(log *slog.Logger) *Broker {
	return &Broker{
		log:     log,
		debates: make(map[string]*channelState),
	}
}

// SetEventSink registers a callback invoked synchronously for every sequenced
// event published. The WebSocket manager uses it to broadcast to clients.
func (b *Broker) SetEventSink(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onEvent = fn
}

func (b *Broker) state(debateID string) *channelState {
	st, ok := b.debates[debateID]
	if !ok {
		st = &channelState{subs: make(map[string]*Subscription)}
		b.debates[debateID] = st
	}
	return st
}

// Publish assigns the next sequence number for the debate, retains the event
// for replay, and delivers it to every live subscriber. Never blocks: a
// subscriber whose buffer is full is dropped.
func (b *Broker) Publish(debateID, eventType string, payload any) Event {
	b.mu.Lock()
	st := b.state(debateID)
	st.seq++
	event := Event{
		Seq:      st.seq,
		Type:     eventType,
		DebateID: debateID,
		TS:       time.Now(),
		Payload:  payload,
	}

	st.ring = append(st.ring, event)
	if len(st.ring) > replayLimit {
		st.ring = st.ring[len(st.ring)-replayLimit:]
	}

	for _, sub := range st.subs {
		b.deliverLocked(st, sub, event)
	}
	sink := b.onEvent
	b.mu.Unlock()

	if sink != nil {
		sink(event)
	}
	return event
}

// deliverLocked sends without blocking; a full buffer drops the subscriber.
func (b *Broker) deliverLocked(st *channelState, sub *Subscription, event Event) {
	select {
	case sub.ch <- event:
	default:
		b.log.Warn("dropping slow subscriber",
			"debate_id", sub.DebateID,
			"subscription_id", sub.ID,
			"seq", event.Seq)
		sub.dropped = true
		b.removeLocked(st, sub)
	}
}

func (b *Broker) removeLocked(st *channelState, sub *Subscription) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(st.subs, sub.ID)
	close(sub.ch)
}

// Subscribe registers a subscriber for one debate. With lastSeq >= 0, every
// retained event with a higher sequence is delivered first; a lastSeq that
// predates the replay ring yields a single resync_required event instead and
// the client is expected to refetch the transcript. lastSeq < 0 subscribes
// live-only.
func (b *Broker) Subscribe(debateID string, lastSeq int64) *Subscription {
	sub := &Subscription{
		ID:       uuid.NewString(),
		DebateID: debateID,
		ch:       make(chan Event, subscriberBuffer),
	}
	sub.C = sub.ch

	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.state(debateID)
	st.subs[sub.ID] = sub

	sub.ch <- Event{Type: TypeConnected, DebateID: debateID, TS: time.Now()}

	if lastSeq >= 0 && len(st.ring) > 0 {
		oldest := st.ring[0].Seq
		if lastSeq+1 < oldest {
			sub.ch <- Event{
				Type:     TypeResyncRequired,
				DebateID: debateID,
				TS:       time.Now(),
				Payload:  ResyncPayload{OldestRetained: oldest},
			}
			return sub
		}
		for _, event := range st.ring {
			if event.Seq > lastSeq {
				sub.ch <- event
			}
		}
	}
	return sub
}

// Unsubscribe releases a subscription. Idempotent.
func (b *Broker) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.debates[sub.DebateID]; ok {
		b.removeLocked(st, sub)
	}
}

// SubscriberCount returns the live subscriber count for a debate.
func (b *Broker) SubscriberCount(debateID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.debates[debateID]; ok {
		return len(st.subs)
	}
	return 0
}

// LastSeq returns the highest sequence number assigned for a debate.
func (b *Broker) LastSeq(debateID string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.debates[debateID]; ok {
		return st.seq
	}
	return 0
}

// Release discards the replay ring and drops all subscribers of a finished
// debate.
func (b *Broker) Release(debateID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, ok := b.debates[debateID]
	if !ok {
		return
	}
	for _, sub := range st.subs {
		b.removeLocked(st, sub)
	}
	delete(b.debates, debateID)
}

// RunHeartbeats sends keep-alive events to every subscriber at the given
// interval until ctx is cancelled. Heartbeats carry seq 0 and are not
// retained for replay.
func (b *Broker) RunHeartbeats(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.heartbeat()
		}
	}
}

func (b *Broker) heartbeat() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	for debateID, st := range b.debates {
		event := Event{Type: TypeHeartbeat, DebateID: debateID, TS: now}
		for _, sub := range st.subs {
			b.deliverLocked(st, sub, event)
		}
	}
}
