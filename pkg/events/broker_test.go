package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, sub *Subscription, n int) []Event {
	t.Helper()
	out := make([]Event, 0, n)
	for len(out) < n {
		select {
		case event, ok := <-sub.C:
			require.True(t, ok, "channel closed before %d events arrived", n)
			out = append(out, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d of %d", len(out)+1, n)
		}
	}
	return out
}

func TestBrokerSequencing(t *testing.T) {
	b := NewBroker(slog.Default())
	sub := b.Subscribe("debate-1", -1)

	for i := 0; i < 5; i++ {
		b.Publish("debate-1", TypeToken, nil)
	}

	events := collect(t, sub, 6)
	assert.Equal(t, TypeConnected, events[0].Type)
	for i, event := range events[1:] {
		assert.Equal(t, int64(i+1), event.Seq, "sequence numbers are contiguous from 1")
	}
	assert.Equal(t, int64(5), b.LastSeq("debate-1"))
}

func TestBrokerPerDebateSequences(t *testing.T) {
	b := NewBroker(slog.Default())
	b.Publish("debate-1", TypeToken, nil)
	b.Publish("debate-1", TypeToken, nil)
	first := b.Publish("debate-2", TypeToken, nil)

	assert.Equal(t, int64(1), first.Seq, "each debate numbers independently")
}

func TestBrokerReplayFromLastSeq(t *testing.T) {
	b := NewBroker(slog.Default())
	for i := 0; i < 10; i++ {
		b.Publish("debate-1", TypeUtterance, nil)
	}

	sub := b.Subscribe("debate-1", 7)
	events := collect(t, sub, 4)

	assert.Equal(t, TypeConnected, events[0].Type)
	assert.Equal(t, int64(8), events[1].Seq)
	assert.Equal(t, int64(9), events[2].Seq)
	assert.Equal(t, int64(10), events[3].Seq)

	// Live events continue after the replay with no duplicates.
	b.Publish("debate-1", TypeUtterance, nil)
	live := collect(t, sub, 1)
	assert.Equal(t, int64(11), live[0].Seq)
}

func TestBrokerResyncRequired(t *testing.T) {
	b := NewBroker(slog.Default())
	for i := 0; i < replayLimit+50; i++ {
		b.Publish("debate-1", TypeToken, nil)
	}

	sub := b.Subscribe("debate-1", 3)
	events := collect(t, sub, 2)

	assert.Equal(t, TypeConnected, events[0].Type)
	require.Equal(t, TypeResyncRequired, events[1].Type)
	payload, ok := events[1].Payload.(ResyncPayload)
	require.True(t, ok)
	assert.Equal(t, int64(51), payload.OldestRetained)

	// No retained events follow; the next delivery is live.
	b.Publish("debate-1", TypeToken, nil)
	live := collect(t, sub, 1)
	assert.Equal(t, TypeToken, live[0].Type)
}

func TestBrokerDropsSlowSubscriber(t *testing.T) {
	b := NewBroker(slog.Default())
	sub := b.Subscribe("debate-1", -1)

	// Never read: the connected event plus the buffer fills, then the
	// subscriber is dropped and its channel closed.
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("debate-1", TypeToken, nil)
	}

	assert.Equal(t, 0, b.SubscriberCount("debate-1"))
	assert.True(t, sub.Dropped())

	// Drain until close to confirm the channel was closed.
	for range sub.C {
	}
}

func TestBrokerUnsubscribeIdempotent(t *testing.T) {
	b := NewBroker(slog.Default())
	sub := b.Subscribe("debate-1", -1)

	b.Unsubscribe(sub)
	b.Unsubscribe(sub)
	b.Unsubscribe(nil)

	assert.Equal(t, 0, b.SubscriberCount("debate-1"))
	assert.False(t, sub.Dropped(), "explicit unsubscribe is not a drop")
}

func TestBrokerHeartbeat(t *testing.T) {
	b := NewBroker(slog.Default())
	sub := b.Subscribe("debate-1", -1)
	collect(t, sub, 1) // connected

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.RunHeartbeats(ctx, 10*time.Millisecond)

	events := collect(t, sub, 1)
	assert.Equal(t, TypeHeartbeat, events[0].Type)
	assert.Zero(t, events[0].Seq, "heartbeats carry seq 0")
	assert.Equal(t, int64(0), b.LastSeq("debate-1"), "heartbeats are not sequenced or retained")
}

func TestBrokerRelease(t *testing.T) {
	b := NewBroker(slog.Default())
	sub := b.Subscribe("debate-1", -1)
	b.Publish("debate-1", TypeCompleted, nil)

	b.Release("debate-1")
	assert.Equal(t, 0, b.SubscriberCount("debate-1"))
	for range sub.C {
	}

	// A fresh subscription sees no retained history.
	again := b.Subscribe("debate-1", 0)
	b.Publish("debate-1", TypeToken, nil)
	events := collect(t, again, 2)
	assert.Equal(t, TypeConnected, events[0].Type)
	assert.Equal(t, int64(1), events[1].Seq)
}

func TestBrokerEventSink(t *testing.T) {
	b := NewBroker(slog.Default())
	var seen []Event
	b.SetEventSink(func(e Event) { seen = append(seen, e) })

	b.Publish("debate-1", TypePhaseTransition, PhaseTransitionPayload{})
	b.Publish("debate-1", TypeToken, nil)

	require.Len(t, seen, 2)
	assert.Equal(t, TypePhaseTransition, seen[0].Type)
}
