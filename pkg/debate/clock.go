package debate

import (
	"time"

	"github.com/google/uuid"
)

// Clock is the injectable time source for the orchestration core. Tests
// substitute a fake that advances manually.
type Clock interface {
	Now() time.Time
	// ElapsedSince returns milliseconds since t.
	ElapsedSince(t time.Time) int64
	// NewTimer returns a channel that fires once after d.
	NewTimer(d time.Duration) <-chan time.Time
}

// RealClock is the production Clock backed by the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) ElapsedSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}

func (RealClock) NewTimer(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// NewID mints an opaque, collision-resistant identifier. UUIDv7 is
// time-ordered, so IDs sort lexically in creation order within a session.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
