package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxAttempts is the bound on transient retries (first try + 2 retries).
const maxAttempts = 3

// Retry runs fn with exponential backoff, retrying only errors IsRetryable
// accepts, up to maxAttempts total attempts. This is the single retry policy
// applied at every gateway boundary.
func Retry(ctx context.Context, fn func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.MaxInterval = 10 * time.Second

	b := backoff.WithContext(backoff.WithMaxRetries(exp, maxAttempts-1), ctx)
	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}
