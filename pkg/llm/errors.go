package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	oai "github.com/openai/openai-go"
)

// ErrorKind buckets gateway failures for the retry policy.
type ErrorKind string

const (
	// KindRateLimit means the provider asked us to back off.
	KindRateLimit ErrorKind = "rate_limit"
	// KindTransient covers network failures and provider 5xx.
	KindTransient ErrorKind = "transient"
	// KindTimeout means the call exceeded its deadline.
	KindTimeout ErrorKind = "timeout"
	// KindPermanent covers invalid requests; never retried.
	KindPermanent ErrorKind = "permanent"
	// KindEmptyResponse means the model returned no usable content.
	KindEmptyResponse ErrorKind = "empty_response"
)

// ErrEmptyResponse is returned when a call succeeds but yields no content.
var ErrEmptyResponse = errors.New("model returned empty response")

// RequestError is the tagged error all gateway calls return on failure.
type RequestError struct {
	Kind ErrorKind
	// RetryAfter is the provider-suggested wait for rate limits; zero when
	// unknown.
	RetryAfter time.Duration
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("llm request failed (%s): %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// KindOf classifies any error into an ErrorKind. Unrecognised errors are
// treated as transient so a retry gets a chance.
func KindOf(err error) ErrorKind {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Kind
	}
	if errors.Is(err, ErrEmptyResponse) {
		return KindEmptyResponse
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	// Caller-initiated cancellation must never be retried.
	if errors.Is(err, context.Canceled) {
		return KindPermanent
	}

	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return KindRateLimit
		case apiErr.StatusCode >= 500:
			return KindTransient
		case apiErr.StatusCode >= 400:
			return KindPermanent
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindTransient
	}

	return KindTransient
}

// IsRetryable reports whether the retry helper should attempt err again.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimit, KindTransient, KindTimeout:
		return true
	default:
		return false
	}
}

// classify wraps a raw provider error into a RequestError.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var re *RequestError
	if errors.As(err, &re) {
		return err
	}
	return &RequestError{Kind: KindOf(err), Err: err}
}
