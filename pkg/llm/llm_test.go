package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"tagged request error", &RequestError{Kind: KindRateLimit, Err: errors.New("429")}, KindRateLimit},
		{"empty response sentinel", ErrEmptyResponse, KindEmptyResponse},
		{"wrapped empty response", &RequestError{Kind: KindEmptyResponse, Err: ErrEmptyResponse}, KindEmptyResponse},
		{"deadline", context.DeadlineExceeded, KindTimeout},
		{"canceled", context.Canceled, KindPermanent},
		{"unknown", errors.New("connection reset"), KindTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&RequestError{Kind: KindRateLimit}))
	assert.True(t, IsRetryable(&RequestError{Kind: KindTransient}))
	assert.True(t, IsRetryable(&RequestError{Kind: KindTimeout}))
	assert.False(t, IsRetryable(&RequestError{Kind: KindPermanent}))
	assert.False(t, IsRetryable(&RequestError{Kind: KindEmptyResponse}))
}

func TestRetryStopsOnPermanent(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), func() error {
		attempts++
		return &RequestError{Kind: KindPermanent, Err: errors.New("bad request")}
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryRecoversTransient(t *testing.T) {
	attempts := 0
	err := Retry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return &RequestError{Kind: KindTransient, Err: errors.New("flaky")}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestScriptedProviderComplete(t *testing.T) {
	p := NewScriptedProvider()
	p.Enqueue(ScriptedResponse{Text: "first"}, ScriptedResponse{Text: "second"})
	p.EnqueueFor("gpt-4o-mini", ScriptedResponse{Text: "routed"})

	c, err := p.Complete(context.Background(), "gpt-4o-mini", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "routed", c.Text)

	c, err = p.Complete(context.Background(), "gpt-4o", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "first", c.Text)

	c, err = p.Complete(context.Background(), "gpt-4o", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "second", c.Text)

	// Empty queue with no default yields an empty-response error.
	_, err = p.Complete(context.Background(), "gpt-4o", nil, Options{})
	require.Error(t, err)
	assert.Equal(t, KindEmptyResponse, KindOf(err))

	assert.Equal(t, 4, p.CallCount())
}

func TestScriptedProviderStream(t *testing.T) {
	p := NewScriptedProvider()
	p.Enqueue(ScriptedResponse{
		Text:  "Hello brave world. ",
		Usage: Usage{InputTokens: 10, OutputTokens: 4, TotalTokens: 14},
	})

	ch, err := p.Stream(context.Background(), "m", nil, Options{})
	require.NoError(t, err)

	var text string
	var usage *Usage
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			text += c.Content
		case *UsageChunk:
			u := c.Usage
			usage = &u
		case *ErrorChunk:
			t.Fatalf("unexpected error chunk: %v", c.Err)
		}
	}

	assert.Equal(t, "Hello brave world. ", text)
	require.NotNil(t, usage)
	assert.Equal(t, 14, usage.TotalTokens)
}

func TestScriptedProviderBlockUntilCancelled(t *testing.T) {
	p := NewScriptedProvider()
	p.Enqueue(ScriptedResponse{Text: "Partial sentence ", BlockUntilCancelled: true})

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Stream(ctx, "m", nil, Options{})
	require.NoError(t, err)

	first := <-ch
	assert.IsType(t, &TextChunk{}, first)
	<-ch // "sentence "

	cancel()

	var last Chunk
	for chunk := range ch {
		last = chunk
	}
	require.IsType(t, &ErrorChunk{}, last)
}
