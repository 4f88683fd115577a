package llm

import (
	"context"
	"strings"
	"sync"
)

// ScriptedCall records one request made against the scripted provider.
type ScriptedCall struct {
	Model    string
	Messages []Message
	Opts     Options
}

// ScriptedResponse is one scripted reply.
type ScriptedResponse struct {
	Text  string
	Usage Usage
	Err   error
	// BlockUntilCancelled makes the call (after emitting Text token by
	// token, for streams) wait for context cancellation. Used to test
	// pause/stop mid-stream.
	BlockUntilCancelled bool
}

// ScriptedProvider is the Provider test double. Responses are served from
// per-model queues first, then the sequential queue, then the default.
// Safe for concurrent use.
type ScriptedProvider struct {
	mu       sync.Mutex
	queue    []ScriptedResponse
	byModel  map[string][]ScriptedResponse
	fallback *ScriptedResponse
	calls    []ScriptedCall
}

// NewScriptedProvider creates an empty scripted provider.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{byModel: make(map[string][]ScriptedResponse)}
}

// Enqueue appends responses to the sequential queue.
func (p *ScriptedProvider) Enqueue(responses ...ScriptedResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, responses...)
}

// EnqueueFor appends responses served only to calls for the given model.
func (p *ScriptedProvider) EnqueueFor(model string, responses ...ScriptedResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byModel[model] = append(p.byModel[model], responses...)
}

// SetDefault sets the response served when all queues are empty.
func (p *ScriptedProvider) SetDefault(response ScriptedResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fallback = &response
}

// Calls returns a copy of all recorded calls.
func (p *ScriptedProvider) Calls() []ScriptedCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ScriptedCall, len(p.calls))
	copy(out, p.calls)
	return out
}

// CallCount returns the number of calls made.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *ScriptedProvider) next(model string, messages []Message, opts Options) ScriptedResponse {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, ScriptedCall{Model: model, Messages: messages, Opts: opts})

	if q := p.byModel[model]; len(q) > 0 {
		r := q[0]
		p.byModel[model] = q[1:]
		return r
	}
	if len(p.queue) > 0 {
		r := p.queue[0]
		p.queue = p.queue[1:]
		return r
	}
	if p.fallback != nil {
		return *p.fallback
	}
	return ScriptedResponse{}
}

// Complete implements Provider.
func (p *ScriptedProvider) Complete(ctx context.Context, model string, messages []Message, opts Options) (*Completion, error) {
	r := p.next(model, messages, opts)
	if r.BlockUntilCancelled {
		<-ctx.Done()
		return nil, classify(ctx.Err())
	}
	if r.Err != nil {
		return nil, r.Err
	}
	if strings.TrimSpace(r.Text) == "" {
		return nil, &RequestError{Kind: KindEmptyResponse, Err: ErrEmptyResponse}
	}
	return &Completion{Text: r.Text, Usage: r.Usage}, nil
}

// Stream implements Provider, emitting the scripted text word by word so
// sentence boundaries arrive incrementally.
func (p *ScriptedProvider) Stream(ctx context.Context, model string, messages []Message, opts Options) (<-chan Chunk, error) {
	r := p.next(model, messages, opts)
	if r.Err != nil {
		return nil, r.Err
	}

	ch := make(chan Chunk, 64)
	go func() {
		defer close(ch)

		for _, token := range strings.SplitAfter(r.Text, " ") {
			if token == "" {
				continue
			}
			select {
			case ch <- &TextChunk{Content: token}:
			case <-ctx.Done():
				ch <- &ErrorChunk{Err: classify(ctx.Err())}
				return
			}
		}

		if r.BlockUntilCancelled {
			<-ctx.Done()
			ch <- &ErrorChunk{Err: classify(ctx.Err())}
			return
		}

		if r.Usage.TotalTokens > 0 {
			ch <- &UsageChunk{Usage: r.Usage}
		}
	}()

	return ch, nil
}
