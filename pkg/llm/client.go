package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
	"golang.org/x/time/rate"

	"github.com/debatelab/agora/pkg/config"
)

// Client is the production Provider over an OpenAI-compatible endpoint.
// Shared across sessions; the token bucket enforces the provider-wide rate
// limit.
type Client struct {
	api     oai.Client
	cfg     *config.LLMConfig
	limiter *rate.Limiter
}

// NewClient builds the gateway from configuration. The API key is read from
// the configured environment variable.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("LLM API key not set: environment variable %s is empty", cfg.APIKeyEnv)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// The gateway owns the retry policy; disable SDK-internal retries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(rps)
	}

	slog.Info("LLM gateway configured",
		"default_model", cfg.DefaultModel,
		"trigger_model", cfg.TriggerModel,
		"requests_per_second", rps)

	return &Client{
		api:     oai.NewClient(reqOpts...),
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// DefaultModel returns the configured fallback model.
func (c *Client) DefaultModel() string { return c.cfg.DefaultModel }

// TriggerModel returns the cheap model for trigger scoring and evaluation.
func (c *Client) TriggerModel() string { return c.cfg.TriggerModel }

// Complete implements Provider. Transient failures are retried with the
// shared backoff policy; an empty response surfaces as KindEmptyResponse
// so the caller's own retry-then-skip rule applies.
func (c *Client) Complete(ctx context.Context, model string, messages []Message, opts Options) (*Completion, error) {
	var result *Completion
	err := Retry(ctx, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		callCtx, cancel := c.callContext(ctx, opts)
		defer cancel()

		resp, err := c.api.Chat.Completions.New(callCtx, c.buildParams(model, messages, opts))
		if err != nil {
			return classify(err)
		}
		if len(resp.Choices) == 0 {
			return &RequestError{Kind: KindEmptyResponse, Err: ErrEmptyResponse}
		}

		result = &Completion{
			Text: resp.Choices[0].Message.Content,
			Usage: Usage{
				InputTokens:  int(resp.Usage.PromptTokens),
				OutputTokens: int(resp.Usage.CompletionTokens),
				TotalTokens:  int(resp.Usage.TotalTokens),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, &RequestError{Kind: KindEmptyResponse, Err: ErrEmptyResponse}
	}
	return result, nil
}

// Stream implements Provider. The stream itself is not retried; callers
// decide what a failed or empty stream means for their turn.
func (c *Client) Stream(ctx context.Context, model string, messages []Message, opts Options) (<-chan Chunk, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classify(err)
	}

	params := c.buildParams(model, messages, opts)
	params.StreamOptions = oai.ChatCompletionStreamOptionsParam{
		IncludeUsage: param.NewOpt(true),
	}

	callCtx, cancel := c.callContext(ctx, opts)
	stream := c.api.Chat.Completions.NewStreaming(callCtx, params)
	if err := stream.Err(); err != nil {
		cancel()
		return nil, classify(err)
	}

	ch := make(chan Chunk, 64)
	go func() {
		defer close(ch)
		defer cancel()
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()

			if chunk.Usage.TotalTokens > 0 {
				emit(callCtx, ch, &UsageChunk{Usage: Usage{
					InputTokens:  int(chunk.Usage.PromptTokens),
					OutputTokens: int(chunk.Usage.CompletionTokens),
					TotalTokens:  int(chunk.Usage.TotalTokens),
				}})
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			if content := chunk.Choices[0].Delta.Content; content != "" {
				if !emit(callCtx, ch, &TextChunk{Content: content}) {
					return
				}
			}
		}

		if err := stream.Err(); err != nil {
			emit(callCtx, ch, &ErrorChunk{Err: classify(err)})
		}
	}()

	return ch, nil
}

func emit(ctx context.Context, ch chan<- Chunk, chunk Chunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Client) callContext(ctx context.Context, opts Options) (context.Context, context.CancelFunc) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.cfg.RequestTimeout
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Client) buildParams(model string, messages []Message, opts Options) oai.ChatCompletionNewParams {
	if model == "" {
		model = c.cfg.DefaultModel
	}

	oaiMessages := make([]oai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			oaiMessages = append(oaiMessages, oai.SystemMessage(m.Content))
		case RoleAssistant:
			oaiMessages = append(oaiMessages, oai.AssistantMessage(m.Content))
		default:
			oaiMessages = append(oaiMessages, oai.UserMessage(m.Content))
		}
	}

	params := oai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: oaiMessages,
	}
	if opts.Temperature != 0 {
		params.Temperature = param.NewOpt(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(opts.MaxTokens))
	}
	if opts.JSONOutput {
		params.ResponseFormat = oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}
