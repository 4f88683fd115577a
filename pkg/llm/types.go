package llm

import (
	"context"
	"time"
)

// Role tags a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a model conversation.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage is a convenience constructor.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage is a convenience constructor.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage is a convenience constructor.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Options bound a single model call.
type Options struct {
	// Temperature in [0,1]; zero means provider default.
	Temperature float64
	// MaxTokens caps the output; zero means provider default.
	MaxTokens int
	// Timeout bounds the call; zero falls back to the configured default.
	Timeout time.Duration
	// JSONOutput requests a structured JSON object response.
	JSONOutput bool
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Completion is the buffered result of a call.
type Completion struct {
	Text  string
	Usage Usage
}

// Provider is the uniform gateway to a named model. Implementations are
// model-agnostic: the model identifier routes the request.
type Provider interface {
	// Complete sends a conversation and returns the buffered response.
	Complete(ctx context.Context, model string, messages []Message, opts Options) (*Completion, error)

	// Stream sends a conversation and returns a channel of chunks. The
	// channel is closed when the stream completes; errors are delivered
	// as ErrorChunk values. Cancel ctx to abort the stream.
	Stream(ctx context.Context, model string, messages []Message, opts Options) (<-chan Chunk, error)
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a fragment of the model's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption; sent once near stream end.
type UsageChunk struct{ Usage Usage }

// ErrorChunk signals a provider error; the channel closes after it.
type ErrorChunk struct{ Err error }

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }
