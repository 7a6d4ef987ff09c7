// Package llm provides a uniform completion capability across multiple
// upstream vendors. The Client routes requests to per-vendor HTTP transports,
// wraps every call in the shared retry policy, and layers JSON generation
// (repair + schema validation) on top of the text path.
package llm

import (
	"context"
	"encoding/json"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat completion request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes a single text completion.
type CompletionRequest struct {
	// Provider is the config key of the vendor ("openai", "anthropic", ...).
	// Empty selects "openai".
	Provider string

	// Model is the vendor model name, required.
	Model string

	Messages      []Message
	SystemPrompt  string
	Temperature   *float64
	MaxTokens     int
	StopSequences []string
}

// Usage is token accounting for one or more completion calls.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Add returns the element-wise sum of two usages.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// Stop reasons normalized across vendors.
const (
	StopReasonStop      = "stop"
	StopReasonMaxTokens = "max_tokens"
)

// CompletionResult is the outcome of a completion call.
type CompletionResult struct {
	Content    string
	Model      string
	StopReason string
	Usage      Usage
	CostUSD    float64
}

// Truncated reports whether the completion hit the max token limit.
func (r *CompletionResult) Truncated() bool {
	return r.StopReason == StopReasonMaxTokens
}

// StreamChunk is one content delta from a streaming completion.
type StreamChunk struct {
	Delta string
}

// OnChunk receives streaming deltas. May be nil when the caller only wants
// the final result.
type OnChunk func(StreamChunk)

// Schema validates a candidate JSON value for GenerateJSON.
type Schema interface {
	// Name identifies the schema in logs and error messages.
	Name() string
	// Validate returns nil when raw conforms to the schema.
	Validate(raw json.RawMessage) error
}

// JSONRequest describes a structured JSON completion.
type JSONRequest struct {
	Provider     string
	Model        string
	Prompt       string
	SystemPrompt string
	Schema       Schema

	// Temperature defaults to 0.3 when nil.
	Temperature *float64
	MaxTokens   int

	// MaxRetries is the number of fresh calls after a repair or validation
	// failure. Defaults to 2 when zero.
	MaxRetries int
}

// JSONResult is the outcome of GenerateJSON. Usage and cost accumulate over
// every attempt, and are populated even when the call ultimately fails.
type JSONResult struct {
	// Value is the repaired, schema-valid JSON. Nil on failure.
	Value json.RawMessage

	Model   string
	Usage   Usage
	CostUSD float64
}

// Provider is the completion capability handed to agents. *Client is the
// production implementation; tests substitute scripted fakes.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	Stream(ctx context.Context, req CompletionRequest, onChunk OnChunk) (*CompletionResult, error)
	GenerateJSON(ctx context.Context, req JSONRequest) (*JSONResult, error)
	EstimateTokens(text string) int
	CalculateCost(model string, usage Usage) float64
}

// vendor is the raw HTTP transport for one upstream. Implementations return
// results without cost; the Client prices them.
type vendor interface {
	complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	stream(ctx context.Context, req CompletionRequest, onChunk OnChunk) (*CompletionResult, error)
}
