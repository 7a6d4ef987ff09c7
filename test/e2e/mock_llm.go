package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/copymill/copymill/pkg/llm"
)

// scriptedResponse is one queued GenerateJSON outcome.
type scriptedResponse struct {
	value json.RawMessage
	err   error
}

// ScriptedLLM implements llm.Provider with responses routed by schema name
// (WriterOutput, SEOOutput, QAScoring). Each schema has a FIFO queue consumed
// in call order, with an optional repeating default once the queue is empty.
// Prompts are captured per schema for input assertions.
type ScriptedLLM struct {
	mu       sync.Mutex
	queues   map[string][]scriptedResponse
	defaults map[string]json.RawMessage
	prompts  map[string][]string
}

// NewScriptedLLM creates an empty scripted provider.
func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{
		queues:   make(map[string][]scriptedResponse),
		defaults: make(map[string]json.RawMessage),
		prompts:  make(map[string][]string),
	}
}

// Script queues one response for the given schema. v is marshalled to JSON.
func (s *ScriptedLLM) Script(schema string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("script %s: %v", schema, err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[schema] = append(s.queues[schema], scriptedResponse{value: raw})
}

// ScriptError queues an error outcome for the given schema.
func (s *ScriptedLLM) ScriptError(schema string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[schema] = append(s.queues[schema], scriptedResponse{err: err})
}

// SetDefault sets the response returned once the schema's queue is drained.
// Used by tests that process many jobs with identical outputs.
func (s *ScriptedLLM) SetDefault(schema string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("default %s: %v", schema, err))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[schema] = raw
}

// Prompts returns the prompts captured for a schema, in call order.
func (s *ScriptedLLM) Prompts(schema string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts[schema]...)
}

var scriptedUsage = llm.Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300}

// GenerateJSON implements llm.Provider.
func (s *ScriptedLLM) GenerateJSON(ctx context.Context, req llm.JSONRequest) (*llm.JSONResult, error) {
	if err := ctx.Err(); err != nil {
		return &llm.JSONResult{}, err
	}

	name := req.Schema.Name()

	s.mu.Lock()
	s.prompts[name] = append(s.prompts[name], req.Prompt)

	var resp scriptedResponse
	switch {
	case len(s.queues[name]) > 0:
		resp = s.queues[name][0]
		s.queues[name] = s.queues[name][1:]
	case s.defaults[name] != nil:
		resp = scriptedResponse{value: s.defaults[name]}
	default:
		s.mu.Unlock()
		return &llm.JSONResult{}, fmt.Errorf("no scripted response for schema %s", name)
	}
	s.mu.Unlock()

	if resp.err != nil {
		return &llm.JSONResult{Usage: scriptedUsage, CostUSD: 0.01}, resp.err
	}
	return &llm.JSONResult{
		Value:   resp.value,
		Model:   "scripted",
		Usage:   scriptedUsage,
		CostUSD: 0.01,
	}, nil
}

// Complete implements llm.Provider. Unused by the pipeline agents.
func (s *ScriptedLLM) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	return &llm.CompletionResult{
		Content:    "ok",
		Model:      "scripted",
		StopReason: llm.StopReasonStop,
		Usage:      scriptedUsage,
	}, nil
}

// Stream implements llm.Provider. Unused by the pipeline agents.
func (s *ScriptedLLM) Stream(ctx context.Context, req llm.CompletionRequest, onChunk llm.OnChunk) (*llm.CompletionResult, error) {
	return s.Complete(ctx, req)
}

func (s *ScriptedLLM) EstimateTokens(text string) int { return len(text) / 4 }

func (s *ScriptedLLM) CalculateCost(model string, usage llm.Usage) float64 { return 0 }
