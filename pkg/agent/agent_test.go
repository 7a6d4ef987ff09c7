package agent

import (
	"context"
	"encoding/json"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
)

// fakeLLM scripts GenerateJSON responses per schema name and captures the
// prompts it was called with.
type fakeLLM struct {
	responses map[string]any // schema name → value to return
	usage     llm.Usage
	err       error

	prompts       []string
	systemPrompts []string
}

var _ llm.Provider = (*fakeLLM)(nil)

func newFakeLLM() *fakeLLM {
	return &fakeLLM{
		responses: make(map[string]any),
		usage:     llm.Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300},
	}
}

func (f *fakeLLM) script(schemaName string, value any) {
	f.responses[schemaName] = value
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error) {
	return &llm.CompletionResult{Content: "ok", Usage: f.usage, StopReason: llm.StopReasonStop}, nil
}

func (f *fakeLLM) Stream(ctx context.Context, req llm.CompletionRequest, onChunk llm.OnChunk) (*llm.CompletionResult, error) {
	return f.Complete(ctx, req)
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, req llm.JSONRequest) (*llm.JSONResult, error) {
	f.prompts = append(f.prompts, req.Prompt)
	f.systemPrompts = append(f.systemPrompts, req.SystemPrompt)

	result := &llm.JSONResult{Usage: f.usage, CostUSD: 0.01, Model: req.Model}
	if f.err != nil {
		return result, f.err
	}
	value, ok := f.responses[req.Schema.Name()]
	if !ok {
		panic("fakeLLM: no scripted response for schema " + req.Schema.Name())
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return result, err
	}
	if err := req.Schema.Validate(raw); err != nil {
		return result, err
	}
	result.Value = raw
	return result, nil
}

func (f *fakeLLM) EstimateTokens(text string) int                      { return len(text) / 4 }
func (f *fakeLLM) CalculateCost(model string, usage llm.Usage) float64 { return 0 }

// fakeResearchSource returns a canned result.
type fakeResearchSource struct {
	result *research.Result
	err    error
}

func (f *fakeResearchSource) PerformResearch(ctx context.Context, keyword string, opts research.Options) (*research.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeEvals records inserted evals.
type fakeEvals struct {
	inserted []models.CreateEvalRequest
}

func (f *fakeEvals) InsertEval(ctx context.Context, req models.CreateEvalRequest) (*ent.JobEval, error) {
	f.inserted = append(f.inserted, req)
	return &ent.JobEval{ID: "eval-1"}, nil
}

// nopLog satisfies LogSink.
type nopLog struct{}

func (nopLog) Info(string, string, map[string]any)  {}
func (nopLog) Warn(string, string, map[string]any)  {}
func (nopLog) Error(string, string, map[string]any) {}

func testRunContext(provider llm.Provider) *RunContext {
	return &RunContext{
		Job: &ent.Job{ID: "job-1", Keyword: "concrete driveway cost"},
		Persona: &ent.Persona{
			ID:          "persona-1",
			Provider:    "openai",
			Model:       "gpt-4o",
			Temperature: 0.7,
			MaxTokens:   4096,
		},
		Iteration: 1,
		StepID:    "step-1",
		LLM:       provider,
		Evals:     &fakeEvals{},
		Log:       nopLog{},
	}
}

func testResearchOutput() *models.ResearchOutput {
	return &models.ResearchOutput{
		Keyword: "concrete driveway cost",
		KeywordData: models.KeywordData{
			SearchVolume: 8100,
			Difficulty:   38,
			Intent:       "commercial",
		},
		Competitors: []models.Competitor{
			{URL: "https://a.example/post", Title: "Driveway Cost Guide"},
		},
		RelatedKeywords:      []string{"driveway paving cost"},
		PAAQuestions:         []string{"How thick should a concrete driveway be?"},
		RecommendedWordCount: 2000,
	}
}

func testArticle() *models.WriterOutput {
	return &models.WriterOutput{
		Title:     "Concrete Driveway Cost Guide",
		Slug:      "concrete-driveway-cost-guide",
		Content:   "Concrete driveway cost depends on size and finish. " + loremWords(600),
		Excerpt:   "What a concrete driveway really costs.",
		WordCount: 609,
		Headings: []models.Heading{
			{Level: 2, Text: "Cost Factors"},
			{Level: 3, Text: "Finish Options"},
		},
	}
}

func loremWords(n int) string {
	words := make([]byte, 0, n*5)
	for i := 0; i < n; i++ {
		words = append(words, "word "...)
	}
	return string(words)
}
