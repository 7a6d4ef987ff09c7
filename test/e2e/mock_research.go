package e2e

import (
	"context"
	"sync"

	"github.com/copymill/copymill/pkg/research"
)

// ScriptedResearch implements research.Source with a fixed result. The
// AfterResearch hook runs after each call; cancellation tests use it to flip
// the cancel flag between the research and writer agents.
type ScriptedResearch struct {
	mu     sync.Mutex
	result *research.Result
	err    error
	calls  int

	AfterResearch func()
}

// NewScriptedResearch creates a source returning sensible defaults for the
// given keyword.
func NewScriptedResearch(keyword string) *ScriptedResearch {
	return &ScriptedResearch{
		result: &research.Result{
			Keyword: keyword,
			KeywordData: research.KeywordMetrics{
				SearchVolume: 12000,
				Difficulty:   45,
				CPC:          2.10,
				Intent:       "informational",
			},
			SERPResults: []research.SERPResult{
				{Position: 1, URL: "https://example.com/a", Title: "Competitor A"},
				{Position: 2, URL: "https://example.com/b", Title: "Competitor B"},
			},
			PAAQuestions:    []string{"How much does it cost?"},
			RelatedKeywords: []string{keyword + " per square foot"},
			TotalCost:       0.003,
		},
	}
}

// SetError makes subsequent calls fail.
func (s *ScriptedResearch) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls returns how many times PerformResearch ran.
func (s *ScriptedResearch) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// PerformResearch implements research.Source.
func (s *ScriptedResearch) PerformResearch(ctx context.Context, keyword string, opts research.Options) (*research.Result, error) {
	s.mu.Lock()
	s.calls++
	result, err := s.result, s.err
	hook := s.AfterResearch
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if hook != nil {
		hook()
	}
	out := *result
	out.Keyword = keyword
	return &out, nil
}
