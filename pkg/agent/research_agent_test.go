package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
)

func researchData() *research.Result {
	return &research.Result{
		Keyword: "concrete driveway cost",
		KeywordData: research.KeywordMetrics{
			SearchVolume: 8100,
			Difficulty:   38,
			Intent:       "commercial",
			CPC:          2.45,
		},
		SERPResults: []research.SERPResult{
			{Position: 1, URL: "https://a.example/cost", Title: "Concrete Driveway Cost Guide", Description: "Average cost per square foot for concrete driveways."},
			{Position: 2, URL: "https://b.example/prices", Title: "Driveway Prices Compared", Description: "Concrete versus asphalt driveway prices."},
		},
		PAAQuestions: []string{
			"How much does a concrete driveway cost per square foot?",
			"How thick should a concrete driveway be?",
		},
		RelatedKeywords: []string{"driveway paving cost", "stamped concrete driveway"},
		TotalCost:       0.04,
	}
}

func TestResearchValidateInput(t *testing.T) {
	a := NewResearchAgent(&fakeResearchSource{})

	assert.Error(t, a.ValidateInput(Input{}))
	assert.Error(t, a.ValidateInput(Input{Keyword: "k", TargetWordCount: -1}))
	assert.NoError(t, a.ValidateInput(Input{Keyword: "k"}))
}

func TestResearchAgentExecute(t *testing.T) {
	source := &fakeResearchSource{result: researchData()}
	a := NewResearchAgent(source)

	result := a.Execute(context.Background(), Input{Keyword: "concrete driveway cost"}, testRunContext(newFakeLLM()))
	require.True(t, result.Success)
	require.NoError(t, result.Err)
	assert.True(t, result.ContinueToNext)
	assert.Zero(t, result.Usage.TotalTokens, "research agent never calls the LLM")
	assert.Equal(t, 0.04, result.CostUSD)

	output := result.Output.(*models.ResearchOutput)
	assert.Equal(t, "concrete driveway cost", output.Keyword)
	assert.Equal(t, 8100, output.KeywordData.SearchVolume)
	assert.Equal(t, 38, output.KeywordData.Difficulty)
	assert.Equal(t, "commercial", output.KeywordData.Intent)
	require.Len(t, output.Competitors, 2)
	assert.Equal(t, "https://a.example/cost", output.Competitors[0].URL)
	assert.Equal(t, []string{"driveway paving cost", "stamped concrete driveway"}, output.RelatedKeywords)
	assert.Equal(t, 1500, output.RecommendedWordCount) // difficulty 38, few PAA
}

func TestResearchAgentCapsCompetitors(t *testing.T) {
	data := researchData()
	data.SERPResults = nil
	for i := 0; i < 15; i++ {
		data.SERPResults = append(data.SERPResults, research.SERPResult{
			Position: i + 1,
			URL:      fmt.Sprintf("https://example.com/%d", i),
			Title:    fmt.Sprintf("Result %d", i),
		})
	}

	a := NewResearchAgent(&fakeResearchSource{result: data})
	result := a.Execute(context.Background(), Input{Keyword: "k"}, testRunContext(newFakeLLM()))
	output := result.Output.(*models.ResearchOutput)

	assert.Len(t, output.Competitors, 10)
}

func TestResearchAgentSourceFailure(t *testing.T) {
	a := NewResearchAgent(&fakeResearchSource{err: errors.New("credentials rejected")})

	result := a.Execute(context.Background(), Input{Keyword: "k"}, testRunContext(newFakeLLM()))
	require.Error(t, result.Err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err.Error(), "keyword research failed")
}

func TestRecommendWordCount(t *testing.T) {
	base := func(difficulty, paa int) *research.Result {
		r := &research.Result{}
		r.KeywordData.Difficulty = difficulty
		for i := 0; i < paa; i++ {
			r.PAAQuestions = append(r.PAAQuestions, fmt.Sprintf("q%d", i))
		}
		return r
	}

	tests := []struct {
		name       string
		target     int
		difficulty int
		paa        int
		want       int
	}{
		{"explicit target wins", 1200, 90, 10, 1200},
		{"easy keyword", 0, 20, 0, 1500},
		{"medium difficulty", 0, 40, 0, 2000},
		{"hard keyword", 0, 70, 0, 3000},
		{"many questions add depth", 0, 70, 6, 3500},
		{"five questions do not", 0, 70, 5, 3000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recommendWordCount(tt.target, base(tt.difficulty, tt.paa)))
		})
	}
}

func TestContentGaps(t *testing.T) {
	data := researchData()
	// Competitor copy covers cost and thickness but says nothing about permits.
	data.PAAQuestions = append(data.PAAQuestions, "Do you need a permit to pour a new residential slab?")

	gaps := contentGaps(data)
	require.Len(t, gaps, 1)
	assert.Contains(t, gaps[0], "permit")
}

func TestQuestionCovered(t *testing.T) {
	haystack := "concrete driveway cost guide average cost per square foot"

	assert.True(t, questionCovered("How much does a concrete driveway cost?", haystack))
	assert.False(t, questionCovered("Do you need planning permission for gravel paths?", haystack))
	assert.True(t, questionCovered("What is it?", haystack), "no significant words counts as covered")
}
