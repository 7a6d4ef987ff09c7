package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
)

const (
	recommendedWordCountFloor   = 300
	recommendedWordCountCeiling = 5000
	maxCompetitors              = 10
)

// ResearchAgent gathers keyword intelligence from the research data source.
// It never calls the LLM; token usage is always zero.
type ResearchAgent struct {
	source research.Source
}

// NewResearchAgent creates the research agent over a data source.
func NewResearchAgent(source research.Source) *ResearchAgent {
	return &ResearchAgent{source: source}
}

func (a *ResearchAgent) AgentType() models.AgentType { return models.AgentTypeResearch }
func (a *ResearchAgent) Name() string                { return "Research Agent" }
func (a *ResearchAgent) Description() string {
	return "Gathers keyword metrics, competitor analysis, and content gaps"
}
func (a *ResearchAgent) OutputSchema() llm.Schema { return staticSchema("ResearchOutput") }

func (a *ResearchAgent) ValidateInput(in Input) error {
	if strings.TrimSpace(in.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if in.TargetWordCount < 0 {
		return fmt.Errorf("targetWordCount must be >= 0")
	}
	return nil
}

func (a *ResearchAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	rc.progress("Researching keyword")

	data, err := a.source.PerformResearch(ctx, in.Keyword, research.Options{})
	if err != nil {
		return failure(fmt.Errorf("keyword research failed: %w", err))
	}

	competitors := make([]models.Competitor, 0, len(data.SERPResults))
	for _, serp := range data.SERPResults {
		if len(competitors) >= maxCompetitors {
			break
		}
		competitors = append(competitors, models.Competitor{
			URL:   serp.URL,
			Title: serp.Title,
		})
	}

	output := &models.ResearchOutput{
		Keyword: data.Keyword,
		KeywordData: models.KeywordData{
			SearchVolume: data.KeywordData.SearchVolume,
			Difficulty:   data.KeywordData.Difficulty,
			Intent:       data.KeywordData.Intent,
			CPC:          data.KeywordData.CPC,
		},
		Competitors:          competitors,
		RelatedKeywords:      data.RelatedKeywords,
		PAAQuestions:         data.PAAQuestions,
		RecommendedWordCount: recommendWordCount(in.TargetWordCount, data),
		ContentGaps:          contentGaps(data),
	}

	rc.logInfo("Research complete", map[string]any{
		"competitors":            len(output.Competitors),
		"paa_questions":          len(output.PAAQuestions),
		"related_keywords":       len(output.RelatedKeywords),
		"recommended_word_count": output.RecommendedWordCount,
		"research_cost_usd":      data.TotalCost,
	})

	return &Result{
		Success:        true,
		Output:         output,
		CostUSD:        data.TotalCost,
		ContinueToNext: true,
	}
}

// recommendWordCount passes an explicit target through; otherwise it derives
// a recommendation from keyword difficulty, clamped to [300, 5000]. Harder
// keywords need longer, more thorough articles to compete.
func recommendWordCount(target int, data *research.Result) int {
	if target > 0 {
		return target
	}

	recommended := 1500
	switch difficulty := data.KeywordData.Difficulty; {
	case difficulty >= 70:
		recommended = 3000
	case difficulty >= 40:
		recommended = 2000
	}
	if len(data.PAAQuestions) > 5 {
		recommended += 500
	}

	if recommended < recommendedWordCountFloor {
		recommended = recommendedWordCountFloor
	}
	if recommended > recommendedWordCountCeiling {
		recommended = recommendedWordCountCeiling
	}
	return recommended
}

// contentGaps returns PAA questions the top competitors do not appear to
// answer, judged by significant-word overlap with their titles/descriptions.
func contentGaps(data *research.Result) []string {
	var corpus strings.Builder
	for _, serp := range data.SERPResults {
		corpus.WriteString(strings.ToLower(serp.Title))
		corpus.WriteByte(' ')
		corpus.WriteString(strings.ToLower(serp.Description))
		corpus.WriteByte(' ')
	}
	haystack := corpus.String()

	var gaps []string
	for _, question := range data.PAAQuestions {
		if !questionCovered(question, haystack) {
			gaps = append(gaps, question)
		}
	}
	return gaps
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true,
	"do": true, "does": true, "how": true, "what": true, "why": true,
	"when": true, "where": true, "which": true, "can": true, "should": true,
	"much": true, "many": true, "you": true, "your": true, "i": true,
	"it": true, "to": true, "of": true, "in": true, "for": true, "and": true,
	"or": true, "be": true,
}

func questionCovered(question, haystack string) bool {
	words := strings.Fields(strings.ToLower(strings.Trim(question, "?")))
	significant := 0
	matched := 0
	for _, w := range words {
		if stopWords[w] || len(w) < 3 {
			continue
		}
		significant++
		if strings.Contains(haystack, w) {
			matched++
		}
	}
	if significant == 0 {
		return true
	}
	// Covered when most significant words already appear in competitor copy.
	return matched*2 >= significant
}
