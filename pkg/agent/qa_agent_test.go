package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/models"
)

func passingScores() models.DimensionScores {
	return models.DimensionScores{Readability: 85, SEO: 80, Accuracy: 90, Engagement: 80, BrandVoice: 85}
}

func qaInput() Input {
	return Input{
		Keyword:   "concrete driveway cost",
		Article:   testArticle(),
		Iteration: 1,
	}
}

func TestQAAgentValidateInput(t *testing.T) {
	qa := NewQAAgent(nil)

	assert.Error(t, qa.ValidateInput(Input{Article: testArticle(), Iteration: 1}))
	assert.Error(t, qa.ValidateInput(Input{Keyword: "k", Iteration: 1}))
	assert.Error(t, qa.ValidateInput(Input{Keyword: "k", Article: testArticle(), Iteration: 0}))
	assert.NoError(t, qa.ValidateInput(qaInput()))
}

func TestQAAgentPasses(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{
		DimensionScores: passingScores(),
		Feedback:        "Solid, factual draft.",
	})

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	require.True(t, result.Success)
	require.NoError(t, result.Err)

	output := result.Output.(*models.QAOutput)
	assert.True(t, output.Passed)
	assert.Equal(t, 84, output.OverallScore) // (85+80+90+80+85)/5
	assert.Empty(t, output.Issues)
	assert.True(t, result.ContinueToNext)
	assert.Equal(t, "Solid, factual draft.", result.Feedback)
}

func TestQAAgentFailsBelowThreshold(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{
		DimensionScores: models.DimensionScores{Readability: 60, SEO: 65, Accuracy: 70, Engagement: 55, BrandVoice: 60},
		Feedback:        "Needs clearer structure.",
	})

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	require.True(t, result.Success)

	output := result.Output.(*models.QAOutput)
	assert.False(t, output.Passed)
	assert.Equal(t, 62, output.OverallScore)
	assert.False(t, result.ContinueToNext)
}

func TestQAAgentCriticalIssueFailsRegardlessOfScore(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{
		DimensionScores: models.DimensionScores{Readability: 100, SEO: 100, Accuracy: 100, Engagement: 100, BrandVoice: 100},
	})

	in := qaInput()
	article := *in.Article
	article.Content = article.Content + " 🚀"
	in.Article = &article

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), in, testRunContext(provider))
	require.True(t, result.Success)

	output := result.Output.(*models.QAOutput)
	assert.False(t, output.Passed, "critical issue must fail QA even at score %d", output.OverallScore)
	assert.Equal(t, 85, output.OverallScore) // 100 - 15 critical penalty
	require.Len(t, output.Issues, 1)
	assert.Equal(t, models.SeverityCritical, output.Issues[0].Severity)
	assert.False(t, result.ContinueToNext)
}

func TestQAAgentPenalties(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{
		DimensionScores: passingScores(), // mean 84
		Issues: []qaScoringIssue{
			{Category: "accuracy", Severity: "high", Description: "Price range is outdated"},
			{Category: "readability", Severity: "high", Description: "Intro paragraph runs too long"},
			{Category: "style", Severity: "medium", Description: "Passive voice throughout"},
			{Category: "style", Severity: "low", Description: "Inconsistent units"},
		},
	})

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	output := result.Output.(*models.QAOutput)

	// Two high issues at -5 each; medium and low carry no penalty.
	assert.Equal(t, 74, output.OverallScore)
	assert.True(t, output.Passed)
	assert.Len(t, output.Issues, 4)
}

func TestQAAgentScoreFlooredAtZero(t *testing.T) {
	provider := newFakeLLM()
	issues := make([]qaScoringIssue, 0, 8)
	for _, desc := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		issues = append(issues, qaScoringIssue{Category: "factual", Severity: "critical", Description: "wrong claim " + desc})
	}
	provider.script("QAScoring", qaScoring{
		DimensionScores: models.DimensionScores{Readability: 50, SEO: 50, Accuracy: 50, Engagement: 50, BrandVoice: 50},
		Issues:          issues,
	})

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	output := result.Output.(*models.QAOutput)

	assert.Equal(t, 0, output.OverallScore) // 50 - 8*15 floors at 0
	assert.False(t, output.Passed)
}

func TestQAAgentMergeDeduplicatesByFingerprint(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{
		DimensionScores: passingScores(),
		Issues: []qaScoringIssue{
			{Category: "style", Severity: "medium", Description: "Passive  Voice Throughout"},
			{Category: "style", Severity: "medium", Description: "passive voice throughout"},
		},
	})

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	output := result.Output.(*models.QAOutput)

	// Normalized description collapses case and whitespace to one fingerprint.
	require.Len(t, output.Issues, 1)
}

func TestTrackIssues(t *testing.T) {
	fixed1 := models.NewIssue("style", models.SeverityMedium, "passive voice throughout", "")
	survivor := models.NewIssue("accuracy", models.SeverityHigh, "price range is outdated", "")
	fresh := models.NewIssue("readability", models.SeverityLow, "intro runs long", "")

	current := []models.Issue{survivor, fresh}
	fixedIDs, persistingIDs := trackIssues([]models.Issue{fixed1, survivor}, current)

	assert.Equal(t, []string{fixed1.IssueID}, fixedIDs)
	assert.Equal(t, []string{survivor.IssueID}, persistingIDs)
	assert.Equal(t, 2, current[0].PersistCount)
	assert.Equal(t, 1, current[1].PersistCount)
}

func TestTrackIssuesEscalatesPersistCount(t *testing.T) {
	prev := models.NewIssue("accuracy", models.SeverityHigh, "price range is outdated", "")
	prev.PersistCount = 2

	current := []models.Issue{models.NewIssue("accuracy", models.SeverityHigh, "price range is outdated", "")}
	_, persisting := trackIssues([]models.Issue{prev}, current)

	require.Len(t, persisting, 1)
	assert.Equal(t, 3, current[0].PersistCount)
}

func TestTrackIssuesNoPrevious(t *testing.T) {
	fixed, persisting := trackIssues(nil, []models.Issue{models.NewIssue("style", models.SeverityLow, "x", "")})
	assert.Nil(t, fixed)
	assert.Nil(t, persisting)
}

func TestQAAgentRecordsEval(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{DimensionScores: passingScores(), Feedback: "fine"})

	rc := testRunContext(provider)
	evals := &fakeEvals{}
	rc.Evals = evals

	in := qaInput()
	in.Iteration = 2
	in.PreviousArticle = testArticle()

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), in, rc)
	require.True(t, result.Success)

	require.Len(t, evals.inserted, 1)
	eval := evals.inserted[0]
	assert.Equal(t, rc.Job.ID, eval.JobID)
	assert.Equal(t, rc.StepID, eval.StepID)
	assert.Equal(t, 2, eval.Iteration)
	assert.Equal(t, 84, eval.OverallScore)
	assert.True(t, eval.Passed)
}

func TestQAAgentCustomThreshold(t *testing.T) {
	provider := newFakeLLM()
	provider.script("QAScoring", qaScoring{DimensionScores: passingScores()}) // mean 84

	qa := NewQAAgent(&config.QAConfig{PassThreshold: 90, CriticalPenalty: 15, HighPenalty: 5})
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))
	output := result.Output.(*models.QAOutput)

	assert.False(t, output.Passed)
}

func TestQAAgentLLMFailure(t *testing.T) {
	provider := newFakeLLM()
	provider.err = errors.New("rate limited")

	qa := NewQAAgent(nil)
	result := qa.Execute(context.Background(), qaInput(), testRunContext(provider))

	require.Error(t, result.Err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err.Error(), "quality scoring failed")
	// Partial usage from the failed attempt is still accounted.
	assert.Equal(t, provider.usage, result.Usage)
}
