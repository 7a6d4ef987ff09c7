package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

// TestProhibitedPatternsFailQA verifies the deterministic scan overrides the
// model's judgment: an article with an emoji, an em-dash, and sensational
// wording fails even when the LLM scores it highly.
func TestProhibitedPatternsFailQA(t *testing.T) {
	app := NewTestApp(t)

	tainted := cleanArticle(2050)
	tainted.Content = "This amazing guide 🎉 covers everything — from prep to sealing."

	app.LLM.Script("WriterOutput", tainted)
	app.LLM.Script("SEOOutput", seoResult(90))
	app.LLM.Script("QAScoring", qaPassing(95)) // the model sees no problems

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{MaxIterations: 1})
	detail := app.WaitForStatus(t, jobID, "completed", pipelineWait)

	// One iteration only, so the job completes with the QA failure recorded.
	finalOutput := detail["job"].(map[string]any)["finalOutput"].(map[string]any)
	assert.Contains(t, finalOutput["validationErrors"], "QA check failed")

	evals := detail["evals"].([]any)
	require.Len(t, evals, 1)
	eval := evals[0].(map[string]any)
	assert.Equal(t, false, eval["passed"])

	issues := eval["issues"].([]any)
	require.Len(t, issues, 3)
	severities := make(map[string]string) // severity → description
	for _, raw := range issues {
		issue := raw.(map[string]any)
		severities[issue["severity"].(string)] = issue["description"].(string)
	}
	assert.Contains(t, severities["critical"], "emoji")
	assert.Contains(t, severities["high"], "em-dash")
	assert.Contains(t, severities["medium"], "amazing")
}

// TestAllAgentsSkippedRejected verifies the orchestrator refuses a job whose
// settings skip every agent.
func TestAllAgentsSkippedRejected(t *testing.T) {
	app := NewTestApp(t)

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{
		SkipAgents: models.PipelineOrder,
	})
	detail := app.WaitForStatus(t, jobID, "failed", pipelineWait)

	lastError, _ := detail["job"].(map[string]any)["lastError"].(string)
	assert.Contains(t, lastError, "skip")
}
