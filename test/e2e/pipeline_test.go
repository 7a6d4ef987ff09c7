package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/models"
)

const pipelineWait = 15 * time.Second

func TestHappyPathSingleIteration(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.Script("WriterOutput", cleanArticle(2050))
	app.LLM.Script("SEOOutput", seoResult(85))
	app.LLM.Script("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	detail := app.WaitForStatus(t, jobID, "completed", pipelineWait)

	jobPayload := detail["job"].(map[string]any)
	assert.EqualValues(t, 100, jobPayload["progressPercent"])
	assert.EqualValues(t, 1, jobPayload["currentIteration"])
	assert.Nil(t, jobPayload["lastError"])

	finalOutput, ok := jobPayload["finalOutput"].(map[string]any)
	require.True(t, ok, "completed job must carry finalOutput")
	assert.Equal(t, true, finalOutput["readyForPublish"])
	assert.Empty(t, finalOutput["validationErrors"])

	steps := app.StepsByAgent(t, jobID, "")
	require.Len(t, steps, 5)
	for _, step := range steps {
		assert.Equal(t, jobstep.StatusCompleted, step.Status, "step %s", step.AgentType)
		require.NotNil(t, step.StartedAt, "step %s", step.AgentType)
		require.NotNil(t, step.CompletedAt, "step %s", step.AgentType)
		assert.False(t, step.CompletedAt.Before(*step.StartedAt), "step %s completed before it started", step.AgentType)
	}

	// Three LLM calls at 300 tokens each; research contributes cost only.
	assert.EqualValues(t, 900, jobPayload["totalTokensUsed"])
	assert.Equal(t, 1, app.Research.Calls())
}

func TestFeedbackLoopSecondIterationPasses(t *testing.T) {
	app := NewTestApp(t)

	readabilityIssue := qaScoreIssue{
		Category:    "readability",
		Severity:    "high",
		Description: "Paragraphs are too long and hard to scan",
		Suggestion:  "Break paragraphs up and add subheadings",
	}

	app.LLM.Script("WriterOutput", cleanArticle(2050))
	app.LLM.Script("WriterOutput", cleanArticle(2100)) // revision
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.Script("QAScoring", qaFailing(readabilityIssue))
	app.LLM.Script("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	detail := app.WaitForStatus(t, jobID, "completed", pipelineWait)

	jobPayload := detail["job"].(map[string]any)
	assert.EqualValues(t, 2, jobPayload["currentIteration"])

	// research + 2 x (writer, seo, qa) + project manager
	steps := app.StepsByAgent(t, jobID, "")
	assert.Len(t, steps, 8)
	assert.Len(t, app.StepsByAgent(t, jobID, "writer"), 2)

	// The revision prompt must carry the QA issue back to the writer.
	writerPrompts := app.LLM.Prompts("WriterOutput")
	require.Len(t, writerPrompts, 2)
	assert.Contains(t, writerPrompts[1], readabilityIssue.Description)
	assert.Contains(t, writerPrompts[1], "revision 2")

	evals := detail["evals"].([]any)
	require.Len(t, evals, 2)
	firstEval := evals[0].(map[string]any)
	secondEval := evals[1].(map[string]any)
	assert.Equal(t, false, firstEval["passed"])
	assert.EqualValues(t, 55, firstEval["overallScore"]) // 60 mean - 5 high penalty
	assert.Equal(t, true, secondEval["passed"])
	assert.Len(t, secondEval["fixedIssueIds"], 1)
}

func TestMaxIterationsExhausted(t *testing.T) {
	app := NewTestApp(t)

	issue := qaScoreIssue{
		Category:    "accuracy",
		Severity:    "high",
		Description: "Cost figures are not sourced",
	}

	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.Script("QAScoring", qaFailing(issue))
	app.LLM.Script("QAScoring", qaFailing(issue))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{MaxIterations: 2})
	detail := app.WaitForStatus(t, jobID, "completed", pipelineWait)

	jobPayload := detail["job"].(map[string]any)
	assert.EqualValues(t, 2, jobPayload["currentIteration"])

	// The pipeline gives up on quality but still assembles the article.
	finalOutput := jobPayload["finalOutput"].(map[string]any)
	assert.Equal(t, false, finalOutput["readyForPublish"])
	assert.Contains(t, finalOutput["validationErrors"], "QA check failed")

	steps := app.StepsByAgent(t, jobID, "")
	assert.Len(t, steps, 8)
	assert.Len(t, app.StepsByAgent(t, jobID, "project_manager"), 1)
}

func TestAutoPostPublishesWithTemplate(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.Script("WriterOutput", cleanArticle(400))
	app.LLM.Script("SEOOutput", seoResult(85))
	app.LLM.Script("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{
		AutoPost: true,
		Template: "guide",
	})
	detail := app.WaitForStatus(t, jobID, "completed", pipelineWait)

	finalOutput := detail["job"].(map[string]any)["finalOutput"].(map[string]any)
	article := finalOutput["finalArticle"].(map[string]any)
	assert.Equal(t, "published", article["status"])
	assert.Equal(t, "guide", article["template"])
	assert.Empty(t, finalOutput["validationErrors"])

	// 400 words is under the expansion advice threshold.
	recommendations, _ := finalOutput["recommendations"].([]any)
	found := false
	for _, rec := range recommendations {
		if s, ok := rec.(string); ok && strings.Contains(s, "expanding") {
			found = true
		}
	}
	assert.True(t, found, "expected an expansion recommendation, got %v", recommendations)
}

func TestSkipAgents(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.Script("WriterOutput", cleanArticle(2050))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{
		SkipAgents: []models.AgentType{models.AgentTypeSEO, models.AgentTypeQA},
	})
	app.WaitForStatus(t, jobID, "completed", pipelineWait)

	steps := app.StepsByAgent(t, jobID, "")
	require.Len(t, steps, 5)
	assert.Equal(t, jobstep.StatusSkipped, app.StepsByAgent(t, jobID, "seo")[0].Status)
	assert.Equal(t, jobstep.StatusSkipped, app.StepsByAgent(t, jobID, "qa")[0].Status)
}
