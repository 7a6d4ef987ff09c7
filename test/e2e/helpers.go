package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP helpers
// ────────────────────────────────────────────────────────────

// CreateJob posts a job and returns its ID.
func (app *TestApp) CreateJob(t *testing.T, keyword string, settings models.JobSettings) string {
	t.Helper()
	body := map[string]any{
		"keyword":  keyword,
		"settings": settings,
	}
	resp := app.postJSON(t, "/jobs", body, http.StatusOK)
	jobID, _ := resp["jobId"].(string)
	require.NotEmpty(t, jobID, "create response missing jobId: %v", resp)
	return jobID
}

// GetJob fetches the job detail payload: {"job", "steps", "evals"}.
func (app *TestApp) GetJob(t *testing.T, jobID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/jobs/"+jobID, http.StatusOK)
}

// WaitForStatus polls until the job reaches the wanted status, returning the
// job payload. Fails the test after the timeout.
func (app *TestApp) WaitForStatus(t *testing.T, jobID, status string, timeout time.Duration) map[string]any {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last map[string]any
	for time.Now().Before(deadline) {
		detail := app.GetJob(t, jobID)
		last, _ = detail["job"].(map[string]any)
		if last != nil && last["status"] == status {
			return detail
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %q (last: %v)", jobID, status, last)
	return nil
}

// StepsByAgent fetches the job's step rows from the database, filtered by
// agent type. Empty agentType returns all steps.
func (app *TestApp) StepsByAgent(t *testing.T, jobID, agentType string) []*ent.JobStep {
	t.Helper()
	steps, err := app.Steps.ListSteps(context.Background(), jobID)
	require.NoError(t, err)
	if agentType == "" {
		return steps
	}
	var out []*ent.JobStep
	for _, s := range steps {
		if string(s.AgentType) == agentType {
			out = append(out, s)
		}
	}
	return out
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, wantStatus int) map[string]any {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(app.BaseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "POST %s: %s", path, payload)

	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

func (app *TestApp) getJSON(t *testing.T, path string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(app.BaseURL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "GET %s: %s", path, payload)

	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

// ────────────────────────────────────────────────────────────
// SSE helpers
// ────────────────────────────────────────────────────────────

// sseFrame is one parsed server-sent event.
type sseFrame struct {
	event string
	data  string
}

// streamJobEvents reads the per-job SSE stream until the server closes it,
// returning the received frames.
func (app *TestApp) streamJobEvents(t *testing.T, jobID string, timeout time.Duration) []sseFrame {
	t.Helper()
	return app.streamSSE(t, fmt.Sprintf("%s/jobs/%s/stream", app.BaseURL, jobID), timeout)
}

// streamSSE reads frames from url until the server closes the stream or the
// timeout cancels it.
func (app *TestApp) streamSSE(t *testing.T, url string, timeout time.Duration) []sseFrame {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var frames []sseFrame
	var current sseFrame
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			current.data = strings.TrimPrefix(line, "data: ")
		case line == "":
			if current.event != "" || current.data != "" {
				frames = append(frames, current)
				current = sseFrame{}
			}
		}
	}
	return frames
}

// ────────────────────────────────────────────────────────────
// Scripted output builders
// ────────────────────────────────────────────────────────────

// cleanArticle returns a writer output free of prohibited patterns.
func cleanArticle(wordCount int) models.WriterOutput {
	return models.WriterOutput{
		Title:     "Concrete Driveway Cost Guide",
		Slug:      "concrete-driveway-cost-guide",
		Content:   "Installing a concrete driveway costs between 4 and 15 dollars per square foot depending on finish and site preparation.",
		Excerpt:   "What a concrete driveway really costs.",
		WordCount: wordCount,
		Headings:  []models.Heading{{Level: 2, Text: "Cost factors"}},
	}
}

// seoResult returns an SEO output with the given optimization score.
func seoResult(score int) models.SEOOutput {
	return models.SEOOutput{
		MetaTitle:       "Concrete Driveway Cost: Full Breakdown",
		MetaDescription: "Per-square-foot pricing, cost factors, and budgeting tips for a new concrete driveway.",
		HeadingAnalysis: models.HeadingAnalysis{IsValid: true},
		KeywordDensity:  models.KeywordDensity{Percentage: 1.2, Analysis: "within range"},
		InternalLinks: []models.InternalLink{
			{AnchorText: "paver driveways", SuggestedPath: "/paver-driveway-cost", Reason: "related material"},
		},
		OptimizationScore: score,
	}
}

// qaScore is the JSON shape the QA agent requests from the LLM.
type qaScore struct {
	DimensionScores models.DimensionScores `json:"dimensionScores"`
	Issues          []qaScoreIssue         `json:"issues"`
	Feedback        string                 `json:"feedback"`
}

type qaScoreIssue struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// qaPassing returns a scoring result that clears the quality gate.
func qaPassing(score int) qaScore {
	return qaScore{
		DimensionScores: models.DimensionScores{
			Readability: score, SEO: score, Accuracy: score, Engagement: score, BrandVoice: score,
		},
		Feedback: "Solid draft, publish-ready.",
	}
}

// qaFailing returns a scoring result with the given issues. Dimension scores
// are low enough to fail the threshold even before penalties.
func qaFailing(issues ...qaScoreIssue) qaScore {
	return qaScore{
		DimensionScores: models.DimensionScores{
			Readability: 60, SEO: 60, Accuracy: 60, Engagement: 60, BrandVoice: 60,
		},
		Issues:   issues,
		Feedback: "The draft needs revision before it can pass.",
	}
}
