package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
	testdb "github.com/copymill/copymill/test/database"
)

// TestMultiReplicaNoDoubleProcessing runs two pods against one schema and
// verifies the atomic claim: every job is executed exactly once no matter
// which pod picks it up.
func TestMultiReplicaNoDoubleProcessing(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	podA := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-a"),
	)
	podB := NewTestApp(t,
		WithDBClient(shared.NewClient(t)),
		WithPodID("pod-b"),
		WithoutServer(),
	)

	for _, app := range []*TestApp{podA, podB} {
		app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
		app.LLM.SetDefault("SEOOutput", seoResult(85))
		app.LLM.SetDefault("QAScoring", qaPassing(85))
	}

	const jobCount = 6
	jobIDs := make([]string, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		keyword := fmt.Sprintf("concrete driveway cost %d", i)
		jobIDs = append(jobIDs, podA.CreateJob(t, keyword, models.JobSettings{}))
	}

	for _, jobID := range jobIDs {
		detail := podA.WaitForStatus(t, jobID, "completed", pipelineWait)

		jobPayload := detail["job"].(map[string]any)
		assert.Nil(t, jobPayload["lastError"], "job %s", jobID)

		// Double processing would duplicate steps.
		steps := podA.StepsByAgent(t, jobID, "")
		require.Len(t, steps, 5, "job %s", jobID)
	}

	// Each job researched exactly once across both pods.
	assert.Equal(t, jobCount, podA.Research.Calls()+podB.Research.Calls())
}
