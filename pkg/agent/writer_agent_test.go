package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

func writerInput() Input {
	return Input{
		Keyword:   "concrete driveway cost",
		Research:  testResearchOutput(),
		Iteration: 1,
	}
}

func scriptedDraft() models.WriterOutput {
	return models.WriterOutput{
		Title:     "Concrete Driveway Cost Guide",
		Slug:      "concrete-driveway-cost-guide",
		Content:   "Concrete driveway cost depends on size, finish, and site prep. " + loremWords(500),
		Excerpt:   "What a concrete driveway really costs.",
		WordCount: 510,
		Headings:  []models.Heading{{Level: 2, Text: "Cost Factors"}},
	}
}

func TestWriterValidateInput(t *testing.T) {
	w := NewWriterAgent()

	assert.Error(t, w.ValidateInput(Input{Research: testResearchOutput(), Iteration: 1}))
	assert.Error(t, w.ValidateInput(Input{Keyword: "k", Iteration: 1}))
	assert.NoError(t, w.ValidateInput(writerInput()))

	revision := writerInput()
	revision.Iteration = 2
	assert.Error(t, w.ValidateInput(revision), "revision without previous article")
	revision.PreviousArticle = testArticle()
	assert.NoError(t, w.ValidateInput(revision))
}

func TestWriterDraftsArticle(t *testing.T) {
	provider := newFakeLLM()
	provider.script("WriterOutput", scriptedDraft())

	w := NewWriterAgent()
	result := w.Execute(context.Background(), writerInput(), testRunContext(provider))
	require.True(t, result.Success)
	require.NoError(t, result.Err)
	assert.True(t, result.ContinueToNext)

	output := result.Output.(*models.WriterOutput)
	assert.Equal(t, "Concrete Driveway Cost Guide", output.Title)
	assert.Equal(t, provider.usage, result.Usage)

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Contains(t, prompt, `"concrete driveway cost"`)
	assert.Contains(t, prompt, "approximately 2000 words")
	assert.Contains(t, prompt, "Search intent: commercial")
	assert.Contains(t, prompt, "How thick should a concrete driveway be?")
	assert.Contains(t, prompt, "driveway paving cost")
	assert.NotContains(t, prompt, "revision")
}

func TestWriterExplicitTargetWordCountWins(t *testing.T) {
	provider := newFakeLLM()
	provider.script("WriterOutput", scriptedDraft())

	in := writerInput()
	in.TargetWordCount = 750

	NewWriterAgent().Execute(context.Background(), in, testRunContext(provider))
	assert.Contains(t, provider.prompts[0], "approximately 750 words")
}

func TestWriterFillsMissingWordCountAndSlug(t *testing.T) {
	draft := scriptedDraft()
	draft.WordCount = 0
	draft.Slug = ""
	provider := newFakeLLM()
	provider.script("WriterOutput", draft)

	result := NewWriterAgent().Execute(context.Background(), writerInput(), testRunContext(provider))
	output := result.Output.(*models.WriterOutput)

	assert.Equal(t, 510, output.WordCount) // 10 intro words + 500 filler
	assert.Equal(t, "concrete-driveway-cost-guide", output.Slug)
}

func TestWriterRevisionDirective(t *testing.T) {
	provider := newFakeLLM()
	provider.script("WriterOutput", scriptedDraft())

	persisting := models.NewIssue("style", models.SeverityHigh, "Passive voice throughout", "Use active voice")
	persisting.PersistCount = 2
	fresh := models.NewIssue("accuracy", models.SeverityCritical, "Price range is outdated", "")

	in := writerInput()
	in.Iteration = 3
	in.PreviousArticle = testArticle()
	in.QAFeedback = "Two issues remain from the last round."
	in.IssuesToFix = []models.Issue{persisting, fresh}

	NewWriterAgent().Execute(context.Background(), in, testRunContext(provider))

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Contains(t, prompt, "This is revision 3")
	assert.Contains(t, prompt, "Two issues remain from the last round.")
	assert.Contains(t, prompt, "Price range is outdated")
	assert.Contains(t, prompt, "[MUST FIX - flagged 2 times already]")
	assert.Contains(t, prompt, "Suggestion: Use active voice")
	assert.Contains(t, prompt, in.PreviousArticle.Title)
	assert.Contains(t, prompt, "Preserve all content that was not flagged")

	// Critical group is listed before high.
	critIdx := strings.Index(prompt, "CRITICAL severity:")
	highIdx := strings.Index(prompt, "HIGH severity:")
	require.GreaterOrEqual(t, critIdx, 0)
	require.GreaterOrEqual(t, highIdx, 0)
	assert.Less(t, critIdx, highIdx)
}

func TestWriterUsesPersona(t *testing.T) {
	provider := newFakeLLM()
	provider.script("WriterOutput", scriptedDraft())

	rc := testRunContext(provider)
	rc.Persona.SystemPrompt = "You write plainspoken home-improvement articles."

	NewWriterAgent().Execute(context.Background(), writerInput(), rc)
	require.Len(t, provider.systemPrompts, 1)
	assert.Equal(t, rc.Persona.SystemPrompt, provider.systemPrompts[0])
}

func TestWriterLLMFailure(t *testing.T) {
	provider := newFakeLLM()
	provider.err = errors.New("context length exceeded")

	result := NewWriterAgent().Execute(context.Background(), writerInput(), testRunContext(provider))
	require.Error(t, result.Err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err.Error(), "article generation failed")
	assert.Equal(t, provider.usage, result.Usage)
}
