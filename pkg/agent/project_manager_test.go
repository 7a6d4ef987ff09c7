package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

func pmInput() Input {
	return Input{
		Keyword:  "concrete driveway cost",
		Article:  testArticle(),
		Research: testResearchOutput(),
		SEO: &models.SEOOutput{
			MetaTitle:         "Concrete Driveway Cost in 2026",
			MetaDescription:   "What a new concrete driveway costs per square foot.",
			OptimizationScore: 84,
			InternalLinks: []models.InternalLink{
				{AnchorText: "paver driveways", SuggestedPath: "/paver-driveways"},
			},
			SchemaMarkup: map[string]interface{}{"@type": "Article", "headline": "x"},
		},
		QA: &models.QAOutput{Passed: true, OverallScore: 86},
	}
}

func TestProjectManagerValidateInput(t *testing.T) {
	pm := NewProjectManagerAgent()

	assert.Error(t, pm.ValidateInput(Input{Article: testArticle()}))
	assert.Error(t, pm.ValidateInput(Input{Keyword: "k"}))
	assert.NoError(t, pm.ValidateInput(Input{Keyword: "k", Article: testArticle()}))
}

func TestProjectManagerAssemblesFinalArticle(t *testing.T) {
	pm := NewProjectManagerAgent()
	in := pmInput()

	result := pm.Execute(context.Background(), in, testRunContext(newFakeLLM()))
	require.True(t, result.Success)
	require.NoError(t, result.Err)
	assert.True(t, result.ContinueToNext)
	assert.Zero(t, result.Usage.TotalTokens)

	output, ok := result.Output.(*models.ProjectManagerOutput)
	require.True(t, ok)

	assert.True(t, output.ReadyForPublish)
	assert.Empty(t, output.ValidationErrors)

	final := output.FinalArticle
	assert.Equal(t, in.Article.Title, final.Title)
	assert.Equal(t, in.Article.Slug, final.Slug)
	assert.Equal(t, "article", final.Template)
	assert.Equal(t, models.ArticleStatusDraft, final.Status)
	assert.Equal(t, in.Keyword, final.FocusKeyword)
	assert.Equal(t, in.SEO.MetaTitle, final.MetaTitle)
	assert.Equal(t, in.SEO.MetaDescription, final.MetaDescription)
	assert.Equal(t, in.SEO.SchemaMarkup, final.SchemaMarkup)
}

func TestProjectManagerSettingsOverrides(t *testing.T) {
	pm := NewProjectManagerAgent()
	in := pmInput()
	in.Settings = models.JobSettings{AutoPost: true, Template: "guide"}
	in.Article.WordCount = 400

	result := pm.Execute(context.Background(), in, testRunContext(newFakeLLM()))
	require.True(t, result.Success)

	output := result.Output.(*models.ProjectManagerOutput)
	assert.Equal(t, "guide", output.FinalArticle.Template)
	assert.Equal(t, models.ArticleStatusPublished, output.FinalArticle.Status)
	assert.True(t, output.ReadyForPublish)
	assert.Contains(t, output.Recommendations,
		"Consider expanding content for better search engine performance")
}

func TestProjectManagerValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *Input)
		wantErr string
	}{
		{
			name:    "missing title",
			mutate:  func(in *Input) { in.Article.Title = "" },
			wantErr: "Article title is missing",
		},
		{
			name:    "missing content",
			mutate:  func(in *Input) { in.Article.Content = "" },
			wantErr: "Article content is missing",
		},
		{
			name:    "too short",
			mutate:  func(in *Input) { in.Article.WordCount = 299 },
			wantErr: "Article content too short (minimum 300 words)",
		},
		{
			name:    "qa failed",
			mutate:  func(in *Input) { in.QA.Passed = false },
			wantErr: "QA check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewProjectManagerAgent()
			in := pmInput()
			tt.mutate(&in)

			result := pm.Execute(context.Background(), in, testRunContext(newFakeLLM()))
			require.True(t, result.Success)

			output := result.Output.(*models.ProjectManagerOutput)
			assert.False(t, output.ReadyForPublish)
			assert.Contains(t, output.ValidationErrors, tt.wantErr)
			assert.Contains(t, output.Summary, "Not ready for publish")
		})
	}
}

func TestProjectManagerRecommendations(t *testing.T) {
	pm := NewProjectManagerAgent()
	in := pmInput()
	in.SEO.OptimizationScore = 55
	in.SEO.InternalLinks = nil
	in.QA.Passed = false

	result := pm.Execute(context.Background(), in, testRunContext(newFakeLLM()))
	output := result.Output.(*models.ProjectManagerOutput)

	require.Len(t, output.Recommendations, 3)
	assert.Contains(t, output.Recommendations[0], "Improve SEO optimization (current score: 55)")
	assert.Contains(t, output.Recommendations[1], "internal links")
	assert.Contains(t, output.Recommendations[2], "address QA feedback")
}

func TestProjectManagerFallbacksWithoutSEO(t *testing.T) {
	pm := NewProjectManagerAgent()
	in := pmInput()
	in.SEO = nil
	in.Article.Slug = ""
	in.Article.Title = "What Does a Concrete Driveway Cost? A Complete Homeowner's Guide for 2026"

	result := pm.Execute(context.Background(), in, testRunContext(newFakeLLM()))
	output := result.Output.(*models.ProjectManagerOutput)

	final := output.FinalArticle
	assert.Equal(t, "what-does-a-concrete-driveway-cost-a-complete-homeowner-s-guide-for-2026", final.Slug)
	assert.LessOrEqual(t, len([]rune(final.MetaTitle)), 60)
	assert.True(t, strings.HasPrefix(in.Article.Title, final.MetaTitle))
	assert.Equal(t, in.Article.Excerpt, final.MetaDescription)
	assert.Equal(t, defaultSchemaMarkup(), final.SchemaMarkup)
}

func TestProjectManagerDeterministic(t *testing.T) {
	pm := NewProjectManagerAgent()

	first := pm.Execute(context.Background(), pmInput(), testRunContext(newFakeLLM()))
	second := pm.Execute(context.Background(), pmInput(), testRunContext(newFakeLLM()))

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.Output, second.Output)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Concrete Driveway Cost Guide", "concrete-driveway-cost-guide"},
		{"  What's New in 2026?  ", "what-s-new-in-2026"},
		{"---already---hyphenated---", "already-hyphenated"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
