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

func seoInput() Input {
	return Input{
		Keyword:  "concrete driveway cost",
		Article:  testArticle(),
		Research: testResearchOutput(),
	}
}

func scriptedSEO() models.SEOOutput {
	return models.SEOOutput{
		MetaTitle:       "Concrete Driveway Cost in 2026",
		MetaDescription: "What a new concrete driveway costs per square foot, with real ranges.",
		HeadingAnalysis: models.HeadingAnalysis{IsValid: true},
		KeywordDensity:  models.KeywordDensity{Percentage: 9.9, Analysis: "within range"},
		SchemaMarkup: map[string]interface{}{
			"@context": "https://schema.org",
			"@type":    "Article",
			"headline": "Concrete Driveway Cost in 2026",
		},
		InternalLinks:     []models.InternalLink{{AnchorText: "paver cost", SuggestedPath: "/paver-cost"}},
		OptimizationScore: 84,
	}
}

func TestSEOValidateInput(t *testing.T) {
	a := NewSEOAgent()

	assert.Error(t, a.ValidateInput(Input{Article: testArticle(), Research: testResearchOutput()}))
	assert.Error(t, a.ValidateInput(Input{Keyword: "k", Research: testResearchOutput()}))
	assert.Error(t, a.ValidateInput(Input{Keyword: "k", Article: testArticle()}))
	assert.NoError(t, a.ValidateInput(seoInput()))
}

func TestSEOAnalyzesArticle(t *testing.T) {
	provider := newFakeLLM()
	provider.script("SEOOutput", scriptedSEO())

	result := NewSEOAgent().Execute(context.Background(), seoInput(), testRunContext(provider))
	require.True(t, result.Success)
	require.NoError(t, result.Err)
	assert.True(t, result.ContinueToNext)

	output := result.Output.(*models.SEOOutput)
	assert.Equal(t, 84, output.OptimizationScore)
	assert.Equal(t, scriptedSEO().SchemaMarkup, output.SchemaMarkup)

	require.Len(t, provider.prompts, 1)
	prompt := provider.prompts[0]
	assert.Contains(t, prompt, `"concrete driveway cost"`)
	assert.Contains(t, prompt, "driveway paving cost")
}

func TestSEOMeasuredDensityOverridesModel(t *testing.T) {
	provider := newFakeLLM()
	provider.script("SEOOutput", scriptedSEO())

	in := seoInput()
	article := *in.Article
	article.Content = "concrete driveway cost is high. concrete driveway cost varies by region."
	in.Article = &article

	result := NewSEOAgent().Execute(context.Background(), in, testRunContext(provider))
	output := result.Output.(*models.SEOOutput)

	// 2 occurrences over 11 words, not the model's 9.9.
	assert.InDelta(t, 100.0*2/11, output.KeywordDensity.Percentage, 0.001)
}

func TestSEOTruncatesMetaFields(t *testing.T) {
	long := scriptedSEO()
	long.MetaTitle = strings.Repeat("t", 75)
	long.MetaDescription = strings.Repeat("d", 200)
	provider := newFakeLLM()
	provider.script("SEOOutput", long)

	result := NewSEOAgent().Execute(context.Background(), seoInput(), testRunContext(provider))
	output := result.Output.(*models.SEOOutput)

	assert.Len(t, []rune(output.MetaTitle), 60)
	assert.Len(t, []rune(output.MetaDescription), 160)
}

func TestSEODefaultSchemaMarkup(t *testing.T) {
	bare := scriptedSEO()
	bare.SchemaMarkup = nil
	provider := newFakeLLM()
	provider.script("SEOOutput", bare)

	result := NewSEOAgent().Execute(context.Background(), seoInput(), testRunContext(provider))
	output := result.Output.(*models.SEOOutput)

	assert.Equal(t, defaultSchemaMarkup(), output.SchemaMarkup)
}

func TestSEOLLMFailure(t *testing.T) {
	provider := newFakeLLM()
	provider.err = errors.New("upstream timeout")

	result := NewSEOAgent().Execute(context.Background(), seoInput(), testRunContext(provider))
	require.Error(t, result.Err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Err.Error(), "SEO analysis failed")
}

func TestKeywordDensity(t *testing.T) {
	assert.Zero(t, keywordDensity("k", ""))
	assert.InDelta(t, 25.0, keywordDensity("cost", "the cost of concrete"), 0.001)
	assert.InDelta(t, 25.0, keywordDensity("COST", "the Cost of concrete"), 0.001)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "ab", truncateRunes("abcd", 2))
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
}
