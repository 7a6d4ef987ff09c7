package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

const (
	metaTitleMaxLen       = 60
	metaDescriptionMaxLen = 160
)

// SEOAgent analyzes the drafted article for search optimization: meta tags,
// heading structure, keyword density, structured data, and internal links.
type SEOAgent struct{}

// NewSEOAgent creates the SEO agent.
func NewSEOAgent() *SEOAgent { return &SEOAgent{} }

func (a *SEOAgent) AgentType() models.AgentType { return models.AgentTypeSEO }
func (a *SEOAgent) Name() string                { return "SEO Agent" }
func (a *SEOAgent) Description() string {
	return "Optimizes meta tags, headings, keyword usage, and structured data"
}
func (a *SEOAgent) OutputSchema() llm.Schema { return SEOOutputSchema() }

func (a *SEOAgent) ValidateInput(in Input) error {
	if strings.TrimSpace(in.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if in.Article == nil {
		return fmt.Errorf("article is required")
	}
	if in.Research == nil {
		return fmt.Errorf("research data is required")
	}
	return nil
}

func (a *SEOAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	rc.progress("Optimizing for search")

	temperature := rc.Persona.Temperature

	result, err := rc.LLM.GenerateJSON(ctx, llm.JSONRequest{
		Provider:     rc.Persona.Provider,
		Model:        rc.Persona.Model,
		Prompt:       a.buildPrompt(in),
		SystemPrompt: rc.Persona.SystemPrompt,
		Schema:       a.OutputSchema(),
		Temperature:  &temperature,
		MaxTokens:    rc.Persona.MaxTokens,
	})
	if err != nil {
		return &Result{
			Usage:   result.Usage,
			CostUSD: result.CostUSD,
			Err:     fmt.Errorf("SEO analysis failed: %w", err),
		}
	}

	var output models.SEOOutput
	if err := json.Unmarshal(result.Value, &output); err != nil {
		return &Result{
			Usage:   result.Usage,
			CostUSD: result.CostUSD,
			Err:     fmt.Errorf("decode SEO output: %w", err),
		}
	}

	output.MetaTitle = truncateRunes(output.MetaTitle, metaTitleMaxLen)
	output.MetaDescription = truncateRunes(output.MetaDescription, metaDescriptionMaxLen)
	if output.SchemaMarkup == nil {
		output.SchemaMarkup = defaultSchemaMarkup()
	}
	// Trust the measured density over the model's guess.
	output.KeywordDensity.Percentage = keywordDensity(in.Keyword, in.Article.Content)

	rc.logInfo("SEO analysis complete", map[string]any{
		"optimization_score": output.OptimizationScore,
		"keyword_density":    output.KeywordDensity.Percentage,
		"internal_links":     len(output.InternalLinks),
		"tokens":             result.Usage.TotalTokens,
	})

	return &Result{
		Success:        true,
		Output:         &output,
		Usage:          result.Usage,
		CostUSD:        result.CostUSD,
		ContinueToNext: true,
	}
}

func (a *SEOAgent) buildPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze and optimize this article for the keyword %q.\n\n", in.Keyword)
	fmt.Fprintf(&b, "Title: %s\n\nArticle:\n%s\n\n", in.Article.Title, in.Article.Content)

	if len(in.Research.RelatedKeywords) > 0 {
		fmt.Fprintf(&b, "Related keywords: %s\n", strings.Join(in.Research.RelatedKeywords, ", "))
	}
	fmt.Fprintf(&b, "Measured keyword density: %.2f%%\n\n", keywordDensity(in.Keyword, in.Article.Content))

	b.WriteString("Return a JSON object with fields: ")
	b.WriteString("metaTitle (max 60 chars, contains the keyword), ")
	b.WriteString("metaDescription (max 160 chars), ")
	b.WriteString("headingAnalysis ({isValid, issues, suggestions}), ")
	b.WriteString("keywordDensity ({percentage, analysis}), ")
	b.WriteString("schemaMarkup (a JSON-LD Article object), ")
	b.WriteString("internalLinks (array of {anchorText, suggestedPath, reason}), ")
	b.WriteString("optimizationScore (0-100).\n")

	return b.String()
}

// keywordDensity measures keyword occurrences per word, in percent.
func keywordDensity(keyword, content string) float64 {
	words := strings.Fields(content)
	if len(words) == 0 {
		return 0
	}
	occurrences := strings.Count(strings.ToLower(content), strings.ToLower(keyword))
	return float64(occurrences) / float64(len(words)) * 100
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func defaultSchemaMarkup() map[string]interface{} {
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Article",
	}
}
