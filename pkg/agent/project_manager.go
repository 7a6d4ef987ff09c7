package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

const (
	minPublishWordCount   = 300
	expandWordCountAdvice = 500
	lowSEOScoreThreshold  = 70
)

// ProjectManagerAgent deterministically assembles the final publishable
// artifact from the writer, SEO, and QA outputs. No LLM call, zero tokens;
// identical inputs produce identical outputs.
type ProjectManagerAgent struct{}

// NewProjectManagerAgent creates the project manager agent.
func NewProjectManagerAgent() *ProjectManagerAgent { return &ProjectManagerAgent{} }

func (a *ProjectManagerAgent) AgentType() models.AgentType { return models.AgentTypeProjectManager }
func (a *ProjectManagerAgent) Name() string                { return "Project Manager Agent" }
func (a *ProjectManagerAgent) Description() string {
	return "Assembles the final article and publish-readiness verdict"
}
func (a *ProjectManagerAgent) OutputSchema() llm.Schema { return staticSchema("ProjectManagerOutput") }

func (a *ProjectManagerAgent) ValidateInput(in Input) error {
	if strings.TrimSpace(in.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if in.Article == nil {
		return fmt.Errorf("article is required")
	}
	return nil
}

func (a *ProjectManagerAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	rc.progress("Assembling final article")

	article := in.Article
	output := &models.ProjectManagerOutput{
		ValidationErrors: []string{},
		FinalArticle: models.FinalArticle{
			Title:        article.Title,
			Slug:         article.Slug,
			Content:      article.Content,
			Excerpt:      article.Excerpt,
			Template:     "article",
			Status:       models.ArticleStatusDraft,
			FocusKeyword: in.Keyword,
			WordCount:    article.WordCount,
			SchemaMarkup: defaultSchemaMarkup(),
		},
	}

	if output.FinalArticle.Slug == "" {
		output.FinalArticle.Slug = Slugify(article.Title)
	}
	if in.Settings.Template != "" {
		output.FinalArticle.Template = in.Settings.Template
	}
	if in.Settings.AutoPost {
		output.FinalArticle.Status = models.ArticleStatusPublished
	}

	output.FinalArticle.MetaTitle = truncateRunes(article.Title, metaTitleMaxLen)
	output.FinalArticle.MetaDescription = truncateRunes(article.Excerpt, metaDescriptionMaxLen)
	if in.SEO != nil {
		if in.SEO.MetaTitle != "" {
			output.FinalArticle.MetaTitle = in.SEO.MetaTitle
		}
		if in.SEO.MetaDescription != "" {
			output.FinalArticle.MetaDescription = in.SEO.MetaDescription
		}
		if in.SEO.SchemaMarkup != nil {
			output.FinalArticle.SchemaMarkup = in.SEO.SchemaMarkup
		}
	}

	output.ValidationErrors = a.validate(article, in.QA)
	output.ReadyForPublish = len(output.ValidationErrors) == 0
	output.Summary = a.summarize(in, output)
	output.Recommendations = a.recommend(in, article)

	rc.logInfo("Final assembly complete", map[string]any{
		"ready_for_publish": output.ReadyForPublish,
		"validation_errors": len(output.ValidationErrors),
		"status":            output.FinalArticle.Status,
	})

	return &Result{
		Success:        true,
		Output:         output,
		ContinueToNext: true,
	}
}

func (a *ProjectManagerAgent) validate(article *models.WriterOutput, qa *models.QAOutput) []string {
	errs := []string{}
	if article.Title == "" {
		errs = append(errs, "Article title is missing")
	}
	if article.Content == "" {
		errs = append(errs, "Article content is missing")
	}
	if article.WordCount < minPublishWordCount {
		errs = append(errs, fmt.Sprintf("Article content too short (minimum %d words)", minPublishWordCount))
	}
	if qa != nil && !qa.Passed {
		errs = append(errs, "QA check failed")
	}
	return errs
}

func (a *ProjectManagerAgent) summarize(in Input, output *models.ProjectManagerOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assembled %q (%d words) for keyword %q.",
		output.FinalArticle.Title, output.FinalArticle.WordCount, in.Keyword)
	if in.SEO != nil {
		fmt.Fprintf(&b, " SEO optimization score: %d.", in.SEO.OptimizationScore)
	}
	if in.QA != nil {
		fmt.Fprintf(&b, " QA score: %d.", in.QA.OverallScore)
	}
	if output.ReadyForPublish {
		fmt.Fprintf(&b, " Ready for publish as %s.", output.FinalArticle.Status)
	} else {
		fmt.Fprintf(&b, " Not ready for publish: %s.", strings.Join(output.ValidationErrors, "; "))
	}
	return b.String()
}

func (a *ProjectManagerAgent) recommend(in Input, article *models.WriterOutput) []string {
	var recs []string
	if in.SEO != nil {
		if in.SEO.OptimizationScore < lowSEOScoreThreshold {
			recs = append(recs, fmt.Sprintf("Improve SEO optimization (current score: %d)", in.SEO.OptimizationScore))
		}
		if len(in.SEO.InternalLinks) == 0 {
			recs = append(recs, "No internal links suggested; consider internal links to related pages")
		}
	}
	if in.QA != nil && !in.QA.Passed {
		recs = append(recs, "Quality review did not pass; address QA feedback before publishing")
	}
	if article.WordCount < expandWordCountAdvice {
		recs = append(recs, "Consider expanding content for better search engine performance")
	}
	return recs
}

// Slugify lowercases, maps non-alphanumeric runs to single hyphens, and
// trims leading/trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
