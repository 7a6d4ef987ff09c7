package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

const writerDefaultMaxTokens = 8192

// WriterAgent drafts (and on later iterations revises) the article via the
// LLM, guided by research data and QA feedback.
type WriterAgent struct{}

// NewWriterAgent creates the writer agent.
func NewWriterAgent() *WriterAgent { return &WriterAgent{} }

func (a *WriterAgent) AgentType() models.AgentType { return models.AgentTypeWriter }
func (a *WriterAgent) Name() string                { return "Writer Agent" }
func (a *WriterAgent) Description() string {
	return "Writes and revises the article from research data and QA feedback"
}
func (a *WriterAgent) OutputSchema() llm.Schema { return WriterOutputSchema() }

func (a *WriterAgent) ValidateInput(in Input) error {
	if strings.TrimSpace(in.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if in.Research == nil {
		return fmt.Errorf("research data is required")
	}
	if in.Iteration > 1 && in.PreviousArticle == nil {
		return fmt.Errorf("previous article is required for revision (iteration %d)", in.Iteration)
	}
	return nil
}

func (a *WriterAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	if in.Iteration > 1 {
		rc.progress(fmt.Sprintf("Revising article (iteration %d)", in.Iteration))
	} else {
		rc.progress("Writing article")
	}

	temperature := rc.Persona.Temperature
	maxTokens := rc.Persona.MaxTokens
	if maxTokens < writerDefaultMaxTokens {
		maxTokens = writerDefaultMaxTokens
	}

	result, err := rc.LLM.GenerateJSON(ctx, llm.JSONRequest{
		Provider:     rc.Persona.Provider,
		Model:        rc.Persona.Model,
		Prompt:       a.buildPrompt(in),
		SystemPrompt: rc.Persona.SystemPrompt,
		Schema:       a.OutputSchema(),
		Temperature:  &temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return &Result{
			Usage:   result.Usage,
			CostUSD: result.CostUSD,
			Err:     fmt.Errorf("article generation failed: %w", err),
		}
	}

	var output models.WriterOutput
	if err := json.Unmarshal(result.Value, &output); err != nil {
		return &Result{
			Usage:   result.Usage,
			CostUSD: result.CostUSD,
			Err:     fmt.Errorf("decode writer output: %w", err),
		}
	}

	if output.WordCount == 0 {
		output.WordCount = len(strings.Fields(output.Content))
	}
	if output.Slug == "" {
		output.Slug = Slugify(output.Title)
	}

	rc.logInfo("Article drafted", map[string]any{
		"title":      output.Title,
		"word_count": output.WordCount,
		"iteration":  in.Iteration,
		"tokens":     result.Usage.TotalTokens,
	})

	return &Result{
		Success:        true,
		Output:         &output,
		Usage:          result.Usage,
		CostUSD:        result.CostUSD,
		ContinueToNext: true,
	}
}

func (a *WriterAgent) buildPrompt(in Input) string {
	var b strings.Builder

	target := in.TargetWordCount
	if target == 0 {
		target = in.Research.RecommendedWordCount
	}

	fmt.Fprintf(&b, "Write a comprehensive article targeting the keyword %q.\n", in.Keyword)
	fmt.Fprintf(&b, "Required word count: approximately %d words.\n\n", target)

	if in.Context != "" {
		fmt.Fprintf(&b, "Additional context from the requester:\n%s\n\n", in.Context)
	}

	if intent := in.Research.KeywordData.Intent; intent != "" {
		fmt.Fprintf(&b, "Search intent: %s.\n", intent)
	}
	if len(in.Research.PAAQuestions) > 0 {
		b.WriteString("\nAnswer these questions readers commonly ask:\n")
		for _, q := range in.Research.PAAQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	if len(in.Research.RelatedKeywords) > 0 {
		fmt.Fprintf(&b, "\nWork in these related keywords where natural: %s.\n",
			strings.Join(in.Research.RelatedKeywords, ", "))
	}
	if len(in.Research.ContentGaps) > 0 {
		b.WriteString("\nCover these gaps competitors miss:\n")
		for _, gap := range in.Research.ContentGaps {
			fmt.Fprintf(&b, "- %s\n", gap)
		}
	}

	if in.Iteration > 1 && in.PreviousArticle != nil {
		a.appendRevisionDirective(&b, in)
	}

	b.WriteString("\nReturn a JSON object with fields: title (max 60 chars), slug, content (markdown), excerpt (max 160 chars), wordCount, headings (array of {level: 2-4, text}).\n")
	b.WriteString("Do not use emojis, em-dashes, or sensational words such as \"amazing\" or \"incredible\".\n")

	return b.String()
}

// appendRevisionDirective embeds the previous article and the structured QA
// issues, grouped by severity, escalating issues that survived a previous
// revision to must-fix.
func (a *WriterAgent) appendRevisionDirective(b *strings.Builder, in Input) {
	fmt.Fprintf(b, "\nThis is revision %d. The previous draft did not pass quality review.\n", in.Iteration)

	if in.QAFeedback != "" {
		fmt.Fprintf(b, "\nReviewer feedback:\n%s\n", in.QAFeedback)
	}

	if len(in.IssuesToFix) > 0 {
		b.WriteString("\nFix the following issues:\n")
		for _, severity := range []models.Severity{models.SeverityCritical, models.SeverityHigh, models.SeverityMedium, models.SeverityLow} {
			var group []models.Issue
			for _, issue := range in.IssuesToFix {
				if issue.Severity == severity {
					group = append(group, issue)
				}
			}
			if len(group) == 0 {
				continue
			}
			fmt.Fprintf(b, "\n%s severity:\n", strings.ToUpper(string(severity)))
			for _, issue := range group {
				marker := ""
				if issue.PersistCount >= 2 {
					marker = fmt.Sprintf(" [MUST FIX - flagged %d times already]", issue.PersistCount)
				}
				fmt.Fprintf(b, "- (%s) %s%s", issue.Category, issue.Description, marker)
				if issue.Suggestion != "" {
					fmt.Fprintf(b, " Suggestion: %s", issue.Suggestion)
				}
				b.WriteByte('\n')
			}
		}
	}

	b.WriteString("\nPreserve all content that was not flagged; change only what the issues require.\n")
	fmt.Fprintf(b, "\nPrevious article:\n---\n# %s\n\n%s\n---\n", in.PreviousArticle.Title, in.PreviousArticle.Content)
}
