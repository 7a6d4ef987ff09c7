package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

// QAAgent gates article quality. It combines a deterministic prohibited-
// pattern scan with LLM scoring across five dimensions, tracks issue
// persistence across iterations, and records an eval row per run.
type QAAgent struct {
	cfg *config.QAConfig
}

// NewQAAgent creates the QA agent with the quality gate configuration.
func NewQAAgent(cfg *config.QAConfig) *QAAgent {
	if cfg == nil {
		cfg = config.DefaultQAConfig()
	}
	return &QAAgent{cfg: cfg}
}

func (a *QAAgent) AgentType() models.AgentType { return models.AgentTypeQA }
func (a *QAAgent) Name() string                { return "QA Agent" }
func (a *QAAgent) Description() string {
	return "Scores article quality and decides whether the writer must revise"
}
func (a *QAAgent) OutputSchema() llm.Schema { return QAScoringSchema() }

func (a *QAAgent) ValidateInput(in Input) error {
	if strings.TrimSpace(in.Keyword) == "" {
		return fmt.Errorf("keyword is required")
	}
	if in.Article == nil {
		return fmt.Errorf("article is required")
	}
	if in.Iteration < 1 {
		return fmt.Errorf("iteration must be >= 1")
	}
	return nil
}

func (a *QAAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	rc.progress("Reviewing article quality")

	// Deterministic scan first: these issues stand regardless of how the
	// model scores the article.
	prohibited := detectProhibitedPatterns(in.Article.Content)

	temperature := rc.Persona.Temperature

	llmResult, err := rc.LLM.GenerateJSON(ctx, llm.JSONRequest{
		Provider:     rc.Persona.Provider,
		Model:        rc.Persona.Model,
		Prompt:       a.buildPrompt(in, prohibited),
		SystemPrompt: rc.Persona.SystemPrompt,
		Schema:       a.OutputSchema(),
		Temperature:  &temperature,
		MaxTokens:    rc.Persona.MaxTokens,
	})
	if err != nil {
		return &Result{
			Usage:   llmResult.Usage,
			CostUSD: llmResult.CostUSD,
			Err:     fmt.Errorf("quality scoring failed: %w", err),
		}
	}

	var scoring qaScoring
	if err := json.Unmarshal(llmResult.Value, &scoring); err != nil {
		return &Result{
			Usage:   llmResult.Usage,
			CostUSD: llmResult.CostUSD,
			Err:     fmt.Errorf("decode QA scoring: %w", err),
		}
	}

	issues := a.mergeIssues(prohibited, scoring.Issues)
	fixedIDs, persistingIDs := trackIssues(in.PreviousIssues, issues)
	overall := a.overallScore(scoring.DimensionScores, issues)

	output := &models.QAOutput{
		Passed:             overall >= a.cfg.PassThreshold && !hasCritical(issues),
		OverallScore:       overall,
		DimensionScores:    scoring.DimensionScores,
		Issues:             issues,
		Feedback:           scoring.Feedback,
		FixedIssueIDs:      fixedIDs,
		PersistingIssueIDs: persistingIDs,
	}

	a.recordEval(ctx, in, rc, output)

	rc.logInfo("QA review complete", map[string]any{
		"passed":        output.Passed,
		"overall_score": output.OverallScore,
		"issues":        len(output.Issues),
		"fixed":         len(fixedIDs),
		"persisting":    len(persistingIDs),
		"iteration":     in.Iteration,
	})

	return &Result{
		Success:        true,
		Output:         output,
		Usage:          llmResult.Usage,
		CostUSD:        llmResult.CostUSD,
		ContinueToNext: output.Passed,
		Feedback:       output.Feedback,
	}
}

// mergeIssues fingerprints the LLM's findings and combines them with the
// deterministic ones, dropping duplicates by issue ID.
func (a *QAAgent) mergeIssues(prohibited []models.Issue, llmIssues []qaScoringIssue) []models.Issue {
	issues := make([]models.Issue, 0, len(prohibited)+len(llmIssues))
	seen := make(map[string]bool)

	for _, issue := range prohibited {
		issues = append(issues, issue)
		seen[issue.IssueID] = true
	}
	for _, li := range llmIssues {
		issue := models.NewIssue(li.Category, models.Severity(li.Severity), li.Description, li.Suggestion)
		issue.Location = li.Location
		if seen[issue.IssueID] {
			continue
		}
		seen[issue.IssueID] = true
		issues = append(issues, issue)
	}
	return issues
}

// trackIssues computes the fixed/persisting sets against the previous
// iteration's issues and bumps PersistCount on survivors in place.
func trackIssues(previous, current []models.Issue) (fixed, persisting []string) {
	if len(previous) == 0 {
		return nil, nil
	}

	currentIDs := make(map[string]int, len(current)) // issueId → index
	for i, issue := range current {
		currentIDs[issue.IssueID] = i
	}

	for _, prev := range previous {
		if i, stillOpen := currentIDs[prev.IssueID]; stillOpen {
			persisting = append(persisting, prev.IssueID)
			count := prev.PersistCount + 1
			if count < 2 {
				count = 2
			}
			current[i].PersistCount = count
		} else {
			fixed = append(fixed, prev.IssueID)
		}
	}
	return fixed, persisting
}

// overallScore is the equal-weight mean of the five dimensions, penalized
// per open critical/high issue, floored at zero.
func (a *QAAgent) overallScore(scores models.DimensionScores, issues []models.Issue) int {
	mean := (scores.Readability + scores.SEO + scores.Accuracy + scores.Engagement + scores.BrandVoice) / 5

	for _, issue := range issues {
		switch issue.Severity {
		case models.SeverityCritical:
			mean -= a.cfg.CriticalPenalty
		case models.SeverityHigh:
			mean -= a.cfg.HighPenalty
		}
	}

	if mean < 0 {
		mean = 0
	}
	if mean > 100 {
		mean = 100
	}
	return mean
}

func hasCritical(issues []models.Issue) bool {
	for _, issue := range issues {
		if issue.Severity == models.SeverityCritical {
			return true
		}
	}
	return false
}

// recordEval persists the evaluation row linked to the current step. Eval
// persistence is bookkeeping; failures are logged and do not fail the run.
func (a *QAAgent) recordEval(ctx context.Context, in Input, rc *RunContext, output *models.QAOutput) {
	if rc.Evals == nil || rc.Job == nil || rc.StepID == "" {
		return
	}
	_, err := rc.Evals.InsertEval(ctx, models.CreateEvalRequest{
		JobID:              rc.Job.ID,
		StepID:             rc.StepID,
		Iteration:          in.Iteration,
		OverallScore:       output.OverallScore,
		ReadabilityScore:   output.DimensionScores.Readability,
		SEOScore:           output.DimensionScores.SEO,
		AccuracyScore:      output.DimensionScores.Accuracy,
		EngagementScore:    output.DimensionScores.Engagement,
		BrandVoiceScore:    output.DimensionScores.BrandVoice,
		Passed:             output.Passed,
		Issues:             output.Issues,
		Feedback:           output.Feedback,
		FixedIssueIDs:      output.FixedIssueIDs,
		PersistingIssueIDs: output.PersistingIssueIDs,
	})
	if err != nil {
		rc.logWarn("Failed to record QA eval", map[string]any{"error": err.Error()})
	}
}

func (a *QAAgent) buildPrompt(in Input, prohibited []models.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Review this article targeting the keyword %q.\n\n", in.Keyword)
	fmt.Fprintf(&b, "Title: %s\n\nArticle:\n%s\n\n", in.Article.Title, in.Article.Content)

	if in.SEO != nil {
		fmt.Fprintf(&b, "SEO optimization score: %d/100.\n", in.SEO.OptimizationScore)
		if !in.SEO.HeadingAnalysis.IsValid {
			fmt.Fprintf(&b, "Heading issues already found: %s\n", strings.Join(in.SEO.HeadingAnalysis.Issues, "; "))
		}
	}

	if len(prohibited) > 0 {
		b.WriteString("\nAutomated checks already flagged these problems (do not re-report them):\n")
		for _, issue := range prohibited {
			fmt.Fprintf(&b, "- [%s] %s\n", issue.Severity, issue.Description)
		}
	}

	if in.Iteration > 1 && len(in.PreviousIssues) > 0 {
		fmt.Fprintf(&b, "\nThis is review round %d. Previously reported issues:\n", in.Iteration)
		for _, issue := range in.PreviousIssues {
			fmt.Fprintf(&b, "- (%s/%s) %s\n", issue.Category, issue.Severity, issue.Description)
		}
		b.WriteString("Check each one: report it again only if it is still present, with the same category and description.\n")
	}

	b.WriteString("\nScore the article 0-100 on readability, seo, accuracy, engagement, and brandVoice.\n")
	b.WriteString("Return a JSON object with fields: dimensionScores ({readability, seo, accuracy, engagement, brandVoice}), ")
	b.WriteString("issues (array of {category, severity: low|medium|high|critical, description, suggestion, location}), ")
	b.WriteString("feedback (prose summary for the writer).\n")

	return b.String()
}
