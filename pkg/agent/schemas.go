package agent

import (
	"encoding/json"
	"fmt"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

// outputSchema is a named structural validator implementing llm.Schema.
type outputSchema struct {
	name  string
	check func(raw json.RawMessage) error
}

func (s *outputSchema) Name() string                       { return s.name }
func (s *outputSchema) Validate(raw json.RawMessage) error { return s.check(raw) }

func inRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

// WriterOutputSchema validates models.WriterOutput.
func WriterOutputSchema() llm.Schema {
	return &outputSchema{
		name: "WriterOutput",
		check: func(raw json.RawMessage) error {
			var out models.WriterOutput
			if err := json.Unmarshal(raw, &out); err != nil {
				return fmt.Errorf("shape mismatch: %w", err)
			}
			if out.Title == "" {
				return fmt.Errorf("title is required")
			}
			if out.Content == "" {
				return fmt.Errorf("content is required")
			}
			for i, h := range out.Headings {
				if h.Level < 2 || h.Level > 4 {
					return fmt.Errorf("headings[%d].level must be between 2 and 4, got %d", i, h.Level)
				}
				if h.Text == "" {
					return fmt.Errorf("headings[%d].text is required", i)
				}
			}
			return nil
		},
	}
}

// SEOOutputSchema validates models.SEOOutput.
func SEOOutputSchema() llm.Schema {
	return &outputSchema{
		name: "SEOOutput",
		check: func(raw json.RawMessage) error {
			var out models.SEOOutput
			if err := json.Unmarshal(raw, &out); err != nil {
				return fmt.Errorf("shape mismatch: %w", err)
			}
			if out.MetaTitle == "" {
				return fmt.Errorf("metaTitle is required")
			}
			if out.MetaDescription == "" {
				return fmt.Errorf("metaDescription is required")
			}
			if err := inRange("optimizationScore", out.OptimizationScore, 0, 100); err != nil {
				return err
			}
			if out.KeywordDensity.Percentage < 0 {
				return fmt.Errorf("keywordDensity.percentage must be >= 0")
			}
			return nil
		},
	}
}

// qaScoring is the shape the QA agent asks the LLM for. The deterministic
// parts of QAOutput (pass verdict, overall score, issue fingerprints) are
// computed by the agent, not trusted from the model.
type qaScoring struct {
	DimensionScores models.DimensionScores `json:"dimensionScores"`
	Issues          []qaScoringIssue       `json:"issues"`
	Feedback        string                 `json:"feedback"`
}

type qaScoringIssue struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
	Location    string `json:"location,omitempty"`
}

// QAScoringSchema validates the LLM half of the QA evaluation.
func QAScoringSchema() llm.Schema {
	return &outputSchema{
		name: "QAScoring",
		check: func(raw json.RawMessage) error {
			var out qaScoring
			if err := json.Unmarshal(raw, &out); err != nil {
				return fmt.Errorf("shape mismatch: %w", err)
			}
			scores := map[string]int{
				"dimensionScores.readability": out.DimensionScores.Readability,
				"dimensionScores.seo":         out.DimensionScores.SEO,
				"dimensionScores.accuracy":    out.DimensionScores.Accuracy,
				"dimensionScores.engagement":  out.DimensionScores.Engagement,
				"dimensionScores.brandVoice":  out.DimensionScores.BrandVoice,
			}
			for field, v := range scores {
				if err := inRange(field, v, 0, 100); err != nil {
					return err
				}
			}
			for i, issue := range out.Issues {
				switch models.Severity(issue.Severity) {
				case models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical:
				default:
					return fmt.Errorf("issues[%d].severity %q is not one of low/medium/high/critical", i, issue.Severity)
				}
				if issue.Description == "" {
					return fmt.Errorf("issues[%d].description is required", i)
				}
			}
			return nil
		},
	}
}

// staticSchema names the output shape of agents that never call the LLM;
// their outputs are built in code and validated by construction.
func staticSchema(name string) llm.Schema {
	return &outputSchema{
		name:  name,
		check: func(json.RawMessage) error { return nil },
	}
}
