package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

func TestDetectProhibitedPatterns(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		severities []models.Severity
	}{
		{
			name:       "clean content",
			content:    "Concrete driveways cost between 4 and 15 dollars per square foot.",
			severities: nil,
		},
		{
			name:       "emoji is critical",
			content:    "Great driveway ideas 🚀 for your home",
			severities: []models.Severity{models.SeverityCritical},
		},
		{
			name:       "em dash is high",
			content:    "Concrete is durable — and affordable.",
			severities: []models.Severity{models.SeverityHigh},
		},
		{
			name:       "sensational word is medium",
			content:    "This amazing material lasts decades.",
			severities: []models.Severity{models.SeverityMedium},
		},
		{
			name:       "sensational matching is case insensitive",
			content:    "An INCREDIBLE offer on Game-Changing materials.",
			severities: []models.Severity{models.SeverityMedium},
		},
		{
			name:       "all three classes",
			content:    "Amazing results 😀 — guaranteed.",
			severities: []models.Severity{models.SeverityCritical, models.SeverityHigh, models.SeverityMedium},
		},
		{
			name:       "en dash and hyphen are allowed",
			content:    "A 10–15 year lifespan for a well-poured slab.",
			severities: nil,
		},
		{
			name:       "sensational word inside another word does not match",
			content:    "The gas main is awesomely irrelevant here: blamazingly so.",
			severities: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := detectProhibitedPatterns(tt.content)
			require.Len(t, issues, len(tt.severities))
			for i, sev := range tt.severities {
				assert.Equal(t, sev, issues[i].Severity)
				assert.Equal(t, "prohibited_pattern", issues[i].Category)
				assert.NotEmpty(t, issues[i].IssueID)
				assert.NotEmpty(t, issues[i].Suggestion)
			}
		})
	}
}

func TestDetectProhibitedPatternsOneIssuePerClass(t *testing.T) {
	issues := detectProhibitedPatterns("😀 😀 😀 amazing amazing incredible — —")
	require.Len(t, issues, 3)

	assert.Contains(t, issues[0].Description, "3 emoji")
	assert.Contains(t, issues[1].Description, "2 em-dash")
	assert.Contains(t, issues[2].Description, "amazing, incredible")
}

func TestDetectProhibitedPatternsStableFingerprints(t *testing.T) {
	first := detectProhibitedPatterns("So amazing.")
	second := detectProhibitedPatterns("Truly amazing stuff.")
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	// Same word list, same description, same fingerprint across iterations.
	assert.Equal(t, first[0].IssueID, second[0].IssueID)
}
