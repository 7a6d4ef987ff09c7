package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Severity classifies a QA issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Issue is one QA finding. IssueID is a stable fingerprint so the
// orchestrator can track the same issue across iterations.
type Issue struct {
	IssueID      string   `json:"issueId"`
	Category     string   `json:"category"`
	Severity     Severity `json:"severity"`
	Description  string   `json:"description"`
	Suggestion   string   `json:"suggestion,omitempty"`
	Location     string   `json:"location,omitempty"`
	PersistCount int      `json:"persistCount"`
}

// IssueFingerprint derives the stable issue identifier from the category and
// the normalized description (lowercased, whitespace collapsed). Identical
// findings across iterations hash to the same ID.
func IssueFingerprint(category, description string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(description)), " ")
	sum := sha256.Sum256([]byte(strings.ToLower(category) + ":" + normalized))
	return hex.EncodeToString(sum[:8])
}

// NewIssue builds an Issue with its fingerprint set and PersistCount 1.
func NewIssue(category string, severity Severity, description, suggestion string) Issue {
	return Issue{
		IssueID:      IssueFingerprint(category, description),
		Category:     category,
		Severity:     severity,
		Description:  description,
		Suggestion:   suggestion,
		PersistCount: 1,
	}
}
