package agent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/copymill/copymill/pkg/models"
)

// Prohibited-pattern detection runs deterministically before LLM scoring, so
// an article with an emoji fails QA no matter how the model scores it.

// sensationalWords fail QA with a medium issue. Matching is case-insensitive
// and word-bounded.
var sensationalWords = []string{
	"amazing",
	"incredible",
	"unbelievable",
	"awesome",
	"revolutionary",
	"game-changing",
	"mind-blowing",
	"jaw-dropping",
}

var sensationalRe = regexp.MustCompile(`(?i)\b(` + strings.Join(sensationalWords, "|") + `)\b`)

const emDash = '—'

// isEmoji reports whether r falls in the Unicode emoji blocks.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport & map
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // symbols & pictographs extended-A
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0x200D: // zero-width joiner
		return true
	}
	return false
}

// detectProhibitedPatterns scans article content and returns one issue per
// detected pattern class: emoji (critical), em-dash (high), sensational
// wording (medium). Each class yields a single issue listing occurrences.
func detectProhibitedPatterns(content string) []models.Issue {
	var issues []models.Issue

	emojiCount := 0
	emDashCount := 0
	for _, r := range content {
		if isEmoji(r) {
			emojiCount++
		}
		if r == emDash {
			emDashCount++
		}
	}

	if emojiCount > 0 {
		issues = append(issues, models.NewIssue(
			"prohibited_pattern",
			models.SeverityCritical,
			fmt.Sprintf("Article contains %d emoji character(s); emojis are not allowed in published content", emojiCount),
			"Remove all emoji characters from the article",
		))
	}
	if emDashCount > 0 {
		issues = append(issues, models.NewIssue(
			"prohibited_pattern",
			models.SeverityHigh,
			fmt.Sprintf("Article contains %d em-dash character(s)", emDashCount),
			"Replace em-dashes with commas, periods, or parentheses",
		))
	}

	if matches := sensationalRe.FindAllString(content, -1); len(matches) > 0 {
		seen := make(map[string]bool)
		var words []string
		for _, m := range matches {
			w := strings.ToLower(m)
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
		issues = append(issues, models.NewIssue(
			"prohibited_pattern",
			models.SeverityMedium,
			fmt.Sprintf("Article uses sensational wording: %s", strings.Join(words, ", ")),
			"Replace sensational words with specific, factual language",
		))
	}

	return issues
}
