package masking

import (
	"log/slog"
)

// Service applies credential masking to text bound for the persisted log
// sink and to stored LLM request/response snapshots. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service with eagerly compiled patterns.
func NewService() *Service {
	s := &Service{patterns: compilePatterns()}
	slog.Debug("Masking service initialized", "patterns", len(s.patterns))
	return s
}

// Mask applies all patterns to the given text and returns the masked result.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	masked := text
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskMap masks every string value in a shallow map. Non-string values are
// left untouched. Returns a new map; the input is not modified.
func (s *Service) MaskMap(data map[string]any) map[string]any {
	if len(data) == 0 {
		return data
	}
	masked := make(map[string]any, len(data))
	for k, v := range data {
		if str, ok := v.(string); ok {
			masked[k] = s.Mask(str)
		} else {
			masked[k] = v
		}
	}
	return masked
}
