package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are the credential shapes that must never reach persisted
// logs or stored LLM request snapshots. Order matters: more specific patterns
// run before generic ones so the generic sweep sees already-masked text.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name:        "anthropic_api_key",
		pattern:     `sk-ant-[A-Za-z0-9_-]{16,}`,
		replacement: "***MASKED_API_KEY***",
	},
	{
		name:        "openai_api_key",
		pattern:     `sk-[A-Za-z0-9_-]{20,}`,
		replacement: "***MASKED_API_KEY***",
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)bearer\s+[A-Za-z0-9._~+/=-]{16,}`,
		replacement: "Bearer ***MASKED***",
	},
	{
		name:        "url_userinfo",
		pattern:     `([a-zA-Z][a-zA-Z0-9+.-]*://)[^:/\s]+:[^@/\s]+@`,
		replacement: "${1}***:***@",
	},
	{
		name:        "credential_field",
		pattern:     `(?i)("?(?:api[_-]?key|apikey|password|secret|access[_-]?token)"?\s*[:=]\s*"?)[A-Za-z0-9._~+/=-]{8,}("?)`,
		replacement: "${1}***MASKED***${2}",
	},
}

// compilePatterns compiles the built-in pattern set. Invalid patterns are
// logged and skipped rather than failing startup.
func compilePatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.name,
			Regex:       re,
			Replacement: p.replacement,
		})
	}
	return compiled
}
