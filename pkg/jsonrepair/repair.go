// Package jsonrepair is a tolerant intermediary between an LLM's text output
// and a JSON decoder. It strips the noise models wrap around JSON (prose,
// markdown fences) and applies bounded fixes for the invalid artifacts they
// commonly produce. Every pass is a single scan; nothing here loops until
// convergence.
package jsonrepair

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Repair extracts and cleans the JSON value embedded in raw LLM text.
// Input that already parses is returned as-is (modulo surrounding noise).
func Repair(raw string) string {
	s := strings.TrimSpace(raw)
	s = stripFences(s)
	s = extractValue(s)

	// Fast path: already valid, return unchanged.
	if json.Valid([]byte(s)) {
		return s
	}

	s = replaceSmartQuotes(s)
	s = escapeControlChars(s)
	s = removeTrailingCommas(s)
	return s
}

// Parse repairs raw and unmarshals the result into target.
func Parse(raw string, target any) error {
	repaired := Repair(raw)
	if err := json.Unmarshal([]byte(repaired), target); err != nil {
		return fmt.Errorf("response is not valid JSON after repair: %w", err)
	}
	return nil
}

// stripFences removes a markdown code fence when the entire body is wrapped
// in one (``` or ```json).
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	// Optional language tag up to the first newline
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		tag := strings.TrimSpace(rest[:idx])
		if tag == "" || tag == "json" || tag == "JSON" {
			rest = rest[idx+1:]
		}
	}
	rest = strings.TrimSpace(rest)
	if strings.HasSuffix(rest, "```") {
		rest = strings.TrimSpace(rest[:len(rest)-3])
	}
	return rest
}

// extractValue locates the first '{' or '[' and its matching closer using a
// stack that respects string literals and escapes, discarding anything
// outside. Truncated input (no matching closer) is returned from the opener
// onward so the parse error points at the real problem.
func extractValue(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}

	var stack []byte
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
			// string content, brackets inside do not count
		case ch == '{' || ch == '[':
			stack = append(stack, ch)
		case ch == '}' || ch == ']':
			if len(stack) == 0 {
				return s[start : i+1]
			}
			open := stack[len(stack)-1]
			if (ch == '}' && open == '{') || (ch == ']' && open == '[') {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

// replaceSmartQuotes swaps typographic quotes for their ASCII forms. Models
// most often emit them as accidental delimiters.
func replaceSmartQuotes(s string) string {
	return smartQuoteReplacer.Replace(s)
}

// escapeControlChars escapes raw newlines, carriage returns, and tabs that
// appear inside string literals.
func escapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			b.WriteByte(ch)
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
			b.WriteByte(ch)
		case ch == '"':
			inString = !inString
			b.WriteByte(ch)
		case inString && ch == '\n':
			b.WriteString(`\n`)
		case inString && ch == '\r':
			b.WriteString(`\r`)
		case inString && ch == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// removeTrailingCommas drops commas that directly precede a closing bracket,
// respecting string literals.
func removeTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			b.WriteByte(ch)
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
			b.WriteByte(ch)
			continue
		case ch == '"':
			inString = !inString
		case !inString && ch == ',':
			// Look ahead past whitespace; drop the comma if a closer follows.
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}
