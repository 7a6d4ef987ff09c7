package jsonrepair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid object unchanged",
			input:    `{"title":"Go Basics","score":92}`,
			expected: `{"title":"Go Basics","score":92}`,
		},
		{
			name:     "valid array unchanged",
			input:    `["a","b"]`,
			expected: `["a","b"]`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n {\"ok\":true} \n ",
			expected: `{"ok":true}`,
		},
		{
			name:     "json code fence stripped",
			input:    "```json\n{\"ok\":true}\n```",
			expected: `{"ok":true}`,
		},
		{
			name:     "bare code fence stripped",
			input:    "```\n{\"ok\":true}\n```",
			expected: `{"ok":true}`,
		},
		{
			name:     "prose before and after discarded",
			input:    `Here is the article: {"title":"X"} Let me know if you need changes.`,
			expected: `{"title":"X"}`,
		},
		{
			name:     "trailing comma in object removed",
			input:    `{"a":1,"b":2,}`,
			expected: `{"a":1,"b":2}`,
		},
		{
			name:     "trailing comma in array removed",
			input:    `{"items":["x","y",]}`,
			expected: `{"items":["x","y"]}`,
		},
		{
			name:     "trailing comma with whitespace removed",
			input:    "{\"a\":1,\n}",
			expected: "{\"a\":1\n}",
		},
		{
			name:     "smart quotes replaced",
			input:    `{“title”:“Hello”}`,
			expected: `{"title":"Hello"}`,
		},
		{
			name:     "raw newline in string escaped",
			input:    "{\"body\":\"line one\nline two\"}",
			expected: `{"body":"line one\nline two"}`,
		},
		{
			name:     "raw tab in string escaped",
			input:    "{\"body\":\"a\tb\"}",
			expected: `{"body":"a\tb"}`,
		},
		{
			name:     "braces inside strings ignored",
			input:    `noise {"code":"if (x) { y(); }"} trailing`,
			expected: `{"code":"if (x) { y(); }"}`,
		},
		{
			name:     "escaped quotes inside strings ignored",
			input:    `{"quote":"she said \"hi\""} extra`,
			expected: `{"quote":"she said \"hi\""}`,
		},
		{
			name:     "nested objects matched to outer close",
			input:    `{"a":{"b":[1,2,{"c":3}]}} done`,
			expected: `{"a":{"b":[1,2,{"c":3}]}}`,
		},
		{
			name:     "truncated input kept from opener",
			input:    `{"a":1,"b":`,
			expected: `{"a":1,"b":`,
		},
		{
			name:     "no json returns trimmed input",
			input:    "  just prose  ",
			expected: "just prose",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Repair(tt.input))
		})
	}
}

// Already-valid JSON must come back byte-for-byte, even when it contains
// constructs the heuristics would otherwise touch.
func TestRepair_ValidInputUntouched(t *testing.T) {
	inputs := []string{
		`{"text":"a, ] comma before bracket in a string"}`,
		`{"text":"fake “smart” quotes already escaped"}`,
		`{"nested":{"deep":["values",{"x":1}]}}`,
	}
	for _, in := range inputs {
		require.True(t, json.Valid([]byte(in)))
		assert.Equal(t, in, Repair(in))
	}
}

func TestParse(t *testing.T) {
	type article struct {
		Title string `json:"title"`
		Words int    `json:"words"`
	}

	t.Run("repairs and decodes", func(t *testing.T) {
		var out article
		raw := "```json\n{\"title\":\"Go Concurrency\",\"words\":1500,}\n```"
		require.NoError(t, Parse(raw, &out))
		assert.Equal(t, "Go Concurrency", out.Title)
		assert.Equal(t, 1500, out.Words)
	})

	t.Run("unrecoverable input errors", func(t *testing.T) {
		var out article
		err := Parse(`{"title": unquoted}`, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("plain prose errors", func(t *testing.T) {
		var out article
		require.Error(t, Parse("I could not produce the article.", &out))
	})
}
