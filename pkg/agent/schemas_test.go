package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestWriterOutputSchema(t *testing.T) {
	schema := WriterOutputSchema()
	assert.Equal(t, "WriterOutput", schema.Name())

	valid := map[string]any{
		"title":    "T",
		"content":  "body",
		"headings": []map[string]any{{"level": 2, "text": "Intro"}},
	}
	assert.NoError(t, schema.Validate(mustJSON(t, valid)))

	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing title", func(m map[string]any) { m["title"] = "" }},
		{"missing content", func(m map[string]any) { m["content"] = "" }},
		{"heading level too low", func(m map[string]any) {
			m["headings"] = []map[string]any{{"level": 1, "text": "H1"}}
		}},
		{"heading level too high", func(m map[string]any) {
			m["headings"] = []map[string]any{{"level": 5, "text": "deep"}}
		}},
		{"heading text empty", func(m map[string]any) {
			m["headings"] = []map[string]any{{"level": 2, "text": ""}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{
				"title":    "T",
				"content":  "body",
				"headings": []map[string]any{{"level": 2, "text": "Intro"}},
			}
			tt.mutate(m)
			assert.Error(t, schema.Validate(mustJSON(t, m)))
		})
	}

	assert.Error(t, schema.Validate(json.RawMessage(`{"title": 7}`)), "shape mismatch")
}

func TestSEOOutputSchema(t *testing.T) {
	schema := SEOOutputSchema()
	assert.Equal(t, "SEOOutput", schema.Name())

	valid := map[string]any{
		"metaTitle":         "T",
		"metaDescription":   "D",
		"optimizationScore": 80,
	}
	assert.NoError(t, schema.Validate(mustJSON(t, valid)))

	invalid := []map[string]any{
		{"metaTitle": "", "metaDescription": "D", "optimizationScore": 80},
		{"metaTitle": "T", "metaDescription": "", "optimizationScore": 80},
		{"metaTitle": "T", "metaDescription": "D", "optimizationScore": 101},
		{"metaTitle": "T", "metaDescription": "D", "optimizationScore": -1},
		{"metaTitle": "T", "metaDescription": "D", "optimizationScore": 80, "keywordDensity": map[string]any{"percentage": -0.5}},
	}
	for i, m := range invalid {
		assert.Error(t, schema.Validate(mustJSON(t, m)), "case %d", i)
	}
}

func TestQAScoringSchema(t *testing.T) {
	schema := QAScoringSchema()
	assert.Equal(t, "QAScoring", schema.Name())

	valid := map[string]any{
		"dimensionScores": map[string]int{
			"readability": 80, "seo": 75, "accuracy": 90, "engagement": 70, "brandVoice": 85,
		},
		"issues": []map[string]any{
			{"category": "style", "severity": "medium", "description": "passive voice"},
		},
		"feedback": "good",
	}
	assert.NoError(t, schema.Validate(mustJSON(t, valid)))

	t.Run("score out of range", func(t *testing.T) {
		m := map[string]any{"dimensionScores": map[string]int{"readability": 101}}
		assert.Error(t, schema.Validate(mustJSON(t, m)))
	})
	t.Run("bad severity", func(t *testing.T) {
		m := map[string]any{
			"issues": []map[string]any{{"category": "style", "severity": "fatal", "description": "x"}},
		}
		assert.Error(t, schema.Validate(mustJSON(t, m)))
	})
	t.Run("missing description", func(t *testing.T) {
		m := map[string]any{
			"issues": []map[string]any{{"category": "style", "severity": "low", "description": ""}},
		}
		assert.Error(t, schema.Validate(mustJSON(t, m)))
	})
}

func TestStaticSchema(t *testing.T) {
	schema := staticSchema("ResearchOutput")
	assert.Equal(t, "ResearchOutput", schema.Name())
	assert.NoError(t, schema.Validate(json.RawMessage(`{"anything": true}`)))
}
