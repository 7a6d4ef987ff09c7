package llm

import (
	"log/slog"
	"strings"
)

// CalculateCost prices usage against the configured per-million-token table.
// Lookup is exact first, then longest prefix (so "gpt-4o" covers dated
// variants like "gpt-4o-2024-08-06"). Unknown models cost 0 and log a
// warning once per model.
func (c *Client) CalculateCost(model string, usage Usage) float64 {
	pricing, ok := c.lookupPricing(model)
	if !ok {
		if _, warned := c.unpriced.LoadOrStore(model, struct{}{}); !warned {
			slog.Warn("no pricing for model, reporting zero cost", "model", model)
		}
		return 0
	}
	return float64(usage.PromptTokens)*pricing.InputPer1M/1e6 +
		float64(usage.CompletionTokens)*pricing.OutputPer1M/1e6
}

func (c *Client) lookupPricing(model string) (pricing modelPricing, ok bool) {
	if p, exact := c.cfg.Pricing[model]; exact {
		return modelPricing{p.InputPer1M, p.OutputPer1M}, true
	}
	bestLen := 0
	for prefix, p := range c.cfg.Pricing {
		if strings.HasPrefix(model, prefix) && len(prefix) > bestLen {
			pricing = modelPricing{p.InputPer1M, p.OutputPer1M}
			bestLen = len(prefix)
		}
	}
	return pricing, bestLen > 0
}

type modelPricing struct {
	InputPer1M  float64
	OutputPer1M float64
}
