package llm

import (
	"log/slog"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// loadEncoding fetches the cl100k_base encoding once. It needs the BPE
// vocabulary, which tiktoken may download on first use; offline processes
// fall back to the length estimate.
func loadEncoding() *tiktoken.Tiktoken {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			slog.Warn("token encoding unavailable, using length estimate", "error", err)
			return
		}
		encoding = enc
	})
	return encoding
}

// EstimateTokens returns a coarse token count for text. Used for logging and
// usage fallback, never for gating.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	if enc := loadEncoding(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	// Roughly four characters per token for English prose.
	return (len(text) + 3) / 4
}

// EstimateTokens implements Provider.
func (c *Client) EstimateTokens(text string) int {
	return EstimateTokens(text)
}

// estimateRequestTokens approximates the prompt size of a request.
func estimateRequestTokens(req CompletionRequest) int {
	total := EstimateTokens(req.SystemPrompt)
	for _, m := range req.Messages {
		total += EstimateTokens(m.Content)
	}
	return total
}
