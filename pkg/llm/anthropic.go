package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/copymill/copymill/pkg/config"
)

const (
	anthropicVersion = "2023-06-01"

	// The Messages API requires max_tokens; used when the caller passes none.
	anthropicDefaultMaxTokens = 4096
)

// anthropicVendor speaks the Anthropic Messages API.
type anthropicVendor struct {
	providerName string
	baseURL      string
	apiKey       string
	hc           *http.Client
}

func newAnthropicVendor(name string, pc *config.ProviderConfig) *anthropicVendor {
	return &anthropicVendor{
		providerName: name,
		baseURL:      strings.TrimRight(pc.BaseURL, "/"),
		apiKey:       os.Getenv(pc.APIKeyEnv),
		hc:           &http.Client{Timeout: pc.Timeout},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model         string             `json:"model"`
	Messages      []anthropicMessage `json:"messages"`
	System        string             `json:"system,omitempty"`
	MaxTokens     int                `json:"max_tokens"`
	Temperature   *float64           `json:"temperature,omitempty"`
	StopSequences []string           `json:"stop_sequences,omitempty"`
	Stream        bool               `json:"stream,omitempty"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      anthropicUsage `json:"usage"`
}

// anthropicStreamEvent is the union of the SSE event payloads we care about;
// the Type field discriminates.
type anthropicStreamEvent struct {
	Type    string `json:"type"`
	Message *struct {
		Model string         `json:"model"`
		Usage anthropicUsage `json:"usage"`
	} `json:"message,omitempty"`
	Delta *struct {
		Type       string `json:"type"`
		Text       string `json:"text,omitempty"`
		StopReason string `json:"stop_reason,omitempty"`
	} `json:"delta,omitempty"`
	Usage *anthropicUsage `json:"usage,omitempty"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (v *anthropicVendor) buildRequest(req CompletionRequest, stream bool) anthropicRequest {
	messages := make([]anthropicMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := string(m.Role)
		// The Messages API has no system role; system text rides the
		// top-level field.
		if m.Role == RoleSystem {
			continue
		}
		messages = append(messages, anthropicMessage{Role: role, Content: m.Content})
	}

	system := req.SystemPrompt
	for _, m := range req.Messages {
		if m.Role == RoleSystem && m.Content != "" {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	return anthropicRequest{
		Model:         req.Model,
		Messages:      messages,
		System:        system,
		MaxTokens:     maxTokens,
		Temperature:   req.Temperature,
		StopSequences: req.StopSequences,
		Stream:        stream,
	}
}

func (v *anthropicVendor) newHTTPRequest(ctx context.Context, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", v.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	return httpReq, nil
}

func (v *anthropicVendor) apiError(model string, resp *http.Response, body []byte) error {
	message := strings.TrimSpace(string(body))
	var wrapper struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error.Message != "" {
		message = wrapper.Error.Message
	}
	if len(message) > 512 {
		message = message[:512]
	}
	return &ProviderError{
		Provider:   v.providerName,
		Model:      model,
		Kind:       classifyStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    message,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}
}

func (v *anthropicVendor) transportError(model string, err error) error {
	return &ProviderError{
		Provider: v.providerName,
		Model:    model,
		Kind:     ErrKindUpstream,
		Message:  err.Error(),
	}
}

func mapAnthropicStopReason(reason string) string {
	switch reason {
	case "end_turn", "stop_sequence", "":
		return StopReasonStop
	case "max_tokens":
		return StopReasonMaxTokens
	default:
		return reason
	}
}

func (v *anthropicVendor) complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	httpReq, err := v.newHTTPRequest(ctx, v.buildRequest(req, false))
	if err != nil {
		return nil, err
	}

	resp, err := v.hc.Do(httpReq)
	if err != nil {
		return nil, v.transportError(req.Model, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, v.transportError(req.Model, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, v.apiError(req.Model, resp, body)
	}

	var out anthropicResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	var content strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	model := out.Model
	if model == "" {
		model = req.Model
	}
	return &CompletionResult{
		Content:    content.String(),
		Model:      model,
		StopReason: mapAnthropicStopReason(out.StopReason),
		Usage: Usage{
			PromptTokens:     out.Usage.InputTokens,
			CompletionTokens: out.Usage.OutputTokens,
			TotalTokens:      out.Usage.InputTokens + out.Usage.OutputTokens,
		},
	}, nil
}

func (v *anthropicVendor) stream(ctx context.Context, req CompletionRequest, onChunk OnChunk) (*CompletionResult, error) {
	httpReq, err := v.newHTTPRequest(ctx, v.buildRequest(req, true))
	if err != nil {
		return nil, err
	}

	resp, err := v.hc.Do(httpReq)
	if err != nil {
		return nil, v.transportError(req.Model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, v.apiError(req.Model, resp, body)
	}

	var content strings.Builder
	var usage Usage
	model := req.Model
	stopReason := StopReasonStop

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event anthropicStreamEvent
		if err := json.Unmarshal([]byte(line[len("data: "):]), &event); err != nil {
			continue
		}

		switch event.Type {
		case "message_start":
			if event.Message != nil {
				if event.Message.Model != "" {
					model = event.Message.Model
				}
				usage.PromptTokens = event.Message.Usage.InputTokens
			}
		case "content_block_delta":
			if event.Delta != nil && event.Delta.Text != "" {
				content.WriteString(event.Delta.Text)
				if onChunk != nil {
					onChunk(StreamChunk{Delta: event.Delta.Text})
				}
			}
		case "message_delta":
			if event.Delta != nil && event.Delta.StopReason != "" {
				stopReason = mapAnthropicStopReason(event.Delta.StopReason)
			}
			if event.Usage != nil {
				usage.CompletionTokens = event.Usage.OutputTokens
			}
		case "error":
			message := "stream error"
			if event.Error != nil {
				message = event.Error.Message
			}
			return nil, &ProviderError{
				Provider: v.providerName,
				Model:    req.Model,
				Kind:     ErrKindUpstream,
				Message:  message,
			}
		case "message_stop":
			// terminal event; usage totals are already in hand
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, v.transportError(req.Model, fmt.Errorf("stream read: %w", err))
	}

	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	return &CompletionResult{
		Content:    content.String(),
		Model:      model,
		StopReason: stopReason,
		Usage:      usage,
	}, nil
}
