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

// openAIVendor speaks the OpenAI chat completions protocol. It also covers
// self-hosted OpenAI-compatible endpoints configured with a custom base URL.
type openAIVendor struct {
	providerName string
	baseURL      string
	apiKey       string
	hc           *http.Client
}

func newOpenAIVendor(name string, pc *config.ProviderConfig) *openAIVendor {
	return &openAIVendor{
		providerName: name,
		baseURL:      strings.TrimRight(pc.BaseURL, "/"),
		apiKey:       os.Getenv(pc.APIKeyEnv),
		hc:           &http.Client{Timeout: pc.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model         string             `json:"model"`
	Messages      []chatMessage      `json:"messages"`
	Temperature   *float64           `json:"temperature,omitempty"`
	MaxTokens     *int               `json:"max_tokens,omitempty"`
	Stop          []string           `json:"stop,omitempty"`
	Stream        bool               `json:"stream,omitempty"`
	StreamOptions *chatStreamOptions `json:"stream_options,omitempty"`
}

type chatStreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage chatUsage `json:"usage"`
}

type chatStreamResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *chatUsage `json:"usage,omitempty"`
}

func (v *openAIVendor) buildRequest(req CompletionRequest, stream bool) chatRequest {
	messages := make([]chatMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: string(RoleSystem), Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	out := chatRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		Stop:        req.StopSequences,
		Stream:      stream,
	}
	if req.MaxTokens > 0 {
		mt := req.MaxTokens
		out.MaxTokens = &mt
	}
	if stream {
		out.StreamOptions = &chatStreamOptions{IncludeUsage: true}
	}
	return out
}

func (v *openAIVendor) newHTTPRequest(ctx context.Context, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if v.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+v.apiKey)
	}
	return httpReq, nil
}

// apiError converts a non-2xx response into a classified ProviderError,
// extracting the vendor's error message when the body carries one.
func (v *openAIVendor) apiError(model string, resp *http.Response, body []byte) error {
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

func (v *openAIVendor) transportError(model string, err error) error {
	return &ProviderError{
		Provider: v.providerName,
		Model:    model,
		Kind:     ErrKindUpstream,
		Message:  err.Error(),
	}
}

func mapOpenAIFinishReason(reason string) string {
	if reason == "length" {
		return StopReasonMaxTokens
	}
	if reason == "" {
		return StopReasonStop
	}
	return reason
}

func (v *openAIVendor) complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
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

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, &ProviderError{
			Provider:   v.providerName,
			Model:      req.Model,
			Kind:       ErrKindUpstream,
			StatusCode: resp.StatusCode,
			Message:    "no completion choices returned",
		}
	}

	choice := out.Choices[0]
	model := out.Model
	if model == "" {
		model = req.Model
	}
	return &CompletionResult{
		Content:    choice.Message.Content,
		Model:      model,
		StopReason: mapOpenAIFinishReason(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
	}, nil
}

func (v *openAIVendor) stream(ctx context.Context, req CompletionRequest, onChunk OnChunk) (*CompletionResult, error) {
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
		data := line[len("data: "):]
		if data == "[DONE]" {
			break
		}

		var chunk chatStreamResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		if chunk.Usage != nil {
			usage = Usage{
				PromptTokens:     chunk.Usage.PromptTokens,
				CompletionTokens: chunk.Usage.CompletionTokens,
				TotalTokens:      chunk.Usage.TotalTokens,
			}
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		choice := chunk.Choices[0]
		if choice.Delta.Content != "" {
			content.WriteString(choice.Delta.Content)
			if onChunk != nil {
				onChunk(StreamChunk{Delta: choice.Delta.Content})
			}
		}
		if choice.FinishReason != "" {
			stopReason = mapOpenAIFinishReason(choice.FinishReason)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, v.transportError(req.Model, fmt.Errorf("stream read: %w", err))
	}

	return &CompletionResult{
		Content:    content.String(),
		Model:      model,
		StopReason: stopReason,
		Usage:      usage,
	}, nil
}
