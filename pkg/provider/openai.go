package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amiantos/ursceal/pkg/models"
)

// Flavor selects the dialect of the chat-completions protocol.
type Flavor string

const (
	FlavorOpenAI     Flavor = "openai"
	FlavorDeepSeek   Flavor = "deepseek"
	FlavorOpenRouter Flavor = "openrouter"
)

const (
	openRouterReferer = "https://github.com/amiantos/ursceal"
	openRouterTitle   = "Ursceal"
)

// OpenAICompatible talks to any {baseURL}/chat/completions endpoint.
type OpenAICompatible struct {
	flavor Flavor
	cfg    models.APIConfig
	client *http.Client
}

// NewOpenAICompatible builds a chat-completions provider for the given
// dialect.
func NewOpenAICompatible(flavor Flavor, cfg models.APIConfig) *OpenAICompatible {
	return &OpenAICompatible{
		flavor: flavor,
		cfg:    cfg,
		client: &http.Client{},
	}
}

// SetHTTPClient replaces the HTTP client, used by tests and by callers
// that need custom timeouts.
func (o *OpenAICompatible) SetHTTPClient(c *http.Client) { o.client = c }

func (o *OpenAICompatible) Name() string { return string(o.flavor) }

func (o *OpenAICompatible) ValidateConfig() error {
	if o.cfg.APIKey == "" {
		return NewError(CodeAuthError, "API key is required")
	}
	if o.cfg.BaseURL == "" {
		return NewError(CodeAPIError, "base URL is required")
	}
	if o.cfg.Model == "" {
		return NewError(CodeModelNotFound, "model is required")
	}
	return nil
}

func (o *OpenAICompatible) Capabilities() Capabilities {
	return Capabilities{
		Streaming:        true,
		Reasoning:        o.flavor == FlavorDeepSeek || o.flavor == FlavorOpenRouter,
		MaxContextWindow: 128000,
	}
}

// usesCompletionTokensParam reports whether the model takes
// max_completion_tokens instead of max_tokens.
func usesCompletionTokensParam(model string) bool {
	m := strings.ToLower(model)
	return strings.HasPrefix(m, "gpt-5") ||
		strings.HasPrefix(m, "o1") ||
		strings.HasPrefix(m, "o3") ||
		strings.HasPrefix(m, "chatgpt-")
}

func (o *OpenAICompatible) buildBody(p Params, stream bool) map[string]any {
	body := map[string]any{
		"model": o.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": p.SystemPrompt},
			{"role": "user", "content": p.UserPrompt},
		},
		"stream":      stream,
		"temperature": p.Temperature,
	}
	if usesCompletionTokensParam(o.cfg.Model) {
		body["max_completion_tokens"] = p.MaxTokens
	} else {
		body["max_tokens"] = p.MaxTokens
	}
	if p.TopP != nil {
		body["top_p"] = *p.TopP
	}
	if p.FrequencyPenalty != nil {
		body["frequency_penalty"] = *p.FrequencyPenalty
	}
	if p.PresencePenalty != nil {
		body["presence_penalty"] = *p.PresencePenalty
	}
	if len(p.StopSequences) > 0 {
		body["stop"] = p.StopSequences
	}
	if o.flavor == FlavorOpenRouter && o.cfg.DisableFallback {
		body["route"] = "fallback"
	}
	return body
}

func (o *OpenAICompatible) newRequest(ctx context.Context, p Params, stream bool) (*http.Request, error) {
	payload, err := json.Marshal(o.buildBody(p, stream))
	if err != nil {
		return nil, err
	}
	url := strings.TrimSuffix(o.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	if o.flavor == FlavorOpenRouter {
		req.Header.Set("HTTP-Referer", openRouterReferer)
		req.Header.Set("X-Title", openRouterTitle)
		if len(o.cfg.ProviderPreference) > 0 {
			req.Header.Set("X-OpenRouter-Provider", strings.Join(o.cfg.ProviderPreference, ","))
		}
	}
	return req, nil
}

type chatMessage struct {
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content"`
	Reasoning        string `json:"reasoning"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	Delta        chatDelta   `json:"delta"`
	FinishReason *string     `json:"finish_reason"`
}

type chatDelta struct {
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content"`
	Reasoning        string `json:"reasoning"`
	ReasoningDetails []struct {
		Text string `json:"text"`
	} `json:"reasoning_details"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAICompatible) Generate(ctx context.Context, p Params) (*Response, error) {
	req, err := o.newRequest(ctx, p, false)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(resp)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, Classify(fmt.Errorf("decoding response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, NewError(CodeAPIError, "response contained no choices")
	}

	msg := parsed.Choices[0].Message
	reasoning := msg.ReasoningContent
	if reasoning == "" {
		reasoning = msg.Reasoning
	}
	return &Response{Content: msg.Content, Reasoning: reasoning}, nil
}

func (o *OpenAICompatible) GenerateStream(ctx context.Context, p Params) (<-chan StreamEvent, error) {
	req, err := o.newRequest(ctx, p, true)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, classifyHTTP(resp)
	}

	out := make(chan StreamEvent, 8)
	go func() {
		defer close(out)
		defer resp.Body.Close()
		streamSSE(ctx, resp.Body, transformChatDelta, out)
	}()
	return out, nil
}

// transformChatDelta decodes one chat-completions streaming payload,
// covering the DeepSeek and OpenRouter reasoning channel variants.
func transformChatDelta(data []byte) (*Chunk, bool, error) {
	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, false, fmt.Errorf("decoding stream delta: %w", err)
	}
	if parsed.Error != nil {
		return nil, false, fmt.Errorf("%s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, false, nil
	}

	choice := parsed.Choices[0]
	reasoning := choice.Delta.ReasoningContent
	if reasoning == "" {
		reasoning = choice.Delta.Reasoning
	}
	if reasoning == "" && len(choice.Delta.ReasoningDetails) > 0 {
		reasoning = choice.Delta.ReasoningDetails[0].Text
	}

	chunk := &Chunk{Content: choice.Delta.Content, Reasoning: reasoning}
	done := choice.FinishReason != nil
	if chunk.Content == "" && chunk.Reasoning == "" && !done {
		return nil, false, nil
	}
	return chunk, done, nil
}

// classifyHTTP drains an error response body and classifies status + body.
func classifyHTTP(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return Classify(fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
}
