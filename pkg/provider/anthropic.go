package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amiantos/ursceal/pkg/models"
)

const anthropicVersion = "2023-06-01"

// Anthropic talks to the {baseURL}/messages API.
type Anthropic struct {
	cfg    models.APIConfig
	client *http.Client
}

// NewAnthropic builds a messages-API provider.
func NewAnthropic(cfg models.APIConfig) *Anthropic {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	return &Anthropic{cfg: cfg, client: &http.Client{}}
}

// SetHTTPClient replaces the HTTP client, used by tests.
func (a *Anthropic) SetHTTPClient(c *http.Client) { a.client = c }

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) ValidateConfig() error {
	if a.cfg.APIKey == "" {
		return NewError(CodeAuthError, "API key is required")
	}
	if a.cfg.Model == "" {
		return NewError(CodeModelNotFound, "model is required")
	}
	return nil
}

func (a *Anthropic) Capabilities() Capabilities {
	return Capabilities{
		Streaming:        true,
		Reasoning:        false,
		VisionAPI:        true,
		MaxContextWindow: 200000,
	}
}

// clampTemperature bounds temperature to the [0, 1.0] range the messages
// API accepts.
func clampTemperature(t float64) float64 {
	if t > 1.0 {
		slog.Warn("Clamping temperature for anthropic provider", "requested", t, "clamped", 1.0)
		return 1.0
	}
	if t < 0 {
		return 0
	}
	return t
}

func (a *Anthropic) buildBody(p Params, stream bool) map[string]any {
	body := map[string]any{
		"model":       a.cfg.Model,
		"system":      p.SystemPrompt,
		"messages":    []map[string]string{{"role": "user", "content": p.UserPrompt}},
		"max_tokens":  p.MaxTokens,
		"temperature": clampTemperature(p.Temperature),
	}
	if p.TopP != nil {
		body["top_p"] = *p.TopP
	}
	if p.TopK != nil {
		body["top_k"] = *p.TopK
	}
	if len(p.StopSequences) > 0 {
		body["stop_sequences"] = p.StopSequences
	}
	if stream {
		body["stream"] = true
	}
	return body
}

func (a *Anthropic) newRequest(ctx context.Context, p Params, stream bool) (*http.Request, error) {
	payload, err := json.Marshal(a.buildBody(p, stream))
	if err != nil {
		return nil, err
	}
	url := strings.TrimSuffix(a.cfg.BaseURL, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	return req, nil
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (a *Anthropic) Generate(ctx context.Context, p Params) (*Response, error) {
	req, err := a.newRequest(ctx, p, false)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(resp)
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, Classify(fmt.Errorf("decoding response: %w", err))
	}
	if parsed.Error != nil {
		return nil, Classify(fmt.Errorf("%s", parsed.Error.Message))
	}

	var sb strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return &Response{Content: sb.String()}, nil
}

func (a *Anthropic) GenerateStream(ctx context.Context, p Params) (<-chan StreamEvent, error) {
	req, err := a.newRequest(ctx, p, true)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := a.client.Do(req)
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
		streamSSE(ctx, resp.Body, transformAnthropicEvent, out)
	}()
	return out, nil
}

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// transformAnthropicEvent maps messages-API stream events onto chunks:
// content_block_delta/text_delta carries text, message_stop finishes.
func transformAnthropicEvent(data []byte) (*Chunk, bool, error) {
	var ev anthropicStreamEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, false, fmt.Errorf("decoding stream event: %w", err)
	}
	switch ev.Type {
	case "content_block_delta":
		if ev.Delta.Type != "text_delta" || ev.Delta.Text == "" {
			return nil, false, nil
		}
		return &Chunk{Content: ev.Delta.Text}, false, nil
	case "message_stop":
		return &Chunk{}, true, nil
	case "error":
		msg := "anthropic stream error"
		if ev.Error != nil {
			msg = ev.Error.Message
		}
		return nil, false, fmt.Errorf("%s", msg)
	}
	return nil, false, nil
}
