package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/pkg/models"
)

func TestBuildBody_MaxTokensParamSelection(t *testing.T) {
	tests := []struct {
		model          string
		wantCompletion bool
	}{
		{"gpt-4o", false},
		{"gpt-5", true},
		{"GPT-5-mini", true},
		{"o1-preview", true},
		{"o3", true},
		{"chatgpt-4o-latest", true},
		{"deepseek-chat", false},
		{"llama-3-70b", false},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			o := NewOpenAICompatible(FlavorOpenAI, models.APIConfig{Model: tt.model})
			body := o.buildBody(Params{MaxTokens: 100}, false)
			if tt.wantCompletion {
				assert.Contains(t, body, "max_completion_tokens")
				assert.NotContains(t, body, "max_tokens")
			} else {
				assert.Contains(t, body, "max_tokens")
				assert.NotContains(t, body, "max_completion_tokens")
			}
		})
	}
}

func TestBuildBody_OptionalParams(t *testing.T) {
	topP := 0.9
	freq := 0.5
	o := NewOpenAICompatible(FlavorOpenAI, models.APIConfig{Model: "gpt-4o"})

	body := o.buildBody(Params{
		MaxTokens:        100,
		Temperature:      0.7,
		TopP:             &topP,
		FrequencyPenalty: &freq,
		StopSequences:    []string{"\n\n"},
	}, true)

	assert.Equal(t, true, body["stream"])
	assert.Equal(t, 0.9, body["top_p"])
	assert.Equal(t, 0.5, body["frequency_penalty"])
	assert.NotContains(t, body, "presence_penalty")
	assert.Equal(t, []string{"\n\n"}, body["stop"])
}

func TestBuildBody_OpenRouterRouteFallback(t *testing.T) {
	o := NewOpenAICompatible(FlavorOpenRouter, models.APIConfig{Model: "m", DisableFallback: true})
	body := o.buildBody(Params{}, false)
	assert.Equal(t, "fallback", body["route"])

	o = NewOpenAICompatible(FlavorOpenRouter, models.APIConfig{Model: "m"})
	assert.NotContains(t, o.buildBody(Params{}, false), "route")
}

func TestGenerate_NonStreaming(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"content":           "Once upon a time.",
					"reasoning_content": "thinking...",
				},
			}},
		})
	}))
	defer srv.Close()

	o := NewOpenAICompatible(FlavorDeepSeek, models.APIConfig{
		APIKey: "sk-test", BaseURL: srv.URL, Model: "deepseek-chat",
	})
	resp, err := o.Generate(context.Background(), Params{MaxTokens: 50})
	require.NoError(t, err)
	assert.Equal(t, "Once upon a time.", resp.Content)
	assert.Equal(t, "thinking...", resp.Reasoning)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestGenerateStream_SSE(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(
			"data: {\"choices\":[{\"delta\":{\"content\":\"Once \"}}]}\n\n" +
				": keepalive comment\n\n" +
				"data: {\"choices\":[{\"delta\":{\"reasoning_content\":\"hmm\"}}]}\n\n" +
				"data: {\"choices\":[{\"delta\":{\"content\":\"upon.\"},\"finish_reason\":\"stop\"}]}\n\n" +
				"data: [DONE]\n\n"))
	}))
	defer srv.Close()

	o := NewOpenAICompatible(FlavorDeepSeek, models.APIConfig{
		APIKey: "k", BaseURL: srv.URL, Model: "deepseek-chat",
	})
	stream, err := o.GenerateStream(context.Background(), Params{})
	require.NoError(t, err)

	var events []StreamEvent
	for ev := range stream {
		events = append(events, ev)
	}
	require.Len(t, events, 3)
	assert.Equal(t, "Once ", events[0].Chunk.Content)
	assert.Equal(t, "hmm", events[1].Chunk.Reasoning)
	assert.Equal(t, "upon.", events[2].Chunk.Content)
	assert.True(t, events[2].Chunk.Finished)
}

func TestGenerateStream_OpenRouterHeaders(t *testing.T) {
	var referer, title, pref string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		referer = r.Header.Get("HTTP-Referer")
		title = r.Header.Get("X-Title")
		pref = r.Header.Get("X-OpenRouter-Provider")
		_, _ = w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer srv.Close()

	o := NewOpenAICompatible(FlavorOpenRouter, models.APIConfig{
		APIKey: "k", BaseURL: srv.URL, Model: "m",
		ProviderPreference: []string{"deepinfra", "together"},
	})
	stream, err := o.GenerateStream(context.Background(), Params{})
	require.NoError(t, err)
	for range stream {
	}

	assert.NotEmpty(t, referer)
	assert.NotEmpty(t, title)
	assert.Equal(t, "deepinfra,together", pref)
}

func TestGenerate_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode ErrorCode
	}{
		{"auth", http.StatusUnauthorized, "Unauthorized", CodeAuthError},
		{"rate limit", http.StatusTooManyRequests, "rate limit exceeded", CodeRateLimit},
		{"credits", http.StatusPaymentRequired, "insufficient credits", CodeInsufficientCredits},
		{"model", http.StatusNotFound, "model not found", CodeModelNotFound},
		{"overloaded", http.StatusServiceUnavailable, "engine overloaded", CodeOverloaded},
		{"generic", http.StatusInternalServerError, "boom", CodeAPIError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			o := NewOpenAICompatible(FlavorOpenAI, models.APIConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"})
			_, err := o.Generate(context.Background(), Params{})
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantCode, perr.Code)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	o := NewOpenAICompatible(FlavorOpenAI, models.APIConfig{})
	require.Error(t, o.ValidateConfig())

	o = NewOpenAICompatible(FlavorOpenAI, models.APIConfig{APIKey: "k", BaseURL: "http://x", Model: "m"})
	require.NoError(t, o.ValidateConfig())
}
