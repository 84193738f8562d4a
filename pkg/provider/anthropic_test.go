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

func TestAnthropic_TemperatureClamp(t *testing.T) {
	a := NewAnthropic(models.APIConfig{Model: "claude-sonnet-4-5"})

	tests := []struct {
		in   float64
		want float64
	}{
		{0.7, 0.7},
		{1.0, 1.0},
		{1.5, 1.0},
		{2.0, 1.0},
		{-0.5, 0},
	}
	for _, tt := range tests {
		body := a.buildBody(Params{Temperature: tt.in}, false)
		assert.Equal(t, tt.want, body["temperature"], "temperature %v", tt.in)
	}
}

func TestAnthropic_RequestShape(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "It was "},
				{"type": "tool_use", "id": "x"},
				{"type": "text", "text": "a dark night."},
			},
		})
	}))
	defer srv.Close()

	topK := 40
	a := NewAnthropic(models.APIConfig{APIKey: "sk-ant", BaseURL: srv.URL, Model: "claude-sonnet-4-5"})
	resp, err := a.Generate(context.Background(), Params{
		SystemPrompt: "sys", UserPrompt: "user", MaxTokens: 100, TopK: &topK,
	})
	require.NoError(t, err)

	// Only text blocks are concatenated.
	assert.Equal(t, "It was a dark night.", resp.Content)
	assert.Equal(t, "sk-ant", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, "sys", gotBody["system"])
	assert.Equal(t, float64(40), gotBody["top_k"])
	assert.NotContains(t, gotBody, "stream")
}

func TestAnthropic_Streaming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(
			"event: message_start\n" +
				"data: {\"type\":\"message_start\"}\n\n" +
				"data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"Hello\"}}\n\n" +
				"data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\" world\"}}\n\n" +
				"data: {\"type\":\"message_stop\"}\n\n"))
	}))
	defer srv.Close()

	a := NewAnthropic(models.APIConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	stream, err := a.GenerateStream(context.Background(), Params{})
	require.NoError(t, err)

	var content string
	var finished bool
	for ev := range stream {
		require.NoError(t, ev.Err)
		content += ev.Chunk.Content
		finished = ev.Chunk.Finished
	}
	assert.Equal(t, "Hello world", content)
	assert.True(t, finished)
}

func TestAnthropic_StreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(
			"data: {\"type\":\"error\",\"error\":{\"message\":\"Overloaded\"}}\n\n"))
	}))
	defer srv.Close()

	a := NewAnthropic(models.APIConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})
	stream, err := a.GenerateStream(context.Background(), Params{})
	require.NoError(t, err)

	var last StreamEvent
	for ev := range stream {
		last = ev
	}
	require.Error(t, last.Err)
	var perr *Error
	require.ErrorAs(t, last.Err, &perr)
	assert.Equal(t, CodeOverloaded, perr.Code)
}

func TestAnthropic_DefaultBaseURL(t *testing.T) {
	a := NewAnthropic(models.APIConfig{APIKey: "k", Model: "m"})
	assert.Equal(t, "https://api.anthropic.com/v1", a.cfg.BaseURL)
}
