package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/pkg/config"
	"github.com/amiantos/ursceal/pkg/generation"
	"github.com/amiantos/ursceal/pkg/provider"
)

// stubGenerator feeds canned stream events, or a synchronous setup error.
type stubGenerator struct {
	events   []provider.StreamEvent
	setupErr error
	gotReq   generation.Request
}

func (g *stubGenerator) Generate(_ context.Context, req generation.Request) (<-chan provider.StreamEvent, error) {
	g.gotReq = req
	if g.setupErr != nil {
		return nil, g.setupErr
	}
	out := make(chan provider.StreamEvent, len(g.events))
	for _, ev := range g.events {
		out <- ev
	}
	close(out)
	return out, nil
}

func newTestServer(t *testing.T, gen Generator) *Server {
	t.Helper()
	cfg, err := config.Load(context.Background(), "/nonexistent/ursceal.yaml")
	require.NoError(t, err)
	return NewServer(cfg, nil, nil, nil, nil, nil, nil, gen)
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGenerateHandler_SSEHappyPath(t *testing.T) {
	gen := &stubGenerator{events: []provider.StreamEvent{
		{Chunk: provider.Chunk{Content: "Once "}},
		{Chunk: provider.Chunk{Content: "upon a time.", Finished: true}},
	}}
	s := newTestServer(t, gen)

	rec := postJSON(t, s, "/api/generate", `{"storyId":"s1","type":"continue"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

	want := "data: {\"reasoning\":null,\"content\":\"Once \",\"finished\":false}\n\n" +
		"data: {\"reasoning\":null,\"content\":\"upon a time.\",\"finished\":true}\n\n" +
		"data: [DONE]\n\n"
	assert.Equal(t, want, rec.Body.String())

	assert.Equal(t, "s1", gen.gotReq.StoryID)
	assert.Equal(t, "continue", gen.gotReq.Type)
}

func TestGenerateHandler_ReasoningChannel(t *testing.T) {
	gen := &stubGenerator{events: []provider.StreamEvent{
		{Chunk: provider.Chunk{Reasoning: "thinking"}},
		{Chunk: provider.Chunk{Content: "done.", Finished: true}},
	}}
	s := newTestServer(t, gen)

	rec := postJSON(t, s, "/api/generate", `{"storyId":"s1","type":"continue"}`)
	assert.Contains(t, rec.Body.String(),
		"data: {\"reasoning\":\"thinking\",\"content\":null,\"finished\":false}\n\n")
}

func TestGenerateHandler_MidStreamError(t *testing.T) {
	gen := &stubGenerator{events: []provider.StreamEvent{
		{Chunk: provider.Chunk{Content: "partial"}},
		{Err: provider.NewError(provider.CodeOverloaded, "engine overloaded")},
	}}
	s := newTestServer(t, gen)

	rec := postJSON(t, s, "/api/generate", `{"storyId":"s1","type":"continue"}`)

	// The stream is already committed: errors travel in-band, not as an
	// HTTP status, and [DONE] is not appended after a failure.
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "data: {\"reasoning\":null,\"content\":\"partial\",\"finished\":false}\n\n")
	assert.True(t, strings.HasSuffix(body, "data: {\"error\":\"OVERLOADED: engine overloaded\"}\n\n"))
	assert.NotContains(t, body, "[DONE]")
}

func TestGenerateHandler_SetupFailuresAreHTTPErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setupErr error
		wantCode int
	}{
		{"missing story id", `{"type":"continue"}`, nil, http.StatusBadRequest},
		{"no preset", `{"storyId":"s1","type":"continue"}`, generation.ErrNoPreset, http.StatusBadRequest},
		{"invalid type", `{"storyId":"s1","type":"wat"}`, generation.ErrInvalidType, http.StatusBadRequest},
		{"empty custom", `{"storyId":"s1","type":"custom"}`, generation.ErrEmptyInstruction, http.StatusBadRequest},
		{"missing key", `{"storyId":"s1","type":"continue"}`,
			provider.NewError(provider.CodeAuthError, "API key is required"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &stubGenerator{setupErr: tt.setupErr})
			rec := postJSON(t, s, "/api/generate", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEqual(t, "text/event-stream", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAliasEndpointsDelegate(t *testing.T) {
	gen := &stubGenerator{events: []provider.StreamEvent{
		{Chunk: provider.Chunk{Content: "x", Finished: true}},
	}}
	s := newTestServer(t, gen)

	rec := postJSON(t, s, "/api/continue", `{"storyId":"s1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "continue", gen.gotReq.Type)

	rec = postJSON(t, s, "/api/rewrite-third-person", `{"storyId":"s1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rewrite-third-person", gen.gotReq.Type)

	rec = postJSON(t, s, "/api/continue-with-instruction", `{"storyId":"s1","customPrompt":"storm"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "custom", gen.gotReq.Type)
	assert.Equal(t, "storm", gen.gotReq.CustomInstruction)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, &stubGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"status\":\"ok\"")
}
