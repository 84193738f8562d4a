package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/pkg/models"
)

func TestHorde_SubmitPollFetch(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate/text/async":
			assert.Equal(t, "0000000000", r.Header.Get("apikey"))
			var body hordeSubmitRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body.Prompt, "sys\n\nuser")
			assert.Equal(t, 150, body.Params.MaxLength)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "req-1"})
		case "/generate/text/status/req-1":
			if polls.Add(1) < 2 {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"done": false, "queue_position": 3, "wait_time": 20,
				})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"done": true,
				"generations": []map[string]any{{
					"text": "\n\nThe dragon woke.", "model": "X", "worker_name": "w",
				}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	h.SetPolling(5*time.Millisecond, time.Second)

	resp, err := h.Generate(context.Background(), Params{
		SystemPrompt: "sys", UserPrompt: "user", MaxTokens: 150, MaxContextTokens: 2048,
	})
	require.NoError(t, err)
	// Leading newlines are stripped from the first generation.
	assert.Equal(t, "The dragon woke.", resp.Content)
	assert.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestHorde_Faulted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate/text/async":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "req-1"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"faulted": true})
		}
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	h.SetPolling(5*time.Millisecond, time.Second)

	_, err := h.Generate(context.Background(), Params{})
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeQueueError, perr.Code)
}

func TestHorde_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate/text/async":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "req-1"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"done": false})
		}
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	h.SetPolling(5*time.Millisecond, 30*time.Millisecond)

	_, err := h.Generate(context.Background(), Params{})
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeTimeout, perr.Code)
}

func TestHorde_Cancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate/text/async":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "req-1"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"done": false})
		}
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	h.SetPolling(5*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := h.Generate(ctx, Params{})
	require.Error(t, err)
}

func TestHorde_StreamAdapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate/text/async":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "req-1"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"done": true, "generations": []map[string]any{{"text": "done."}},
			})
		}
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	h.SetPolling(5*time.Millisecond, time.Second)

	stream, err := h.GenerateStream(context.Background(), Params{})
	require.NoError(t, err)

	var events []StreamEvent
	for ev := range stream {
		events = append(events, ev)
	}
	require.Len(t, events, 1)
	assert.Equal(t, "done.", events[0].Chunk.Content)
	assert.True(t, events[0].Chunk.Finished)
}

func TestAutoSelectModels(t *testing.T) {
	t.Run("allowlist filtering", func(t *testing.T) {
		got := AutoSelectModels([]ModelInfo{
			{Name: "meta-llama/Llama-3-70b", WorkerCount: 5},
			{Name: "TinyLlama-1.1B", WorkerCount: 9},
			{Name: "Mistral-Nemo-12b", WorkerCount: 2},
			{Name: "debug-model", WorkerCount: 50},
			{Name: "some-test-model", WorkerCount: 10},
		})
		assert.ElementsMatch(t, []string{"meta-llama/Llama-3-70b", "Mistral-Nemo-12b"}, got)
	})

	t.Run("fallback to busiest three", func(t *testing.T) {
		got := AutoSelectModels([]ModelInfo{
			{Name: "obscure-a", WorkerCount: 1},
			{Name: "obscure-b", WorkerCount: 7},
			{Name: "obscure-c", WorkerCount: 4},
			{Name: "obscure-d", WorkerCount: 6},
		})
		assert.Equal(t, []string{"obscure-b", "obscure-d", "obscure-c"}, got)
	})

	t.Run("blocklist beats worker count in fallback", func(t *testing.T) {
		got := AutoSelectModels([]ModelInfo{
			{Name: "debug-giant", WorkerCount: 100},
			{Name: "obscure-a", WorkerCount: 1},
		})
		assert.Equal(t, []string{"obscure-a"}, got)
	})
}

func TestCalculateDynamicContextLimit(t *testing.T) {
	workers := []Worker{
		{Name: "w1", Online: true, Models: []string{"X"}, MaxContextLength: 4096},
		{Name: "w2", Online: true, Models: []string{"X"}, MaxContextLength: 2048},
		{Name: "w3", Online: true, Models: []string{"Y"}, MaxContextLength: 1024},
	}

	contextLen, maxChars := CalculateDynamicContextLimit(workers, []string{"X"}, 150)
	assert.Equal(t, 2048, contextLen)
	assert.Equal(t, 5519, maxChars)

	t.Run("floor at 1000 chars", func(t *testing.T) {
		small := []Worker{{Name: "w", Models: []string{"X"}, MaxContextLength: 512}}
		_, maxChars := CalculateDynamicContextLimit(small, []string{"X"}, 400)
		assert.Equal(t, 1000, maxChars)
	})

	t.Run("no serving worker falls back to 2048", func(t *testing.T) {
		contextLen, _ := CalculateDynamicContextLimit(workers, []string{"Z"}, 150)
		assert.Equal(t, 2048, contextLen)
	})
}

func TestHorde_ListModelsCaching(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "X", "count": 3, "eta": 12},
		})
	}))
	defer srv.Close()

	h := NewHorde(models.APIConfig{BaseURL: srv.URL})
	ctx := context.Background()

	first, err := h.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "X", first[0].Name)
	assert.Equal(t, 3, first[0].WorkerCount)

	_, err = h.ListModels(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}
