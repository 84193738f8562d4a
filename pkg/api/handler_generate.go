package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/amiantos/ursceal/pkg/generation"
	"github.com/amiantos/ursceal/pkg/provider"
)

// generateHandler handles POST /api/generate. Setup failures answer with
// HTTP 400/404 JSON; once the stream is committed, tokens travel as SSE
// records ending with "data: [DONE]", and a failure ends the stream with an
// {error} record and no [DONE].
func (s *Server) generateHandler(c *echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return s.generate(c, req)
}

// aliasHandler adapts the named legacy endpoints onto the unified
// generate flow.
func (s *Server) aliasHandler(genType string) func(c *echo.Context) error {
	return func(c *echo.Context) error {
		var req GenerateRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		req.Type = genType
		return s.generate(c, req)
	}
}

func (s *Server) generate(c *echo.Context, req GenerateRequest) error {
	if req.StoryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "storyId is required")
	}

	ctx := c.Request().Context()
	stream, err := s.orchestrator.Generate(ctx, generation.Request{
		StoryID:           req.StoryID,
		Type:              req.Type,
		CharacterID:       req.CharacterID,
		CustomInstruction: req.CustomPrompt,
	})
	if err != nil {
		return mapServiceError(err)
	}

	// Headers must be committed before the first body write, and the
	// response must bypass every buffering layer.
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)
	flushResponse(c)

	for ev := range stream {
		if ev.Err != nil {
			writeSSERecord(c, StreamError{Error: ev.Err.Error()})
			return nil
		}
		writeSSERecord(c, chunkRecord(ev.Chunk))
		if ev.Chunk.Finished {
			break
		}
	}

	// Drain any residue so the provider goroutine can exit.
	for range stream {
	}

	if ctx.Err() == nil {
		writeRaw(c, "data: [DONE]\n\n")
	}
	return nil
}

// chunkRecord re-encodes a provider chunk in the wire shape, with nulls
// for absent channels.
func chunkRecord(chunk provider.Chunk) StreamRecord {
	rec := StreamRecord{Finished: chunk.Finished}
	if chunk.Content != "" {
		rec.Content = &chunk.Content
	}
	if chunk.Reasoning != "" {
		rec.Reasoning = &chunk.Reasoning
	}
	return rec
}

// writeSSERecord writes exactly one "data: <json>\n\n" record and flushes
// immediately.
func writeSSERecord(c *echo.Context, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	writeRaw(c, fmt.Sprintf("data: %s\n\n", data))
}

func writeRaw(c *echo.Context, s string) {
	if _, err := c.Response().Write([]byte(s)); err != nil {
		return
	}
	flushResponse(c)
}

// flushResponse flushes the underlying ResponseWriter if it implements
// http.Flusher.
func flushResponse(c *echo.Context) {
	if f, ok := c.Response().(http.Flusher); ok {
		f.Flush()
	}
}
