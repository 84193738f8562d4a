package provider

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// deltaTransform turns one SSE data payload into a chunk. done=true ends
// the stream after the returned chunk (if any) is emitted; skip payloads by
// returning (nil, false, nil).
type deltaTransform func(data []byte) (chunk *Chunk, done bool, err error)

// streamSSE reads "data: " framed server-sent events from body, applies
// the provider-specific transform, and forwards chunks onto out. Shared by
// every streaming back-end; only the transform differs.
func streamSSE(ctx context.Context, body io.Reader, transform deltaTransform, out chan<- StreamEvent) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 2*1024*1024)

	emit := func(ev StreamEvent) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		chunk, done, err := transform([]byte(payload))
		if err != nil {
			emit(StreamEvent{Err: Classify(err)})
			return
		}
		if chunk != nil {
			if done {
				chunk.Finished = true
			}
			if !emit(StreamEvent{Chunk: *chunk}) {
				return
			}
		}
		if done {
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		emit(StreamEvent{Err: Classify(err)})
		return
	}

	// Stream ended without an explicit finish marker; close it out cleanly.
	emit(StreamEvent{Chunk: Chunk{Finished: true}})
}
