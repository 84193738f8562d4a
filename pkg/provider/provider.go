// Package provider is a uniform contract over heterogeneous LLM back-ends:
// OpenAI-compatible streaming chat completions (OpenAI, DeepSeek,
// OpenRouter), Anthropic messages, and the queue-based AI Horde.
package provider

import (
	"context"
	"fmt"

	"github.com/amiantos/ursceal/pkg/models"
)

// Capabilities describes what a back-end can do, used for capability
// discovery ahead of dispatch.
type Capabilities struct {
	Streaming        bool
	Reasoning        bool
	VisionAPI        bool
	MaxContextWindow int
	RequiresPolling  bool
}

// Params is a single generation request, already prompt-built.
type Params struct {
	SystemPrompt string
	UserPrompt   string

	Model             string
	MaxTokens         int
	MaxContextTokens  int
	Temperature       float64
	TopP              *float64
	TopK              *int
	FrequencyPenalty  *float64
	PresencePenalty   *float64
	RepetitionPenalty *float64
	StopSequences     []string
}

// Chunk is one unit of streamed output. Reasoning carries the model's
// separate thinking channel when the back-end produces one.
type Chunk struct {
	Content   string
	Reasoning string
	Finished  bool
}

// StreamEvent is one event on a generation stream: a chunk or a terminal
// error. After an event with Err != nil or Chunk.Finished the channel is
// closed.
type StreamEvent struct {
	Chunk Chunk
	Err   error
}

// Response is a complete non-streaming generation.
type Response struct {
	Content   string
	Reasoning string
}

// Provider is the uniform back-end contract.
type Provider interface {
	Name() string

	// ValidateConfig checks connection settings before any request is made.
	ValidateConfig() error

	Capabilities() Capabilities

	// Generate produces the full response in one call.
	Generate(ctx context.Context, p Params) (*Response, error)

	// GenerateStream produces a channel of chunks. Implementations close
	// the channel after the final chunk or a terminal error event, and
	// honor ctx cancellation.
	GenerateStream(ctx context.Context, p Params) (<-chan StreamEvent, error)
}

// ModelInfo describes one selectable model on a back-end that supports
// listing.
type ModelInfo struct {
	Name        string
	WorkerCount int
	ETA         int
}

// ModelLister is implemented by providers that can enumerate models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// ForPreset constructs the provider selected by a preset's provider tag.
func ForPreset(tag string, cfg models.APIConfig) (Provider, error) {
	switch tag {
	case "openai":
		return NewOpenAICompatible(FlavorOpenAI, cfg), nil
	case "deepseek":
		return NewOpenAICompatible(FlavorDeepSeek, cfg), nil
	case "openrouter":
		return NewOpenAICompatible(FlavorOpenRouter, cfg), nil
	case "anthropic":
		return NewAnthropic(cfg), nil
	case "horde":
		return NewHorde(cfg), nil
	}
	return nil, fmt.Errorf("unknown provider %q", tag)
}
