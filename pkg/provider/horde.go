package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/amiantos/ursceal/pkg/models"
)

const (
	hordeAnonymousKey    = "0000000000"
	hordeDefaultBaseURL  = "https://aihorde.net/api/v2"
	hordePollInterval    = 2 * time.Second
	hordeDefaultTimeout  = 300 * time.Second
	hordeModelCacheTTL   = 5 * time.Minute
	hordeMinDynamicChars = 1000
)

// hordeModelBlocklist excludes tiny and debug workers from auto-selection.
var hordeModelBlocklist = []string{"tinyllama", "debug", "-1b", "-270m", "test"}

// hordeModelAllowlist are name fragments considered viable for prose.
var hordeModelAllowlist = []string{
	"llama-3", "llama3", "mistral", "mixtral", "qwen2.5", "deepseek",
	"gemma", "magnum", "command-r", "nemo", "euryale", "midnight",
}

// Horde talks to the AI Horde asynchronous text-generation queue: submit,
// poll every two seconds, fetch. There is no streaming.
type Horde struct {
	cfg    models.APIConfig
	client *http.Client

	pollInterval time.Duration
	timeout      time.Duration

	mu          sync.Mutex
	modelCache  []ModelInfo
	workerCache []Worker
	cachedAt    time.Time
}

// NewHorde builds a horde queue provider.
func NewHorde(cfg models.APIConfig) *Horde {
	if cfg.BaseURL == "" {
		cfg.BaseURL = hordeDefaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = hordeAnonymousKey
	}
	return &Horde{
		cfg:          cfg,
		client:       &http.Client{},
		pollInterval: hordePollInterval,
		timeout:      hordeDefaultTimeout,
	}
}

// SetHTTPClient replaces the HTTP client, used by tests.
func (h *Horde) SetHTTPClient(c *http.Client) { h.client = c }

// SetPolling overrides the poll interval and overall timeout.
func (h *Horde) SetPolling(interval, timeout time.Duration) {
	h.pollInterval = interval
	h.timeout = timeout
}

func (h *Horde) Name() string { return "horde" }

func (h *Horde) ValidateConfig() error {
	if h.cfg.BaseURL == "" {
		return NewError(CodeAPIError, "base URL is required")
	}
	return nil
}

func (h *Horde) Capabilities() Capabilities {
	return Capabilities{
		Streaming:        false,
		MaxContextWindow: 4096,
		RequiresPolling:  true,
	}
}

type hordeSubmitRequest struct {
	Prompt         string      `json:"prompt"`
	Params         hordeParams `json:"params"`
	Models         []string    `json:"models,omitempty"`
	Workers        []string    `json:"workers,omitempty"`
	TrustedWorkers bool        `json:"trusted_workers"`
	SlowWorkers    bool        `json:"slow_workers"`
}

type hordeParams struct {
	MaxLength        int      `json:"max_length"`
	MaxContextLength int      `json:"max_context_length"`
	Temperature      float64  `json:"temperature"`
	RepPen           float64  `json:"rep_pen"`
	RepPenRange      int      `json:"rep_pen_range"`
	SamplerOrder     []int    `json:"sampler_order"`
	UseDefaultBadIDs bool     `json:"use_default_badwordsids"`
	StopSequence     []string `json:"stop_sequence,omitempty"`
}

type hordeSubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type hordeGeneration struct {
	Text       string `json:"text"`
	Model      string `json:"model"`
	WorkerName string `json:"worker_name"`
	WorkerID   string `json:"worker_id"`
	Kudos      int    `json:"kudos"`
}

type hordeStatusResponse struct {
	Done          bool              `json:"done"`
	Faulted       bool              `json:"faulted"`
	QueuePosition int               `json:"queue_position"`
	WaitTime      int               `json:"wait_time"`
	Generations   []hordeGeneration `json:"generations"`
}

// Generate submits the prompt and polls until the queue finishes it.
func (h *Horde) Generate(ctx context.Context, p Params) (*Response, error) {
	id, err := h.submit(ctx, p)
	if err != nil {
		return nil, err
	}

	deadline := time.NewTimer(h.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, Classify(ctx.Err())
		case <-deadline.C:
			return nil, NewError(CodeTimeout, "horde generation timed out")
		case <-ticker.C:
			status, err := h.pollStatus(ctx, id)
			if err != nil {
				return nil, err
			}
			if status.Faulted {
				return nil, NewError(CodeQueueError, "horde generation faulted")
			}
			if status.Done {
				if len(status.Generations) == 0 {
					return nil, NewError(CodeQueueError, "horde returned no generations")
				}
				text := strings.TrimLeft(status.Generations[0].Text, "\n")
				return &Response{Content: text}, nil
			}
		}
	}
}

// GenerateStream adapts the polled result into a single-chunk stream so
// the SSE bridge has one code path across providers.
func (h *Horde) GenerateStream(ctx context.Context, p Params) (<-chan StreamEvent, error) {
	out := make(chan StreamEvent, 1)
	go func() {
		defer close(out)
		resp, err := h.Generate(ctx, p)
		if err != nil {
			select {
			case out <- StreamEvent{Err: err}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case out <- StreamEvent{Chunk: Chunk{Content: resp.Content, Finished: true}}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}

func (h *Horde) submit(ctx context.Context, p Params) (string, error) {
	reqBody := hordeSubmitRequest{
		Prompt: p.SystemPrompt + "\n\n" + p.UserPrompt,
		Params: hordeParams{
			MaxLength:        p.MaxTokens,
			MaxContextLength: p.MaxContextTokens,
			Temperature:      p.Temperature,
			RepPen:           1.1,
			RepPenRange:      320,
			SamplerOrder:     []int{6, 0, 1, 3, 4, 2, 5},
			UseDefaultBadIDs: true,
			StopSequence:     p.StopSequences,
		},
		Models:         h.cfg.Models,
		Workers:        h.cfg.Workers,
		TrustedWorkers: h.cfg.TrustedWorkers,
		SlowWorkers:    h.cfg.SlowWorkers,
	}
	if p.RepetitionPenalty != nil {
		reqBody.Params.RepPen = *p.RepetitionPenalty
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", Classify(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.cfg.BaseURL+"/generate/text/async", bytes.NewReader(payload))
	if err != nil {
		return "", Classify(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", h.cfg.APIKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", Classify(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", classifyHTTP(resp)
	}

	var parsed hordeSubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", Classify(fmt.Errorf("decoding submit response: %w", err))
	}
	if parsed.ID == "" {
		return "", NewError(CodeQueueError, "horde submit returned no request id")
	}
	return parsed.ID, nil
}

func (h *Horde) pollStatus(ctx context.Context, id string) (*hordeStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		h.cfg.BaseURL+"/generate/text/status/"+id, nil)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(resp)
	}

	var parsed hordeStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, Classify(fmt.Errorf("decoding status response: %w", err))
	}
	return &parsed, nil
}

type hordeModel struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	ETA   int    `json:"eta"`
}

// Worker is one online horde text worker.
type Worker struct {
	Name             string   `json:"name"`
	Online           bool     `json:"online"`
	Models           []string `json:"models"`
	MaxContextLength int      `json:"max_context_length"`
}

// ListModels returns available text models with worker counts and ETAs.
// Results are cached for five minutes; a concurrent refresh is harmless.
func (h *Horde) ListModels(ctx context.Context) ([]ModelInfo, error) {
	h.mu.Lock()
	if h.modelCache != nil && time.Since(h.cachedAt) < hordeModelCacheTTL {
		cached := h.modelCache
		h.mu.Unlock()
		return cached, nil
	}
	h.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		h.cfg.BaseURL+"/status/models?type=text", nil)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(resp)
	}

	var parsed []hordeModel
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, Classify(fmt.Errorf("decoding model list: %w", err))
	}

	out := make([]ModelInfo, 0, len(parsed))
	for _, m := range parsed {
		out = append(out, ModelInfo{Name: m.Name, WorkerCount: m.Count, ETA: m.ETA})
	}

	h.mu.Lock()
	h.modelCache = out
	h.cachedAt = time.Now()
	h.mu.Unlock()
	return out, nil
}

// GetWorkerData returns the online text workers, cached alongside models.
func (h *Horde) GetWorkerData(ctx context.Context) ([]Worker, error) {
	h.mu.Lock()
	if h.workerCache != nil && time.Since(h.cachedAt) < hordeModelCacheTTL {
		cached := h.workerCache
		h.mu.Unlock()
		return cached, nil
	}
	h.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		h.cfg.BaseURL+"/workers?type=text", nil)
	if err != nil {
		return nil, Classify(err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTP(resp)
	}

	var parsed []Worker
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, Classify(fmt.Errorf("decoding worker list: %w", err))
	}

	online := parsed[:0]
	for _, w := range parsed {
		if w.Online {
			online = append(online, w)
		}
	}

	h.mu.Lock()
	h.workerCache = online
	h.cachedAt = time.Now()
	h.mu.Unlock()
	return online, nil
}

// AutoSelectModels filters a model list down to viable prose models,
// falling back to the top three by worker count when the allowlist
// matches nothing.
func AutoSelectModels(available []ModelInfo) []string {
	var viable []ModelInfo
	for _, m := range available {
		name := strings.ToLower(m.Name)
		if matchesAny(name, hordeModelBlocklist) {
			continue
		}
		if matchesAny(name, hordeModelAllowlist) {
			viable = append(viable, m)
		}
	}

	if len(viable) == 0 {
		// Fall back to the three busiest models that aren't blocklisted.
		for _, m := range available {
			if !matchesAny(strings.ToLower(m.Name), hordeModelBlocklist) {
				viable = append(viable, m)
			}
		}
		sortByWorkerCount(viable)
		if len(viable) > 3 {
			viable = viable[:3]
		}
	}

	out := make([]string, 0, len(viable))
	for _, m := range viable {
		out = append(out, m.Name)
	}
	return out
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

func sortByWorkerCount(models []ModelInfo) {
	for i := 1; i < len(models); i++ {
		for j := i; j > 0 && models[j].WorkerCount > models[j-1].WorkerCount; j-- {
			models[j], models[j-1] = models[j-1], models[j]
		}
	}
}

// CalculateDynamicContextLimit returns the smallest max_context_length
// across workers serving any selected model, and the character budget
// derived from it.
func CalculateDynamicContextLimit(workers []Worker, modelNames []string, maxTokens int) (contextLen, maxChars int) {
	selected := make(map[string]bool, len(modelNames))
	for _, m := range modelNames {
		selected[m] = true
	}

	contextLen = 0
	for _, w := range workers {
		serves := false
		for _, m := range w.Models {
			if selected[m] {
				serves = true
				break
			}
		}
		if !serves || w.MaxContextLength <= 0 {
			continue
		}
		if contextLen == 0 || w.MaxContextLength < contextLen {
			contextLen = w.MaxContextLength
		}
	}
	if contextLen == 0 {
		contextLen = 2048
	}

	maxChars = int(float64(contextLen)*3.0 - float64(maxTokens)*3.5 - 100)
	if maxChars < hordeMinDynamicChars {
		maxChars = hordeMinDynamicChars
	}
	return contextLen, maxChars
}
