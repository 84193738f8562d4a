package models

// APIConfig holds provider connection settings. Stored as a JSON column on
// the preset row; fields not used by a given provider are simply zero.
type APIConfig struct {
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`

	// Horde-specific knobs.
	Models         []string `json:"models,omitempty"`
	Workers        []string `json:"workers,omitempty"`
	TrustedWorkers bool     `json:"trusted_workers,omitempty"`
	SlowWorkers    bool     `json:"slow_workers,omitempty"`
	AutoSelect     bool     `json:"auto_select,omitempty"`

	// OpenRouter-specific knobs.
	ProviderPreference []string `json:"provider_preference,omitempty"`
	DisableFallback    bool     `json:"disable_fallback,omitempty"`
}

// GenerationSettings holds sampling parameters for a generation request.
type GenerationSettings struct {
	MaxTokens               int      `json:"max_tokens"`
	MaxContextTokens        int      `json:"max_context_tokens"`
	Temperature             float64  `json:"temperature"`
	TopP                    *float64 `json:"top_p,omitempty"`
	TopK                    *int     `json:"top_k,omitempty"`
	FrequencyPenalty        *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty         *float64 `json:"presence_penalty,omitempty"`
	RepetitionPenalty       *float64 `json:"repetition_penalty,omitempty"`
	StopSequences           []string `json:"stop_sequences,omitempty"`
	IncludeDialogueExamples bool     `json:"include_dialogue_examples"`
}

// LorebookSettings holds the per-preset lorebook activation knobs. Zero
// values defer to the global settings row.
type LorebookSettings struct {
	ScanDepth       int  `json:"scan_depth,omitempty"`
	TokenBudget     int  `json:"token_budget,omitempty"`
	RecursionDepth  int  `json:"recursion_depth,omitempty"`
	EnableRecursion bool `json:"enable_recursion"`
}

// PromptTemplates holds optional text overrides for the built-in prompts.
// An empty field means "use the built-in text".
type PromptTemplates struct {
	SystemPrompt string `json:"system_prompt,omitempty"`
	Continue     string `json:"continue,omitempty"`
	Character    string `json:"character,omitempty"`
	Instruction  string `json:"instruction,omitempty"`
	Rewrite      string `json:"rewrite,omitempty"`
}
