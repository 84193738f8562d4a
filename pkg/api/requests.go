package api

import "github.com/amiantos/ursceal/pkg/models"

// CreateStoryRequest is the body of POST /api/stories.
type CreateStoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateStoryRequest is the body of PUT /api/stories/:id. Pointer fields
// distinguish "unset" from "clear".
type UpdateStoryRequest struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	PersonaID      *string                `json:"personaCharacterId"`
	ConfigPresetID *string                `json:"configPresetId"`
	NeedsRewrite   *bool                  `json:"needsRewritePrompt"`
	AvatarWindows  map[string]interface{} `json:"avatarWindows"`
}

// UpdateContentRequest is the body of PUT /api/stories/:id/content.
type UpdateContentRequest struct {
	Content string `json:"content"`
}

// MembershipRequest names the character or lorebook to attach.
type MembershipRequest struct {
	CharacterID string `json:"characterId"`
	LorebookID  string `json:"lorebookId"`
}

// CreateCharacterRequest is the body of POST /api/characters.
type CreateCharacterRequest struct {
	Name                    string                 `json:"name"`
	Description             string                 `json:"description"`
	Personality             string                 `json:"personality"`
	Scenario                string                 `json:"scenario"`
	FirstMes                string                 `json:"first_mes"`
	MesExample              string                 `json:"mes_example"`
	SystemPrompt            string                 `json:"system_prompt"`
	PostHistoryInstructions string                 `json:"post_history_instructions"`
	AlternateGreetings      []string               `json:"alternate_greetings"`
	Tags                    []string               `json:"tags"`
	Creator                 string                 `json:"creator"`
	CharacterVersion        string                 `json:"character_version"`
	Extensions              map[string]interface{} `json:"extensions"`
}

// UpdateCharacterRequest is the body of PUT /api/characters/:id.
type UpdateCharacterRequest struct {
	Name                    *string                `json:"name"`
	Description             *string                `json:"description"`
	Personality             *string                `json:"personality"`
	Scenario                *string                `json:"scenario"`
	FirstMes                *string                `json:"first_mes"`
	MesExample              *string                `json:"mes_example"`
	SystemPrompt            *string                `json:"system_prompt"`
	PostHistoryInstructions *string                `json:"post_history_instructions"`
	AlternateGreetings      []string               `json:"alternate_greetings"`
	Tags                    []string               `json:"tags"`
	Extensions              map[string]interface{} `json:"extensions"`
}

// CreateLorebookRequest is the body of POST /api/lorebooks.
type CreateLorebookRequest struct {
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	ScanDepth         *int                   `json:"scanDepth"`
	TokenBudget       *int                   `json:"tokenBudget"`
	RecursiveScanning bool                   `json:"recursiveScanning"`
	Extensions        map[string]interface{} `json:"extensions"`
}

// UpdateLorebookRequest is the body of PUT /api/lorebooks/:id.
type UpdateLorebookRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	ScanDepth         *int                   `json:"scanDepth"`
	ClearScanDepth    bool                   `json:"clearScanDepth"`
	TokenBudget       *int                   `json:"tokenBudget"`
	ClearTokenBudget  bool                   `json:"clearTokenBudget"`
	RecursiveScanning *bool                  `json:"recursiveScanning"`
	Extensions        map[string]interface{} `json:"extensions"`
}

// PresetRequest is the body of POST/PUT /api/presets.
type PresetRequest struct {
	Name               string                    `json:"name"`
	Provider           string                    `json:"provider"`
	APIConfig          models.APIConfig          `json:"apiConfig"`
	GenerationSettings models.GenerationSettings `json:"generationSettings"`
	LorebookSettings   models.LorebookSettings   `json:"lorebookSettings"`
	PromptTemplates    models.PromptTemplates    `json:"promptTemplates"`
}

// UpdateSettingsRequest is the body of PUT /api/settings.
type UpdateSettingsRequest struct {
	ShowReasoning           *bool   `json:"showReasoning"`
	AutoSave                *bool   `json:"autoSave"`
	ShowPrompt              *bool   `json:"showPrompt"`
	ThirdPerson             *bool   `json:"thirdPerson"`
	FilterAsterisks         *bool   `json:"filterAsterisks"`
	IncludeDialogueExamples *bool   `json:"includeDialogueExamples"`
	LorebookScanDepth       *int    `json:"lorebookScanDepth"`
	LorebookTokenBudget     *int    `json:"lorebookTokenBudget"`
	LorebookRecursionDepth  *int    `json:"lorebookRecursionDepth"`
	LorebookEnableRecursion *bool   `json:"lorebookEnableRecursion"`
	DefaultPersonaID        *string `json:"defaultPersonaId"`
	DefaultPresetID         *string `json:"defaultPresetId"`
	OnboardingCompleted     *bool   `json:"onboardingCompleted"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	StoryID      string `json:"storyId"`
	Type         string `json:"type"`
	CustomPrompt string `json:"customPrompt"`
	CharacterID  string `json:"characterId"`
}

// ChubImportRequest is the body of POST /api/import/chub.
type ChubImportRequest struct {
	URL string `json:"url"`
}

// ImportLorebookRequest is the body of POST /api/lorebooks/import.
type ImportLorebookRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}
