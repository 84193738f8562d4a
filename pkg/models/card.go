package models

import "encoding/json"

// CardSpecV2 is the spec tag carried by V2 character cards.
const CardSpecV2 = "chara_card_v2"

// CharacterCard is a V2 character card as embedded in a PNG tEXt chunk.
// V1 cards are normalized into this shape by the parser.
type CharacterCard struct {
	Spec        string   `json:"spec"`
	SpecVersion string   `json:"spec_version"`
	Data        CardData `json:"data"`
}

// CardData is the V2 data block.
type CardData struct {
	Name                    string         `json:"name"`
	Description             string         `json:"description"`
	Personality             string         `json:"personality"`
	Scenario                string         `json:"scenario"`
	FirstMes                string         `json:"first_mes"`
	MesExample              string         `json:"mes_example"`
	CreatorNotes            string         `json:"creator_notes,omitempty"`
	SystemPrompt            string         `json:"system_prompt,omitempty"`
	PostHistoryInstructions string         `json:"post_history_instructions,omitempty"`
	AlternateGreetings      []string       `json:"alternate_greetings"`
	Tags                    []string       `json:"tags,omitempty"`
	Creator                 string         `json:"creator,omitempty"`
	CharacterVersion        string         `json:"character_version,omitempty"`
	Extensions              map[string]any `json:"extensions"`
	CharacterBook           *CharacterBook `json:"character_book"`
}

// CharacterBook is a lorebook embedded in a character card.
type CharacterBook struct {
	Name              string               `json:"name,omitempty"`
	Description       string               `json:"description,omitempty"`
	ScanDepth         *int                 `json:"scan_depth,omitempty"`
	TokenBudget       *int                 `json:"token_budget,omitempty"`
	RecursiveScanning bool                 `json:"recursive_scanning,omitempty"`
	Extensions        map[string]any       `json:"extensions,omitempty"`
	Entries           []CharacterBookEntry `json:"entries"`
}

// CharacterBookEntry is a single embedded lorebook entry in card format.
type CharacterBookEntry struct {
	Keys           []string       `json:"keys"`
	SecondaryKeys  []string       `json:"secondary_keys,omitempty"`
	Content        string         `json:"content"`
	Comment        string         `json:"comment,omitempty"`
	Enabled        bool           `json:"enabled"`
	Constant       bool           `json:"constant,omitempty"`
	Selective      bool           `json:"selective,omitempty"`
	InsertionOrder int            `json:"insertion_order"`
	Position       string         `json:"position,omitempty"`
	CaseSensitive  bool           `json:"case_sensitive,omitempty"`
	Priority       int            `json:"priority,omitempty"`
	Extensions     map[string]any `json:"extensions,omitempty"`
}

// IsEmpty reports whether the embedded book carries no entries worth saving.
func (b *CharacterBook) IsEmpty() bool {
	return b == nil || len(b.Entries) == 0
}

// RawCard preserves the undecoded JSON of a parsed card next to its
// normalized form, so import can round-trip unknown fields.
type RawCard struct {
	Card CharacterCard
	Raw  json.RawMessage
}
