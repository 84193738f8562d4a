// Package generation ties stories, presets, lorebook activation, prompt
// building, and the provider abstraction together into one streaming
// generation flow.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/lorebookentry"
	"github.com/amiantos/ursceal/pkg/lorebook"
	"github.com/amiantos/ursceal/pkg/macro"
	"github.com/amiantos/ursceal/pkg/models"
	"github.com/amiantos/ursceal/pkg/prompt"
	"github.com/amiantos/ursceal/pkg/provider"
	"github.com/amiantos/ursceal/pkg/services"
)

var (
	// ErrInvalidType is returned for unknown generation types.
	ErrInvalidType = errors.New("invalid generation type")

	// ErrEmptyInstruction is returned for custom generations without an
	// instruction.
	ErrEmptyInstruction = errors.New("custom generation requires an instruction")

	// ErrNoPreset is returned when neither the story nor the settings
	// select a preset.
	ErrNoPreset = errors.New("no generation preset configured")
)

// ProviderFactory builds a provider for a preset's tag; injectable so
// tests can substitute a mock back-end.
type ProviderFactory func(tag string, cfg models.APIConfig) (provider.Provider, error)

// Orchestrator runs the end-to-end generation flow.
type Orchestrator struct {
	stories    *services.StoryService
	characters *services.CharacterService
	lorebooks  *services.LorebookService
	presets    *services.PresetService
	settings   *services.SettingsService
	history    *services.HistoryService

	newProvider ProviderFactory
}

// NewOrchestrator wires the orchestrator with its services and the real
// provider factory.
func NewOrchestrator(
	stories *services.StoryService,
	characters *services.CharacterService,
	lorebooks *services.LorebookService,
	presets *services.PresetService,
	settings *services.SettingsService,
	history *services.HistoryService,
) *Orchestrator {
	return &Orchestrator{
		stories:     stories,
		characters:  characters,
		lorebooks:   lorebooks,
		presets:     presets,
		settings:    settings,
		history:     history,
		newProvider: provider.ForPreset,
	}
}

// SetProviderFactory replaces the provider factory, used by tests.
func (o *Orchestrator) SetProviderFactory(f ProviderFactory) { o.newProvider = f }

// Request is one generation request from the client.
type Request struct {
	StoryID           string
	Type              string
	CharacterID       string
	CustomInstruction string
}

// Generate validates, assembles, and dispatches a streaming generation.
// Validation and setup failures are returned synchronously so the caller
// can still answer with an HTTP error; once the channel is returned, all
// failures travel in-stream.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (<-chan provider.StreamEvent, error) {
	genType, err := models.ParseGenerationType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
	if genType == models.GenerationCustom && strings.TrimSpace(req.CustomInstruction) == "" {
		return nil, ErrEmptyInstruction
	}

	st, err := o.stories.GetStory(ctx, req.StoryID)
	if err != nil {
		return nil, err
	}
	globals, err := o.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	pre, err := o.resolvePreset(ctx, st, globals)
	if err != nil {
		return nil, err
	}

	prov, err := o.newProvider(string(pre.Provider), pre.APIConfig)
	if err != nil {
		return nil, err
	}
	if err := prov.ValidateConfig(); err != nil {
		return nil, err
	}

	in, err := o.assemble(ctx, st, globals, pre, genType, req)
	if err != nil {
		return nil, err
	}

	gen := pre.GenerationSettings
	if h, ok := prov.(*provider.Horde); ok {
		rebudgetForHorde(ctx, h, &gen, pre.APIConfig)
		in.Generation.MaxContextTokens = gen.MaxContextTokens
	}

	prompts := prompt.Build(*in)

	// A pre-generation snapshot so the user can undo back to this state.
	if _, err := o.history.GetHistoryStatus(ctx, st.ID); err != nil {
		return nil, err
	}

	slog.Info("Dispatching generation",
		"story_id", st.ID,
		"provider", prov.Name(),
		"type", genType,
		"system_tokens", prompt.EstimateTokens(prompts.System),
		"user_tokens", prompt.EstimateTokens(prompts.User))

	return prov.GenerateStream(ctx, provider.Params{
		SystemPrompt:      prompts.System,
		UserPrompt:        prompts.User,
		Model:             pre.APIConfig.Model,
		MaxTokens:         gen.MaxTokens,
		MaxContextTokens:  gen.MaxContextTokens,
		Temperature:       gen.Temperature,
		TopP:              gen.TopP,
		TopK:              gen.TopK,
		FrequencyPenalty:  gen.FrequencyPenalty,
		PresencePenalty:   gen.PresencePenalty,
		RepetitionPenalty: gen.RepetitionPenalty,
		StopSequences:     gen.StopSequences,
	})
}

// resolvePreset picks the story's preset, falling back to the global
// default.
func (o *Orchestrator) resolvePreset(ctx context.Context, st *ent.Story, globals *ent.Settings) (*ent.Preset, error) {
	id := ""
	if st.ConfigPresetID != nil {
		id = *st.ConfigPresetID
	} else if globals.DefaultPresetID != nil {
		id = *globals.DefaultPresetID
	}
	if id == "" {
		// The is_default flag is the last fallback when settings never
		// recorded a default.
		pre, err := o.presets.GetDefaultPreset(ctx)
		if err != nil {
			return nil, err
		}
		if pre == nil {
			return nil, ErrNoPreset
		}
		return pre, nil
	}
	pre, err := o.presets.GetPreset(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return nil, ErrNoPreset
	}
	return pre, err
}

// assemble loads characters, persona, and lorebooks and produces the
// prompt-builder input.
func (o *Orchestrator) assemble(
	ctx context.Context,
	st *ent.Story,
	globals *ent.Settings,
	pre *ent.Preset,
	genType models.GenerationType,
	req Request,
) (*prompt.BuildInput, error) {
	members, err := o.stories.StoryCharacters(ctx, st.ID)
	if err != nil {
		return nil, err
	}

	persona, err := o.resolvePersona(ctx, st, globals)
	if err != nil {
		return nil, err
	}

	// The persona character narrates; it does not get a profile block.
	var profiles []prompt.CharacterProfile
	for _, c := range members {
		if persona != nil && c.ID == persona.ID {
			continue
		}
		profiles = append(profiles, prompt.CharacterProfile{
			Name:        c.Name,
			Description: c.Description,
			Personality: c.Personality,
			Scenario:    c.Scenario,
			MesExample:  c.MesExample,
		})
	}

	characterName := ""
	if genType == models.GenerationCharacter {
		characterName, err = o.resolveCharacterName(ctx, req.CharacterID, profiles)
		if err != nil {
			return nil, err
		}
	}

	mctx := macro.Context{CharName: firstProfileName(profiles)}
	var personaProfile *prompt.Persona
	if persona != nil {
		mctx.UserName = persona.Name
		personaProfile = &prompt.Persona{
			Name:         persona.Name,
			Description:  persona.Description,
			WritingStyle: persona.Personality,
		}
	}

	settings := prompt.Settings{
		ShowPrompt:              globals.ShowPrompt,
		ThirdPerson:             globals.ThirdPerson,
		FilterAsterisks:         globals.FilterAsterisks,
		IncludeDialogueExamples: globals.IncludeDialogueExamples && pre.GenerationSettings.IncludeDialogueExamples,
	}

	activations, err := o.activateLorebooks(ctx, st, members, globals, pre, mctx, settings.FilterAsterisks)
	if err != nil {
		return nil, err
	}

	return &prompt.BuildInput{
		StoryContent:      st.Content,
		Characters:        profiles,
		Persona:           personaProfile,
		Lorebook:          activations,
		Type:              genType,
		CharacterName:     characterName,
		CustomInstruction: req.CustomInstruction,
		Settings:          settings,
		Generation:        pre.GenerationSettings,
		Templates:         pre.PromptTemplates,
		Macro:             mctx,
	}, nil
}

func (o *Orchestrator) resolvePersona(ctx context.Context, st *ent.Story, globals *ent.Settings) (*ent.Character, error) {
	id := ""
	if st.PersonaCharacterID != nil {
		id = *st.PersonaCharacterID
	} else if globals.DefaultPersonaID != nil {
		id = *globals.DefaultPersonaID
	}
	if id == "" {
		return nil, nil
	}
	persona, err := o.characters.GetCharacter(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return nil, nil
	}
	return persona, err
}

// resolveCharacterName maps a character-perspective request onto a member
// profile name.
func (o *Orchestrator) resolveCharacterName(ctx context.Context, characterID string, profiles []prompt.CharacterProfile) (string, error) {
	if characterID == "" {
		if len(profiles) == 0 {
			return "", services.NewValidationError("characterId", "story has no characters")
		}
		return profiles[0].Name, nil
	}
	c, err := o.characters.GetCharacter(ctx, characterID)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// activateLorebooks merges story lorebooks with character-bundled ones and
// runs the activation engine over the story tail.
func (o *Orchestrator) activateLorebooks(
	ctx context.Context,
	st *ent.Story,
	members []*ent.Character,
	globals *ent.Settings,
	pre *ent.Preset,
	mctx macro.Context,
	filterAsterisks bool,
) ([]lorebook.Activation, error) {
	attached, err := o.stories.StoryLorebooks(ctx, st.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(attached))
	rows := make([]*ent.Lorebook, 0, len(attached))
	for _, lb := range attached {
		seen[lb.ID] = true
		rows = append(rows, lb)
	}
	for _, c := range members {
		if c.UrscealLorebookID == nil || seen[*c.UrscealLorebookID] {
			continue
		}
		lb, err := o.lorebooks.GetLorebook(ctx, *c.UrscealLorebookID)
		if errors.Is(err, services.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		seen[lb.ID] = true
		rows = append(rows, lb)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	books := make([]lorebook.Book, 0, len(rows))
	for _, lb := range rows {
		entries, err := o.lorebooks.GetEntries(ctx, lb.ID)
		if err != nil {
			return nil, err
		}
		books = append(books, toEngineBook(lb, entries))
	}

	cfg := lorebook.Settings{
		ScanDepth:       globals.LorebookScanDepth,
		TokenBudget:     globals.LorebookTokenBudget,
		RecursionDepth:  globals.LorebookRecursionDepth,
		EnableRecursion: globals.LorebookEnableRecursion,
		Transform: func(s string) string {
			s = macro.Process(s, mctx)
			if filterAsterisks {
				s = strings.ReplaceAll(s, "*", "")
			}
			return s
		},
	}
	if ls := pre.LorebookSettings; ls.ScanDepth > 0 {
		cfg.ScanDepth = ls.ScanDepth
	}
	if ls := pre.LorebookSettings; ls.TokenBudget > 0 {
		cfg.TokenBudget = ls.TokenBudget
	}
	if ls := pre.LorebookSettings; ls.RecursionDepth > 0 {
		cfg.RecursionDepth = ls.RecursionDepth
	}
	if pre.LorebookSettings.EnableRecursion {
		cfg.EnableRecursion = true
	}

	return lorebook.Activate(books, st.Content, cfg), nil
}

// toEngineBook converts storage rows into the engine's input shape.
func toEngineBook(lb *ent.Lorebook, entries []*ent.LorebookEntry) lorebook.Book {
	book := lorebook.Book{
		Name:              lb.Name,
		ScanDepth:         lb.ScanDepth,
		TokenBudget:       lb.TokenBudget,
		RecursiveScanning: lb.RecursiveScanning,
	}
	for _, e := range entries {
		book.Entries = append(book.Entries, lorebook.Entry{
			ID:                  e.ID,
			Keys:                e.Keys,
			SecondaryKeys:       e.SecondaryKeys,
			Content:             e.Content,
			Comment:             e.Comment,
			Enabled:             e.Enabled,
			Constant:            e.Constant,
			Selective:           e.Selective,
			SelectiveLogic:      e.SelectiveLogic,
			InsertionOrder:      e.InsertionOrder,
			Position:            positionToEngine(e.Position),
			Depth:               e.Depth,
			CaseSensitive:       e.CaseSensitive,
			MatchWholeWords:     e.MatchWholeWords,
			UseRegex:            e.UseRegex,
			Probability:         e.Probability,
			UseProbability:      e.UseProbability,
			ScanDepth:           e.ScanDepth,
			Group:               e.Group,
			PreventRecursion:    e.PreventRecursion,
			DelayUntilRecursion: e.DelayUntilRecursion,
		})
	}
	return book
}

func positionToEngine(p lorebookentry.Position) lorebook.Position {
	switch p {
	case lorebookentry.PositionAfterChar:
		return lorebook.PositionAfterChar
	case lorebookentry.PositionAuthorNoteBefore:
		return lorebook.PositionAuthorNoteBefore
	case lorebookentry.PositionAuthorNoteAfter:
		return lorebook.PositionAuthorNoteAfter
	case lorebookentry.PositionAtDepth:
		return lorebook.PositionAtDepth
	}
	return lorebook.PositionBeforeChar
}

// rebudgetForHorde shrinks the context budget to the smallest worker
// serving the selected models. Failures fall back to the preset budget;
// the horde will truncate on its side if we overshoot.
func rebudgetForHorde(ctx context.Context, h *provider.Horde, gen *models.GenerationSettings, cfg models.APIConfig) {
	selected := cfg.Models
	if cfg.AutoSelect || len(selected) == 0 {
		available, err := h.ListModels(ctx)
		if err != nil {
			slog.Warn("Horde model listing failed, keeping preset budget", "error", err)
			return
		}
		selected = provider.AutoSelectModels(available)
	}

	workers, err := h.GetWorkerData(ctx)
	if err != nil {
		slog.Warn("Horde worker listing failed, keeping preset budget", "error", err)
		return
	}

	contextLen, _ := provider.CalculateDynamicContextLimit(workers, selected, gen.MaxTokens)
	if contextLen > 0 && contextLen < gen.MaxContextTokens {
		slog.Info("Shrinking context for horde workers",
			"preset_budget", gen.MaxContextTokens, "worker_budget", contextLen)
		gen.MaxContextTokens = contextLen
	}
}

func firstProfileName(profiles []prompt.CharacterProfile) string {
	if len(profiles) == 0 {
		return ""
	}
	return profiles[0].Name
}
