package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/pkg/models"
	"github.com/amiantos/ursceal/pkg/provider"
	"github.com/amiantos/ursceal/pkg/services"
	testdb "github.com/amiantos/ursceal/test/database"
)

// mockProvider records the dispatched params and plays back two chunks.
type mockProvider struct {
	params    provider.Params
	configErr error
}

func (m *mockProvider) Name() string          { return "mock" }
func (m *mockProvider) ValidateConfig() error { return m.configErr }
func (m *mockProvider) Capabilities() provider.Capabilities {
	return provider.Capabilities{Streaming: true}
}

func (m *mockProvider) Generate(_ context.Context, p provider.Params) (*provider.Response, error) {
	m.params = p
	return &provider.Response{Content: "Once upon a time."}, nil
}

func (m *mockProvider) GenerateStream(_ context.Context, p provider.Params) (<-chan provider.StreamEvent, error) {
	m.params = p
	out := make(chan provider.StreamEvent, 2)
	out <- provider.StreamEvent{Chunk: provider.Chunk{Content: "Once "}}
	out <- provider.StreamEvent{Chunk: provider.Chunk{Content: "upon a time.", Finished: true}}
	close(out)
	return out, nil
}

type fixture struct {
	orch     *Orchestrator
	client   *ent.Client
	stories  *services.StoryService
	presets  *services.PresetService
	settings *services.SettingsService
	chars    *services.CharacterService
	books    *services.LorebookService
	prov     *mockProvider
}

func newFixture(t *testing.T) *fixture {
	client := testdb.NewTestClient(t)
	history := services.NewHistoryService(client)
	stories := services.NewStoryService(client, history)
	chars := services.NewCharacterService(client)
	books := services.NewLorebookService(client)
	presets := services.NewPresetService(client)
	settings := services.NewSettingsService(client)

	orch := NewOrchestrator(stories, chars, books, presets, settings, history)
	prov := &mockProvider{}
	orch.SetProviderFactory(func(tag string, cfg models.APIConfig) (provider.Provider, error) {
		return prov, nil
	})

	return &fixture{
		orch: orch, client: client, stories: stories, presets: presets,
		settings: settings, chars: chars, books: books, prov: prov,
	}
}

// seedStory creates a story with content and a default preset.
func (f *fixture) seedStory(t *testing.T, content string) *ent.Story {
	t.Helper()
	ctx := context.Background()

	st, err := f.stories.CreateStory(ctx, services.CreateStoryInput{Title: "T"})
	require.NoError(t, err)
	if content != "" {
		_, err = f.stories.UpdateStoryContent(ctx, st.ID, content)
		require.NoError(t, err)
	}

	p, err := f.presets.CreatePreset(ctx, services.PresetInput{
		Name:     "main",
		Provider: "anthropic",
		APIConfig: models.APIConfig{
			APIKey: "k", Model: "claude-sonnet-4-5",
		},
		GenerationSettings: models.GenerationSettings{
			MaxTokens: 200, MaxContextTokens: 8192, Temperature: 0.9,
			IncludeDialogueExamples: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, f.presets.SetDefaultPreset(ctx, p.ID))

	got, err := f.stories.GetStory(ctx, st.ID)
	require.NoError(t, err)
	return got
}

func drain(t *testing.T, stream <-chan provider.StreamEvent) string {
	t.Helper()
	var content string
	for ev := range stream {
		require.NoError(t, ev.Err)
		content += ev.Chunk.Content
	}
	return content
}

func TestOrchestrator_ContinueFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedStory(t, "A dragon appears on the ridge.")

	stream, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "continue"})
	require.NoError(t, err)
	assert.Equal(t, "Once upon a time.", drain(t, stream))

	assert.Contains(t, f.prov.params.SystemPrompt, "creative writing assistant")
	assert.Contains(t, f.prov.params.UserPrompt, "A dragon appears on the ridge.")
	assert.Contains(t, f.prov.params.UserPrompt, "Continue the story naturally")
	assert.Equal(t, 200, f.prov.params.MaxTokens)
	assert.Equal(t, 0.9, f.prov.params.Temperature)
}

func TestOrchestrator_ValidationFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedStory(t, "content")

	_, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "wat"})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "custom"})
	assert.ErrorIs(t, err, ErrEmptyInstruction)

	_, err = f.orch.Generate(ctx, Request{StoryID: "missing", Type: "continue"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestOrchestrator_NoPreset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st, err := f.stories.CreateStory(ctx, services.CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	_, err = f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "continue"})
	assert.ErrorIs(t, err, ErrNoPreset)
}

func TestOrchestrator_CharacterAndLorebookAssembly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedStory(t, "A dragon appears on the ridge.")

	brom, err := f.chars.CreateCharacter(ctx, services.CreateCharacterInput{
		Name: "Brom", Description: "A blacksmith.", Personality: "stoic",
	})
	require.NoError(t, err)
	require.NoError(t, f.stories.AddCharacter(ctx, st.ID, brom.ID))

	lb, err := f.books.CreateLorebook(ctx, services.CreateLorebookInput{Name: "World"})
	require.NoError(t, err)
	_, err = f.books.SaveEntries(ctx, lb.ID, []services.EntryInput{
		{Keys: []string{"dragon"}, Content: "Dragons breathe fire", Enabled: true, Probability: 100},
		{Keys: []string{"kraken"}, Content: "Krakens drown ships", Enabled: true, Probability: 100},
	})
	require.NoError(t, err)
	require.NoError(t, f.stories.AddLorebook(ctx, st.ID, lb.ID))

	stream, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "continue"})
	require.NoError(t, err)
	drain(t, stream)

	sys := f.prov.params.SystemPrompt
	assert.Contains(t, sys, "=== CHARACTER PROFILE ===")
	assert.Contains(t, sys, "Name: Brom")
	assert.Contains(t, sys, "=== WORLD INFORMATION ===")
	assert.Contains(t, sys, "Dragons breathe fire")
	assert.NotContains(t, sys, "Krakens drown ships")
}

func TestOrchestrator_PersonaExcludedFromProfiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedStory(t, "content here")

	ana, err := f.chars.CreateCharacter(ctx, services.CreateCharacterInput{Name: "Ana"})
	require.NoError(t, err)
	brom, err := f.chars.CreateCharacter(ctx, services.CreateCharacterInput{Name: "Brom"})
	require.NoError(t, err)
	require.NoError(t, f.stories.AddCharacter(ctx, st.ID, ana.ID))
	require.NoError(t, f.stories.AddCharacter(ctx, st.ID, brom.ID))
	_, err = f.stories.UpdateStory(ctx, st.ID, services.UpdateStoryInput{PersonaID: &ana.ID})
	require.NoError(t, err)

	stream, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "continue"})
	require.NoError(t, err)
	drain(t, stream)

	sys := f.prov.params.SystemPrompt
	assert.Contains(t, sys, "=== CHARACTER PROFILE ===")
	assert.Contains(t, sys, "Name: Brom")
	assert.Contains(t, sys, "=== USER CHARACTER (PERSONA) ===")
	assert.Contains(t, sys, "Name: Ana")
}

func TestOrchestrator_CharacterTypeUsesName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := f.seedStory(t, "content here")

	brom, err := f.chars.CreateCharacter(ctx, services.CreateCharacterInput{Name: "Brom"})
	require.NoError(t, err)
	require.NoError(t, f.stories.AddCharacter(ctx, st.ID, brom.ID))

	stream, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "character", CharacterID: brom.ID})
	require.NoError(t, err)
	drain(t, stream)

	assert.Contains(t, f.prov.params.UserPrompt, "from Brom's perspective")
}

func TestOrchestrator_SeedsPreGenerationHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st := f.seedStory(t, "")
	_, err := f.client.Story.UpdateOneID(st.ID).SetContent("imported content").Save(ctx)
	require.NoError(t, err)

	stream, err := f.orch.Generate(ctx, Request{StoryID: st.ID, Type: "continue"})
	require.NoError(t, err)
	drain(t, stream)

	count, err := f.client.HistoryEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
