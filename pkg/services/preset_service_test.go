package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/preset"
	"github.com/amiantos/ursceal/pkg/models"
	testdb "github.com/amiantos/ursceal/test/database"
)

func createPresetNamed(t *testing.T, svc *PresetService, name string) *ent.Preset {
	t.Helper()
	p, err := svc.CreatePreset(context.Background(), PresetInput{
		Name:     name,
		Provider: "anthropic",
		APIConfig: models.APIConfig{
			APIKey: "sk-test",
			Model:  "claude-sonnet-4-5",
		},
	})
	require.NoError(t, err)
	return p
}

func TestPresetService_CreateAppliesDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPresetService(client)

	p := createPresetNamed(t, svc, "default-ish")
	assert.Equal(t, 512, p.GenerationSettings.MaxTokens)
	assert.Equal(t, 8192, p.GenerationSettings.MaxContextTokens)
	assert.False(t, p.IsDefault)
}

func TestPresetService_UnknownProviderRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPresetService(client)

	_, err := svc.CreatePreset(context.Background(), PresetInput{Name: "x", Provider: "bard"})
	assert.True(t, IsValidationError(err))
}

func TestPresetService_SingleDefault(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPresetService(client)
	ctx := context.Background()

	a := createPresetNamed(t, svc, "a")
	b := createPresetNamed(t, svc, "b")

	require.NoError(t, svc.SetDefaultPreset(ctx, a.ID))
	def, err := svc.GetDefaultPreset(ctx)
	require.NoError(t, err)
	assert.Equal(t, a.ID, def.ID)

	require.NoError(t, svc.SetDefaultPreset(ctx, b.ID))
	def, err = svc.GetDefaultPreset(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, def.ID)

	count, err := client.Preset.Query().Where(preset.IsDefault(true)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPresetService_APIConfigRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPresetService(client)
	ctx := context.Background()

	topP := 0.92
	p, err := svc.CreatePreset(ctx, PresetInput{
		Name:     "horde",
		Provider: "horde",
		APIConfig: models.APIConfig{
			Models:         []string{"X", "Y"},
			TrustedWorkers: true,
		},
		GenerationSettings: models.GenerationSettings{
			MaxTokens:     150,
			TopP:          &topP,
			StopSequences: []string{"\n***"},
		},
		LorebookSettings: models.LorebookSettings{ScanDepth: 800, EnableRecursion: true},
	})
	require.NoError(t, err)

	got, err := svc.GetPreset(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, got.APIConfig.Models)
	assert.True(t, got.APIConfig.TrustedWorkers)
	require.NotNil(t, got.GenerationSettings.TopP)
	assert.Equal(t, 0.92, *got.GenerationSettings.TopP)
	assert.Equal(t, []string{"\n***"}, got.GenerationSettings.StopSequences)
	assert.Equal(t, 800, got.LorebookSettings.ScanDepth)
	assert.True(t, got.LorebookSettings.EnableRecursion)
}

func TestSettingsService_AutoSeedAndUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client)
	ctx := context.Background()

	row, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, row.FilterAsterisks)
	assert.True(t, row.ThirdPerson)
	assert.False(t, row.OnboardingCompleted)
	assert.Equal(t, 1000, row.LorebookScanDepth)

	// Second read returns the same row, not another seed.
	again, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, row.ID, again.ID)

	depth := 400
	done := true
	row, err = svc.UpdateSettings(ctx, UpdateSettingsInput{
		LorebookScanDepth:   &depth,
		OnboardingCompleted: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, 400, row.LorebookScanDepth)
	assert.True(t, row.OnboardingCompleted)

	bad := -1
	_, err = svc.UpdateSettings(ctx, UpdateSettingsInput{LorebookScanDepth: &bad})
	assert.True(t, IsValidationError(err))
}

func TestSettingsService_DefaultReferencesValidated(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSettingsService(client)
	ctx := context.Background()

	missing := "missing"
	_, err := svc.UpdateSettings(ctx, UpdateSettingsInput{DefaultPersonaID: &missing})
	assert.True(t, IsValidationError(err))

	alice := createCharacterNamed(t, client, "Alice")
	row, err := svc.UpdateSettings(ctx, UpdateSettingsInput{DefaultPersonaID: &alice.ID})
	require.NoError(t, err)
	require.NotNil(t, row.DefaultPersonaID)
	assert.Equal(t, alice.ID, *row.DefaultPersonaID)

	empty := ""
	row, err = svc.UpdateSettings(ctx, UpdateSettingsInput{DefaultPersonaID: &empty})
	require.NoError(t, err)
	assert.Nil(t, row.DefaultPersonaID)
}
