package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/preset"
	"github.com/amiantos/ursceal/pkg/models"
)

// PresetService manages generation presets.
type PresetService struct {
	client *ent.Client
}

// NewPresetService creates a new PresetService.
func NewPresetService(client *ent.Client) *PresetService {
	return &PresetService{client: client}
}

// PresetInput carries the writable preset fields.
type PresetInput struct {
	Name               string
	Provider           string
	APIConfig          models.APIConfig
	GenerationSettings models.GenerationSettings
	LorebookSettings   models.LorebookSettings
	PromptTemplates    models.PromptTemplates
}

func validateProvider(p string) (preset.Provider, error) {
	v := preset.Provider(p)
	switch v {
	case preset.ProviderOpenai, preset.ProviderDeepseek, preset.ProviderOpenrouter,
		preset.ProviderAnthropic, preset.ProviderHorde:
		return v, nil
	}
	return "", NewValidationError("provider", fmt.Sprintf("unknown provider %q", p))
}

func applyGenerationDefaults(g *models.GenerationSettings) {
	if g.MaxTokens <= 0 {
		g.MaxTokens = 512
	}
	if g.MaxContextTokens <= 0 {
		g.MaxContextTokens = 8192
	}
	if g.Temperature == 0 {
		g.Temperature = 0.8
	}
}

// CreatePreset creates a new preset.
func (s *PresetService) CreatePreset(ctx context.Context, in PresetInput) (*ent.Preset, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	prov, err := validateProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	applyGenerationDefaults(&in.GenerationSettings)

	p, err := s.client.Preset.Create().
		SetID(uuid.New().String()).
		SetName(in.Name).
		SetProvider(prov).
		SetAPIConfig(in.APIConfig).
		SetGenerationSettings(in.GenerationSettings).
		SetLorebookSettings(in.LorebookSettings).
		SetPromptTemplates(in.PromptTemplates).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}
	return p, nil
}

// GetPreset fetches a preset by id.
func (s *PresetService) GetPreset(ctx context.Context, id string) (*ent.Preset, error) {
	p, err := s.client.Preset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	return p, nil
}

// ListPresets returns all presets ordered by name.
func (s *PresetService) ListPresets(ctx context.Context) ([]*ent.Preset, error) {
	return s.client.Preset.Query().
		Order(ent.Asc(preset.FieldName)).
		All(ctx)
}

// GetDefaultPreset returns the preset marked default, or nil when none is.
func (s *PresetService) GetDefaultPreset(ctx context.Context) (*ent.Preset, error) {
	p, err := s.client.Preset.Query().
		Where(preset.IsDefault(true)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default preset: %w", err)
	}
	return p, nil
}

// UpdatePreset replaces the preset's writable fields.
func (s *PresetService) UpdatePreset(ctx context.Context, id string, in PresetInput) (*ent.Preset, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	prov, err := validateProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	applyGenerationDefaults(&in.GenerationSettings)

	p, err := s.client.Preset.UpdateOneID(id).
		SetName(in.Name).
		SetProvider(prov).
		SetAPIConfig(in.APIConfig).
		SetGenerationSettings(in.GenerationSettings).
		SetLorebookSettings(in.LorebookSettings).
		SetPromptTemplates(in.PromptTemplates).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update preset: %w", err)
	}
	return p, nil
}

// SetDefaultPreset marks one preset as default and unsets the previous
// holder in the same transaction, so at most one default ever exists.
func (s *PresetService) SetDefaultPreset(ctx context.Context, id string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Preset.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get preset: %w", err)
	}

	if _, err := tx.Preset.Update().
		Where(preset.IsDefault(true), preset.IDNEQ(id)).
		SetIsDefault(false).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to unset previous default: %w", err)
	}
	if _, err := tx.Preset.UpdateOneID(id).
		SetIsDefault(true).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to set default: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit default change: %w", err)
	}
	return nil
}

// DeletePreset removes a preset; stories referencing it fall back to the
// default preset at generation time.
func (s *PresetService) DeletePreset(ctx context.Context, id string) error {
	err := s.client.Preset.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}
