package services

import (
	"context"
	"fmt"

	"github.com/amiantos/ursceal/ent"
)

// settingsSingletonID is the fixed id of the one settings row.
const settingsSingletonID = "singleton"

// SettingsService manages the singleton settings row.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// GetSettings returns the settings row, creating it with defaults on
// first access.
func (s *SettingsService) GetSettings(ctx context.Context) (*ent.Settings, error) {
	row, err := s.client.Settings.Get(ctx, settingsSingletonID)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	row, err = s.client.Settings.Create().
		SetID(settingsSingletonID).
		Save(ctx)
	if err != nil {
		// A concurrent first read may have seeded the row already.
		if ent.IsConstraintError(err) {
			return s.client.Settings.Get(ctx, settingsSingletonID)
		}
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}
	return row, nil
}

// UpdateSettingsInput carries optional settings updates; nil fields are
// untouched.
type UpdateSettingsInput struct {
	ShowReasoning           *bool
	AutoSave                *bool
	ShowPrompt              *bool
	ThirdPerson             *bool
	FilterAsterisks         *bool
	IncludeDialogueExamples *bool
	LorebookScanDepth       *int
	LorebookTokenBudget     *int
	LorebookRecursionDepth  *int
	LorebookEnableRecursion *bool
	DefaultPersonaID        *string // empty string clears
	DefaultPresetID         *string // empty string clears
	OnboardingCompleted     *bool
}

// UpdateSettings applies changes to the singleton row.
func (s *SettingsService) UpdateSettings(ctx context.Context, in UpdateSettingsInput) (*ent.Settings, error) {
	if _, err := s.GetSettings(ctx); err != nil {
		return nil, err
	}

	upd := s.client.Settings.UpdateOneID(settingsSingletonID)
	if in.ShowReasoning != nil {
		upd.SetShowReasoning(*in.ShowReasoning)
	}
	if in.AutoSave != nil {
		upd.SetAutoSave(*in.AutoSave)
	}
	if in.ShowPrompt != nil {
		upd.SetShowPrompt(*in.ShowPrompt)
	}
	if in.ThirdPerson != nil {
		upd.SetThirdPerson(*in.ThirdPerson)
	}
	if in.FilterAsterisks != nil {
		upd.SetFilterAsterisks(*in.FilterAsterisks)
	}
	if in.IncludeDialogueExamples != nil {
		upd.SetIncludeDialogueExamples(*in.IncludeDialogueExamples)
	}
	if in.LorebookScanDepth != nil {
		if *in.LorebookScanDepth <= 0 {
			return nil, NewValidationError("lorebookScanDepth", "must be positive")
		}
		upd.SetLorebookScanDepth(*in.LorebookScanDepth)
	}
	if in.LorebookTokenBudget != nil {
		if *in.LorebookTokenBudget <= 0 {
			return nil, NewValidationError("lorebookTokenBudget", "must be positive")
		}
		upd.SetLorebookTokenBudget(*in.LorebookTokenBudget)
	}
	if in.LorebookRecursionDepth != nil {
		if *in.LorebookRecursionDepth < 0 {
			return nil, NewValidationError("lorebookRecursionDepth", "must not be negative")
		}
		upd.SetLorebookRecursionDepth(*in.LorebookRecursionDepth)
	}
	if in.LorebookEnableRecursion != nil {
		upd.SetLorebookEnableRecursion(*in.LorebookEnableRecursion)
	}
	if in.DefaultPersonaID != nil {
		if *in.DefaultPersonaID == "" {
			upd.ClearDefaultPersonaID()
		} else {
			if _, err := s.client.Character.Get(ctx, *in.DefaultPersonaID); err != nil {
				if ent.IsNotFound(err) {
					return nil, NewValidationError("defaultPersonaId", "referenced character does not exist")
				}
				return nil, fmt.Errorf("failed to check persona: %w", err)
			}
			upd.SetDefaultPersonaID(*in.DefaultPersonaID)
		}
	}
	if in.DefaultPresetID != nil {
		if *in.DefaultPresetID == "" {
			upd.ClearDefaultPresetID()
		} else {
			if _, err := s.client.Preset.Get(ctx, *in.DefaultPresetID); err != nil {
				if ent.IsNotFound(err) {
					return nil, NewValidationError("defaultPresetId", "referenced preset does not exist")
				}
				return nil, fmt.Errorf("failed to check preset: %w", err)
			}
			upd.SetDefaultPresetID(*in.DefaultPresetID)
		}
	}
	if in.OnboardingCompleted != nil {
		upd.SetOnboardingCompleted(*in.OnboardingCompleted)
	}

	row, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return row, nil
}
