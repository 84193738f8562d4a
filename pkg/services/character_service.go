package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/character"
	"github.com/amiantos/ursceal/ent/settings"
	"github.com/amiantos/ursceal/ent/story"
	"github.com/amiantos/ursceal/ent/storycharacter"
	"github.com/amiantos/ursceal/pkg/models"
)

// CharacterService manages characters and their card data.
type CharacterService struct {
	client *ent.Client
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(client *ent.Client) *CharacterService {
	return &CharacterService{client: client}
}

// CreateCharacterInput carries writable character fields; card imports go
// through CreateFromCard instead.
type CreateCharacterInput struct {
	Name                    string
	Description             string
	Personality             string
	Scenario                string
	FirstMes                string
	MesExample              string
	SystemPrompt            string
	PostHistoryInstructions string
	AlternateGreetings      []string
	Tags                    []string
	Creator                 string
	CharacterVersion        string
	Extensions              map[string]interface{}
}

// CreateCharacter creates a character from explicit fields.
func (s *CharacterService) CreateCharacter(ctx context.Context, in CreateCharacterInput) (*ent.Character, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	c, err := s.client.Character.Create().
		SetID(uuid.New().String()).
		SetName(in.Name).
		SetDescription(in.Description).
		SetPersonality(in.Personality).
		SetScenario(in.Scenario).
		SetFirstMes(in.FirstMes).
		SetMesExample(in.MesExample).
		SetSystemPrompt(in.SystemPrompt).
		SetPostHistoryInstructions(in.PostHistoryInstructions).
		SetAlternateGreetings(in.AlternateGreetings).
		SetTags(in.Tags).
		SetCreator(in.Creator).
		SetCharacterVersion(in.CharacterVersion).
		SetExtensions(in.Extensions).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return c, nil
}

// CreateFromCard creates a character from a parsed V2 card. lorebookID, if
// non-empty, records which imported lorebook came bundled with the card.
func (s *CharacterService) CreateFromCard(ctx context.Context, card *models.CharacterCard, lorebookID string) (*ent.Character, error) {
	if card == nil || card.Data.Name == "" {
		return nil, NewValidationError("card", "card has no name")
	}
	d := card.Data
	create := s.client.Character.Create().
		SetID(uuid.New().String()).
		SetName(d.Name).
		SetDescription(d.Description).
		SetPersonality(d.Personality).
		SetScenario(d.Scenario).
		SetFirstMes(d.FirstMes).
		SetMesExample(d.MesExample).
		SetSystemPrompt(d.SystemPrompt).
		SetPostHistoryInstructions(d.PostHistoryInstructions).
		SetAlternateGreetings(d.AlternateGreetings).
		SetTags(d.Tags).
		SetCreator(d.Creator).
		SetCharacterVersion(d.CharacterVersion).
		SetExtensions(d.Extensions)
	if lorebookID != "" {
		create.SetUrscealLorebookID(lorebookID)
	}
	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create character from card: %w", err)
	}
	return c, nil
}

// GetCharacter fetches a character by id.
func (s *CharacterService) GetCharacter(ctx context.Context, id string) (*ent.Character, error) {
	c, err := s.client.Character.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return c, nil
}

// ListCharacters returns all characters ordered by name.
func (s *CharacterService) ListCharacters(ctx context.Context) ([]*ent.Character, error) {
	return s.client.Character.Query().
		Order(ent.Asc(character.FieldName)).
		All(ctx)
}

// UpdateCharacterInput carries optional updates; nil fields are untouched.
type UpdateCharacterInput struct {
	Name                    *string
	Description             *string
	Personality             *string
	Scenario                *string
	FirstMes                *string
	MesExample              *string
	SystemPrompt            *string
	PostHistoryInstructions *string
	AlternateGreetings      []string
	Tags                    []string
	Extensions              map[string]interface{}
}

// UpdateCharacter applies field changes; the id is immutable.
func (s *CharacterService) UpdateCharacter(ctx context.Context, id string, in UpdateCharacterInput) (*ent.Character, error) {
	upd := s.client.Character.UpdateOneID(id)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		upd.SetName(*in.Name)
	}
	if in.Description != nil {
		upd.SetDescription(*in.Description)
	}
	if in.Personality != nil {
		upd.SetPersonality(*in.Personality)
	}
	if in.Scenario != nil {
		upd.SetScenario(*in.Scenario)
	}
	if in.FirstMes != nil {
		upd.SetFirstMes(*in.FirstMes)
	}
	if in.MesExample != nil {
		upd.SetMesExample(*in.MesExample)
	}
	if in.SystemPrompt != nil {
		upd.SetSystemPrompt(*in.SystemPrompt)
	}
	if in.PostHistoryInstructions != nil {
		upd.SetPostHistoryInstructions(*in.PostHistoryInstructions)
	}
	if in.AlternateGreetings != nil {
		upd.SetAlternateGreetings(in.AlternateGreetings)
	}
	if in.Tags != nil {
		upd.SetTags(in.Tags)
	}
	if in.Extensions != nil {
		upd.SetExtensions(in.Extensions)
	}

	c, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return c, nil
}

// DeleteCharacter removes a character. Deleting a character still attached
// to a story is a conflict; callers must detach it first.
func (s *CharacterService) DeleteCharacter(ctx context.Context, id string) error {
	inUse, err := s.client.StoryCharacter.Query().
		Where(storycharacter.CharacterID(id)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check character usage: %w", err)
	}
	if inUse {
		return ErrInUse
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Persona/default-persona references to a deleted character are
	// dangling otherwise.
	if _, err := tx.Story.Update().
		Where(story.PersonaCharacterID(id)).
		ClearPersonaCharacterID().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to clear persona references: %w", err)
	}
	if _, err := tx.Settings.Update().
		Where(settings.DefaultPersonaID(id)).
		ClearDefaultPersonaID().
		Save(ctx); err != nil {
		return fmt.Errorf("failed to clear default persona: %w", err)
	}

	if err := tx.Character.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
