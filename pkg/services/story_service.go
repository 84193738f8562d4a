package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/character"
	"github.com/amiantos/ursceal/ent/lorebook"
	"github.com/amiantos/ursceal/ent/story"
	"github.com/amiantos/ursceal/ent/storycharacter"
	"github.com/amiantos/ursceal/ent/storylorebook"
)

// defaultStoryTitle is the title given to unnamed stories; it also marks a
// story as eligible for character-based auto-titling.
const defaultStoryTitle = "Untitled Story"

// StoryService manages stories, their character/lorebook membership, and
// content writes (which feed the history log).
type StoryService struct {
	client  *ent.Client
	history *HistoryService
}

// NewStoryService creates a new StoryService.
func NewStoryService(client *ent.Client, history *HistoryService) *StoryService {
	return &StoryService{client: client, history: history}
}

// CreateStoryInput carries the writable story fields.
type CreateStoryInput struct {
	Title       string
	Description string
}

// CreateStory creates a new, empty story.
func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*ent.Story, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = defaultStoryTitle
	}
	st, err := s.client.Story.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetDescription(in.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}
	return st, nil
}

// GetStory fetches a story by id.
func (s *StoryService) GetStory(ctx context.Context, id string) (*ent.Story, error) {
	st, err := s.client.Story.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return st, nil
}

// ListStories returns all stories, most recently modified first.
func (s *StoryService) ListStories(ctx context.Context) ([]*ent.Story, error) {
	return s.client.Story.Query().
		Order(ent.Desc(story.FieldModified)).
		All(ctx)
}

// UpdateStoryInput carries optional story metadata updates; nil fields are
// left untouched.
type UpdateStoryInput struct {
	Title          *string
	Description    *string
	PersonaID      *string // empty string clears
	ConfigPresetID *string // empty string clears
	NeedsRewrite   *bool
	AvatarWindows  map[string]interface{}
}

// UpdateStory applies metadata changes. Setting a persona validates that
// the character exists.
func (s *StoryService) UpdateStory(ctx context.Context, id string, in UpdateStoryInput) (*ent.Story, error) {
	upd := s.client.Story.UpdateOneID(id)
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		upd.SetTitle(title)
	}
	if in.Description != nil {
		upd.SetDescription(*in.Description)
	}
	if in.PersonaID != nil {
		if *in.PersonaID == "" {
			upd.ClearPersonaCharacterID()
		} else {
			exists, err := s.client.Character.Query().
				Where(character.ID(*in.PersonaID)).
				Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to check persona character: %w", err)
			}
			if !exists {
				return nil, NewValidationError("personaCharacterId", "referenced character does not exist")
			}
			upd.SetPersonaCharacterID(*in.PersonaID)
		}
	}
	if in.ConfigPresetID != nil {
		if *in.ConfigPresetID == "" {
			upd.ClearConfigPresetID()
		} else {
			upd.SetConfigPresetID(*in.ConfigPresetID)
		}
	}
	if in.NeedsRewrite != nil {
		upd.SetNeedsRewritePrompt(*in.NeedsRewrite)
	}
	if in.AvatarWindows != nil {
		upd.SetAvatarWindows(in.AvatarWindows)
	}

	st, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update story: %w", err)
	}
	return st, nil
}

// UpdateStoryContent writes new content, recomputes the derived word
// count, and records a history entry, all in one transaction. The returned
// status reflects the post-write undo/redo availability.
func (s *StoryService) UpdateStoryContent(ctx context.Context, id, content string) (*HistoryStatus, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Story.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	if _, err := tx.Story.UpdateOneID(id).
		SetContent(content).
		SetWordCount(countWords(content)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	if err := s.history.saveInTx(ctx, tx, id, st.Content, content); err != nil {
		return nil, err
	}

	status, err := s.history.statusInTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit content update: %w", err)
	}
	return status, nil
}

// DeleteStory removes a story; history and membership rows cascade.
func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	err := s.client.Story.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete story: %w", err)
	}
	return nil
}

// AddCharacter attaches a character to a story and refreshes the
// auto-generated title when the story still carries one.
func (s *StoryService) AddCharacter(ctx context.Context, storyID, characterID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Story.Get(ctx, storyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get story: %w", err)
	}
	if _, err := tx.Character.Get(ctx, characterID); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get character: %w", err)
	}

	exists, err := tx.StoryCharacter.Query().
		Where(storycharacter.StoryID(storyID), storycharacter.CharacterID(characterID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return ErrAlreadyExists
	}

	prevNames, err := memberNames(ctx, tx, storyID)
	if err != nil {
		return err
	}

	if _, err := tx.StoryCharacter.Create().
		SetStoryID(storyID).
		SetCharacterID(characterID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to add character: %w", err)
	}

	if err := refreshAutoTitle(ctx, tx, st, prevNames); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// RemoveCharacter detaches a character. When the removed character was the
// story's persona, the persona reference is cleared in the same
// transaction.
func (s *StoryService) RemoveCharacter(ctx context.Context, storyID, characterID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Story.Get(ctx, storyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get story: %w", err)
	}

	prevNames, err := memberNames(ctx, tx, storyID)
	if err != nil {
		return err
	}

	n, err := tx.StoryCharacter.Delete().
		Where(storycharacter.StoryID(storyID), storycharacter.CharacterID(characterID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove character: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if st.PersonaCharacterID != nil && *st.PersonaCharacterID == characterID {
		if _, err := tx.Story.UpdateOneID(storyID).ClearPersonaCharacterID().Save(ctx); err != nil {
			return fmt.Errorf("failed to clear persona: %w", err)
		}
	}

	if err := refreshAutoTitle(ctx, tx, st, prevNames); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// StoryCharacters returns the story's characters in membership order.
func (s *StoryService) StoryCharacters(ctx context.Context, storyID string) ([]*ent.Character, error) {
	joins, err := s.client.StoryCharacter.Query().
		Where(storycharacter.StoryID(storyID)).
		Order(ent.Asc(storycharacter.FieldAddedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story characters: %w", err)
	}
	if len(joins) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.CharacterID)
	}
	chars, err := s.client.Character.Query().
		Where(character.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch characters: %w", err)
	}
	// Preserve membership order.
	byID := make(map[string]*ent.Character, len(chars))
	for _, c := range chars {
		byID[c.ID] = c
	}
	out := make([]*ent.Character, 0, len(chars))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// AddLorebook attaches a lorebook to a story.
func (s *StoryService) AddLorebook(ctx context.Context, storyID, lorebookID string) error {
	if _, err := s.GetStory(ctx, storyID); err != nil {
		return err
	}
	exists, err := s.client.Lorebook.Query().Where(lorebook.ID(lorebookID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check lorebook: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	already, err := s.client.StoryLorebook.Query().
		Where(storylorebook.StoryID(storyID), storylorebook.LorebookID(lorebookID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if already {
		return ErrAlreadyExists
	}

	_, err = s.client.StoryLorebook.Create().
		SetStoryID(storyID).
		SetLorebookID(lorebookID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to add lorebook: %w", err)
	}
	return nil
}

// RemoveLorebook detaches a lorebook from a story.
func (s *StoryService) RemoveLorebook(ctx context.Context, storyID, lorebookID string) error {
	n, err := s.client.StoryLorebook.Delete().
		Where(storylorebook.StoryID(storyID), storylorebook.LorebookID(lorebookID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove lorebook: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// StoryLorebooks returns the story's attached lorebooks.
func (s *StoryService) StoryLorebooks(ctx context.Context, storyID string) ([]*ent.Lorebook, error) {
	joins, err := s.client.StoryLorebook.Query().
		Where(storylorebook.StoryID(storyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list story lorebooks: %w", err)
	}
	if len(joins) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.LorebookID)
	}
	return s.client.Lorebook.Query().
		Where(lorebook.IDIn(ids...)).
		All(ctx)
}

// refreshAutoTitle regenerates the title from current membership when the
// story still carries the default title or the title generated for the
// pre-mutation member set. A hand-written title is never touched.
func refreshAutoTitle(ctx context.Context, tx *ent.Tx, st *ent.Story, prevNames []string) error {
	if st.Title != defaultStoryTitle && st.Title != autoTitle(prevNames) {
		return nil
	}

	names, err := memberNames(ctx, tx, st.ID)
	if err != nil {
		return err
	}
	title := autoTitle(names)
	if title == st.Title {
		return nil
	}
	if _, err := tx.Story.UpdateOneID(st.ID).SetTitle(title).Save(ctx); err != nil {
		return fmt.Errorf("failed to refresh title: %w", err)
	}
	return nil
}

// memberNames lists member character names in join order.
func memberNames(ctx context.Context, tx *ent.Tx, storyID string) ([]string, error) {
	joins, err := tx.StoryCharacter.Query().
		Where(storycharacter.StoryID(storyID)).
		Order(ent.Asc(storycharacter.FieldAddedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership: %w", err)
	}
	names := make([]string, 0, len(joins))
	for _, j := range joins {
		c, err := tx.Character.Get(ctx, j.CharacterID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch member: %w", err)
		}
		names = append(names, c.Name)
	}
	return names, nil
}

// autoTitle builds the generated title for a member name list.
func autoTitle(names []string) string {
	switch len(names) {
	case 0:
		return defaultStoryTitle
	case 1:
		return "A Story with " + names[0]
	default:
		return "A Story with " + strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// countWords derives the stored word count from content.
func countWords(content string) int {
	return len(strings.Fields(content))
}
