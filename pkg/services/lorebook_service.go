package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/lorebook"
	"github.com/amiantos/ursceal/ent/lorebookentry"
	"github.com/amiantos/ursceal/ent/storylorebook"
	"github.com/amiantos/ursceal/pkg/models"
)

// LorebookService manages lorebooks and their entries. Entry saves replace
// all rows in one transaction, which reassigns entry ids — callers must
// refetch after saving.
type LorebookService struct {
	client *ent.Client
}

// NewLorebookService creates a new LorebookService.
func NewLorebookService(client *ent.Client) *LorebookService {
	return &LorebookService{client: client}
}

// CreateLorebookInput carries the writable lorebook fields.
type CreateLorebookInput struct {
	Name              string
	Description       string
	ScanDepth         *int
	TokenBudget       *int
	RecursiveScanning bool
	Extensions        map[string]interface{}
}

// CreateLorebook creates an empty lorebook.
func (s *LorebookService) CreateLorebook(ctx context.Context, in CreateLorebookInput) (*ent.Lorebook, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	create := s.client.Lorebook.Create().
		SetID(uuid.New().String()).
		SetName(in.Name).
		SetDescription(in.Description).
		SetRecursiveScanning(in.RecursiveScanning).
		SetExtensions(in.Extensions)
	if in.ScanDepth != nil {
		create.SetScanDepth(*in.ScanDepth)
	}
	if in.TokenBudget != nil {
		create.SetTokenBudget(*in.TokenBudget)
	}
	lb, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lorebook: %w", err)
	}
	return lb, nil
}

// GetLorebook fetches a lorebook by id.
func (s *LorebookService) GetLorebook(ctx context.Context, id string) (*ent.Lorebook, error) {
	lb, err := s.client.Lorebook.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lorebook: %w", err)
	}
	return lb, nil
}

// ListLorebooks returns all lorebooks ordered by name.
func (s *LorebookService) ListLorebooks(ctx context.Context) ([]*ent.Lorebook, error) {
	return s.client.Lorebook.Query().
		Order(ent.Asc(lorebook.FieldName)).
		All(ctx)
}

// GetEntries returns a lorebook's entries in id order.
func (s *LorebookService) GetEntries(ctx context.Context, lorebookID string) ([]*ent.LorebookEntry, error) {
	return s.client.LorebookEntry.Query().
		Where(lorebookentry.LorebookID(lorebookID)).
		Order(ent.Asc(lorebookentry.FieldID)).
		All(ctx)
}

// UpdateLorebookInput carries optional updates; nil fields are untouched.
type UpdateLorebookInput struct {
	Name              *string
	Description       *string
	ScanDepth         *int
	ClearScanDepth    bool
	TokenBudget       *int
	ClearTokenBudget  bool
	RecursiveScanning *bool
	Extensions        map[string]interface{}
}

// UpdateLorebook applies metadata changes.
func (s *LorebookService) UpdateLorebook(ctx context.Context, id string, in UpdateLorebookInput) (*ent.Lorebook, error) {
	upd := s.client.Lorebook.UpdateOneID(id)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		upd.SetName(*in.Name)
	}
	if in.Description != nil {
		upd.SetDescription(*in.Description)
	}
	if in.ClearScanDepth {
		upd.ClearScanDepth()
	} else if in.ScanDepth != nil {
		upd.SetScanDepth(*in.ScanDepth)
	}
	if in.ClearTokenBudget {
		upd.ClearTokenBudget()
	} else if in.TokenBudget != nil {
		upd.SetTokenBudget(*in.TokenBudget)
	}
	if in.RecursiveScanning != nil {
		upd.SetRecursiveScanning(*in.RecursiveScanning)
	}
	if in.Extensions != nil {
		upd.SetExtensions(in.Extensions)
	}

	lb, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update lorebook: %w", err)
	}
	return lb, nil
}

// EntryInput is one entry in a full-replacement save.
type EntryInput struct {
	Keys                []string               `json:"keys"`
	SecondaryKeys       []string               `json:"secondaryKeys"`
	Content             string                 `json:"content"`
	Comment             string                 `json:"comment"`
	Enabled             bool                   `json:"enabled"`
	Constant            bool                   `json:"constant"`
	Selective           bool                   `json:"selective"`
	SelectiveLogic      int                    `json:"selectiveLogic"`
	InsertionOrder      int                    `json:"insertionOrder"`
	Position            int                    `json:"position"`
	Depth               int                    `json:"depth"`
	CaseSensitive       bool                   `json:"caseSensitive"`
	MatchWholeWords     bool                   `json:"matchWholeWords"`
	UseRegex            bool                   `json:"useRegex"`
	Probability         int                    `json:"probability"`
	UseProbability      bool                   `json:"useProbability"`
	ScanDepth           *int                   `json:"scanDepth"`
	Group               string                 `json:"group"`
	PreventRecursion    bool                   `json:"preventRecursion"`
	DelayUntilRecursion bool                   `json:"delayUntilRecursion"`
	DisplayIndex        int                    `json:"displayIndex"`
	Extensions          map[string]interface{} `json:"extensions"`
}

// positionValues maps the wire-level position enum onto the column enum.
var positionValues = []lorebookentry.Position{
	lorebookentry.PositionBeforeChar,
	lorebookentry.PositionAfterChar,
	lorebookentry.PositionAuthorNoteBefore,
	lorebookentry.PositionAuthorNoteAfter,
	lorebookentry.PositionAtDepth,
}

// SaveEntries replaces all entries of a lorebook in one transaction
// (delete-all-then-reinsert). Entry ids are reassigned by this operation.
func (s *LorebookService) SaveEntries(ctx context.Context, lorebookID string, entries []EntryInput) ([]*ent.LorebookEntry, error) {
	if _, err := s.GetLorebook(ctx, lorebookID); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if len(e.Keys) == 0 && !e.Constant {
			return nil, NewValidationError(fmt.Sprintf("entries[%d].keys", i), "required unless constant")
		}
		if e.Position < 0 || e.Position >= len(positionValues) {
			return nil, NewValidationError(fmt.Sprintf("entries[%d].position", i), "unknown position")
		}
		if e.Probability < 0 || e.Probability > 100 {
			return nil, NewValidationError(fmt.Sprintf("entries[%d].probability", i), "must be 0-100")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.LorebookEntry.Delete().
		Where(lorebookentry.LorebookID(lorebookID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear entries: %w", err)
	}

	saved := make([]*ent.LorebookEntry, 0, len(entries))
	for _, e := range entries {
		row, err := tx.LorebookEntry.Create().
			SetLorebookID(lorebookID).
			SetKeys(e.Keys).
			SetSecondaryKeys(e.SecondaryKeys).
			SetContent(e.Content).
			SetComment(e.Comment).
			SetEnabled(e.Enabled).
			SetConstant(e.Constant).
			SetSelective(e.Selective).
			SetSelectiveLogic(e.SelectiveLogic).
			SetInsertionOrder(e.InsertionOrder).
			SetPosition(positionValues[e.Position]).
			SetDepth(e.Depth).
			SetCaseSensitive(e.CaseSensitive).
			SetMatchWholeWords(e.MatchWholeWords).
			SetUseRegex(e.UseRegex).
			SetProbability(e.Probability).
			SetUseProbability(e.UseProbability).
			SetNillableScanDepth(e.ScanDepth).
			SetGroup(e.Group).
			SetPreventRecursion(e.PreventRecursion).
			SetDelayUntilRecursion(e.DelayUntilRecursion).
			SetDisplayIndex(e.DisplayIndex).
			SetExtensions(e.Extensions).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert entry: %w", err)
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit entry save: %w", err)
	}
	return saved, nil
}

// DeleteLorebook removes a lorebook and its entries; story attachments are
// detached first.
func (s *LorebookService) DeleteLorebook(ctx context.Context, id string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.StoryLorebook.Delete().
		Where(storylorebook.LorebookID(id)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to detach lorebook: %w", err)
	}
	if err := tx.Lorebook.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete lorebook: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CreateFromCharacterBook saves a card-embedded lorebook as a standalone
// lorebook named after the character. A name collision gets an
// "(imported)" suffix instead of overwriting the existing book.
func (s *LorebookService) CreateFromCharacterBook(ctx context.Context, characterName string, book *models.CharacterBook) (*ent.Lorebook, error) {
	if book.IsEmpty() {
		return nil, NewValidationError("character_book", "no entries")
	}

	name := book.Name
	if name == "" {
		name = characterName + "'s Lorebook"
	}
	taken, err := s.client.Lorebook.Query().
		Where(lorebook.Name(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lorebook name: %w", err)
	}
	if taken {
		name += " (imported)"
	}

	lb, err := s.CreateLorebook(ctx, CreateLorebookInput{
		Name:              name,
		Description:       book.Description,
		ScanDepth:         book.ScanDepth,
		TokenBudget:       book.TokenBudget,
		RecursiveScanning: book.RecursiveScanning,
		Extensions:        book.Extensions,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]EntryInput, 0, len(book.Entries))
	for _, e := range book.Entries {
		probability := 100
		position := 0
		if e.Position == "after_char" {
			position = 1
		}
		entries = append(entries, EntryInput{
			Keys:           e.Keys,
			SecondaryKeys:  e.SecondaryKeys,
			Content:        e.Content,
			Comment:        e.Comment,
			Enabled:        e.Enabled,
			Constant:       e.Constant,
			Selective:      e.Selective,
			InsertionOrder: e.InsertionOrder,
			Position:       position,
			CaseSensitive:  e.CaseSensitive,
			Probability:    probability,
			Extensions:     e.Extensions,
		})
	}
	if _, err := s.SaveEntries(ctx, lb.ID, entries); err != nil {
		return nil, err
	}
	return lb, nil
}

// worldInfoEntry is the V1 "world info" export shape, keyed by index.
type worldInfoEntry struct {
	UID            int      `json:"uid"`
	Key            []string `json:"key"`
	Keys           []string `json:"keys"`
	KeySecondary   []string `json:"keysecondary"`
	SecondaryKeys  []string `json:"secondary_keys"`
	Content        string   `json:"content"`
	Comment        string   `json:"comment"`
	Disable        bool     `json:"disable"`
	Enabled        *bool    `json:"enabled"`
	Constant       bool     `json:"constant"`
	Selective      bool     `json:"selective"`
	SelectiveLogic int      `json:"selectiveLogic"`
	Order          int      `json:"order"`
	Position       int      `json:"position"`
	Probability    int      `json:"probability"`
	UseProbability bool     `json:"useProbability"`
}

// importDocument distinguishes the two accepted lorebook JSON formats by
// the shape of its entries value.
type importDocument struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Entries     json.RawMessage `json:"entries"`
}

// ImportLorebook accepts either a V1 world-info document (entries as a
// dict keyed by index) or the internal list format, and creates a new
// lorebook from it.
func (s *LorebookService) ImportLorebook(ctx context.Context, name string, raw []byte) (*ent.Lorebook, error) {
	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLorebook, err)
	}
	if len(doc.Entries) == 0 {
		return nil, fmt.Errorf("%w: no entries field", ErrInvalidLorebook)
	}
	if name == "" {
		name = doc.Name
	}
	if name == "" {
		name = "Imported Lorebook"
	}

	entries, err := parseImportEntries(doc.Entries)
	if err != nil {
		return nil, err
	}

	lb, err := s.CreateLorebook(ctx, CreateLorebookInput{
		Name:        name,
		Description: doc.Description,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.SaveEntries(ctx, lb.ID, entries); err != nil {
		return nil, err
	}
	return lb, nil
}

// parseImportEntries handles both entry container shapes.
func parseImportEntries(raw json.RawMessage) ([]EntryInput, error) {
	// Internal format: a list already in EntryInput shape.
	var list []EntryInput
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	// World-info format: a dict keyed by index.
	var dict map[string]worldInfoEntry
	if err := json.Unmarshal(raw, &dict); err != nil {
		return nil, fmt.Errorf("%w: entries is neither a list nor a dict", ErrInvalidLorebook)
	}

	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]EntryInput, 0, len(dict))
	for _, k := range keys {
		w := dict[k]
		primary := w.Keys
		if len(primary) == 0 {
			primary = w.Key
		}
		secondary := w.SecondaryKeys
		if len(secondary) == 0 {
			secondary = w.KeySecondary
		}
		enabled := !w.Disable
		if w.Enabled != nil {
			enabled = *w.Enabled
		}
		position := w.Position
		if position < 0 || position > 4 {
			position = 0
		}
		probability := w.Probability
		if probability == 0 {
			probability = 100
		}
		out = append(out, EntryInput{
			Keys:           primary,
			SecondaryKeys:  secondary,
			Content:        w.Content,
			Comment:        w.Comment,
			Enabled:        enabled,
			Constant:       w.Constant,
			Selective:      w.Selective,
			SelectiveLogic: w.SelectiveLogic,
			InsertionOrder: w.Order,
			Position:       position,
			Probability:    probability,
			UseProbability: w.UseProbability,
		})
	}
	return out, nil
}
