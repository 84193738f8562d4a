package services

import (
	"context"
	"fmt"

	"github.com/amiantos/ursceal/ent"
	"github.com/amiantos/ursceal/ent/historyentry"
	"github.com/amiantos/ursceal/ent/historyposition"
)

// MaxHistory is the per-story history cap; older entries are pruned.
const MaxHistory = 50

// HistoryService maintains the per-story linear undo/redo log. Every
// operation that moves the cursor or mutates entries runs in a single
// transaction so concurrent content writes serialize at the database.
type HistoryService struct {
	client *ent.Client
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(client *ent.Client) *HistoryService {
	return &HistoryService{client: client}
}

// HistoryStatus reports undo/redo availability for a story.
type HistoryStatus struct {
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
}

// SaveToHistory records a snapshot if content differs from the entry at
// the cursor, truncating any redo branch and pruning past the cap.
func (h *HistoryService) SaveToHistory(ctx context.Context, storyID, oldContent, content string) error {
	tx, err := h.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.saveInTx(ctx, tx, storyID, oldContent, content); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history save: %w", err)
	}
	return nil
}

// saveInTx is the transactional body of SaveToHistory, shared with
// StoryService.UpdateStoryContent. oldContent seeds the log on first
// write so the pre-edit state stays reachable by undo.
func (h *HistoryService) saveInTx(ctx context.Context, tx *ent.Tx, storyID, oldContent, content string) error {
	pos, err := tx.HistoryPosition.Query().
		Where(historyposition.StoryID(storyID)).
		Only(ctx)
	switch {
	case err == nil:
		cur, err := tx.HistoryEntry.Get(ctx, pos.HistoryEntryID)
		if err != nil {
			return fmt.Errorf("failed to load cursor entry: %w", err)
		}
		if cur.Content == content {
			return nil
		}

		// Truncate the redo branch: history is linear, not a tree.
		if _, err := tx.HistoryEntry.Delete().
			Where(historyentry.StoryID(storyID), historyentry.IDGT(pos.HistoryEntryID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to truncate redo branch: %w", err)
		}

	case ent.IsNotFound(err):
		seed, err := tx.HistoryEntry.Create().
			SetStoryID(storyID).
			SetContent(oldContent).
			SetWordCount(countWords(oldContent)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed history: %w", err)
		}
		if _, err := tx.HistoryPosition.Create().
			SetStoryID(storyID).
			SetHistoryEntryID(seed.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create history position: %w", err)
		}
		if oldContent == content {
			return nil
		}

	default:
		return fmt.Errorf("failed to load history position: %w", err)
	}

	entry, err := tx.HistoryEntry.Create().
		SetStoryID(storyID).
		SetContent(content).
		SetWordCount(countWords(content)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	if _, err := tx.HistoryPosition.Update().
		Where(historyposition.StoryID(storyID)).
		SetHistoryEntryID(entry.ID).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to move history cursor: %w", err)
	}

	return h.pruneInTx(ctx, tx, storyID)
}

// pruneInTx drops the oldest entries past the cap, keeping the tail that
// includes the cursor.
func (h *HistoryService) pruneInTx(ctx context.Context, tx *ent.Tx, storyID string) error {
	count, err := tx.HistoryEntry.Query().
		Where(historyentry.StoryID(storyID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count history: %w", err)
	}
	if count <= MaxHistory {
		return nil
	}

	// The cutoff is the id of the oldest entry we keep.
	keep, err := tx.HistoryEntry.Query().
		Where(historyentry.StoryID(storyID)).
		Order(ent.Desc(historyentry.FieldID)).
		Offset(MaxHistory - 1).
		Limit(1).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to find prune cutoff: %w", err)
	}

	if _, err := tx.HistoryEntry.Delete().
		Where(historyentry.StoryID(storyID), historyentry.IDLT(keep.ID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Undo moves the cursor one entry back and applies that entry's content to
// the story without re-recording history. Returns nil when there is
// nothing to undo.
func (h *HistoryService) Undo(ctx context.Context, storyID string) (*ent.HistoryEntry, error) {
	return h.step(ctx, storyID, false)
}

// Redo moves the cursor one entry forward. Returns nil when there is
// nothing to redo.
func (h *HistoryService) Redo(ctx context.Context, storyID string) (*ent.HistoryEntry, error) {
	return h.step(ctx, storyID, true)
}

func (h *HistoryService) step(ctx context.Context, storyID string, forward bool) (*ent.HistoryEntry, error) {
	tx, err := h.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	pos, err := tx.HistoryPosition.Query().
		Where(historyposition.StoryID(storyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load history position: %w", err)
	}

	q := tx.HistoryEntry.Query().Where(historyentry.StoryID(storyID))
	if forward {
		q = q.Where(historyentry.IDGT(pos.HistoryEntryID)).
			Order(ent.Asc(historyentry.FieldID))
	} else {
		q = q.Where(historyentry.IDLT(pos.HistoryEntryID)).
			Order(ent.Desc(historyentry.FieldID))
	}
	target, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find history target: %w", err)
	}

	if _, err := tx.HistoryPosition.Update().
		Where(historyposition.StoryID(storyID)).
		SetHistoryEntryID(target.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to move history cursor: %w", err)
	}

	if _, err := tx.Story.UpdateOneID(storyID).
		SetContent(target.Content).
		SetWordCount(target.WordCount).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to apply history content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit history step: %w", err)
	}
	return target, nil
}

// GetHistoryStatus reports undo/redo availability, seeding the log with
// the story's current content when it has content but no history yet.
func (h *HistoryService) GetHistoryStatus(ctx context.Context, storyID string) (*HistoryStatus, error) {
	tx, err := h.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.HistoryEntry.Query().
		Where(historyentry.StoryID(storyID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}
	if count == 0 {
		st, err := tx.Story.Get(ctx, storyID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get story: %w", err)
		}
		if st.Content != "" {
			seed, err := tx.HistoryEntry.Create().
				SetStoryID(storyID).
				SetContent(st.Content).
				SetWordCount(countWords(st.Content)).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to seed history: %w", err)
			}
			if _, err := tx.HistoryPosition.Create().
				SetStoryID(storyID).
				SetHistoryEntryID(seed.ID).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to create history position: %w", err)
			}
		}
	}

	status, err := h.statusInTx(ctx, tx, storyID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return status, nil
}

// statusInTx computes undo/redo availability inside an open transaction.
func (h *HistoryService) statusInTx(ctx context.Context, tx *ent.Tx, storyID string) (*HistoryStatus, error) {
	pos, err := tx.HistoryPosition.Query().
		Where(historyposition.StoryID(storyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &HistoryStatus{}, nil
		}
		return nil, fmt.Errorf("failed to load history position: %w", err)
	}

	before, err := tx.HistoryEntry.Query().
		Where(historyentry.StoryID(storyID), historyentry.IDLT(pos.HistoryEntryID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count undo entries: %w", err)
	}
	after, err := tx.HistoryEntry.Query().
		Where(historyentry.StoryID(storyID), historyentry.IDGT(pos.HistoryEntryID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count redo entries: %w", err)
	}
	return &HistoryStatus{CanUndo: before > 0, CanRedo: after > 0}, nil
}
