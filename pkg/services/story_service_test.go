package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/ent"
	testdb "github.com/amiantos/ursceal/test/database"
)

func newStoryService(t *testing.T) (*StoryService, *HistoryService, *ent.Client) {
	client := testdb.NewTestClient(t)
	history := NewHistoryService(client)
	return NewStoryService(client, history), history, client
}

func createCharacterNamed(t *testing.T, client *ent.Client, name string) *ent.Character {
	t.Helper()
	c, err := NewCharacterService(client).CreateCharacter(context.Background(), CreateCharacterInput{Name: name})
	require.NoError(t, err)
	return c
}

func TestStoryService_CreateAndGet(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T", Description: "d"})
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "T", st.Title)
	assert.Equal(t, 0, st.WordCount)

	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	_, err = svc.GetStory(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("empty title defaults", func(t *testing.T) {
		st, err := svc.CreateStory(ctx, CreateStoryInput{})
		require.NoError(t, err)
		assert.Equal(t, "Untitled Story", st.Title)
	})
}

func TestStoryService_ContentUpdateDerivesWordCount(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	_, err = svc.UpdateStoryContent(ctx, st.ID, "one two  three\nfour")
	require.NoError(t, err)

	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.WordCount)
	assert.Equal(t, "one two  three\nfour", got.Content)
}

// Mirrors the undo/redo end-to-end scenario: write, write, undo to seed,
// redo, then a fresh write kills the redo branch.
func TestStoryService_UndoRedoFlow(t *testing.T) {
	svc, history, _ := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	status, err := svc.UpdateStoryContent(ctx, st.ID, "Hello")
	require.NoError(t, err)
	assert.True(t, status.CanUndo)
	assert.False(t, status.CanRedo)

	status, err = svc.UpdateStoryContent(ctx, st.ID, "Hello world")
	require.NoError(t, err)
	assert.True(t, status.CanUndo)
	assert.False(t, status.CanRedo)

	entry, err := history.Undo(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Hello", entry.Content)

	entry, err = history.Undo(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "", entry.Content)

	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Content)

	entry, err = history.Redo(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Hello", entry.Content)

	// Fresh write after an undo truncates the redo branch.
	_, err = svc.UpdateStoryContent(ctx, st.ID, "X")
	require.NoError(t, err)
	entry, err = history.Redo(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestStoryService_UndoRedoRoundTrip(t *testing.T) {
	svc, history, _ := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	contents := []string{"a", "a b", "a b c", "a b c d"}
	for _, c := range contents {
		_, err = svc.UpdateStoryContent(ctx, st.ID, c)
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		_, err = history.Undo(ctx, st.ID)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err = history.Redo(ctx, st.ID)
		require.NoError(t, err)
	}

	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "a b c d", got.Content)
}

func TestStoryService_HistoryCap(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	for i := 0; i < 55; i++ {
		_, err = svc.UpdateStoryContent(ctx, st.ID, fmt.Sprintf("content %d", i))
		require.NoError(t, err)
	}

	count, err := client.HistoryEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxHistory, count)
}

func TestStoryService_DuplicateContentNotRecorded(t *testing.T) {
	svc, history, client := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	_, err = svc.UpdateStoryContent(ctx, st.ID, "same")
	require.NoError(t, err)
	_, err = svc.UpdateStoryContent(ctx, st.ID, "same")
	require.NoError(t, err)

	count, err := client.HistoryEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // seed + one write

	status, err := history.GetHistoryStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, status.CanUndo)
	assert.False(t, status.CanRedo)
}

func TestHistoryService_StatusSeedsExistingContent(t *testing.T) {
	svc, history, client := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	// Content written without the history-aware path (e.g. restored dump).
	_, err = client.Story.UpdateOneID(st.ID).SetContent("restored").Save(ctx)
	require.NoError(t, err)

	status, err := history.GetHistoryStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, status.CanUndo)
	assert.False(t, status.CanRedo)

	count, err := client.HistoryEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStoryService_AutoTitle(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	alice := createCharacterNamed(t, client, "Alice")
	bob := createCharacterNamed(t, client, "Bob")

	st, err := svc.CreateStory(ctx, CreateStoryInput{})
	require.NoError(t, err)
	require.Equal(t, "Untitled Story", st.Title)

	title := func() string {
		got, err := svc.GetStory(ctx, st.ID)
		require.NoError(t, err)
		return got.Title
	}

	require.NoError(t, svc.AddCharacter(ctx, st.ID, alice.ID))
	assert.Equal(t, "A Story with Alice", title())

	require.NoError(t, svc.AddCharacter(ctx, st.ID, bob.ID))
	assert.Equal(t, "A Story with Alice and Bob", title())

	require.NoError(t, svc.RemoveCharacter(ctx, st.ID, alice.ID))
	assert.Equal(t, "A Story with Bob", title())

	require.NoError(t, svc.RemoveCharacter(ctx, st.ID, bob.ID))
	assert.Equal(t, "Untitled Story", title())
}

func TestStoryService_CustomTitleNeverAutoRenamed(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	alice := createCharacterNamed(t, client, "Alice")
	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "My Custom Adventure"})
	require.NoError(t, err)

	require.NoError(t, svc.AddCharacter(ctx, st.ID, alice.ID))
	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Custom Adventure", got.Title)

	require.NoError(t, svc.RemoveCharacter(ctx, st.ID, alice.ID))
	got, err = svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Custom Adventure", got.Title)
}

func TestStoryService_RemovingPersonaCharacterClearsReference(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	alice := createCharacterNamed(t, client, "Alice")
	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, svc.AddCharacter(ctx, st.ID, alice.ID))
	_, err = svc.UpdateStory(ctx, st.ID, UpdateStoryInput{PersonaID: &alice.ID})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCharacter(ctx, st.ID, alice.ID))

	got, err := svc.GetStory(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PersonaCharacterID)
}

func TestStoryService_PersonaMustExist(t *testing.T) {
	svc, _, _ := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	missing := "nope"
	_, err = svc.UpdateStory(ctx, st.ID, UpdateStoryInput{PersonaID: &missing})
	assert.True(t, IsValidationError(err))
}

func TestStoryService_DuplicateMembership(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	alice := createCharacterNamed(t, client, "Alice")
	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)

	require.NoError(t, svc.AddCharacter(ctx, st.ID, alice.ID))
	assert.ErrorIs(t, svc.AddCharacter(ctx, st.ID, alice.ID), ErrAlreadyExists)
}

func TestCharacterService_DeleteInUse(t *testing.T) {
	svc, _, client := newStoryService(t)
	chars := NewCharacterService(client)
	ctx := context.Background()

	alice := createCharacterNamed(t, client, "Alice")
	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)
	require.NoError(t, svc.AddCharacter(ctx, st.ID, alice.ID))

	assert.ErrorIs(t, chars.DeleteCharacter(ctx, alice.ID), ErrInUse)

	require.NoError(t, svc.RemoveCharacter(ctx, st.ID, alice.ID))
	require.NoError(t, chars.DeleteCharacter(ctx, alice.ID))
}

func TestStoryService_DeleteCascadesHistory(t *testing.T) {
	svc, _, client := newStoryService(t)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, CreateStoryInput{Title: "T"})
	require.NoError(t, err)
	_, err = svc.UpdateStoryContent(ctx, st.ID, "some content")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStory(ctx, st.ID))

	count, err := client.HistoryEntry.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
