package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/amiantos/ursceal/test/database"
)

func TestLorebookService_CRUD(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	lb, err := svc.CreateLorebook(ctx, CreateLorebookInput{
		Name:        "World",
		Description: "the world",
	})
	require.NoError(t, err)
	assert.Nil(t, lb.ScanDepth)
	assert.Nil(t, lb.TokenBudget)

	depth := 500
	updated, err := svc.UpdateLorebook(ctx, lb.ID, UpdateLorebookInput{ScanDepth: &depth})
	require.NoError(t, err)
	require.NotNil(t, updated.ScanDepth)
	assert.Equal(t, 500, *updated.ScanDepth)

	updated, err = svc.UpdateLorebook(ctx, lb.ID, UpdateLorebookInput{ClearScanDepth: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ScanDepth)

	require.NoError(t, svc.DeleteLorebook(ctx, lb.ID))
	_, err = svc.GetLorebook(ctx, lb.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLorebookService_SaveEntriesReplacesAndReassignsIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	lb, err := svc.CreateLorebook(ctx, CreateLorebookInput{Name: "World"})
	require.NoError(t, err)

	first, err := svc.SaveEntries(ctx, lb.ID, []EntryInput{
		{Keys: []string{"dragon"}, Content: "Dragons breathe fire", Enabled: true, Probability: 100},
		{Keys: []string{"wyrm"}, Content: "Wyrms are small", Enabled: true, Probability: 100},
	})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.SaveEntries(ctx, lb.ID, []EntryInput{
		{Keys: []string{"dragon"}, Content: "Dragons breathe fire", Enabled: true, Probability: 100},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Delete-then-reinsert reassigns ids; callers must refetch.
	assert.NotEqual(t, first[0].ID, second[0].ID)

	entries, err := svc.GetEntries(ctx, lb.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"dragon"}, entries[0].Keys)
}

func TestLorebookService_SaveEntriesValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	lb, err := svc.CreateLorebook(ctx, CreateLorebookInput{Name: "World"})
	require.NoError(t, err)

	_, err = svc.SaveEntries(ctx, lb.ID, []EntryInput{{Content: "keyless", Enabled: true}})
	assert.True(t, IsValidationError(err))

	// Constant entries need no keys.
	_, err = svc.SaveEntries(ctx, lb.ID, []EntryInput{{Content: "always", Enabled: true, Constant: true, Probability: 100}})
	assert.NoError(t, err)

	_, err = svc.SaveEntries(ctx, lb.ID, []EntryInput{{Keys: []string{"k"}, Probability: 150}})
	assert.True(t, IsValidationError(err))

	_, err = svc.SaveEntries(ctx, lb.ID, []EntryInput{{Keys: []string{"k"}, Position: 9}})
	assert.True(t, IsValidationError(err))
}

func TestLorebookService_ImportWorldInfoFormat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	doc := `{
		"name": "Exported World",
		"entries": {
			"0": {"uid": 0, "key": ["dragon"], "content": "Dragons breathe fire", "comment": "dragons", "disable": false, "order": 10},
			"1": {"uid": 1, "key": ["wyrm"], "keysecondary": ["dragon"], "selective": true, "content": "Wyrms", "disable": true, "order": 20}
		}
	}`

	lb, err := svc.ImportLorebook(ctx, "", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Exported World", lb.Name)

	entries, err := svc.GetEntries(ctx, lb.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"dragon"}, entries[0].Keys)
	assert.True(t, entries[0].Enabled)
	assert.Equal(t, 10, entries[0].InsertionOrder)
	assert.Equal(t, 100, entries[0].Probability)
	assert.False(t, entries[1].Enabled)
	assert.Equal(t, []string{"dragon"}, entries[1].SecondaryKeys)
	assert.True(t, entries[1].Selective)
}

func TestLorebookService_ImportInternalListFormat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	doc := `{
		"name": "Internal",
		"entries": [
			{"keys": ["dragon"], "content": "Dragons", "enabled": true, "insertionOrder": 5, "probability": 100}
		]
	}`

	lb, err := svc.ImportLorebook(ctx, "Renamed", []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", lb.Name)

	entries, err := svc.GetEntries(ctx, lb.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].InsertionOrder)
}

func TestLorebookService_ImportRejectsGarbage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLorebookService(client)
	ctx := context.Background()

	_, err := svc.ImportLorebook(ctx, "x", []byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidLorebook)

	_, err = svc.ImportLorebook(ctx, "x", []byte(`{"name":"no entries"}`))
	assert.ErrorIs(t, err, ErrInvalidLorebook)

	_, err = svc.ImportLorebook(ctx, "x", []byte(`{"entries": 42}`))
	assert.ErrorIs(t, err, ErrInvalidLorebook)
}
