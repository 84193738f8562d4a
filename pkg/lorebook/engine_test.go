package lorebook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() Settings {
	return Settings{
		ScanDepth:       1000,
		TokenBudget:     500,
		RecursionDepth:  2,
		EnableRecursion: false,
	}
}

func intPtr(i int) *int { return &i }

func TestActivate_SimpleKeyMatch(t *testing.T) {
	books := []Book{{
		Name: "world",
		Entries: []Entry{{
			ID:      1,
			Keys:    []string{"dragon"},
			Content: "Dragons breathe fire",
			Enabled: true,
		}},
	}}

	got := Activate(books, "A dragon appears", defaultSettings())
	require.Len(t, got, 1)
	assert.Equal(t, "Dragons breathe fire", got[0].Content)
	assert.Equal(t, PositionBeforeChar, got[0].Position)

	got = Activate(books, "No scaly beasts here", defaultSettings())
	assert.Empty(t, got)
}

func TestActivate_DisabledEntrySkipped(t *testing.T) {
	books := []Book{{Entries: []Entry{{
		ID: 1, Keys: []string{"dragon"}, Content: "x", Enabled: false,
	}}}}
	assert.Empty(t, Activate(books, "a dragon", defaultSettings()))
}

func TestActivate_ConstantEntry(t *testing.T) {
	books := []Book{{Entries: []Entry{{
		ID: 1, Content: "Always present", Enabled: true, Constant: true,
	}}}}
	got := Activate(books, "nothing matches this", defaultSettings())
	require.Len(t, got, 1)
	assert.Equal(t, "Always present", got[0].Content)
}

func TestActivate_SelectiveLogic(t *testing.T) {
	entry := func(logic int) []Book {
		return []Book{{Entries: []Entry{{
			ID:             1,
			Keys:           []string{"wyrm"},
			SecondaryKeys:  []string{"dragon", "fire"},
			Content:        "Wyrms are small dragons",
			Enabled:        true,
			Selective:      true,
			SelectiveLogic: logic,
		}}}}
	}

	tests := []struct {
		name  string
		logic int
		text  string
		want  bool
	}{
		{"and-any no secondary", LogicAndAny, "A wyrm flew by", false},
		{"and-any one secondary", LogicAndAny, "A wyrm near a dragon", true},
		{"not-all some match", LogicNotAll, "A wyrm near a dragon", true},
		{"not-all every match", LogicNotAll, "A wyrm, a dragon, and fire", false},
		{"not-any clean", LogicNotAny, "A wyrm flew by", true},
		{"not-any poisoned", LogicNotAny, "A wyrm near a dragon", false},
		{"and-all partial", LogicAndAll, "A wyrm near a dragon", false},
		{"and-all full", LogicAndAll, "A wyrm, a dragon, and fire", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Activate(entry(tt.logic), tt.text, defaultSettings())
			if tt.want {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestActivate_MatchFlags(t *testing.T) {
	t.Run("case sensitive", func(t *testing.T) {
		books := []Book{{Entries: []Entry{{
			ID: 1, Keys: []string{"Dragon"}, Content: "x", Enabled: true, CaseSensitive: true,
		}}}}
		assert.Empty(t, Activate(books, "a dragon", defaultSettings()))
		assert.Len(t, Activate(books, "a Dragon", defaultSettings()), 1)
	})

	t.Run("whole words", func(t *testing.T) {
		books := []Book{{Entries: []Entry{{
			ID: 1, Keys: []string{"ice"}, Content: "x", Enabled: true, MatchWholeWords: true,
		}}}}
		assert.Empty(t, Activate(books, "the price of grain", defaultSettings()))
		assert.Len(t, Activate(books, "walls of ice, tall", defaultSettings()), 1)
	})

	t.Run("regex", func(t *testing.T) {
		books := []Book{{Entries: []Entry{{
			ID: 1, Keys: []string{`drag[oa]ns?`}, Content: "x", Enabled: true, UseRegex: true,
		}}}}
		assert.Len(t, Activate(books, "three dragans circled", defaultSettings()), 1)
		assert.Empty(t, Activate(books, "dregons", defaultSettings()))
	})

	t.Run("invalid regex never matches", func(t *testing.T) {
		books := []Book{{Entries: []Entry{{
			ID: 1, Keys: []string{`dragon(`}, Content: "x", Enabled: true, UseRegex: true,
		}}}}
		assert.Empty(t, Activate(books, "dragon(", defaultSettings()))
	})
}

func TestActivate_ScanDepthWindow(t *testing.T) {
	// 2 tokens == 8 chars of window; "dragon" sits outside it.
	books := []Book{{Entries: []Entry{{
		ID: 1, Keys: []string{"dragon"}, Content: "x", Enabled: true,
	}}}}
	cfg := defaultSettings()
	cfg.ScanDepth = 2

	text := "a dragon and then " + strings.Repeat("padding ", 10)
	assert.Empty(t, Activate(books, text, cfg))

	// Entry-level override widens the window again.
	books[0].Entries[0].ScanDepth = intPtr(1000)
	assert.Len(t, Activate(books, text, cfg), 1)
}

func TestActivate_ProbabilityGate(t *testing.T) {
	books := []Book{{Entries: []Entry{{
		ID: 1, Keys: []string{"dragon"}, Content: "x", Enabled: true,
		UseProbability: true, Probability: 30,
	}}}}

	cfg := defaultSettings()
	cfg.Intn = func(n int) int { return 29 } // roll of 30 <= 30
	assert.Len(t, Activate(books, "a dragon", cfg), 1)

	cfg.Intn = func(n int) int { return 30 } // roll of 31 > 30
	assert.Empty(t, Activate(books, "a dragon", cfg))
}

func TestActivate_Recursion(t *testing.T) {
	books := []Book{{Entries: []Entry{
		{ID: 1, Keys: []string{"dragon"}, Content: "The dragon guards the Hoard of Vel", Enabled: true},
		{ID: 2, Keys: []string{"hoard of vel"}, Content: "The hoard holds the Sunder Crown", Enabled: true},
		{ID: 3, Keys: []string{"sunder crown"}, Content: "The crown sunders kingdoms", Enabled: true},
	}}}

	t.Run("disabled", func(t *testing.T) {
		got := Activate(books, "a dragon sleeps", defaultSettings())
		require.Len(t, got, 1)
	})

	t.Run("enabled follows the chain", func(t *testing.T) {
		cfg := defaultSettings()
		cfg.EnableRecursion = true
		got := Activate(books, "a dragon sleeps", cfg)
		assert.Len(t, got, 3)
	})

	t.Run("depth caps the chain", func(t *testing.T) {
		cfg := defaultSettings()
		cfg.EnableRecursion = true
		cfg.RecursionDepth = 1
		got := Activate(books, "a dragon sleeps", cfg)
		assert.Len(t, got, 2)
	})

	t.Run("prevent recursion stops the seed", func(t *testing.T) {
		cfg := defaultSettings()
		cfg.EnableRecursion = true
		blocked := []Book{{Entries: []Entry{
			{ID: 1, Keys: []string{"dragon"}, Content: "The Hoard of Vel", Enabled: true, PreventRecursion: true},
			{ID: 2, Keys: []string{"hoard of vel"}, Content: "y", Enabled: true},
		}}}
		got := Activate(blocked, "a dragon sleeps", cfg)
		assert.Len(t, got, 1)
	})

	t.Run("delay until recursion", func(t *testing.T) {
		cfg := defaultSettings()
		cfg.EnableRecursion = true
		delayed := []Book{{Entries: []Entry{
			{ID: 1, Keys: []string{"dragon"}, Content: "The Hoard of Vel", Enabled: true},
			{ID: 2, Keys: []string{"dragon", "hoard"}, Content: "y", Enabled: true, DelayUntilRecursion: true},
		}}}
		// Entry 2 matches "dragon" in the story but may only fire on a
		// recursion pass, where only "hoard" appears.
		got := Activate(delayed, "a dragon sleeps", cfg)
		assert.Len(t, got, 2)

		noRecursion := defaultSettings()
		got = Activate(delayed, "a dragon sleeps", noRecursion)
		assert.Len(t, got, 1)
	})
}

func TestActivate_GroupResolution(t *testing.T) {
	books := []Book{{Entries: []Entry{
		{ID: 1, Keys: []string{"dragon"}, Content: "low", Enabled: true, Group: "g", InsertionOrder: 10},
		{ID: 2, Keys: []string{"dragon"}, Content: "high", Enabled: true, Group: "g", InsertionOrder: 20},
		{ID: 3, Keys: []string{"dragon"}, Content: "ungrouped", Enabled: true},
	}}}

	got := Activate(books, "a dragon", defaultSettings())
	require.Len(t, got, 2)
	contents := []string{got[0].Content, got[1].Content}
	assert.Contains(t, contents, "high")
	assert.Contains(t, contents, "ungrouped")
}

func TestActivate_OrderingAndBudget(t *testing.T) {
	books := []Book{{Entries: []Entry{
		{ID: 1, Keys: []string{"k"}, Content: "after", Enabled: true, Position: PositionAfterChar, InsertionOrder: 99},
		{ID: 2, Keys: []string{"k"}, Content: "before-low", Enabled: true, Position: PositionBeforeChar, InsertionOrder: 1},
		{ID: 3, Keys: []string{"k"}, Content: "before-high", Enabled: true, Position: PositionBeforeChar, InsertionOrder: 50},
	}}}

	got := Activate(books, "k", defaultSettings())
	require.Len(t, got, 3)
	assert.Equal(t, "before-high", got[0].Content)
	assert.Equal(t, "before-low", got[1].Content)
	assert.Equal(t, "after", got[2].Content)
}

func TestActivate_TokenBudget(t *testing.T) {
	long := strings.Repeat("a", 40) // 10 tokens each
	books := []Book{{Entries: []Entry{
		{ID: 1, Keys: []string{"k"}, Content: long, Enabled: true, InsertionOrder: 30},
		{ID: 2, Keys: []string{"k"}, Content: long, Enabled: true, InsertionOrder: 20},
		{ID: 3, Keys: []string{"k"}, Content: long, Enabled: true, InsertionOrder: 10},
	}}}

	cfg := defaultSettings()
	cfg.TokenBudget = 25
	got := Activate(books, "k", cfg)
	assert.Len(t, got, 2)

	total := 0
	for _, a := range got {
		total += len(a.Content)
	}
	assert.LessOrEqual(t, total, 4*cfg.TokenBudget)

	// A per-book budget tightens the global one.
	books[0].TokenBudget = intPtr(10)
	got = Activate(books, "k", cfg)
	assert.Len(t, got, 1)
}

func TestActivate_TransformAppliedBeforeBudget(t *testing.T) {
	books := []Book{{Entries: []Entry{{
		ID: 1, Keys: []string{"k"}, Content: "hello {{char}}", Enabled: true,
	}}}}
	cfg := defaultSettings()
	cfg.Transform = func(s string) string { return strings.ReplaceAll(s, "{{char}}", "Brom") }

	got := Activate(books, "k", cfg)
	require.Len(t, got, 1)
	assert.Equal(t, "hello Brom", got[0].Content)
}

func TestActivate_TerminatesWithinDepth(t *testing.T) {
	// Two entries that keep re-matching each other's content can only run
	// for RecursionDepth passes.
	books := []Book{{Entries: []Entry{
		{ID: 1, Keys: []string{"ping"}, Content: "pong", Enabled: true},
		{ID: 2, Keys: []string{"pong"}, Content: "ping", Enabled: true},
	}}}
	cfg := defaultSettings()
	cfg.EnableRecursion = true
	cfg.RecursionDepth = 5

	got := Activate(books, "ping", cfg)
	assert.Len(t, got, 2)
}
