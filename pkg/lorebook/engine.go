// Package lorebook implements the keyword-triggered world-info activation
// engine: recency-window scanning, secondary-key logic, recursion, group
// resolution, and token budgeting.
package lorebook

import (
	"math/rand"
	"sort"
	"strings"
)

// Position mirrors the entry injection position enum.
type Position int

const (
	PositionBeforeChar Position = iota
	PositionAfterChar
	PositionAuthorNoteBefore
	PositionAuthorNoteAfter
	PositionAtDepth
)

// charsPerToken is the estimation heuristic used for both scan-window
// sizing and the injection budget.
const charsPerToken = 4

// Entry is an engine-level view of a lorebook entry, decoupled from
// storage so the engine is testable without a database.
type Entry struct {
	ID             int
	Keys           []string
	SecondaryKeys  []string
	Content        string
	Comment        string
	Enabled        bool
	Constant       bool
	Selective      bool
	SelectiveLogic int
	InsertionOrder int
	Position       Position
	Depth          int

	CaseSensitive   bool
	MatchWholeWords bool
	UseRegex        bool

	Probability    int
	UseProbability bool

	ScanDepth *int
	Group     string

	PreventRecursion    bool
	DelayUntilRecursion bool
}

// Selective-logic modes over the secondary keys.
const (
	LogicAndAny = 0
	LogicNotAll = 1
	LogicNotAny = 2
	LogicAndAll = 3
)

// Book groups entries with their per-lorebook overrides.
type Book struct {
	Name              string
	ScanDepth         *int
	TokenBudget       *int
	RecursiveScanning bool
	Entries           []Entry
}

// Settings are the effective global activation knobs, already resolved
// from the preset and the settings row by the caller.
type Settings struct {
	ScanDepth       int
	TokenBudget     int
	RecursionDepth  int
	EnableRecursion bool

	// Intn overrides the probability-gate dice in tests. Nil uses math/rand.
	Intn func(n int) int

	// Transform is applied to each activated entry's content before it is
	// counted against the budget (macro substitution, asterisk filtering).
	// Nil means identity.
	Transform func(string) string
}

// Activation is one budgeted injection record for the prompt builder.
type Activation struct {
	Content  string
	Position Position
	Comment  string
	Depth    int
}

func (s Settings) intn(n int) int {
	if s.Intn != nil {
		return s.Intn(n)
	}
	return rand.Intn(n)
}

func (s Settings) transform(content string) string {
	if s.Transform != nil {
		return s.Transform(content)
	}
	return content
}

// Activate scans the story tail for keyed entries and returns the ordered,
// budgeted injection list.
func Activate(books []Book, storyText string, cfg Settings) []Activation {
	activated := runPasses(books, storyText, cfg)
	activated = resolveGroups(activated)
	orderEntries(activated)
	return applyBudget(activated, books, cfg)
}

// runPasses performs the initial scan plus up to RecursionDepth recursion
// passes seeded by newly activated content.
func runPasses(books []Book, storyText string, cfg Settings) []Entry {
	recursionEnabled := cfg.EnableRecursion
	for i := range books {
		if books[i].RecursiveScanning {
			recursionEnabled = true
		}
	}

	var activated []Entry
	seen := make(map[*Book]map[int]bool)
	for i := range books {
		seen[&books[i]] = make(map[int]bool)
	}

	seed := storyText
	fromRecursion := false
	for pass := 0; ; pass++ {
		var fresh []Entry
		for i := range books {
			book := &books[i]
			for _, e := range book.Entries {
				if !e.Enabled || seen[book][e.ID] {
					continue
				}
				if e.DelayUntilRecursion && !fromRecursion {
					continue
				}
				if !matches(e, book, seed, storyText, fromRecursion, cfg) {
					continue
				}
				if e.UseProbability && cfg.intn(100)+1 > e.Probability {
					// The dice are rolled once; a failed gate is final for
					// this activation run.
					seen[book][e.ID] = true
					continue
				}
				seen[book][e.ID] = true
				fresh = append(fresh, e)
			}
		}

		activated = append(activated, fresh...)
		if len(fresh) == 0 || !recursionEnabled || pass >= cfg.RecursionDepth {
			break
		}

		var next strings.Builder
		for _, e := range fresh {
			if e.PreventRecursion {
				continue
			}
			next.WriteString(e.Content)
			next.WriteString("\n")
		}
		if next.Len() == 0 {
			break
		}
		seed = next.String()
		fromRecursion = true
	}

	return activated
}

// matches applies the constant short-circuit, the primary-key scan over the
// entry's effective window, and the selective secondary-key logic.
func matches(e Entry, book *Book, seed, storyText string, fromRecursion bool, cfg Settings) bool {
	if e.Constant {
		return true
	}

	window := scanWindow(seed, storyText, e, book, fromRecursion, cfg)
	if !anyKeyMatches(e.Keys, window, e) {
		return false
	}
	if !e.Selective || len(e.SecondaryKeys) == 0 {
		return true
	}

	matched := 0
	for _, k := range e.SecondaryKeys {
		if keyMatches(k, window, e) {
			matched++
		}
	}
	switch e.SelectiveLogic {
	case LogicAndAny:
		return matched > 0
	case LogicNotAll:
		return matched < len(e.SecondaryKeys)
	case LogicNotAny:
		return matched == 0
	case LogicAndAll:
		return matched == len(e.SecondaryKeys)
	}
	return matched > 0
}

// scanWindow resolves the effective scan depth (entry override, then book,
// then global) and returns the tail of the scan seed sized by it. Recursion
// seeds are scanned whole; depth bounds only the story text.
func scanWindow(seed, storyText string, e Entry, book *Book, fromRecursion bool, cfg Settings) string {
	if fromRecursion {
		return seed
	}

	depth := cfg.ScanDepth
	if book.ScanDepth != nil {
		depth = *book.ScanDepth
	}
	if e.ScanDepth != nil {
		depth = *e.ScanDepth
	}

	limit := depth * charsPerToken
	if limit <= 0 || limit >= len(storyText) {
		return storyText
	}
	return storyText[len(storyText)-limit:]
}

func anyKeyMatches(keys []string, window string, e Entry) bool {
	for _, k := range keys {
		if keyMatches(k, window, e) {
			return true
		}
	}
	return false
}

// resolveGroups keeps only the highest-insertion-order activation within
// each non-empty group.
func resolveGroups(activated []Entry) []Entry {
	winners := make(map[string]int) // group -> index into activated
	drop := make(map[int]bool)
	for i, e := range activated {
		g := e.Group
		if g == "" {
			continue
		}
		if w, ok := winners[g]; ok {
			if e.InsertionOrder > activated[w].InsertionOrder {
				drop[w] = true
				winners[g] = i
			} else {
				drop[i] = true
			}
		} else {
			winners[g] = i
		}
	}
	out := activated[:0]
	for i, e := range activated {
		if !drop[i] {
			out = append(out, e)
		}
	}
	return out
}

// orderEntries sorts by position, then insertion order descending, then
// entry id ascending.
func orderEntries(activated []Entry) {
	sort.SliceStable(activated, func(i, j int) bool {
		a, b := activated[i], activated[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.InsertionOrder != b.InsertionOrder {
			return a.InsertionOrder > b.InsertionOrder
		}
		return a.ID < b.ID
	})
}

// applyBudget walks the ordered list emitting transformed contents until
// the running token estimate would exceed the budget.
func applyBudget(activated []Entry, books []Book, cfg Settings) []Activation {
	budget := cfg.TokenBudget
	for i := range books {
		if b := books[i].TokenBudget; b != nil && *b < budget {
			budget = *b
		}
	}

	var out []Activation
	used := 0
	for _, e := range activated {
		content := cfg.transform(e.Content)
		cost := estimateTokens(content)
		if used+cost > budget {
			break
		}
		used += cost
		out = append(out, Activation{
			Content:  content,
			Position: e.Position,
			Comment:  e.Comment,
			Depth:    e.Depth,
		})
	}
	return out
}

func estimateTokens(s string) int {
	return (len(s) + charsPerToken - 1) / charsPerToken
}
