package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LorebookEntry holds the schema definition for the LorebookEntry entity —
// a single keyword-activated world-info snippet. Entries use ent's default
// integer id; lorebook saves replace all entries in one transaction, so ids
// are reassigned on every save and callers must refetch after saving.
type LorebookEntry struct {
	ent.Schema
}

// Fields of the LorebookEntry.
func (LorebookEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("lorebook_id").
			Immutable(),
		field.JSON("keys", []string{}).
			Comment("Primary keyword list; entry activates when any key matches the scan window."),
		field.JSON("secondary_keys", []string{}).
			Optional(),
		field.Text("content"),
		field.String("comment").
			Optional().
			Comment("Debug label, surfaced as an HTML comment when show_prompt is on."),
		field.Bool("enabled").
			Default(true),
		field.Bool("constant").
			Default(false).
			Comment("Unconditionally activated, no key match required."),
		field.Bool("selective").
			Default(false),
		field.Int("selective_logic").
			Default(0).
			Comment("0=AND-ANY 1=NOT-ALL 2=NOT-ANY 3=AND-ALL over the secondary keys."),
		field.Int("insertion_order").
			Default(100).
			Comment("Higher sorts first; also the group-resolution tiebreak."),
		field.Enum("position").
			Values("before_char", "after_char", "author_note_before", "author_note_after", "at_depth").
			Default("before_char"),
		field.Int("depth").
			Default(0).
			Comment("Only meaningful when position == at_depth."),
		field.Bool("case_sensitive").
			Default(false),
		field.Bool("match_whole_words").
			Default(false),
		field.Bool("use_regex").
			Default(false),
		field.Int("probability").
			Default(100),
		field.Bool("use_probability").
			Default(false).
			Comment("When false the probability value is ignored and the entry always passes the gate."),
		field.Int("scan_depth").
			Optional().
			Nillable().
			Comment("Per-entry override of the lorebook scan depth."),
		field.String("group").
			Optional().
			Comment("Entries sharing a non-empty group resolve to only the highest insertion_order member."),
		field.Bool("prevent_recursion").
			Default(false).
			Comment("Entry's own content is not rescanned for further activations."),
		field.Bool("delay_until_recursion").
			Default(false).
			Comment("Entry only eligible starting from the first recursion pass."),
		field.Int("display_index").
			Default(0).
			Comment("UI ordering only; the activation engine ignores it."),
		field.JSON("extensions", map[string]interface{}{}).
			Optional().
			Comment("Free-form client data, round-tripped untouched."),
	}
}

// Edges of the LorebookEntry.
func (LorebookEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lorebook", Lorebook.Type).
			Ref("entries").
			Required().
			Unique().
			Field("lorebook_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the LorebookEntry.
func (LorebookEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lorebook_id"),
		index.Fields("lorebook_id", "group"),
	}
}
