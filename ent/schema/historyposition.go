package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// HistoryPosition holds the schema definition for the HistoryPosition
// entity — the single mutable cursor into a story's HistoryEntry log. Kept
// as its own row, rather than a field on Story, so undo/redo can move it in
// the same transaction that reads the target entry without touching the
// Story row.
type HistoryPosition struct {
	ent.Schema
}

// Fields of the HistoryPosition.
func (HistoryPosition) Fields() []ent.Field {
	return []ent.Field{
		field.String("story_id").
			Unique().
			Immutable(),
		field.Int("history_entry_id").
			Comment("Id of the HistoryEntry currently applied to the story's content."),
		field.Time("updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the HistoryPosition.
func (HistoryPosition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("history_position").
			Required().
			Unique().
			Field("story_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
