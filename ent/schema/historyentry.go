package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry holds the schema definition for the HistoryEntry entity — a
// single snapshot in a story's linear undo/redo log. The log is linear, not
// a tree: any write after an undo truncates everything past the cursor.
type HistoryEntry struct {
	ent.Schema
}

// Fields of the HistoryEntry.
func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("story_id").
			Immutable(),
		field.Text("content").
			Immutable().
			Comment("Full story content snapshot, not a diff."),
		field.Int("word_count").
			Default(0).
			Immutable(),
		field.Time("created").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HistoryEntry.
func (HistoryEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("history_entries").
			Required().
			Unique().
			Field("story_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the HistoryEntry.
func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id"),
	}
}
