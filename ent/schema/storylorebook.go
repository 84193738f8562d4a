package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryLorebook holds the schema definition for the join entity between
// Story and Lorebook; a story may attach more than one lorebook.
type StoryLorebook struct {
	ent.Schema
}

// Fields of the StoryLorebook.
func (StoryLorebook) Fields() []ent.Field {
	return []ent.Field{
		field.String("story_id").
			Immutable(),
		field.String("lorebook_id").
			Immutable(),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StoryLorebook.
func (StoryLorebook) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("story", Story.Type).
			Required().
			Unique().
			Field("story_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lorebook", Lorebook.Type).
			Required().
			Unique().
			Field("lorebook_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StoryLorebook.
func (StoryLorebook) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "lorebook_id").Unique(),
	}
}
