package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryCharacter holds the schema definition for the join entity between
// Story and Character. It exists as an explicit schema (rather than a plain
// M2M edge) so membership carries its own timestamp, which drives the
// auto-title member ordering.
type StoryCharacter struct {
	ent.Schema
}

// Fields of the StoryCharacter.
func (StoryCharacter) Fields() []ent.Field {
	return []ent.Field{
		field.String("story_id").
			Immutable(),
		field.String("character_id").
			Immutable(),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StoryCharacter.
func (StoryCharacter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("story", Story.Type).
			Required().
			Unique().
			Field("story_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("character", Character.Type).
			Required().
			Unique().
			Field("character_id").
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StoryCharacter.
func (StoryCharacter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "character_id").Unique(),
	}
}
