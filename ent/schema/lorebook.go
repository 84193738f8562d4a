package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lorebook holds the schema definition for the Lorebook entity.
type Lorebook struct {
	ent.Schema
}

// Fields of the Lorebook.
func (Lorebook) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Int("scan_depth").
			Optional().
			Nillable().
			Comment("Null defers to the global lorebook scan depth setting."),
		field.Int("token_budget").
			Optional().
			Nillable().
			Comment("Null defers to the global lorebook token budget setting."),
		field.Bool("recursive_scanning").
			Default(false),
		field.JSON("extensions", map[string]interface{}{}).
			Optional().
			Comment("Free-form client data, round-tripped untouched."),
		field.Time("created").
			Default(time.Now).
			Immutable(),
		field.Time("modified").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lorebook.
func (Lorebook) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("entries", LorebookEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("stories", Story.Type).
			Ref("lorebooks").
			Through("story_lorebooks", StoryLorebook.Type),
	}
}

// Indexes of the Lorebook.
func (Lorebook) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
