package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Story holds the schema definition for the Story entity.
type Story struct {
	ent.Schema
}

// Fields of the Story.
func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Text("content").
			Optional().
			Comment("Plain text, UTF-8. Source for prompt-builder truncation and lorebook scanning."),
		field.Time("created").
			Default(time.Now).
			Immutable(),
		field.Time("modified").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("persona_character_id").
			Optional().
			Nillable().
			Comment("Must reference an existing character; cleared when that character leaves the story."),
		field.String("config_preset_id").
			Optional().
			Nillable(),
		field.Bool("needs_rewrite_prompt").
			Default(false),
		field.Int("word_count").
			Default(0).
			Comment("Derived on every content write — never trusted from the client."),
		field.JSON("avatar_windows", map[string]interface{}{}).
			Optional().
			Comment("Opaque UI layout blob, round-tripped untouched."),
	}
}

// Edges of the Story.
func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("characters", Character.Type).
			Through("story_characters", StoryCharacter.Type),
		edge.To("lorebooks", Lorebook.Type).
			Through("story_lorebooks", StoryLorebook.Type),
		edge.To("history_entries", HistoryEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("history_position", HistoryPosition.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Story.
func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("modified"),
		index.Fields("persona_character_id"),
		index.Fields("config_preset_id"),
	}
}
