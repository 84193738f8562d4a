package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Character holds the schema definition for the Character entity. Columns
// mirror the V2 character-card data block so cards round-trip through
// import/export without a serialization detour.
type Character struct {
	ent.Schema
}

// Fields of the Character.
func (Character) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Text("personality").
			Optional(),
		field.Text("scenario").
			Optional(),
		field.Text("first_mes").
			Optional(),
		field.Text("mes_example").
			Optional(),
		field.Text("system_prompt").
			Optional().
			Comment("Card-level system prompt; stored but not injected into novel prompts."),
		field.Text("post_history_instructions").
			Optional(),
		field.JSON("alternate_greetings", []string{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("creator").
			Optional(),
		field.String("character_version").
			Optional(),
		field.JSON("extensions", map[string]interface{}{}).
			Optional().
			Comment("Free-form card extensions, round-tripped untouched. ursceal_lorebook_id lives here on import but is mirrored to its own column below."),
		field.String("ursceal_lorebook_id").
			Optional().
			Nillable().
			Comment("Lorebook imported alongside this card, merged into generation when the character is in a story."),
		field.String("avatar_path").
			Optional().
			Nillable().
			Comment("Relative path under data.root/avatars; card PNG bytes live on disk, not in the DB."),
		field.String("thumbnail_path").
			Optional().
			Nillable(),
		field.Time("created").
			Default(time.Now).
			Immutable(),
		field.Time("modified").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Character.
func (Character) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stories", Story.Type).
			Ref("characters").
			Through("story_characters", StoryCharacter.Type),
	}
}

// Indexes of the Character.
func (Character) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
