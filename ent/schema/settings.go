package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Settings holds the schema definition for the Settings entity — a
// singleton row auto-seeded with defaults on first read.
type Settings struct {
	ent.Schema
}

// Fields of the Settings.
func (Settings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Always the literal value \"singleton\"."),
		field.Bool("show_reasoning").
			Default(true),
		field.Bool("auto_save").
			Default(true),
		field.Bool("show_prompt").
			Default(false).
			Comment("Surfaces lorebook entry comments as HTML comments in the prompt for debugging."),
		field.Bool("third_person").
			Default(true),
		field.Bool("filter_asterisks").
			Default(true).
			Comment("Strips *-wrapped roleplay action text from prompts and adds the no-asterisk instruction."),
		field.Bool("include_dialogue_examples").
			Default(true),
		field.Int("lorebook_scan_depth").
			Default(1000).
			Comment("Token depth of the story tail scanned for lorebook keys."),
		field.Int("lorebook_token_budget").
			Default(500),
		field.Int("lorebook_recursion_depth").
			Default(2),
		field.Bool("lorebook_enable_recursion").
			Default(false),
		field.String("default_persona_id").
			Optional().
			Nillable(),
		field.String("default_preset_id").
			Optional().
			Nillable(),
		field.Bool("onboarding_completed").
			Default(false),
		field.Time("modified").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
