package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/amiantos/ursceal/pkg/models"
)

// Preset holds the schema definition for the Preset entity — a named bundle
// of provider configuration, sampling settings, lorebook settings, and
// optional prompt template overrides.
type Preset struct {
	ent.Schema
}

// Fields of the Preset.
func (Preset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("provider").
			Values("openai", "deepseek", "openrouter", "anthropic", "horde"),
		field.JSON("api_config", models.APIConfig{}).
			Comment("Provider connection settings: key, base URL, model, worker filters."),
		field.JSON("generation_settings", models.GenerationSettings{}),
		field.JSON("lorebook_settings", models.LorebookSettings{}),
		field.JSON("prompt_templates", models.PromptTemplates{}).
			Optional().
			Comment("Per-generation-type overrides of the built-in prompt text."),
		field.Bool("is_default").
			Default(false).
			Comment("At most one preset carries is_default=true; SetDefaultPreset unsets the previous holder in the same transaction."),
		field.Time("created").
			Default(time.Now).
			Immutable(),
		field.Time("modified").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Preset.
func (Preset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_default"),
		index.Fields("name"),
	}
}
