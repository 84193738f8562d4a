package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiantos/ursceal/pkg/lorebook"
	"github.com/amiantos/ursceal/pkg/macro"
	"github.com/amiantos/ursceal/pkg/models"
)

func baseInput() BuildInput {
	return BuildInput{
		StoryContent: "Once there was a dragon.",
		Characters: []CharacterProfile{{
			Name:        "Brom",
			Description: "A blacksmith.",
			Personality: "stoic",
			Scenario:    "At the forge.",
			MesExample:  "<START>\nBrom: hammer's hot.",
		}},
		Type: models.GenerationContinue,
		Generation: models.GenerationSettings{
			MaxTokens:        200,
			MaxContextTokens: 4096,
		},
		Settings: Settings{IncludeDialogueExamples: true},
		Macro:    macro.Context{UserName: "Ana", CharName: "Brom"},
	}
}

func TestBuild_SingleCharacterSystemPrompt(t *testing.T) {
	p := Build(baseInput())

	assert.True(t, strings.HasPrefix(p.System,
		"You are a creative writing assistant helping to write a novel-style story.\n\n"))
	assert.Contains(t, p.System, "=== CHARACTER PROFILE ===\n")
	assert.Contains(t, p.System, "Name: Brom\n")
	assert.Contains(t, p.System, "Description: A blacksmith.\n")
	assert.Contains(t, p.System, "Current Scenario: At the forge.\n")
	assert.Contains(t, p.System, "DIALOGUE STYLE EXAMPLES:\n")
	assert.Contains(t, p.System, "\n=== INSTRUCTIONS ===\n")
	assert.NotContains(t, p.System, "=== CHARACTER PROFILES ===")
}

func TestBuild_DialogueExamplesGated(t *testing.T) {
	in := baseInput()
	in.Settings.IncludeDialogueExamples = false
	p := Build(in)
	assert.NotContains(t, p.System, "DIALOGUE STYLE EXAMPLES")
}

func TestBuild_MultipleCharactersOmitScenario(t *testing.T) {
	in := baseInput()
	in.Characters = append(in.Characters, CharacterProfile{
		Name: "Seren", Description: "A cartographer.", Personality: "curious", Scenario: "At sea.",
	})
	p := Build(in)

	assert.Contains(t, p.System, "=== CHARACTER PROFILES ===\n\n")
	assert.Contains(t, p.System, "Character 1: Brom\n")
	assert.Contains(t, p.System, "Character 2: Seren\n")
	assert.Contains(t, p.System, "\n---\n\n")
	assert.NotContains(t, p.System, "Scenario")
}

func TestBuild_WorldInformation(t *testing.T) {
	in := baseInput()
	in.Lorebook = []lorebook.Activation{
		{Content: "Dragons breathe fire", Comment: "dragons"},
		{Content: "The forge never cools"},
	}

	p := Build(in)
	assert.Contains(t, p.System, "\n=== WORLD INFORMATION ===\n\n")
	assert.Contains(t, p.System, "Dragons breathe fire\n\nThe forge never cools")
	assert.NotContains(t, p.System, "<!--")

	in.Settings.ShowPrompt = true
	p = Build(in)
	assert.Contains(t, p.System, "<!-- dragons -->\nDragons breathe fire")
}

func TestBuild_Persona(t *testing.T) {
	in := baseInput()
	in.Persona = &Persona{Name: "Ana", Description: "The narrator.", WritingStyle: "spare"}

	p := Build(in)
	assert.Contains(t, p.System, "\n=== USER CHARACTER (PERSONA) ===\n")
	assert.Contains(t, p.System, "Name: Ana\n")
	assert.Contains(t, p.System, "Writing Style: spare\n")
}

func TestBuild_PerspectiveAndAsteriskBlocks(t *testing.T) {
	in := baseInput()
	in.Settings.ThirdPerson = true
	in.Settings.FilterAsterisks = true
	p := Build(in)
	assert.Contains(t, p.System, "third-person past tense")
	assert.Contains(t, p.System, "Never use asterisks")
}

func TestBuild_AsteriskFiltering(t *testing.T) {
	in := baseInput()
	in.Settings.FilterAsterisks = true
	in.StoryContent = "He *grins* widely."
	p := Build(in)
	assert.Contains(t, p.User, "He grins widely.")
}

func TestBuild_PlaceholderSubstitution(t *testing.T) {
	in := baseInput()
	in.Characters[0].Description = "{{char}} serves {{user}} faithfully. {{unknown_macro}} stays."
	p := Build(in)
	assert.Contains(t, p.System, "Brom serves Ana faithfully.")
	assert.Contains(t, p.System, "{{unknown_macro}} stays.")
}

func TestBuild_InstructionPerType(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BuildInput)
		want   string
	}{
		{
			name:   "continue",
			mutate: func(in *BuildInput) { in.Type = models.GenerationContinue },
			want:   "Continue the story naturally from where it left off.",
		},
		{
			name: "character",
			mutate: func(in *BuildInput) {
				in.Type = models.GenerationCharacter
				in.CharacterName = "Seren"
			},
			want: "from Seren's perspective",
		},
		{
			name: "custom",
			mutate: func(in *BuildInput) {
				in.Type = models.GenerationCustom
				in.CustomInstruction = "Introduce a storm."
			},
			want: "Introduce a storm.",
		},
		{
			name: "custom empty falls back",
			mutate: func(in *BuildInput) {
				in.Type = models.GenerationCustom
				in.CustomInstruction = "  "
			},
			want: "Continue the story.",
		},
		{
			name:   "rewrite",
			mutate: func(in *BuildInput) { in.Type = models.GenerationRewrite },
			want:   "Rewrite the story above in third-person past tense.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)
			p := Build(in)
			assert.Contains(t, p.User, tt.want)
		})
	}
}

func TestBuild_RewriteReplacesStoryFraming(t *testing.T) {
	in := baseInput()
	in.Type = models.GenerationRewrite
	p := Build(in)
	assert.Contains(t, p.User, "Here is the story to rewrite:\n\n")
	assert.NotContains(t, p.User, "Here is the current story so far")
}

func TestBuild_InstructionTemplateOverride(t *testing.T) {
	in := baseInput()
	in.Type = models.GenerationCharacter
	in.CharacterName = "Seren"
	in.Templates.Character = "POV: {{charName}}. Base said: {{instruction}}"

	p := Build(in)
	assert.Contains(t, p.User, "POV: Seren.")
	assert.Contains(t, p.User, "from Seren's perspective")
}

func TestBuild_StoryTruncation(t *testing.T) {
	in := baseInput()
	in.StoryContent = strings.Repeat("All work and no play. ", 2000)
	in.Generation.MaxContextTokens = 1000
	in.Generation.MaxTokens = 200

	p := Build(in)
	require.Contains(t, p.User, "Here is the current story so far:\n\n...")

	// The full prompt pair must respect the overall context budget.
	total := EstimateTokens(p.System) + EstimateTokens(p.User) + in.Generation.MaxTokens
	assert.LessOrEqual(t, total, in.Generation.MaxContextTokens)

	// The kept window is the tail, not the head.
	assert.True(t, strings.HasSuffix(strings.Split(p.User, "\n\n---\n\n")[0], "play. "))
}

func TestBuild_EmptyStorySkipsContextBlock(t *testing.T) {
	in := baseInput()
	in.StoryContent = ""
	p := Build(in)
	assert.NotContains(t, p.User, "Here is the current story so far")
	assert.True(t, strings.HasPrefix(p.User, "Continue the story naturally"))
}

func TestBuild_SystemPromptTemplateOverride(t *testing.T) {
	in := baseInput()
	in.Persona = &Persona{Name: "Ana"}
	in.Templates.SystemPrompt = "Chars:{{#each characters}} {{this.name}}{{/each}}." +
		"{{#if persona}} Narrator: {{persona.name}}.{{/if}}" +
		"{{#unless thirdPerson}} First person allowed.{{/unless}}"

	p := Build(in)
	assert.Equal(t, "Chars: Brom. Narrator: Ana. First person allowed.", p.System)
}

func TestRender_Basics(t *testing.T) {
	data := map[string]any{
		"name":  "Brom",
		"flag":  true,
		"items": []any{"a", "b"},
		"inner": map[string]any{"deep": "x"},
	}

	tests := []struct {
		tpl, want string
	}{
		{"hi {{name}}", "hi Brom"},
		{"{{inner.deep}}", "x"},
		{"{{#if flag}}yes{{/if}}", "yes"},
		{"{{#if missing}}yes{{/if}}", ""},
		{"{{#unless missing}}no{{/unless}}", "no"},
		{"{{#each items}}[{{@index}}:{{this}}]{{/each}}", "[0:a][1:b]"},
		{"{{missing}}", ""},
		{"{{#if flag}}{{#each items}}{{this}}{{/each}}{{/if}}", "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.tpl, data), tt.tpl)
	}
}
