// Package prompt composes the system and user prompts for a generation
// request: character profiles, activated world information, persona,
// instructions, and a context-budgeted story window.
package prompt

import (
	"fmt"
	"strings"

	"github.com/amiantos/ursceal/pkg/lorebook"
	"github.com/amiantos/ursceal/pkg/macro"
	"github.com/amiantos/ursceal/pkg/models"
)

// CharacterProfile is the prompt-facing slice of a character.
type CharacterProfile struct {
	Name        string
	Description string
	Personality string
	Scenario    string
	MesExample  string
}

// Persona is the prompt-facing slice of the user's narrator character.
type Persona struct {
	Name         string
	Description  string
	WritingStyle string
}

// Settings are the global prompt-affecting toggles from the settings row.
type Settings struct {
	ShowPrompt              bool
	ThirdPerson             bool
	FilterAsterisks         bool
	IncludeDialogueExamples bool
}

// BuildInput carries everything the builder needs for one request.
type BuildInput struct {
	StoryContent string
	Characters   []CharacterProfile
	Persona      *Persona
	Lorebook     []lorebook.Activation

	Type              models.GenerationType
	CharacterName     string
	CustomInstruction string

	Settings   Settings
	Generation models.GenerationSettings
	Templates  models.PromptTemplates

	Macro macro.Context
}

// Prompts is the built pair handed to a provider.
type Prompts struct {
	System string
	User   string
}

const (
	preamble = "You are a creative writing assistant helping to write a novel-style story.\n\n"

	instructionsBlock = "\n=== INSTRUCTIONS ===\n" +
		"Write engaging, novel-style prose that flows naturally from the existing story. " +
		"Stay consistent with the established characters, setting, and tone. " +
		"Show character emotion and action through concrete detail rather than summary.\n"

	thirdPersonBlock = "\nWrite in third-person past tense. " +
		"Refer to all characters by name or pronoun; never write as \"I\" unless inside quoted dialogue.\n"

	noAsterisksBlock = "\nNever use asterisks (*) for actions or emphasis; express everything in plain prose.\n"

	continueInstruction = "Continue the story naturally from where it left off. " +
		"Write the next 2-3 paragraphs maximum, maintaining the established tone and style, " +
		"writing less if it sets up a good opportunity for other characters."

	defaultCustomInstruction = "Continue the story."

	rewriteInstruction = "Rewrite the story above in third-person past tense. " +
		"Replace all first-person narration, remove every asterisk action, " +
		"and preserve the plot events and dialogue exactly."
)

func characterInstruction(name string) string {
	return fmt.Sprintf("Write the next part of the story from %s's perspective. "+
		"Focus on their thoughts, actions, and dialogue. Write 2-3 paragraphs maximum.", name)
}

// Build assembles the system and user prompt pair.
func Build(in BuildInput) Prompts {
	system := buildSystemPrompt(in)
	instruction := in.process(instructionText(in))
	user := buildUserPrompt(in, system, instruction)
	return Prompts{System: system, User: user}
}

// process runs the standard text pipeline: name substitution, then macros,
// then asterisk removal when enabled.
func (in BuildInput) process(s string) string {
	s = macro.Process(s, in.Macro)
	if in.Settings.FilterAsterisks {
		s = strings.ReplaceAll(s, "*", "")
	}
	return s
}

func buildSystemPrompt(in BuildInput) string {
	if in.Templates.SystemPrompt != "" {
		return in.process(Render(in.Templates.SystemPrompt, templateData(in)))
	}

	var sb strings.Builder
	sb.WriteString(preamble)
	writeCharacterSections(&sb, in)
	writeWorldInfo(&sb, in)
	writePersona(&sb, in)
	sb.WriteString(instructionsBlock)
	if in.Settings.ThirdPerson {
		sb.WriteString(thirdPersonBlock)
	}
	if in.Settings.FilterAsterisks {
		sb.WriteString(noAsterisksBlock)
	}
	return in.process(sb.String())
}

// writeCharacterSections emits the single-profile block, or the multi
// profile list with scenarios omitted (conflicting scenarios read worse
// than none).
func writeCharacterSections(sb *strings.Builder, in BuildInput) {
	switch len(in.Characters) {
	case 0:
		return
	case 1:
		c := in.Characters[0]
		sb.WriteString("=== CHARACTER PROFILE ===\n")
		sb.WriteString("Name: " + c.Name + "\n")
		if c.Description != "" {
			sb.WriteString("Description: " + c.Description + "\n")
		}
		if c.Personality != "" {
			sb.WriteString("Personality: " + c.Personality + "\n")
		}
		if c.Scenario != "" {
			sb.WriteString("Current Scenario: " + c.Scenario + "\n")
		}
		if in.Settings.IncludeDialogueExamples && c.MesExample != "" {
			sb.WriteString("DIALOGUE STYLE EXAMPLES:\n" + c.MesExample + "\n")
		}
	default:
		sb.WriteString("=== CHARACTER PROFILES ===\n\n")
		for i, c := range in.Characters {
			if i > 0 {
				sb.WriteString("\n---\n\n")
			}
			sb.WriteString(fmt.Sprintf("Character %d: %s\n", i+1, c.Name))
			if c.Description != "" {
				sb.WriteString("Description: " + c.Description + "\n")
			}
			if c.Personality != "" {
				sb.WriteString("Personality: " + c.Personality + "\n")
			}
		}
	}
}

func writeWorldInfo(sb *strings.Builder, in BuildInput) {
	if len(in.Lorebook) == 0 {
		return
	}
	sb.WriteString("\n=== WORLD INFORMATION ===\n\n")
	for i, a := range in.Lorebook {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if in.Settings.ShowPrompt && a.Comment != "" {
			sb.WriteString("<!-- " + a.Comment + " -->\n")
		}
		sb.WriteString(a.Content)
	}
	sb.WriteString("\n")
}

func writePersona(sb *strings.Builder, in BuildInput) {
	if in.Persona == nil {
		return
	}
	sb.WriteString("\n=== USER CHARACTER (PERSONA) ===\n")
	sb.WriteString("Name: " + in.Persona.Name + "\n")
	if in.Persona.Description != "" {
		sb.WriteString("Description: " + in.Persona.Description + "\n")
	}
	if in.Persona.WritingStyle != "" {
		sb.WriteString("Writing Style: " + in.Persona.WritingStyle + "\n")
	}
}

// instructionText resolves the per-type instruction, honoring preset
// template overrides with {{charName}} and {{instruction}} substituted.
func instructionText(in BuildInput) string {
	var base, override string
	switch in.Type {
	case models.GenerationContinue:
		base, override = continueInstruction, in.Templates.Continue
	case models.GenerationCharacter:
		base, override = characterInstruction(in.CharacterName), in.Templates.Character
	case models.GenerationCustom:
		base = in.CustomInstruction
		if strings.TrimSpace(base) == "" {
			base = defaultCustomInstruction
		}
		override = in.Templates.Instruction
	case models.GenerationRewrite:
		base, override = rewriteInstruction, in.Templates.Rewrite
	default:
		base = continueInstruction
	}

	if override == "" {
		return base
	}
	out := strings.ReplaceAll(override, "{{charName}}", in.CharacterName)
	out = strings.ReplaceAll(out, "{{instruction}}", base)
	return out
}

// buildUserPrompt emits the budgeted story window followed by the
// instruction. The remaining budget subtracts the system prompt, the
// instruction, the generation reservation, and a safety margin.
func buildUserPrompt(in BuildInput, system, instruction string) string {
	remaining := in.Generation.MaxContextTokens -
		EstimateTokens(system) -
		EstimateTokens(instruction) -
		in.Generation.MaxTokens -
		safetyMarginTokens

	content := in.process(in.StoryContent)
	var sb strings.Builder
	if content != "" {
		tail := TruncateTail(content, remaining)
		if in.Type == models.GenerationRewrite {
			sb.WriteString("Here is the story to rewrite:\n\n" + tail + "\n\n---\n\n")
		} else {
			sb.WriteString("Here is the current story so far:\n\n" + tail + "\n\n---\n\n")
		}
	}
	sb.WriteString(instruction)
	return sb.String()
}

// templateData builds the render context for a preset system-prompt
// template override.
func templateData(in BuildInput) map[string]any {
	chars := make([]any, 0, len(in.Characters))
	for _, c := range in.Characters {
		chars = append(chars, map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"personality": c.Personality,
			"scenario":    c.Scenario,
			"mesExample":  c.MesExample,
		})
	}
	entries := make([]any, 0, len(in.Lorebook))
	for _, a := range in.Lorebook {
		entries = append(entries, map[string]any{
			"content": a.Content,
			"comment": a.Comment,
		})
	}
	data := map[string]any{
		"characters":  chars,
		"worldInfo":   entries,
		"thirdPerson": in.Settings.ThirdPerson,
		"charName":    in.Macro.CharName,
		"userName":    in.Macro.UserName,
	}
	if in.Persona != nil {
		data["persona"] = map[string]any{
			"name":         in.Persona.Name,
			"description":  in.Persona.Description,
			"writingStyle": in.Persona.WritingStyle,
		}
	}
	return data
}
