package models

import "fmt"

// GenerationType selects which instruction the prompt builder appends to
// the story context.
type GenerationType string

const (
	GenerationContinue  GenerationType = "continue"
	GenerationCharacter GenerationType = "character"
	GenerationCustom    GenerationType = "custom"
	GenerationRewrite   GenerationType = "rewrite-third-person"
)

// ParseGenerationType validates a wire-level type string.
func ParseGenerationType(s string) (GenerationType, error) {
	switch GenerationType(s) {
	case GenerationContinue, GenerationCharacter, GenerationCustom, GenerationRewrite:
		return GenerationType(s), nil
	}
	return "", fmt.Errorf("unknown generation type %q", s)
}
