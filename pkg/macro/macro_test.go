package macro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)
}

func TestProcess_NamePlaceholders(t *testing.T) {
	ctx := Context{UserName: "Ana", CharName: "Brom"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"user", "Hello {{user}}!", "Hello Ana!"},
		{"char", "{{char}} nods.", "Brom nods."},
		{"character alias", "{{character}} nods.", "Brom nods."},
		{"case insensitive", "{{USER}} meets {{Char}}", "Ana meets Brom"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(tt.in, ctx))
		})
	}

	t.Run("defaults when names unset", func(t *testing.T) {
		assert.Equal(t, "User and Character", Process("{{user}} and {{char}}", Context{}))
	})
}

func TestProcess_NamesBeforeOtherMacros(t *testing.T) {
	// The name pass runs first, so a macro whose argument contains a
	// placeholder sees the substituted name.
	ctx := Context{UserName: "Ana", CharName: "Brom", Intn: func(n int) int { return 0 }}
	assert.Equal(t, "Ana", Process("{{random:{{user}}}}", ctx))
}

func TestProcess_Random(t *testing.T) {
	ctx := Context{Intn: func(n int) int { return n - 1 }}
	assert.Equal(t, "c", Process("{{random:a,b,c}}", ctx))

	ctx.Intn = func(n int) int { return 0 }
	assert.Equal(t, "a", Process("{{random: a , b , c }}", ctx))
	assert.Equal(t, "", Process("{{random:}}", ctx))
}

func TestProcess_PickDeterministic(t *testing.T) {
	ctx := Context{CharName: "Brom"}
	first := Process("{{pick:red,green,blue}}", ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Process("{{pick:red,green,blue}}", ctx))
	}
	assert.Contains(t, []string{"red", "green", "blue"}, first)
}

func TestProcess_Roll(t *testing.T) {
	// Pin every die to its maximum face.
	ctx := Context{Intn: func(n int) int { return n - 1 }}
	assert.Equal(t, "12", Process("{{roll:2d6}}", ctx))
	assert.Equal(t, "20", Process("{{roll:1d20}}", ctx))

	// Malformed rolls stay literal.
	assert.Equal(t, "{{roll:banana}}", Process("{{roll:banana}}", ctx))
	assert.Equal(t, "{{roll:0d6}}", Process("{{roll:0d6}}", ctx))
}

func TestProcess_DateTime(t *testing.T) {
	ctx := Context{Now: fixedNow}
	assert.Equal(t, "March 9, 2024", Process("{{date}}", ctx))
	assert.Equal(t, "2:30 PM", Process("{{time}}", ctx))
	assert.Equal(t, "Saturday", Process("{{weekday}}", ctx))
	assert.Equal(t, "14:30", Process("{{isotime}}", ctx))
}

func TestProcess_IdleDuration(t *testing.T) {
	assert.Equal(t, "a moment", Process("{{idle_duration}}", Context{}))
}

func TestProcess_UnknownMacrosPreserved(t *testing.T) {
	ctx := Context{UserName: "Ana"}
	assert.Equal(t, "{{frobnicate}} {{setvar:x}}", Process("{{frobnicate}} {{setvar:x}}", ctx))
	assert.Equal(t, "Ana keeps {{mystery}}", Process("{{user}} keeps {{mystery}}", ctx))
}
