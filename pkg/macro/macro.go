// Package macro evaluates {{...}} placeholder macros over prompt text.
package macro

import (
	"hash/fnv"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultUserName = "User"
	defaultCharName = "Character"
)

// Context carries the substitution inputs. Now and Intn exist so tests can
// pin the clock and the dice; both default to the real thing when nil.
type Context struct {
	UserName string
	CharName string

	Now  func() time.Time
	Intn func(n int) int
}

func (c Context) userName() string {
	if c.UserName == "" {
		return defaultUserName
	}
	return c.UserName
}

func (c Context) charName() string {
	if c.CharName == "" {
		return defaultCharName
	}
	return c.CharName
}

func (c Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Context) intn(n int) int {
	if c.Intn != nil {
		return c.Intn(n)
	}
	return rand.Intn(n)
}

var (
	placeholderPattern = regexp.MustCompile(`(?i)\{\{(user|char|character)\}\}`)
	macroPattern       = regexp.MustCompile(`\{\{([a-zA-Z_]+)(?::([^{}]*))?\}\}`)
	rollPattern        = regexp.MustCompile(`(?i)^(\d+)d(\d+)$`)
)

// SubstituteNames replaces only the {{user}}/{{char}}/{{character}}
// placeholders. The prompt builder calls this ahead of Process so names
// land before any other macro family is evaluated.
func SubstituteNames(s string, ctx Context) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		switch strings.ToLower(strings.Trim(m, "{}")) {
		case "user":
			return ctx.userName()
		default:
			return ctx.charName()
		}
	})
}

// Process substitutes names and then evaluates the remaining macro
// families in a single left-to-right pass. Substituted text is not
// re-scanned, and unknown macros are left literal.
func Process(s string, ctx Context) string {
	s = SubstituteNames(s, ctx)
	return macroPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := macroPattern.FindStringSubmatch(m)
		name := strings.ToLower(sub[1])
		arg := sub[2]
		if out, ok := evaluate(name, arg, ctx); ok {
			return out
		}
		return m
	})
}

func evaluate(name, arg string, ctx Context) (string, bool) {
	switch name {
	case "random":
		options := splitOptions(arg)
		if len(options) == 0 {
			return "", true
		}
		return options[ctx.intn(len(options))], true

	case "pick":
		options := splitOptions(arg)
		if len(options) == 0 {
			return "", true
		}
		return options[pickIndex(ctx.charName(), arg, len(options))], true

	case "roll":
		total, ok := roll(arg, ctx)
		if !ok {
			return "", false
		}
		return strconv.Itoa(total), true

	case "date":
		return ctx.now().Format("January 2, 2006"), true
	case "time":
		return ctx.now().Format("3:04 PM"), true
	case "weekday":
		return ctx.now().Weekday().String(), true
	case "isotime":
		return ctx.now().Format("15:04"), true

	case "idle_duration":
		return "a moment", true
	}
	return "", false
}

func splitOptions(arg string) []string {
	if strings.TrimSpace(arg) == "" {
		return nil
	}
	parts := strings.Split(arg, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// pickIndex is a deterministic pick: the same character name and option
// list always land on the same choice.
func pickIndex(charName, arg string, n int) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(charName))
	_, _ = h.Write([]byte(arg))
	r := rand.New(rand.NewSource(int64(h.Sum64())))
	return r.Intn(n)
}

// roll parses NdM and sums N uniform rolls of a d-M die.
func roll(arg string, ctx Context) (int, bool) {
	sub := rollPattern.FindStringSubmatch(strings.TrimSpace(arg))
	if sub == nil {
		return 0, false
	}
	n, err1 := strconv.Atoi(sub[1])
	m, err2 := strconv.Atoi(sub[2])
	if err1 != nil || err2 != nil || n <= 0 || m <= 0 {
		return 0, false
	}
	if n > 1000 {
		return 0, false
	}
	total := 0
	for i := 0; i < n; i++ {
		total += ctx.intn(m) + 1
	}
	return total, true
}
