package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Render evaluates a small handlebars-like template against data. Supported
// constructs: {{path}}, {{#if path}}...{{/if}}, {{#unless path}}...{{/unless}},
// {{#each path}}...{{/each}}. Inside an each block, {{this}} is the current
// item and {{@index}} its zero-based position; dotted paths descend into
// nested maps. Unknown paths render as empty. A block left unclosed runs to
// the end of the template; stray close tags and unrecognized {{#...}} tags
// render literally.
func Render(tpl string, data map[string]any) string {
	nodes, _ := parseNodes(tokenize(tpl), 0, "")
	var sb strings.Builder
	evalNodes(&sb, nodes, []any{data})
	return sb.String()
}

type tplToken struct {
	text    string // literal text, or the full {{...}} tag
	isTag   bool
	tag     string // if/unless/each for block open, /if etc for close
	arg     string
	isOpen  bool
	isClose bool
}

var tagPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

func tokenize(tpl string) []tplToken {
	var tokens []tplToken
	last := 0
	for _, loc := range tagPattern.FindAllStringIndex(tpl, -1) {
		if loc[0] > last {
			tokens = append(tokens, tplToken{text: tpl[last:loc[0]]})
		}
		raw := tpl[loc[0]:loc[1]]
		inner := strings.TrimSpace(raw[2 : len(raw)-2])
		tok := tplToken{text: raw, isTag: true}
		switch {
		case strings.HasPrefix(inner, "#"):
			parts := strings.Fields(inner[1:])
			if len(parts) == 2 && isBlockTag(parts[0]) {
				tok.isOpen = true
				tok.tag = parts[0]
				tok.arg = parts[1]
			}
		case strings.HasPrefix(inner, "/"):
			name := strings.TrimSpace(inner[1:])
			if isBlockTag(name) {
				tok.isClose = true
				tok.tag = name
			}
		default:
			tok.arg = inner
		}
		tokens = append(tokens, tok)
		last = loc[1]
	}
	if last < len(tpl) {
		tokens = append(tokens, tplToken{text: tpl[last:]})
	}
	return tokens
}

func isBlockTag(s string) bool {
	return s == "if" || s == "unless" || s == "each"
}

type tplNode struct {
	text     string
	path     string // for var nodes
	block    string // if/unless/each
	children []tplNode
}

// parseNodes consumes tokens until the matching close tag for inside (or
// the end of input) and returns the parsed children plus the next index.
func parseNodes(tokens []tplToken, start int, inside string) ([]tplNode, int) {
	var nodes []tplNode
	i := start
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok.isClose && tok.tag == inside:
			return nodes, i + 1
		case tok.isOpen:
			children, next := parseNodes(tokens, i+1, tok.tag)
			nodes = append(nodes, tplNode{block: tok.tag, path: tok.arg, children: children})
			i = next
		case tok.isTag && tok.arg != "" && !tok.isClose:
			nodes = append(nodes, tplNode{path: tok.arg})
			i++
		default:
			// Plain text, or a tag we don't understand left literal.
			nodes = append(nodes, tplNode{text: tok.text})
			i++
		}
	}
	return nodes, i
}

func evalNodes(sb *strings.Builder, nodes []tplNode, stack []any) {
	for _, n := range nodes {
		switch {
		case n.block == "if":
			if truthy(lookup(n.path, stack)) {
				evalNodes(sb, n.children, stack)
			}
		case n.block == "unless":
			if !truthy(lookup(n.path, stack)) {
				evalNodes(sb, n.children, stack)
			}
		case n.block == "each":
			items, _ := lookup(n.path, stack).([]any)
			for idx, item := range items {
				frame := map[string]any{"this": item, "@index": idx}
				evalNodes(sb, n.children, append(stack, frame))
			}
		case n.path != "":
			sb.WriteString(stringify(lookup(n.path, stack)))
		default:
			sb.WriteString(n.text)
		}
	}
}

// lookup resolves a dotted path against the scope stack, innermost first.
func lookup(path string, stack []any) any {
	parts := strings.Split(path, ".")
	for i := len(stack) - 1; i >= 0; i-- {
		if v, ok := resolve(stack[i], parts); ok {
			return v
		}
	}
	return nil
}

func resolve(scope any, parts []string) (any, bool) {
	cur := scope
	for pi, p := range parts {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[p]
			if !ok {
				// "this" and "@index" only exist in each frames; a plain
				// map scope may also expose the item directly.
				if p == "this" && pi == 0 {
					continue
				}
				return nil, false
			}
			cur = v
		default:
			if p == "this" && pi == 0 {
				continue
			}
			return nil, false
		}
	}
	return cur, true
}

func truthy(v any) bool {
	switch c := v.(type) {
	case nil:
		return false
	case bool:
		return c
	case string:
		return c != ""
	case []any:
		return len(c) > 0
	case int:
		return c != 0
	case float64:
		return c != 0
	}
	return true
}

func stringify(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	}
	return fmt.Sprintf("%v", v)
}
