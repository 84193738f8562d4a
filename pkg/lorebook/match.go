package lorebook

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// keyMatches tests a single key against the scan window under the entry's
// matching flags. An unparseable regex key never matches.
func keyMatches(key, window string, e Entry) bool {
	if key == "" {
		return false
	}
	if e.UseRegex {
		return regexMatches(key, window, e)
	}
	return literalMatches(key, window, e)
}

func regexMatches(key, window string, e Entry) bool {
	pattern := key
	if e.MatchWholeWords {
		pattern = `\b(?:` + pattern + `)\b`
	}
	if !e.CaseSensitive {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(window)
}

func literalMatches(key, window string, e Entry) bool {
	if !e.CaseSensitive {
		key = strings.ToLower(key)
		window = strings.ToLower(window)
	}
	if !e.MatchWholeWords {
		return strings.Contains(window, key)
	}

	// Whole-word: at least one occurrence must be bounded by non-word runes.
	for start := 0; ; {
		i := strings.Index(window[start:], key)
		if i < 0 {
			return false
		}
		i += start
		if boundedByNonWord(window, i, i+len(key)) {
			return true
		}
		start = i + 1
	}
}

func boundedByNonWord(s string, lo, hi int) bool {
	if lo > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:lo])
		if isWordRune(r) {
			return false
		}
	}
	if hi < len(s) {
		r, _ := utf8.DecodeRuneInString(s[hi:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
