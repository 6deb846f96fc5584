package stringtoolkit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_string_toolkit/internal/core/normalize"
)

// Capitalize uppercases the first rune of s, safely for multi-byte UTF-8.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// splitWords canonicalizes s and splits it into lowercase words. Dashes,
// underscores, dots and slashes count as word separators alongside spaces.
func splitWords(s string) []string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.', '/':
			return ' '
		}
		return r
	}, Normalize(s))
	return strings.Fields(s)
}

// Words splits s into its canonical lowercase words: accents folded,
// dashes, underscores, dots and slashes treated as separators.
func Words(s string) []string {
	return splitWords(s)
}

// CamelCase converts s to camelCase.
func CamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(words[0])
	for _, w := range words[1:] {
		sb.WriteString(Capitalize(w))
	}
	return sb.String()
}

// PascalCase converts s to PascalCase.
func PascalCase(s string) string {
	var sb strings.Builder
	for _, w := range splitWords(s) {
		sb.WriteString(Capitalize(w))
	}
	return sb.String()
}

// SnakeCase converts s to snake_case.
func SnakeCase(s string) string {
	return strings.Join(splitWords(s), "_")
}

// KebabCase converts s to kebab-case.
func KebabCase(s string) string {
	return strings.Join(splitWords(s), "-")
}

// Slugify converts s to a URL-safe slug: escapes and accents removed,
// lowercased, non-alphanumeric runs collapsed to single dashes.
func Slugify(s string) string {
	s = Normalize(StripEscapes(s))
	var sb strings.Builder
	sb.Grow(len(s))
	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// Truncate shortens s to a max-rune prefix and appends "..." when anything
// was cut. With preserveWords the cut point backs up to the nearest space
// before the limit so no word is split.
func Truncate(s string, max int, preserveWords bool) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := runes[:max]
	if preserveWords {
		for i := len(cut) - 1; i > 0; i-- {
			if unicode.IsSpace(cut[i]) {
				cut = cut[:i]
				break
			}
		}
	}
	return string(cut) + "..."
}

// Mask replaces all but the last visible runes of s with '*'. Values shorter
// than visible come back unchanged.
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if len(runes) <= visible {
		return s
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}

// CountWords counts the words of s after canonicalization, so punctuation
// runs and repeated whitespace do not inflate the count.
func CountWords(s string) int {
	return len(strings.Fields(Normalize(s)))
}

// CountChars counts the visible runes of s, excluding escape sequences and,
// unless includeSpaces is set, whitespace.
func CountChars(s string, includeSpaces bool) int {
	stripped := StripEscapes(s)
	if includeSpaces {
		return utf8.RuneCountInString(stripped)
	}
	n := 0
	for _, r := range stripped {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	return normalize.Reverse(s)
}
