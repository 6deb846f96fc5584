package normalize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
)

// Validate reports whether v is meaningful text: present and non-empty once
// normalized. This is the single gate separating missing and blank values
// from real content in every downstream consumer.
func Validate(v domain.Text) bool {
	return v.Present() && Normalize(v.Value(), Config{}) != ""
}

// ValidateAgainst reports whether v is meaningful and its raw value, compared
// case-sensitively without normalization, is a member of allowed.
func ValidateAgainst(v domain.Text, allowed []string) bool {
	if !Validate(v) {
		return false
	}
	for _, a := range allowed {
		if v.Value() == a {
			return true
		}
	}
	return false
}

// IsPalindrome reports whether v reads the same backwards. When
// foldDiacritics is set the strict canonicalization applies first, so
// accented and plain letters compare equal; otherwise only lowercasing and
// whitespace removal apply and accents are kept apart.
func IsPalindrome(v domain.Text, foldDiacritics bool) bool {
	if !Validate(v) {
		return false
	}
	var s string
	if foldDiacritics {
		s = Normalize(v.Value(), Config{Strict: true})
	} else {
		s = removeSpaces(strings.ToLower(v.Value()))
	}
	return s == Reverse(s)
}

// IsAnagram reports whether a and b are rearrangements of each other,
// ignoring case and whitespace. Two verbatim-identical strings are not
// anagrams of themselves.
func IsAnagram(a, b domain.Text) bool {
	if !Validate(a) || !Validate(b) {
		return false
	}
	if a.Value() == b.Value() {
		return false
	}
	return sortedRunes(removeSpaces(strings.ToLower(a.Value()))) ==
		sortedRunes(removeSpaces(strings.ToLower(b.Value())))
}

// NormalizeAll applies the given policy to each value, first discarding
// entries that fail Validate. The lowercase flag only affects the Soft
// policy; Balanced and Strict lowercase unconditionally.
func NormalizeAll(values []domain.Text, policy domain.Policy, lowercase bool) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !Validate(v) {
			continue
		}
		switch policy {
		case domain.Soft:
			s := strings.TrimSpace(v.Value())
			if lowercase {
				s = strings.ToLower(s)
			}
			out = append(out, s)
		case domain.Strict:
			out = append(out, Normalize(v.Value(), Config{Strict: true, StripEscapes: true}))
		default:
			out = append(out, Normalize(v.Value(), Config{}))
		}
	}
	return out
}

// SortNormalized orders the meaningful values by their normalized form and
// returns the raw values in that order. The sort is stable, so values that
// normalize identically keep their input order.
func SortNormalized(values []domain.Text) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if Validate(v) {
			out = append(out, v.Value())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Normalize(out[i], Config{}) < Normalize(out[j], Config{})
	})
	return out
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}
