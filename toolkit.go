package stringtoolkit

import (
	"github.com/baditaflorin/go_string_toolkit/internal/adapters/logger"
	"github.com/baditaflorin/go_string_toolkit/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
	"github.com/baditaflorin/go_string_toolkit/internal/core/normalize"
	"github.com/baditaflorin/go_string_toolkit/internal/core/table"
)

// Text is a three-state optional string: missing, present-but-blank, or
// meaningful. The zero value is the missing state.
type Text = domain.Text

// NewText wraps a raw string as a present Text value.
func NewText(s string) Text { return domain.NewText(s) }

// NoText returns the missing state.
func NoText() Text { return domain.NoText() }

// Record is an ordered sequence of fields; the first record passed to
// RenderTable fixes the column order.
type Record = domain.Record

// Field is one named cell of a record.
type Field = domain.Field

// NoDataMessage is returned by RenderTable for an empty record sequence.
const NoDataMessage = table.NoDataMessage

var defaultRenderer = table.NewRenderer(
	logger.NewNopLogger(),
	normalizer.NewDefaultNormalizer(),
)

// Normalize canonicalizes text for comparison: accents stripped, whitespace
// collapsed to single spaces, trimmed, lowercased. Idempotent.
func Normalize(text string) string {
	return normalize.Normalize(text, normalize.Config{})
}

// NormalizeStrict canonicalizes and then removes everything that is not a
// letter or digit, yielding one contiguous alphanumeric run.
func NormalizeStrict(text string) string {
	return normalize.Normalize(text, normalize.Config{Strict: true})
}

// NormalizeWith canonicalizes with the strict and escape-stripping stages
// toggled individually.
func NormalizeWith(text string, strict, stripEscapes bool) string {
	return normalize.Normalize(text, normalize.Config{Strict: strict, StripEscapes: stripEscapes})
}

// StripEscapes removes terminal control sequences only, preserving case and
// spacing.
func StripEscapes(text string) string {
	return normalize.StripEscapes(text)
}

// VisualLength is the rune count of text once control sequences are removed.
func VisualLength(text string) int {
	return normalize.VisualLength(text)
}

// Validate reports whether v is meaningful text: present, and non-empty once
// normalized.
func Validate(v Text) bool {
	return normalize.Validate(v)
}

// ValidateAgainst reports whether v is meaningful and its raw value is a
// case-sensitive member of allowed.
func ValidateAgainst(v Text, allowed []string) bool {
	return normalize.ValidateAgainst(v, allowed)
}

// IsPalindrome reports whether v reads the same backwards. foldDiacritics
// selects the strict canonicalization first; otherwise only lowercasing and
// whitespace removal apply, so accented letters stay distinct.
func IsPalindrome(v Text, foldDiacritics bool) bool {
	return normalize.IsPalindrome(v, foldDiacritics)
}

// IsAnagram reports whether a and b are case- and whitespace-insensitive
// rearrangements of each other. Two verbatim-identical strings are not
// anagrams of themselves.
func IsAnagram(a, b Text) bool {
	return normalize.IsAnagram(a, b)
}

// NormalizeBalanced applies the base canonicalization to every meaningful
// value, discarding missing and blank entries.
func NormalizeBalanced(values []Text) []string {
	return normalize.NormalizeAll(values, domain.Balanced, false)
}

// NormalizeSoft trims every meaningful value, optionally lowercasing;
// accents and internal punctuation are preserved.
func NormalizeSoft(values []Text, lowercase bool) []string {
	return normalize.NormalizeAll(values, domain.Soft, lowercase)
}

// NormalizeStrictAll applies the alphanumeric-only, escape-stripped
// canonicalization to every meaningful value.
func NormalizeStrictAll(values []Text) []string {
	return normalize.NormalizeAll(values, domain.Strict, false)
}

// SortNormalized orders the meaningful values by their normalized form and
// returns the raw values in that order.
func SortNormalized(values []Text) []string {
	return normalize.SortNormalized(values)
}

// RenderTable lays records out as a box-drawing table. Empty input yields
// NoDataMessage; schema or cell inconsistencies yield an error string
// prefixed "Error: " rather than a fault.
func RenderTable(records []Record) string {
	return defaultRenderer.Render(records)
}
