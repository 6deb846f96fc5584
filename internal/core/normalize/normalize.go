// Package normalize implements the canonical text pipeline shared by every
// other operation in the toolkit: NFD decomposition, combining-mark removal,
// whitespace collapse, trim and lowercase, with optional strict
// (alphanumeric-only) and terminal-escape-stripping stages.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_string_toolkit/internal/pool"
)

// Config toggles the optional stages of the pipeline. The zero value is the
// base canonicalization.
type Config struct {
	// Strict additionally removes every non-alphanumeric rune and then the
	// remaining internal spaces, yielding one contiguous alphanumeric run.
	Strict bool
	// StripEscapes additionally removes terminal control sequences.
	StripEscapes bool
}

// combiningMarks covers the combining diacritical marks block. After NFD
// decomposition, removing it strips accents while keeping the base letters.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// foldPool reuses NFD -> remove-marks transformer chains across calls.
var foldPool = sync.Pool{
	New: func() interface{} {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(combiningMarks)),
		)
	},
}

var builders = pool.NewBuilderPool()

// Normalize applies the pipeline in fixed order: decompose, strip combining
// marks, collapse whitespace runs to single spaces, trim, lowercase, then the
// optional strict and escape-stripping stages. It is pure, deterministic and
// total: malformed input falls through untransformed rather than failing.
func Normalize(text string, cfg Config) string {
	t := foldPool.Get().(transform.Transformer)
	t.Reset()
	folded, _, err := transform.String(t, text)
	foldPool.Put(t)
	if err != nil {
		folded = text
	}

	s := strings.ToLower(strings.TrimSpace(collapseWhitespace(folded)))
	// Escape stripping runs before the strict filter: the strict filter would
	// otherwise eat the ESC and '[' bytes and leak the parameter digits of a
	// color sequence into the canonical form.
	if cfg.StripEscapes {
		s = StripEscapes(s)
	}
	if cfg.Strict {
		s = strictFold(s)
	}
	return s
}

// collapseWhitespace replaces every maximal run of whitespace with a single
// ASCII space in one pass.
func collapseWhitespace(s string) string {
	sb := builders.Get()
	defer builders.Put(sb)
	sb.Grow(len(s))

	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				sb.WriteByte(' ')
				lastWasSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		lastWasSpace = false
	}
	return sb.String()
}

// strictFold removes every rune that is not a letter or digit. Separators
// and the already-collapsed internal spaces disappear together, so adjacent
// alphanumeric runs join cleanly ("a-_-b" becomes "ab").
func strictFold(s string) string {
	sb := builders.Get()
	defer builders.Put(sb)
	sb.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
