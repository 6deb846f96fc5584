package normalizer

import (
	"github.com/baditaflorin/go_string_toolkit/internal/core/normalize"
	"github.com/baditaflorin/go_string_toolkit/internal/ports"
)

// DefaultNormalizer adapts the core pipeline to the ports.Normalizer and
// ports.EscapeStripper interfaces.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() *DefaultNormalizer {
	return &DefaultNormalizer{}
}

var _ ports.Normalizer = (*DefaultNormalizer)(nil)
var _ ports.EscapeStripper = (*DefaultNormalizer)(nil)

// Normalize applies the base canonicalization pipeline.
func (n *DefaultNormalizer) Normalize(text string) string {
	return normalize.Normalize(text, normalize.Config{})
}

// NormalizeWith applies the pipeline with the optional stages toggled.
func (n *DefaultNormalizer) NormalizeWith(text string, strict, stripEscapes bool) string {
	return normalize.Normalize(text, normalize.Config{
		Strict:       strict,
		StripEscapes: stripEscapes,
	})
}

// StripEscapes removes terminal control sequences only, leaving case and
// spacing intact for visual measurement.
func (n *DefaultNormalizer) StripEscapes(text string) string {
	return normalize.StripEscapes(text)
}

// VisualLength measures the escape-stripped rune count of text.
func (n *DefaultNormalizer) VisualLength(text string) int {
	return normalize.VisualLength(text)
}
