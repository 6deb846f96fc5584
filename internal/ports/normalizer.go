package ports

// Normalizer defines the interface for canonical text normalization.
type Normalizer interface {
	// Normalize applies the base canonicalization pipeline.
	Normalize(text string) string
	// NormalizeWith applies the pipeline with the strict and escape-stripping
	// stages toggled individually.
	NormalizeWith(text string, strict, stripEscapes bool) string
}

// EscapeStripper removes terminal control sequences and measures the visual
// width of text that may contain them.
type EscapeStripper interface {
	StripEscapes(text string) string
	VisualLength(text string) int
}
