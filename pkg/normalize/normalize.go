// Package normalize is the configurable facade over the canonical text
// pipeline: normalization, escape stripping, validation, palindrome and
// anagram checks, and the array-normalization policies.
package normalize

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_string_toolkit/internal/adapters/logger"
	"github.com/baditaflorin/go_string_toolkit/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
	core "github.com/baditaflorin/go_string_toolkit/internal/core/normalize"
	"github.com/baditaflorin/go_string_toolkit/internal/ports"
	"github.com/baditaflorin/go_string_toolkit/internal/warmup"
)

// Text is the three-state optional string accepted by the validators.
type Text = domain.Text

// NewText wraps a raw string as a present Text value.
func NewText(s string) Text { return domain.NewText(s) }

// NoText returns the missing state.
func NoText() Text { return domain.NoText() }

// Policy selects an array-normalization strategy.
type Policy = domain.Policy

// Array-normalization policies.
const (
	Balanced = domain.Balanced
	Soft     = domain.Soft
	Strict   = domain.Strict
)

// Normalizer provides the canonical-text operations behind a configured
// logger. All methods are safe for concurrent use; there is no shared
// mutable state between calls.
type Normalizer struct {
	logger  ports.Logger
	adapter *normalizer.DefaultNormalizer
}

// Option defines a functional option for configuring the Normalizer.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	WarmUp       bool
	WarmUpConfig warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithQuietLogging discards all log output.
func WithQuietLogging() Option {
	return func(cfg *config) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithWarmUp primes the transformer and builder pools on construction.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc warmup.Config) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer. Without options it logs through the standard
// logger.
func New(opts ...Option) (*Normalizer, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	n := &Normalizer{
		logger:  cfg.Logger,
		adapter: normalizer.NewDefaultNormalizer(),
	}

	if cfg.WarmUp {
		manager := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		manager.RegisterNormalizer(n.adapter)
		manager.WarmUp(context.Background())
	}
	return n, nil
}

// Normalize applies the base canonicalization pipeline: accent removal,
// whitespace collapse, trim, lowercase.
func (n *Normalizer) Normalize(text string) string {
	out := core.Normalize(text, core.Config{})
	n.logger.Debug("Normalized text", "in", text, "out", out)
	return out
}

// NormalizeStrict additionally removes every non-alphanumeric rune and the
// remaining internal spaces.
func (n *Normalizer) NormalizeStrict(text string) string {
	return core.Normalize(text, core.Config{Strict: true})
}

// NormalizeWith applies the pipeline with the strict and escape-stripping
// stages toggled individually.
func (n *Normalizer) NormalizeWith(text string, strict, stripEscapes bool) string {
	return core.Normalize(text, core.Config{Strict: strict, StripEscapes: stripEscapes})
}

// StripEscapes removes terminal control sequences only, preserving case and
// spacing.
func (n *Normalizer) StripEscapes(text string) string {
	return core.StripEscapes(text)
}

// VisualLength is the rune count of text once control sequences are removed.
func (n *Normalizer) VisualLength(text string) int {
	return core.VisualLength(text)
}

// Validate reports whether v is meaningful text: present and non-empty once
// normalized.
func (n *Normalizer) Validate(v Text) bool {
	return core.Validate(v)
}

// ValidateAgainst reports whether v is meaningful and its raw value is a
// case-sensitive member of allowed.
func (n *Normalizer) ValidateAgainst(v Text, allowed []string) bool {
	return core.ValidateAgainst(v, allowed)
}

// IsPalindrome reports whether v reads the same backwards; foldDiacritics
// selects the strict canonicalization, otherwise only lowercasing and
// whitespace removal apply.
func (n *Normalizer) IsPalindrome(v Text, foldDiacritics bool) bool {
	return core.IsPalindrome(v, foldDiacritics)
}

// IsAnagram reports whether a and b are rearrangements of each other; two
// verbatim-identical strings never are.
func (n *Normalizer) IsAnagram(a, b Text) bool {
	return core.IsAnagram(a, b)
}

// NormalizeAll applies policy to each value, discarding entries that fail
// Validate. The lowercase flag only affects the Soft policy.
func (n *Normalizer) NormalizeAll(values []Text, policy Policy, lowercase bool) []string {
	out := core.NormalizeAll(values, policy, lowercase)
	n.logger.Debug("Normalized array",
		"policy", policy.String(),
		"in", len(values),
		"out", len(out),
	)
	return out
}

// SortNormalized orders the meaningful values by their normalized form and
// returns the raw values in that order.
func (n *Normalizer) SortNormalized(values []Text) []string {
	return core.SortNormalized(values)
}

// Close releases the underlying logger.
func (n *Normalizer) Close() error {
	return n.logger.Close()
}
