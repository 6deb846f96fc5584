// Package table is the configurable facade over the box-drawing table
// renderer.
package table

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_string_toolkit/internal/adapters/logger"
	"github.com/baditaflorin/go_string_toolkit/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
	core "github.com/baditaflorin/go_string_toolkit/internal/core/table"
	"github.com/baditaflorin/go_string_toolkit/internal/ports"
	"github.com/baditaflorin/go_string_toolkit/internal/warmup"
)

// Record is an ordered sequence of fields; the first record of a render call
// fixes the column order.
type Record = domain.Record

// Field is one named cell of a record.
type Field = domain.Field

// NoDataMessage is returned for an empty record sequence.
const NoDataMessage = core.NoDataMessage

// Renderer renders records as a fixed-width box-drawing table.
type Renderer struct {
	logger   ports.Logger
	renderer *core.Renderer
}

// Option defines a functional option for configuring the Renderer.
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

// WithWarmUp primes the renderer's builder pools on construction.
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

// New creates a new Renderer. Without options it logs through the standard
// logger.
func New(opts ...Option) (*Renderer, error) {
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

	r := &Renderer{
		logger:   cfg.Logger,
		renderer: core.NewRenderer(cfg.Logger, normalizer.NewDefaultNormalizer()),
	}

	if cfg.WarmUp {
		manager := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		manager.RegisterRenderer(r.renderer)
		manager.WarmUp(context.Background())
	}
	return r, nil
}

// Render lays records out as a single multi-line box-drawing string. Empty
// input yields NoDataMessage; schema or cell inconsistencies yield an error
// string prefixed "Error: ". Callers distinguish success by inspecting the
// returned string; there is no second error channel.
func (r *Renderer) Render(records []Record) string {
	return r.renderer.Render(records)
}

// Close releases the underlying logger.
func (r *Renderer) Close() error {
	return r.logger.Close()
}
