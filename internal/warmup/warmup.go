package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
	"github.com/baditaflorin/go_string_toolkit/internal/ports"
)

// Config defines configuration for warming up the toolkit's internal pools.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		ForceGC:     true,
	}
}

// Manager runs sample workloads through registered components so that their
// transformer chains and builder pools are primed before the first real call.
type Manager struct {
	logger      ports.Logger
	normalizers []ports.Normalizer
	renderers   []ports.TableRenderer
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (m *Manager) RegisterNormalizer(n ports.Normalizer) {
	m.normalizers = append(m.normalizers, n)
}

// RegisterRenderer adds a table renderer to be warmed up.
func (m *Manager) RegisterRenderer(r ports.TableRenderer) {
	m.renderers = append(m.renderers, r)
}

// WarmUp runs the warmup process for all registered components.
func (m *Manager) WarmUp(ctx context.Context) {
	start := time.Now()
	m.logger.Debug("Starting warmup",
		"normalizers", len(m.normalizers),
		"renderers", len(m.renderers),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
	)

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < m.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				for _, n := range m.normalizers {
					_ = n.Normalize(sampleText)
					_ = n.NormalizeWith(sampleText, true, true)
				}
				for _, r := range m.renderers {
					_ = r.Render(sampleRecords)
				}
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		runtime.GC()
	}

	m.logger.Debug("Warmup completed", "duration", time.Since(start))
}

// sampleText exercises the accent, whitespace, punctuation and escape paths
// of the pipeline in one string.
const sampleText = "  Árvíztűrő \x1b[31mtükörfúrógép\x1b[0m -- Ça va,  très BIEN!  "

var sampleRecords = []domain.Record{
	{{Key: "Name", Value: "Zaka"}, {Key: "Age", Value: 50}},
	{{Key: "Name", Value: "Someone"}, {Key: "Age", Value: 25}},
}
