package warmup

import (
	"context"
	"testing"

	"github.com/baditaflorin/go_string_toolkit/internal/adapters/logger"
	"github.com/baditaflorin/go_string_toolkit/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_toolkit/internal/core/table"
)

func TestWarmUpRunsToCompletion(t *testing.T) {
	log := logger.NewNopLogger()
	norm := normalizer.NewDefaultNormalizer()

	m := NewManager(log, Config{Concurrency: 2, Iterations: 5})
	m.RegisterNormalizer(norm)
	m.RegisterRenderer(table.NewRenderer(log, norm))
	m.WarmUp(context.Background())

	// Behavior must be unchanged afterwards.
	if got := norm.Normalize("Árvíz"); got != "arviz" {
		t.Errorf("Normalize after warmup = %q", got)
	}
}

func TestWarmUpHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(logger.NewNopLogger(), Config{Concurrency: 1, Iterations: 1 << 20})
	m.RegisterNormalizer(normalizer.NewDefaultNormalizer())
	// Must return promptly instead of running all iterations.
	m.WarmUp(ctx)
}
