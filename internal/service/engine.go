package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mmynk/naijatax/internal/cache"
	"github.com/mmynk/naijatax/internal/calculator"
)

// CalculationObserver is notified of every calculation served.
type CalculationObserver interface {
	ObserveCalculation(cached bool)
}

// Engine runs calculations against one band table, memoizing results in a cache.
// It is shared by the services that need a breakdown.
type Engine struct {
	bands    []calculator.TaxBand
	cache    cache.ResultCache
	observer CalculationObserver
}

// NewEngine creates an engine with its own copy of bands. A nil resultCache
// disables caching and a nil observer disables reporting.
func NewEngine(bands []calculator.TaxBand, resultCache cache.ResultCache, observer CalculationObserver) *Engine {
	if resultCache == nil {
		resultCache = cache.Noop{}
	}
	return &Engine{
		bands:    slices.Clone(bands),
		cache:    resultCache,
		observer: observer,
	}
}

// Bands returns a copy of the table the engine computes with.
func (e *Engine) Bands() []calculator.TaxBand {
	return slices.Clone(e.bands)
}

// Calculate returns the breakdown for inputs. Cache failures only cost a recomputation.
func (e *Engine) Calculate(ctx context.Context, inputs calculator.TaxInputs) calculator.TaxCalculationResult {
	key := cache.Key(inputs, e.bands)
	if cached, ok := e.cache.Get(ctx, key); ok {
		e.observe(true)
		return *cached
	}

	result := calculator.Calculate(inputs, e.bands)
	if err := e.cache.Set(ctx, key, &result); err != nil {
		slog.Warn("Failed to cache calculation", "key", key, "error", err)
	}
	e.observe(false)
	return result
}

func (e *Engine) observe(cached bool) {
	if e.observer != nil {
		e.observer.ObserveCalculation(cached)
	}
}
