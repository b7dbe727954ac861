// Package cache memoizes calculation results by input fingerprint.
//
// Caching is optional: the engine is cheap and deterministic, so a miss or a
// backend failure only costs a recomputation.
package cache

import (
	"context"
	"strconv"

	"github.com/mmynk/naijatax/internal/calculator"
)

// ResultCache stores calculation results by key.
type ResultCache interface {
	// Get returns the cached result, or false on a miss or backend error.
	Get(ctx context.Context, key string) (*calculator.TaxCalculationResult, bool)
	Set(ctx context.Context, key string, result *calculator.TaxCalculationResult) error
}

// Key builds the cache key for a calculation.
func Key(inputs calculator.TaxInputs, bands []calculator.TaxBand) string {
	return "paye:" + strconv.FormatUint(calculator.Fingerprint(inputs, bands), 16)
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) (*calculator.TaxCalculationResult, bool) { return nil, false }

func (Noop) Set(context.Context, string, *calculator.TaxCalculationResult) error { return nil }
