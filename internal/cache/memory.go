package cache

import (
	"context"
	"sync"

	"github.com/mmynk/naijatax/internal/calculator"
)

// Memory is an in-process cache holding at most a fixed number of entries.
// When full, an arbitrary entry is evicted.
type Memory struct {
	mu         sync.RWMutex
	maxEntries int
	data       map[string]calculator.TaxCalculationResult
}

// NewMemory creates a cache bounded to maxEntries (minimum 1).
func NewMemory(maxEntries int) *Memory {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Memory{
		maxEntries: maxEntries,
		data:       make(map[string]calculator.TaxCalculationResult),
	}
}

func (m *Memory) Get(_ context.Context, key string) (*calculator.TaxCalculationResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.data[key]
	if !ok {
		return nil, false
	}
	return copyResult(r), true
}

func (m *Memory) Set(_ context.Context, key string, result *calculator.TaxCalculationResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		for k := range m.data {
			delete(m.data, k)
			break
		}
	}
	m.data[key] = *copyResult(*result)
	return nil
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// copyResult detaches the allocation slice so callers cannot mutate cached data.
func copyResult(r calculator.TaxCalculationResult) *calculator.TaxCalculationResult {
	r.BandAllocations = append([]calculator.TaxBandAllocation(nil), r.BandAllocations...)
	return &r
}
