package booth

import (
	"fmt"
	"sort"
	"sync"
)

// Calculator is a named fixed-width multiplier.
type Calculator interface {
	// Name is the registry key, e.g. "booth".
	Name() string
	// Description is a one-line human-readable label.
	Description() string
	// Multiply computes multiplicand × multiplier over width-bit registers.
	// obs may be nil.
	Multiply(multiplicand, multiplier int64, width int, obs Observer) (Result, error)
}

// BoothCalculator runs Booth's algorithm.
type BoothCalculator struct{}

// Name returns "booth".
func (BoothCalculator) Name() string { return "booth" }

// Description returns a short label.
func (BoothCalculator) Description() string { return "Booth's algorithm (radix-2 recoding)" }

// Multiply calls MultiplyObserved.
func (BoothCalculator) Multiply(multiplicand, multiplier int64, width int, obs Observer) (Result, error) {
	return MultiplyObserved(multiplicand, multiplier, width, obs)
}

// ShiftAddCalculator runs the naive signed shift-and-add baseline.
type ShiftAddCalculator struct{}

// Name returns "shift-add".
func (ShiftAddCalculator) Name() string { return "shift-add" }

// Description returns a short label.
func (ShiftAddCalculator) Description() string { return "Shift-and-add (one update per set bit)" }

// Multiply calls MultiplyShiftAdd.
func (ShiftAddCalculator) Multiply(multiplicand, multiplier int64, width int, obs Observer) (Result, error) {
	return MultiplyShiftAdd(multiplicand, multiplier, width, obs)
}

// CalculatorFactory looks calculators up by name.
type CalculatorFactory interface {
	Get(name string) (Calculator, error)
	List() []string
	GetAll() []Calculator
}

var _ CalculatorFactory = (*Factory)(nil)

// Factory is a registry of calculators keyed by name.
type Factory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{calculators: make(map[string]Calculator)}
}

// NewDefaultFactory returns a factory with "booth" and "shift-add" registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register(BoothCalculator{})
	f.Register(ShiftAddCalculator{})
	return f
}

// Register adds c, replacing any calculator with the same name.
func (f *Factory) Register(c Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[c.Name()] = c
}

// Get returns the calculator registered under name.
func (f *Factory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	return c, nil
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered calculator, ordered by name.
func (f *Factory) GetAll() []Calculator {
	names := f.List()
	out := make([]Calculator, 0, len(names))
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, name := range names {
		out = append(out, f.calculators[name])
	}
	return out
}
