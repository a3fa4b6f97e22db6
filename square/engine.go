// Package square: Engine construction and family dispatch.
//
// Design contract (strict):
//   - One orchestrator: Engine.Generate resolves the order family and runs
//     its generator; no other code path constructs squares.
//   - The family set is fixed in New and never mutated, so an Engine may
//     serve any number of concurrent callers without locking.
//   - Determinism: same order and family set ⇒ identical grid.
//   - Safety: never panic; return sentinel errors, wrapped once with %w at
//     this boundary so callers can still branch with errors.Is.
package square

import "fmt"

// Engine dispatches magic-square operations over an ordered, immutable set
// of order families. The zero value is not usable; construct with New.
type Engine struct {
	families []Family
}

// New builds an Engine from the given options. Without options the Engine
// enables exactly the doubly-even family.
// Complexity: O(len(opts)) time, O(#families) memory.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{families: cfg.families}
}

// Families returns a copy of the enabled family set in priority order.
// Complexity: O(#families).
func (e *Engine) Families() []Family {
	out := make([]Family, len(e.families))
	copy(out, e.families)

	return out
}

// Generate builds an n×n magic square using the first enabled family whose
// predicate matches n.
//
// Errors:
//   - ErrNonPositive if n < 1.
//   - ErrUnsupportedOrder if no enabled family matches n (always the case
//     for n = 2).
//   - ErrNotImplemented if the matched family is a declared stub.
//
// Complexity: O(n²) time and memory for the doubly-even family.
func (e *Engine) Generate(n int) (Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrNonPositive)
	}
	for _, fam := range e.families {
		if !fam.Test(n) {
			continue
		}
		g, err := fam.Generate(n)
		if err != nil {
			return nil, fmt.Errorf("Generate(%d) via %s family: %w", n, fam.Name, err)
		}

		return g, nil
	}

	return nil, fmt.Errorf("Generate(%d): %w", n, ErrUnsupportedOrder)
}

// Width returns the smallest order any enabled family recommends for a
// square holding at least cells values — the cheapest supported capacity.
// With an empty family set Width returns 0: no supported order can satisfy
// the request.
//
// Errors: ErrNonPositive if cells < 1.
// Complexity: O(#families · √cells) time, O(1) memory.
func (e *Engine) Width(cells int) (int, error) {
	if cells < 1 {
		return 0, fmt.Errorf("Width(%d): %w", cells, ErrNonPositive)
	}
	best := 0
	for _, fam := range e.families {
		if w := fam.Width(cells); best == 0 || w < best {
			best = w
		}
	}

	return best, nil
}

// defaultEngine backs the package-level entry points. It is immutable and
// therefore safe to share.
var defaultEngine = New()

// Generate builds an n×n magic square with the default (doubly-even only)
// family set. See Engine.Generate.
func Generate(n int) (Grid, error) {
	return defaultEngine.Generate(n)
}

// Width recommends the smallest supported order for cells values with the
// default family set. See Engine.Width.
func Width(cells int) (int, error) {
	return defaultEngine.Width(cells)
}
