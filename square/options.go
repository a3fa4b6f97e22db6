// Package square: functional configuration for the Engine.
//
// Design goals (mirrors the rest of the library):
//   - Deterministic behavior: no global state, options resolve once in New.
//   - Safe by construction: the resolved family set is immutable afterwards.
//   - Reusability: config fields are unexported; public APIs consume ...Option.
package square

// Option adjusts the Engine configuration during New.
type Option func(*config)

// config is the resolved, immutable Engine configuration.
type config struct {
	families []Family
}

// defaultConfig enables exactly the doubly-even family. The Odd and
// SinglyEven stubs stay disabled by default so Generate can never reach an
// unimplemented generator unless a caller opts in explicitly.
func defaultConfig() config {
	return config{families: []Family{DoublyEven()}}
}

// WithFamilies replaces the enabled family set. Registration order is
// priority order: Generate dispatches to the first family whose Test
// matches. Passing no families empties the registry, after which Width
// reports 0 and Generate always fails with ErrUnsupportedOrder.
func WithFamilies(fams ...Family) Option {
	return func(c *config) {
		c.families = make([]Family, len(fams))
		copy(c.families, fams)
	}
}
