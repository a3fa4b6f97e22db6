// Package square: sentinel error set.
// All operations MUST return these sentinels (optionally wrapped with %w at
// the API boundary); tests and callers match them via errors.Is. No public
// operation panics on user-triggered conditions.
package square

import "errors"

var (
	// ErrNonPositive indicates an argument that must be a positive integer
	// (order n, or a required cell count) was zero or negative.
	ErrNonPositive = errors.New("square: argument must be a positive integer")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("square: all rows must have the same length")

	// ErrUnsupportedOrder indicates no enabled order family's predicate
	// matches the requested order n (e.g. n=2, or n not divisible by 4 when
	// only the doubly-even family is enabled).
	ErrUnsupportedOrder = errors.New("square: no enabled family supports this order")

	// ErrNotImplemented indicates the matched family's generator is a
	// declared extension point without an implementation yet.
	ErrNotImplemented = errors.New("square: order family generator not implemented")
)
