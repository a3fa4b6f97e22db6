// Package square: core types for grids and order families.
package square

// Grid is a row-major n×n grid of cell values. Generate always returns a
// freshly allocated Grid; the caller owns it exclusively.
type Grid [][]int

// Order reports the side length of the grid (the number of rows).
// Complexity: O(1).
func (g Grid) Order() int {
	return len(g)
}

// FamilyName identifies one of the magic-square construction families.
type FamilyName string

const (
	// NameDoublyEven is the family of orders divisible by 4.
	NameDoublyEven FamilyName = "doubly-even"
	// NameOdd is the family of odd orders n ≥ 3.
	NameOdd FamilyName = "odd"
	// NameSinglyEven is the family of orders n ≡ 2 (mod 4), n > 2.
	NameSinglyEven FamilyName = "singly-even"
)

// Family bundles one construction variant: a predicate over the order n, a
// width recommendation for a required cell count, and the generator itself.
//
// Family predicates of the enabled set must partition supported orders: at
// most one enabled family matches a given n. The Engine nevertheless scans
// in registration order and dispatches to the FIRST match, so behavior
// stays well-defined should future families ever overlap.
//
// No predicate may match n = 2: the 2×2 magic square is provably
// unsolvable, so n = 2 must always fall through to ErrUnsupportedOrder.
type Family struct {
	// Name identifies the family in errors and diagnostics.
	Name FamilyName
	// Test reports whether this family can construct an order-n square.
	Test func(n int) bool
	// Width returns the smallest order this family supports whose square
	// holds at least cells values. cells ≥ 1 is a caller-level precondition.
	Width func(cells int) int
	// Generate builds the order-n square. Dispatch only reaches it after
	// Test(n) returned true.
	Generate func(n int) (Grid, error)
}
