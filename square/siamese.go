package square

// Odd returns the family of odd orders n ≥ 3. The predicate and width
// recommendation are live so an Engine that enables this family can still
// route and size requests, but the Siamese-method generator is a declared
// extension point: it fails with ErrNotImplemented instead of shipping an
// empty or invalid grid.
//
// Note n = 1 is deliberately excluded: the trivial 1×1 square carries no
// construction and keeping it out preserves "no enabled predicate matches
// n below 3".
func Odd() Family {
	return Family{
		Name:  NameOdd,
		Test:  func(n int) bool { return n >= 3 && n%2 == 1 },
		Width: widthOdd,
		Generate: func(n int) (Grid, error) {
			// TODO: Siamese method (start middle of top row, move up-right,
			// drop one row on collision).
			return nil, ErrNotImplemented
		},
	}
}

// widthOdd returns the smallest odd order ≥ 3 whose square holds at least
// cells values.
func widthOdd(cells int) int {
	s := minSide(cells)
	if s < 3 {
		s = 3
	}
	if s%2 == 0 {
		s++
	}

	return s
}
