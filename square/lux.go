package square

// SinglyEven returns the family of orders n ≡ 2 (mod 4) with n > 2. As
// with Odd, predicate and width are live while the generator is a declared
// extension point failing with ErrNotImplemented.
//
// The predicate never matches n = 2: the 2×2 square is provably
// unsolvable, so 2 must always fall through to ErrUnsupportedOrder.
func SinglyEven() Family {
	return Family{
		Name:  NameSinglyEven,
		Test:  func(n int) bool { return n > 2 && n%4 == 2 },
		Width: widthSinglyEven,
		Generate: func(n int) (Grid, error) {
			// TODO: Conway's LUX method over an odd-order quadrant square.
			return nil, ErrNotImplemented
		},
	}
}

// widthSinglyEven returns the smallest order ≡ 2 (mod 4), above 2, whose
// square holds at least cells values.
func widthSinglyEven(cells int) int {
	s := minSide(cells)
	if s < 6 {
		return 6
	}
	if rem := s % 4; rem != 2 {
		s += (2 - rem + 4) % 4
	}

	return s
}
