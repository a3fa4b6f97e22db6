package square

import "fmt"

// MagicConstant returns the common sum every row, column, and diagonal of
// an order-n magic square must reach: n(n²+1)/2. The product is taken
// before the halving so odd n stays exact in integer arithmetic (n²+1 is
// even exactly when n is odd).
//
// Errors: ErrNonPositive if n < 1.
// Complexity: O(1).
func MagicConstant(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("MagicConstant(%d): %w", n, ErrNonPositive)
	}

	return n * (n*n + 1) / 2, nil
}

// Validate reports whether grid satisfies the magic-square sum invariant:
// every row sum, every column sum, and both main diagonal sums equal
// MagicConstant(n), where n is the outer length.
//
// An empty grid is trivially invalid: Validate returns (false, nil) rather
// than an error. A ragged grid is rejected explicitly with
// ErrNonRectangular — undefined behavior on malformed input is not an
// option here.
//
// Complexity: O(n²) time, O(1) extra memory.
func Validate(grid Grid) (bool, error) {
	n := len(grid)
	if n == 0 {
		return false, nil
	}
	for r, row := range grid {
		if len(row) != n {
			return false, fmt.Errorf("Validate: row %d has %d cells, want %d: %w", r, len(row), n, ErrNonRectangular)
		}
	}

	want, err := MagicConstant(n)
	if err != nil {
		return false, err
	}

	diag, anti := 0, 0
	for r := 0; r < n; r++ {
		rowSum, colSum := 0, 0
		for c := 0; c < n; c++ {
			rowSum += grid[r][c]
			colSum += grid[c][r]
		}
		if rowSum != want || colSum != want {
			return false, nil
		}
		diag += grid[r][r]
		anti += grid[n-1-r][r]
	}

	return diag == want && anti == want, nil
}
