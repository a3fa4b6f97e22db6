// Package square generates and validates magic squares — n×n grids of the
// distinct integers 1..n² whose every row, column, and both main diagonals
// sum to the same magic constant n(n²+1)/2.
//
// What:
//
//   - Engine dispatches generation over an ordered registry of order
//     families; the first family whose predicate matches n wins.
//   - DoublyEven (n ≡ 0 mod 4) is fully implemented via Dürer's
//     complementary two-pass fill — closed-form, deterministic, no
//     backtracking.
//   - Odd (Siamese method) and SinglyEven (LUX method) are declared
//     extension points: their generators return ErrNotImplemented rather
//     than an incorrect grid.
//   - Width recommends the cheapest supported order for a required cell
//     count; MagicConstant and Validate check the magic-square invariant
//     on arbitrary grids.
//
// Why:
//
//   - Puzzle and game boards: dense, balanced number layouts of any
//     doubly-even size.
//   - Capacity planning for grid layouts: Width maps "I need k cells" to
//     the smallest supported square order.
//   - Property checking: Validate accepts any [][]int, so externally
//     produced squares can be verified against the same invariant.
//
// Complexity:
//
//   - Generate:      O(n²) time, O(n²) memory (two linear passes).
//   - Validate:      O(n²) time, O(1) extra memory.
//   - Width:         O(√cells) time, O(1) memory.
//   - MagicConstant: O(1).
//
// Errors:
//
//   - ErrNonPositive:     an argument that must be a positive integer is not.
//   - ErrNonRectangular:  grid rows have differing lengths.
//   - ErrUnsupportedOrder: no enabled family's predicate matches n.
//   - ErrNotImplemented:  the matched family's generator is a stub.
//
// All operations are pure functions of their inputs; an Engine is immutable
// after New and safe for concurrent use without locking.
package square
