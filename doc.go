// Package magicsquare generates, validates, and renders magic squares —
// n×n grids of the distinct integers 1..n² whose rows, columns, and both
// main diagonals all reach the same magic constant n(n²+1)/2.
//
// 🚀 What is magicsquare?
//
//	A small, deterministic library built around three ideas:
//		• Order families: construction variants behind a predicate-driven
//		  registry (doubly-even implemented; odd & singly-even declared)
//		• Closed-form generation: Dürer's complementary two-pass fill,
//		  O(n²), no backtracking, no randomness
//		• Plain data: a square is just a [][]int — validate anything,
//		  render it however you like
//
// ✨ Why choose magicsquare?
//
//   - Deterministic – same order in, same grid out, every time
//   - Honest failures – unsupported orders and stub families return
//     sentinel errors, never an empty or invalid grid
//   - Concurrency-safe – engines are immutable after construction and
//     shareable without locking
//   - Pure algorithms – the core depends on nothing but the standard library
//
// Everything is organized under two subpackages plus a demo binary:
//
//	square/          — Engine, order families, Generate/Width/MagicConstant/Validate
//	render/          — HTML table & aligned-text renderers (presentation only)
//	cmd/magicsquare/ — CLI demo: generate by order or by required capacity
//
// Quick taste:
//
//	g, _ := square.Generate(4)
//	// 1 15 14  4
//	// 12  6  7  9
//	//  8 10 11  5
//	// 13  3  2 16
//
// Next up: the Siamese method for odd orders and Conway's LUX method for
// singly-even orders, slotting into the existing family registry.
//
//	go get github.com/katalvlaran/magicsquare/square
package magicsquare
