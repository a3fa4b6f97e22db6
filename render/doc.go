// Package render turns a square.Grid into presentational output. It is a
// consumer of the core engine, not part of it: the engine produces plain
// [][]int grids and carries no formatting contract beyond "iterate rows,
// then columns, in order".
//
// What:
//
//   - HTML renders an HTML <table> fragment, optionally with a default
//     inline style or a caller-supplied CSS class.
//   - Text renders a column-aligned plain-text grid for terminals.
//
// Both forms render an empty grid as the empty string.
//
// Complexity: O(n²) time and output size for an n×n grid.
package render
