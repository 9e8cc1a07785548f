// Package geom provides the immutable 2D integer coordinate used as the key
// type of windows and grids throughout statespace.
//
// What:
//
//   - Coord is a comparable {X, Y} pair: value equality, usable directly as a
//     map key or as a search state.
//   - Arithmetic helpers (Move, Add, Sub, Min, Max) always return new values.
//   - Adjacent lists the 4 orthogonal (and optionally 4 diagonal) neighbours.
//   - ParseCoord reads "x,y" or "(x,y)"; String writes "(x,y)".
//
// Axes:
//
//	X grows to the right, Y grows downwards (row-major text layout),
//	so "north" is Y-1.
package geom
