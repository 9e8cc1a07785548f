// Package window tracks an axis-aligned bounding rectangle over 2D integer
// coordinates.
//
// What:
//
//   - A dynamic Window (New) grows to cover every coordinate passed to
//     Include and can be recomputed from scratch with Resize.
//   - A fixed Window (NewFixed, NewSized) is pinned by the caller; Include,
//     Resize and Clear leave it untouched.
//   - Bounds are inclusive: a window from (0,0) to (2,1) holds 6 coordinates.
//
// Why Resize exists:
//
//	Growing is incremental, shrinking is not: after removing a coordinate on
//	the border there is no "second minimum" to fall back on, so the owner
//	(typically a grid) rescans its live key set in one O(n) pass.
//
// Iteration:
//
//	All yields every coordinate row-major (x increasing within a row, then y).
//	It is finite, restartable and yields nothing for an empty window.
//
// Errors:
//
//   - ErrWindowUndefined: a bound-dependent query (Contains, OnBorder, Min,
//     Max, Size) on a window with no extent.
//
// Complexity:
//
//   - Include, Contains, OnBorder, Count: O(1).
//   - Resize: O(n) over the supplied coordinates.
//   - All: O(W×H).
package window
