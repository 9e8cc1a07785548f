// Package grid provides Grid, a sparse map from 2D integer coordinates to
// values layered on a bounding window.
//
// What:
//
//   - Absent cells read as the grid's default value; Get never fails and
//     never checks the window, so boundary probes are cheap.
//   - Writes are strict: a nil value is rejected with ErrInvalidValue.
//   - A dynamic grid keeps its window equal to the bounding box of its keys;
//     removing a border key triggers a full rescan, removing an interior key
//     is O(1). A fixed grid (WithSize, WithFixedWindow) keeps a caller-pinned
//     window regardless of content.
//   - Neighbour queries, rotations, flips, rectangular extract/insert and
//     row/column insertion for puzzle-style grid manipulation.
//   - A row-major text codec (Parse, Format).
//   - Connected regions of selected cells (Regions), flood-filled with
//     frontier.Reachable.
//   - An optional R-tree over stored keys (WithSpatialIndex) answering
//     rectangle queries and border rescans without visiting every key.
//
// Default-value accounting:
//
//	Count(v) counts stored entries equal to v. Only when v equals the grid
//	default does it also add every in-window cell that has no entry:
//	window.Count() - Len(). Free space in a puzzle grid is "whatever was not
//	written", so this is a convention, not a general rule.
//
// Neighbours:
//
//	On a fixed grid out-of-window neighbours are dropped (a bounded canvas);
//	on a dynamic grid they are all returned (an open sparse space).
//
// Errors:
//
//   - ErrInvalidValue:     writing a nil value.
//   - ErrWindowUndefined:  bound-dependent query on a never-populated dynamic grid.
//   - ErrOutOfBounds:      neighbour query for a coordinate outside the window.
//   - ErrOptionViolation:  invalid construction option or shift argument.
//
// Complexity:
//
//   - Set, Get, Has, interior Unset: O(1) (O(log n) with the spatial index).
//   - Border Unset, UnsetAll: O(n) rescan (index: O(log n) bounds lookup).
//   - Count(default), CountIf, Coords, Format, Regions: O(W×H).
//   - Rotate, Flip, Copy: O(n).
package grid
