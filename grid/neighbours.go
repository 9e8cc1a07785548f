package grid

import (
	"fmt"

	"github.com/katalvlaran/statespace/geom"
)

// Neighbours returns the 4 (or 8 with diagonals) coordinates adjacent to c.
// See NeighboursFunc for the window rules.
func (g *Grid[V]) Neighbours(c geom.Coord, diagonals bool) ([]geom.Coord, error) {
	return g.NeighboursFunc(c, diagonals, nil)
}

// NeighboursFunc returns the coordinates adjacent to c for which keep
// (if non-nil) returns true.
//
//   - c must lie in the window: ErrOutOfBounds otherwise, ErrWindowUndefined
//     on a never-populated dynamic grid.
//   - On a fixed grid, neighbours outside the window are dropped.
//   - On a dynamic grid, neighbours are not filtered by the window.
//
// Order follows geom.Coord.Adjacent: W, E, N, S, then NW, SW, NE, SE.
func (g *Grid[V]) NeighboursFunc(c geom.Coord, diagonals bool, keep func(geom.Coord) bool) ([]geom.Coord, error) {
	in, err := g.win.Contains(c)
	if err != nil {
		return nil, fmt.Errorf("grid: neighbours of %v: %w", c, err)
	}
	if !in {
		return nil, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, c, g.win)
	}

	fixed := g.win.Fixed()
	adj := c.Adjacent(diagonals)
	out := adj[:0]
	for _, n := range adj {
		if fixed {
			if ok, _ := g.win.Contains(n); !ok {
				continue
			}
		}
		if keep != nil && !keep(n) {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}
