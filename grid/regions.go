package grid

import (
	"maps"
	"slices"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/geom"
)

// Regions groups the window cells selected by keep into connected regions
// (4-connected, or 8-connected with diagonals). keep receives each cell with
// its value as returned by Get, so default cells can be selected too.
//
// Regions are ordered by their first cell and cells within a region are
// row-major. Neighbours outside the window never join a region, even on a
// dynamic grid. An empty window yields no regions.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (g *Grid[V]) Regions(diagonals bool, keep func(c geom.Coord, v V) bool) [][]geom.Coord {
	selected := func(c geom.Coord) bool {
		in, _ := g.win.Contains(c)
		return in && keep(c, g.Get(c))
	}
	next := func(c geom.Coord) []geom.Coord {
		adj := c.Adjacent(diagonals)
		out := adj[:0]
		for _, n := range adj {
			if selected(n) {
				out = append(out, n)
			}
		}
		return out
	}

	seen := make(map[geom.Coord]bool)
	var regions [][]geom.Coord
	for c := range g.win.All() {
		if seen[c] || !selected(c) {
			continue
		}
		region := slices.Collect(maps.Keys(frontier.Reachable(c, next)))
		sortRowMajor(region)
		for _, r := range region {
			seen[r] = true
		}
		regions = append(regions, region)
	}

	return regions
}
