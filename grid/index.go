package grid

import (
	"iter"
	"maps"

	"github.com/katalvlaran/statespace/geom"
)

// Within returns the stored coordinates inside the rectangle spanned by a
// and b (inclusive), row-major. With WithSpatialIndex the R-tree answers the
// query; otherwise every key is tested.
func (g *Grid[V]) Within(a, b geom.Coord) []geom.Coord {
	lo, hi := a.Min(b), a.Max(b)
	var out []geom.Coord
	if g.index != nil {
		g.index.Search(point(lo), point(hi), func(_, _ [2]int, c geom.Coord) bool {
			out = append(out, c)
			return true
		})
	} else {
		for c := range g.cells {
			if c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y {
				out = append(out, c)
			}
		}
	}
	sortRowMajor(out)

	return out
}

// Indexed reports whether the grid maintains a spatial index.
func (g *Grid[V]) Indexed() bool { return g.index != nil }

// extent yields a coordinate sequence whose bounding box equals that of the
// stored keys: the two tree corners when indexed, every key otherwise.
func (g *Grid[V]) extent() iter.Seq[geom.Coord] {
	if g.index == nil {
		return maps.Keys(g.cells)
	}
	return func(yield func(geom.Coord) bool) {
		if g.index.Len() == 0 {
			return
		}
		lo, hi := g.index.Bounds()
		if !yield(geom.C(lo[0], lo[1])) {
			return
		}
		yield(geom.C(hi[0], hi[1]))
	}
}

func (g *Grid[V]) indexInsert(c geom.Coord) {
	if g.index == nil {
		return
	}
	p := point(c)
	g.index.Insert(p, p, c)
}

func (g *Grid[V]) indexDelete(c geom.Coord) {
	if g.index == nil {
		return
	}
	p := point(c)
	g.index.Delete(p, p, c)
}

func point(c geom.Coord) [2]int {
	return [2]int{c.X, c.Y}
}
