package grid

import (
	"fmt"

	"github.com/katalvlaran/statespace/geom"
)

// Rotate returns a new grid rotated clockwise by quarterTurns × 90°.
// Negative turns rotate counter-clockwise. Keys are remapped relative to the
// window's top-left corner, which stays put; a fixed window is rotated with
// its content so the result stays fixed.
func (g *Grid[V]) Rotate(quarterTurns int) *Grid[V] {
	r := ((quarterTurns % 4) + 4) % 4
	if r == 0 || g.win.Empty() {
		return g.Copy()
	}
	lo, hi, _ := g.win.Bounds()
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1

	span := lo.Move(w-1, h-1)
	if r%2 == 1 {
		span = lo.Move(h-1, w-1)
	}
	o := g.options()
	o.Max = span
	out := newGrid(g.def, o)
	out.win.Include(lo)
	out.win.Include(span)
	for c, v := range g.cells {
		rel := c.Sub(lo)
		var n geom.Coord
		switch r {
		case 1:
			n = geom.C(h-1-rel.Y, rel.X)
		case 2:
			n = geom.C(w-1-rel.X, h-1-rel.Y)
		default:
			n = geom.C(rel.Y, w-1-rel.X)
		}
		out.put(lo.Add(n), v)
	}

	return out
}

// Flip returns a new grid mirrored left-right (horizontal) or top-bottom,
// relative to the current window. Fixedness is preserved.
func (g *Grid[V]) Flip(horizontal bool) *Grid[V] {
	if g.win.Empty() {
		return g.Copy()
	}
	lo, hi, _ := g.win.Bounds()
	out := newGrid(g.def, g.options())
	out.win.Include(lo)
	out.win.Include(hi)
	for c, v := range g.cells {
		n := geom.C(c.X, lo.Y+hi.Y-c.Y)
		if horizontal {
			n = geom.C(lo.X+hi.X-c.X, c.Y)
		}
		out.put(n, v)
	}

	return out
}

// Extract copies the entries inside the rectangle spanned by a and b.
// The result keeps the source coordinates; its window covers the rectangle
// and is fixed when the source window is.
func (g *Grid[V]) Extract(a, b geom.Coord) *Grid[V] {
	return g.extract(a, b, false)
}

// ExtractRelative is Extract with keys re-based so the rectangle's top-left
// corner becomes (0,0).
func (g *Grid[V]) ExtractRelative(a, b geom.Coord) *Grid[V] {
	return g.extract(a, b, true)
}

func (g *Grid[V]) extract(a, b geom.Coord, relative bool) *Grid[V] {
	lo, hi := a.Min(b), a.Max(b)
	base := geom.C(0, 0)
	if relative {
		base = lo
	}

	o := Options{Indexed: g.index != nil, Fixed: g.win.Fixed()}
	o.Min, o.Max = lo.Sub(base), hi.Sub(base)
	out := newGrid(g.def, o)
	// a dynamic result still spans the whole rectangle so Insert can restore it
	out.win.Include(o.Min)
	out.win.Include(o.Max)

	for _, c := range g.Within(lo, hi) {
		out.put(c.Sub(base), g.cells[c])
	}

	return out
}

// Insert overwrites this grid with src, placing src's window top-left corner
// at offset. Every cell of src's window is written: cells src does not store
// are erased here too. src may be g itself, even with overlapping regions.
func (g *Grid[V]) Insert(offset geom.Coord, src *Grid[V]) {
	if src == g {
		src = g.Copy()
	}
	slo, _, ok := src.win.Bounds()
	if !ok {
		return
	}

	stale := false
	for c := range src.win.All() {
		d := c.Sub(slo).Add(offset)
		if _, had := g.del(d); had && !g.win.Fixed() {
			if border, err := g.win.OnBorder(d); err == nil && border {
				stale = true
			}
		}
		if v, ok := src.cells[c]; ok {
			g.put(d, v)
		}
	}
	if stale {
		g.resize()
	}
}

// InsertColumns shifts every stored key with X >= index right by count,
// opening count empty columns.
func (g *Grid[V]) InsertColumns(index, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: column count cannot be negative (%d)", ErrOptionViolation, count)
	}
	g.shift(func(c geom.Coord) bool { return c.X >= index }, geom.C(count, 0))
	return nil
}

// InsertRows shifts every stored key with Y >= index down by count,
// opening count empty rows.
func (g *Grid[V]) InsertRows(index, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: row count cannot be negative (%d)", ErrOptionViolation, count)
	}
	g.shift(func(c geom.Coord) bool { return c.Y >= index }, geom.C(0, count))
	return nil
}

// shift moves every matching key by delta. All matching keys are lifted
// before any is written back so moved entries never overwrite each other.
func (g *Grid[V]) shift(match func(geom.Coord) bool, delta geom.Coord) {
	if delta == (geom.Coord{}) {
		return
	}
	type entry struct {
		c geom.Coord
		v V
	}
	var moving []entry
	for c, v := range g.cells {
		if match(c) {
			moving = append(moving, entry{c: c, v: v})
		}
	}
	for _, e := range moving {
		g.del(e.c)
	}
	for _, e := range moving {
		g.put(e.c.Add(delta), e.v)
	}
	if len(moving) > 0 {
		g.resize()
	}
}
