package grid

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/window"
)

// Default returns the value synthesized for absent cells.
func (g *Grid[V]) Default() V { return g.def }

// SetDefault changes the value synthesized for absent cells. Stored
// entries are not touched, including those equal to the new default.
func (g *Grid[V]) SetDefault(def V) { g.def = def }

// Len returns the number of stored entries.
func (g *Grid[V]) Len() int { return len(g.cells) }

// Fixed reports whether the grid window is pinned.
func (g *Grid[V]) Fixed() bool { return g.win.Fixed() }

// Window returns a copy of the grid window.
func (g *Grid[V]) Window() *window.Window { return g.win.Clone() }

// Set stores v at c and grows a dynamic window to cover c.
// Returns the previous value and whether one was stored.
// Returns ErrInvalidValue if v is nil.
func (g *Grid[V]) Set(c geom.Coord, v V) (prev V, had bool, err error) {
	if isNil(v) {
		return prev, false, fmt.Errorf("%w: at %v", ErrInvalidValue, c)
	}
	prev, had = g.cells[c]
	g.put(c, v)

	return prev, had, nil
}

// SetRegion stores v at every coordinate of region.
func (g *Grid[V]) SetRegion(region *window.Window, v V) error {
	for c := range region.All() {
		if _, _, err := g.Set(c, v); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value at c, or the grid default when nothing is stored.
// Get never validates c against the window.
func (g *Grid[V]) Get(c geom.Coord) V {
	return g.GetOr(c, g.def)
}

// GetOr returns the value at c, or def when nothing is stored.
func (g *Grid[V]) GetOr(c geom.Coord, def V) V {
	if v, ok := g.cells[c]; ok {
		return v
	}
	return def
}

// Has reports whether a value is stored at c.
func (g *Grid[V]) Has(c geom.Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Unset removes the entry at c and returns it. On a dynamic grid, removing
// a key on the window border recomputes the window; interior removals are O(1).
func (g *Grid[V]) Unset(c geom.Coord) (V, bool) {
	v, had := g.del(c)
	if !had || g.win.Fixed() {
		return v, had
	}
	if border, err := g.win.OnBorder(c); err == nil && border {
		g.resize()
	}

	return v, had
}

// UnsetAll removes every listed coordinate with a single trailing resize.
func (g *Grid[V]) UnsetAll(coords []geom.Coord) {
	for _, c := range coords {
		g.del(c)
	}
	g.resize()
}

// Update replaces the value at c with f(current), where current is the
// stored value or the default. Returns the prior stored value, if any.
func (g *Grid[V]) Update(c geom.Coord, f func(V) V) (prev V, had bool, err error) {
	return g.Set(c, f(g.Get(c)))
}

// Count returns the number of stored entries equal to v. When v equals the
// grid default, in-window cells without an entry are counted as well.
func (g *Grid[V]) Count(v V) int {
	n := 0
	for _, stored := range g.cells {
		if stored == v {
			n++
		}
	}
	if v == g.def {
		n += g.win.Count() - len(g.cells)
	}

	return n
}

// CountIf returns how many window coordinates satisfy pred. Every cell of
// the window is visited, stored or not.
func (g *Grid[V]) CountIf(pred func(geom.Coord) bool) int {
	n := 0
	for c := range g.win.All() {
		if pred(c) {
			n++
		}
	}
	return n
}

// Find returns the coordinates storing v, row-major.
func (g *Grid[V]) Find(v V) []geom.Coord {
	var out []geom.Coord
	for c, stored := range g.cells {
		if stored == v {
			out = append(out, c)
		}
	}
	sortRowMajor(out)

	return out
}

// Keys returns the stored coordinates, row-major.
func (g *Grid[V]) Keys() []geom.Coord {
	keys := make([]geom.Coord, 0, len(g.cells))
	for c := range g.cells {
		keys = append(keys, c)
	}
	sortRowMajor(keys)

	return keys
}

// All yields stored entries row-major.
func (g *Grid[V]) All() iter.Seq2[geom.Coord, V] {
	keys := g.Keys()
	return func(yield func(geom.Coord, V) bool) {
		for _, c := range keys {
			v, ok := g.cells[c]
			if !ok {
				continue
			}
			if !yield(c, v) {
				return
			}
		}
	}
}

// Coords yields every coordinate of the window row-major, stored or not.
func (g *Grid[V]) Coords() iter.Seq[geom.Coord] {
	return g.win.All()
}

// Contains reports whether c lies within the grid window.
func (g *Grid[V]) Contains(c geom.Coord) (bool, error) {
	return g.win.Contains(c)
}

// Relative returns c relative to the window's top-left corner.
func (g *Grid[V]) Relative(c geom.Coord) (geom.Coord, error) {
	lo, err := g.win.Min()
	if err != nil {
		return geom.Coord{}, err
	}
	return c.Sub(lo), nil
}

// Size returns the window width and height.
func (g *Grid[V]) Size() (geom.Coord, error) {
	return g.win.Size()
}

// FixWindow pins the current window.
// Returns ErrWindowUndefined if the grid has never been populated.
func (g *Grid[V]) FixWindow() error {
	lo, hi, ok := g.win.Bounds()
	if !ok {
		return fmt.Errorf("%w: cannot fix an empty window", ErrWindowUndefined)
	}
	g.win = window.NewFixed(lo, hi)
	return nil
}

// FixWindowTo pins the window to the rectangle spanned by a and b.
func (g *Grid[V]) FixWindowTo(a, b geom.Coord) {
	g.win = window.NewFixed(a, b)
}

// UnfixWindow switches to a dynamic window recomputed from the stored keys.
func (g *Grid[V]) UnfixWindow() {
	g.win = window.New()
	g.resize()
}

// Copy returns an independent grid with the same entries, default, window
// and indexing.
func (g *Grid[V]) Copy() *Grid[V] {
	cp := newGrid(g.def, g.options())
	cp.win = g.win.Clone()
	for c, v := range g.cells {
		cp.put(c, v)
	}
	return cp
}

// put stores v at c, keeping the window and index in sync.
func (g *Grid[V]) put(c geom.Coord, v V) {
	if _, had := g.cells[c]; !had {
		g.indexInsert(c)
	}
	g.cells[c] = v
	g.win.Include(c)
}

// del removes c without touching the window.
func (g *Grid[V]) del(c geom.Coord) (V, bool) {
	v, had := g.cells[c]
	if had {
		delete(g.cells, c)
		g.indexDelete(c)
	}
	return v, had
}

// resize recomputes a dynamic window from the live key set.
func (g *Grid[V]) resize() {
	g.win.Resize(g.extent())
}

// isNil reports whether v is a nil interface, pointer or channel.
func isNil[V any](v V) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func sortRowMajor(cs []geom.Coord) {
	slices.SortFunc(cs, func(a, b geom.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
}
