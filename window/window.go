package window

import (
	"errors"
	"iter"

	"github.com/katalvlaran/statespace/geom"
)

// ErrWindowUndefined indicates a bound-dependent query on a window without extent.
var ErrWindowUndefined = errors.New("window: window is undefined")

// Window is an inclusive axis-aligned rectangle, either tracking its content
// (dynamic) or pinned by the caller (fixed).
// min and max are meaningful only while defined is true.
type Window struct {
	min, max geom.Coord
	defined  bool
	fixed    bool
}

// New returns an empty dynamic window.
func New() *Window {
	return &Window{}
}

// NewFixed returns a fixed window spanning the two corners, in any order.
func NewFixed(a, b geom.Coord) *Window {
	return &Window{min: a.Min(b), max: a.Max(b), defined: true, fixed: true}
}

// NewSized returns a fixed window from (0,0) to (width-1, height-1).
// Non-positive dimensions yield an undefined fixed window.
func NewSized(width, height int) *Window {
	if width <= 0 || height <= 0 {
		return &Window{fixed: true}
	}
	return NewFixed(geom.C(0, 0), geom.C(width-1, height-1))
}

// Fixed reports whether the window is pinned.
func (w *Window) Fixed() bool { return w.fixed }

// Empty reports whether the window has no extent.
func (w *Window) Empty() bool { return !w.defined }

// Include grows a dynamic window to cover c. The first call on an empty
// window sets both corners to c. No-op when fixed.
func (w *Window) Include(c geom.Coord) {
	if w.fixed {
		return
	}
	if !w.defined {
		w.min, w.max, w.defined = c, c, true
		return
	}
	w.min = w.min.Min(c)
	w.max = w.max.Max(c)
}

// Resize recomputes a dynamic window from scratch over coords. An empty
// sequence clears the window. No-op when fixed.
func (w *Window) Resize(coords iter.Seq[geom.Coord]) {
	if w.fixed {
		return
	}
	w.defined = false
	for c := range coords {
		w.Include(c)
	}
}

// Clear forgets the extent of a dynamic window. No-op when fixed.
func (w *Window) Clear() {
	if w.fixed {
		return
	}
	w.min, w.max, w.defined = geom.Coord{}, geom.Coord{}, false
}

// Contains reports whether c lies within the inclusive bounds.
func (w *Window) Contains(c geom.Coord) (bool, error) {
	if !w.defined {
		return false, ErrWindowUndefined
	}
	return c.X >= w.min.X && c.Y >= w.min.Y && c.X <= w.max.X && c.Y <= w.max.Y, nil
}

// OnBorder reports whether c shares a row or column with one of the window
// edges. c itself need not be inside the window.
func (w *Window) OnBorder(c geom.Coord) (bool, error) {
	if !w.defined {
		return false, ErrWindowUndefined
	}
	return c.X == w.min.X || c.Y == w.min.Y || c.X == w.max.X || c.Y == w.max.Y, nil
}

// Count returns the number of coordinates in the window, 0 when empty.
func (w *Window) Count() int {
	if !w.defined {
		return 0
	}
	return (w.max.X - w.min.X + 1) * (w.max.Y - w.min.Y + 1)
}

// Size returns the width and height as a coordinate.
func (w *Window) Size() (geom.Coord, error) {
	if !w.defined {
		return geom.Coord{}, ErrWindowUndefined
	}
	return geom.C(w.max.X-w.min.X+1, w.max.Y-w.min.Y+1), nil
}

// Min returns the top-left corner.
func (w *Window) Min() (geom.Coord, error) {
	if !w.defined {
		return geom.Coord{}, ErrWindowUndefined
	}
	return w.min, nil
}

// Max returns the bottom-right corner.
func (w *Window) Max() (geom.Coord, error) {
	if !w.defined {
		return geom.Coord{}, ErrWindowUndefined
	}
	return w.max, nil
}

// Bounds returns both corners and whether the window is defined.
func (w *Window) Bounds() (lo, hi geom.Coord, ok bool) {
	return w.min, w.max, w.defined
}

// All yields every coordinate of the window in row-major order.
func (w *Window) All() iter.Seq[geom.Coord] {
	lo, hi, ok := w.Bounds()
	return func(yield func(geom.Coord) bool) {
		if !ok {
			return
		}
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				if !yield(geom.C(x, y)) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy, fixedness included.
func (w *Window) Clone() *Window {
	cp := *w
	return &cp
}

// String formats the window as "(x1,y1)-(x2,y2)" or "(empty)".
func (w *Window) String() string {
	if !w.defined {
		return "(empty)"
	}
	return w.min.String() + "-" + w.max.String()
}
