package grid

import (
	"errors"
	"fmt"

	"github.com/tidwall/rtree"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/window"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidValue indicates an attempt to store the nil "no value" sentinel.
	ErrInvalidValue = errors.New("grid: value cannot be nil (use Unset)")

	// ErrOutOfBounds indicates a coordinate outside an established window
	// where membership is required.
	ErrOutOfBounds = errors.New("grid: coordinate outside the grid window")

	// ErrOptionViolation indicates an invalid option or argument.
	ErrOptionViolation = errors.New("grid: invalid option supplied")

	// ErrWindowUndefined is window.ErrWindowUndefined, re-exported so callers
	// of this package can match it without importing window.
	ErrWindowUndefined = window.ErrWindowUndefined
)

// Option configures a Grid at construction time.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Fixed pins the window to [Min, Max] instead of tracking content.
	Fixed    bool
	Min, Max geom.Coord

	// Indexed maintains an R-tree over stored keys.
	Indexed bool

	// Formatter holds the func(V) string that New checks against the
	// grid's value type; nil means fmt.Sprint.
	Formatter any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a dynamic, unindexed configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithSize pins the window to (0,0)-(width-1,height-1).
//
//	width, height > 0: fixed window
//	otherwise:         ErrOptionViolation
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: size must be positive (%d×%d)", ErrOptionViolation, width, height)
			return
		}
		o.Fixed = true
		o.Min, o.Max = geom.C(0, 0), geom.C(width-1, height-1)
	}
}

// WithFixedWindow pins the window to the rectangle spanned by a and b.
func WithFixedWindow(a, b geom.Coord) Option {
	return func(o *Options) {
		o.Fixed = true
		o.Min, o.Max = a.Min(b), a.Max(b)
	}
}

// WithSpatialIndex keeps an R-tree of stored keys alongside the map.
func WithSpatialIndex() Option {
	return func(o *Options) {
		o.Indexed = true
	}
}

// WithFormatter sets the per-cell text used by String. f must match the
// grid's value type, otherwise New fails with ErrOptionViolation.
func WithFormatter[V comparable](f func(V) string) Option {
	return func(o *Options) {
		if f != nil {
			o.Formatter = f
		}
	}
}

// Grid is a sparse coordinate→value map with a bounding window.
// The zero value is not usable; construct with New or Parse.
type Grid[V comparable] struct {
	cells map[geom.Coord]V
	win   *window.Window
	def   V
	index *rtree.RTreeGN[int, geom.Coord] // nil unless Options.Indexed
	cell  func(V) string
}

// New returns an empty grid with default value def.
// Returns ErrOptionViolation for invalid options.
func New[V comparable](def V, opts ...Option) (*Grid[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := o.Formatter.(func(V) string); o.Formatter != nil && !ok {
		var zero V
		return nil, fmt.Errorf("%w: formatter %T does not match value type %T", ErrOptionViolation, o.Formatter, zero)
	}

	return newGrid(def, o), nil
}

// newGrid builds a grid from already validated options.
func newGrid[V comparable](def V, o Options) *Grid[V] {
	g := &Grid[V]{
		cells: make(map[geom.Coord]V),
		win:   window.New(),
		def:   def,
		cell:  func(v V) string { return fmt.Sprint(v) },
	}
	if f, ok := o.Formatter.(func(V) string); ok {
		g.cell = f
	}
	if o.Fixed {
		g.win = window.NewFixed(o.Min, o.Max)
	}
	if o.Indexed {
		g.index = new(rtree.RTreeGN[int, geom.Coord])
	}

	return g
}

// options reports the configuration needed to build a sibling grid.
func (g *Grid[V]) options() Options {
	o := Options{Indexed: g.index != nil, Fixed: g.win.Fixed(), Formatter: g.cell}
	if o.Fixed {
		o.Min, o.Max, _ = g.win.Bounds()
	}
	return o
}
