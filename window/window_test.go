package window_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/window"
)

//----------------------------------------------------------------------------//
// Include / Resize / Clear
//----------------------------------------------------------------------------//

// TestInclude_Dynamic verifies first-include and incremental growth.
func TestInclude_Dynamic(t *testing.T) {
	w := window.New()
	require.True(t, w.Empty())
	require.False(t, w.Fixed())

	w.Include(geom.C(3, 4))
	lo, hi, ok := w.Bounds()
	require.True(t, ok)
	require.Equal(t, geom.C(3, 4), lo)
	require.Equal(t, geom.C(3, 4), hi)
	require.Equal(t, 1, w.Count())

	w.Include(geom.C(-1, 6))
	w.Include(geom.C(2, 0))
	lo, hi, _ = w.Bounds()
	require.Equal(t, geom.C(-1, 0), lo)
	require.Equal(t, geom.C(3, 6), hi)
	require.Equal(t, 5*7, w.Count())
}

// TestInclude_Fixed verifies that a pinned window ignores Include, Resize and Clear.
func TestInclude_Fixed(t *testing.T) {
	w := window.NewFixed(geom.C(4, 4), geom.C(0, 1))
	require.True(t, w.Fixed())
	require.Equal(t, "(0,1)-(4,4)", w.String())

	w.Include(geom.C(100, 100))
	w.Resize(slices.Values([]geom.Coord{geom.C(9, 9)}))
	w.Clear()
	require.Equal(t, "(0,1)-(4,4)", w.String())
	require.Equal(t, 20, w.Count())
}

// TestResize recomputes from scratch, shrinking where Include cannot.
func TestResize(t *testing.T) {
	w := window.New()
	for _, c := range []geom.Coord{geom.C(0, 0), geom.C(5, 5), geom.C(2, 3)} {
		w.Include(c)
	}
	w.Resize(slices.Values([]geom.Coord{geom.C(2, 3), geom.C(1, 4)}))
	lo, hi, ok := w.Bounds()
	require.True(t, ok)
	require.Equal(t, geom.C(1, 3), lo)
	require.Equal(t, geom.C(2, 4), hi)

	w.Resize(slices.Values([]geom.Coord(nil)))
	require.True(t, w.Empty())
	require.Equal(t, 0, w.Count())
	require.Equal(t, "(empty)", w.String())
}

// TestNewSized covers the width/height constructor including degenerate sizes.
func TestNewSized(t *testing.T) {
	w := window.NewSized(3, 2)
	require.True(t, w.Fixed())
	size, err := w.Size()
	require.NoError(t, err)
	require.Equal(t, geom.C(3, 2), size)

	empty := window.NewSized(0, 5)
	require.True(t, empty.Fixed())
	require.True(t, empty.Empty())
}

//----------------------------------------------------------------------------//
// Bound checks
//----------------------------------------------------------------------------//

// TestUndefined checks every bound-dependent query fails on an empty window.
func TestUndefined(t *testing.T) {
	w := window.New()
	_, err := w.Contains(geom.C(0, 0))
	require.True(t, errors.Is(err, window.ErrWindowUndefined))
	_, err = w.OnBorder(geom.C(0, 0))
	require.True(t, errors.Is(err, window.ErrWindowUndefined))
	_, err = w.Min()
	require.True(t, errors.Is(err, window.ErrWindowUndefined))
	_, err = w.Max()
	require.True(t, errors.Is(err, window.ErrWindowUndefined))
	_, err = w.Size()
	require.True(t, errors.Is(err, window.ErrWindowUndefined))
}

// TestContainsAndBorder checks inclusive bounds and border detection on a 3×3 window.
func TestContainsAndBorder(t *testing.T) {
	w := window.NewSized(3, 3)
	cases := []struct {
		c        geom.Coord
		contains bool
		border   bool
	}{
		{geom.C(0, 0), true, true},
		{geom.C(1, 1), true, false},
		{geom.C(2, 1), true, true},
		{geom.C(1, 2), true, true},
		{geom.C(3, 1), false, false},
		{geom.C(-1, -1), false, false},
		{geom.C(7, 0), false, true},
	}
	for _, tc := range cases {
		t.Run(tc.c.String(), func(t *testing.T) {
			in, err := w.Contains(tc.c)
			require.NoError(t, err)
			require.Equal(t, tc.contains, in)
			b, err := w.OnBorder(tc.c)
			require.NoError(t, err)
			require.Equal(t, tc.border, b)
		})
	}
}

//----------------------------------------------------------------------------//
// Iteration
//----------------------------------------------------------------------------//

// TestAll_RowMajor verifies order, finiteness and restartability.
func TestAll_RowMajor(t *testing.T) {
	w := window.NewFixed(geom.C(1, 1), geom.C(2, 2))
	want := []geom.Coord{geom.C(1, 1), geom.C(2, 1), geom.C(1, 2), geom.C(2, 2)}

	require.Equal(t, want, slices.Collect(w.All()))
	require.Equal(t, want, slices.Collect(w.All()), "second pass must restart")

	var first []geom.Coord
	for c := range w.All() {
		first = append(first, c)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, want[:2], first)

	require.Empty(t, slices.Collect(window.New().All()))
}

// TestClone produces an independent copy.
func TestClone(t *testing.T) {
	w := window.New()
	w.Include(geom.C(0, 0))
	cp := w.Clone()
	cp.Include(geom.C(5, 5))
	require.Equal(t, 1, w.Count())
	require.Equal(t, 36, cp.Count())
	require.False(t, cp.Fixed())
}
