package grid_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/grid"
)

// TestParseBool_CountScenario is the canonical default-accounting scenario:
// a checkerboard cross stores 5 trues in a 3×3 window, leaving 4 implicit falses.
func TestParseBool_CountScenario(t *testing.T) {
	g, err := grid.ParseBool([]string{"#.#", ".#.", "#.#"}, '#')
	require.NoError(t, err)

	require.Equal(t, 5, g.Count(true))
	require.Equal(t, 4, g.Count(false))
	require.Equal(t, 5, g.Len())
	require.Equal(t, "(0,0)-(2,2)", g.Window().String())
}

// TestParse_Separator splits on an explicit separator.
func TestParse_Separator(t *testing.T) {
	g, err := grid.Parse([]string{"10 0 7", "0 0 12"}, " ", strconv.Atoi, 0)
	require.NoError(t, err)
	require.Equal(t, 10, g.Get(geom.C(0, 0)))
	require.Equal(t, 7, g.Get(geom.C(2, 0)))
	require.Equal(t, 12, g.Get(geom.C(2, 1)))
	require.Equal(t, 3, g.Len())
}

// TestParse_CellError wraps the cell parser failure with its position.
func TestParse_CellError(t *testing.T) {
	_, err := grid.ParseDigits([]string{"12", "3x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "(1,1)")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
}

// TestParse_OptionError surfaces invalid options.
func TestParse_OptionError(t *testing.T) {
	_, err := grid.ParseRunes([]string{"ab"}, '.', grid.WithSize(-1, 1))
	require.True(t, errors.Is(err, grid.ErrOptionViolation))
}

// TestFormat renders row-major with overlays.
func TestFormat(t *testing.T) {
	g, err := grid.ParseRunes([]string{"#..", ".#.", "..#"}, '.')
	require.NoError(t, err)

	str := func(v rune) string { return string(v) }
	require.Equal(t, "#..\n.#.\n..#", g.Format(str, nil))
	require.Equal(t, "#..\n.@.\n..#", g.Format(str, map[geom.Coord]string{geom.C(1, 1): "@"}))

	empty, err := grid.New(0)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}

// TestParseRunes_RoundTrip parses rows and prints the same rows back.
func TestParseRunes_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		def  rune
	}{
		{"Diagonal", []string{"#..", ".#.", "..#"}, '.'},
		{"Checker", []string{"#.", ".#"}, '.'},
		{"Letters", []string{"ab ", " cd"}, ' '},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.ParseRunes(tc.rows, tc.def)
			require.NoError(t, err)
			out := g.String()
			require.Equal(t, strings.Join(tc.rows, "\n"), out)

			again, err := grid.ParseRunes(strings.Split(out, "\n"), tc.def)
			require.NoError(t, err)
			require.Equal(t, out, again.String())
		})
	}
}

// TestString_FormatterSurvivesTransforms keeps the rune formatter on
// derived grids.
func TestString_FormatterSurvivesTransforms(t *testing.T) {
	g, err := grid.ParseRunes([]string{"ab", "cd"}, '.')
	require.NoError(t, err)
	require.Equal(t, "ca\ndb", g.Rotate(1).String())
	require.Equal(t, "ba\ndc", g.Flip(true).String())
	require.Equal(t, "ab\ncd", g.Copy().String())
	require.Equal(t, "d", g.ExtractRelative(geom.C(1, 1), geom.C(1, 1)).String())
}

// TestWithFormatter overrides the default fmt formatting.
func TestWithFormatter(t *testing.T) {
	digits, err := grid.ParseDigits([]string{"12", "34"},
		grid.WithFormatter(func(v int) string { return strconv.Itoa(v * 10) }))
	require.NoError(t, err)
	require.Equal(t, "1020\n3040", digits.String())

	// int32 is rune, but only ParseRunes prints characters
	plain, err := grid.New[int32](0)
	require.NoError(t, err)
	_, _, err = plain.Set(geom.C(0, 0), 'A')
	require.NoError(t, err)
	require.Equal(t, "65", plain.String())

	_, err = grid.New(0, grid.WithFormatter(func(s string) string { return s }))
	require.True(t, errors.Is(err, grid.ErrOptionViolation), "got %v", err)
}

// TestString_Bool uses fmt formatting per cell.
func TestString_Bool(t *testing.T) {
	g, err := grid.ParseBool([]string{"#."}, '#', grid.WithSize(2, 1))
	require.NoError(t, err)
	require.Equal(t, "truefalse", g.String())
}
