package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/geom"
)

// Parse builds a grid from row-major text. Row y, cell x maps to (x, y).
// Each row is split by sep, or into single runes when sep is empty.
// Cells whose parsed value equals def are not stored.
func Parse[V comparable](rows []string, sep string, cell func(string) (V, error), def V, opts ...Option) (*Grid[V], error) {
	g, err := New(def, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, s := range splitRow(row, sep) {
			v, err := cell(s)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d) %q: %w", x, y, s, err)
			}
			if v == def {
				continue
			}
			if _, _, err := g.Set(geom.C(x, y), v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ParseBool maps the rune on to true and everything else to the default false.
func ParseBool(rows []string, on rune, opts ...Option) (*Grid[bool], error) {
	want := string(on)
	return Parse(rows, "", func(s string) (bool, error) { return s == want, nil }, false, opts...)
}

// ParseRunes stores one rune per cell; cells equal to def are left unset.
// String prints the runes back as characters unless opts set a formatter.
func ParseRunes(rows []string, def rune, opts ...Option) (*Grid[rune], error) {
	opts = append([]Option{WithFormatter(func(r rune) string { return string(r) })}, opts...)
	return Parse(rows, "", func(s string) (rune, error) { return []rune(s)[0], nil }, def, opts...)
}

// ParseDigits stores one decimal digit per cell with default -1.
func ParseDigits(rows []string, opts ...Option) (*Grid[int], error) {
	return Parse(rows, "", strconv.Atoi, -1, opts...)
}

// Format renders the window row-major, one line per row without a trailing
// newline. overlay entries take precedence over cell(Get(c)).
func (g *Grid[V]) Format(cell func(V) string, overlay map[geom.Coord]string) string {
	var sb strings.Builder
	first, row := true, 0
	for c := range g.win.All() {
		if !first && c.Y != row {
			sb.WriteByte('\n')
		}
		first, row = false, c.Y
		if s, ok := overlay[c]; ok {
			sb.WriteString(s)
			continue
		}
		sb.WriteString(cell(g.Get(c)))
	}

	return sb.String()
}

// String renders the grid with its formatter: fmt.Sprint per cell unless
// set by WithFormatter or ParseRunes.
func (g *Grid[V]) String() string {
	return g.Format(g.cell, nil)
}

func splitRow(row, sep string) []string {
	if sep != "" {
		return strings.Split(row, sep)
	}
	out := make([]string, 0, len(row))
	for _, r := range row {
		out = append(out, string(r))
	}
	return out
}
