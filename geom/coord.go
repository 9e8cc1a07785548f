package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCoord is returned by ParseCoord for malformed input.
var ErrBadCoord = errors.New("geom: invalid coordinate")

// Coord is an immutable 2D integer coordinate.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// orthogonal and diagonal offsets in the order Adjacent reports them.
var (
	orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Move returns the coordinate shifted by (dx, dy).
func (c Coord) Move(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Add returns c + o componentwise.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns c - o componentwise.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Min returns the componentwise minimum of c and o.
func (c Coord) Min(o Coord) Coord {
	return Coord{X: min(c.X, o.X), Y: min(c.Y, o.Y)}
}

// Max returns the componentwise maximum of c and o.
func (c Coord) Max(o Coord) Coord {
	return Coord{X: max(c.X, o.X), Y: max(c.Y, o.Y)}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Adjacent returns the 4 orthogonal neighbours of c (W, E, N, S) followed,
// when diagonals is true, by the 4 diagonal ones (NW, SW, NE, SE).
func (c Coord) Adjacent(diagonals bool) []Coord {
	n := 4
	if diagonals {
		n = 8
	}
	out := make([]Coord, 0, n)
	for _, d := range orthogonal {
		out = append(out, c.Move(d[0], d[1]))
	}
	if !diagonals {
		return out
	}
	for _, d := range diagonal {
		out = append(out, c.Move(d[0], d[1]))
	}

	return out
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// ParseCoord parses "x,y" or "(x,y)", tolerating surrounding whitespace.
func ParseCoord(s string) (Coord, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "(") != strings.HasSuffix(t, ")") {
		return Coord{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrBadCoord, s)
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: missing comma in %q", ErrBadCoord, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: x in %q: %v", ErrBadCoord, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: y in %q: %v", ErrBadCoord, s, err)
	}

	return Coord{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
