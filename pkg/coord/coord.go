package coord

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is a zero-indexed board position. Row 0 is the top row.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(c.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(c.Y))
	b.WriteRune(')')

	return b.String()
}

// Key encodes c as "x_y". Two coordinates are the same position iff their keys match.
func Key(c Coord) string {
	return strconv.Itoa(c.X) + "_" + strconv.Itoa(c.Y)
}

// Parse decodes a key produced by Key.
func Parse(key string) (Coord, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("invalid coordinate key %q", key)
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate key %q: %w", key, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate key %q: %w", key, err)
	}

	return Coord{x, y}, nil
}

func AreSame(a, b Coord) bool {
	return Key(a) == Key(b)
}

// Delta returns a-b componentwise.
func Delta(a, b Coord) Coord {
	return Coord{a.X - b.X, a.Y - b.Y}
}

func AbsDelta(a, b Coord) Coord {
	d := Delta(a, b)
	return Coord{abs(d.X), abs(d.Y)}
}

// KeySet indexes coordinates by Key.
type KeySet map[string]struct{}

func NewKeySet(cs ...Coord) KeySet {
	s := make(KeySet, len(cs))
	for _, c := range cs {
		s.Add(c)
	}
	return s
}

func (s KeySet) Add(c Coord) { s[Key(c)] = struct{}{} }

func (s KeySet) Has(c Coord) bool {
	_, ok := s[Key(c)]
	return ok
}

// Rectangle returns every point of the inclusive bounding box of p1 and p2 that is
// not excluded. Points are ordered by x, then by y, both ascending.
func Rectangle(p1, p2 Coord, excluded ...Coord) []Coord {
	xStart, xEnd := minmax(p1.X, p2.X)
	yStart, yEnd := minmax(p1.Y, p2.Y)

	skip := NewKeySet(excluded...)

	points := make([]Coord, 0, (xEnd-xStart+1)*(yEnd-yStart+1))
	for x := xStart; x <= xEnd; x++ {
		for y := yStart; y <= yEnd; y++ {
			c := Coord{x, y}
			if skip.Has(c) {
				continue
			}
			points = append(points, c)
		}
	}

	return points
}

// Reverse reverses cs in place and returns it.
func Reverse(cs []Coord) []Coord {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
	return cs
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
