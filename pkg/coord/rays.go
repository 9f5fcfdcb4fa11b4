package coord

// Bounds are the inclusive maxima of a board; minima are always 0.
type Bounds struct {
	MaxX, MaxY int
}

func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X <= b.MaxX && c.Y <= b.MaxY
}

// Rays are ordered nearest first and never include the start point.

func (b Bounds) Left(c Coord) []Coord {
	if c.X <= 0 {
		return nil
	}
	return Reverse(Rectangle(c, Coord{0, c.Y}, c))
}

func (b Bounds) Right(c Coord) []Coord {
	if c.X >= b.MaxX {
		return nil
	}
	return Rectangle(c, Coord{b.MaxX, c.Y}, c)
}

func (b Bounds) Up(c Coord) []Coord {
	if c.Y <= 0 {
		return nil
	}
	return Reverse(Rectangle(c, Coord{c.X, 0}, c))
}

func (b Bounds) Down(c Coord) []Coord {
	if c.Y >= b.MaxY {
		return nil
	}
	return Rectangle(c, Coord{c.X, b.MaxY}, c)
}

func (b Bounds) UpLeft(c Coord) []Coord {
	return b.walk(c, -1, -1)
}

func (b Bounds) UpRight(c Coord) []Coord {
	return b.walk(c, 1, -1)
}

func (b Bounds) DownLeft(c Coord) []Coord {
	return b.walk(c, -1, 1)
}

func (b Bounds) DownRight(c Coord) []Coord {
	return b.walk(c, 1, 1)
}

// Diagonals concatenates the four diagonal rays.
func (b Bounds) Diagonals(c Coord) []Coord {
	var points []Coord
	points = append(points, b.UpLeft(c)...)
	points = append(points, b.UpRight(c)...)
	points = append(points, b.DownLeft(c)...)
	points = append(points, b.DownRight(c)...)
	return points
}

func (b Bounds) walk(c Coord, dx, dy int) []Coord {
	var points []Coord
	for p := (Coord{c.X + dx, c.Y + dy}); b.Contains(p); p = (Coord{p.X + dx, p.Y + dy}) {
		points = append(points, p)
	}
	return points
}
