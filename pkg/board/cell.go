package board

import (
	"github.com/qnkhuat/queensterm/pkg/coord"
)

type Status int

const (
	Open Status = iota
	Scorched
	Highlighted
)

func (s Status) String() string {
	switch s {
	case Open:
		return "Open"
	case Scorched:
		return "Scorched"
	case Highlighted:
		return "Highlighted"
	default:
		return "Unknown"
	}
}

// Glyph is the square used when the cell holds no piece.
func (s Status) Glyph() string {
	switch s {
	case Scorched:
		return "⬛"
	case Highlighted:
		return "🟦"
	default:
		return "⬜"
	}
}

// Cell is a single board slot. Occupancy lives in the Board index, not here.
type Cell struct {
	coord  coord.Coord
	status Status
	board  *Board
}

func (c *Cell) Coord() coord.Coord { return c.coord }

func (c *Cell) Key() string { return coord.Key(c.coord) }

func (c *Cell) Status() Status { return c.status }

func (c *Cell) IsScorched() bool { return c.status == Scorched }

func (c *Cell) IsEmpty() bool {
	return c.board.PieceAt(c.coord) == nil
}

// Piece returns the occupant or nil.
func (c *Cell) Piece() *Piece {
	return c.board.PieceAt(c.coord)
}

// setStatus applies next unless the cell is already Scorched, and reports whether
// the status changed.
func (c *Cell) setStatus(next Status) bool {
	if c.status == Scorched || c.status == next {
		return false
	}

	prev := c.status
	c.status = next
	c.board.Publish(CellChanged{Coord: c.coord, From: prev, To: next})
	return true
}
