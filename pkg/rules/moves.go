package rules

import (
	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/coord"
)

// scanner walks rays outward from a piece and applies the jump policy.
type scanner struct {
	board              *board.Board
	maxCellsToJumpOver int
}

func (s scanner) horizontal(c coord.Coord) []coord.Coord {
	bounds := s.board.Bounds()
	return append(s.scan(bounds.Left(c)), s.scan(bounds.Right(c))...)
}

func (s scanner) vertical(c coord.Coord) []coord.Coord {
	bounds := s.board.Bounds()
	return append(s.scan(bounds.Up(c)), s.scan(bounds.Down(c))...)
}

func (s scanner) diagonal(c coord.Coord) []coord.Coord {
	bounds := s.board.Bounds()

	var moves []coord.Coord
	moves = append(moves, s.scan(bounds.UpLeft(c))...)
	moves = append(moves, s.scan(bounds.UpRight(c))...)
	moves = append(moves, s.scan(bounds.DownLeft(c))...)
	moves = append(moves, s.scan(bounds.DownRight(c))...)
	return moves
}

// scan returns the reachable cells of a nearest-first ray. Scorched cells are
// never destinations. A run of more than maxCellsToJumpOver scorched cells
// closes the rest of the ray.
func (s scanner) scan(ray []coord.Coord) []coord.Coord {
	var (
		moves  []coord.Coord
		jumped int
	)

	for _, cell := range s.board.Cells(ray) {
		if cell.IsScorched() {
			jumped++
			continue
		}

		if jumped > s.maxCellsToJumpOver {
			continue
		}

		jumped = 0
		moves = append(moves, cell.Coord())
	}

	return moves
}
