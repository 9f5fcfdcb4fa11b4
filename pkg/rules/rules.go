// Package rules holds the game variants. A variant computes legal moves, decides
// whether a cell accepts a piece, advances the game one turn at a time and
// reports the winner.
package rules

import (
	"strconv"

	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/coord"
)

type Rules interface {
	board.Referee

	Name() string

	// Setup only.
	SpawnPlayers() ([]*board.Player, error)
	SpawnFigures(players []*board.Player) error

	CellAvailableMoves(c *board.Cell) []coord.Coord
	CheckWinningConditions() WinResult

	// NextMove plays one turn for the next player. Running out of moves is not
	// an error; it is reported by CheckWinningConditions.
	NextMove() error

	Score(p *board.Player) int
	ActivePlayer() *board.Player

	ColumnNames() []string
	RowNames() []string
}

type WinResult struct {
	Won    bool
	Winner *board.Player
}

// columnNames labels columns a, b, c... and falls back to numbers past z.
func columnNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		if n <= 26 {
			names[i] = string(rune('a' + i))
		} else {
			names[i] = strconv.Itoa(i + 1)
		}
	}
	return names
}

func rowNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}
