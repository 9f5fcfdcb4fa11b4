package game

import (
	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/coord"
)

// CellView is a read-only copy of a cell.
type CellView struct {
	Coord    coord.Coord
	Status   board.Status
	Glyph    string // piece glyph, or the status glyph when empty
	Occupied bool
	Owner    board.PlayerColor
}

type PlayerView struct {
	Name   string
	Color  board.PlayerColor
	Score  int
	Active bool
}

// Snapshot is everything a renderer may read. It shares nothing with the game.
type Snapshot struct {
	Rules       string
	Columns     int
	Rows        int
	ColumnNames []string
	RowNames    []string
	Cells       [][]CellView // row by row, top first
	Players     []PlayerView // turn order
	State       State
	Turns       int
	Winner      *PlayerView
}

func (s Snapshot) ActivePlayer() (PlayerView, bool) {
	for _, p := range s.Players {
		if p.Active {
			return p, true
		}
	}
	return PlayerView{}, false
}

func (g *Game) Snapshot() Snapshot {
	g.Lock()
	defer g.Unlock()

	return g.SnapshotL()
}

func (g *Game) SnapshotL() Snapshot {
	s := Snapshot{
		Rules:       g.Rules.Name(),
		Columns:     g.Board.Columns(),
		Rows:        g.Board.Rows(),
		ColumnNames: g.Rules.ColumnNames(),
		RowNames:    g.Rules.RowNames(),
		State:       g.state,
		Turns:       g.turns,
	}

	for _, row := range g.Board.Grid() {
		views := make([]CellView, len(row))
		for i, cell := range row {
			v := CellView{Coord: cell.Coord(), Status: cell.Status(), Glyph: cell.Status().Glyph(), Owner: board.Unknown}
			if p := cell.Piece(); p != nil {
				v.Occupied = true
				v.Glyph = p.Glyph
				v.Owner = p.Owner.Color
			}
			views[i] = v
		}
		s.Cells = append(s.Cells, views)
	}

	active := g.Rules.ActivePlayer()
	for _, p := range g.Board.Players() {
		v := PlayerView{
			Name:   p.Name,
			Color:  p.Color,
			Score:  g.Rules.Score(p),
			Active: p == active,
		}
		s.Players = append(s.Players, v)

		if g.winner == p {
			w := v
			s.Winner = &w
		}
	}

	return s
}
