// Package board owns the cells, players and pieces of a single game and keeps
// the occupancy indexes consistent.
package board

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/qnkhuat/queensterm/pkg/coord"
)

const (
	DefaultSize = 8
	MaxSize     = 64
)

// Referee decides whether a move is allowed. The active ruleset implements it.
type Referee interface {
	CanAcceptFigure(c *Cell) bool
	IsMoveAvailable(origin *Cell, destination coord.Coord) bool
}

// MoveResult reports a MoveFigure attempt. Piece is nil when Success is false.
type MoveResult struct {
	Success     bool
	Origin      *Cell
	Destination *Cell
	Piece       *Piece
}

// Board is the registry for one game. It is not safe for concurrent use; callers
// serialize access (see game.Game).
type Board struct {
	columns int
	rows    int

	cells   []*Cell // row-major
	players []*Player

	pieces       map[uuid.UUID]*Piece
	playerPieces map[uuid.UUID][]*Piece
	coordToPiece map[string]*Piece
	pieceToCoord map[uuid.UUID]coord.Coord

	referee Referee

	listeners    []listenerEntry
	nextListener int
}

func New(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 || columns > MaxSize || rows > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, columns, rows)
	}

	b := &Board{
		columns:      columns,
		rows:         rows,
		cells:        make([]*Cell, 0, columns*rows),
		pieces:       make(map[uuid.UUID]*Piece),
		playerPieces: make(map[uuid.UUID][]*Piece),
		coordToPiece: make(map[string]*Piece),
		pieceToCoord: make(map[uuid.UUID]coord.Coord),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			b.cells = append(b.cells, &Cell{coord: coord.Coord{X: x, Y: y}, status: Open, board: b})
		}
	}

	return b, nil
}

// SetReferee attaches the ruleset consulted by MoveFigure.
func (b *Board) SetReferee(r Referee) {
	b.referee = r
}

func (b *Board) Columns() int { return b.columns }

func (b *Board) Rows() int { return b.rows }

func (b *Board) MaxX() int { return b.columns - 1 }

func (b *Board) MaxY() int { return b.rows - 1 }

func (b *Board) Bounds() coord.Bounds {
	return coord.Bounds{MaxX: b.MaxX(), MaxY: b.MaxY()}
}

func (b *Board) Cell(c coord.Coord) (*Cell, bool) {
	if !b.Bounds().Contains(c) {
		return nil, false
	}
	return b.cells[c.Y*b.columns+c.X], true
}

// Cells looks up every in-range coordinate, dropping the rest and keeping order.
func (b *Board) Cells(cs []coord.Coord) []*Cell {
	if len(cs) == 0 {
		return nil
	}

	cells := make([]*Cell, 0, len(cs))
	for _, c := range cs {
		if cell, ok := b.Cell(c); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Grid returns the cells row by row, top row first.
func (b *Board) Grid() [][]*Cell {
	grid := make([][]*Cell, b.rows)
	for y := range grid {
		grid[y] = b.cells[y*b.columns : (y+1)*b.columns : (y+1)*b.columns]
	}
	return grid
}

// RandomCells picks n distinct cells, only empty non-scorched ones when emptyOnly is set.
func (b *Board) RandomCells(n int, emptyOnly bool, rng *rand.Rand) ([]*Cell, error) {
	if n <= 0 {
		return nil, nil
	}

	var candidates []*Cell
	for _, cell := range b.cells {
		if emptyOnly && (!cell.IsEmpty() || cell.IsScorched()) {
			continue
		}
		candidates = append(candidates, cell)
	}

	if len(candidates) < n {
		return nil, fmt.Errorf("%w: wanted %d, have %d", ErrNotEnoughCells, n, len(candidates))
	}

	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	return candidates[:n], nil
}

func (b *Board) AddPlayer(p *Player) {
	if b.Player(p.ID) != nil {
		return
	}

	b.players = append(b.players, p)
	b.Publish(PlayerSpawned{Player: p})
}

// Players returns the players in turn order.
func (b *Board) Players() []*Player {
	return append([]*Player(nil), b.players...)
}

func (b *Board) Player(id uuid.UUID) *Player {
	for _, p := range b.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SpawnPiece places a new piece and scorches its cell.
func (b *Board) SpawnPiece(p *Piece, at coord.Coord) error {
	if p.Owner == nil || b.Player(p.Owner.ID) == nil {
		return ErrUnknownPlayer
	}

	cell, ok := b.Cell(at)
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutOfRange, at)
	}
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupied, at)
	}

	b.pieces[p.ID] = p
	b.playerPieces[p.Owner.ID] = append(b.playerPieces[p.Owner.ID], p)
	b.coordToPiece[coord.Key(at)] = p
	b.pieceToCoord[p.ID] = at

	cell.setStatus(Scorched)
	b.Publish(PieceSpawned{Piece: p, Coord: at})

	return nil
}

func (b *Board) PieceAt(c coord.Coord) *Piece {
	return b.coordToPiece[coord.Key(c)]
}

func (b *Board) PieceCoord(p *Piece) (coord.Coord, bool) {
	c, ok := b.pieceToCoord[p.ID]
	return c, ok
}

func (b *Board) PiecesCount() int { return len(b.pieces) }

// PiecesByPlayer returns the player's pieces in spawn order.
func (b *Board) PiecesByPlayer(id uuid.UUID) []*Piece {
	return append([]*Piece(nil), b.playerPieces[id]...)
}

func (b *Board) PiecesOnBoardByPlayer(id uuid.UUID) []*Piece {
	var pieces []*Piece
	for _, p := range b.playerPieces[id] {
		if _, ok := b.pieceToCoord[p.ID]; ok {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// OccupiedCells is derived from the occupancy index, row-major.
func (b *Board) OccupiedCells() []*Cell {
	cells := make([]*Cell, 0, len(b.coordToPiece))
	for _, cell := range b.cells {
		if _, ok := b.coordToPiece[cell.Key()]; ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (b *Board) OccupiedCellsCount() int {
	return len(b.coordToPiece)
}

// MoveFigure relocates the piece at origin. A failed attempt leaves the board untouched.
func (b *Board) MoveFigure(origin, destination coord.Coord) MoveResult {
	originCell, ok := b.Cell(origin)
	if !ok || originCell.IsEmpty() {
		return MoveResult{Origin: originCell}
	}

	destinationCell, ok := b.Cell(destination)
	if !ok {
		return MoveResult{Origin: originCell}
	}

	if b.referee == nil || !b.referee.CanAcceptFigure(destinationCell) {
		return MoveResult{Origin: originCell, Destination: destinationCell}
	}

	if !b.referee.IsMoveAvailable(originCell, destination) {
		return MoveResult{Origin: originCell, Destination: destinationCell}
	}

	piece := b.coordToPiece[originCell.Key()]

	delete(b.coordToPiece, originCell.Key())
	originCell.setStatus(Scorched)

	b.coordToPiece[destinationCell.Key()] = piece
	b.pieceToCoord[piece.ID] = destination
	destinationCell.setStatus(Scorched)

	b.Publish(PieceMoved{Piece: piece, From: origin, To: destination})

	return MoveResult{Success: true, Origin: originCell, Destination: destinationCell, Piece: piece}
}

// Highlight marks non-scorched cells as Highlighted.
func (b *Board) Highlight(cs []coord.Coord) {
	for _, cell := range b.Cells(cs) {
		cell.setStatus(Highlighted)
	}
}

func (b *Board) ClearHighlights() {
	for _, cell := range b.cells {
		if cell.status == Highlighted {
			cell.setStatus(Open)
		}
	}
}

// Scorch blocks cells permanently without a piece having stood on them.
func (b *Board) Scorch(cs ...coord.Coord) {
	for _, cell := range b.Cells(cs) {
		cell.setStatus(Scorched)
	}
}
