package board

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/qnkhuat/queensterm/pkg/coord"
)

// allowList accepts any empty non-scorched destination present in moves.
type allowList struct {
	moves coord.KeySet
}

func (a allowList) CanAcceptFigure(c *Cell) bool {
	return c.IsEmpty() && !c.IsScorched()
}

func (a allowList) IsMoveAvailable(_ *Cell, destination coord.Coord) bool {
	return a.moves.Has(destination)
}

type boardState struct {
	Statuses []Status
	Occupied []coord.Coord
	Pieces   map[string]coord.Coord
}

func stateOf(b *Board) boardState {
	s := boardState{Pieces: make(map[string]coord.Coord)}
	for _, cell := range b.cells {
		s.Statuses = append(s.Statuses, cell.Status())
	}
	for _, cell := range b.OccupiedCells() {
		s.Occupied = append(s.Occupied, cell.Coord())
	}
	for id, c := range b.pieceToCoord {
		s.Pieces[id.String()] = c
	}
	return s
}

func newTestBoard(t *testing.T) (*Board, *Player, *Piece) {
	t.Helper()

	b, err := New(DefaultSize, DefaultSize)
	if err != nil {
		t.Fatalf("failed to create board: %s", err)
	}

	p := NewPlayer("tester", White)
	b.AddPlayer(p)

	q := NewPiece(p, Queen, "Q")
	if err := b.SpawnPiece(q, coord.Coord{X: 3, Y: 0}); err != nil {
		t.Fatalf("failed to spawn piece: %s", err)
	}

	return b, p, q
}

func TestNew(t *testing.T) {
	b, err := New(5, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(b.cells) != 15 {
		t.Errorf("wanted 15 cells got %d", len(b.cells))
	}
	for _, c := range coord.Rectangle(coord.Coord{}, coord.Coord{X: 4, Y: 2}) {
		cell, ok := b.Cell(c)
		if !ok {
			t.Fatalf("missing cell %s", c)
		}
		if cell.Coord() != c {
			t.Errorf("cell %s reports coordinate %s", c, cell.Coord())
		}
		if cell.Status() != Open || !cell.IsEmpty() {
			t.Errorf("cell %s is not open and empty", c)
		}
	}

	if _, ok := b.Cell(coord.Coord{X: 5, Y: 0}); ok {
		t.Error("failed to reject out of range column")
	}
	if _, ok := b.Cell(coord.Coord{X: 0, Y: -1}); ok {
		t.Error("failed to reject negative row")
	}

	if _, err := New(0, 8); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("wanted ErrInvalidSize, got %v", err)
	}
	if _, err := New(100000, 100000); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("failed to reject oversized board, got %v", err)
	}
	if _, err := New(MaxSize, MaxSize); err != nil {
		t.Errorf("failed to create the largest board: %s", err)
	}

	grid := b.Grid()
	if len(grid) != 3 || len(grid[0]) != 5 || grid[2][4].Coord() != (coord.Coord{X: 4, Y: 2}) {
		t.Error("unexpected grid layout")
	}
}

func TestCells(t *testing.T) {
	b, _ := New(4, 4)

	in := []coord.Coord{{X: 3, Y: 3}, {X: 9, Y: 9}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	cells := b.Cells(in)
	if len(cells) != 2 {
		t.Fatalf("wanted 2 cells got %d", len(cells))
	}
	if cells[0].Coord() != in[0] || cells[1].Coord() != in[2] {
		t.Error("failed to preserve input order")
	}
}

func TestSpawnPiece(t *testing.T) {
	b, p, q := newTestBoard(t)

	cell, _ := b.Cell(coord.Coord{X: 3, Y: 0})
	if cell.Piece() != q || !cell.IsScorched() {
		t.Error("spawned piece cell is not occupied and scorched")
	}
	if c, ok := b.PieceCoord(q); !ok || c != (coord.Coord{X: 3, Y: 0}) {
		t.Error("piece index out of sync")
	}
	if got := b.PiecesByPlayer(p.ID); len(got) != 1 || got[0] != q {
		t.Error("player index out of sync")
	}
	if got := b.PiecesOnBoardByPlayer(p.ID); len(got) != 1 {
		t.Error("piece not reported on board")
	}

	if err := b.SpawnPiece(NewPiece(p, Queen, "Q"), coord.Coord{X: 3, Y: 0}); !errors.Is(err, ErrOccupied) {
		t.Errorf("wanted ErrOccupied, got %v", err)
	}
	if err := b.SpawnPiece(NewPiece(p, Queen, "Q"), coord.Coord{X: 30, Y: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("wanted ErrOutOfRange, got %v", err)
	}
	stranger := NewPlayer("stranger", Black)
	if err := b.SpawnPiece(NewPiece(stranger, Queen, "Q"), coord.Coord{X: 0, Y: 0}); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("wanted ErrUnknownPlayer, got %v", err)
	}
	if b.PiecesCount() != 1 {
		t.Errorf("failed spawns registered pieces: %d", b.PiecesCount())
	}
}

func TestMoveFigureFailureDoesNotMutate(t *testing.T) {
	b, _, _ := newTestBoard(t)

	b.SetReferee(allowList{moves: coord.NewKeySet(coord.Coord{X: 3, Y: 5})})
	scorched, _ := b.Cell(coord.Coord{X: 0, Y: 7})
	scorched.setStatus(Scorched)

	before := stateOf(b)

	attempts := []struct {
		name     string
		from, to coord.Coord
	}{
		{"empty origin", coord.Coord{X: 0, Y: 0}, coord.Coord{X: 3, Y: 5}},
		{"origin out of range", coord.Coord{X: 8, Y: 0}, coord.Coord{X: 3, Y: 5}},
		{"destination out of range", coord.Coord{X: 3, Y: 0}, coord.Coord{X: 3, Y: 8}},
		{"destination occupied", coord.Coord{X: 3, Y: 0}, coord.Coord{X: 3, Y: 0}},
		{"destination scorched", coord.Coord{X: 3, Y: 0}, coord.Coord{X: 0, Y: 7}},
		{"destination not legal", coord.Coord{X: 3, Y: 0}, coord.Coord{X: 3, Y: 4}},
	}

	for _, a := range attempts {
		for i := 0; i < 2; i++ {
			res := b.MoveFigure(a.from, a.to)
			if res.Success || res.Piece != nil {
				t.Errorf("%s: move unexpectedly succeeded", a.name)
			}
			if after := stateOf(b); !reflect.DeepEqual(before, after) {
				t.Fatalf("%s: failed move mutated the board", a.name)
			}
		}
	}

	b.SetReferee(nil)
	if res := b.MoveFigure(coord.Coord{X: 3, Y: 0}, coord.Coord{X: 3, Y: 5}); res.Success {
		t.Error("move succeeded without a referee")
	}
}

func TestMoveFigure(t *testing.T) {
	b, p, q := newTestBoard(t)
	b.SetReferee(allowList{moves: coord.NewKeySet(coord.Coord{X: 3, Y: 5})})

	var events []Event
	unsubscribe := b.Subscribe(func(ev Event) { events = append(events, ev) })

	occupied := b.OccupiedCellsCount()
	res := b.MoveFigure(coord.Coord{X: 3, Y: 0}, coord.Coord{X: 3, Y: 5})
	if !res.Success {
		t.Fatal("failed to move piece")
	}
	if res.Piece != q || res.Origin.Coord() != (coord.Coord{X: 3, Y: 0}) || res.Destination.Coord() != (coord.Coord{X: 3, Y: 5}) {
		t.Error("unexpected move result")
	}

	if !res.Origin.IsEmpty() || !res.Origin.IsScorched() {
		t.Error("origin is not vacant and scorched")
	}
	if res.Destination.Piece() != q || !res.Destination.IsScorched() {
		t.Error("destination is not occupied and scorched")
	}
	if b.OccupiedCellsCount() != occupied {
		t.Errorf("occupied count changed from %d to %d", occupied, b.OccupiedCellsCount())
	}
	if c, _ := b.PieceCoord(q); c != (coord.Coord{X: 3, Y: 5}) {
		t.Error("piece index out of sync after move")
	}
	if got := b.OccupiedCells(); len(got) != 1 || got[0] != res.Destination {
		t.Error("occupied cells out of sync after move")
	}
	if got := b.PiecesOnBoardByPlayer(p.ID); len(got) != 1 || got[0] != q {
		t.Error("player pieces out of sync after move")
	}

	var moved, changed int
	for _, ev := range events {
		switch ev := ev.(type) {
		case PieceMoved:
			moved++
			if ev.Piece != q {
				t.Error("move event carries the wrong piece")
			}
		case CellChanged:
			changed++
			if ev.To != Scorched {
				t.Errorf("unexpected cell change to %s", ev.To)
			}
		}
	}
	// the origin was already scorched by the spawn
	if moved != 1 || changed != 1 {
		t.Errorf("wanted 1 move and 1 cell event, got %d and %d", moved, changed)
	}

	unsubscribe()
	events = nil
	b.Publish(GameFinished{})
	if len(events) != 0 {
		t.Error("listener still receives events after unsubscribe")
	}
}

func TestScorchedIsPermanent(t *testing.T) {
	b, _ := New(3, 3)
	cell, _ := b.Cell(coord.Coord{X: 1, Y: 1})

	b.Highlight([]coord.Coord{{X: 1, Y: 1}})
	if cell.Status() != Highlighted {
		t.Fatal("failed to highlight open cell")
	}
	b.ClearHighlights()
	if cell.Status() != Open {
		t.Fatal("failed to clear highlight")
	}

	cell.setStatus(Scorched)
	b.Highlight([]coord.Coord{{X: 1, Y: 1}})
	b.ClearHighlights()
	if cell.setStatus(Open) || cell.Status() != Scorched {
		t.Error("scorched cell changed status")
	}
}

func TestRandomCells(t *testing.T) {
	b, _, _ := newTestBoard(t)
	rng := rand.New(rand.NewSource(1))

	cells, err := b.RandomCells(10, true, rng)
	if err != nil {
		t.Fatal(err)
	}
	seen := coord.NewKeySet()
	for _, c := range cells {
		if seen.Has(c.Coord()) {
			t.Errorf("duplicate random cell %s", c.Coord())
		}
		seen.Add(c.Coord())
		if !c.IsEmpty() || c.IsScorched() {
			t.Errorf("random cell %s is not empty", c.Coord())
		}
	}

	if _, err := b.RandomCells(64, true, rng); !errors.Is(err, ErrNotEnoughCells) {
		t.Errorf("wanted ErrNotEnoughCells, got %v", err)
	}
	if all, err := b.RandomCells(64, false, rng); err != nil || len(all) != 64 {
		t.Errorf("failed to pick every cell: %v", err)
	}
}
