package rules

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/coord"
)

const (
	QueensBattleName = "Queens Battle"

	DefaultMaxCellsToJumpOver = 1
)

var (
	defaultPlayerNames = []string{"Darth Vader", "Luke Skywalker"}
	defaultGlyphs      = []string{"🤴", "👸"}
)

type Option func(*QueensBattle)

// WithRand sets the source used to pick moves.
func WithRand(rng *rand.Rand) Option {
	return func(q *QueensBattle) { q.rng = rng }
}

// WithRandomNames replaces the default player names with generated ones.
func WithRandomNames() Option {
	return func(q *QueensBattle) { q.randomNames = true }
}

func WithSpawnPoints(points ...coord.Coord) Option {
	return func(q *QueensBattle) { q.spawnPoints = points }
}

// WithRandomSpawnPoints places the queens on random open cells instead of the
// spawn points.
func WithRandomSpawnPoints() Option {
	return func(q *QueensBattle) { q.randomSpawns = true }
}

func WithMaxCellsToJumpOver(n int) Option {
	return func(q *QueensBattle) { q.scanner.maxCellsToJumpOver = n }
}

// QueensBattle is the two player variant: one queen each, the game ends when
// the player to move is stuck.
type QueensBattle struct {
	board   *board.Board
	scanner scanner
	rng     *rand.Rand

	spawnPoints  []coord.Coord
	glyphs       []string
	randomNames  bool
	randomSpawns bool

	score          map[uuid.UUID]int
	active         int
	movesExhausted bool
}

func NewQueensBattle(b *board.Board, opts ...Option) *QueensBattle {
	q := &QueensBattle{
		board:   b,
		scanner: scanner{board: b, maxCellsToJumpOver: DefaultMaxCellsToJumpOver},
		spawnPoints: []coord.Coord{
			{X: 3, Y: 0},
			{X: 4, Y: b.MaxY()},
		},
		glyphs: defaultGlyphs,
		score:  make(map[uuid.UUID]int),
		active: -1,
	}

	for _, opt := range opts {
		opt(q)
	}

	if q.rng == nil {
		q.rng = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}

	return q
}

func (q *QueensBattle) Name() string { return QueensBattleName }

func (q *QueensBattle) SpawnPlayers() ([]*board.Player, error) {
	colors := []board.PlayerColor{board.Black, board.White}

	players := make([]*board.Player, len(defaultPlayerNames))
	for i, name := range defaultPlayerNames {
		if q.randomNames {
			name = petname.Generate(2, "-")
		}

		players[i] = board.NewPlayer(name, colors[i])
		q.board.AddPlayer(players[i])
		q.score[players[i].ID] = 0
	}

	return players, nil
}

// SpawnFigures gives every player a queen on its spawn point. Nothing is placed
// unless every player has a distinct open spawn point on the board.
func (q *QueensBattle) SpawnFigures(players []*board.Player) error {
	if len(players) > len(q.glyphs) {
		return fmt.Errorf("%w: glyph for player %d of %d", ErrNotFound, len(q.glyphs)+1, len(players))
	}

	points, err := q.spawnPointsFor(len(players))
	if err != nil {
		return err
	}

	for i, p := range players {
		piece := board.NewPiece(p, board.Queen, q.glyphs[i])
		if err := q.board.SpawnPiece(piece, points[i]); err != nil {
			return fmt.Errorf("spawn queen for %s: %w", p.Name, err)
		}
	}

	return nil
}

func (q *QueensBattle) spawnPointsFor(n int) ([]coord.Coord, error) {
	if q.randomSpawns {
		cells, err := q.board.RandomCells(n, true, q.rng)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, err)
		}
		points := make([]coord.Coord, len(cells))
		for i, c := range cells {
			points[i] = c.Coord()
		}
		return points, nil
	}

	if n > len(q.spawnPoints) {
		return nil, fmt.Errorf("%w: spawn point for player %d of %d", ErrNotFound, len(q.spawnPoints)+1, n)
	}

	points := q.spawnPoints[:n]
	seen := coord.NewKeySet()
	for _, at := range points {
		cell, ok := q.board.Cell(at)
		if !ok || seen.Has(at) || !q.CanAcceptFigure(cell) {
			return nil, fmt.Errorf("%w: spawn point %s is not available on a %dx%d board", ErrNotFound, at, q.board.Columns(), q.board.Rows())
		}
		seen.Add(at)
	}
	return points, nil
}

func (q *QueensBattle) CanAcceptFigure(c *board.Cell) bool {
	return c.IsEmpty() && !c.IsScorched()
}

func (q *QueensBattle) CellAvailableMoves(c *board.Cell) []coord.Coord {
	piece := c.Piece()
	if piece == nil || piece.Type != board.Queen {
		return nil
	}

	var moves []coord.Coord
	moves = append(moves, q.scanner.horizontal(c.Coord())...)
	moves = append(moves, q.scanner.vertical(c.Coord())...)
	moves = append(moves, q.scanner.diagonal(c.Coord())...)
	return moves
}

func (q *QueensBattle) IsMoveAvailable(origin *board.Cell, destination coord.Coord) bool {
	return coord.NewKeySet(q.CellAvailableMoves(origin)...).Has(destination)
}

func (q *QueensBattle) NextMove() error {
	players := q.board.Players()
	if len(players) == 0 {
		return fmt.Errorf("%w: no players", ErrNotFound)
	}

	q.active = (q.active + 1) % len(players)
	player := players[q.active]

	pieces := q.board.PiecesOnBoardByPlayer(player.ID)
	if len(pieces) == 0 {
		q.movesExhausted = true
		return nil
	}

	from, _ := q.board.PieceCoord(pieces[0])
	cell, _ := q.board.Cell(from)

	moves := q.CellAvailableMoves(cell)
	if len(moves) == 0 {
		log.Printf("%s has no moves left at %s", player.Name, from)
		q.movesExhausted = true
		return nil
	}

	to := moves[q.rng.Intn(len(moves))]

	res := q.board.MoveFigure(from, to)
	if !res.Success {
		return fmt.Errorf("%w: board rejected %s moving %s -> %s", ErrFailure, player.Name, from, to)
	}

	q.score[player.ID]++

	return nil
}

// CheckWinningConditions ends the game once the player to move is stuck. The
// strictly highest score wins; ties go to the earlier player in turn order.
func (q *QueensBattle) CheckWinningConditions() WinResult {
	if !q.movesExhausted {
		return WinResult{}
	}

	var (
		winner *board.Player
		best   = -1
	)
	for _, p := range q.board.Players() {
		if s := q.score[p.ID]; s > best {
			best = s
			winner = p
		}
	}

	return WinResult{Won: true, Winner: winner}
}

func (q *QueensBattle) Score(p *board.Player) int {
	return q.score[p.ID]
}

// ActivePlayer is the player who moved last, nil before the first turn.
func (q *QueensBattle) ActivePlayer() *board.Player {
	players := q.board.Players()
	if q.active < 0 || q.active >= len(players) {
		return nil
	}
	return players[q.active]
}

func (q *QueensBattle) ColumnNames() []string { return columnNames(q.board.Columns()) }

func (q *QueensBattle) RowNames() []string { return rowNames(q.board.Rows()) }
