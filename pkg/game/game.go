// Package game drives a board and a ruleset turn by turn.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/qnkhuat/queensterm/pkg/board"
	"github.com/qnkhuat/queensterm/pkg/rules"
)

const (
	DefaultTurnInterval  = time.Second
	DefaultFrameInterval = 500 * time.Millisecond
)

type State int

const (
	Setup State = iota
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Setup:
		return "Setup"
	case Playing:
		return "Playing"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

type Config struct {
	Columns       int
	Rows          int
	TurnInterval  time.Duration
	FrameInterval time.Duration
	Seed          int64 // 0 picks a time based seed
	Debug         bool  // highlight available moves after every turn
	RandomNames   bool
	RandomSpawn   bool // queens start on random open cells
}

func DefaultConfig() Config {
	return Config{
		Columns:       board.DefaultSize,
		Rows:          board.DefaultSize,
		TurnInterval:  DefaultTurnInterval,
		FrameInterval: DefaultFrameInterval,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Columns == 0 {
		c.Columns = d.Columns
	}
	if c.Rows == 0 {
		c.Rows = d.Rows
	}
	if c.TurnInterval <= 0 {
		c.TurnInterval = d.TurnInterval
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = d.FrameInterval
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UTC().UnixNano()
	}
	return c
}

// Game is the only writer of its board. Methods without the L suffix lock.
type Game struct {
	Board  *board.Board
	Rules  rules.Rules
	Config Config

	state  State
	turns  int
	winner *board.Player
	err    error // a failed turn halts the game for good

	*sync.Mutex
}

// New sets up a Queens Battle game.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()

	b, err := board.New(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}

	opts := []rules.Option{rules.WithRand(rand.New(rand.NewSource(cfg.Seed)))}
	if cfg.RandomNames {
		opts = append(opts, rules.WithRandomNames())
	}
	if cfg.RandomSpawn {
		opts = append(opts, rules.WithRandomSpawnPoints())
	}

	return NewWithRules(cfg, b, rules.NewQueensBattle(b, opts...))
}

// NewWithRules spawns players and pieces of r on b.
func NewWithRules(cfg Config, b *board.Board, r rules.Rules) (*Game, error) {
	cfg = cfg.withDefaults()
	b.SetReferee(r)
	b.Subscribe(logEvent)

	players, err := r.SpawnPlayers()
	if err != nil {
		return nil, fmt.Errorf("spawn players: %w", err)
	}
	if err := r.SpawnFigures(players); err != nil {
		return nil, fmt.Errorf("spawn figures: %w", err)
	}

	g := &Game{
		Board:  b,
		Rules:  r,
		Config: cfg,
		Mutex:  new(sync.Mutex),
	}

	if cfg.Debug {
		g.highlightL()
	}

	log.Printf("new %s game %dx%d seed %d", r.Name(), b.Columns(), b.Rows(), cfg.Seed)

	return g, nil
}

func (g *Game) State() State {
	g.Lock()
	defer g.Unlock()

	return g.state
}

func (g *Game) Winner() *board.Player {
	g.Lock()
	defer g.Unlock()

	return g.winner
}

func (g *Game) Turns() int {
	g.Lock()
	defer g.Unlock()

	return g.turns
}

// Advance plays one turn and reports whether the game is finished. An error
// means the rules and the board disagree; every later call returns it again.
func (g *Game) Advance() (bool, error) {
	g.Lock()
	defer g.Unlock()

	return g.AdvanceL()
}

func (g *Game) AdvanceL() (bool, error) {
	if g.state == Finished {
		return true, nil
	}
	if g.err != nil {
		return false, g.err
	}
	g.state = Playing

	if err := g.Rules.NextMove(); err != nil {
		g.err = fmt.Errorf("turn %d: %w", g.turns+1, err)
		log.Printf("game halted: %s", g.err)
		return false, g.err
	}
	g.turns++

	if res := g.Rules.CheckWinningConditions(); res.Won {
		g.finishL(res.Winner)
		return true, nil
	}

	if g.Config.Debug {
		g.highlightL()
	}

	return false, nil
}

func (g *Game) finishL(winner *board.Player) {
	g.state = Finished
	g.winner = winner
	g.Board.ClearHighlights()

	if winner != nil {
		log.Printf("game finished after %d turns, winner %s with %d", g.turns, winner.Name, g.Rules.Score(winner))
	} else {
		log.Printf("game finished after %d turns without a winner", g.turns)
	}

	g.Board.Publish(board.GameFinished{Winner: winner})
}

// highlightL marks every cell reachable by a piece on the board.
func (g *Game) highlightL() {
	g.Board.ClearHighlights()
	for _, cell := range g.Board.OccupiedCells() {
		g.Board.Highlight(g.Rules.CellAvailableMoves(cell))
	}
}
