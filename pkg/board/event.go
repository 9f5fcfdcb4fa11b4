package board

import (
	"github.com/qnkhuat/queensterm/pkg/coord"
)

// Event is anything published to board listeners.
type Event interface {
	event()
}

type PlayerSpawned struct {
	Player *Player
}

type PieceSpawned struct {
	Piece *Piece
	Coord coord.Coord
}

type PieceMoved struct {
	Piece    *Piece
	From, To coord.Coord
}

type CellChanged struct {
	Coord    coord.Coord
	From, To Status
}

// GameFinished carries the winner, nil when nobody won.
type GameFinished struct {
	Winner *Player
}

func (PlayerSpawned) event() {}
func (PieceSpawned) event()  {}
func (PieceMoved) event()    {}
func (CellChanged) event()   {}
func (GameFinished) event()  {}

// Listener is invoked synchronously at the point of mutation.
type Listener func(Event)

// Subscribe registers l and returns a function that removes it.
func (b *Board) Subscribe(l Listener) func() {
	b.nextListener++
	id := b.nextListener
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: l})

	return func() {
		for i, e := range b.listeners {
			if e.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) Publish(ev Event) {
	listeners := append([]listenerEntry(nil), b.listeners...)
	for _, e := range listeners {
		e.fn(ev)
	}
}

type listenerEntry struct {
	id int
	fn Listener
}
