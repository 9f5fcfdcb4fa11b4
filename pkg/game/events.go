package game

import (
	"log"

	"github.com/qnkhuat/queensterm/pkg/board"
)

// logEvent records spawns and moves. Cell changes follow from moves and are left out.
func logEvent(ev board.Event) {
	switch ev := ev.(type) {
	case board.PlayerSpawned:
		log.Printf("player %s joined as %s", ev.Player.Name, ev.Player.Color)
	case board.PieceSpawned:
		log.Printf("%s %s spawned at %s", ev.Piece.Owner.Name, ev.Piece.Type, ev.Coord)
	case board.PieceMoved:
		log.Printf("%s moved %s -> %s", ev.Piece.Owner.Name, ev.From, ev.To)
	}
}
