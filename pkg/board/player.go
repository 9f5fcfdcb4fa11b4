package board

import (
	"github.com/google/uuid"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Glyph is the square drawn next to the player's name.
func (pc PlayerColor) Glyph() string {
	switch pc {
	case White:
		return "⬜"
	case Black:
		return "⬛"
	default:
		return "🟦"
	}
}

type Player struct {
	ID    uuid.UUID
	Name  string
	Color PlayerColor
}

func NewPlayer(name string, color PlayerColor) *Player {
	return &Player{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
	}
}

func (p *Player) String() string {
	return p.Name + " " + p.Color.Glyph()
}
