package board

import (
	"github.com/google/uuid"
)

type PieceType int

const (
	PieceUnknown PieceType = iota
	Queen
)

func (t PieceType) String() string {
	switch t {
	case Queen:
		return "Queen"
	default:
		return "Unknown"
	}
}

// Piece carries identity only; movement belongs to the rules.
type Piece struct {
	ID    uuid.UUID
	Owner *Player
	Glyph string
	Type  PieceType
}

func NewPiece(owner *Player, t PieceType, glyph string) *Piece {
	return &Piece{
		ID:    uuid.New(),
		Owner: owner,
		Glyph: glyph,
		Type:  t,
	}
}
