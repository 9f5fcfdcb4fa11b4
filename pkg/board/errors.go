package board

import "errors"

var (
	ErrInvalidSize    = errors.New("invalid board size")
	ErrOutOfRange     = errors.New("coordinate out of range")
	ErrOccupied       = errors.New("cell occupied")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrNotEnoughCells = errors.New("not enough cells")
)
