package rules

import "errors"

var (
	// ErrNotFound means a setup resource, such as a spawn point, is missing.
	ErrNotFound = errors.New("not found")
	// ErrFailure means the board rejected a move the rules produced themselves.
	ErrFailure = errors.New("failure")
)
