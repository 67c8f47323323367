package bess

import "github.com/pkg/errors"

// Errors returned by the rules core. They are wrapped with context, so compare
// with errors.Is or errors.Cause.
var (
	ErrInvalidNotation = errors.New("invalid move notation")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidBan      = errors.New("invalid ban piece")
	ErrNoHistory       = errors.New("no move to take back")
	ErrNoNullMove      = errors.New("board cannot pass the turn")
	ErrNoFEN           = errors.New("board cannot export FEN")
)
