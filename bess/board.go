package bess

// Board is the standard chess collaborator the ban layer sits on. It knows
// nothing about bans. Implementations must treat values as immutable:
// ApplyChessMove returns a new board and leaves the receiver untouched.
type Board interface {
	// SideToMove reports whose turn it is.
	SideToMove() Color
	// PiecesOfType returns the squares holding pieces of type pt for the side to move.
	PiecesOfType(pt PieceType) SquareSet
	// PseudoLegalTargets lists the moves of the piece on from, ignoring self-check.
	PseudoLegalTargets(from Square) []Target
	// IsKingAttacked reports whether side's king is attacked.
	IsKingAttacked(side Color) bool
	// ApplyChessMove plays m and returns the resulting board.
	ApplyChessMove(m ChessMove) (Board, error)
}

// FENer is implemented by boards that can export standard FEN.
type FENer interface {
	FEN() string
}

// NullMover is implemented by boards that can pass the turn without moving.
type NullMover interface {
	PassTurn() (Board, error)
}
