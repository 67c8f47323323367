package bess

// Status classifies a position. Draw rules are left to the caller.
type Status uint8

const (
	Continue Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "continue"
	}
}

// Outcome is the result of evaluating a position. Winner is only meaningful
// for Checkmate, where it is the side that delivered mate.
type Outcome struct {
	Status Status
	Winner Color
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool { return o.Status != Continue }

// Result renders the outcome in PGN result form.
func (o Outcome) Result() string {
	switch {
	case o.Status == Stalemate:
		return "1/2-1/2"
	case o.Status == Checkmate && o.Winner == White:
		return "1-0"
	case o.Status == Checkmate:
		return "0-1"
	}
	return "*"
}

// InCheck reports whether the side to move's king is attacked. Bans restrict
// who may move, not king safety, so the ban is ignored here.
func (p *Position) InCheck() bool {
	return p.board.IsKingAttacked(p.board.SideToMove())
}

// Outcome evaluates p. A side left without legal moves only because of the
// opponent's ban is mated or stalemated just the same.
func (p *Position) Outcome() Outcome {
	if p.HasLegalMoves() {
		return Outcome{Status: Continue}
	}
	if p.InCheck() {
		return Outcome{Status: Checkmate, Winner: p.board.SideToMove().Other()}
	}
	return Outcome{Status: Stalemate}
}

// GivesCheck reports whether playing m's chess move attacks the opponent's king.
func (p *Position) GivesCheck(m BanMove) bool {
	if m.IsNull() {
		return false
	}
	next, err := p.board.ApplyChessMove(m.Chess())
	if err != nil {
		return false
	}
	return next.IsKingAttacked(p.board.SideToMove().Other())
}
