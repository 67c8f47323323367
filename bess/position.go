package bess

import (
	"strings"

	"github.com/pkg/errors"
)

// Position is a Bess game position: a board, the ban in force for the side to
// move, and the plies that led here. Positions are immutable; Apply and Undo
// return other positions, so a Position may be shared between readers.
type Position struct {
	board Board
	ban   BanState

	// prev is the position before last was played; nil at the root.
	prev *Position
	last BanMove
	ply  int
}

// NewPosition starts a game from board with the given ban in force.
// Fresh games pass BanState{}.
func NewPosition(board Board, ban BanState) *Position {
	return &Position{board: board, ban: ban}
}

func (p *Position) Board() Board { return p.board }

// Ban returns the ban in force for the side to move.
func (p *Position) Ban() BanState { return p.ban }

func (p *Position) SideToMove() Color { return p.board.SideToMove() }

// Ply returns the number of plies applied since the root position.
func (p *Position) Ply() int { return p.ply }

// LastMove returns the move that produced p, if any.
func (p *Position) LastMove() (BanMove, bool) {
	if p.prev == nil {
		return NullMove, false
	}
	return p.last, true
}

// History returns the applied plies, oldest first.
func (p *Position) History() []BanMove {
	moves := make([]BanMove, p.ply)
	for q := p; q.prev != nil; q = q.prev {
		moves[q.ply-1] = q.last
	}
	return moves
}

// Apply plays m and returns the resulting position. The opponent is banned
// from moving m.Ban on their reply.
func (p *Position) Apply(m BanMove) (*Position, error) {
	if m.IsNull() {
		return nil, errors.Wrap(ErrIllegalMove, "null move")
	}
	if !m.Ban.Valid() {
		return nil, errors.Wrapf(ErrInvalidBan, "move %s", m)
	}
	if !p.IsLegal(m) {
		return nil, errors.Wrapf(ErrIllegalMove, "move %s with %s banned", m, p.ban)
	}
	return p.play(m)
}

// play applies m without checking legality.
func (p *Position) play(m BanMove) (*Position, error) {
	next, err := p.board.ApplyChessMove(m.Chess())
	if err != nil {
		return nil, errors.WithMessagef(err, "apply %s", m)
	}
	return &Position{
		board: next,
		ban:   NewBanState(m.Ban),
		prev:  p,
		last:  m,
		ply:   p.ply + 1,
	}, nil
}

// ApplyNull passes the turn. The ban state is carried over untouched.
func (p *Position) ApplyNull() (*Position, error) {
	nm, ok := p.board.(NullMover)
	if !ok {
		return nil, ErrNoNullMove
	}
	next, err := nm.PassTurn()
	if err != nil {
		return nil, errors.WithMessage(err, "null move")
	}
	return &Position{
		board: next,
		ban:   p.ban,
		prev:  p,
		last:  NullMove,
		ply:   p.ply + 1,
	}, nil
}

// Undo takes back the last ply, restoring the board, side to move and ban.
func (p *Position) Undo() (*Position, error) {
	if p.prev == nil {
		return nil, ErrNoHistory
	}
	return p.prev, nil
}

// FormatPosition writes the board's FEN followed by the ban field
// (a piece letter, or "-" when nothing is banned).
func FormatPosition(p *Position) (string, error) {
	f, ok := p.board.(FENer)
	if !ok {
		return "", ErrNoFEN
	}
	return f.FEN() + " " + p.ban.String(), nil
}

// SplitBanField separates a persisted position into its standard FEN and ban
// state. A plain six-field FEN carries no ban.
func SplitBanField(s string) (string, BanState, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 6:
		return strings.Join(fields, " "), BanState{}, nil
	case 7:
		ban, err := ParseBanState(fields[6])
		if err != nil {
			return "", BanState{}, err
		}
		return strings.Join(fields[:6], " "), ban, nil
	}
	return "", BanState{}, errors.Errorf("position %q: want 6 or 7 fields, got %d", s, len(fields))
}
