package bess

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Target is one destination offered by a board for a piece, with the
// promotion piece when the move promotes.
type Target struct {
	To        Square
	Promotion PieceType
}

// ChessMove is the board-affecting part of a BanMove. Boards never see bans.
type ChessMove struct {
	From, To  Square
	Promotion PieceType
}

func (m ChessMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Symbol())
	}
	return s
}

// BanMove is a chess move plus the piece type the opponent may not move on
// their next ply. The zero value is the null move.
type BanMove struct {
	From      Square
	To        Square
	Promotion PieceType
	Ban       PieceType
}

// NullMove passes the turn. It is only used for internal stepping.
var NullMove = BanMove{}

// IsNull reports whether m is the null move.
func (m BanMove) IsNull() bool { return m == NullMove }

// Chess returns the board-affecting component of m.
func (m BanMove) Chess() ChessMove {
	return ChessMove{From: m.From, To: m.To, Promotion: m.Promotion}
}

// WithBan pairs a chess move with a ban announcement.
func (m ChessMove) WithBan(ban PieceType) BanMove {
	return BanMove{From: m.From, To: m.To, Promotion: m.Promotion, Ban: ban}
}

// UCI encodes m as <from><to>[promo]:<ban>, e.g. "e2e4:n" or "a7a8q:k".
// The null move encodes as "0000".
func (m BanMove) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	var sb strings.Builder
	sb.Grow(7)
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoPieceType {
		sb.WriteByte(m.Promotion.Symbol())
	}
	sb.WriteByte(':')
	sb.WriteByte(m.Ban.Symbol())
	return sb.String()
}

func (m BanMove) String() string { return m.UCI() }

// ParseMove decodes the extended UCI notation produced by UCI.
func ParseMove(s string) (BanMove, error) {
	if s == "0000" {
		return NullMove, nil
	}
	var promo byte
	switch {
	case len(s) == 6 && s[4] == ':':
	case len(s) == 7 && s[5] == ':':
		promo = s[4]
	default:
		return NullMove, errors.Wrapf(ErrInvalidNotation, "move %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, errors.WithMessagef(err, "move %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, errors.WithMessagef(err, "move %q", s)
	}
	if from == to {
		return NullMove, errors.Wrapf(ErrInvalidNotation, "move %q: use 0000 for null moves", s)
	}

	m := BanMove{From: from, To: to}
	if promo != 0 {
		pt, ok := PieceTypeFromSymbol(promo)
		if !ok || !pt.Promotable() {
			return NullMove, errors.Wrapf(ErrInvalidNotation, "move %q: promotion piece %q", s, promo)
		}
		m.Promotion = pt
	}
	ban, ok := PieceTypeFromSymbol(s[len(s)-1])
	if !ok {
		return NullMove, errors.Wrapf(ErrInvalidNotation, "move %q: ban piece %q", s, s[len(s)-1])
	}
	m.Ban = ban
	return m, nil
}

// ParseMoves decodes a whitespace separated move list. Every malformed token
// is reported in the returned error.
func ParseMoves(line string) ([]BanMove, error) {
	fields := strings.Fields(line)
	moves := make([]BanMove, 0, len(fields))
	var errs error
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "token %d", i+1))
			continue
		}
		moves = append(moves, m)
	}
	if errs != nil {
		return nil, errs
	}
	return moves, nil
}
