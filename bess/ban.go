package bess

import "github.com/pkg/errors"

// BanState holds the piece type the side to move may not move this ply.
// The zero value means no ban, which only happens before the first move.
type BanState struct {
	piece PieceType
}

// NewBanState returns a state banning pt (NoPieceType for none).
func NewBanState(pt PieceType) BanState { return BanState{piece: pt} }

func (s BanState) Get() PieceType { return s.piece }

func (s *BanState) Set(pt PieceType) { s.piece = pt }

// Active reports whether some piece type is banned.
func (s BanState) Active() bool { return s.piece.Valid() }

// Forbids reports whether pieces of type pt are banned.
func (s BanState) Forbids(pt PieceType) bool { return s.Active() && s.piece == pt }

// String returns the ban letter, or "-" when nothing is banned.
func (s BanState) String() string {
	if !s.Active() {
		return "-"
	}
	return string(s.piece.Symbol())
}

// ParseBanState reads the auxiliary position field written by String.
func ParseBanState(field string) (BanState, error) {
	if field == "-" {
		return BanState{}, nil
	}
	if len(field) == 1 {
		if pt, ok := PieceTypeFromSymbol(field[0]); ok {
			return BanState{piece: pt}, nil
		}
	}
	return BanState{}, errors.Wrapf(ErrInvalidBan, "ban field %q", field)
}
