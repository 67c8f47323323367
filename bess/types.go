package bess

import (
	"iter"
	"math/bits"

	"github.com/pkg/errors"
)

// PieceType is a colorless chess piece. NoPieceType doubles as "none" for
// promotions and ban state.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every bannable piece type in generation order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

const pieceSymbols = " pnbrqk"

// Valid reports whether pt names one of the six piece types.
func (pt PieceType) Valid() bool { return pt >= Pawn && pt <= King }

// Promotable reports whether a pawn may promote to pt.
func (pt PieceType) Promotable() bool { return pt >= Knight && pt <= Queen }

// Symbol returns the lowercase piece letter, or '?' for anything else.
func (pt PieceType) Symbol() byte {
	if !pt.Valid() {
		return '?'
	}
	return pieceSymbols[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// PieceTypeFromSymbol maps a lowercase piece letter to its type.
func PieceTypeFromSymbol(c byte) (PieceType, bool) {
	switch c {
	case 'p':
		return Pawn, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	case 'k':
		return King, true
	}
	return NoPieceType, false
}

// Color is the side owning a piece or having the move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square is a board square, file + 8*rank, so a1 = 0 and h8 = 63.
type Square int

const NoSquare Square = -1

func (sq Square) File() int { return int(sq) & 7 }
func (sq Square) Rank() int { return int(sq) >> 3 }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic text such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(ErrInvalidNotation, "square %q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Wrapf(ErrInvalidNotation, "square %q", s)
	}
	return Square(int(file-'a') + int(rank-'1')*8), nil
}

// SquareSet is a bitboard of squares.
type SquareSet uint64

func (s SquareSet) Has(sq Square) bool { return sq.Valid() && s&(1<<uint(sq)) != 0 }

// With returns s plus sq.
func (s SquareSet) With(sq Square) SquareSet { return s | 1<<uint(sq) }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// All yields the squares of s from a1 towards h8.
func (s SquareSet) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for x := uint64(s); x != 0; x &= x - 1 {
			if !yield(Square(bits.TrailingZeros64(x))) {
				return
			}
		}
	}
}
