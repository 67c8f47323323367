// Package algebraic writes and reads Bess moves in standard algebraic
// notation with a ban suffix, e.g. "Nf3:q" or "exd8=Q+:k".
//
// The chess part is rendered by notnil/chess; the check marker is computed by
// the ban rules, so "#" means the opponent has no legal Bess reply.
package algebraic

import (
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"bess-engine/bess"
)

// Encode renders the legal move m from position p.
func Encode(p *bess.Position, m bess.BanMove) (string, error) {
	if !p.IsLegal(m) {
		return "", errors.Wrapf(bess.ErrIllegalMove, "encode %s", m)
	}
	pos, err := chessPosition(p)
	if err != nil {
		return "", err
	}
	cm := findMove(pos, m.Chess())
	if cm == nil {
		return "", errors.Wrapf(bess.ErrIllegalMove, "encode %s: unknown to notnil/chess", m)
	}
	next, err := p.Apply(m)
	if err != nil {
		return "", err
	}
	return stripMarks(chess.AlgebraicNotation{}.Encode(pos, cm)) + checkMark(next) + ":" + string(m.Ban.Symbol()), nil
}

// Decode resolves s against the legal moves of p.
func Decode(p *bess.Position, s string) (bess.BanMove, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 || i != len(s)-2 {
		return bess.NullMove, errors.Wrapf(bess.ErrInvalidNotation, "san %q: missing ban suffix", s)
	}
	ban, ok := bess.PieceTypeFromSymbol(s[i+1])
	if !ok {
		return bess.NullMove, errors.Wrapf(bess.ErrInvalidNotation, "san %q: ban piece %q", s, s[i+1])
	}
	san := stripMarks(s[:i])

	pos, err := chessPosition(p)
	if err != nil {
		return bess.NullMove, err
	}
	for _, mv := range pos.ValidMoves() {
		if stripMarks(chess.AlgebraicNotation{}.Encode(pos, mv)) != san {
			continue
		}
		m := bess.BanMove{
			From:      bess.Square(mv.S1()),
			To:        bess.Square(mv.S2()),
			Promotion: fromChessType(mv.Promo()),
			Ban:       ban,
		}
		if !p.IsLegal(m) {
			return bess.NullMove, errors.Wrapf(bess.ErrIllegalMove, "san %q with %s banned", s, p.Ban())
		}
		return m, nil
	}
	return bess.NullMove, errors.Wrapf(bess.ErrInvalidNotation, "san %q: no matching move", s)
}

// EncodeLine renders moves played from p as numbered move text,
// e.g. "1. e4:n e5:q 2. Nf3:p".
func EncodeLine(p *bess.Position, moves []bess.BanMove) (string, error) {
	var sb strings.Builder
	moveNo := 1
	for i, m := range moves {
		san, err := Encode(p, m)
		if err != nil {
			return "", errors.WithMessagef(err, "ply %d", i+1)
		}
		switch {
		case p.SideToMove() == bess.White:
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(moveNo) + ". ")
		case i == 0:
			sb.WriteString(strconv.Itoa(moveNo) + "... ")
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(san)
		if p.SideToMove() == bess.Black {
			moveNo++
		}
		if p, err = p.Apply(m); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func chessPosition(p *bess.Position) (*chess.Position, error) {
	f, ok := p.Board().(bess.FENer)
	if !ok {
		return nil, bess.ErrNoFEN
	}
	opt, err := chess.FEN(f.FEN())
	if err != nil {
		return nil, errors.Wrap(err, "notnil/chess")
	}
	return chess.NewGame(opt).Position(), nil
}

func findMove(pos *chess.Position, m bess.ChessMove) *chess.Move {
	for _, mv := range pos.ValidMoves() {
		if bess.Square(mv.S1()) == m.From && bess.Square(mv.S2()) == m.To && fromChessType(mv.Promo()) == m.Promotion {
			return mv
		}
	}
	return nil
}

func checkMark(next *bess.Position) string {
	if !next.InCheck() {
		return ""
	}
	if next.Outcome().Status == bess.Checkmate {
		return "#"
	}
	return "+"
}

func stripMarks(san string) string {
	return strings.TrimRight(san, "+#!?")
}

func fromChessType(pt chess.PieceType) bess.PieceType {
	switch pt {
	case chess.Pawn:
		return bess.Pawn
	case chess.Knight:
		return bess.Knight
	case chess.Bishop:
		return bess.Bishop
	case chess.Rook:
		return bess.Rook
	case chess.Queen:
		return bess.Queen
	case chess.King:
		return bess.King
	}
	return bess.NoPieceType
}
