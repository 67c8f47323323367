package bess

import (
	"iter"
	"slices"
)

// ChessMoves yields the pseudo-legal chess moves of every piece type the ban
// allows, ignoring self-check. Pieces are visited pawn first, king last.
func (p *Position) ChessMoves() iter.Seq[ChessMove] {
	return func(yield func(ChessMove) bool) {
		for _, pt := range PieceTypes {
			if p.ban.Forbids(pt) {
				continue
			}
			for from := range p.board.PiecesOfType(pt).All() {
				for _, t := range p.board.PseudoLegalTargets(from) {
					if !yield(ChessMove{From: from, To: t.To, Promotion: t.Promotion}) {
						return
					}
				}
			}
		}
	}
}

// safeChessMoves yields the ChessMoves that leave the mover's king unattacked.
func (p *Position) safeChessMoves() iter.Seq[ChessMove] {
	return func(yield func(ChessMove) bool) {
		for m := range p.ChessMoves() {
			if p.keepsKingSafe(m) && !yield(m) {
				return
			}
		}
	}
}

func (p *Position) keepsKingSafe(m ChessMove) bool {
	next, err := p.board.ApplyChessMove(m)
	if err != nil {
		return false
	}
	return !next.IsKingAttacked(p.board.SideToMove())
}

// withBans pairs each chess move with all six ban announcements.
func withBans(moves iter.Seq[ChessMove]) iter.Seq[BanMove] {
	return func(yield func(BanMove) bool) {
		for m := range moves {
			for _, ban := range PieceTypes {
				if !yield(m.WithBan(ban)) {
					return
				}
			}
		}
	}
}

// PseudoMoves yields every pseudo-legal BanMove: each allowed chess move
// times the six possible bans. Each call starts a fresh sequence.
func (p *Position) PseudoMoves() iter.Seq[BanMove] {
	return withBans(p.ChessMoves())
}

// LegalMoves yields the PseudoMoves whose chess move does not leave the
// mover's king attacked. The ban announcement plays no part in legality.
func (p *Position) LegalMoves() iter.Seq[BanMove] {
	return withBans(p.safeChessMoves())
}

// LegalMoveList collects LegalMoves.
func (p *Position) LegalMoveList() []BanMove {
	return slices.Collect(p.LegalMoves())
}

// HasLegalMoves reports whether the side to move can make any legal move.
func (p *Position) HasLegalMoves() bool {
	for range p.safeChessMoves() {
		return true
	}
	return false
}

// pieceTypeAt returns the type of the side to move's piece on sq.
func (p *Position) pieceTypeAt(sq Square) PieceType {
	for _, pt := range PieceTypes {
		if p.board.PiecesOfType(pt).Has(sq) {
			return pt
		}
	}
	return NoPieceType
}

// IsPseudoLegal reports whether m would be produced by PseudoMoves.
func (p *Position) IsPseudoLegal(m BanMove) bool {
	if m.IsNull() || !m.Ban.Valid() || m.From == m.To {
		return false
	}
	pt := p.pieceTypeAt(m.From)
	if pt == NoPieceType || p.ban.Forbids(pt) {
		return false
	}
	for _, t := range p.board.PseudoLegalTargets(m.From) {
		if t.To == m.To && t.Promotion == m.Promotion {
			return true
		}
	}
	return false
}

// IsLegal reports whether m would be produced by LegalMoves.
func (p *Position) IsLegal(m BanMove) bool {
	return p.IsPseudoLegal(m) && p.keepsKingSafe(m.Chess())
}
