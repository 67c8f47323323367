package bess

import "testing"

// stubBoard is a hand-built Board: the side to move's pieces, their targets,
// and which moves would leave the mover's king attacked.
type stubBoard struct {
	side     Color
	pieces   map[Square]PieceType
	targets  map[Square][]Target
	attacked map[Color]bool
	exposes  map[ChessMove]bool
	// next is returned for every king-safe move; nil means an empty board.
	next *stubBoard
}

func newStub(side Color) *stubBoard {
	return &stubBoard{
		side:     side,
		pieces:   map[Square]PieceType{},
		targets:  map[Square][]Target{},
		attacked: map[Color]bool{},
		exposes:  map[ChessMove]bool{},
	}
}

// put places a piece of the side to move on from with the given destinations.
func (b *stubBoard) put(pt PieceType, from Square, to ...Square) *stubBoard {
	b.pieces[from] = pt
	for _, t := range to {
		b.targets[from] = append(b.targets[from], Target{To: t})
	}
	return b
}

func (b *stubBoard) SideToMove() Color { return b.side }

func (b *stubBoard) PiecesOfType(pt PieceType) SquareSet {
	var s SquareSet
	for sq, p := range b.pieces {
		if p == pt {
			s = s.With(sq)
		}
	}
	return s
}

func (b *stubBoard) PseudoLegalTargets(from Square) []Target { return b.targets[from] }

func (b *stubBoard) IsKingAttacked(side Color) bool { return b.attacked[side] }

func (b *stubBoard) ApplyChessMove(m ChessMove) (Board, error) {
	for _, t := range b.targets[m.From] {
		if t.To != m.To || t.Promotion != m.Promotion {
			continue
		}
		if b.exposes[m] {
			n := newStub(b.side.Other())
			n.attacked[b.side] = true
			return n, nil
		}
		if b.next != nil {
			return b.next, nil
		}
		return newStub(b.side.Other()), nil
	}
	return nil, ErrIllegalMove
}

func (b *stubBoard) PassTurn() (Board, error) {
	n := *b
	n.side = b.side.Other()
	return &n, nil
}

func sq(t testing.TB, s string) Square {
	t.Helper()
	x, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return x
}

func mv(t testing.TB, s string) BanMove {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

// openingStub mirrors the 20 opening moves of standard chess for White:
// 16 pawn moves and 4 knight moves.
func openingStub(t testing.TB) *stubBoard {
	b := newStub(White)
	for f := byte('a'); f <= 'h'; f++ {
		file := string(f)
		b.put(Pawn, sq(t, file+"2"), sq(t, file+"3"), sq(t, file+"4"))
	}
	b.put(Knight, sq(t, "b1"), sq(t, "a3"), sq(t, "c3"))
	b.put(Knight, sq(t, "g1"), sq(t, "f3"), sq(t, "h3"))
	b.put(Bishop, sq(t, "c1"))
	b.put(Bishop, sq(t, "f1"))
	b.put(Rook, sq(t, "a1"))
	b.put(Rook, sq(t, "h1"))
	b.put(Queen, sq(t, "d1"))
	b.put(King, sq(t, "e1"))
	return b
}
