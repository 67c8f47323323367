package backend

import (
	"sync"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/pkg/errors"

	"bess-engine/bess"
)

// Goose is a bess.Board backed by the goosemg move generator. It offers true
// pseudo-legal generation, so moves that leave the king attacked are visible
// to the ban layer and filtered there.
type Goose struct {
	board gm.Board

	once    sync.Once
	pieces  [7]bess.SquareSet
	targets [64][]bess.Target
	moves   map[bess.ChessMove]gm.Move
}

// NewGoose parses a standard six-field FEN.
func NewGoose(fen string) (*Goose, error) {
	b, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "goosemg: parse %q", fen)
	}
	return &Goose{board: *b}, nil
}

// StartGoose returns the standard initial position.
func StartGoose() *Goose {
	g, err := NewGoose(gm.FENStartPos)
	if err != nil {
		panic(err)
	}
	return g
}

// load indexes the side to move's pieces and pseudo-legal moves once.
func (g *Goose) load() {
	g.once.Do(func() {
		us := g.board.SideToMove()
		for sq := 0; sq < 64; sq++ {
			pt, c := gooseType(g.board.PieceAt(gm.Square(sq)))
			if pt != bess.NoPieceType && c == fromGooseColor(us) {
				g.pieces[pt] = g.pieces[pt].With(bess.Square(sq))
			}
		}
		pseudo := g.board.GeneratePseudoMoves()
		g.moves = make(map[bess.ChessMove]gm.Move, len(pseudo))
		for _, m := range pseudo {
			if m.Flags() == gm.FlagCastle && !g.castleSafe(m) {
				continue
			}
			promo, _ := gooseType(m.PromotionPiece())
			cm := bess.ChessMove{From: bess.Square(m.From()), To: bess.Square(m.To()), Promotion: promo}
			g.moves[cm] = m
			g.targets[cm.From] = append(g.targets[cm.From], bess.Target{To: cm.To, Promotion: promo})
		}
	})
}

// castleSafe reports whether the king neither starts on nor crosses an
// attacked square. goosemg's pseudo-legal castling ignores attacks on the path.
func (g *Goose) castleSafe(m gm.Move) bool {
	them := 1 - g.board.SideToMove()
	crossed := (m.From() + m.To()) / 2
	return !g.board.IsSquareAttacked(m.From(), them) && !g.board.IsSquareAttacked(crossed, them)
}

func (g *Goose) SideToMove() bess.Color { return fromGooseColor(g.board.SideToMove()) }

func (g *Goose) PiecesOfType(pt bess.PieceType) bess.SquareSet {
	if !pt.Valid() {
		return 0
	}
	g.load()
	return g.pieces[pt]
}

func (g *Goose) PseudoLegalTargets(from bess.Square) []bess.Target {
	if !from.Valid() {
		return nil
	}
	g.load()
	return g.targets[from]
}

func (g *Goose) IsKingAttacked(side bess.Color) bool {
	return g.board.InCheck(toGooseColor(side))
}

// ApplyChessMove plays m on a copy of the board. goosemg refuses moves that
// leave the mover's king attacked, so those fail with bess.ErrIllegalMove and
// the ban layer treats them as unsafe.
func (g *Goose) ApplyChessMove(m bess.ChessMove) (bess.Board, error) {
	g.load()
	mv, ok := g.moves[m]
	if !ok {
		return nil, errors.Wrapf(bess.ErrIllegalMove, "goosemg: %s is not pseudo-legal", m)
	}
	next := g.board
	if ok, _ := next.MakeMove(mv); !ok {
		return nil, errors.Wrapf(bess.ErrIllegalMove, "goosemg: %s leaves the king attacked", m)
	}
	return &Goose{board: next}, nil
}

// PassTurn makes a null move on a copy of the board.
func (g *Goose) PassTurn() (bess.Board, error) {
	next := g.board
	next.MakeNullMove()
	return &Goose{board: next}, nil
}

func (g *Goose) FEN() string { return g.board.ToFEN() }

func gooseType(p gm.Piece) (bess.PieceType, bess.Color) {
	switch p {
	case gm.WhitePawn:
		return bess.Pawn, bess.White
	case gm.WhiteKnight:
		return bess.Knight, bess.White
	case gm.WhiteBishop:
		return bess.Bishop, bess.White
	case gm.WhiteRook:
		return bess.Rook, bess.White
	case gm.WhiteQueen:
		return bess.Queen, bess.White
	case gm.WhiteKing:
		return bess.King, bess.White
	case gm.BlackPawn:
		return bess.Pawn, bess.Black
	case gm.BlackKnight:
		return bess.Knight, bess.Black
	case gm.BlackBishop:
		return bess.Bishop, bess.Black
	case gm.BlackRook:
		return bess.Rook, bess.Black
	case gm.BlackQueen:
		return bess.Queen, bess.Black
	case gm.BlackKing:
		return bess.King, bess.Black
	}
	return bess.NoPieceType, bess.White
}

func fromGooseColor(c gm.Color) bess.Color {
	if c == gm.White {
		return bess.White
	}
	return bess.Black
}

func toGooseColor(c bess.Color) gm.Color {
	if c == bess.White {
		return gm.White
	}
	return gm.Black
}
