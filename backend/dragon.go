package backend

import (
	"sync"

	"github.com/dylhunn/dragontoothmg"
	"github.com/pkg/errors"

	"bess-engine/bess"
)

// Dragon is a bess.Board backed by dragontoothmg. dragontoothmg only
// generates legal moves, so its "pseudo-legal" targets are already king-safe
// and the ban layer's safety filter never removes anything.
type Dragon struct {
	board dragontoothmg.Board

	once    sync.Once
	targets [64][]bess.Target
	moves   map[bess.ChessMove]dragontoothmg.Move
}

// NewDragon parses a standard six-field FEN.
func NewDragon(fen string) (d *Dragon, err error) {
	if err := checkFEN(fen); err != nil {
		return nil, err
	}
	// dragontoothmg panics on malformed placement text.
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, errors.Errorf("dragontoothmg: parse %q: %v", fen, r)
		}
	}()
	return &Dragon{board: dragontoothmg.ParseFen(fen)}, nil
}

func (d *Dragon) load() {
	d.once.Do(func() {
		legal := d.board.GenerateLegalMoves()
		d.moves = make(map[bess.ChessMove]dragontoothmg.Move, len(legal))
		for _, m := range legal {
			cm := bess.ChessMove{
				From:      bess.Square(m.From()),
				To:        bess.Square(m.To()),
				Promotion: dragonType(m.Promote()),
			}
			d.moves[cm] = m
			d.targets[cm.From] = append(d.targets[cm.From], bess.Target{To: cm.To, Promotion: cm.Promotion})
		}
	})
}

func (d *Dragon) SideToMove() bess.Color {
	if d.board.Wtomove {
		return bess.White
	}
	return bess.Black
}

func (d *Dragon) PiecesOfType(pt bess.PieceType) bess.SquareSet {
	bb := d.board.Black
	if d.board.Wtomove {
		bb = d.board.White
	}
	switch pt {
	case bess.Pawn:
		return bess.SquareSet(bb.Pawns)
	case bess.Knight:
		return bess.SquareSet(bb.Knights)
	case bess.Bishop:
		return bess.SquareSet(bb.Bishops)
	case bess.Rook:
		return bess.SquareSet(bb.Rooks)
	case bess.Queen:
		return bess.SquareSet(bb.Queens)
	case bess.King:
		return bess.SquareSet(bb.Kings)
	}
	return 0
}

func (d *Dragon) PseudoLegalTargets(from bess.Square) []bess.Target {
	if !from.Valid() {
		return nil
	}
	d.load()
	return d.targets[from]
}

// IsKingAttacked asks dragontoothmg from side's point of view; only the
// side-to-move flag is flipped on a scratch copy.
func (d *Dragon) IsKingAttacked(side bess.Color) bool {
	b := d.board
	b.Wtomove = side == bess.White
	return b.OurKingInCheck()
}

func (d *Dragon) ApplyChessMove(m bess.ChessMove) (bess.Board, error) {
	d.load()
	mv, ok := d.moves[m]
	if !ok {
		return nil, errors.Wrapf(bess.ErrIllegalMove, "dragontoothmg: %s is not legal", m)
	}
	next := d.board
	next.Apply(mv)
	return &Dragon{board: next}, nil
}

// PassTurn rebuilds the board from FEN with the other side to move.
func (d *Dragon) PassTurn() (bess.Board, error) {
	fen, err := passFEN(d.board.ToFen())
	if err != nil {
		return nil, err
	}
	return NewDragon(fen)
}

func (d *Dragon) FEN() string { return d.board.ToFen() }

func dragonType(p dragontoothmg.Piece) bess.PieceType {
	switch p {
	case dragontoothmg.Pawn:
		return bess.Pawn
	case dragontoothmg.Knight:
		return bess.Knight
	case dragontoothmg.Bishop:
		return bess.Bishop
	case dragontoothmg.Rook:
		return bess.Rook
	case dragontoothmg.Queen:
		return bess.Queen
	case dragontoothmg.King:
		return bess.King
	}
	return bess.NoPieceType
}
