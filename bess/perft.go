package bess

// Perft counts the Bess move sequences of the given depth from p. Every chess
// move counts once per ban announcement.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return perftRec(p.board, p.ban, depth)
}

func perftRec(b Board, ban BanState, depth int) uint64 {
	p := Position{board: b, ban: ban}
	var nodes uint64
	for m := range p.safeChessMoves() {
		if depth == 1 {
			// Bulk count: each chess move fans out into one leaf per ban.
			nodes += uint64(len(PieceTypes))
			continue
		}
		next, err := b.ApplyChessMove(m)
		if err != nil {
			continue
		}
		for _, reply := range PieceTypes {
			nodes += perftRec(next, NewBanState(reply), depth-1)
		}
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the number of leaf sequences
// reachable through it at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[BanMove]uint64 {
	result := make(map[BanMove]uint64)
	if depth <= 0 {
		return result
	}
	for m := range p.safeChessMoves() {
		next, err := p.board.ApplyChessMove(m)
		if err != nil {
			continue
		}
		for _, ban := range PieceTypes {
			result[m.WithBan(ban)] = Perft(&Position{board: next, ban: NewBanState(ban)}, depth-1)
		}
	}
	return result
}
