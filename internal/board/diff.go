package board

// Diff returns the moves that carry from's placement towards to's.
// Each changed source square is paired with the first unclaimed changed
// destination holding the same piece, scanning rank 8 first. Pieces that
// vanish (captures) or appear (promotions) produce no move.
func Diff(from, to *Grid) []Move {
	var sources, targets []Square
	for i := 0; i < Size*Size; i++ {
		sq := Square(i)
		a, b := from.PieceAt(sq), to.PieceAt(sq)
		if a == b {
			continue
		}
		if !a.IsEmpty() {
			sources = append(sources, sq)
		}
		if !b.IsEmpty() {
			targets = append(targets, sq)
		}
	}

	var moves []Move
	claimed := make([]bool, len(targets))
	for _, src := range sources {
		p := from.PieceAt(src)
		for i, dst := range targets {
			if claimed[i] || to.PieceAt(dst) != p {
				continue
			}
			claimed[i] = true
			moves = append(moves, Move{From: src, To: dst})
			break
		}
	}
	return moves
}
