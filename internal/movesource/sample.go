// Package movesource produces the recorded moves the viewer steps through.
package movesource

import "github.com/hailam/chessview/internal/movelist"

// Sample returns the built-in demonstration game:
// 1.e4 e5 2.Nf3 Nc6 3.Bb5 Nf6 4.O-O Nxe4 5.Re1 Nd6 6.Nxe5.
func Sample() []movelist.Item {
	return []movelist.Item{
		{Number: 1, PieceCode: "P", Position: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", From: "e2", To: "e4", SAN: "e4", Side: "w"},
		{Number: 2, PieceCode: "P", Position: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR", From: "e7", To: "e5", SAN: "e5", Side: "b"},
		{Number: 3, PieceCode: "N", Position: "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", From: "g1", To: "f3", SAN: "Nf3", Side: "w"},
		{Number: 4, PieceCode: "N", Position: "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", From: "b8", To: "c6", SAN: "Nc6", Side: "b"},
		{Number: 5, PieceCode: "B", Position: "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", From: "f1", To: "b5", SAN: "Bb5", Side: "w"},
		{Number: 6, PieceCode: "N", Position: "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", From: "g8", To: "f6", SAN: "Nf6", Side: "b"},
		{Number: 7, PieceCode: "K", Position: "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQ1RK1", From: "e1", To: "g1", SAN: "O-O", Side: "w"},
		{Number: 8, PieceCode: "N", Position: "r1bqkb1r/pppp1ppp/2n5/1B2p3/4n3/5N2/PPPP1PPP/RNBQ1RK1", From: "f6", To: "e4", SAN: "Nxe4", Side: "b"},
		{Number: 9, PieceCode: "R", Position: "r1bqkb1r/pppp1ppp/2n5/1B2p3/4n3/5N2/PPPP1PPP/RNBQR1K1", From: "f1", To: "e1", SAN: "Re1", Side: "w"},
		{Number: 10, PieceCode: "N", Position: "r1bqkb1r/pppp1ppp/2nn4/1B2p3/8/5N2/PPPP1PPP/RNBQR1K1", From: "e4", To: "d6", SAN: "Nd6", Side: "b"},
		{Number: 11, PieceCode: "N", Position: "r1bqkb1r/pppp1ppp/2nn4/1B2N3/8/8/PPPP1PPP/RNBQR1K1", From: "f3", To: "e5", SAN: "Nxe5", Side: "w"},
	}
}
