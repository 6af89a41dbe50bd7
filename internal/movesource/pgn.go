package movesource

import (
	"fmt"
	"io"
	"os"

	"github.com/notnil/chess"

	"github.com/hailam/chessview/internal/movelist"
)

// FromPGN replays the first game of a PGN document and returns one item per
// half-move.
func FromPGN(r io.Reader) ([]movelist.Item, error) {
	opt, err := chess.PGN(r)
	if err != nil {
		return nil, fmt.Errorf("decode pgn: %w", err)
	}
	game := chess.NewGame(opt)

	moves := game.Moves()
	positions := game.Positions()
	if len(positions) != len(moves)+1 {
		return nil, fmt.Errorf("decode pgn: %d positions for %d moves", len(positions), len(moves))
	}

	items := make([]movelist.Item, 0, len(moves))
	for i, m := range moves {
		before, after := positions[i], positions[i+1]
		items = append(items, movelist.Item{
			Number:    i + 1,
			PieceCode: pieceCode(before.Board().Piece(m.S1()).Type()),
			Position:  after.Board().String(),
			From:      m.S1().String(),
			To:        m.S2().String(),
			SAN:       chess.AlgebraicNotation{}.Encode(before, m),
			Side:      sideCode(before.Turn()),
		})
	}
	return items, nil
}

// LoadFile reads the PGN file at path.
func LoadFile(path string) ([]movelist.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pgn: %w", err)
	}
	defer f.Close()

	items, err := FromPGN(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func pieceCode(pt chess.PieceType) string {
	switch pt {
	case chess.King:
		return "K"
	case chess.Queen:
		return "Q"
	case chess.Rook:
		return "R"
	case chess.Bishop:
		return "B"
	case chess.Knight:
		return "N"
	default:
		return "P"
	}
}

func sideCode(c chess.Color) string {
	if c == chess.Black {
		return "b"
	}
	return "w"
}
