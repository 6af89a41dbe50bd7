package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPosition is returned for a malformed position string.
var ErrInvalidPosition = errors.New("invalid position")

// StartPosition is the piece placement of the starting position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePosition parses the piece-placement field of a FEN string into a new Grid.
// Trailing FEN fields (side to move, castling, ...) are ignored.
// The returned grid is fresh; callers swap it in only on success.
func ParsePosition(position string) (*Grid, error) {
	fields := strings.Fields(position)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidPosition)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Size {
		return nil, fmt.Errorf("%w: need %d ranks, got %d", ErrInvalidPosition, Size, len(ranks))
	}

	g := NewGrid()
	for row, rankStr := range ranks {
		col := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if col >= Size {
				return nil, fmt.Errorf("%w: too many squares in rank %c", ErrInvalidPosition, RankLabels[row])
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return nil, fmt.Errorf("%w: invalid piece character %q", ErrInvalidPosition, c)
			}
			g.SetPiece(NewSquare(col, row), piece)
			col++
		}

		if col != Size {
			return nil, fmt.Errorf("%w: rank %c has %d squares", ErrInvalidPosition, RankLabels[row], col)
		}
	}

	return g, nil
}

// Position serializes the grid's piece placement as a position string.
func (g *Grid) Position() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < Size; col++ {
			p := g.PieceAt(NewSquare(col, row))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
