package board

import (
	"fmt"
	"log"
)

// Move describes a piece travelling from one square to another.
// It is a value type; copies never alias.
type Move struct {
	From Square
	To   Square
}

// NoMove is the zero-length move used as "no move".
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move from raw column/row indices.
// Indices outside the board yield NoSquare endpoints; check IsValid.
func NewMove(fromCol, fromRow, toCol, toRow int) Move {
	return Move{
		From: NewSquare(fromCol, fromRow),
		To:   NewSquare(toCol, toRow),
	}
}

// MoveFromText creates a move from four coordinate characters, e.g. 'e','2','e','4'.
// File letters are case-insensitive.
func MoveFromText(fromFile, fromRank, toFile, toRank byte) (Move, error) {
	fc, err := FileIndex(fromFile)
	if err != nil {
		return NoMove, err
	}
	fr, err := RankIndex(fromRank)
	if err != nil {
		return NoMove, err
	}
	tc, err := FileIndex(toFile)
	if err != nil {
		return NoMove, err
	}
	tr, err := RankIndex(toRank)
	if err != nil {
		return NoMove, err
	}
	return NewMove(fc, fr, tc, tr), nil
}

// MoveFromTextLenient behaves like MoveFromText but resolves unknown characters
// to index 0, logging each miss. Kept for move sources that predate validation.
func MoveFromTextLenient(fromFile, fromRank, toFile, toRank byte) Move {
	idx := func(resolve func(byte) (int, error), c byte) int {
		i, err := resolve(c)
		if err != nil {
			log.Printf("[BOARD] lenient move decode: %v, using 0", err)
		}
		return i
	}
	return NewMove(
		idx(FileIndex, fromFile), idx(RankIndex, fromRank),
		idx(FileIndex, toFile), idx(RankIndex, toRank),
	)
}

// ParseMove parses a move from two square strings such as "g1" and "f3".
func ParseMove(from, to string) (Move, error) {
	if len(from) != 2 || len(to) != 2 {
		return NoMove, fmt.Errorf("%w: move %q-%q", ErrUnrecognizedCoordinate, from, to)
	}
	return MoveFromText(from[0], from[1], to[0], to[1])
}

// IsValid reports whether both endpoints are on the board.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// String returns the move in coordinate form (e.g., "e2e4").
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}
