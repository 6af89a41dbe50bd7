// Package board implements the board grid, position strings and move descriptors
// of the chess viewer.
package board

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedCoordinate is returned when a file, rank, piece or side letter
// does not match any label.
var ErrUnrecognizedCoordinate = errors.New("unrecognized coordinate")

// Size is the number of files and ranks on the board.
const Size = 8

// Column and row labels. Row 0 is rank 8, so textual ranks run top to bottom.
const (
	FileLabels = "abcdefgh"
	RankLabels = "87654321"
)

// Square represents a square on the board (0-63).
// Encoded as row*8+column with A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Corner squares.
const (
	A8 Square = 0
	H8 Square = 7
	A1 Square = 56
	H1 Square = 63

	NoSquare Square = 64
)

// NewSquare creates a square from column and row (0-indexed).
func NewSquare(col, row int) Square {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return NoSquare
	}
	return Square(row*Size + col)
}

// Col returns the column of the square (0=a, 7=h).
func (sq Square) Col() int {
	return int(sq) % Size
}

// Row returns the row of the square (0=rank 8, 7=rank 1).
func (sq Square) Row() int {
	return int(sq) / Size
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{FileLabels[sq.Col()], RankLabels[sq.Row()]})
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.Col()+sq.Row())%2 == 0
}

// FileIndex resolves a file letter (a-h, any case) to a column.
func FileIndex(c byte) (int, error) {
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	for i := 0; i < Size; i++ {
		if FileLabels[i] == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: file %q", ErrUnrecognizedCoordinate, c)
}

// RankIndex resolves a rank digit (1-8) to a row.
func RankIndex(c byte) (int, error) {
	for i := 0; i < Size; i++ {
		if RankLabels[i] == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", ErrUnrecognizedCoordinate, c)
}

// ParseSquare parses algebraic notation (e.g., "e4" or "E4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrUnrecognizedCoordinate, s)
	}
	col, err := FileIndex(s[0])
	if err != nil {
		return NoSquare, err
	}
	row, err := RankIndex(s[1])
	if err != nil {
		return NoSquare, err
	}
	return NewSquare(col, row), nil
}
