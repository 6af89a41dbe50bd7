package ui

import "github.com/hailam/chessview/internal/board"

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / board.Size
	PanelWidth   = ScreenWidth - BoardSize
)

// BoardGeometry maps squares to pixels for one board orientation.
type BoardGeometry struct {
	SquareSize int
	Flipped    bool // black at the bottom
}

// Origin returns the top-left pixel of the square at (col, row).
func (bg BoardGeometry) Origin(col, row int) (int, int) {
	if bg.Flipped {
		col, row = board.Size-1-col, board.Size-1-row
	}
	return col * bg.SquareSize, row * bg.SquareSize
}

// SquareOrigin returns the top-left pixel of sq.
func (bg BoardGeometry) SquareOrigin(sq board.Square) (int, int) {
	return bg.Origin(sq.Col(), sq.Row())
}

// SquareAt returns the square under the pixel (x, y), or NoSquare.
func (bg BoardGeometry) SquareAt(x, y int) board.Square {
	size := bg.SquareSize * board.Size
	if x < 0 || x >= size || y < 0 || y >= size {
		return board.NoSquare
	}
	col, row := x/bg.SquareSize, y/bg.SquareSize
	if bg.Flipped {
		col, row = board.Size-1-col, board.Size-1-row
	}
	return board.NewSquare(col, row)
}

// PiecePosition returns where the piece of cell sq is drawn. A moving piece is
// interpolated linearly from its square towards the animation target over
// frames ticks.
func (bg BoardGeometry) PiecePosition(sq board.Square, anim *board.Animation, frames int) (float64, float64) {
	x, y := bg.SquareOrigin(sq)
	if anim == nil || frames <= 0 {
		return float64(x), float64(y)
	}
	tx, ty := bg.Origin(anim.TargetCol, anim.TargetRow)
	t := float64(anim.Frame) / float64(frames)
	if t > 1 {
		t = 1
	}
	return float64(x) + float64(tx-x)*t, float64(y) + float64(ty-y)*t
}

// RowBounds is one clickable line of the move list.
type RowBounds struct {
	X, Y, W, H int
	Index      int // item index
}

// Contains reports whether (x, y) is inside the row.
func (r RowBounds) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// moveListRows lays out items two per line (white then black) starting at
// (x, y), skipping scrollY pixels and stopping at maxY.
func moveListRows(count, x, y, maxY, scrollY, rowHeight, colW int) []RowBounds {
	var rows []RowBounds
	for i := 0; i < count; i++ {
		line := i / 2
		top := y + line*rowHeight - scrollY
		if top < y {
			continue
		}
		if top+rowHeight > maxY {
			break
		}
		left := x + 30
		if i%2 == 1 {
			left += colW
		}
		rows = append(rows, RowBounds{X: left, Y: top, W: colW, H: rowHeight, Index: i})
	}
	return rows
}
