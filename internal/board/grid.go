package board

import "strings"

// Animation is the transit state of a piece. It is attached to a cell only while
// the piece is moving or fading.
type Animation struct {
	TargetCol int
	TargetRow int
	Frame     int     // elapsed transit ticks
	Fade      float64 // 1 = opaque, 0 = gone
}

// Target returns the square the animation travels to.
func (a *Animation) Target() Square {
	return NewSquare(a.TargetCol, a.TargetRow)
}

// Cell is the state of one square.
type Cell struct {
	Piece    Piece
	Selected bool // clicked by the user
	LastMove bool // part of the last applied move
	Anim     *Animation
}

// Animating reports whether the cell carries transit state.
func (c *Cell) Animating() bool {
	return c.Anim != nil
}

// Grid is the 8x8 board, indexed by Square.
type Grid struct {
	cells [Size * Size]Cell
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// StartGrid returns a grid holding the standard starting position.
func StartGrid() *Grid {
	g, err := ParsePosition(StartPosition)
	if err != nil {
		panic(err)
	}
	return g
}

// Cell returns the cell at sq. It panics on NoSquare.
func (g *Grid) Cell(sq Square) *Cell {
	return &g.cells[sq]
}

// PieceAt returns the piece on sq.
func (g *Grid) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return g.cells[sq].Piece
}

// SetPiece places p on sq, dropping any per-square state.
func (g *Grid) SetPiece(sq Square, p Piece) {
	g.cells[sq] = Cell{Piece: p}
}

// Placement returns the piece on every square.
func (g *Grid) Placement() [Size * Size]Piece {
	var out [Size * Size]Piece
	for i := range g.cells {
		out[i] = g.cells[i].Piece
	}
	return out
}

// SamePlacement reports whether both grids hold the same pieces on the same squares.
func (g *Grid) SamePlacement(other *Grid) bool {
	return g.Placement() == other.Placement()
}

// SnapTo replaces every cell with a plain cell holding target's piece.
// Selection, highlights and animations are cleared.
func (g *Grid) SnapTo(target *Grid) {
	for i := range g.cells {
		g.cells[i] = Cell{Piece: target.cells[i].Piece}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{cells: g.cells}
	for i := range c.cells {
		if a := c.cells[i].Anim; a != nil {
			cp := *a
			c.cells[i].Anim = &cp
		}
	}
	return c
}

// ClearHighlights drops the last-move flag from every cell.
func (g *Grid) ClearHighlights() {
	for i := range g.cells {
		g.cells[i].LastMove = false
	}
}

// ClearAnimations detaches transit state from every cell.
func (g *Grid) ClearAnimations() {
	for i := range g.cells {
		g.cells[i].Anim = nil
	}
}

// Animating reports whether any cell carries transit state.
func (g *Grid) Animating() bool {
	for i := range g.cells {
		if g.cells[i].Anim != nil {
			return true
		}
	}
	return false
}

// Each calls fn for every square in row-major order, rank 8 first.
func (g *Grid) Each(fn func(sq Square, c *Cell)) {
	for i := range g.cells {
		fn(Square(i), &g.cells[i])
	}
}

// String renders the grid as eight "|r|n|b|..." lines.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		sb.WriteByte('|')
		for col := 0; col < Size; col++ {
			sb.WriteByte(g.cells[NewSquare(col, row)].Piece.Char())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
