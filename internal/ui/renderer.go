package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessview/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LastMoveColor:  color.RGBA{180, 190, 100, 110}, // Yellow-green
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer draws a board grid.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	geom    BoardGeometry
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(squareSize),
		theme:   DefaultTheme(),
		geom:    BoardGeometry{SquareSize: squareSize},
	}
}

// SetFlipped puts black at the bottom of the board.
func (r *Renderer) SetFlipped(flipped bool) {
	r.geom.Flipped = flipped
}

// Flipped reports whether black is at the bottom.
func (r *Renderer) Flipped() bool {
	return r.geom.Flipped
}

// DrawBoard draws the squares and the coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.geom.SquareSize)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			x, y := r.geom.Origin(col, row)
			c := r.theme.DarkSquare
			if (col+row)%2 == 0 {
				c = r.theme.LightSquare
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}
	r.drawCoordinates(screen)
}

// drawCoordinates labels files along the bottom edge and ranks along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetLabelFace()
	if face == nil {
		return
	}
	bottom, left := board.Size-1, 0
	if r.geom.Flipped {
		bottom, left = 0, board.Size-1
	}

	for col := 0; col < board.Size; col++ {
		x, y := r.geom.Origin(col, bottom)
		r.drawLabel(screen, face, string(board.FileLabels[col]), col, bottom,
			float64(x+r.geom.SquareSize-12), float64(y+r.geom.SquareSize-16))
	}
	for row := 0; row < board.Size; row++ {
		x, y := r.geom.Origin(left, row)
		r.drawLabel(screen, face, string(board.RankLabels[row]), left, row,
			float64(x+4), float64(y+2))
	}
}

// drawLabel writes s in the color of the opposite square shade.
func (r *Renderer) drawLabel(screen *ebiten.Image, face *text.GoTextFace, s string, col, row int, x, y float64) {
	c := r.theme.LightSquare
	if (col+row)%2 == 0 {
		c = r.theme.DarkSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawHighlights paints last-move and selected squares.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, g *board.Grid) {
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.LastMove {
			r.highlightSquare(screen, sq, r.theme.LastMoveColor)
		}
		if c.Selected {
			r.highlightSquare(screen, sq, r.theme.SelectedSquare)
		}
	})
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.geom.SquareOrigin(sq)
	size := float32(r.geom.SquareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// DrawPieces draws every piece of g. Resting pieces go first so pieces in
// transit pass over them; fading pieces are drawn with their fade as alpha.
func (r *Renderer) DrawPieces(screen *ebiten.Image, g *board.Grid, frames int) {
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim != nil {
			return
		}
		x, y := r.geom.SquareOrigin(sq)
		r.sprites.DrawPieceAt(screen, c.Piece, float64(x), float64(y), 1)
	})
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim == nil {
			return
		}
		// Captured pieces target their own square.
		if c.Anim.Target() == sq {
			x, y := r.geom.SquareOrigin(sq)
			r.sprites.DrawPieceAt(screen, c.Piece, float64(x), float64(y), c.Anim.Fade)
		}
	})
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim == nil || c.Anim.Target() == sq {
			return
		}
		x, y := r.geom.PiecePosition(sq, c.Anim, frames)
		r.sprites.DrawPieceAt(screen, c.Piece, x, y, c.Anim.Fade)
	})
}

// SquareAt converts board pixel coordinates to a square.
func (r *Renderer) SquareAt(x, y int) board.Square {
	return r.geom.SquareAt(x, y)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
