package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/movelist"
)

// Screen layout in terminal cells.
const (
	boardX   = 3 // left edge of file a (or h when flipped)
	boardY   = 1
	cellW    = 3
	listX    = boardX + board.Size*cellW + 4
	statusY  = boardY + board.Size + 2
	listRows = board.Size + 1
)

// Theme holds the terminal colors of the board.
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	LastMove    tcell.Color
	Selected    tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
	Current     tcell.Color
}

// DefaultTheme mirrors the window renderer palette.
var DefaultTheme = Theme{
	SquareLight: tcell.NewRGBColor(240, 217, 181),
	SquareDark:  tcell.NewRGBColor(181, 136, 99),
	LastMove:    tcell.NewRGBColor(205, 210, 106),
	Selected:    tcell.NewRGBColor(106, 150, 220),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorGray,
	Current:     tcell.NewRGBColor(76, 132, 96),
}

// boardPainter draws a grid onto a tcell screen.
type boardPainter struct {
	theme   Theme
	flipped bool
}

// origin returns the screen cell of the left edge of (col, row).
func (p *boardPainter) origin(col, row int) (int, int) {
	if p.flipped {
		col, row = board.Size-1-col, board.Size-1-row
	}
	return boardX + col*cellW, boardY + row
}

// squareAt maps a screen cell to a square, or NoSquare.
func (p *boardPainter) squareAt(x, y int) board.Square {
	if x < boardX || x >= boardX+board.Size*cellW || y < boardY || y >= boardY+board.Size {
		return board.NoSquare
	}
	col, row := (x-boardX)/cellW, y-boardY
	if p.flipped {
		col, row = board.Size-1-col, board.Size-1-row
	}
	return board.NewSquare(col, row)
}

// piecePosition returns the screen cell where the piece of cell sq is drawn.
// Moving pieces are interpolated and rounded to the nearest character cell.
func (p *boardPainter) piecePosition(sq board.Square, anim *board.Animation, frames int) (int, int) {
	x, y := p.origin(sq.Col(), sq.Row())
	if anim == nil || frames <= 0 {
		return x + 1, y
	}
	tx, ty := p.origin(anim.TargetCol, anim.TargetRow)
	t := math.Min(float64(anim.Frame)/float64(frames), 1)
	fx := float64(x) + float64(tx-x)*t
	fy := float64(y) + float64(ty-y)*t
	return int(math.Round(fx)) + 1, int(math.Round(fy))
}

func (p *boardPainter) squareStyle(c *board.Cell, light bool) tcell.Style {
	bg := p.theme.SquareDark
	if light {
		bg = p.theme.SquareLight
	}
	switch {
	case c.Selected:
		bg = p.theme.Selected
	case c.LastMove:
		bg = p.theme.LastMove
	}
	return tcell.StyleDefault.Background(bg)
}

func (p *boardPainter) pieceStyle(s tcell.Screen, x, y int, piece board.Piece) tcell.Style {
	_, _, under, _ := s.GetContent(x, y)
	_, bg, _ := under.Decompose()
	fg := p.theme.White
	if piece.Color() == board.Black {
		fg = p.theme.Black
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)
}

// Draw paints squares, labels and pieces. Resting pieces go first, then fading
// captures, then the pieces in transit on top.
func (p *boardPainter) Draw(s tcell.Screen, g *board.Grid, frames int) {
	g.Each(func(sq board.Square, c *board.Cell) {
		x, y := p.origin(sq.Col(), sq.Row())
		st := p.squareStyle(c, (sq.Col()+sq.Row())%2 == 0)
		for i := 0; i < cellW; i++ {
			s.SetContent(x+i, y, ' ', nil, st)
		}
	})
	p.drawLabels(s)

	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim != nil {
			return
		}
		x, y := p.piecePosition(sq, nil, frames)
		s.SetContent(x, y, rune(c.Piece.Char()), nil, p.pieceStyle(s, x, y, c.Piece))
	})
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim == nil || c.Anim.Target() != sq {
			return
		}
		x, y := p.piecePosition(sq, nil, frames)
		s.SetContent(x, y, rune(c.Piece.Char()), nil, p.pieceStyle(s, x, y, c.Piece).Dim(c.Anim.Fade < 0.5))
	})
	g.Each(func(sq board.Square, c *board.Cell) {
		if c.Piece.IsEmpty() || c.Anim == nil || c.Anim.Target() == sq {
			return
		}
		x, y := p.piecePosition(sq, c.Anim, frames)
		s.SetContent(x, y, rune(c.Piece.Char()), nil, p.pieceStyle(s, x, y, c.Piece))
	})
}

func (p *boardPainter) drawLabels(s tcell.Screen) {
	st := tcell.StyleDefault.Foreground(p.theme.Label)
	for i := 0; i < board.Size; i++ {
		x, _ := p.origin(i, 0)
		s.SetContent(x+1, boardY+board.Size, rune(board.FileLabels[i]), nil, st)
		_, y := p.origin(0, i)
		s.SetContent(boardX-2, y, rune(board.RankLabels[i]), nil, st)
	}
}

// drawMoveList prints the items two per line, keeping the selected one visible.
func drawMoveList(s tcell.Screen, theme Theme, items []movelist.Item, selected int) {
	lines := (len(items) + 1) / 2
	first := 0
	if selected >= 0 && selected/2 >= listRows {
		first = selected/2 - listRows + 1
	}

	plain := tcell.StyleDefault
	muted := plain.Foreground(theme.Label)
	current := plain.Background(theme.Current).Foreground(tcell.ColorWhite)

	for line := first; line < lines && line-first < listRows; line++ {
		y := boardY + line - first
		putString(s, listX, y, fmt.Sprintf("%3d.", line+1), muted)
		for side := 0; side < 2; side++ {
			i := line*2 + side
			if i >= len(items) {
				break
			}
			st := plain
			switch {
			case items[i].Selected:
				st = current
			case i > selected:
				st = muted
			}
			putString(s, listX+5+side*9, y, fmt.Sprintf("%-8s", items[i].SAN), st)
		}
	}
}

func putString(s tcell.Screen, x, y int, str string, st tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}
