package chessview

import (
	"fmt"

	"github.com/hailam/chessview/internal/board"
)

// Selection tracks the single clicked square of a grid.
type Selection struct {
	grid     *board.Grid
	selected board.Square
	onChange func(sq board.Square, selected bool)
}

// NewSelection creates a selection over grid with nothing selected.
func NewSelection(grid *board.Grid) *Selection {
	return &Selection{grid: grid, selected: board.NoSquare}
}

// Selected returns the selected square, or NoSquare.
func (s *Selection) Selected() board.Square {
	return s.selected
}

// Toggle selects sq, deselecting any other square. Toggling the selected
// square clears it. It returns whether sq ends up selected.
func (s *Selection) Toggle(sq board.Square) (bool, error) {
	if !sq.IsValid() {
		return false, fmt.Errorf("%w: square %d", board.ErrUnrecognizedCoordinate, sq)
	}

	if s.selected == sq {
		s.Clear()
		return false, nil
	}

	s.Clear()
	s.selected = sq
	s.grid.Cell(sq).Selected = true
	s.notify(sq, true)
	return true, nil
}

// Clear deselects the selected square, if any.
func (s *Selection) Clear() {
	if s.selected == board.NoSquare {
		return
	}
	prev := s.selected
	s.selected = board.NoSquare
	s.grid.Cell(prev).Selected = false
	s.notify(prev, false)
}

// forget drops the selection after the grid was rebuilt underneath it.
func (s *Selection) forget() {
	if s.selected == board.NoSquare {
		return
	}
	prev := s.selected
	s.selected = board.NoSquare
	s.notify(prev, false)
}

func (s *Selection) notify(sq board.Square, selected bool) {
	if s.onChange != nil {
		s.onChange(sq, selected)
	}
}
