// Package movelist holds the recorded moves of a game and the cursor that
// selects the current one.
package movelist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/chessview/internal/board"
)

// NoPosition is the selected index of an empty list.
const NoPosition = -1

// ErrIndexOutOfRange is returned for an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// Item is one recorded half-move.
type Item struct {
	Number    int    // 1-based half-move number
	PieceCode string // moved piece letter, "" or "P" for pawns
	Position  string // piece placement after the move
	From      string // source square text, e.g. "g1"
	To        string // destination square text, e.g. "f3"
	SAN       string // move as shown to the user
	Side      string // side that made the move, "w" or "b"
	Selected  bool
}

// Move resolves the item's squares into a move descriptor.
func (it Item) Move() (board.Move, error) {
	m, err := board.ParseMove(it.From, it.To)
	if err != nil {
		return board.NoMove, fmt.Errorf("item %d: %w", it.Number, err)
	}
	return m, nil
}

// Piece resolves the piece that made the move.
func (it Item) Piece() (board.Piece, error) {
	side, err := board.ParseColor(it.Side)
	if err != nil {
		return board.NoPiece, fmt.Errorf("item %d: %w", it.Number, err)
	}
	p, err := board.PieceFromCode(side, it.PieceCode)
	if err != nil {
		return board.NoPiece, fmt.Errorf("item %d: %w", it.Number, err)
	}
	return p, nil
}

// MoveNumber returns the full-move number the item belongs to.
func (it Item) MoveNumber() int {
	return (it.Number + 1) / 2
}

// IsCastle reports whether the item is a castling move.
func (it Item) IsCastle() bool {
	return strings.HasPrefix(it.SAN, "O-O")
}

// Cursor is an append-only list of items with exactly one selected item once
// non-empty. It is not safe for concurrent use.
type Cursor struct {
	items    []Item
	selected int

	// OnChange is called after every SetSelection with the new and the previous index.
	OnChange func(newIndex, oldIndex int)
	// OnRefresh is called after AddAll.
	OnRefresh func()
}

// NewCursor returns an empty cursor.
func NewCursor() *Cursor {
	return &Cursor{selected: NoPosition}
}

// Len returns the number of items.
func (c *Cursor) Len() int {
	return len(c.items)
}

// Selected returns the index of the selected item, or NoPosition.
func (c *Cursor) Selected() int {
	return c.selected
}

// Item returns the item at index.
func (c *Cursor) Item(index int) (Item, error) {
	if index < 0 || index >= len(c.items) {
		return Item{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// Items returns a copy of all items.
func (c *Cursor) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// AddAll appends items in order. Incoming selection flags are ignored; if the
// list had no selection, the first item becomes selected without a change event.
func (c *Cursor) AddAll(items []Item) {
	for _, it := range items {
		it.Selected = false
		c.items = append(c.items, it)
	}
	if c.selected == NoPosition && len(c.items) > 0 {
		c.selected = 0
		c.items[0].Selected = true
	}
	if c.OnRefresh != nil {
		c.OnRefresh()
	}
}

// SetSelection selects the item at index and fires OnChange, even when index
// is already selected. An empty list is a no-op; an out-of-range index
// returns ErrIndexOutOfRange and changes nothing.
func (c *Cursor) SetSelection(index int) error {
	if len(c.items) == 0 {
		return nil
	}
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.items))
	}

	old := c.selected
	if old != index {
		c.items[old].Selected = false
		c.items[index].Selected = true
		c.selected = index
	}
	if c.OnChange != nil {
		c.OnChange(index, old)
	}
	return nil
}
