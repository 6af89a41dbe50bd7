// Package viewer binds a move list cursor to a board view and exposes the
// navigation commands of the viewer.
package viewer

import (
	"fmt"
	"log"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/chessview"
	"github.com/hailam/chessview/internal/movelist"
)

// Navigator keeps a View in sync with the selected item of a Cursor.
//
// Stepping forward by exactly one item animates that item's move from the
// previous item's position. Any other selection change snaps the board to the
// selected item's position with its move highlighted.
type Navigator struct {
	view   *chessview.View
	cursor *movelist.Cursor

	lastErr error

	running  bool
	deferred []func() error

	// OnSync is called after the board was synced to a selection change.
	OnSync func(newIndex, oldIndex int, animated bool)
}

// NewNavigator wires cursor change events to view.
func NewNavigator(view *chessview.View, cursor *movelist.Cursor) *Navigator {
	n := &Navigator{view: view, cursor: cursor}
	cursor.OnChange = n.sync
	return n
}

// View returns the board view being driven.
func (n *Navigator) View() *chessview.View {
	return n.view
}

// Cursor returns the move list cursor.
func (n *Navigator) Cursor() *movelist.Cursor {
	return n.cursor
}

// Err returns the error of the last failed board sync, if any.
func (n *Navigator) Err() error {
	return n.lastErr
}

// Load appends items to the cursor and shows the selected one.
func (n *Navigator) Load(items []movelist.Item) error {
	return n.run(func() error {
		n.cursor.AddAll(items)
		return n.jump(n.cursor.Selected())
	})
}

// Current returns the selected item.
func (n *Navigator) Current() (movelist.Item, bool) {
	it, err := n.cursor.Item(n.cursor.Selected())
	if err != nil {
		return movelist.Item{}, false
	}
	return it, true
}

// CanGoBack reports whether Previous and First have anywhere to go.
func (n *Navigator) CanGoBack() bool {
	return n.cursor.Selected() > 0
}

// CanGoForward reports whether Next and Last have anywhere to go.
func (n *Navigator) CanGoForward() bool {
	sel := n.cursor.Selected()
	return sel != movelist.NoPosition && sel < n.cursor.Len()-1
}

// First selects the first item.
func (n *Navigator) First() error {
	return n.run(func() error { return n.jump(0) })
}

// Last selects the last item.
func (n *Navigator) Last() error {
	return n.run(func() error { return n.jump(n.cursor.Len() - 1) })
}

// Previous selects the item before the current one.
func (n *Navigator) Previous() error {
	return n.run(func() error {
		if !n.CanGoBack() {
			return nil
		}
		return n.jump(n.cursor.Selected() - 1)
	})
}

// Next selects the item after the current one.
func (n *Navigator) Next() error {
	return n.run(func() error {
		if !n.CanGoForward() {
			return nil
		}
		return n.jump(n.cursor.Selected() + 1)
	})
}

// Jump selects the item at index.
func (n *Navigator) Jump(index int) error {
	return n.run(func() error { return n.jump(index) })
}

// Reset shows the starting position, then selects the first item.
func (n *Navigator) Reset() error {
	return n.run(func() error {
		n.view.Reset()
		return n.jump(0)
	})
}

// run executes cmd. A command issued while another one is running, e.g. by a
// view listener fired from the board sync, is queued and runs after it, so
// the cursor and the board always move together.
func (n *Navigator) run(cmd func() error) error {
	if n.running {
		n.deferred = append(n.deferred, cmd)
		return nil
	}
	n.running = true
	defer func() { n.running = false }()

	err := cmd()
	for len(n.deferred) > 0 {
		next := n.deferred[0]
		n.deferred = n.deferred[1:]
		if derr := next(); derr != nil {
			log.Printf("[NAV] queued command failed: %v", derr)
			if err == nil {
				err = derr
			}
		}
	}
	return err
}

func (n *Navigator) jump(index int) error {
	if n.cursor.Len() == 0 {
		return nil
	}
	if err := n.cursor.SetSelection(index); err != nil {
		return err
	}
	return n.lastErr
}

func (n *Navigator) sync(newIndex, oldIndex int) {
	n.lastErr = nil
	animated, err := n.apply(newIndex, oldIndex)
	if err != nil {
		n.lastErr = err
		log.Printf("[NAV] sync %d -> %d failed: %v", oldIndex, newIndex, err)
		return
	}
	if n.OnSync != nil {
		n.OnSync(newIndex, oldIndex, animated)
	}
}

func (n *Navigator) apply(newIndex, oldIndex int) (bool, error) {
	item, err := n.cursor.Item(newIndex)
	if err != nil {
		return false, err
	}
	move, err := item.Move()
	if err != nil {
		return false, err
	}

	target, err := board.ParsePosition(item.Position)
	if err != nil {
		return false, fmt.Errorf("item %d: %w", item.Number, err)
	}

	if oldIndex >= 0 && newIndex == oldIndex+1 {
		prev, err := n.cursor.Item(oldIndex)
		if err != nil {
			return false, err
		}
		start, err := board.ParsePosition(prev.Position)
		if err != nil {
			return false, fmt.Errorf("item %d: %w", prev.Number, err)
		}
		n.view.ApplyGrid(start, nil, false)
		n.view.ApplyGrid(target, &move, true)
		return true, nil
	}

	n.view.ApplyGrid(target, &move, false)
	return false, nil
}
