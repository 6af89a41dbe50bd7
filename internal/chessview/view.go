package chessview

import (
	"github.com/hailam/chessview/internal/board"
)

// MoveListener receives move application events.
type MoveListener interface {
	// OnMove is called once per applied batch of moves.
	OnMove(moves []board.Move)
	// OnMovingFinished is called once when an animated application completes.
	OnMovingFinished()
}

// SelectionListener receives square selection changes.
type SelectionListener interface {
	OnSelectionChange(sq board.Square, selected bool)
}

// ListenerFuncs adapts plain functions to MoveListener and SelectionListener.
// Nil fields are skipped.
type ListenerFuncs struct {
	Move            func(moves []board.Move)
	MovingFinished  func()
	SelectionChange func(sq board.Square, selected bool)
}

// OnMove calls f.Move.
func (f ListenerFuncs) OnMove(moves []board.Move) {
	if f.Move != nil {
		f.Move(moves)
	}
}

// OnMovingFinished calls f.MovingFinished.
func (f ListenerFuncs) OnMovingFinished() {
	if f.MovingFinished != nil {
		f.MovingFinished()
	}
}

// OnSelectionChange calls f.SelectionChange.
func (f ListenerFuncs) OnSelectionChange(sq board.Square, selected bool) {
	if f.SelectionChange != nil {
		f.SelectionChange(sq, selected)
	}
}

// View is the core of one board widget. It owns the grid the renderer reads,
// the engine mutating it and the square selection.
//
// All methods must be called from the loop that calls Tick.
type View struct {
	grid      *board.Grid
	engine    *Engine
	selection *Selection

	showLastMove bool

	moveListeners      []MoveListener
	selectionListeners []SelectionListener
}

// NewView creates a view showing the starting position.
func NewView(cfg Config) *View {
	v := &View{grid: board.StartGrid()}
	v.engine = NewEngine(v.grid, cfg)
	v.engine.onMove = v.emitMove
	v.engine.onFinished = v.emitFinished
	v.selection = NewSelection(v.grid)
	v.selection.onChange = v.emitSelection
	return v
}

// Grid returns the grid being displayed. Callers must treat it as read-only.
func (v *View) Grid() *board.Grid {
	return v.grid
}

// Config returns the animation budgets.
func (v *View) Config() Config {
	return v.engine.Config()
}

// SetConfig changes the animation budgets, completing any running animation.
func (v *View) SetConfig(cfg Config) {
	v.engine.SetConfig(cfg)
}

// AddMoveListener registers l for move events.
func (v *View) AddMoveListener(l MoveListener) {
	v.moveListeners = append(v.moveListeners, l)
}

// AddSelectionListener registers l for selection events.
func (v *View) AddSelectionListener(l SelectionListener) {
	v.selectionListeners = append(v.selectionListeners, l)
}

// ShowLastMove reports whether landed moves stay highlighted.
func (v *View) ShowLastMove() bool {
	return v.showLastMove
}

// SetShowLastMove controls whether landed moves stay highlighted.
// Turning it off clears the current highlight when idle.
func (v *View) SetShowLastMove(show bool) {
	v.showLastMove = show
	v.engine.SetShowLastMove(show)
	if !show && !v.engine.Busy() {
		v.grid.ClearHighlights()
	}
}

// Busy reports whether an animation is in flight.
func (v *View) Busy() bool {
	return v.engine.Busy()
}

// Phase returns the engine phase.
func (v *View) Phase() Phase {
	return v.engine.Phase()
}

// Tick advances a running animation by one frame.
func (v *View) Tick() {
	v.engine.Tick()
}

// ForceComplete finishes a running animation immediately.
func (v *View) ForceComplete() {
	v.engine.ForceComplete()
}

// Selected returns the clicked square, or NoSquare.
func (v *View) Selected() board.Square {
	return v.selection.Selected()
}

// SelectSquare toggles the selection of sq.
func (v *View) SelectSquare(sq board.Square) (bool, error) {
	return v.selection.Toggle(sq)
}

// Reset shows the starting position.
func (v *View) Reset() {
	v.snap(board.StartGrid(), nil)
}

// ApplyPosition shows position. Without animation the grid snaps to it and a
// non-nil last move is highlighted. With animation and a move, the move travels
// on the current grid and the result is reconciled with position on landing.
// A malformed position leaves the grid untouched.
func (v *View) ApplyPosition(position string, last *board.Move, animate bool) error {
	target, err := board.ParsePosition(position)
	if err != nil {
		return err
	}
	v.ApplyGrid(target, last, animate)
	return nil
}

// ApplyGrid is ApplyPosition for an already parsed target. The view only
// reads target.
func (v *View) ApplyGrid(target *board.Grid, last *board.Move, animate bool) {
	if animate && last != nil {
		v.engine.ForceComplete()
		v.selection.Clear()
		v.engine.Animate([][]board.Move{{*last}}, target)
		return
	}
	v.snap(target, last)
}

// ApplyMoves applies batches of moves to the current grid.
func (v *View) ApplyMoves(batches [][]board.Move, animate bool) {
	v.engine.ForceComplete()
	v.selection.Clear()
	if animate {
		v.engine.Animate(batches, nil)
		return
	}
	v.engine.ApplyInstant(batches)
}

// Transition snaps to from and then carries the board to to with the moves
// derived from the two placements, so castling slides both king and rook.
func (v *View) Transition(from, to string, animate bool) error {
	start, err := board.ParsePosition(from)
	if err != nil {
		return err
	}
	end, err := board.ParsePosition(to)
	if err != nil {
		return err
	}

	v.snap(start, nil)
	moves := board.Diff(start, end)
	if animate {
		v.engine.Animate([][]board.Move{moves}, end)
		return nil
	}
	v.engine.ApplyInstant([][]board.Move{moves})
	v.grid.Each(func(sq board.Square, c *board.Cell) {
		c.Piece = end.PieceAt(sq)
	})
	return nil
}

func (v *View) snap(target *board.Grid, last *board.Move) {
	v.engine.ForceComplete()
	v.selection.forget()
	v.grid.SnapTo(target)
	if last != nil && last.IsValid() {
		v.highlight(*last)
	}
}

func (v *View) highlight(m board.Move) {
	v.grid.Cell(m.From).LastMove = true
	v.grid.Cell(m.To).LastMove = true
}

func (v *View) emitMove(moves []board.Move) {
	for _, l := range v.moveListeners {
		l.OnMove(moves)
	}
}

func (v *View) emitFinished() {
	for _, l := range v.moveListeners {
		l.OnMovingFinished()
	}
}

func (v *View) emitSelection(sq board.Square, selected bool) {
	for _, l := range v.selectionListeners {
		l.OnSelectionChange(sq, selected)
	}
}
