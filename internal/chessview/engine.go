// Package chessview implements the board view core: the move application
// engine, square selection and the commands a UI issues against one board.
package chessview

import "github.com/hailam/chessview/internal/board"

// Phase is the stage of the batch currently being animated.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePre        // move squares highlighted, pieces still
	PhaseMoving     // pieces in transit
	PhasePost       // pieces landed, highlight decided
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhaseMoving:
		return "moving"
	case PhasePost:
		return "post"
	default:
		return "idle"
	}
}

// Config holds the animation budgets, in ticks of the owning loop.
type Config struct {
	Frames    int // ticks a piece spends in transit
	HoldTicks int // ticks spent in the pre and post phases
}

// DefaultConfig returns budgets tuned for a 60 TPS loop.
func DefaultConfig() Config {
	return Config{
		Frames:    12,
		HoldTicks: 6,
	}
}

func (c Config) normalized() Config {
	if c.Frames < 1 {
		c.Frames = 1
	}
	if c.HoldTicks < 0 {
		c.HoldTicks = 0
	}
	return c
}

// capture tracks a piece fading out on a destination square.
type capture struct {
	sq board.Square
}

// Engine applies moves to one grid, either at once or one state change per Tick.
// It is not safe for concurrent use; the owning loop calls every method.
type Engine struct {
	grid *board.Grid
	cfg  Config

	showLastMove bool

	onMove     func(moves []board.Move)
	onFinished func()

	// animation queue
	queue    [][]board.Move
	target   *board.Grid
	index    int
	phase    Phase
	frame    int
	hold     int
	captures []capture
	gen      int // bumped by every Animate
}

// NewEngine creates an engine mutating grid.
func NewEngine(grid *board.Grid, cfg Config) *Engine {
	return &Engine{
		grid: grid,
		cfg:  cfg.normalized(),
	}
}

// Config returns the active budgets.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig changes the budgets. An in-flight animation is completed first.
func (e *Engine) SetConfig(cfg Config) {
	e.ForceComplete()
	e.cfg = cfg.normalized()
}

// SetShowLastMove controls whether the last move stays highlighted after landing.
func (e *Engine) SetShowLastMove(show bool) {
	e.showLastMove = show
}

// Busy reports whether an animation is in flight.
func (e *Engine) Busy() bool {
	return e.phase != PhaseIdle
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Frame returns the transit frame of the running batch.
func (e *Engine) Frame() int {
	return e.frame
}

// ApplyInstant relocates every move at once. With show-last-move on, the last
// valid move is highlighted. OnMove fires once per non-empty batch.
func (e *Engine) ApplyInstant(batches [][]board.Move) {
	e.ForceComplete()
	e.grid.ClearHighlights()

	last := board.NoMove
	for _, batch := range batches {
		batch = validMoves(batch)
		if len(batch) == 0 {
			continue
		}
		e.land(batch)
		last = batch[len(batch)-1]
		e.emitMove(batch)
	}

	if e.showLastMove && last.IsValid() {
		e.grid.Cell(last.From).LastMove = true
		e.grid.Cell(last.To).LastMove = true
	}
}

// Animate queues batches for ticked application. Moves in a batch travel
// together. When the queue drains, the grid placement is reconciled with
// target (if non-nil) and OnMovingFinished fires once.
func (e *Engine) Animate(batches [][]board.Move, target *board.Grid) {
	e.ForceComplete()
	e.gen++

	e.queue = e.queue[:0]
	for _, batch := range batches {
		if batch = validMoves(batch); len(batch) > 0 {
			e.queue = append(e.queue, batch)
		}
	}
	e.target = target
	e.index = 0

	if len(e.queue) == 0 {
		e.finish()
		return
	}
	e.enterPre()
}

// Tick advances the animation by one state change. It is a no-op when idle.
func (e *Engine) Tick() {
	switch e.phase {
	case PhasePre:
		e.hold++
		if e.hold >= e.cfg.HoldTicks {
			e.enterMoving()
		}
	case PhaseMoving:
		e.frame++
		if e.frame < e.cfg.Frames {
			e.setFrame(e.frame)
			return
		}
		e.land(e.queue[e.index])
		e.enterPost()
	case PhasePost:
		e.hold++
		if e.hold >= e.cfg.HoldTicks {
			e.index++
			if e.index < len(e.queue) {
				e.enterPre()
			} else {
				e.finish()
			}
		}
	}
}

// ForceComplete runs the in-flight animation to its terminal state,
// firing the same notifications ticking would. An animation started by a
// listener during those notifications is left running.
func (e *Engine) ForceComplete() {
	gen := e.gen
	for e.phase != PhaseIdle && e.gen == gen {
		e.Tick()
	}
}

func (e *Engine) enterPre() {
	e.phase = PhasePre
	e.hold = 0
	e.frame = 0

	m := e.queue[e.index][0]
	e.grid.ClearHighlights()
	e.grid.Cell(m.From).LastMove = true
	e.grid.Cell(m.To).LastMove = true
}

func (e *Engine) enterMoving() {
	e.phase = PhaseMoving
	e.frame = 0
	e.captures = e.captures[:0]

	batch := e.queue[e.index]
	sources := make(map[board.Square]bool, len(batch))
	for _, m := range batch {
		sources[m.From] = true
	}

	for _, m := range batch {
		e.grid.Cell(m.From).Anim = &board.Animation{
			TargetCol: m.To.Col(),
			TargetRow: m.To.Row(),
			Fade:      1,
		}
		dst := e.grid.Cell(m.To)
		if dst.Piece.IsEmpty() || sources[m.To] {
			continue
		}
		dst.Anim = &board.Animation{
			TargetCol: m.To.Col(),
			TargetRow: m.To.Row(),
			Fade:      1,
		}
		e.captures = append(e.captures, capture{sq: m.To})
	}
}

func (e *Engine) setFrame(frame int) {
	for _, m := range e.queue[e.index] {
		if a := e.grid.Cell(m.From).Anim; a != nil {
			a.Frame = frame
		}
	}
	fade := 1 - float64(frame)/float64(e.cfg.Frames)
	for _, c := range e.captures {
		if a := e.grid.Cell(c.sq).Anim; a != nil {
			a.Frame = frame
			a.Fade = fade
		}
	}
}

func (e *Engine) enterPost() {
	e.phase = PhasePost
	e.hold = 0
	e.frame = 0
	e.captures = e.captures[:0]

	if !e.showLastMove {
		e.grid.ClearHighlights()
	}
	e.emitMove(e.queue[e.index])
}

// land moves every piece of batch to its destination, keeping per-square flags.
// Sources are lifted before any destination is written so chained moves in one
// batch stay intact.
func (e *Engine) land(batch []board.Move) {
	pieces := make([]board.Piece, len(batch))
	for i, m := range batch {
		src := e.grid.Cell(m.From)
		pieces[i] = src.Piece
		*src = board.Cell{Selected: src.Selected, LastMove: src.LastMove}
	}
	for i, m := range batch {
		dst := e.grid.Cell(m.To)
		*dst = board.Cell{Piece: pieces[i], Selected: dst.Selected, LastMove: dst.LastMove}
	}
}

func (e *Engine) finish() {
	if e.target != nil {
		e.grid.Each(func(sq board.Square, c *board.Cell) {
			c.Piece = e.target.PieceAt(sq)
		})
	}
	e.grid.ClearAnimations()

	e.phase = PhaseIdle
	e.queue = e.queue[:0]
	e.target = nil
	e.index = 0
	e.hold = 0
	e.frame = 0

	if e.onFinished != nil {
		e.onFinished()
	}
}

func (e *Engine) emitMove(batch []board.Move) {
	if e.onMove == nil {
		return
	}
	out := make([]board.Move, len(batch))
	copy(out, batch)
	e.onMove(out)
}

func validMoves(batch []board.Move) []board.Move {
	out := make([]board.Move, 0, len(batch))
	for _, m := range batch {
		if m.IsValid() {
			out = append(out, m)
		}
	}
	return out
}
