package chessview

import (
	"testing"

	"github.com/hailam/chessview/internal/board"
)

type recorder struct {
	moves    [][]board.Move
	finished int
}

func newTestEngine(t *testing.T, position string, cfg Config) (*Engine, *board.Grid, *recorder) {
	t.Helper()
	g, err := board.ParsePosition(position)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", position, err)
	}
	rec := &recorder{}
	e := NewEngine(g, cfg)
	e.onMove = func(moves []board.Move) { rec.moves = append(rec.moves, moves) }
	e.onFinished = func() { rec.finished++ }
	return e, g, rec
}

func mustMove(t *testing.T, from, to string) board.Move {
	t.Helper()
	m, err := board.ParseMove(from, to)
	if err != nil {
		t.Fatalf("ParseMove(%s, %s): %v", from, to, err)
	}
	return m
}

func mustSquare(t *testing.T, s string) board.Square {
	t.Helper()
	sq, err := board.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

func TestEnginePhases(t *testing.T) {
	cfg := Config{Frames: 4, HoldTicks: 2}
	e, g, rec := newTestEngine(t, board.StartPosition, cfg)
	e.SetShowLastMove(true)
	m := mustMove(t, "e2", "e4")

	e.Animate([][]board.Move{{m}}, nil)
	if e.Phase() != PhasePre {
		t.Fatalf("phase after Animate = %v, want pre", e.Phase())
	}
	if !g.Cell(m.From).LastMove || !g.Cell(m.To).LastMove {
		t.Errorf("pre phase does not highlight the move squares")
	}
	if g.Cell(m.From).Animating() {
		t.Errorf("piece moving during pre phase")
	}

	for i := 0; i < cfg.HoldTicks; i++ {
		e.Tick()
	}
	if e.Phase() != PhaseMoving {
		t.Fatalf("phase after hold = %v, want moving", e.Phase())
	}
	a := g.Cell(m.From).Anim
	if a == nil || a.Target() != m.To || a.Fade != 1 {
		t.Fatalf("source animation = %+v, want target %s", a, m.To)
	}

	for f := 1; f < cfg.Frames; f++ {
		e.Tick()
		if got := g.Cell(m.From).Anim.Frame; got != f {
			t.Errorf("frame = %d, want %d", got, f)
		}
	}
	if len(rec.moves) != 0 {
		t.Errorf("OnMove fired before landing")
	}

	e.Tick()
	if e.Phase() != PhasePost {
		t.Fatalf("phase after transit = %v, want post", e.Phase())
	}
	if g.PieceAt(m.To) != board.WhitePawn || !g.PieceAt(m.From).IsEmpty() {
		t.Errorf("piece did not land:\n%s", g)
	}
	if g.Animating() {
		t.Errorf("animation state left after landing")
	}
	if len(rec.moves) != 1 || rec.moves[0][0] != m {
		t.Errorf("OnMove calls = %v, want [[%s]]", rec.moves, m)
	}

	for i := 0; i < cfg.HoldTicks; i++ {
		e.Tick()
	}
	if e.Busy() {
		t.Fatalf("engine still busy in phase %v", e.Phase())
	}
	if rec.finished != 1 {
		t.Errorf("OnMovingFinished calls = %d, want 1", rec.finished)
	}
	if !g.Cell(m.From).LastMove || !g.Cell(m.To).LastMove {
		t.Errorf("last move not kept with show-last-move on")
	}
}

func TestEngineCaptureFades(t *testing.T) {
	cfg := Config{Frames: 5, HoldTicks: 0}
	e, g, rec := newTestEngine(t, "8/8/8/4p3/8/5N2/8/8", cfg)
	m := mustMove(t, "f3", "e5")

	e.Animate([][]board.Move{{m}}, nil)
	e.Tick() // pre -> moving
	if e.Phase() != PhaseMoving {
		t.Fatalf("phase = %v, want moving", e.Phase())
	}

	victim := g.Cell(m.To)
	if victim.Anim == nil || victim.Anim.Target() != m.To {
		t.Fatalf("captured piece has no fade animation: %+v", victim.Anim)
	}
	last := victim.Anim.Fade
	if last != 1 {
		t.Errorf("initial fade = %v, want 1", last)
	}
	for e.Phase() == PhaseMoving {
		e.Tick()
		if victim.Anim == nil {
			break
		}
		if victim.Anim.Fade >= last {
			t.Errorf("fade did not decrease: %v -> %v", last, victim.Anim.Fade)
		}
		last = victim.Anim.Fade
	}

	e.ForceComplete()
	if g.PieceAt(m.To) != board.WhiteKnight {
		t.Errorf("destination = %v, want white knight", g.PieceAt(m.To))
	}
	if rec.finished != 1 {
		t.Errorf("OnMovingFinished calls = %d, want 1", rec.finished)
	}
}

func TestEngineForceComplete(t *testing.T) {
	e, g, rec := newTestEngine(t, board.StartPosition, DefaultConfig())
	m := mustMove(t, "g1", "f3")

	e.Animate([][]board.Move{{m}}, nil)
	e.Tick()
	e.ForceComplete()

	if e.Busy() {
		t.Fatalf("still busy after ForceComplete")
	}
	if g.PieceAt(m.To) != board.WhiteKnight {
		t.Errorf("knight did not land")
	}
	if len(rec.moves) != 1 || rec.finished != 1 {
		t.Errorf("events = %d moves, %d finished; want 1, 1", len(rec.moves), rec.finished)
	}

	// Idle engines ignore further completion requests.
	e.ForceComplete()
	e.Tick()
	if rec.finished != 1 {
		t.Errorf("OnMovingFinished fired again on an idle engine")
	}
}

func TestEngineForceCompleteLeavesChainedAnimation(t *testing.T) {
	e, g, rec := newTestEngine(t, board.StartPosition, DefaultConfig())
	chain := [][]board.Move{
		{mustMove(t, "e7", "e5")},
		{mustMove(t, "g1", "f3")},
	}
	e.onFinished = func() {
		rec.finished++
		if len(chain) > 0 {
			next := chain[0]
			chain = chain[1:]
			e.Animate([][]board.Move{next}, nil)
		}
	}

	e.Animate([][]board.Move{{mustMove(t, "e2", "e4")}}, nil)
	e.Tick()
	e.ForceComplete()

	if rec.finished != 1 {
		t.Fatalf("finished = %d after one ForceComplete, want 1", rec.finished)
	}
	if !e.Busy() {
		t.Fatalf("animation started by the listener was completed too")
	}
	if g.PieceAt(mustSquare(t, "e4")) != board.WhitePawn || g.PieceAt(mustSquare(t, "e7")) != board.BlackPawn {
		t.Errorf("want e4 landed and e7 waiting:\n%s", g)
	}

	e.ForceComplete()
	if rec.finished != 2 || g.PieceAt(mustSquare(t, "e5")) != board.BlackPawn {
		t.Errorf("second ForceComplete: finished = %d, e5 = %v", rec.finished, g.PieceAt(mustSquare(t, "e5")))
	}
	if g.PieceAt(mustSquare(t, "f3")) == board.WhiteKnight {
		t.Errorf("third animation ran inside the second ForceComplete")
	}
}

func TestEngineAnimateInterruptsRunningBatch(t *testing.T) {
	e, g, rec := newTestEngine(t, board.StartPosition, DefaultConfig())

	e.Animate([][]board.Move{{mustMove(t, "e2", "e4")}}, nil)
	e.Tick()
	e.Animate([][]board.Move{{mustMove(t, "e7", "e5")}}, nil)

	if rec.finished != 1 {
		t.Fatalf("first request not completed before the second: finished = %d", rec.finished)
	}
	if g.PieceAt(mustSquare(t, "e4")) != board.WhitePawn {
		t.Errorf("first move lost")
	}
	e.ForceComplete()
	if g.PieceAt(mustSquare(t, "e5")) != board.BlackPawn || rec.finished != 2 {
		t.Errorf("second move: e5 = %v, finished = %d", g.PieceAt(mustSquare(t, "e5")), rec.finished)
	}
}

func TestEngineBatchesAndTarget(t *testing.T) {
	from := "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R"
	to := "r1bqkb1r/pppp1ppp/2n2n2/1B2p3/4P3/5N2/PPPP1PPP/RNBQ1RK1"
	e, g, rec := newTestEngine(t, from, Config{Frames: 2, HoldTicks: 1})
	target, err := board.ParsePosition(to)
	if err != nil {
		t.Fatal(err)
	}

	// King alone: the rook shift comes from the target placement.
	e.Animate([][]board.Move{{mustMove(t, "e1", "g1")}}, target)
	e.ForceComplete()

	if !g.SamePlacement(target) {
		t.Errorf("grid not reconciled with target:\n%s", g)
	}
	if len(rec.moves) != 1 || rec.finished != 1 {
		t.Errorf("events = %d moves, %d finished; want 1, 1", len(rec.moves), rec.finished)
	}
}

func TestEngineApplyInstant(t *testing.T) {
	tests := []struct {
		name      string
		show      bool
		batches   [][]string
		wantMoves int
	}{
		{"single", true, [][]string{{"e2", "e4"}}, 1},
		{"two batches", true, [][]string{{"e2", "e4"}, {"e7", "e5"}}, 2},
		{"no highlight", false, [][]string{{"e2", "e4"}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, g, rec := newTestEngine(t, board.StartPosition, DefaultConfig())
			e.SetShowLastMove(tc.show)

			var batches [][]board.Move
			for _, b := range tc.batches {
				batches = append(batches, []board.Move{mustMove(t, b[0], b[1])})
			}
			e.ApplyInstant(append(batches, []board.Move{board.NoMove}))

			if e.Busy() || g.Animating() {
				t.Fatalf("instant apply left animation state")
			}
			if len(rec.moves) != tc.wantMoves {
				t.Errorf("OnMove calls = %d, want %d", len(rec.moves), tc.wantMoves)
			}
			if rec.finished != 0 {
				t.Errorf("OnMovingFinished fired on instant apply")
			}

			last := batches[len(batches)-1][0]
			if g.PieceAt(last.From) != board.NoPiece || g.PieceAt(last.To).IsEmpty() {
				t.Errorf("last move not applied:\n%s", g)
			}
			if g.Cell(last.To).LastMove != tc.show {
				t.Errorf("LastMove on %s = %v, want %v", last.To, g.Cell(last.To).LastMove, tc.show)
			}
		})
	}
}

func TestEngineAnimateNothing(t *testing.T) {
	e, _, rec := newTestEngine(t, board.StartPosition, DefaultConfig())
	e.Animate([][]board.Move{{board.NoMove}}, nil)
	if e.Busy() {
		t.Errorf("engine busy with an empty queue")
	}
	if rec.finished != 1 || len(rec.moves) != 0 {
		t.Errorf("events = %d moves, %d finished; want 0, 1", len(rec.moves), rec.finished)
	}
}
