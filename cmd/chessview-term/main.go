// chessview-term plays a move list in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/chessview"
	"github.com/hailam/chessview/internal/movelist"
	"github.com/hailam/chessview/internal/movesource"
	"github.com/hailam/chessview/internal/viewer"
)

// tickInterval matches the 60 TPS of the window viewer.
const tickInterval = time.Second / 60

var (
	pgnPath = flag.String("pgn", "", "PGN file to view (default: built-in sample game)")
	frames  = flag.Int("frames", 0, "frames per move animation (default 12)")
)

func main() {
	flag.Parse()

	items := movesource.Sample()
	if *pgnPath != "" {
		var err error
		if items, err = movesource.LoadFile(*pgnPath); err != nil {
			log.Fatalf("[TERM] %v", err)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("[TERM] stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[TERM] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[TERM] %v", err)
	}

	a, err := newApp(screen, items, *frames)
	if err != nil {
		screen.Fini()
		log.Fatalf("[TERM] %v", err)
	}

	quit := make(chan struct{})
	go postTicks(screen, tickInterval, quit)
	a.run()
	close(quit)
	screen.Fini()
}

// postTicks wakes the event loop once per interval. It never touches the view.
func postTicks(s tcell.Screen, interval time.Duration, quit <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-quit:
			return
		case <-t.C:
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

type app struct {
	screen  tcell.Screen
	view    *chessview.View
	nav     *viewer.Navigator
	painter *boardPainter
	buttons tcell.ButtonMask
	status  string
}

func newApp(s tcell.Screen, items []movelist.Item, frames int) (*app, error) {
	cfg := chessview.DefaultConfig()
	if frames > 0 {
		cfg.Frames = frames
	}
	view := chessview.NewView(cfg)
	a := &app{
		screen:  s,
		view:    view,
		nav:     viewer.NewNavigator(view, movelist.NewCursor()),
		painter: &boardPainter{theme: DefaultTheme},
	}
	if err := a.nav.Load(items); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	return a, nil
}

// run owns the view: every mutation happens on this goroutine.
func (a *app) run() {
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if !a.view.Busy() {
				continue
			}
			a.view.Tick()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
		a.draw()
	}
}

// handleKey runs the command bound to ev and reports whether to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	a.status = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.report("previous", a.nav.Previous())
	case tcell.KeyRight:
		a.report("next", a.nav.Next())
	case tcell.KeyHome:
		a.report("first", a.nav.First())
	case tcell.KeyEnd:
		a.report("last", a.nav.Last())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			a.report("reset", a.nav.Reset())
		case 'l', 'L':
			a.view.SetShowLastMove(!a.view.ShowLastMove())
		case 'f', 'F':
			a.painter.flipped = !a.painter.flipped
		}
	}
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = ev.Buttons()
	if !pressed {
		return
	}
	sq := a.painter.squareAt(ev.Position())
	if sq == board.NoSquare {
		return
	}
	if _, err := a.view.SelectSquare(sq); err != nil {
		a.status = err.Error()
	}
}

func (a *app) report(action string, err error) {
	if err != nil {
		a.status = fmt.Sprintf("%s: %v", action, err)
	}
}

func (a *app) draw() {
	a.screen.Clear()
	a.painter.Draw(a.screen, a.view.Grid(), a.view.Config().Frames)

	cursor := a.nav.Cursor()
	drawMoveList(a.screen, a.painter.theme, cursor.Items(), cursor.Selected())

	line := "Start position"
	if it, ok := a.nav.Current(); ok {
		line = fmt.Sprintf("%d/%d  %d. %s", it.Number, cursor.Len(), it.MoveNumber(), it.SAN)
	}
	muted := tcell.StyleDefault.Foreground(a.painter.theme.Label)
	putString(a.screen, boardX, statusY, line, tcell.StyleDefault)
	putString(a.screen, boardX, statusY+1, "←/→ step  Home/End jump  r reset  l last move  f flip  q quit", muted)
	if a.status != "" {
		putString(a.screen, boardX, statusY+2, a.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	a.screen.Show()
}
