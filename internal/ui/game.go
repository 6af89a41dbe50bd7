package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/chessview"
	"github.com/hailam/chessview/internal/movelist"
	"github.com/hailam/chessview/internal/storage"
	"github.com/hailam/chessview/internal/viewer"
)

// Options configures a new Game.
type Options struct {
	Items   []movelist.Item
	Title   string           // shown under the status line, e.g. the PGN file name
	Storage *storage.Storage // nil keeps preferences in memory only
	Frames  int              // transit frames, 0 uses the stored preference
	Sound   bool             // create an audio context
}

// Game implements ebiten.Game interface.
type Game struct {
	view   *chessview.View
	cursor *movelist.Cursor
	nav    *viewer.Navigator
	title  string

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
}

// NewGame creates the viewer window state and shows the first item.
func NewGame(opts Options) *Game {
	g := &Game{
		cursor:   movelist.NewCursor(),
		title:    opts.Title,
		storage:  opts.Storage,
		renderer: NewRenderer(SquareSize),
		input:    NewInputHandler(),
	}
	g.loadPreferences()
	if opts.Frames > 0 {
		g.prefs.AnimationFrames = opts.Frames
	}

	cfg := chessview.DefaultConfig()
	cfg.Frames = g.prefs.AnimationFrames
	g.view = chessview.NewView(cfg)
	g.view.SetShowLastMove(g.prefs.ShowLastMove)
	g.view.AddMoveListener(chessview.ListenerFuncs{Move: g.onMove})
	g.nav = viewer.NewNavigator(g.view, g.cursor)
	g.nav.OnSync = func(int, int, bool) { g.panel.ScrollToSelected() }

	var audio *AudioManager
	if opts.Sound {
		audio = NewAudioManager()
		audio.SetEnabled(g.prefs.SoundEnabled)
	}
	g.feedback = NewFeedbackManager(audio)
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.panel = NewPanel(g)

	if err := g.nav.Load(opts.Items); err != nil {
		g.report("load moves", err)
	}
	g.checkFirstLaunch()
	return g
}

// loadPreferences loads viewer preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("[UI] failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("[UI] failed to save preferences: %v", err)
	}
}

// checkFirstLaunch shows the key bindings once.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("[UI] failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	g.feedback.OnInfo("Arrows step, Home/End jump, R resets, F flips")
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		log.Printf("[UI] failed to mark first launch complete: %v", err)
	}
}

// Update proceeds the viewer state. Called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	g.input.Update()

	for _, cmd := range g.input.Commands() {
		g.run(cmd)
	}

	if !g.panel.HandleInput(g.input) {
		g.handleBoardInput()
	}

	g.view.Tick()
	g.feedback.Update()
	return nil
}

// handleBoardInput toggles the clicked square.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	sq := g.renderer.SquareAt(mx, my)
	if sq == board.NoSquare {
		return
	}
	if _, err := g.view.SelectSquare(sq); err != nil {
		log.Printf("[UI] select %d: %v", sq, err)
	}
}

func (g *Game) run(cmd Command) {
	switch cmd {
	case CmdPrevious:
		g.PreviousAction()
	case CmdNext:
		g.NextAction()
	case CmdFirst:
		g.FirstAction()
	case CmdLast:
		g.LastAction()
	case CmdReset:
		g.ResetAction()
	case CmdFlip:
		g.FlipAction()
	case CmdToggleLastMove:
		g.SetShowLastMove(!g.prefs.ShowLastMove)
	case CmdToggleSound:
		g.SetSoundEnabled(!g.prefs.SoundEnabled)
	}
}

// onMove announces a landed batch with the sound of the current item.
func (g *Game) onMove([]board.Move) {
	if it, ok := g.nav.Current(); ok {
		g.feedback.OnMoveLanded(it)
	}
}

// Draw draws the viewer screen. Called every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	grid := g.view.Grid()
	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, grid)
	g.renderer.DrawPieces(screen, grid, g.view.Config().Frames)

	g.feedback.Draw(screen)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// FirstAction shows the first move.
func (g *Game) FirstAction() { g.report("first", g.nav.First()) }

// PreviousAction steps one move back.
func (g *Game) PreviousAction() { g.report("previous", g.nav.Previous()) }

// NextAction animates the next move.
func (g *Game) NextAction() { g.report("next", g.nav.Next()) }

// LastAction shows the last move.
func (g *Game) LastAction() { g.report("last", g.nav.Last()) }

// JumpAction shows the move at index.
func (g *Game) JumpAction(index int) { g.report(fmt.Sprintf("jump %d", index), g.nav.Jump(index)) }

// ResetAction shows the starting position and selects the first move.
func (g *Game) ResetAction() { g.report("reset", g.nav.Reset()) }

// FlipAction turns the board around.
func (g *Game) FlipAction() {
	g.prefs.Flipped = !g.prefs.Flipped
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.savePreferences()
}

// SetShowLastMove toggles last-move highlighting.
func (g *Game) SetShowLastMove(show bool) {
	g.prefs.ShowLastMove = show
	g.view.SetShowLastMove(show)
	g.savePreferences()
}

// SetSoundEnabled toggles move sounds.
func (g *Game) SetSoundEnabled(enabled bool) {
	g.prefs.SoundEnabled = enabled
	if a := g.feedback.Audio(); a != nil {
		a.SetEnabled(enabled)
	}
	g.savePreferences()
}

func (g *Game) report(action string, err error) {
	if err == nil {
		return
	}
	log.Printf("[UI] %s: %v", action, err)
	g.feedback.OnError(action + " failed")
}

// Close releases the storage.
func (g *Game) Close() {
	g.savePreferences()
	if g.storage != nil {
		g.storage.Close()
	}
}
