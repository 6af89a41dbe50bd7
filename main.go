// ChessView - an animated chess move viewer built with Ebitengine
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessview/internal/movelist"
	"github.com/hailam/chessview/internal/movesource"
	"github.com/hailam/chessview/internal/storage"
	"github.com/hailam/chessview/internal/ui"
)

var (
	pgnPath = flag.String("pgn", "", "PGN file to view (default: built-in sample game)")
	frames  = flag.Int("frames", 0, "frames per move animation (default: stored preference)")
	dataDir = flag.String("data", "", "directory for preferences (default: platform data dir)")
	recent  = flag.Bool("recent", false, "list recently opened PGN files and exit")
)

func main() {
	flag.Parse()

	store := openStorage(*dataDir)

	if *recent {
		listRecent(os.Stdout, store)
		return
	}

	items, title := loadItems(*pgnPath, store)

	game := ui.NewGame(ui.Options{
		Items:   items,
		Title:   title,
		Storage: store,
		Frames:  *frames,
		Sound:   true,
	})
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessView")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("[MAIN] %v", err)
	}
}

// openStorage opens the preferences database. A failure leaves the viewer
// running with in-memory defaults.
func openStorage(dir string) *storage.Storage {
	var (
		store *storage.Storage
		err   error
	)
	if dir != "" {
		store, err = storage.Open(filepath.Join(dir, "db"))
	} else {
		store, err = storage.NewStorage()
	}
	if err != nil {
		log.Printf("[MAIN] preferences disabled: %v", err)
		return nil
	}
	return store
}

// loadItems reads the requested PGN or falls back to the sample game.
func loadItems(path string, store *storage.Storage) ([]movelist.Item, string) {
	if path == "" {
		return movesource.Sample(), "Sample game"
	}

	items, err := movesource.LoadFile(path)
	if err != nil {
		log.Printf("[MAIN] %v, showing the sample game", err)
		return movesource.Sample(), "Sample game"
	}
	if store != nil {
		if err := store.RecordOpened(path); err != nil {
			log.Printf("[MAIN] record %s: %v", path, err)
		}
	}
	return items, filepath.Base(path)
}

// listRecent prints the remembered PGN files, newest first, and closes store.
func listRecent(w io.Writer, store *storage.Storage) {
	if store == nil {
		writeRecent(w, nil)
		return
	}
	defer store.Close()
	files, err := store.RecentFiles()
	if err != nil {
		log.Printf("[MAIN] recent files: %v", err)
	}
	writeRecent(w, files)
}

func writeRecent(w io.Writer, files []string) {
	if len(files) == 0 {
		fmt.Fprintln(w, "no recently opened PGN files")
		return
	}
	for i, f := range files {
		fmt.Fprintf(w, "%d. %s\n", i+1, f)
	}
}
