package movesource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hailam/chessview/internal/board"
)

const samplePGN = `[Event "Sample"]
[White "White"]
[Black "Black"]
[Result "*"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 Nf6 4. O-O Nxe4 5. Re1 Nd6 6. Nxe5 *
`

func TestSampleIsConsistent(t *testing.T) {
	items := Sample()
	if len(items) != 11 {
		t.Fatalf("len(Sample()) = %d, want 11", len(items))
	}

	prev := board.StartGrid()
	for i, it := range items {
		if it.Number != i+1 {
			t.Errorf("item %d numbered %d", i, it.Number)
		}
		g, err := board.ParsePosition(it.Position)
		if err != nil {
			t.Fatalf("item %d: %v", it.Number, err)
		}
		m, err := it.Move()
		if err != nil {
			t.Fatalf("item %d: %v", it.Number, err)
		}
		p, err := it.Piece()
		if err != nil {
			t.Fatalf("item %d: %v", it.Number, err)
		}
		if g.PieceAt(m.To) != p || prev.PieceAt(m.From) != p {
			t.Errorf("item %d (%s): piece %v not carried %s", it.Number, it.SAN, p, m)
		}

		diff := board.Diff(prev, g)
		if len(diff) == 0 || diff[0] != m {
			t.Errorf("item %d (%s): Diff = %v, want %s first", it.Number, it.SAN, diff, m)
		}
		if it.IsCastle() && len(diff) != 2 {
			t.Errorf("castle diff = %v, want king and rook", diff)
		}
		prev = g
	}
}

func TestFromPGNReproducesSample(t *testing.T) {
	got, err := FromPGN(strings.NewReader(samplePGN))
	if err != nil {
		t.Fatalf("FromPGN: %v", err)
	}
	want := Sample()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.pgn")
	if err := os.WriteFile(path, []byte(samplePGN), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(items) != 11 || items[10].SAN != "Nxe5" {
		t.Errorf("LoadFile returned %d items", len(items))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.pgn")); err == nil {
		t.Errorf("LoadFile of a missing file succeeded")
	}
}

func TestFromPGNRejectsIllegalMoves(t *testing.T) {
	if _, err := FromPGN(strings.NewReader("1. e5 *")); err == nil {
		t.Errorf("FromPGN accepted an illegal move")
	}
}
