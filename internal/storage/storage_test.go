package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		prefs := DefaultPreferences()
		if !prefs.ShowLastMove {
			t.Errorf("Expected show-last-move on by default")
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
		if prefs.Flipped {
			t.Errorf("Expected white at the bottom by default")
		}
		if prefs.AnimationFrames != DefaultAnimationFrames {
			t.Errorf("Expected %d frames, got %d", DefaultAnimationFrames, prefs.AnimationFrames)
		}
	})

	t.Run("MissingKeyGivesDefaults", func(t *testing.T) {
		s := openTemp(t)
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if !prefs.ShowLastMove || prefs.AnimationFrames != DefaultAnimationFrames {
			t.Errorf("Expected defaults, got %+v", prefs)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := openTemp(t)
		in := &Preferences{ShowLastMove: false, Flipped: true, SoundEnabled: false, AnimationFrames: 30}
		if err := s.SavePreferences(in); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}
		out, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if out.ShowLastMove || !out.Flipped || out.SoundEnabled || out.AnimationFrames != 30 {
			t.Errorf("Round trip mismatch: %+v", out)
		}
		if out.LastOpened.IsZero() {
			t.Errorf("Expected LastOpened to be stamped")
		}
	})

	t.Run("InvalidFramesFallBack", func(t *testing.T) {
		s := openTemp(t)
		if err := s.SavePreferences(&Preferences{AnimationFrames: 0}); err != nil {
			t.Fatal(err)
		}
		out, err := s.LoadPreferences()
		if err != nil {
			t.Fatal(err)
		}
		if out.AnimationFrames != DefaultAnimationFrames {
			t.Errorf("Expected fallback to %d frames, got %d", DefaultAnimationFrames, out.AnimationFrames)
		}
	})
}

func TestFirstLaunch(t *testing.T) {
	s := openTemp(t)
	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("IsFirstLaunch = %v, %v; want true", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatal(err)
	}
	if first, _ := s.IsFirstLaunch(); first {
		t.Errorf("Expected first launch to be recorded")
	}
}

func TestRecentFiles(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"a.pgn", "b.pgn", "a.pgn"} {
		if err := s.RecordOpened(p); err != nil {
			t.Fatalf("RecordOpened(%s): %v", p, err)
		}
	}
	recent, err := s.RecentFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0] != "a.pgn" || recent[1] != "b.pgn" {
		t.Errorf("RecentFiles = %v, want [a.pgn b.pgn]", recent)
	}

	for i := 0; i < MaxRecent+3; i++ {
		_ = s.RecordOpened(filepath.Join("games", string(rune('c'+i))+".pgn"))
	}
	if recent, _ := s.RecentFiles(); len(recent) != MaxRecent {
		t.Errorf("Expected %d recent files, got %d", MaxRecent, len(recent))
	}
}

func TestDataPaths(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")
	t.Setenv(DataDirEnv, base)

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir != base {
		t.Errorf("GetDataDir = %s, want %s", dataDir, base)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}
