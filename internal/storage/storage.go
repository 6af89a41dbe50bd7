package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyRecent      = "recent_files"
	keyFirstLaunch = "first_launch"
)

// MaxRecent is the number of opened PGN files remembered.
const MaxRecent = 8

// DefaultAnimationFrames is the transit budget used when none is stored.
const DefaultAnimationFrames = 12

// Preferences stores viewer settings
type Preferences struct {
	ShowLastMove    bool      `json:"show_last_move"`
	Flipped         bool      `json:"flipped"`
	SoundEnabled    bool      `json:"sound_enabled"`
	AnimationFrames int       `json:"animation_frames"`
	LastOpened      time.Time `json:"last_opened"`
}

// DefaultPreferences returns default viewer preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		ShowLastMove:    true,
		SoundEnabled:    true,
		AnimationFrames: DefaultAnimationFrames,
		LastOpened:      time.Now(),
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastOpened = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads viewer preferences, returns defaults if not found.
// A stored frame budget below one falls back to the default.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if err := s.get(keyPreferences, prefs); err != nil {
		return prefs, err
	}
	if prefs.AnimationFrames < 1 {
		prefs.AnimationFrames = DefaultAnimationFrames
	}
	return prefs, nil
}

// RecentFiles returns the opened PGN paths, most recent first.
func (s *Storage) RecentFiles() ([]string, error) {
	var recent []string
	err := s.get(keyRecent, &recent)
	return recent, err
}

// RecordOpened moves path to the front of the recent file list.
func (s *Storage) RecordOpened(path string) error {
	recent, err := s.RecentFiles()
	if err != nil {
		return err
	}

	out := []string{path}
	for _, p := range recent {
		if p != path && len(out) < MaxRecent {
			out = append(out, p)
		}
	}
	return s.put(keyRecent, out)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched when the key is absent.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
