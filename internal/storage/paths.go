// Package storage persists viewer preferences and recently opened files in
// BadgerDB.
package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chessview"

// DataDirEnv overrides the platform data directory when set.
const DataDirEnv = "CHESSVIEW_DATA"

// baseDataDir returns the per-user data root:
// ~/Library/Application Support on macOS, %APPDATA% on Windows and
// $XDG_DATA_HOME (default ~/.local/share) elsewhere.
func baseDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows":
		// UserConfigDir is Application Support and %APPDATA% respectively.
		return os.UserConfigDir()
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetDataDir returns the application data directory, creating it if needed.
// $CHESSVIEW_DATA, when set, is used as is.
func GetDataDir() (string, error) {
	dir := os.Getenv(DataDirEnv)
	if dir == "" {
		base, err := baseDataDir()
		if err != nil {
			return "", fmt.Errorf("locate data dir: %w", err)
		}
		dir = filepath.Join(base, appName)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}

// GetDatabaseDir returns the BadgerDB directory inside the data directory.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", fmt.Errorf("create database dir: %w", err)
	}
	log.Printf("[STORAGE] database directory: %s", dbDir)
	return dbDir, nil
}
