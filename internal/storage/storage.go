// Package storage persists the best score per game.
//
// Two backends are available: an SQLite database (the default) and a gdata
// item store in the platform's per-user data directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backend names accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendGData  = "gdata"
)

// AppName names the gdata application directory.
const AppName = "tui-jumper"

// HighScores stores one best score per game id. Only improvements are kept.
type HighScores interface {
	// HighScore returns the best score for gameID, or 0 if none is stored.
	HighScore(gameID string) (int, error)
	// Record returns the stored record, or nil if none exists.
	Record(gameID string) (*Record, error)
	// Submit stores score if it beats the current best and reports whether it did.
	Submit(gameID string, score int) (bool, error)
	// Reset forgets the stored record for gameID.
	Reset(gameID string) error
	Close() error
}

// Record is a stored best score.
type Record struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
}

// OpenBackend opens the named backend. dbPath is only used by SQLite.
func OpenBackend(kind, dbPath string) (HighScores, error) {
	switch kind {
	case "", BackendSQLite:
		s, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendGData:
		s, err := OpenGData(AppName)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (want %s or %s)", kind, BackendSQLite, BackendGData)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
