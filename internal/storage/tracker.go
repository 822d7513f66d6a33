package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// Tracker keeps the best score of one game in memory and submits finished
// runs to a store. Store failures are logged and otherwise ignored, so a
// session keeps its record even when persistence is unavailable.
type Tracker struct {
	store  HighScores
	gameID string
	logger *log.Logger

	best      int
	newRecord bool
}

// NewTracker loads the stored best for gameID. store and logger may be nil.
func NewTracker(store HighScores, gameID string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{store: store, gameID: gameID, logger: logger}
	if store == nil {
		return t
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("cannot load high score", "game", gameID, "error", err)
		return t
	}
	t.best = best
	return t
}

// Submit records a finished run. A positive score that ties the best still
// counts as a new record.
func (t *Tracker) Submit(score int) {
	t.newRecord = score > 0 && score >= t.best
	if t.newRecord {
		t.best = score
	}
	t.logger.Info("game over", "game", t.gameID, "score", score, "best", t.best)

	if t.store == nil {
		return
	}
	improved, err := t.store.Submit(t.gameID, score)
	if err != nil {
		t.logger.Warn("cannot save score", "game", t.gameID, "error", err)
		return
	}
	if improved {
		t.logger.Info("new record", "game", t.gameID, "score", score)
	}
}

// Best returns the best score seen so far.
func (t *Tracker) Best() int {
	return t.best
}

// NewRecord reports whether the most recent run set a record.
func (t *Tracker) NewRecord() bool {
	return t.newRecord
}
