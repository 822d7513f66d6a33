package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
)

// GDataStore keeps high scores as gdata items, one JSON item per game.
type GDataStore struct {
	m *gdata.Manager
}

var _ HighScores = (*GDataStore)(nil)

type savedScore struct {
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OpenGData opens the gdata store for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata store: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func itemKey(gameID string) string {
	return "highscore_" + gameID
}

// HighScore returns the best score for gameID, or 0.
func (s *GDataStore) HighScore(gameID string) (int, error) {
	rec, err := s.Record(gameID)
	if err != nil || rec == nil {
		return 0, err
	}
	return rec.Score, nil
}

// Record returns the stored record for gameID, or nil.
func (s *GDataStore) Record(gameID string) (*Record, error) {
	data, err := s.m.LoadItem(itemKey(gameID))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", itemKey(gameID), err)
	}
	if data == nil {
		return nil, nil
	}

	var saved savedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w", itemKey(gameID), err)
	}
	return &Record{GameID: gameID, Score: saved.Score, UpdatedAt: saved.UpdatedAt}, nil
}

// Submit stores score when it beats the current record.
func (s *GDataStore) Submit(gameID string, score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	best, err := s.HighScore(gameID)
	if err != nil {
		return false, err
	}
	if score <= best {
		return false, nil
	}

	data, err := json.Marshal(savedScore{Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return false, fmt.Errorf("storage: cannot encode score: %w", err)
	}
	if err := s.m.SaveItem(itemKey(gameID), data); err != nil {
		return false, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return true, nil
}

// Reset deletes the stored record for gameID.
func (s *GDataStore) Reset(gameID string) error {
	if !s.m.ItemExists(itemKey(gameID)) {
		return nil
	}
	if err := s.m.DeleteItem(itemKey(gameID)); err != nil {
		return fmt.Errorf("storage: cannot reset score: %w", err)
	}
	return nil
}

// Close is a no-op; gdata writes items immediately.
func (s *GDataStore) Close() error {
	return nil
}
