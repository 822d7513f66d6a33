package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelScore(t *testing.T) {
	dm := NewDifficultyManager(DefaultJumperConfig().Difficulty)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{1500, 0.1},
		{7500, 0.5},
		{10500, 0.7},
		{15000, 0.7},
		{1_000_000, 0.7},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	dm := NewDifficultyManager(DefaultJumperConfig().Difficulty)
	prev := -1.0
	for score := 0; score <= 20000; score += 37 {
		level := dm.Level(score, 0)
		if level < prev {
			t.Fatalf("level decreased at score %d: %v < %v", score, level, prev)
		}
		if level > 0.7 {
			t.Fatalf("level %v exceeds cap at score %d", level, score)
		}
		prev = level
	}
}

func TestDifficultyDisabledAndTime(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.InitialLevel = 0.4
	cfg.Enabled = false
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(100000, 0); got != 0.4 {
		t.Errorf("disabled level = %v, expected initial 0.4", got)
	}
	if dm.IsEnabled() {
		t.Error("IsEnabled should report false")
	}

	cfg.Enabled = true
	cfg.InitialLevel = 0
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	cfg.Cap = 0 // uncapped
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("time level = %v, expected 0.5", got)
	}
	if got := dm.Level(0, 500); got != 1.0 {
		t.Errorf("time level = %v, expected 1.0", got)
	}
}
