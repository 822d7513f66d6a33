package config

import "math"

// DifficultyManager maps score/time progress to a difficulty level in [0, cap].
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level based on score/ticks.
// Progress is linear in score (or ticks) and never exceeds the cap.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	upper := d.cap()
	if !d.IsEnabled() {
		return math.Min(d.initialLevel, upper)
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score", "":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return math.Min(d.initialLevel, upper)
	}

	return clampF(d.initialLevel+progress, 0.0, upper)
}

func (d *DifficultyManager) cap() float64 {
	if d.cfg.Cap <= 0 || d.cfg.Cap > 1 {
		return 1.0
	}
	return d.cfg.Cap
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
