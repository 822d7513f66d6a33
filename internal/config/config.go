// Package config provides YAML-based game configuration loading and
// difficulty management for the jumper.
package config

import (
	"errors"
	"fmt"
)

// JumperConfig contains all tunables for the jumper simulation.
// Units are world pixels and frames.
type JumperConfig struct {
	World      JumperWorld      `yaml:"world"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Items      JumperItems      `yaml:"items"`
	PowerUps   JumperPowerUps   `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperWorld defines the logical viewport and generation margins.
type JumperWorld struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	PruneMargin       float64 `yaml:"prune_margin"`        // Below viewport bottom before a platform is dropped
	FirstPlatformLift float64 `yaml:"first_platform_lift"` // Starting platform distance from the bottom edge
	PlayerStartLift   float64 `yaml:"player_start_lift"`   // Player spawn distance from the bottom edge
}

// JumperPhysics defines per-frame motion parameters.
type JumperPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	MoveSpeed        float64 `yaml:"move_speed"`
	Friction         float64 `yaml:"friction"`
	MaxMoveSpeed     float64 `yaml:"max_move_speed"`
	StopEpsilon      float64 `yaml:"stop_epsilon"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// JumperPlayer defines the player's bounding box.
type JumperPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPlatforms defines platform geometry and the kind mix.
type JumperPlatforms struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Count         int     `yaml:"count"`
	MoveSpeed     float64 `yaml:"move_speed"`
	BreakingShare float64 `yaml:"breaking_share"` // draw < level*share => breaking
	MovingShare   float64 `yaml:"moving_share"`   // draw < level*share => moving
}

// JumperItems defines item geometry and spawn probabilities.
type JumperItems struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"`
	RocketBelow float64 `yaml:"rocket_below"`
	SpringBelow float64 `yaml:"spring_below"`
	ShieldBelow float64 `yaml:"shield_below"` // Anything above is a coin
}

// JumperPowerUps defines item effects.
type JumperPowerUps struct {
	SpringForce    float64 `yaml:"spring_force"`
	RocketSpeed    float64 `yaml:"rocket_speed"`
	RocketDuration int     `yaml:"rocket_duration"`
	ShieldDuration int     `yaml:"shield_duration"`
	CoinBonus      int     `yaml:"coin_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"`
	Progression  ProgressionConfig `yaml:"progression"`
	Cap          float64           `yaml:"cap"` // Upper bound of the level, 0 means 1.0
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which level 1.0 would be reached
}

// RowSpacing returns the vertical distance between generated rows.
func (c JumperConfig) RowSpacing() float64 {
	if c.Platforms.Count <= 0 {
		return c.World.Height
	}
	return c.World.Height / float64(c.Platforms.Count)
}

// Validate reports every value that would make the simulation misbehave.
func (c JumperConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		errs = append(errs, errors.New("platform size must be positive"))
	}
	if c.Platforms.Width > c.World.Width {
		errs = append(errs, errors.New("platform wider than the world"))
	}
	if c.Platforms.Count < 2 {
		errs = append(errs, fmt.Errorf("platform count must be at least 2, got %d", c.Platforms.Count))
	}
	if c.Physics.JumpForce >= 0 {
		errs = append(errs, errors.New("jump_force must be negative (up)"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("gravity must be positive"))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, errors.New("friction must be in [0, 1]"))
	}
	if c.Physics.MaxMoveSpeed <= 0 {
		errs = append(errs, errors.New("max_move_speed must be positive"))
	}
	if c.Items.SpawnChance < 0 || c.Items.SpawnChance > 1 {
		errs = append(errs, errors.New("items.spawn_chance must be in [0, 1]"))
	}
	if !(c.Items.RocketBelow <= c.Items.SpringBelow && c.Items.SpringBelow <= c.Items.ShieldBelow && c.Items.ShieldBelow <= 1) {
		errs = append(errs, errors.New("item thresholds must be ordered rocket <= spring <= shield <= 1"))
	}
	if c.PowerUps.RocketDuration < 0 || c.PowerUps.ShieldDuration < 0 {
		errs = append(errs, errors.New("power-up durations must not be negative"))
	}
	if c.Difficulty.Cap < 0 || c.Difficulty.Cap > 1 {
		errs = append(errs, errors.New("difficulty.cap must be in [0, 1]"))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid jumper config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value into a preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
