package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperYAML returns the embedded default configuration document.
func DefaultJumperYAML() []byte {
	out := make([]byte, len(defaultJumperYAML))
	copy(out, defaultJumperYAML)
	return out
}

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: JumperWorld{
			Width:             400,
			Height:            650,
			PruneMargin:       100,
			FirstPlatformLift: 50,
			PlayerStartLift:   150,
		},
		Physics: JumperPhysics{
			Gravity:          0.35,
			JumpForce:        -11,
			MoveSpeed:        0.8,
			Friction:         0.8,
			MaxMoveSpeed:     7.5,
			StopEpsilon:      0.1,
			LandingTolerance: 5,
		},
		Player: JumperPlayer{
			Width:  45,
			Height: 45,
		},
		Platforms: JumperPlatforms{
			Width:         60,
			Height:        15,
			Count:         15,
			MoveSpeed:     1.5,
			BreakingShare: 0.35,
			MovingShare:   0.75,
		},
		Items: JumperItems{
			Size:        24,
			SpawnChance: 0.18,
			RocketBelow: 0.10,
			SpringBelow: 0.30,
			ShieldBelow: 0.50,
		},
		PowerUps: JumperPowerUps{
			SpringForce:    -20,
			RocketSpeed:    -25,
			RocketDuration: 120,
			ShieldDuration: 300,
			CoinBonus:      500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 15000,
			},
			Cap: 0.7,
		},
	}
}
