package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const jumperFile = "jumper.yaml"

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.arcade/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseJumper(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(jumperFile), filepath.Join("configs", jumperFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseJumper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseJumper(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseJumper decodes a YAML document over the default configuration and
// validates the result.
func ParseJumper(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// MarshalJumper renders a configuration as YAML.
func MarshalJumper(cfg JumperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
