package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration 'jumper play' would use, as YAML.

The config is looked up in this order:
  1. --config path
  2. ~/.arcade/configs/jumper.yaml
  3. ./configs/jumper.yaml
  4. built-in defaults

Examples:
  jumper config
  jumper config --difficulty hard
  jumper config --defaults > ~/.arcade/configs/jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file, comments included")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultJumperYAML())
		return err
	}

	cfg, err := applyGameFlags()
	if err != nil {
		return err
	}

	data, err := config.MarshalJumper(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
