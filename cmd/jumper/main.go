// jumper is a vertical platform jumper for the terminal.
//
// Usage:
//
//	jumper play              - Play in the terminal
//	jumper play --gui        - Play in a desktop window
//	jumper scores            - Show the high score
//	jumper scores reset      - Clear the high score
//	jumper config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--store <backend>    - Score backend: sqlite or gdata
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - bounce your way up in the terminal",
	Long: `Jumper is a vertical platform jumper. Steer left and right, bounce off
platforms, collect power-ups and climb as high as you can.

Available commands:
  play     - Start the game
  scores   - View or reset the high score
  config   - Print the effective configuration

Examples:
  jumper play
  jumper play --difficulty hard
  jumper play --gui
  jumper scores
  jumper config > ~/.arcade/configs/jumper.yaml`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		if flagStore != storage.BackendSQLite && flagStore != storage.BackendGData {
			return fmt.Errorf("--store must be %s or %s, got %q", storage.BackendSQLite, storage.BackendGData, flagStore)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "Score backend: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
