package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/gui"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Jumper.

Controls:
  Left/A, Right/D  - Steer (or hold the mouse on either half)
  Enter/Space      - Play
  P/Esc            - Pause
  B                - Main menu (paused or game over)
  R                - Restart (after game over)
  ?                - How to play
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the lowest difficulty, progresses to the cap
  normal - Start at 20% difficulty, progresses to the cap
  hard   - Start at 50% difficulty, progresses to the cap
  fixed  - No progression, stays at the config's initial level

Examples:
  jumper play
  jumper play --difficulty hard
  jumper play --config ./my-jumper.yaml
  jumper play --gui --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
}

// applyGameFlags passes --config and --difficulty to the game and returns the
// configuration they select.
func applyGameFlags() (config.JumperConfig, error) {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return config.JumperConfig{}, err
		}
	}
	jumper.SetConfigPath(flagConfig)
	jumper.SetDifficultyPreset(flagDifficulty)
	return jumper.LoadConfig()
}

// startGame runs the selected frontend until the player quits.
var startGame = run

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := applyGameFlags()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	var fallback io.Writer = io.Discard
	if flagGUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open score store", "store", flagStore, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "gui", flagGUI, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := startGame(store, cfg, gameCfg, logger); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func run(store storage.HighScores, cfg core.RuntimeConfig, gameCfg config.JumperConfig, logger *log.Logger) error {
	game, err := registry.Create(jumper.ID)
	if err != nil {
		return err
	}
	jg, ok := game.(*jumper.Game)
	if !ok {
		return fmt.Errorf("game %q is not a jumper", jumper.ID)
	}
	jg.UseConfig(gameCfg)

	if flagGUI {
		return gui.Run(gui.New(jg, store, cfg, logger))
	}
	return tui.Run(game, store, cfg, logger)
}
