// Package gui runs the jumper in a desktop window with ebiten.
// The window shows the world at its native size; the simulation is the same
// one the terminal frontend drives.
package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Bob settings for items, in pixels and seconds.
const (
	bobAmplitude = 3
	bobPeriod    = 1.25
)

// Frontend implements ebiten.Game on top of a jumper.Game.
type Frontend struct {
	game   *jumper.Game
	scores *storage.Tracker
	logger *log.Logger

	bob    *jumper.Bob
	bobDY  float32
	frames int
	state  core.GameState
}

var _ ebiten.Game = (*Frontend)(nil)

// New prepares a frontend. store and logger may be nil.
func New(game *jumper.Game, store storage.HighScores, runtime core.RuntimeConfig, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runtime.TickRate = ebiten.DefaultTPS
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	game.Reset(runtime)
	scores := storage.NewTracker(store, game.ID(), logger)
	game.OnGameOver(scores.Submit)

	return &Frontend{
		game:   game,
		scores: scores,
		logger: logger,
		bob:    jumper.NewBob(bobAmplitude, bobPeriod),
		state:  game.State(),
	}
}

// Update advances one tick. Q ends the program.
func (f *Frontend) Update() error {
	in := readInput()
	if in.quit {
		return ebiten.Termination
	}

	cfg := f.game.Config()
	inRun := f.state.Started && !f.state.GameOver
	prev := f.state
	f.state = f.game.Step(in.frame(cfg.World.Width, inRun)).State

	if f.state.Started && !f.state.GameOver && (!prev.Started || prev.GameOver) {
		f.logger.Info("session started", "frontend", "gui")
	}

	f.frames++
	f.bobDY = f.bob.Update(1 / float32(ebiten.DefaultTPS))
	return nil
}

// Layout keeps the logical screen at the world size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	cfg := f.game.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Run opens the window and blocks until it is closed.
func Run(f *Frontend) error {
	w, h := f.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(f.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
