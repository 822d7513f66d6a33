// Package jumper implements a vertical platform jumper.
// The player bounces off procedurally generated platforms, steering left and
// right, and the run ends when it falls below the bottom of the view.
package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// ID is the registry and score-store key of the game.
const ID = "jumper"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration the CLI flags select.
func LoadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts a Session to the platform's registry.Game contract: it maps
// discrete actions onto session control and renders into a cell screen.
type Game struct {
	runtime  core.RuntimeConfig
	fixed    *config.JumperConfig // Set by UseConfig, replaces loading on Reset
	session  *Session
	sessions int // Sessions started since Reset, used to vary the seed
	last     Snapshot

	bob    *Bob
	bobDY  float32
	frames int // Ticks seen, drives cosmetic animation only

	onGameOver func(score int)
}

// New creates a new Jumper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// UseConfig makes Reset use cfg instead of loading the configuration again.
func (g *Game) UseConfig(cfg config.JumperConfig) {
	g.fixed = &cfg
}

// Reset prepares an idle session. Without UseConfig the configuration is
// loaded from the CLI selection, falling back to the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.fixed != nil {
		g.ResetWith(runtime, *g.fixed)
		return
	}
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith prepares an idle session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.JumperConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.sessions = 0
	g.frames = 0
	g.session = NewSession(cfg, runtime.Seed)
	g.session.OnGameOver(g.reportGameOver)
	g.last = g.session.Snapshot()
	g.bob = NewBob(0.6, 1.25)
	g.bobDY = 0
}

// OnGameOver registers a callback fired once per finished session.
func (g *Game) OnGameOver(fn func(score int)) {
	g.onGameOver = fn
}

func (g *Game) reportGameOver(score int) {
	if g.onGameOver != nil {
		g.onGameOver(score)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++
	g.bobDY = g.bob.Update(1 / float32(g.runtime.TickRate))

	switch g.session.State() {
	case StateIdle:
		if in.Has(core.ActionConfirm) {
			g.start()
			return core.StepResult{State: g.State()}
		}
	case StateEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionBack) {
			return g.stop()
		}
	case StatePaused:
		if in.Has(core.ActionBack) {
			return g.stop()
		}
		if in.Has(core.ActionPause) {
			g.session.Resume()
		}
	case StateRunning:
		if in.Has(core.ActionPause) {
			g.session.Pause()
		}
	}

	g.last = g.session.Tick(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.session.Reseed(g.runtime.Seed + int64(g.sessions))
	g.sessions++
	g.session.Start()
	g.last = g.session.Snapshot()
}

func (g *Game) stop() core.StepResult {
	g.session.Stop()
	g.last = g.session.Snapshot()
	return core.StepResult{State: g.State()}
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.JumperConfig {
	return g.session.Config()
}

// Snapshot returns the state produced by the last tick.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Started:  st != StateIdle,
		GameOver: st == StateEnded,
		Paused:   st == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
