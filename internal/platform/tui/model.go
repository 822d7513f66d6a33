package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	scores    *storage.Tracker
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model

	inputFrame core.InputFrame
	held       heldKeys
	pointer    pointer
	gameState  core.GameState

	showManual bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store storage.HighScores, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scores := storage.NewTracker(store, game.ID(), logger)
	if n, ok := game.(registry.GameOverNotifier); ok {
		n.OnGameOver(scores.Submit)
	}

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     scores,
		logger:     logger,
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(holdTicksFor(cfg.TickRate)),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help) && !m.inRun():
		m.showManual = !m.showManual
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showManual {
		// Only play or back leave the manual.
		switch action {
		case core.ActionConfirm:
			m.showManual = false
			m.inputFrame.Set(action)
		case core.ActionPause, core.ActionBack:
			m.showManual = false
		}
		return m, nil
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		if !m.gameState.Paused {
			m.held.press(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse maps a held left button to a pointer position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.press(msg.X, m.screen.Width())
		}
	case tea.MouseActionMotion:
		m.pointer.move(msg.X, m.screen.Width())
	case tea.MouseActionRelease:
		m.pointer.release()
	}
	return m, nil
}

// handleResize processes window resize events. The game scales its world to
// whatever screen it is given, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame)
	m.pointer.apply(&m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	if !m.inRun() || m.gameState.Paused {
		m.held.release()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case cur.Started && !cur.GameOver && (!prev.Started || prev.GameOver):
		m.logger.Info("session started", "game", m.game.ID())
	case cur.Paused && !prev.Paused:
		m.logger.Debug("paused", "score", cur.Score)
	case prev.Paused && !cur.Paused && cur.Started:
		m.logger.Debug("resumed", "score", cur.Score)
	case prev.Started && !cur.Started:
		m.logger.Info("session abandoned", "score", prev.Score)
	}
}

// inRun reports whether a session is running or paused.
func (m Model) inRun() bool {
	return m.gameState.Started && !m.gameState.GameOver
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.showManual:
		return m.manualView()
	case !m.gameState.Started:
		return m.startView()
	case m.gameState.GameOver:
		return m.gameOverView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store storage.HighScores, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
