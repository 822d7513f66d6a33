package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// SessionState is the lifecycle state of a play-through.
type SessionState int

const (
	StateIdle    SessionState = iota // No session yet, or torn down
	StateRunning                     // Ticks advance the simulation
	StatePaused                      // Ticks are no-ops
	StateEnded                       // Player fell without a shield
)

// String returns the name of the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "?"
	}
}

// Event is something notable that happened during a tick.
// Frontends use events for sound cues and log lines.
type Event int

const (
	EventJump Event = iota
	EventBreak
	EventSpring
	EventRocket
	EventShield
	EventCoin
	EventShieldSaved
	EventGameOver
)

// String returns the name of the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventBreak:
		return "break"
	case EventSpring:
		return "spring"
	case EventRocket:
		return "rocket"
	case EventShield:
		return "shield"
	case EventCoin:
		return "coin"
	case EventShieldSaved:
		return "shield_saved"
	case EventGameOver:
		return "game_over"
	default:
		return "?"
	}
}

func pickupEvent(k ItemKind) Event {
	switch k {
	case ItemSpring:
		return EventSpring
	case ItemRocket:
		return EventRocket
	case ItemShield:
		return EventShield
	default:
		return EventCoin
	}
}

// Session owns all simulation state for one play-through and advances it
// one frame per Tick. It is not safe for concurrent use.
type Session struct {
	cfg        config.JumperConfig
	seed       int64
	difficulty *config.DifficultyManager
	gen        *Generator
	phys       physics

	player    Player
	platforms []Platform
	camera    Camera
	score     int
	tick      int
	state     SessionState
	events    []Event

	onGameOver func(score int)
	reported   bool
}

// NewSession creates an idle session. Call Start to begin playing.
func NewSession(cfg config.JumperConfig, seed int64) *Session {
	s := &Session{
		cfg:  cfg,
		seed: seed,
	}
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.gen = NewGenerator(seed, &s.cfg, s.difficulty)
	s.phys = physics{cfg: &s.cfg}
	s.camera = NewCamera(cfg.World.Height)
	return s
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.JumperConfig {
	return s.cfg
}

// OnGameOver registers the callback fired once when a session ends.
func (s *Session) OnGameOver(fn func(score int)) {
	s.onGameOver = fn
}

// Reseed sets the seed used by the next Start.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
}

// Seed returns the seed used by the current or next session.
func (s *Session) Seed() int64 {
	return s.seed
}

// Start resets player, score and camera, regenerates the level and
// enters the running state. It may be called from any state.
func (s *Session) Start() {
	w := s.cfg.World
	pc := s.cfg.Player

	s.gen.Reset(s.seed)
	s.player = Player{
		X: w.Width/2 - pc.Width/2,
		Y: w.Height - w.PlayerStartLift,
		W: pc.Width,
		H: pc.Height,
	}
	s.camera = NewCamera(w.Height)
	s.score = 0
	s.tick = 0
	s.events = s.events[:0]
	s.reported = false
	s.platforms = s.gen.Populate(s.score)
	s.state = StateRunning
}

// Stop tears the session down to idle without reporting a score.
func (s *Session) Stop() {
	s.state = StateIdle
	s.platforms = nil
	s.events = s.events[:0]
}

// TogglePause switches between running and paused. Other states are unaffected.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// Pause stops simulation advancement until Resume.
func (s *Session) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// State returns the lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Tick advances one frame using the input sampled for it. Outside the
// running state it does nothing and returns the unchanged snapshot.
func (s *Session) Tick(in core.InputFrame) Snapshot {
	s.events = s.events[:0]
	if s.state != StateRunning {
		return s.Snapshot()
	}

	s.tick++
	s.gen.tick = s.tick

	s.platforms = s.gen.Replenish(s.platforms, s.camera.Offset(), s.score)

	s.phys.steer(&s.player, in)
	s.phys.vertical(&s.player)
	s.phys.integrate(&s.player)

	for i := range s.platforms {
		p := &s.platforms[i]
		s.phys.movePlatform(p)

		if kind, ok := s.phys.pickup(&s.player, p); ok {
			if kind == ItemCoin {
				s.score += s.cfg.PowerUps.CoinBonus
			}
			s.events = append(s.events, pickupEvent(kind))
		}

		if s.phys.land(&s.player, p) {
			s.events = append(s.events, EventJump)
			if p.Broken {
				s.events = append(s.events, EventBreak)
			}
		}
	}

	s.score += s.camera.Advance(s.player.Y)
	s.checkFall()

	return s.Snapshot()
}

// checkFall rescues the player with the shield or ends the session once
// the player drops below the viewport.
func (s *Session) checkFall() {
	if s.player.Y <= s.camera.Bottom() {
		return
	}

	if s.player.Shield.Active() {
		s.player.Shield.Clear()
		s.player.VY = s.cfg.PowerUps.SpringForce
		s.events = append(s.events, EventShieldSaved)
		return
	}

	s.state = StateEnded
	s.events = append(s.events, EventGameOver)
	if !s.reported {
		s.reported = true
		if s.onGameOver != nil {
			s.onGameOver(s.score)
		}
	}
}
