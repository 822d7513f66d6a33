package jumper

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func newTestSession(seed int64) *Session {
	s := NewSession(config.DefaultJumperConfig(), seed)
	s.Start()
	return s
}

// clearItems removes generated items so a test controls every pickup.
func clearItems(s *Session) {
	for i := range s.platforms {
		s.platforms[i].Item = nil
	}
}

// scriptedInput returns a deterministic mix of keys, pointer and idle frames.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch (i / 40) % 4 {
	case 0:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	case 2:
		in.SetPointer(float64(i%7) / 6)
	}
	return in
}

func TestSessionStart(t *testing.T) {
	s := NewSession(config.DefaultJumperConfig(), 1)
	if s.State() != StateIdle {
		t.Fatalf("new session state = %v, expected idle", s.State())
	}

	before := s.Tick(core.NewInputFrame())
	if before.Tick != 0 || len(before.Platforms) != 0 {
		t.Error("idle ticks should not advance the simulation")
	}

	s.Start()
	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("state = %v, expected running", snap.State)
	}
	if len(snap.Platforms) != 15 {
		t.Errorf("platforms = %d, expected 15", len(snap.Platforms))
	}
	if snap.Player.X != 177.5 || snap.Player.Y != 500 {
		t.Errorf("player starts at (%v, %v), expected (177.5, 500)", snap.Player.X, snap.Player.Y)
	}
	if snap.Score != 0 || snap.Camera != 0 {
		t.Errorf("score/camera = %d/%v, expected 0/0", snap.Score, snap.Camera)
	}
}

func TestSessionDeterminism(t *testing.T) {
	s1 := newTestSession(12345)
	s2 := newTestSession(12345)

	for i := 0; i < 1500; i++ {
		in := scriptedInput(i)
		a := s1.Tick(in)
		b := s2.Tick(in)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("tick %d: snapshots diverged", i)
		}
		if a.State == StateEnded {
			break
		}
	}
}

func TestSessionInvariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		s := newTestSession(seed)
		rng := rand.New(rand.NewSource(seed))

		broken := map[float64]bool{}
		collected := map[float64]bool{}
		lastScore := 0
		lastCamera := 0.0

		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			switch rng.Intn(3) {
			case 0:
				in.Set(core.ActionLeft)
			case 1:
				in.Set(core.ActionRight)
			}

			snap := s.Tick(in)

			if snap.Score < lastScore {
				t.Fatalf("seed %d tick %d: score decreased %d -> %d", seed, i, lastScore, snap.Score)
			}
			if snap.Camera > lastCamera {
				t.Fatalf("seed %d tick %d: camera moved down %v -> %v", seed, i, lastCamera, snap.Camera)
			}
			if len(snap.Platforms) != 15 {
				t.Fatalf("seed %d tick %d: %d platforms, expected 15", seed, i, len(snap.Platforms))
			}

			// Platforms never move vertically, so y identifies them.
			for _, p := range snap.Platforms {
				if broken[p.Y] && !p.Broken {
					t.Fatalf("seed %d tick %d: platform at y=%v un-broke", seed, i, p.Y)
				}
				broken[p.Y] = p.Broken
				if p.Item != nil {
					if collected[p.Y] && !p.Item.Collected {
						t.Fatalf("seed %d tick %d: item at y=%v un-collected", seed, i, p.Y)
					}
					collected[p.Y] = p.Item.Collected
				}
			}

			lastScore, lastCamera = snap.Score, snap.Camera
			if snap.State == StateEnded {
				break
			}
		}
	}
}

func TestSessionPointerSteersLeft(t *testing.T) {
	s := newTestSession(1)
	in := core.NewInputFrame()
	in.SetPointer(0)

	snap := s.Tick(in)
	if snap.Player.VX >= 0 {
		t.Errorf("vx = %v, expected leftward acceleration", snap.Player.VX)
	}
	if !snap.Player.FacingLeft {
		t.Error("player should face left")
	}
}

func TestSessionCoinBonus(t *testing.T) {
	t.Run("without camera movement", func(t *testing.T) {
		s := newTestSession(2)
		clearItems(s)
		s.platforms[0].Item = &Item{Kind: ItemCoin, X: s.player.X, Y: s.player.Y, W: 24, H: 24}

		snap := s.Tick(core.NewInputFrame())
		if snap.Score != 500 {
			t.Errorf("score = %d, expected exactly 500", snap.Score)
		}
		if !snap.Has(EventCoin) {
			t.Error("coin event should be reported")
		}
	})

	t.Run("with camera movement", func(t *testing.T) {
		s := newTestSession(2)
		clearItems(s)
		s.player.Y = 200
		s.player.VY = 0
		s.platforms[0].Item = &Item{Kind: ItemCoin, X: s.player.X, Y: 200, W: 24, H: 24}

		snap := s.Tick(core.NewInputFrame())
		climb := snap.Score - 500
		if climb <= 0 {
			t.Fatalf("score = %d, expected the coin bonus plus camera progress", snap.Score)
		}
		if want := int(-snap.Camera); climb != want {
			t.Errorf("camera progress = %d, expected floor of camera shift %d", climb, want)
		}
	})
}

func TestSessionShieldRescue(t *testing.T) {
	s := newTestSession(3)
	s.player.Y = s.camera.Bottom() + 10
	s.player.VY = 5
	s.player.Shield.Activate(45)

	over := 0
	s.OnGameOver(func(int) { over++ })

	snap := s.Tick(core.NewInputFrame())
	if snap.State != StateRunning {
		t.Fatalf("state = %v, the shield should keep the session running", snap.State)
	}
	if snap.Player.VY != -20 {
		t.Errorf("vy = %v, expected -20", snap.Player.VY)
	}
	if snap.Player.Shield.Active() || snap.Player.Shield.Remaining() != 0 {
		t.Errorf("shield should be consumed, remaining = %d", snap.Player.Shield.Remaining())
	}
	if !snap.Has(EventShieldSaved) {
		t.Error("shield rescue event should be reported")
	}
	if over != 0 {
		t.Error("game over must not fire on a shield rescue")
	}
}

func TestSessionGameOverOnce(t *testing.T) {
	s := newTestSession(4)

	var reports []int
	s.OnGameOver(func(score int) { reports = append(reports, score) })

	s.score = 777
	s.player.Y = s.camera.Bottom() + 10
	s.player.VY = 5

	snap := s.Tick(core.NewInputFrame())
	if snap.State != StateEnded {
		t.Fatalf("state = %v, expected ended", snap.State)
	}
	if !snap.Has(EventGameOver) {
		t.Error("game over event should be reported")
	}

	for i := 0; i < 10; i++ {
		s.Tick(core.NewInputFrame())
	}
	if len(reports) != 1 || reports[0] != 777 {
		t.Fatalf("reports = %v, expected exactly one report of 777", reports)
	}
	if s.Score() != 777 {
		t.Errorf("score should be frozen at 777, got %d", s.Score())
	}

	// A new session reports again.
	s.Start()
	s.player.Y = s.camera.Bottom() + 10
	s.Tick(core.NewInputFrame())
	if len(reports) != 2 {
		t.Errorf("second session should report once, reports = %v", reports)
	}
}

func TestSessionPauseRoundTrip(t *testing.T) {
	s := newTestSession(5)
	for i := 0; i < 30; i++ {
		s.Tick(core.NewInputFrame())
	}

	s.Pause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", s.State())
	}
	before := s.Snapshot()

	for i := 0; i < 100; i++ {
		s.Tick(scriptedInput(i))
	}

	s.Resume()
	after := s.Snapshot()
	before.State, after.State = StateRunning, StateRunning
	before.Events, after.Events = nil, nil
	if !reflect.DeepEqual(before, after) {
		t.Error("paused ticks must not change the simulation")
	}

	s.TogglePause()
	if s.State() != StatePaused {
		t.Error("TogglePause should pause a running session")
	}
	s.TogglePause()
	if s.State() != StateRunning {
		t.Error("TogglePause should resume a paused session")
	}
}

func TestSessionStopDoesNotReport(t *testing.T) {
	s := newTestSession(6)
	fired := false
	s.OnGameOver(func(int) { fired = true })

	s.Stop()
	if s.State() != StateIdle {
		t.Errorf("state = %v, expected idle", s.State())
	}
	s.TogglePause()
	if s.State() != StateIdle {
		t.Error("TogglePause should not affect an idle session")
	}
	if fired {
		t.Error("Stop must not report a score")
	}
}

func TestSessionRocketFlight(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	cfg.Items.SpawnChance = 0 // only the rocket below
	s := NewSession(cfg, 7)
	s.Start()
	s.platforms[0].Item = &Item{Kind: ItemRocket, X: s.player.X, Y: s.player.Y, W: 24, H: 24}

	snap := s.Tick(core.NewInputFrame())
	if !snap.Has(EventRocket) || snap.Player.Rocket.Remaining() != 120 {
		t.Fatalf("rocket should be active for 120 frames, got %d", snap.Player.Rocket.Remaining())
	}

	for i := 0; i < 120; i++ {
		snap = s.Tick(core.NewInputFrame())
		if snap.Has(EventJump) {
			t.Fatalf("frame %d: landings are ignored during rocket flight", i)
		}
		if snap.Player.VY != -25 {
			t.Fatalf("frame %d: vy = %v, expected -25", i, snap.Player.VY)
		}
	}
	if snap.Player.Rocket.Active() {
		t.Error("rocket should expire after its duration")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestSession(8)
	s.platforms[3].Item = &Item{Kind: ItemCoin, W: 24, H: 24}

	snap := s.Snapshot()
	snap.Platforms[3].Item.Collected = true
	snap.Platforms[3].Broken = true

	if s.platforms[3].Item.Collected || s.platforms[3].Broken {
		t.Error("mutating a snapshot must not touch the session")
	}
}
