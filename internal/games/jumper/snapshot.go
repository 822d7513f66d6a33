package jumper

import "slices"

// Snapshot is a read-only copy of the session for renderers and tests.
// Platforms and their items are deep-copied, so holding a snapshot never
// aliases live simulation state.
type Snapshot struct {
	Tick       int
	State      SessionState
	Score      int
	Camera     float64
	Difficulty float64
	Player     Player
	Platforms  []Platform
	Events     []Event // Events raised by the tick that produced this snapshot
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	platforms := make([]Platform, len(s.platforms))
	for i, p := range s.platforms {
		if p.Item != nil {
			item := *p.Item
			p.Item = &item
		}
		platforms[i] = p
	}

	var events []Event
	if len(s.events) > 0 {
		events = append(events, s.events...)
	}

	return Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Score:      s.score,
		Camera:     s.camera.Offset(),
		Difficulty: s.gen.Level(s.score),
		Player:     s.player,
		Platforms:  platforms,
		Events:     events,
	}
}

// Has reports whether the snapshot's tick raised the given event.
func (snap Snapshot) Has(e Event) bool {
	return slices.Contains(snap.Events, e)
}
