package tui

import "github.com/vovakirdan/tui-jumper/internal/core"

// heldKeys emulates key-up events, which terminals do not report. A direction
// press counts as held for a number of ticks; keyboard auto-repeat refreshes
// it. Pressing the opposite direction releases the other one at once.
type heldKeys struct {
	hold  int
	left  int
	right int
}

// holdTicksFor returns how long a single press stays held at tickRate.
func holdTicksFor(tickRate int) int {
	return max(tickRate/4, 1)
}

func newHeldKeys(hold int) heldKeys {
	return heldKeys{hold: max(hold, 1)}
}

// press records a direction press. Other actions are ignored.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.hold, 0
	case core.ActionRight:
		h.right, h.left = h.hold, 0
	}
}

// apply sets the held directions on frame and ages them by one tick.
func (h *heldKeys) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

func (h *heldKeys) release() {
	h.left, h.right = 0, 0
}

// pointer tracks a pressed mouse button as a fraction of the screen width.
type pointer struct {
	down     bool
	fraction float64
}

func (p *pointer) press(col, width int) {
	p.down = true
	p.move(col, width)
}

func (p *pointer) move(col, width int) {
	if !p.down || width <= 0 {
		return
	}
	p.fraction = (float64(col) + 0.5) / float64(width)
}

func (p *pointer) release() {
	p.down = false
}

func (p pointer) apply(frame *core.InputFrame) {
	if p.down {
		frame.SetPointer(p.fraction)
	}
}
