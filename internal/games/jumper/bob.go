package jumper

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bob is a cosmetic up/down oscillation used to animate uncollected items.
// It never feeds back into the simulation.
type Bob struct {
	tween     *gween.Tween
	amplitude float32
	half      float32 // Seconds per swing
	rising    bool
}

// NewBob creates an oscillator swinging ±amplitude with a full cycle of
// period seconds.
func NewBob(amplitude, period float32) *Bob {
	b := &Bob{amplitude: amplitude, half: period / 2}
	b.swing()
	return b
}

func (b *Bob) swing() {
	from, to := -b.amplitude, b.amplitude
	if b.rising {
		from, to = to, from
	}
	b.tween = gween.New(from, to, b.half, ease.InOutQuad)
}

// Update advances the animation by dt seconds and returns the offset.
func (b *Bob) Update(dt float32) float32 {
	v, done := b.tween.Update(dt)
	if done {
		b.rising = !b.rising
		b.swing()
	}
	return v
}
