package jumper

import "math"

// Camera tracks the vertical scroll. The offset only ever decreases
// (moves up), since y grows downward.
type Camera struct {
	offset float64
	viewH  float64
}

// NewCamera creates a camera for a viewport of the given height.
func NewCamera(viewH float64) Camera {
	return Camera{viewH: viewH}
}

// Offset returns the world y shown at the top of the viewport.
func (c Camera) Offset() float64 {
	return c.offset
}

// Bottom returns the world y of the viewport's bottom edge.
func (c Camera) Bottom() float64 {
	return c.offset + c.viewH
}

// Advance scrolls up by however far the player has risen above the
// viewport midpoint and returns that distance floored, for scoring.
func (c *Camera) Advance(playerY float64) int {
	threshold := c.offset + c.viewH/2
	if playerY >= threshold {
		return 0
	}
	diff := threshold - playerY
	c.offset -= diff
	return int(math.Floor(diff))
}
