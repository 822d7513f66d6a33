package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// PlatformKind is the variant tag of a platform.
type PlatformKind int

const (
	PlatformNormal    PlatformKind = iota // Static, always solid
	PlatformMoving                        // Slides horizontally, bounces off walls
	PlatformBreaking                      // Breaks on the first landing
	PlatformVanishing                     // Reserved, never generated; behaves like normal
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreaking:
		return "breaking"
	case PlatformVanishing:
		return "vanishing"
	default:
		return "?"
	}
}

// ItemKind is the type of a collectible attached to a platform.
type ItemKind int

const (
	ItemSpring ItemKind = iota // Strong upward bounce
	ItemRocket                 // Timed upward flight
	ItemShield                 // One free rescue from a fall
	ItemCoin                   // Flat score bonus
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemSpring:
		return "spring"
	case ItemRocket:
		return "rocket"
	case ItemShield:
		return "shield"
	case ItemCoin:
		return "coin"
	default:
		return "?"
	}
}

// Glyph returns the display character for an item kind.
func (k ItemKind) Glyph() rune {
	switch k {
	case ItemSpring:
		return '^'
	case ItemRocket:
		return '!'
	case ItemShield:
		return 'O'
	case ItemCoin:
		return '$'
	default:
		return '?'
	}
}

// PowerUp is a timed ability slot. The zero value is inactive;
// an active slot always has at least one frame remaining.
type PowerUp struct {
	remaining int
}

// Active reports whether the power-up has frames left.
func (p PowerUp) Active() bool {
	return p.remaining > 0
}

// Remaining returns the number of frames left, 0 when inactive.
func (p PowerUp) Remaining() int {
	return p.remaining
}

// Activate (re)starts the power-up for the given number of frames.
func (p *PowerUp) Activate(frames int) {
	p.remaining = max(frames, 0)
}

// Tick consumes one frame.
func (p *PowerUp) Tick() {
	if p.remaining > 0 {
		p.remaining--
	}
}

// Clear deactivates the power-up immediately.
func (p *PowerUp) Clear() {
	p.remaining = 0
}

// Player is the jumping character. Y grows downward.
type Player struct {
	X, Y       float64
	VX, VY     float64
	W, H       float64
	FacingLeft bool
	Rocket     PowerUp
	Shield     PowerUp
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Item is a collectible owned by exactly one platform.
type Item struct {
	Kind      ItemKind
	X, Y      float64
	W, H      float64
	Collected bool
}

// Box returns the item's bounding box.
func (it Item) Box() core.Box {
	return core.NewBox(it.X, it.Y, it.W, it.H)
}

// Platform is one generated row of the level.
type Platform struct {
	X, Y   float64
	W, H   float64
	Kind   PlatformKind
	Dir    float64 // -1 or +1, only used by moving platforms
	Broken bool
	Item   *Item
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Solid reports whether the platform can still be landed on.
func (p Platform) Solid() bool {
	return !p.Broken
}

// centerItem keeps the attached item horizontally centred on the platform.
func (p *Platform) centerItem() {
	if p.Item != nil {
		p.Item.X = p.X + (p.W-p.Item.W)/2
	}
}
