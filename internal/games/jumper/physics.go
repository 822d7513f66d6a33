package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// physics applies one frame of motion and collision rules.
type physics struct {
	cfg *config.JumperConfig
}

// steer applies horizontal control. Held keys win over the pointer;
// with neither, friction decays the velocity.
func (ph physics) steer(p *Player, in core.InputFrame) {
	pc := ph.cfg.Physics

	switch ph.direction(in) {
	case -1:
		p.VX -= pc.MoveSpeed
		p.FacingLeft = true
	case 1:
		p.VX += pc.MoveSpeed
		p.FacingLeft = false
	default:
		p.VX *= pc.Friction
		if math.Abs(p.VX) < pc.StopEpsilon {
			p.VX = 0
		}
	}

	p.VX = core.ClampF(p.VX, -pc.MaxMoveSpeed, pc.MaxMoveSpeed)
}

// direction resolves input into -1 (left), +1 (right) or 0.
func (ph physics) direction(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionLeft):
		return -1
	case in.Has(core.ActionRight):
		return 1
	}

	frac, ok := in.Pointer()
	if !ok || math.IsNaN(frac) {
		return 0
	}
	width := ph.cfg.World.Width
	if core.ClampF(frac, 0, 1)*width < width/2 {
		return -1
	}
	return 1
}

// vertical applies rocket thrust or gravity, then ages the shield.
func (ph physics) vertical(p *Player) {
	if p.Rocket.Active() {
		p.VY = ph.cfg.PowerUps.RocketSpeed
		p.Rocket.Tick()
	} else {
		p.VY += ph.cfg.Physics.Gravity
	}
	p.Shield.Tick()
}

// integrate moves the player and wraps it around the side edges.
func (ph physics) integrate(p *Player) {
	p.X += p.VX
	p.Y += p.VY

	width := ph.cfg.World.Width
	if p.X+p.W < 0 {
		p.X = width
	} else if p.X > width {
		p.X = -p.W
	}
}

// movePlatform slides a moving platform and reverses it at the walls.
func (ph physics) movePlatform(p *Platform) {
	if p.Kind != PlatformMoving || p.Dir == 0 {
		return
	}
	p.X += p.Dir * ph.cfg.Platforms.MoveSpeed
	if p.X <= 0 || p.X+p.W >= ph.cfg.World.Width {
		p.Dir = -p.Dir
	}
	p.centerItem()
}

// pickup collects the platform's item if the player overlaps it and
// applies the item's effect on the player. Score effects are left to the
// caller. Returns the collected kind.
func (ph physics) pickup(pl *Player, p *Platform) (ItemKind, bool) {
	it := p.Item
	if it == nil || it.Collected || !pl.Box().Overlaps(it.Box()) {
		return 0, false
	}
	it.Collected = true

	pu := ph.cfg.PowerUps
	switch it.Kind {
	case ItemSpring:
		pl.VY = pu.SpringForce
	case ItemRocket:
		pl.Rocket.Activate(pu.RocketDuration)
	case ItemShield:
		pl.Shield.Activate(pu.ShieldDuration)
	}
	return it.Kind, true
}

// land bounces a falling player off a solid platform.
// The vertical band is extended by the fall speed plus a tolerance so a
// fast fall cannot skip over a thin platform.
func (ph physics) land(pl *Player, p *Platform) bool {
	if pl.VY <= 0 || !p.Solid() || pl.Rocket.Active() {
		return false
	}
	if !pl.Box().OverlapsX(p.Box()) {
		return false
	}

	bottom := pl.Y + pl.H
	if bottom <= p.Y || bottom >= p.Y+p.H+pl.VY+ph.cfg.Physics.LandingTolerance {
		return false
	}

	pl.VY = ph.cfg.Physics.JumpForce
	if p.Kind == PlatformBreaking {
		p.Broken = true
	}
	return true
}
