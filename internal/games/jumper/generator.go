package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Generator spawns platform rows and their items from a seeded RNG.
// Every random draw goes through rng in a fixed order, so a seed fully
// determines the level for a given score history.
type Generator struct {
	rng        *rand.Rand
	cfg        *config.JumperConfig
	difficulty *config.DifficultyManager
	tick       int // Simulation tick, used by time-based progression
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg *config.JumperConfig, diff *config.DifficultyManager) *Generator {
	g := &Generator{
		cfg:        cfg,
		difficulty: diff,
	}
	g.Reset(seed)
	return g
}

// Reset restarts the RNG sequence.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
}

// Level returns the difficulty level used for rows spawned at this score.
func (g *Generator) Level(score int) float64 {
	return g.difficulty.Level(score, g.tick)
}

// SpawnRow creates one platform whose top edge is at y.
// Draw order: kind, x, item chance, item kind, direction.
func (g *Generator) SpawnRow(y float64, score int) Platform {
	pc := g.cfg.Platforms
	level := g.Level(score)

	kind := PlatformNormal
	roll := g.rng.Float64()
	if roll < level*pc.BreakingShare {
		kind = PlatformBreaking
	} else if roll < level*pc.MovingShare {
		kind = PlatformMoving
	}

	x := g.rng.Float64() * (g.cfg.World.Width - pc.Width)
	p := Platform{X: x, Y: y, W: pc.Width, H: pc.Height, Kind: kind}

	if kind != PlatformBreaking && g.rng.Float64() < g.cfg.Items.SpawnChance {
		size := g.cfg.Items.Size
		p.Item = &Item{
			Kind: g.rollItem(),
			Y:    y - size,
			W:    size,
			H:    size,
		}
		p.centerItem()
	}

	p.Dir = 1
	if g.rng.Float64() < 0.5 {
		p.Dir = -1
	}
	return p
}

func (g *Generator) rollItem() ItemKind {
	ic := g.cfg.Items
	switch roll := g.rng.Float64(); {
	case roll < ic.RocketBelow:
		return ItemRocket
	case roll < ic.SpringBelow:
		return ItemSpring
	case roll < ic.ShieldBelow:
		return ItemShield
	default:
		return ItemCoin
	}
}

// Populate builds the starting level: a normal platform centred under the
// player's spawn point, then rows upward at equal spacing.
func (g *Generator) Populate(score int) []Platform {
	w := g.cfg.World
	pc := g.cfg.Platforms

	platforms := make([]Platform, 0, pc.Count)
	platforms = append(platforms, Platform{
		X:    w.Width/2 - pc.Width/2,
		Y:    w.Height - w.FirstPlatformLift,
		W:    pc.Width,
		H:    pc.Height,
		Kind: PlatformNormal,
		Dir:  1,
	})

	spacing := g.cfg.RowSpacing()
	for i := 1; i < pc.Count; i++ {
		platforms = append(platforms, g.SpawnRow(w.Height-float64(i)*spacing, score))
	}
	return platforms
}

// Replenish drops platforms that fell past the prune line below the
// viewport, then spawns rows above the highest remaining platform until
// the target count is restored. The slice is filtered in place.
func (g *Generator) Replenish(platforms []Platform, cameraY float64, score int) []Platform {
	limit := cameraY + g.cfg.World.Height + g.cfg.World.PruneMargin

	kept := platforms[:0]
	for _, p := range platforms {
		if p.Y < limit {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(platforms); i++ {
		platforms[i] = Platform{} // release dropped items
	}

	spacing := g.cfg.RowSpacing()
	for len(kept) < g.cfg.Platforms.Count {
		top := cameraY + g.cfg.World.Height
		if len(kept) > 0 {
			top = highest(kept)
		}
		kept = append(kept, g.SpawnRow(top-spacing, score))
	}
	return kept
}

// highest returns the smallest y in a non-empty platform slice.
func highest(platforms []Platform) float64 {
	top := platforms[0].Y
	for _, p := range platforms[1:] {
		top = min(top, p.Y)
	}
	return top
}
