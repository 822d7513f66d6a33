package jumper

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	PlatformChar  = '═'
	CrackedChar   = '┄'
	GridChar      = '·'
	FlameChar     = '▼'
	gridSpacing   = 30.0 // World pixels between background grid lines
	hudBarWidth   = 10
	hudRows       = 1
	shieldLeft    = '('
	shieldRight   = ')'
	facingRightCh = '>'
	facingLeftCh  = '<'
)

// viewport maps world coordinates into screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	camera float64
	rows   int
}

func newViewport(dst *core.Screen, cfg worldSize, camera float64) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:     float64(dst.Width()) / cfg.w,
		sy:     float64(rows) / cfg.h,
		camera: camera,
		rows:   rows,
	}
}

type worldSize struct{ w, h float64 }

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((y-v.camera)*v.sy))
}

// span returns the first cell and cell count covering [x, x+w), at least one cell.
func (v viewport) span(x, w float64) (int, int) {
	c0 := v.col(x)
	c1 := int(math.Ceil((x + w) * v.sx))
	return c0, max(c1-c0, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.last
	cfg := g.session.Config()
	v := newViewport(dst, worldSize{cfg.World.Width, cfg.World.Height}, snap.Camera)

	drawGrid(dst, v, cfg.World.Width)

	if snap.State != StateIdle {
		for _, p := range snap.Platforms {
			drawPlatform(dst, v, p, g.bobDY)
		}
		g.drawPlayer(dst, v, snap.Player)
	}

	g.drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "JUMPER", "Enter to start  |  ←/→ to steer")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "P to resume  |  B for the start screen")
	case StateEnded:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawGrid draws fixed vertical and scrolling horizontal grid intersections.
func drawGrid(dst *core.Screen, v viewport, worldW float64) {
	offset := math.Mod(-v.camera, gridSpacing)
	for y := offset; y*v.sy < float64(v.rows); y += gridSpacing {
		row := hudRows + int(math.Floor(y*v.sy))
		for x := 0.0; x <= worldW; x += gridSpacing {
			dst.SetColored(v.col(x), row, GridChar, core.ColorGray)
		}
	}
}

func platformStyle(p Platform) (rune, core.Color) {
	switch p.Kind {
	case PlatformMoving:
		return PlatformChar, core.ColorCyan
	case PlatformBreaking:
		return CrackedChar, core.ColorYellow
	default:
		return PlatformChar, core.ColorGreen
	}
}

func itemColor(k ItemKind) core.Color {
	switch k {
	case ItemSpring:
		return core.ColorBrightGreen
	case ItemRocket:
		return core.ColorRed
	case ItemShield:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightYellow
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform, bob float32) {
	if !p.Broken {
		ch, color := platformStyle(p)
		x, w := v.span(p.X, p.W)
		dst.DrawHLine(x, v.row(p.Y), w, ch, color)
	}

	if it := p.Item; it != nil && !it.Collected {
		col := v.col(it.X + it.W/2)
		row := v.row(it.Y+it.H/2) + int(math.Round(float64(bob)))
		dst.SetColored(col, row, it.Kind.Glyph(), itemColor(it.Kind))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, p Player) {
	x, w := v.span(p.X, p.W)
	top := v.row(p.Y)
	h := max(int(math.Round(p.H*v.sy)), 1)

	dst.DrawRect(core.NewRect(x, top, w, h), PlayerChar, core.ColorBrightGreen)

	eye, eyeX := facingRightCh, x+w-1
	if p.FacingLeft {
		eye, eyeX = facingLeftCh, x
	}
	dst.SetColored(eyeX, top, eye, core.ColorWhite)

	if p.Shield.Active() {
		for dy := 0; dy < h; dy++ {
			dst.SetColored(x-1, top+dy, shieldLeft, core.ColorBrightCyan)
			dst.SetColored(x+w, top+dy, shieldRight, core.ColorBrightCyan)
		}
	}

	if p.Rocket.Active() {
		flame := core.ColorOrange
		if g.frames/4%2 == 0 {
			flame = core.ColorRed
		}
		dst.SetColored(x+w/2, top+h, FlameChar, flame)
	}
}

// drawHUD draws score and power-up bars on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	pu := g.session.Config().PowerUps
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	x := 16
	if r := snap.Player.Rocket; r.Active() {
		x = drawBar(dst, x, "R", r.Remaining(), pu.RocketDuration, core.ColorRed)
	}
	if s := snap.Player.Shield; s.Active() {
		drawBar(dst, x, "S", s.Remaining(), pu.ShieldDuration, core.ColorBrightCyan)
	}
}

func drawBar(dst *core.Screen, x int, label string, remaining, total int, color core.Color) int {
	filled := 0
	if total > 0 {
		filled = core.Clamp(remaining*hudBarWidth/total, 0, hudBarWidth)
	}
	bar := label + "[" + strings.Repeat("█", filled) + strings.Repeat(" ", hudBarWidth-filled) + "]"
	dst.DrawTextColored(x, 0, bar, color)
	return x + len([]rune(bar)) + 1
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}
