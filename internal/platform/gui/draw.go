package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

const gridSpacing = 30

var (
	backgroundColor = color.RGBA{0xfa, 0xf8, 0xef, 0xff}
	gridColor       = color.RGBA{0xe0, 0xea, 0xf0, 0xff}
	playerColor     = color.RGBA{0x8b, 0xc3, 0x4a, 0xff}
	eyeColor        = color.RGBA{0x21, 0x21, 0x21, 0xff}
	rocketColor     = color.RGBA{0xf4, 0x43, 0x36, 0xff}
	flameColor      = color.RGBA{0xff, 0x98, 0x00, 0xff}
	shieldColor     = color.RGBA{0x03, 0xa9, 0xf4, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0x99}
)

func platformColor(k jumper.PlatformKind) color.RGBA {
	switch k {
	case jumper.PlatformMoving:
		return color.RGBA{0x29, 0x79, 0xff, 0xff}
	case jumper.PlatformBreaking:
		return color.RGBA{0x8d, 0x6e, 0x63, 0xff}
	default:
		return color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	}
}

func itemColor(k jumper.ItemKind) color.RGBA {
	switch k {
	case jumper.ItemSpring:
		return color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
	case jumper.ItemRocket:
		return rocketColor
	case jumper.ItemShield:
		return shieldColor
	default:
		return color.RGBA{0xff, 0xc1, 0x07, 0xff}
	}
}

// Draw renders the last snapshot.
func (f *Frontend) Draw(screen *ebiten.Image) {
	snap := f.game.Snapshot()
	cfg := f.game.Config()

	screen.Fill(backgroundColor)
	drawGrid(screen, cfg, snap.Camera)

	if snap.State != jumper.StateIdle {
		for _, p := range snap.Platforms {
			f.drawPlatform(screen, p, snap.Camera)
		}
		f.drawPlayer(screen, snap.Player, snap.Camera)
		drawHUD(screen, cfg, snap)
	}

	if lines := overlayLines(snap.State, snap.Score, f.scores.Best(), f.scores.NewRecord()); len(lines) > 0 {
		drawOverlay(screen, cfg, lines)
	}
}

// drawGrid draws fixed vertical lines and horizontal lines that scroll with the camera.
func drawGrid(screen *ebiten.Image, cfg config.JumperConfig, camera float64) {
	w, h := float32(cfg.World.Width), float32(cfg.World.Height)
	for x := float32(0); x <= w; x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	offset := float32(math.Mod(-camera, gridSpacing))
	for y := offset; y <= h; y += gridSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}

func (f *Frontend) drawPlatform(screen *ebiten.Image, p jumper.Platform, camera float64) {
	y := float32(p.Y - camera)
	if !p.Broken {
		vector.DrawFilledRect(screen, float32(p.X), y, float32(p.W), float32(p.H), platformColor(p.Kind), true)
	}

	it := p.Item
	if it == nil || it.Collected {
		return
	}
	ix, iy := float32(it.X), float32(it.Y-camera)+f.bobDY
	iw, ih := float32(it.W), float32(it.H)
	c := itemColor(it.Kind)
	switch it.Kind {
	case jumper.ItemCoin, jumper.ItemShield:
		vector.DrawFilledCircle(screen, ix+iw/2, iy+ih/2, iw/2, c, true)
	case jumper.ItemRocket:
		vector.DrawFilledRect(screen, ix+iw/4, iy, iw/2, ih, c, true)
	default:
		// Coil: three bars.
		for i := range 3 {
			vector.DrawFilledRect(screen, ix, iy+float32(i)*ih/3, iw, ih/6, c, true)
		}
	}
}

func (f *Frontend) drawPlayer(screen *ebiten.Image, p jumper.Player, camera float64) {
	x, y := float32(p.X), float32(p.Y-camera)
	w, h := float32(p.W), float32(p.H)
	cx, cy := x+w/2, y+h/2

	if p.Shield.Active() {
		vector.StrokeCircle(screen, cx, cy, w*0.8, 3, shieldColor, true)
	}

	if p.Rocket.Active() {
		vector.DrawFilledRect(screen, cx-10, y+h-8, 20, 20, rocketColor, true)
		flame := flameColor
		if f.frames/4%2 == 0 {
			flame = rocketColor
		}
		vector.DrawFilledRect(screen, cx-5, y+h+12, 10, 10+float32(f.frames%3)*4, flame, true)
	}

	vector.DrawFilledRect(screen, x, y, w, h, playerColor, true)

	eyeX := x + w*0.7
	if p.FacingLeft {
		eyeX = x + w*0.3
	}
	vector.DrawFilledCircle(screen, eyeX, y+h*0.3, 4, eyeColor, true)
}

// drawHUD draws the score and power-up bars in the top-left corner.
func drawHUD(screen *ebiten.Image, cfg config.JumperConfig, snap jumper.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 20, 28)

	pu := cfg.PowerUps
	if r := snap.Player.Rocket; r.Active() && pu.RocketDuration > 0 {
		w := float32(r.Remaining()) / float32(pu.RocketDuration) * 80
		vector.DrawFilledRect(screen, 20, 55, w, 6, rocketColor, false)
	}
	if s := snap.Player.Shield; s.Active() && pu.ShieldDuration > 0 {
		w := float32(s.Remaining()) / float32(pu.ShieldDuration) * 80
		vector.DrawFilledRect(screen, 20, 65, w, 6, shieldColor, false)
	}
}

// overlayLines returns the text shown over the playfield for a state.
func overlayLines(state jumper.SessionState, score, best int, newRecord bool) []string {
	switch state {
	case jumper.StateIdle:
		lines := []string{"J U M P E R", "", "Enter or click to play", "Arrows / A D to steer"}
		if best > 0 {
			lines = append(lines, "", fmt.Sprintf("Record: %d", best))
		}
		return lines
	case jumper.StatePaused:
		return []string{"PAUSED", "", "P to resume", "B for the main menu"}
	case jumper.StateEnded:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Distance: %d", score)}
		if newRecord {
			lines = append(lines, "NEW RECORD!")
		} else if best > 0 {
			lines = append(lines, fmt.Sprintf("Best: %d", best))
		}
		return append(lines, "", "R or click to retry", "B for the main menu")
	}
	return nil
}

// Cell size of the ebitenutil debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

func drawOverlay(screen *ebiten.Image, cfg config.JumperConfig, lines []string) {
	w, h := float32(cfg.World.Width), float32(cfg.World.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	top := int(h)/2 - len(lines)*debugGlyphH/2
	for i, line := range lines {
		x := (int(w) - len([]rune(line))*debugGlyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugGlyphH)
	}
}
