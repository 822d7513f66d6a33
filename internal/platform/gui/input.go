package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// inputState is the raw device state sampled once per update.
type inputState struct {
	left, right bool // Held
	confirm     bool
	pause       bool
	restart     bool
	back        bool
	quit        bool

	pointerDown bool
	pointerX    int
	tapped      bool // A new press or touch this update
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples keyboard, mouse and touch.
func readInput() inputState {
	in := inputState{
		left:    anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		right:   anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		confirm: anyKeyJustPressed(ebiten.KeyEnter, ebiten.KeySpace),
		pause:   anyKeyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		restart: anyKeyJustPressed(ebiten.KeyR),
		back:    anyKeyJustPressed(ebiten.KeyB),
		quit:    anyKeyJustPressed(ebiten.KeyQ),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.pointerDown = true
		in.pointerX, _ = ebiten.CursorPosition()
	}
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		in.pointerDown = true
		in.pointerX, _ = ebiten.TouchPosition(touches[0])
	}
	in.tapped = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0

	return in
}

// frame converts sampled input into an InputFrame for a world of the given
// width. A tap outside a run starts one; during a run it steers.
func (in inputState) frame(width float64, inRun bool) core.InputFrame {
	f := core.NewInputFrame()
	if in.left {
		f.Set(core.ActionLeft)
	}
	if in.right {
		f.Set(core.ActionRight)
	}
	if in.confirm || (in.tapped && !inRun) {
		f.Set(core.ActionConfirm)
	}
	if in.pause {
		f.Set(core.ActionPause)
	}
	if in.restart {
		f.Set(core.ActionRestart)
	}
	if in.back {
		f.Set(core.ActionBack)
	}
	if in.pointerDown && inRun && width > 0 {
		f.SetPointer(float64(in.pointerX) / width)
	}
	return f
}
