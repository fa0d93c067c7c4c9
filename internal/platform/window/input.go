package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Input is the per-frame input state read by Game.Update.
type Input interface {
	// Pressed returns the actions whose key went down this frame.
	Pressed() []core.Action
	// Released returns the actions whose key went up this frame.
	Released() []core.Action
	// Clicked reports a left mouse press this frame.
	Clicked() bool
	// Cursor returns the pointer position in logical pixels.
	Cursor() (x, y int)
}

// keyBindings maps keyboard keys to actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyW:         core.ActionUp,
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyS:         core.ActionDown,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeySpace:     core.ActionAcknowledge,
	ebiten.KeyEnter:     core.ActionAcknowledge,
	ebiten.KeyQ:         core.ActionQuit,
	ebiten.KeyEscape:    core.ActionQuit,
}

// ebitenInput reads input from the running ebiten loop.
type ebitenInput struct{}

func (ebitenInput) Pressed() []core.Action {
	var actions []core.Action
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := keyBindings[k]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

func (ebitenInput) Released() []core.Action {
	var actions []core.Action
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if a, ok := keyBindings[k]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

func (ebitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}
