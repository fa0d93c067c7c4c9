package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// KeyDown sets the player paddle moving. Only ActionUp and ActionDown have
// an effect; anything else is ignored.
func (m *Match) KeyDown(a core.Action) {
	switch a {
	case core.ActionUp:
		m.world.Player.VY = -m.world.Params.KeyStep
	case core.ActionDown:
		m.world.Player.VY = m.world.Params.KeyStep
	}
}

// KeyUp stops the player paddle when either movement key is released.
func (m *Match) KeyUp(a core.Action) {
	if a == core.ActionUp || a == core.ActionDown {
		m.world.Player.VY = 0
	}
}

// PointerMove centers the player paddle on the pointer's y. The position is
// left unclamped until the next tick. Ignored unless the match is playing.
func (m *Match) PointerMove(y float64) {
	if m.state != StatePlaying {
		return
	}
	m.world.Player.Y = y - m.world.Params.PaddleH/2
}
