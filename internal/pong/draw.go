package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Canvas is a drawing surface in field units.
type Canvas interface {
	DrawField(width, height float64)
	DrawPaddle(r core.RectF)
	DrawBall(x, y, size float64)
}

// Draw paints the current world. Frontends call it every frame in every
// state, so a paused or finished match keeps showing its last position.
func (m *Match) Draw(c Canvas) {
	w := m.world
	c.DrawField(w.Params.FieldW, w.Params.FieldH)
	c.DrawPaddle(w.Player.Rect(w.Params))
	c.DrawPaddle(w.AI.Rect(w.Params))
	c.DrawBall(w.Ball.X, w.Ball.Y, w.Params.BallSize)
}
