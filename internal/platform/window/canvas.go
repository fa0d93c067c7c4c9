package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// imageCanvas draws a match onto an ebiten image, one pixel per field
// unit, shifted down by offsetY.
type imageCanvas struct {
	dst     *ebiten.Image
	offsetY float32
}

func (c *imageCanvas) DrawField(width, height float64) {
	w, h := float32(width), float32(height)
	vector.DrawFilledRect(c.dst, 0, c.offsetY, w, h, fieldColor, false)

	const dash = 10
	for y := float32(0); y < h; y += 2 * dash {
		vector.DrawFilledRect(c.dst, w/2-1, c.offsetY+y, 2, dash, lineColor, false)
	}
}

func (c *imageCanvas) DrawPaddle(r core.RectF) {
	vector.DrawFilledRect(c.dst, float32(r.X), c.offsetY+float32(r.Y), float32(r.W), float32(r.H), paddleColor, false)
}

func (c *imageCanvas) DrawBall(x, y, size float64) {
	half := float32(size / 2)
	vector.DrawFilledCircle(c.dst, float32(x)+half, c.offsetY+float32(y)+half, half, ballColor, true)
}
