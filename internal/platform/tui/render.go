package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fieldCanvas draws a match onto a Screen, scaling field units into the
// cells inside box. It implements pong.Canvas.
type fieldCanvas struct {
	screen *core.Screen
	box    core.Rect // Border, in cells
	fieldW float64
	fieldH float64
}

func newFieldCanvas(screen *core.Screen, fieldW, fieldH float64) *fieldCanvas {
	return &fieldCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// SetBox places the field border on the screen.
func (c *fieldCanvas) SetBox(box core.Rect) {
	c.box = box
}

func (c *fieldCanvas) inner() core.Rect {
	return core.NewRect(c.box.X+1, c.box.Y+1, max(c.box.W-2, 0), max(c.box.H-2, 0))
}

func (c *fieldCanvas) scale() (sx, sy float64) {
	in := c.inner()
	return float64(in.W) / c.fieldW, float64(in.H) / c.fieldH
}

func (c *fieldCanvas) DrawField(width, height float64) {
	c.fieldW, c.fieldH = width, height
	c.screen.DrawBox(c.box, core.ColorGray)

	in := c.inner()
	mid := in.X + in.W/2
	for y := in.Y; y < in.Bottom(); y += 2 {
		c.screen.SetColored(mid, y, '┊', core.ColorGray)
	}
}

func (c *fieldCanvas) DrawPaddle(r core.RectF) {
	c.screen.DrawRect(c.cells(r), '█', core.ColorBrightWhite)
}

func (c *fieldCanvas) DrawBall(x, y, size float64) {
	sx, sy := c.scale()
	in := c.inner()
	cx := core.Clamp(int((x+size/2)*sx), 0, in.W-1)
	cy := core.Clamp(int((y+size/2)*sy), 0, in.H-1)
	c.screen.SetColored(in.X+cx, in.Y+cy, '●', core.ColorYellow)
}

// cells converts a box in field units to the cells it covers. Every box
// covers at least one cell.
func (c *fieldCanvas) cells(r core.RectF) core.Rect {
	sx, sy := c.scale()
	in := c.inner()

	x0 := core.Clamp(int(math.Floor(r.X*sx)), 0, in.W-1)
	x1 := core.Clamp(int(math.Ceil(r.Right()*sx)), x0+1, in.W)
	y0 := core.Clamp(int(math.Floor(r.Y*sy)), 0, in.H-1)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*sy)), y0+1, in.H)

	return core.NewRect(in.X+x0, in.Y+y0, x1-x0, y1-y0)
}

// FieldY maps a screen row to the field y coordinate at the middle of that
// row. Rows outside the field map outside [0, fieldH].
func (c *fieldCanvas) FieldY(row int) float64 {
	_, sy := c.scale()
	if sy == 0 {
		return 0
	}
	return (float64(row-c.inner().Y) + 0.5) / sy
}
