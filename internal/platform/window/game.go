// Package window runs pong in a desktop window using ebiten. Ebiten calls
// Update at a fixed rate and Draw once per frame; the match only ticks while
// its scheduler is active.
package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Heights of the score bar above and the status bar below the field.
const (
	headerH = 30
	footerH = 30
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	fieldColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	lineColor       = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	paddleColor     = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	ballColor       = color.RGBA{R: 250, G: 210, B: 60, A: 255}
)

// Publisher receives a snapshot after every simulated tick.
type Publisher interface {
	Publish(snap pong.Snapshot)
}

// Options configures a windowed match.
type Options struct {
	Logger    *log.Logger
	Listeners []pong.Listener
	Publisher Publisher
}

// activeScheduler implements pong.Scheduler as a flag checked every
// Update. Start while active changes nothing.
type activeScheduler struct {
	active bool
}

func (s *activeScheduler) Start() { s.active = true }
func (s *activeScheduler) Stop()  { s.active = false }

type statusLine struct {
	score  string
	status string
}

func (s *statusLine) ShowScore(player, ai int) { s.score = pong.ScoreText(player, ai) }
func (s *statusLine) ShowStatus(msg string)    { s.status = msg }

// Game implements ebiten.Game around one match.
type Game struct {
	match     *pong.Match
	sched     *activeScheduler
	line      *statusLine
	input     Input
	publisher Publisher
	canvas    imageCanvas
	width     int
	height    int
	cursorY   int
}

// NewGame creates a game reading input from the ebiten loop.
func NewGame(prm pong.Params, seed int64, opts Options) *Game {
	return newGame(prm, seed, ebitenInput{}, opts)
}

func newGame(prm pong.Params, seed int64, in Input, opts Options) *Game {
	line := &statusLine{}
	sched := &activeScheduler{}
	match := pong.NewMatch(prm, seed, line, sched)
	match.SetLogger(opts.Logger)
	for _, l := range opts.Listeners {
		match.AddListener(l)
	}

	return &Game{
		match:     match,
		sched:     sched,
		line:      line,
		input:     in,
		publisher: opts.Publisher,
		canvas:    imageCanvas{offsetY: headerH},
		width:     int(prm.FieldW),
		height:    int(prm.FieldH) + headerH + footerH,
		cursorY:   -1,
	}
}

// Match returns the match driven by the game.
func (g *Game) Match() *pong.Match {
	return g.match
}

// Update applies this frame's input and advances the match one tick while
// it is scheduled.
func (g *Game) Update() error {
	for _, a := range g.input.Pressed() {
		switch a {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionAcknowledge:
			g.match.Acknowledge()
		default:
			g.match.KeyDown(a)
		}
	}
	for _, a := range g.input.Released() {
		g.match.KeyUp(a)
	}
	if g.input.Clicked() {
		g.match.Acknowledge()
	}

	if _, y := g.input.Cursor(); y != g.cursorY {
		g.cursorY = y
		g.match.PointerMove(float64(y - headerH))
	}

	if !g.sched.active {
		return nil
	}
	g.match.Tick()
	if g.publisher != nil {
		g.publisher.Publish(g.match.Snapshot())
	}
	return nil
}

// Draw renders the field in every state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.canvas.dst = screen
	g.match.Draw(&g.canvas)

	ebitenutil.DebugPrintAt(screen, g.line.score, g.width/2-len(g.line.score)*3, 8)
	ebitenutil.DebugPrintAt(screen, g.line.status, g.width/2-len(g.line.status)*3, g.height-footerH+8)
}

// Layout returns the fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it is closed.
func Run(prm pong.Params, cfg core.RuntimeConfig, opts Options) error {
	g := NewGame(prm, cfg.Seed, opts)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
