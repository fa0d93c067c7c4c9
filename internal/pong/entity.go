// Package pong implements a two-paddle volley match against a reactive
// computer opponent. The package owns the entity records, the per-tick
// simulation step and the match state machine. Rendering, timing and raw
// input decoding are left to the platform frontends, which talk to a Match
// through the Display, Scheduler, Canvas and Listener collaborators.
package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one of the two paddles.
type Side int

const (
	SidePlayer Side = iota // Left paddle, controlled by the user
	SideAI                 // Right paddle, controlled by the computer
)

// String returns the name shown to the user.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Params holds the fixed constants of a match, in field units.
type Params struct {
	FieldW, FieldH   float64
	PaddleW, PaddleH float64
	BallSize         float64
	BaseSpeed        float64
	Deflection       float64
	Acceleration     float64
	AIStep           float64
	AIDeadband       float64
	KeyStep          float64
	WinScore         int
}

// NewParams builds match constants from a loaded configuration.
func NewParams(cfg config.PongConfig) Params {
	return Params{
		FieldW:       cfg.Field.Width,
		FieldH:       cfg.Field.Height,
		PaddleW:      cfg.Paddle.Width,
		PaddleH:      cfg.Paddle.Height,
		BallSize:     cfg.Ball.Size,
		BaseSpeed:    cfg.Ball.BaseSpeed,
		Deflection:   cfg.Ball.Deflection,
		Acceleration: cfg.Ball.Acceleration,
		AIStep:       cfg.AI.Step,
		AIDeadband:   cfg.AI.Deadband,
		KeyStep:      cfg.Input.KeyStep,
		WinScore:     cfg.Match.WinScore,
	}
}

// DefaultParams returns the constants of the default configuration.
func DefaultParams() Params {
	return NewParams(config.DefaultPongConfig())
}

// Paddle is a vertically moving rectangle pinned to one edge of the field.
// Y is the top edge.
type Paddle struct {
	X     float64
	Y     float64
	VY    float64 // Signed vertical speed in units per tick
	Score int
}

// Rect returns the paddle's collision box.
func (p Paddle) Rect(prm Params) core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: prm.PaddleW, H: prm.PaddleH}
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY(prm Params) float64 {
	return p.Y + prm.PaddleH/2
}

// Ball is the free-moving entity bouncing between the paddles.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Speed  float64 // Per-axis speed assigned on every serve
}

// Box returns the ball's collision box, anchored at (X, Y).
func (b Ball) Box(size float64) core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: size, H: size}
}

// Magnitude returns the length of the velocity vector.
func (b Ball) Magnitude() float64 {
	return math.Hypot(b.DX, b.DY)
}

// World is the complete mutable entity state of a match.
type World struct {
	Params Params
	Player Paddle
	AI     Paddle
	Ball   Ball
}

// NewWorld places both paddles at mid-height on their edges and the ball at
// the field center, heading down-right at base speed.
func NewWorld(prm Params) World {
	paddleY := prm.FieldH/2 - prm.PaddleH/2
	return World{
		Params: prm,
		Player: Paddle{X: 0, Y: paddleY},
		AI:     Paddle{X: prm.FieldW - prm.PaddleW, Y: paddleY},
		Ball: Ball{
			X:     prm.FieldW / 2,
			Y:     prm.FieldH / 2,
			DX:    prm.BaseSpeed,
			DY:    prm.BaseSpeed,
			Speed: prm.BaseSpeed,
		},
	}
}

// ClampToField keeps an entity of the given size inside [0, extent].
func ClampToField(position, size, extent float64) float64 {
	return core.ClampF(position, 0, extent-size)
}

// ServeBall puts the ball back at the field center with a fresh diagonal
// direction. Each axis picks its sign independently.
func (w *World) ServeBall(rng *rand.Rand) {
	prm := w.Params
	w.Ball.X = prm.FieldW/2 - prm.BallSize/2
	w.Ball.Y = prm.FieldH/2 - prm.BallSize/2
	w.Ball.Speed = prm.BaseSpeed

	w.Ball.DX = randomSign(rng) * w.Ball.Speed
	w.Ball.DY = randomSign(rng) * w.Ball.Speed
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
