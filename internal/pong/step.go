package pong

// Event is something the simulation step or the match reports to listeners.
type Event interface {
	pongEvent()
}

// PointScored is emitted when the ball leaves the field past a paddle.
type PointScored struct {
	Scorer Side
}

func (PointScored) pongEvent() {}

// PaddleHit is emitted when the ball rebounds off a paddle.
type PaddleHit struct {
	Side Side
}

func (PaddleHit) pongEvent() {}

// WallBounce is emitted when the ball reflects off the top or bottom wall.
type WallBounce struct{}

func (WallBounce) pongEvent() {}

// MatchWon is emitted by the match when a side reaches the winning score.
type MatchWon struct {
	Winner Side
}

func (MatchWon) pongEvent() {}

// Step advances the world by one tick and returns what happened.
//
// Order matters and is part of the contract: paddles move and clamp first,
// then the ball moves, then the wall check, then the paddle check against
// the paddle on the ball's half of the field, then scoring.
func (w *World) Step() []Event {
	var events []Event
	prm := w.Params

	// Player paddle
	w.Player.Y = ClampToField(w.Player.Y+w.Player.VY, prm.PaddleH, prm.FieldH)

	// Computer paddle
	w.AI.VY = TrackBall(w.Ball.Y, w.AI.CenterY(prm), w.AI.VY, prm)
	w.AI.Y = ClampToField(w.AI.Y+w.AI.VY, prm.PaddleH, prm.FieldH)

	// Ball
	w.Ball.X += w.Ball.DX
	w.Ball.Y += w.Ball.DY

	// Reflect only; an overshooting ball is not pulled back inside.
	if w.Ball.Y < 0 || w.Ball.Y > prm.FieldH-prm.BallSize {
		w.Ball.DY = -w.Ball.DY
		events = append(events, WallBounce{})
	}

	side, paddle := SidePlayer, &w.Player
	if w.Ball.X >= prm.FieldW/2 {
		side, paddle = SideAI, &w.AI
	}

	if w.Ball.Box(prm.BallSize).Overlaps(paddle.Rect(prm)) {
		w.Ball.DX = -w.Ball.DX

		offset := w.Ball.Y + prm.BallSize/2 - paddle.CenterY(prm)
		w.Ball.DY = offset * prm.Deflection

		w.Ball.DX *= prm.Acceleration
		w.Ball.DY *= prm.Acceleration
		events = append(events, PaddleHit{Side: side})
	}

	if w.Ball.X < 0 {
		events = append(events, PointScored{Scorer: SideAI})
	} else if w.Ball.X > prm.FieldW-prm.BallSize {
		events = append(events, PointScored{Scorer: SidePlayer})
	}

	return events
}
