package pong

// TrackBall computes the computer paddle's velocity for this tick.
//
// The paddle chases the ball's y at a fixed step whenever its center is more
// than the deadband away from it. Inside the deadband the current velocity
// is returned unchanged, so the paddle keeps coasting with whatever it had.
func TrackBall(ballY, centerY, current float64, prm Params) float64 {
	switch {
	case centerY < ballY-prm.AIDeadband:
		return prm.AIStep
	case centerY > ballY+prm.AIDeadband:
		return -prm.AIStep
	default:
		return current
	}
}
