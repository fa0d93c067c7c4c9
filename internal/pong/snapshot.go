package pong

// Snapshot is a read-only copy of a match for renderers and spectators.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64  `json:"tick" msgpack:"tick"`
	State       string  `json:"state" msgpack:"state"`
	FieldW      float64 `json:"field_w" msgpack:"field_w"`
	FieldH      float64 `json:"field_h" msgpack:"field_h"`
	PaddleW     float64 `json:"paddle_w" msgpack:"paddle_w"`
	PaddleH     float64 `json:"paddle_h" msgpack:"paddle_h"`
	BallSize    float64 `json:"ball_size" msgpack:"ball_size"`
	BallX       float64 `json:"ball_x" msgpack:"ball_x"`
	BallY       float64 `json:"ball_y" msgpack:"ball_y"`
	BallDX      float64 `json:"ball_dx" msgpack:"ball_dx"`
	BallDY      float64 `json:"ball_dy" msgpack:"ball_dy"`
	PlayerY     float64 `json:"player_y" msgpack:"player_y"`
	AIY         float64 `json:"ai_y" msgpack:"ai_y"`
	PlayerScore int     `json:"player_score" msgpack:"player_score"`
	AIScore     int     `json:"ai_score" msgpack:"ai_score"`
	Winner      string  `json:"winner,omitempty" msgpack:"winner,omitempty"`
}

// Snapshot returns the current match state as a Snapshot.
func (m *Match) Snapshot() Snapshot {
	w := m.world
	snap := Snapshot{
		Tick:        m.ticks,
		State:       m.state.String(),
		FieldW:      w.Params.FieldW,
		FieldH:      w.Params.FieldH,
		PaddleW:     w.Params.PaddleW,
		PaddleH:     w.Params.PaddleH,
		BallSize:    w.Params.BallSize,
		BallX:       w.Ball.X,
		BallY:       w.Ball.Y,
		BallDX:      w.Ball.DX,
		BallDY:      w.Ball.DY,
		PlayerY:     w.Player.Y,
		AIY:         w.AI.Y,
		PlayerScore: w.Player.Score,
		AIScore:     w.AI.Score,
	}
	if winner, over := m.Winner(); over {
		snap.Winner = winner.String()
	}
	return snap
}
