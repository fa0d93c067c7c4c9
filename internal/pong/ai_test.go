package pong

import "testing"

func TestTrackBall(t *testing.T) {
	prm := DefaultParams()

	tests := []struct {
		name     string
		ballY    float64
		centerY  float64
		current  float64
		expected float64
	}{
		{"ball well below", 200, 150, 0, 4},
		{"ball well above", 200, 250, 0, -4},
		{"just outside deadband below", 200, 184.9, -4, 4},
		{"just outside deadband above", 200, 215.1, 4, -4},
		{"deadband edge below keeps velocity", 200, 185, -4, -4},
		{"deadband edge above keeps velocity", 200, 215, 4, 4},
		{"centered keeps zero", 200, 200, 0, 0},
		{"centered keeps coasting", 200, 200, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TrackBall(tc.ballY, tc.centerY, tc.current, prm)
			if got != tc.expected {
				t.Errorf("TrackBall(%g, %g, %g) = %g, expected %g", tc.ballY, tc.centerY, tc.current, got, tc.expected)
			}
		})
	}
}

func TestAIVelocityEveryTick(t *testing.T) {
	m, _, _ := newPlayingMatch(t)
	prm := m.Params()

	for i := 0; i < 2000 && m.State() == StatePlaying; i++ {
		before := m.world
		m.Tick()
		if m.State() != StatePlaying {
			break
		}

		center := before.AI.CenterY(prm)
		expected := before.AI.VY
		switch {
		case before.Ball.Y > center+prm.AIDeadband:
			expected = prm.AIStep
		case before.Ball.Y < center-prm.AIDeadband:
			expected = -prm.AIStep
		}
		if m.world.AI.VY != expected {
			t.Fatalf("tick %d: AI velocity %g, expected %g (ball y %g, center %g)",
				i, m.world.AI.VY, expected, before.Ball.Y, center)
		}
	}
}
