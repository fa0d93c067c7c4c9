package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(DefaultParams())

	if w.Player.X != 0 || w.Player.Y != 150 {
		t.Errorf("player paddle at (%g, %g), expected (0, 150)", w.Player.X, w.Player.Y)
	}
	if w.AI.X != 790 || w.AI.Y != 150 {
		t.Errorf("AI paddle at (%g, %g), expected (790, 150)", w.AI.X, w.AI.Y)
	}
	if w.Ball.X != 400 || w.Ball.Y != 200 {
		t.Errorf("ball at (%g, %g), expected (400, 200)", w.Ball.X, w.Ball.Y)
	}
	if w.Ball.DX != 5 || w.Ball.DY != 5 || w.Ball.Speed != 5 {
		t.Errorf("ball velocity (%g, %g) speed %g, expected (5, 5) speed 5", w.Ball.DX, w.Ball.DY, w.Ball.Speed)
	}
	if w.Player.Score != 0 || w.AI.Score != 0 {
		t.Error("scores should start at zero")
	}
}

func TestNewParamsFromConfig(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Match.WinScore = 11
	cfg.AI.Deadband = 20

	prm := NewParams(cfg)
	if prm.WinScore != 11 || prm.AIDeadband != 20 {
		t.Errorf("NewParams did not copy overrides: %+v", prm)
	}
	if prm.Deflection != 0.35 || prm.Acceleration != 1.05 {
		t.Errorf("NewParams lost defaults: %+v", prm)
	}
}

func TestClampToField(t *testing.T) {
	tests := []struct {
		name              string
		pos, size, extent float64
		expected          float64
	}{
		{"inside", 120, 100, 400, 120},
		{"above top", -7, 100, 400, 0},
		{"below bottom", 307, 100, 400, 300},
		{"at top", 0, 100, 400, 0},
		{"at bottom", 300, 100, 400, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampToField(tc.pos, tc.size, tc.extent); got != tc.expected {
				t.Errorf("ClampToField(%g, %g, %g) = %g, expected %g", tc.pos, tc.size, tc.extent, got, tc.expected)
			}
		})
	}
}

func TestServeBall(t *testing.T) {
	w := NewWorld(DefaultParams())
	rng := rand.New(rand.NewSource(7))

	seen := map[[2]float64]bool{}
	for i := 0; i < 200; i++ {
		w.Ball.DX, w.Ball.DY = 12.3, -0.4 // Mid-rally values
		w.ServeBall(rng)

		if w.Ball.X != 395 || w.Ball.Y != 195 {
			t.Fatalf("serve %d: ball at (%g, %g), expected (395, 195)", i, w.Ball.X, w.Ball.Y)
		}
		if math.Abs(w.Ball.DX) != 5 || math.Abs(w.Ball.DY) != 5 {
			t.Fatalf("serve %d: velocity (%g, %g), expected magnitude 5 per axis", i, w.Ball.DX, w.Ball.DY)
		}
		seen[[2]float64{math.Copysign(1, w.Ball.DX), math.Copysign(1, w.Ball.DY)}] = true
	}

	if len(seen) != 4 {
		t.Errorf("expected all four diagonal directions over 200 serves, saw %v", seen)
	}
}

func TestServeBallDeterministic(t *testing.T) {
	w1 := NewWorld(DefaultParams())
	w2 := NewWorld(DefaultParams())
	rng1 := rand.New(rand.NewSource(99))
	rng2 := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		w1.ServeBall(rng1)
		w2.ServeBall(rng2)
		if w1.Ball != w2.Ball {
			t.Fatalf("serve %d differs with same seed: %+v vs %+v", i, w1.Ball, w2.Ball)
		}
	}
}

func TestBallMagnitude(t *testing.T) {
	b := Ball{DX: 3, DY: -4}
	if b.Magnitude() != 5 {
		t.Errorf("Magnitude() = %g, expected 5", b.Magnitude())
	}
}
