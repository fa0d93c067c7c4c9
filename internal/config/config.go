// Package config provides YAML-based configuration loading for the pong match.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all tunable constants of a match.
type PongConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	AI     AIConfig     `yaml:"ai"`
	Input  InputConfig  `yaml:"input"`
	Match  MatchConfig  `yaml:"match"`
}

// FieldConfig defines the playing field extent.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle dimensions.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball size and rally physics.
type BallConfig struct {
	Size         float64 `yaml:"size"`
	BaseSpeed    float64 `yaml:"base_speed"`   // Per-axis speed after a serve
	Deflection   float64 `yaml:"deflection"`   // dy per unit of offset from paddle center
	Acceleration float64 `yaml:"acceleration"` // Velocity multiplier per paddle hit
}

// AIConfig defines the opponent controller.
type AIConfig struct {
	Step     float64 `yaml:"step"`     // Paddle speed in units per tick
	Deadband float64 `yaml:"deadband"` // Tolerance around ball y
}

// InputConfig defines player input handling.
type InputConfig struct {
	KeyStep        float64 `yaml:"key_step"`
	TerminalHoldMS int     `yaml:"terminal_hold_ms"` // Synthesized key-up delay for terminals
}

// MatchConfig defines match rules.
type MatchConfig struct {
	WinScore int `yaml:"win_score"`
}

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c PongConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.size", c.Ball.Size},
		{"ball.base_speed", c.Ball.BaseSpeed},
		{"ball.acceleration", c.Ball.Acceleration},
		{"ai.step", c.AI.Step},
		{"input.key_step", c.Input.KeyStep},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %g", p.name, p.val))
		}
	}

	if c.Ball.Deflection < 0 {
		errs = append(errs, fmt.Errorf("config: ball.deflection must not be negative, got %g", c.Ball.Deflection))
	}
	if c.AI.Deadband < 0 {
		errs = append(errs, fmt.Errorf("config: ai.deadband must not be negative, got %g", c.AI.Deadband))
	}
	if c.Input.TerminalHoldMS < 0 {
		errs = append(errs, fmt.Errorf("config: input.terminal_hold_ms must not be negative, got %d", c.Input.TerminalHoldMS))
	}
	if c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("config: paddle.height %g exceeds field.height %g", c.Paddle.Height, c.Field.Height))
	}
	if c.Ball.Size > c.Field.Height || c.Ball.Size > c.Field.Width {
		errs = append(errs, fmt.Errorf("config: ball.size %g does not fit the field", c.Ball.Size))
	}
	if 2*c.Paddle.Width >= c.Field.Width {
		errs = append(errs, fmt.Errorf("config: paddles %g wide leave no room on a field %g wide", c.Paddle.Width, c.Field.Width))
	}
	if c.Match.WinScore < 1 {
		errs = append(errs, fmt.Errorf("config: match.win_score must be at least 1, got %d", c.Match.WinScore))
	}

	return errors.Join(errs...)
}
