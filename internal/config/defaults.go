package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
// It mirrors defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 400,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 100,
		},
		Ball: BallConfig{
			Size:         10,
			BaseSpeed:    5,
			Deflection:   0.35,
			Acceleration: 1.05,
		},
		AI: AIConfig{
			Step:     4,
			Deadband: 15,
		},
		Input: InputConfig{
			KeyStep:        7,
			TerminalHoldMS: 300,
		},
		Match: MatchConfig{
			WinScore: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
