package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration: a 1920x1080 field,
// a 10x10 ball at 500 units/s and a 50x5 paddle at 1000 units/s.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Window: WindowConfig{
			Title:  "PongSpire",
			Width:  1920,
			Height: 1080,
		},
		Ball: BallConfig{
			Width:    10,
			Height:   10,
			Speed:    500,
			DirX:     0.5,
			DirY:     0.5,
			StartX:   1920 / 2,
			StartY:   10,
			RespawnX: 500,
			RespawnY: 20,
		},
		Paddle: PaddleConfig{
			Width:  50,
			Height: 5,
			Speed:  1000,
			StartX: 1920 / 2,
			StartY: 1080 - 20,
		},
		Rules: RulesConfig{
			Lives:        5,
			TopTolerance: -1,
		},
		Sprite: SpriteConfig{
			Width:  50,
			Height: 50,
		},
		Assets: AssetsConfig{
			Font:     "",
			FontSize: 30,
			Texture:  "assets/graphics/player-square.png",
			HUDX:     20,
			HUDY:     20,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Terminal: TerminalConfig{
			KeyHoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
