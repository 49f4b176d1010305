// Package config provides YAML-based configuration loading for the exercises.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration shared by the pong, paddle and
// textures exercises.
type PongConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Rules    RulesConfig    `yaml:"rules"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WindowConfig describes the playing field and the desktop window.
// The field is measured in world units; the desktop window maps one unit to one pixel.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// BallConfig defines the ball's size, motion and serve points.
type BallConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"` // Units per second
	DirX     float64 `yaml:"dir_x"`
	DirY     float64 `yaml:"dir_y"`
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
	RespawnX float64 `yaml:"respawn_x"` // Where the ball re-serves after a lost life
	RespawnY float64 `yaml:"respawn_y"`
}

// PaddleConfig defines the paddle's size, speed and start position.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// RulesConfig defines score and lives bookkeeping.
type RulesConfig struct {
	Lives        int     `yaml:"lives"`
	TopTolerance float64 `yaml:"top_tolerance"` // Ball top below this value counts as hitting the top edge
}

// SpriteConfig defines the textured player of the textures exercise.
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AssetsConfig lists files loaded at startup by the desktop frontend.
type AssetsConfig struct {
	Font     string  `yaml:"font"` // TTF path, empty selects the built-in bitmap face
	FontSize float64 `yaml:"font_size"`
	Texture  string  `yaml:"texture"` // PNG for the textures exercise
	HUDX     float64 `yaml:"hud_x"`
	HUDY     float64 `yaml:"hud_y"`
}

// AudioConfig toggles the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// KeyHoldMS is how long a key press keeps its action active.
	// Terminals report presses but never releases.
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the values describe a playable field.
func (c PongConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("ball.speed", c.Ball.Speed)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("sprite.width", c.Sprite.Width)
	positive("sprite.height", c.Sprite.Height)
	positive("assets.font_size", c.Assets.FontSize)

	if c.Ball.DirX == 0 || c.Ball.DirY == 0 {
		errs = append(errs, fmt.Errorf("ball direction components must be non-zero, got (%v, %v)", c.Ball.DirX, c.Ball.DirY))
	}
	if c.Rules.Lives < 1 {
		errs = append(errs, fmt.Errorf("rules.lives must be at least 1, got %d", c.Rules.Lives))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	if c.Terminal.KeyHoldMS < 0 {
		errs = append(errs, fmt.Errorf("terminal.key_hold_ms must not be negative, got %d", c.Terminal.KeyHoldMS))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
}
