// Package paddle implements the paddle-only warm-up exercise: the Pong
// paddle steered along the bottom edge with the HUD drawn but no ball.
package paddle

import (
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/games/pong"
	"github.com/vovakirdan/pongspire/internal/registry"
)

// Game implements the paddle exercise.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig

	paddle *pong.Paddle
	lives  int
	paused bool
	tick   uint64
}

// New creates a paddle exercise using cfg for the paddle and field.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "paddle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paddle"
}

// Reset moves the paddle back to its start point.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.paddle = pong.NewPaddleFromConfig(g.cfg.Paddle)
	g.lives = g.cfg.Rules.Lives
	g.paused = false
	g.tick = 0
}

// Step moves the paddle by dt according to the held keys.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.paddle.Steer(in)
	g.paddle.Update(dt)

	return core.StepResult{State: g.State()}
}

// Snapshot returns the paddle and the HUD line.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		GameID: g.ID(),
		Tick:   g.tick,
		WorldW: g.cfg.Window.Width,
		WorldH: g.cfg.Window.Height,
		Bodies: []core.Body{
			{Kind: core.BodyPaddle, Box: g.paddle.Bounds()},
		},
		HUD:    pong.HUD(0, g.lives),
		Lives:  g.lives,
		Paused: g.paused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Lives: g.lives, Paused: g.paused}
}

// Paddle exposes the paddle for tests.
func (g *Game) Paddle() *pong.Paddle {
	return g.paddle
}

func init() {
	registry.Register("paddle", func(cfg config.PongConfig) registry.Game {
		return New(cfg)
	})
}
