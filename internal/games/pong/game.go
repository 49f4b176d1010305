// Package pong implements the single-player breakout-style Pong exercise:
// one ball, one paddle along the bottom edge, a score for every hit on the
// top edge and a life lost every time the ball drops past the bottom.
package pong

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/registry"
)

// Game implements the Pong exercise.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig

	ball   *Ball
	paddle *Paddle
	rules  Rules
	state  State

	paused bool
	tick   uint64
}

// New creates a Pong game using cfg for sizes, speeds and rules.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset places the ball and paddle at their start points with full lives.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.ball = NewBallFromConfig(g.cfg.Ball)
	g.paddle = NewPaddleFromConfig(g.cfg.Paddle)
	g.rules = NewRulesFromConfig(g.cfg)
	g.state = g.rules.NewState()
	g.paused = false
	g.tick = 0
}

// Step advances the game by dt.
// Order within a frame: input, paddle, ball, then the collision rules.
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
	g.ball.Update(dt)

	events := g.rules.Apply(&g.state, g.ball, g.paddle)

	res := core.StepResult{State: g.State(), Events: events}
	if events.Has(core.EventGameOver) {
		res.FinalScore = g.state.LastFinalScore
	}
	return res
}

// Snapshot returns the ball, the paddle and the HUD line.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		GameID: g.ID(),
		Tick:   g.tick,
		WorldW: g.cfg.Window.Width,
		WorldH: g.cfg.Window.Height,
		Bodies: []core.Body{
			{Kind: core.BodyBall, Box: g.ball.Bounds()},
			{Kind: core.BodyPaddle, Box: g.paddle.Bounds()},
		},
		HUD:    HUD(g.state.Score, g.state.Lives),
		Score:  g.state.Score,
		Lives:  g.state.Lives,
		Paused: g.paused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Lives:  g.state.Lives,
		Paused: g.paused,
	}
}

// Ball exposes the ball for frontends and tests.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle exposes the paddle for frontends and tests.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// HUD formats the score line drawn in the corner of the field.
func HUD(score, lives int) string {
	return fmt.Sprintf("Score:%d Lives:%d", score, lives)
}

// Register the game with the registry
func init() {
	registry.Register("pong", func(cfg config.PongConfig) registry.Game {
		return New(cfg)
	})
}
