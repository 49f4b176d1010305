// Package textures implements the textured sprite exercise: a single
// player sprite held in the centre of the screen.
package textures

import (
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/registry"
)

// Game implements the textures exercise.
type Game struct {
	cfg    config.PongConfig
	player *Player
	paused bool
	tick   uint64
}

// New creates the exercise using the sprite size and texture from cfg.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "textures"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Basic Textures"
}

// Reset recreates the player sprite.
func (g *Game) Reset(core.RuntimeConfig) {
	g.player = NewPlayer(g.cfg.Sprite.Width, g.cfg.Sprite.Height, g.cfg.Assets.Texture)
	g.spawn()
	g.paused = false
	g.tick = 0
}

func (g *Game) spawn() {
	g.player.Spawn(g.cfg.Window.Width, g.cfg.Window.Height)
	g.player.Update()
}

// Step re-spawns the player in the centre and updates the sprite.
// The sprite does not react to movement keys.
func (g *Game) Step(_ time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.tick++
		g.spawn()
	}
	return core.StepResult{State: g.State()}
}

// Snapshot returns the textured sprite. The exercise has no HUD.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		GameID: g.ID(),
		Tick:   g.tick,
		WorldW: g.cfg.Window.Width,
		WorldH: g.cfg.Window.Height,
		Bodies: []core.Body{
			{Kind: core.BodySprite, Box: g.player.Bounds(), Texture: g.player.Texture()},
		},
		Paused: g.paused,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

func init() {
	registry.Register("textures", func(cfg config.PongConfig) registry.Game {
		return New(cfg)
	})
}
