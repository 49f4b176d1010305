package pong

import (
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
)

// Default ball settings
const (
	BallSize      = 10    // Width and height of the ball's box
	BallSpeed     = 500.0 // Units per second
	BallDirection = 0.5   // Magnitude of each direction component
	RespawnX      = 500.0 // Re-serve point after a lost life
	RespawnY      = 20.0
)

// Ball moves at constant speed along a direction whose components are ±0.5.
// Rebounds negate one component; the magnitude never changes.
type Ball struct {
	pos     core.Vec2
	dirX    float64
	dirY    float64
	speed   float64
	w, h    float64
	respawn core.Vec2
}

// NewBall creates a ball at (x, y) with the default size, speed and direction.
func NewBall(x, y float64) *Ball {
	return &Ball{
		pos:     core.Vec2{X: x, Y: y},
		dirX:    BallDirection,
		dirY:    BallDirection,
		speed:   BallSpeed,
		w:       BallSize,
		h:       BallSize,
		respawn: core.Vec2{X: RespawnX, Y: RespawnY},
	}
}

// NewBallFromConfig creates a ball at its configured start point.
func NewBallFromConfig(cfg config.BallConfig) *Ball {
	return &Ball{
		pos:     core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		dirX:    cfg.DirX,
		dirY:    cfg.DirY,
		speed:   cfg.Speed,
		w:       cfg.Width,
		h:       cfg.Height,
		respawn: core.Vec2{X: cfg.RespawnX, Y: cfg.RespawnY},
	}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.pos, b.w, b.h)
}

// Position returns the top-left corner of the ball.
func (b *Ball) Position() core.Vec2 {
	return b.pos
}

// Direction returns the signed direction components.
func (b *Ball) Direction() (dirX, dirY float64) {
	return b.dirX, b.dirY
}

// XVelocity returns the signed horizontal direction.
func (b *Ball) XVelocity() float64 {
	return b.dirX
}

// ReboundSides reverses horizontal motion.
func (b *Ball) ReboundSides() {
	b.dirX = -b.dirX
}

// ReboundPaddleOrTop reverses vertical motion.
// Used both for the top edge and for paddle hits.
func (b *Ball) ReboundPaddleOrTop() {
	b.dirY = -b.dirY
}

// ReboundBottom re-serves the ball from the respawn point.
// The direction is left as it was, so the ball keeps travelling the same way.
func (b *Ball) ReboundBottom() {
	b.pos = b.respawn
}

// Update advances the ball by dt.
func (b *Ball) Update(dt time.Duration) {
	step := dt.Seconds() * b.speed
	b.pos = b.pos.Add(core.Vec2{X: b.dirX, Y: b.dirY}.Scale(step))
}
