package pong

import (
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
)

// Default paddle settings
const (
	PaddleWidth  = 50
	PaddleHeight = 5
	PaddleSpeed  = 1000.0 // Units per second
)

// Paddle slides horizontally while its motion flags are set.
// The two flags are independent: with both set the moves cancel out.
// Position is not clamped to the field.
type Paddle struct {
	pos         core.Vec2
	speed       float64
	w, h        float64
	motionLeft  bool
	motionRight bool
}

// NewPaddle creates an idle paddle at (x, y) with the default size and speed.
func NewPaddle(x, y float64) *Paddle {
	return &Paddle{
		pos:   core.Vec2{X: x, Y: y},
		speed: PaddleSpeed,
		w:     PaddleWidth,
		h:     PaddleHeight,
	}
}

// NewPaddleFromConfig creates an idle paddle at its configured start point.
func NewPaddleFromConfig(cfg config.PaddleConfig) *Paddle {
	return &Paddle{
		pos:   core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		speed: cfg.Speed,
		w:     cfg.Width,
		h:     cfg.Height,
	}
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.pos, p.w, p.h)
}

// Position returns the top-left corner of the paddle.
func (p *Paddle) Position() core.Vec2 {
	return p.pos
}

// Moving returns the state of both motion flags.
func (p *Paddle) Moving() (left, right bool) {
	return p.motionLeft, p.motionRight
}

func (p *Paddle) MotionLeft()  { p.motionLeft = true }
func (p *Paddle) MotionRight() { p.motionRight = true }
func (p *Paddle) StopLeft()    { p.motionLeft = false }
func (p *Paddle) StopRight()   { p.motionRight = false }

// Steer sets both motion flags from one frame of input.
func (p *Paddle) Steer(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		p.MotionLeft()
	} else {
		p.StopLeft()
	}
	if in.Has(core.ActionRight) {
		p.MotionRight()
	} else {
		p.StopRight()
	}
}

// Update advances the paddle by dt.
func (p *Paddle) Update(dt time.Duration) {
	step := p.speed * dt.Seconds()
	if p.motionLeft {
		p.pos.X -= step
	}
	if p.motionRight {
		p.pos.X += step
	}
}
