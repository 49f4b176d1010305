package textures

import "github.com/vovakirdan/pongspire/internal/core"

// Player is a square sprite drawn with its origin at its centre.
type Player struct {
	pos     core.Vec2 // Centre of the sprite
	sprite  core.RectF
	w, h    float64
	texture string
}

// NewPlayer creates a w x h sprite drawn with texture.
func NewPlayer(w, h float64, texture string) *Player {
	return &Player{w: w, h: h, texture: texture}
}

// Spawn places the player in the middle of a screen of the given size.
// It may be called any number of times.
func (p *Player) Spawn(screenW, screenH float64) {
	p.pos = core.Vec2{X: screenW / 2, Y: screenH / 2}
}

// Update moves the sprite to the player's position.
func (p *Player) Update() {
	p.sprite = core.RectF{X: p.pos.X - p.w/2, Y: p.pos.Y - p.h/2, W: p.w, H: p.h}
}

// Bounds returns the sprite's box as last placed by Update.
func (p *Player) Bounds() core.RectF {
	return p.sprite
}

// Texture returns the asset path of the sprite's image.
func (p *Player) Texture() string {
	return p.texture
}
