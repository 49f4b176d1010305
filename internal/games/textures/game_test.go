package textures

import (
	"testing"
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
)

func TestPlayerCentred(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		expect core.RectF
	}{
		{"full hd", 1920, 1080, core.RectF{X: 935, Y: 515, W: 50, H: 50}},
		{"small", 100, 60, core.RectF{X: 25, Y: 5, W: 50, H: 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(50, 50, "square.png")
			p.Spawn(tc.w, tc.h)
			p.Update()

			if got := p.Bounds(); got != tc.expect {
				t.Errorf("Bounds() = %+v, expected %+v", got, tc.expect)
			}
		})
	}
}

func TestPlayerBoundsFollowUpdate(t *testing.T) {
	p := NewPlayer(50, 50, "")
	p.Spawn(200, 200)

	// Spawn alone does not move the sprite
	if got := p.Bounds(); got != (core.RectF{}) {
		t.Errorf("Bounds() before Update = %+v, expected zero box", got)
	}
	p.Update()
	if got := p.Bounds(); got.X != 75 || got.Y != 75 {
		t.Errorf("Bounds() after Update = %+v, expected origin (75, 75)", got)
	}
}

func TestSnapshotSprite(t *testing.T) {
	cfg := config.DefaultPongConfig()
	g := New(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(time.Second, in)

	snap := g.Snapshot()
	if len(snap.Bodies) != 1 {
		t.Fatalf("len(Bodies) = %d, expected 1", len(snap.Bodies))
	}
	body := snap.Bodies[0]
	if body.Kind != core.BodySprite {
		t.Errorf("Kind = %q, expected %q", body.Kind, core.BodySprite)
	}
	if body.Texture != cfg.Assets.Texture {
		t.Errorf("Texture = %q, expected %q", body.Texture, cfg.Assets.Texture)
	}
	cx := body.Box.X + body.Box.W/2
	cy := body.Box.Y + body.Box.H/2
	if cx != cfg.Window.Width/2 || cy != cfg.Window.Height/2 {
		t.Errorf("sprite centre = (%v, %v), expected screen centre", cx, cy)
	}
	if got := snap.Textures(); len(got) != 1 || got[0] != cfg.Assets.Texture {
		t.Errorf("Textures() = %v, expected [%s]", got, cfg.Assets.Texture)
	}
}
