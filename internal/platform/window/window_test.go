package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/games/pong"
	"github.com/vovakirdan/pongspire/internal/platform"
)

type fakeKeys struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.justPressed[k] }

func TestReadInput(t *testing.T) {
	tests := []struct {
		name     string
		keys     fakeKeys
		want     []core.Action
		wantQuit bool
	}{
		{
			name: "nothing",
			keys: fakeKeys{},
		},
		{
			name: "left arrow",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}},
			want: []core.Action{core.ActionLeft},
		},
		{
			name: "both directions",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyD: true}},
			want: []core.Action{core.ActionLeft, core.ActionRight},
		},
		{
			name: "held p does not pause again",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyP: true}},
		},
		{
			name: "p goes down",
			keys: fakeKeys{justPressed: map[ebiten.Key]bool{ebiten.KeyP: true}},
			want: []core.Action{core.ActionPause},
		},
		{
			name: "r goes down",
			keys: fakeKeys{justPressed: map[ebiten.Key]bool{ebiten.KeyR: true}},
			want: []core.Action{core.ActionRestart},
		},
		{
			name:     "escape",
			keys:     fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyEscape: true}},
			wantQuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, quit := ReadInput(tt.keys)
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, expected %v", quit, tt.wantQuit)
			}
			if len(frame.Actions) != len(tt.want) {
				t.Errorf("actions = %v, expected %v", frame.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("frame missing %v", a)
				}
			}
		})
	}
}

type countingPublisher struct {
	count int
}

func (p *countingPublisher) Publish(core.Snapshot) {
	p.count++
}

func newTestGame(keys KeyState, hooks platform.Hooks) (*Game, *pong.Game, *time.Time) {
	cfg := config.DefaultPongConfig()
	pg := pong.New(cfg)

	now := time.Unix(1000, 0)
	g := &Game{
		game:   pg,
		opts:   Options{Runtime: core.DefaultConfig(), Hooks: hooks},
		worldW: int(cfg.Window.Width),
		worldH: int(cfg.Window.Height),
		keys:   keys,
		clock:  core.NewClockWithSource(func() time.Time { return now }),
	}
	return g, pg, &now
}

func TestUpdateStepsWithMeasuredTime(t *testing.T) {
	pub := &countingPublisher{}
	keys := fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyArrowRight: true}}
	g, pg, now := newTestGame(keys, platform.Hooks{Spectators: pub})
	startX := pg.Paddle().Position().X

	*now = now.Add(20 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	want := startX + 1000*0.02
	if got := pg.Paddle().Position().X; got != want {
		t.Errorf("paddle x = %v, expected %v", got, want)
	}
	if pub.count != 1 {
		t.Errorf("published = %d, expected 1", pub.count)
	}
}

func TestUpdateTerminates(t *testing.T) {
	keys := fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyQ: true}}
	g, _, _ := newTestGame(keys, platform.Hooks{})

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() error = %v, expected ebiten.Termination", err)
	}
}

func TestLayoutIsWorldSize(t *testing.T) {
	g, _, _ := newTestGame(fakeKeys{}, platform.Hooks{})

	w, h := g.Layout(800, 600)
	if w != 1920 || h != 1080 {
		t.Errorf("Layout() = %d, %d, expected 1920, 1080", w, h)
	}
}
