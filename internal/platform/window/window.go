// Package window is the desktop frontend: an ebiten game loop that polls the
// keyboard, steps the exercise with the measured frame time and draws its
// snapshot with filled rectangles, textures and a text HUD.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pongspire/internal/assets"
	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/platform"
	"github.com/vovakirdan/pongspire/internal/registry"
)

var (
	backgroundColor = color.Black
	bodyColor       = color.White
	hudColor        = color.White
)

// Options configures a window session.
type Options struct {
	Runtime core.RuntimeConfig
	Hooks   platform.Hooks
}

// KeyState reports keyboard state for one frame.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// ReadInput builds the frame's input. Movement is level-triggered, pause and
// restart fire only on the frame the key goes down.
func ReadInput(keys KeyState) (frame core.InputFrame, quit bool) {
	frame = core.NewInputFrame()

	if keys.Pressed(ebiten.KeyEscape) || keys.Pressed(ebiten.KeyQ) {
		return frame, true
	}

	if keys.Pressed(ebiten.KeyArrowLeft) || keys.Pressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if keys.Pressed(ebiten.KeyArrowRight) || keys.Pressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if keys.JustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if keys.JustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}

	return frame, false
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game     registry.Game
	opts     Options
	worldW   int
	worldH   int
	hudX     float64
	hudY     float64
	keys     KeyState
	clock    *core.Clock
	face     text.Face
	textures map[string]*ebiten.Image
}

// NewGame loads the HUD font and every texture the exercise draws.
// Missing assets are returned as errors; the window never opens without them.
func NewGame(game registry.Game, cfg config.PongConfig, opts Options) (*Game, error) {
	opts.Runtime.ScreenW = int(cfg.Window.Width)
	opts.Runtime.ScreenH = int(cfg.Window.Height)
	game.Reset(opts.Runtime)

	face, err := assets.LoadFont(cfg.Assets.Font, cfg.Assets.FontSize)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	images, err := assets.LoadImages(game.Snapshot().Textures())
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	textures := make(map[string]*ebiten.Image, len(images))
	for path, img := range images {
		textures[path] = ebiten.NewImageFromImage(img)
	}

	return &Game{
		game:     game,
		opts:     opts,
		worldW:   opts.Runtime.ScreenW,
		worldH:   opts.Runtime.ScreenH,
		hudX:     cfg.Assets.HUDX,
		hudY:     cfg.Assets.HUDY,
		keys:     ebitenKeys{},
		clock:    core.NewClock(),
		face:     text.NewGoXFace(face),
		textures: textures,
	}, nil
}

// Update runs one frame. Returning ebiten.Termination closes the window.
func (g *Game) Update() error {
	frame, quit := ReadInput(g.keys)
	if quit {
		return ebiten.Termination
	}

	dt := g.clock.Restart()
	res := g.game.Step(dt, frame)
	g.opts.Hooks.AfterStep(g.game, g.opts.Runtime.Player, res)
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.game.Snapshot()
	for _, b := range snap.Bodies {
		if tex, ok := g.textures[b.Texture]; ok {
			g.drawTexture(screen, tex, b.Box)
			continue
		}
		vector.FillRect(screen,
			float32(b.Box.Left()), float32(b.Box.Top()),
			float32(b.Box.W), float32(b.Box.H),
			bodyColor, false)
	}

	if snap.HUD != "" {
		g.drawText(screen, snap.HUD, g.hudX, g.hudY)
	}
	if snap.Paused {
		g.drawText(screen, "PAUSED", float64(g.worldW)/2-40, float64(g.worldH)/2)
	}
}

// drawTexture stretches tex over box.
func (g *Game) drawTexture(screen, tex *ebiten.Image, box core.RectF) {
	op := &ebiten.DrawImageOptions{}
	tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
	if tw > 0 && th > 0 {
		op.GeoM.Scale(box.W/float64(tw), box.H/float64(th))
	}
	op.GeoM.Translate(box.Left(), box.Top())
	screen.DrawImage(tex, op)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, g.face, op)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.worldW, g.worldH
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg config.PongConfig, opts Options) error {
	g, err := NewGame(game, cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.worldW, g.worldH)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
