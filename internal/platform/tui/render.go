package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pongspire/internal/core"
)

// Glyphs used to draw bodies in cells
const (
	BallGlyph   = '●'
	PaddleGlyph = '▀'
	SpriteGlyph = '▓'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// bodyStyle is the glyph and color each body kind is drawn with.
var bodyStyle = map[core.BodyKind]core.Cell{
	core.BodyBall:   {Rune: BallGlyph, Color: core.ColorYellow},
	core.BodyPaddle: {Rune: PaddleGlyph, Color: core.ColorWhite},
	core.BodySprite: {Rune: SpriteGlyph, Color: core.ColorGreen},
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderSnapshot draws a snapshot into dst. The top row holds the HUD;
// the rest of the screen shows the whole world scaled to fit.
// Every body covers at least one cell, however small it is in world units.
func RenderSnapshot(dst *core.Screen, snap core.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	dst.DrawText(0, 0, snap.HUD, core.ColorWhite)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	for _, b := range snap.Bodies {
		cell, ok := bodyStyle[b.Kind]
		if !ok {
			cell = core.Cell{Rune: '#', Color: core.ColorDefault}
		}
		dst.DrawRect(CellRect(b.Box, snap.WorldW, snap.WorldH, field), cell.Rune, cell.Color)
	}

	if snap.Paused {
		drawMessage(dst, "PAUSED", "p to resume")
	}
}

// CellRect maps a world-space box onto the cells of field.
// Parts outside field are cut off; a box entirely outside maps to an empty rect.
func CellRect(box core.RectF, worldW, worldH float64, field core.Rect) core.Rect {
	if worldW <= 0 || worldH <= 0 || field.W <= 0 || field.H <= 0 {
		return core.Rect{}
	}
	sx := float64(field.W) / worldW
	sy := float64(field.H) / worldH

	x0 := int(math.Floor(box.Left() * sx))
	y0 := int(math.Floor(box.Top() * sy))
	x1 := int(math.Ceil(box.Right() * sx))
	y1 := int(math.Ceil(box.Bottom() * sy))

	r := core.NewRect(field.X+x0, field.Y+y0, max(x1-x0, 1), max(y1-y0, 1))
	return clipRect(r, field)
}

// clipRect returns the part of r inside field, or an empty rect.
func clipRect(r, field core.Rect) core.Rect {
	if !r.Intersects(field) {
		return core.Rect{}
	}
	x0 := core.Clamp(r.X, field.X, field.Right())
	y0 := core.Clamp(r.Y, field.Y, field.Bottom())
	x1 := core.Clamp(r.Right(), field.X, field.Right())
	y1 := core.Clamp(r.Bottom(), field.Y, field.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawMessage draws a boxed two-line message in the middle of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorCyan)
	dst.DrawText(r.X+(boxW-len(title))/2, r.Y+1, title, core.ColorYellow)
	dst.DrawText(r.X+(boxW-len(subtitle))/2, r.Y+3, subtitle, core.ColorGray)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
