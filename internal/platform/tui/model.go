package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/platform"
	"github.com/vovakirdan/pongspire/internal/registry"
)

// DefaultKeyHold is how long a key press keeps its action held.
const DefaultKeyHold = 180 * time.Millisecond

// Options configures a terminal game session.
type Options struct {
	Runtime core.RuntimeConfig
	KeyHold time.Duration
	Hooks   platform.Hooks

	// AllowBack lets b leave the game instead of only quitting.
	// Set by the menu and SSH session flows.
	AllowBack bool

	// ScreenshotDir is where ctrl+s writes frames.
	// Defaults to ~/.pongspire/screenshots.
	ScreenshotDir string

	// Now replaces time.Now, for tests.
	Now func() time.Time
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one exercise in the terminal.
type Model struct {
	game   registry.Game
	opts   Options
	screen *core.Screen
	clock  *core.Clock
	held   *HeldKeys
	edge   core.InputFrame // Pause and restart, consumed by the next frame
	keys   GameKeyMap
	help   help.Model
	status string

	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".pongspire", "screenshots")
		}
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:   game,
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		clock:  core.NewClockWithSource(opts.Now),
		held:   NewHeldKeys(opts.KeyHold),
		edge:   core.NewInputFrame(),
		keys:   DefaultGameKeyMap(),
		help:   h,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.clock.Restart()
	return tickCmd(m.opts.Runtime.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.opts.AllowBack {
			m.backToMenu = true
		}
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.opts.Now())
	case core.ActionPause, core.ActionRestart:
		m.edge.Set(action)
		m.status = ""
	}

	return m, nil
}

// handleTick runs one frame: measure dt, build input, step, run hooks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.clock.Restart()

	frame := core.NewInputFrame()
	m.held.Fill(&frame, m.opts.Now())
	for a := range m.edge.Actions {
		frame.Set(a)
	}
	if frame.Has(core.ActionRestart) {
		m.held.Reset()
	}

	res := m.game.Step(dt, frame)
	m.opts.Hooks.AfterStep(m.game, m.opts.Runtime.Player, res)

	m.edge.Clear()
	return m, tickCmd(m.opts.Runtime.FrameInterval())
}

// saveScreenshot writes the current frame as plain text and returns a status line.
func (m Model) saveScreenshot() string {
	RenderSnapshot(m.screen, m.game.Snapshot())

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}

	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Sprintf("screenshot failed: %v", err)
	}
	return "saved " + path
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	RenderSnapshot(m.screen, m.game.Snapshot())

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for game on the local terminal.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
