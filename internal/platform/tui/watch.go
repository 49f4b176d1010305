package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pongspire/internal/core"
)

// SnapshotSource yields frames published by a running game.
// spectate.Client implements it.
type SnapshotSource interface {
	Next() (core.Snapshot, error)
}

// SnapshotMsg carries one received frame.
type SnapshotMsg core.Snapshot

// sourceErrMsg reports that the source stopped.
type sourceErrMsg struct{ err error }

// waitForSnapshot blocks on the source in a command goroutine.
func waitForSnapshot(src SnapshotSource) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.Next()
		if err != nil {
			return sourceErrMsg{err: err}
		}
		return SnapshotMsg(snap)
	}
}

// WatchModel renders frames received from a spectator hub.
type WatchModel struct {
	src      SnapshotSource
	screen   *core.Screen
	keys     GameKeyMap
	snap     core.Snapshot
	received bool
	err      error
	quitting bool
}

// NewWatchModel creates a viewer for src sized width x height cells.
func NewWatchModel(src SnapshotSource, width, height int) WatchModel {
	return WatchModel{
		src:    src,
		screen: core.NewScreen(width, height),
		keys:   DefaultGameKeyMap(),
	}
}

// Init starts receiving frames.
func (m WatchModel) Init() tea.Cmd {
	return waitForSnapshot(m.src)
}

// Update handles messages for the viewer.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKey(msg) == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case SnapshotMsg:
		m.snap = core.Snapshot(msg)
		m.received = true
		return m, waitForSnapshot(m.src)

	case sourceErrMsg:
		m.err = msg.err
	}

	return m, nil
}

// View renders the last received frame.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.err != nil:
		m.screen.Clear()
		drawMessage(m.screen, "STREAM ENDED", "Q to quit")
	case !m.received:
		m.screen.Clear()
		drawMessage(m.screen, "WAITING", "for the first frame")
	default:
		RenderSnapshot(m.screen, m.snap)
	}

	return RenderScreen(m.screen)
}

// Err returns the error that ended the stream, if any.
func (m WatchModel) Err() error {
	return m.err
}

// RunWatch shows frames from src on the local terminal until the user quits.
func RunWatch(src SnapshotSource, width, height int) error {
	p := tea.NewProgram(
		NewWatchModel(src, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
