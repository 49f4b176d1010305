package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
	_ "github.com/vovakirdan/pongspire/internal/games/paddle"
	_ "github.com/vovakirdan/pongspire/internal/games/textures"
	"github.com/vovakirdan/pongspire/internal/storage"
)

type fakeScores struct {
	best map[string]int
}

func (f fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	if f.best[gameID] == 0 {
		return nil, nil
	}
	return []storage.ScoreEntry{{GameID: gameID, Player: "ann", Score: f.best[gameID]}}, nil
}

func (f fakeScores) HighScore(gameID string) (int, error) {
	return f.best[gameID], nil
}

func (f fakeScores) GameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID, HighScore: f.best[gameID]}
	if stats.HighScore > 0 {
		stats.GamesCount = 1
		stats.AvgScore = float64(stats.HighScore)
	}
	return stats, nil
}

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	var ids []string
	for _, item := range m.items {
		ids = append(ids, item.GameID)
	}

	want := "paddle,pong,textures"
	if got := strings.Join(ids, ","); got != want {
		t.Errorf("menu items = %s, expected %s", got, want)
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	m := NewMenuModel(fakeScores{best: map[string]int{"pong": 42}}, core.DefaultConfig())

	if !strings.Contains(m.View(), "best 42") {
		t.Error("View() should show the best pong score")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0 at the top", m.cursor)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, runeKey('j'))
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d at the bottom", m.cursor, len(m.items)-1)
	}

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "textures" {
		t.Errorf("Selected() = %v, expected textures", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = sendMenu(NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func sendSession(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Runtime: core.DefaultConfig(),
		Pong:    config.DefaultPongConfig(),
		Scores:  fakeScores{best: map[string]int{"paddle": 3, "pong": 7}},
	})

	// paddle, pong, textures: pick pong
	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if got := m.game.game.ID(); got != "pong" {
		t.Errorf("game = %s, expected pong", got)
	}

	m, _ = sendSession(m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after b", m.screen)
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "ann") {
		t.Error("scoreboard should list the stored player")
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after esc", m.screen)
	}

	m, _ = sendSession(m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}

type fakeSource struct {
	frames []core.Snapshot
}

func (f *fakeSource) Next() (core.Snapshot, error) {
	if len(f.frames) == 0 {
		return core.Snapshot{}, errors.New("closed")
	}
	snap := f.frames[0]
	f.frames = f.frames[1:]
	return snap, nil
}

func TestWatchModel(t *testing.T) {
	src := &fakeSource{frames: []core.Snapshot{
		{WorldW: 100, WorldH: 100, HUD: "Score:9 Lives:1"},
	}}
	m := NewWatchModel(src, 40, 12)

	if !strings.Contains(m.View(), "WAITING") {
		t.Error("View() should wait for the first frame")
	}

	msg := m.Init()()
	next, cmd := m.Update(msg)
	m = next.(WatchModel)
	if cmd == nil {
		t.Fatal("a received frame should wait for the next one")
	}
	if !strings.Contains(m.View(), "Score:9 Lives:1") {
		t.Error("View() should show the received HUD")
	}

	next, _ = m.Update(cmd())
	m = next.(WatchModel)
	if m.Err() == nil {
		t.Error("Err() should report the closed stream")
	}
	if !strings.Contains(m.View(), "STREAM ENDED") {
		t.Error("View() should show that the stream ended")
	}
}
