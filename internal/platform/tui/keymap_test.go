package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pongspire/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapMapKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unused", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(180 * time.Millisecond)

	h.Press(core.ActionLeft, t0)

	if !h.Held(core.ActionLeft, t0.Add(100*time.Millisecond)) {
		t.Error("Left should still be held after 100ms")
	}
	if h.Held(core.ActionLeft, t0.Add(180*time.Millisecond)) {
		t.Error("Left should be released once the window has passed")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(180 * time.Millisecond)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(150*time.Millisecond))

	if !h.Held(core.ActionRight, t0.Add(300*time.Millisecond)) {
		t.Error("auto-repeat should extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(180 * time.Millisecond)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("right should be held")
	}
}

func TestHeldKeysFill(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(100 * time.Millisecond)
	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.Fill(&frame, t0.Add(50*time.Millisecond))
	if !frame.Has(core.ActionLeft) {
		t.Error("Fill should set held actions")
	}

	frame = core.NewInputFrame()
	h.Fill(&frame, t0.Add(200*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("Fill should skip expired actions")
	}
	if len(h.until) != 0 {
		t.Errorf("expired entries = %d, expected 0", len(h.until))
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionLeft, t0)
	h.Release(core.ActionLeft)
	if h.Held(core.ActionLeft, t0) {
		t.Error("Release should drop the action")
	}

	h.Press(core.ActionRight, t0)
	h.Reset()
	if h.Held(core.ActionRight, t0) {
		t.Error("Reset should drop every action")
	}
}

func TestMenuKeyMapMapKey(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"q", runeKey('q'), core.ActionQuit},
		{"tab is not a menu action", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tt.msg, got, tt.want)
			}
		})
	}
}
