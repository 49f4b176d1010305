package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/registry"
)

type fakeGame struct {
	snap core.Snapshot
}

func (g *fakeGame) ID() string                                          { return "fake" }
func (g *fakeGame) Title() string                                       { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)                            {}
func (g *fakeGame) Step(time.Duration, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Snapshot() core.Snapshot                             { return g.snap }
func (g *fakeGame) State() core.GameState                               { return core.GameState{} }

var _ registry.Game = (*fakeGame)(nil)

type savedScore struct {
	game, player string
	score        int
}

type fakeSaver struct {
	saved []savedScore
	err   error
}

func (s *fakeSaver) SaveScore(gameID, player string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, savedScore{gameID, player, score})
	return int64(len(s.saved)), nil
}

type fakePublisher struct {
	snaps []core.Snapshot
}

func (p *fakePublisher) Publish(snap core.Snapshot) {
	p.snaps = append(p.snaps, snap)
}

type fakeSound struct {
	events []core.Event
}

func (s *fakeSound) PlayEvents(ev core.Event) {
	s.events = append(s.events, ev)
}

func TestAfterStepSavesFinalScore(t *testing.T) {
	saver := &fakeSaver{}
	hooks := Hooks{Scores: saver}
	game := &fakeGame{}

	hooks.AfterStep(game, "ann", core.StepResult{Events: core.EventLifeLost})
	if len(saver.saved) != 0 {
		t.Fatalf("saved %v without game over", saver.saved)
	}

	hooks.AfterStep(game, "ann", core.StepResult{
		Events:     core.EventLifeLost | core.EventGameOver,
		FinalScore: 9,
	})
	if len(saver.saved) != 1 {
		t.Fatalf("len(saved) = %d, expected 1", len(saver.saved))
	}
	if got := saver.saved[0]; got != (savedScore{"fake", "ann", 9}) {
		t.Errorf("saved = %+v, expected fake/ann/9", got)
	}
}

func TestAfterStepSkipsZeroScore(t *testing.T) {
	saver := &fakeSaver{}
	Hooks{Scores: saver}.AfterStep(&fakeGame{}, "ann", core.StepResult{Events: core.EventGameOver})

	if len(saver.saved) != 0 {
		t.Errorf("zero score should not be saved, got %v", saver.saved)
	}
}

func TestAfterStepSaveErrorIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	pub := &fakePublisher{}
	hooks := Hooks{Scores: saver, Spectators: pub}

	hooks.AfterStep(&fakeGame{}, "ann", core.StepResult{Events: core.EventGameOver, FinalScore: 3})

	if len(pub.snaps) != 1 {
		t.Errorf("snapshot not published after save error")
	}
}

func TestAfterStepPublishesAndPlays(t *testing.T) {
	pub := &fakePublisher{}
	sound := &fakeSound{}
	game := &fakeGame{snap: core.Snapshot{GameID: "fake", Tick: 4}}
	hooks := Hooks{Spectators: pub, Sound: sound}

	hooks.AfterStep(game, "", core.StepResult{})
	hooks.AfterStep(game, "", core.StepResult{Events: core.EventPaddleRebound})

	if len(pub.snaps) != 2 || pub.snaps[1].Tick != 4 {
		t.Errorf("published %+v, expected two snapshots at tick 4", pub.snaps)
	}
	if len(sound.events) != 1 || sound.events[0] != core.EventPaddleRebound {
		t.Errorf("sound events = %v, expected only the paddle rebound", sound.events)
	}
}

func TestAfterStepEmptyHooks(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("empty hooks panicked: %v", r)
		}
	}()
	Hooks{}.AfterStep(&fakeGame{}, "", core.StepResult{Events: core.EventGameOver, FinalScore: 1})
}
