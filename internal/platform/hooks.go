// Package platform holds the pieces shared by the window and terminal
// frontends. Subpackages tui and window drive the frame loop; Hooks reacts
// to what each frame produced.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pongspire/internal/core"
	"github.com/vovakirdan/pongspire/internal/registry"
)

// ScoreSaver persists the final score of a game.
type ScoreSaver interface {
	SaveScore(gameID, player string, score int) (int64, error)
}

// Publisher receives every frame's snapshot, e.g. for spectators.
type Publisher interface {
	Publish(snap core.Snapshot)
}

// CuePlayer turns frame events into sound.
type CuePlayer interface {
	PlayEvents(ev core.Event)
}

// Hooks are the side effects run after each Step. Every field is optional.
type Hooks struct {
	Scores     ScoreSaver
	Spectators Publisher
	Sound      CuePlayer
	Logger     *log.Logger
}

// AfterStep plays cues, saves the final score when lives ran out and
// publishes the new snapshot. Storage failures are logged and never
// interrupt play.
func (h Hooks) AfterStep(game registry.Game, player string, res core.StepResult) {
	if h.Sound != nil && res.Events != 0 {
		h.Sound.PlayEvents(res.Events)
	}

	if res.Events.Has(core.EventGameOver) {
		h.logger().Info("Game over", "game", game.ID(), "player", player, "score", res.FinalScore)
		if h.Scores != nil && res.FinalScore > 0 {
			if _, err := h.Scores.SaveScore(game.ID(), player, res.FinalScore); err != nil {
				h.logger().Warn("Cannot save score", "game", game.ID(), "error", err)
			}
		}
	}

	if h.Spectators != nil {
		h.Spectators.Publish(game.Snapshot())
	}
}

func (h Hooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.New(io.Discard)
	}
	return h.Logger
}
