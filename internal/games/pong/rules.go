package pong

import (
	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
)

// Default rule settings
const (
	DefaultLives        = 5
	DefaultTopTolerance = -1.0
)

// State is the score and lives bookkeeping of one game.
type State struct {
	Score int
	Lives int
	// LastFinalScore is the score reached before the most recent reset to
	// full lives. Only meaningful when Apply reported EventGameOver.
	LastFinalScore int
}

// Rules evaluates collisions against the field and the paddle once per frame.
type Rules struct {
	FieldW       float64
	FieldH       float64
	Lives        int     // Lives restored when they run out
	TopTolerance float64 // Ball top below this counts as hitting the top edge
}

// NewRules creates rules for a field of the given size with the default lives.
func NewRules(fieldW, fieldH float64) Rules {
	return Rules{
		FieldW:       fieldW,
		FieldH:       fieldH,
		Lives:        DefaultLives,
		TopTolerance: DefaultTopTolerance,
	}
}

// NewRulesFromConfig creates rules from the window and rules sections.
func NewRulesFromConfig(cfg config.PongConfig) Rules {
	return Rules{
		FieldW:       cfg.Window.Width,
		FieldH:       cfg.Window.Height,
		Lives:        cfg.Rules.Lives,
		TopTolerance: cfg.Rules.TopTolerance,
	}
}

// NewState returns a fresh score and lives record.
func (r Rules) NewState() State {
	return State{Score: 0, Lives: r.Lives}
}

// Apply runs the four collision checks after the entities have moved.
// Every check runs every frame against the box the ball had after moving,
// so a rebound in one check never hides another; several can fire together.
func (r Rules) Apply(st *State, ball *Ball, paddle *Paddle) core.Event {
	var events core.Event
	box := ball.Bounds()

	// Ball fell past the bottom edge: lose a life and re-serve
	if box.Top() > r.FieldH {
		ball.ReboundBottom()
		st.Lives--
		events |= core.EventLifeLost
		if st.Lives < 1 {
			st.LastFinalScore = st.Score
			st.Score = 0
			st.Lives = r.Lives
			events |= core.EventGameOver
		}
	}

	// Ball reached the top edge: score a point
	if box.Top() < r.TopTolerance {
		ball.ReboundPaddleOrTop()
		st.Score++
		events |= core.EventTopRebound
	}

	// Ball crossed a side edge
	if box.Left() < 0 || box.Right() > r.FieldW {
		ball.ReboundSides()
		events |= core.EventSideRebound
	}

	// Ball overlaps the paddle
	if box.Intersects(paddle.Bounds()) {
		ball.ReboundPaddleOrTop()
		events |= core.EventPaddleRebound
	}

	return events
}
