// Package registry provides a global registry for exercise factories.
// Exercises register themselves in init() functions, allowing the frontends
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/pongspire/internal/config"
	"github.com/vovakirdan/pongspire/internal/core"
)

// Game is the interface every exercise implements.
// Games contain pure logic: no windowing, terminal or audio dependencies.
// Frontends handle input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier (e.g. "pong", "paddle").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the exercise back into its starting state.
	Reset(rt core.RuntimeConfig)

	// Step advances the simulation by dt, the wall time measured since the
	// previous frame. Motion scales with dt so speed is independent of frame rate.
	Step(dt time.Duration, in core.InputFrame) core.StepResult

	// Snapshot returns everything a frontend needs to draw the current frame.
	Snapshot() core.Snapshot

	// State returns the current score, lives and pause flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered exercise.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of an exercise from the loaded configuration.
type Factory func(cfg config.PongConfig) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an exercise factory to the registry.
// Typically called from an exercise's init() function.
// Panics if an exercise with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.DefaultPongConfig())
	titles[id] = g.Title()
}

// List returns information about all registered exercises, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an exercise by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.PongConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if an exercise with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
