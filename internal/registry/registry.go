// Package registry maps game IDs to factories. Games register themselves
// in init(); the platform layer creates them by ID and probes optional
// capabilities such as level selection.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is what the platform layer drives. Games never see Bubble Tea:
// the platform owns timing, input mapping and terminal output.
type Game interface {
	// ID keys the game in the registry and in score storage.
	ID() string

	Title() string

	// Reset starts a new run sized to cfg. Called once at start and again
	// when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick. The frame holds the actions whose keys
	// are down during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// LevelStarter is implemented by games that can start from a named level.
type LevelStarter interface {
	SetStart(levelID string)
}

// Resizer is implemented by games that follow a terminal resize in place
// instead of restarting.
type Resizer interface {
	Resize(w, h int)
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns the registered game IDs, sorted.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateAt instantiates a game that starts from levelID. An empty levelID
// keeps the game's default start.
func CreateAt(id, levelID string) (Game, error) {
	g, err := Create(id)
	if err != nil || levelID == "" {
		return g, err
	}

	s, ok := g.(LevelStarter)
	if !ok {
		return nil, fmt.Errorf("registry: game %q cannot start from level %q", id, levelID)
	}
	s.SetStart(levelID)
	return g, nil
}
