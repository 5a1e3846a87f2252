// Package scene provides a global registry for particle scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate scenes without hardcoded dependencies.
package scene

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ilyakh/tui-sparks/internal/core"
)

// Scene is the core interface that all particle scenes must implement.
// Scenes contain pure simulation logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping, timing,
// and rendering.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "fountain").
	// Used for CLI commands and run-statistics storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Fountain").
	Title() string

	// Reset initializes or resets the scene state.
	// Called once at start and again on restart.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds.
	// Input is abstracted to platform-level actions (ToggleEmit, Burst...).
	// Returns the result of this tick including current scene state.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current scene state into the provided screen buffer.
	// The scene owns the whole buffer and clears it first.
	Render(dst *core.Screen)

	// State returns the current scene state (particle counts, finished).
	State() core.SceneState
}

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scene: %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
