// Package scenarios provides a global registry for demo scenario factories.
// Scenarios register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package scenarios

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

// Scenario describes one anchored-popover situation the demo can stage: a
// tooltip, a dropdown, a context menu. Scenarios are pure data providers; the
// platform owns input, placement and rendering.
type Scenario interface {
	// ID returns a unique identifier (e.g., "tooltip", "dropdown").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Anchor returns the initial anchor rectangle for the given viewport.
	Anchor(viewport geometry.Size) geometry.Rect

	// Content returns the popover content lines.
	Content() []string

	// Position returns the scenario's preferred placement token.
	Position() string
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from a scenario's init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scenarios: scenario %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered scenarios, sorted by ID.
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

// Create instantiates a new scenario by its ID.
// Returns an error if the scenario ID is not registered.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("scenarios: unknown scenario %q", id)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
