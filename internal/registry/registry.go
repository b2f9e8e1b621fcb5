// Package registry maps game ids to factories. Games register from init(),
// and the TUI, SSH server and CLI look them up by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal state:
// the platform maps keys to actions, paces steps and owns the screen.
type Game interface {
	// ID is the stable identifier used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one scheduler step with the actions held this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the caller has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// Seeded is implemented by games whose runs can be reproduced from a seed.
// The platform stores the seed alongside saved scores.
type Seeded interface {
	Seed() int64
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
