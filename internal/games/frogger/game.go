// Package frogger adapts the Frogger reducer to the arcade platform.
// The rules live in the core subpackage; this package turns platform input
// into reducer events, keeps the current state and draws it.
package frogger

import (
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
	fcore "github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/loop"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "frogger"

// moveOrder fixes the order in which simultaneous direction keys reach the
// reducer, so a frame always folds the same way.
var moveOrder = []struct {
	action core.Action
	move   fcore.Move
}{
	{core.ActionUp, fcore.MoveUp},
	{core.ActionDown, fcore.MoveDown},
	{core.ActionLeft, fcore.MoveLeft},
	{core.ActionRight, fcore.MoveRight},
}

// Game implements registry.Game on top of the pure reducer.
type Game struct {
	state  fcore.State
	sched  *loop.Scheduler
	config core.RuntimeConfig
	paused bool
	steps  uint64
}

// New creates a Frogger game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset starts a new run from cfg's seed, start level and platform cadence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.state = fcore.WithStartLevel(fcore.NewState(cfg.Seed), cfg.StartLevel)
	g.sched = loop.NewScheduler(cfg.PlatformEvery)
	g.paused = false
	g.steps = 0
}

// Step advances the game by one scheduler step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.sched.Push(fcore.Restart{})
	}
	for _, m := range moveOrder {
		if in.Has(m.action) {
			g.sched.Push(m.move)
		}
	}

	level := g.state.Level
	g.state = g.sched.Advance(g.state)
	g.steps++

	return core.StepResult{
		State:        g.State(),
		LevelCleared: g.state.Level > level,
	}
}

// State returns the platform view of the current state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: max(g.state.HighestScore, g.state.Score),
		Level:     g.state.Level,
		GameOver:  g.state.GameOver,
		Paused:    g.paused,
	}
}

// Seed returns the seed the current run was built from.
func (g *Game) Seed() int64 {
	return g.config.Seed
}

// Board returns the current reducer state.
func (g *Game) Board() fcore.State {
	return g.state
}
