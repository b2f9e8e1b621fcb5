// Package loop drives the Frogger reducer: it turns clocks and player
// commands into one ordered stream of events.
//
// Scheduler is the deterministic, single-threaded form used by the terminal
// game and by scripted runs. Host is the concurrent form backed by real
// tickers.
package loop

import (
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

// Scheduler produces the events for one host step:
// queued commands first, then PlatformTick and CarTick when they are due,
// then the clock Tick. Elapsed starts at 0.
type Scheduler struct {
	platformEvery int
	elapsed       int
	pending       []core.Event
}

// NewScheduler creates a scheduler that moves platforms and cars every
// platformEvery steps. Values below 1 are treated as 1.
func NewScheduler(platformEvery int) *Scheduler {
	if platformEvery < 1 {
		platformEvery = 1
	}
	return &Scheduler{platformEvery: platformEvery}
}

// Push queues commands for the next step.
func (s *Scheduler) Push(events ...core.Event) {
	s.pending = append(s.pending, events...)
}

// Pending returns the number of queued commands.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Elapsed returns the Tick value the next step will emit.
func (s *Scheduler) Elapsed() int {
	return s.elapsed
}

// Step returns the ordered events of one step and advances the clock.
func (s *Scheduler) Step() []core.Event {
	out := make([]core.Event, 0, len(s.pending)+3)
	out = append(out, s.pending...)
	if s.elapsed%s.platformEvery == 0 {
		out = append(out, core.PlatformTick{}, core.CarTick{})
	}
	out = append(out, core.Tick{Elapsed: s.elapsed})

	s.elapsed++
	s.pending = s.pending[:0]
	return out
}

// Advance folds one step into st.
func (s *Scheduler) Advance(st core.State) core.State {
	return core.Last(st, s.Step())
}
