package loop

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

// Command names accepted in scripts.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandLeft    = "left"
	CommandRight   = "right"
	CommandRestart = "restart"
)

// ScriptEntry is one command issued at a given step.
type ScriptEntry struct {
	At    int    `yaml:"at" json:"at"`
	Event string `yaml:"event" json:"event"`
}

// Script is a recorded run: a seed plus the commands issued at each step.
// Replaying the same script always produces the same final state.
type Script struct {
	Seed          int64         `yaml:"seed" json:"seed"`
	StartLevel    int           `yaml:"start_level,omitempty" json:"start_level,omitempty"`
	Steps         int           `yaml:"steps" json:"steps"`
	PlatformEvery int           `yaml:"platform_every,omitempty" json:"platform_every,omitempty"`
	Events        []ScriptEntry `yaml:"events" json:"events"`
}

// CommandEvent maps a script command name to its event.
func CommandEvent(name string) (core.Event, error) {
	switch name {
	case CommandUp:
		return core.MoveUp, nil
	case CommandDown:
		return core.MoveDown, nil
	case CommandLeft:
		return core.MoveLeft, nil
	case CommandRight:
		return core.MoveRight, nil
	case CommandRestart:
		return core.Restart{}, nil
	default:
		return nil, fmt.Errorf("loop: unknown command %q", name)
	}
}

// LoadScript reads and validates a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loop: read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("loop: parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks step bounds and command names, and sorts entries by step.
func (s *Script) Validate() error {
	if s.Steps <= 0 {
		return fmt.Errorf("loop: script steps must be positive, got %d", s.Steps)
	}
	for i, e := range s.Events {
		if e.At < 0 || e.At >= s.Steps {
			return fmt.Errorf("loop: script event %d: step %d outside [0, %d)", i, e.At, s.Steps)
		}
		if _, err := CommandEvent(e.Event); err != nil {
			return fmt.Errorf("loop: script event %d: %w", i, err)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].At < s.Events[j].At
	})
	return nil
}

// Initial returns the state the script starts from.
func (s *Script) Initial() core.State {
	return core.WithStartLevel(core.NewState(s.Seed), s.StartLevel)
}

// commandsAt groups command events by step. Validate must have passed.
func (s *Script) commandsAt() map[int][]core.Event {
	out := make(map[int][]core.Event)
	for _, e := range s.Events {
		ev, _ := CommandEvent(e.Event)
		out[e.At] = append(out[e.At], ev)
	}
	return out
}

// each runs the script headless through a Scheduler, calling fn with the
// state after every step.
func (s *Script) each(fn func(core.State)) {
	sched := NewScheduler(s.PlatformEvery)
	cmds := s.commandsAt()
	st := s.Initial()
	for step := 0; step < s.Steps; step++ {
		sched.Push(cmds[step]...)
		st = sched.Advance(st)
		fn(st)
	}
}

// Replay returns the state after every step.
func (s *Script) Replay() []core.State {
	out := make([]core.State, 0, s.Steps)
	s.each(func(st core.State) { out = append(out, st) })
	return out
}

// Final returns only the state after the last step.
func (s *Script) Final() core.State {
	last := s.Initial()
	s.each(func(st core.State) { last = st })
	return last
}

// Play sends the script's commands to a running host in real time, one
// step being tick long. It returns once the last step has elapsed.
func (s *Script) Play(ctx context.Context, h *Host, tick time.Duration) error {
	start := time.Now()
	wait := func(step int) error {
		d := time.Until(start.Add(time.Duration(step) * tick))
		if d <= 0 {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}

	for _, e := range s.Events {
		if err := wait(e.At); err != nil {
			return err
		}
		ev, err := CommandEvent(e.Event)
		if err != nil {
			return err
		}
		if err := h.Send(ctx, ev); err != nil {
			return fmt.Errorf("loop: play script: %w", err)
		}
	}
	return wait(s.Steps)
}
