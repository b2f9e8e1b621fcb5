package loop

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler(1)
	s.Push(core.MoveUp, core.MoveLeft)

	got := s.Step()
	want := []core.Event{core.MoveUp, core.MoveLeft, core.PlatformTick{}, core.CarTick{}, core.Tick{Elapsed: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Step() = %v, want %v", got, want)
	}

	got = s.Step()
	want = []core.Event{core.PlatformTick{}, core.CarTick{}, core.Tick{Elapsed: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("second Step() = %v, want %v", got, want)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after step", s.Pending())
	}
}

func TestSchedulerPlatformEvery(t *testing.T) {
	s := NewScheduler(3)
	platforms := 0
	for i := 0; i < 9; i++ {
		for _, e := range s.Step() {
			if _, ok := e.(core.PlatformTick); ok {
				platforms++
			}
		}
	}
	if platforms != 3 {
		t.Errorf("platform ticks = %d, want 3", platforms)
	}
	if s.Elapsed() != 9 {
		t.Errorf("elapsed = %d, want 9", s.Elapsed())
	}
}

const sampleScript = `
seed: 42
steps: 600
events:
  - at: 300
    event: left
  - at: 10
    event: up
  - at: 500
    event: restart
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Seed != 42 || s.Steps != 600 || len(s.Events) != 3 {
		t.Fatalf("unexpected script %+v", s)
	}
	if s.Events[0].At != 10 || s.Events[2].At != 500 {
		t.Errorf("events not sorted by step: %+v", s.Events)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no steps", "seed: 1\n", "steps must be positive"},
		{"bad command", "steps: 5\nevents:\n  - at: 1\n    event: jump\n", "unknown command"},
		{"late event", "steps: 5\nevents:\n  - at: 5\n    event: up\n", "outside"},
		{"bad yaml", "steps: [", "parse script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatal(err)
	}

	a := s.Replay()
	b := s.Replay()
	if len(a) != s.Steps {
		t.Fatalf("Replay returned %d states, want %d", len(a), s.Steps)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two replays of the same script differ")
	}
	if !reflect.DeepEqual(s.Final(), a[len(a)-1]) {
		t.Error("Final disagrees with Replay")
	}
}

func TestReplayAppliesCommands(t *testing.T) {
	s := &Script{Seed: 3, Steps: 5, Events: []ScriptEntry{{At: 2, Event: CommandRight}}}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	states := s.Replay()
	if states[1].Frog.X != core.SpawnX {
		t.Errorf("frog moved before its step: x = %v", states[1].Frog.X)
	}
	if states[2].Frog.X != core.SpawnX+core.StepSize {
		t.Errorf("frog x = %v after right, want %v", states[2].Frog.X, core.SpawnX+core.StepSize)
	}
}

func TestHostRunsAndStops(t *testing.T) {
	var (
		mu     sync.Mutex
		states []core.State
	)
	h := NewHost(core.NewState(1), Options{
		Tick:     time.Millisecond,
		Platform: time.Millisecond,
		Publish: func(s core.State) {
			mu.Lock()
			states = append(states, s)
			mu.Unlock()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan core.State, 1)
	go func() {
		st, _ := h.Run(ctx)
		result <- st
	}()

	if err := h.Send(ctx, core.MoveLeft); err != nil {
		t.Fatalf("Send: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	cancel()
	final := <-result

	if final.Frog.X != core.SpawnX-core.StepSize {
		t.Errorf("frog x = %v, want %v", final.Frog.X, core.SpawnX-core.StepSize)
	}
	mu.Lock()
	n := len(states)
	mu.Unlock()
	if n < 2 {
		t.Errorf("published %d states, want clock events too", n)
	}

	if err := h.Send(context.Background(), core.MoveUp); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Run = %v, want ErrClosed", err)
	}
}

func TestHostPause(t *testing.T) {
	published := 0
	initial := core.NewState(1)
	h := NewHost(initial, Options{
		Tick:     time.Millisecond,
		Platform: time.Millisecond,
		Publish:  func(core.State) { published++ },
	})
	h.Pause()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	final, err := h.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if published != 0 {
		t.Errorf("paused host published %d states", published)
	}
	if final.Cars[0].X != initial.Cars[0].X {
		t.Error("cars moved while paused")
	}
}
