package frogger

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
	fcore "github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, StartLevel: 1})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionLeft)
		case 40:
			input.Set(core.ActionUp)
		case 900:
			input.Set(core.ActionRestart)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	if g.Title() != "Frogger" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if x := g.Board().Frog.X; x != fcore.SpawnX+fcore.StepSize {
		t.Errorf("frog x = %v after right", x)
	}
	if g.State().Score != 0 {
		t.Errorf("sideways move scored %d", g.State().Score)
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	before := g.Board()

	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if !reflect.DeepEqual(before, g.Board()) {
		t.Error("board changed while paused")
	}
	if !g.State().Paused || g.Snapshot().Status != StatusPaused {
		t.Error("pause not reported")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(1)
	g.state.Score = 120
	g.state.HighestScore = 200
	g.state.GameOver = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	st := g.State()
	if st.GameOver {
		t.Fatal("restart did not clear game over")
	}
	if st.Score != 0 {
		t.Errorf("score = %d after restart", st.Score)
	}
	if st.HighScore != 200 {
		t.Errorf("high score = %d, want 200", st.HighScore)
	}
}

func TestLevelClearedReported(t *testing.T) {
	g := newTestGame(1)
	g.state.CheckWin = true

	res := g.Step(core.NewInputFrame())
	if !res.LevelCleared || res.State.Level != 2 {
		t.Errorf("step result = %+v", res)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "SCORE 0000") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), FrogChar) {
		t.Error("frog not drawn")
	}

	var water bool
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == WaterChar && c.Color == core.ColorBlue {
				water = true
			}
		}
	}
	if !water {
		t.Error("river not drawn")
	}

	g.state.GameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}
}

func TestTakeSnapshot(t *testing.T) {
	s := fcore.NewState(9)
	snap := TakeSnapshot(s, false)
	if snap.Status != StatusPlaying || snap.Level != 1 || len(snap.Homes) != fcore.HomeCount {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Cars != nil {
		t.Error("entities included without asking")
	}
	if snap.Zone != "road" {
		t.Errorf("zone = %q", snap.Zone)
	}

	full := TakeSnapshot(s, true)
	if len(full.Cars) != len(s.Cars) || full.Cars[0].ID != "car1" {
		t.Errorf("cars = %+v", full.Cars)
	}
}

func TestPlatformCadenceFromConfig(t *testing.T) {
	every := New()
	every.Reset(core.RuntimeConfig{Seed: 3, StartLevel: 1, PlatformEvery: 1})
	third := New()
	third.Reset(core.RuntimeConfig{Seed: 3, StartLevel: 1, PlatformEvery: 3})

	input := core.NewInputFrame()
	every.Step(input)
	third.Step(input)
	afterFirst := third.Board().Cars

	every.Step(input)
	every.Step(input)
	third.Step(input)
	third.Step(input)

	if !reflect.DeepEqual(third.Board().Cars, afterFirst) {
		t.Error("cars moved between cadence steps")
	}
	if reflect.DeepEqual(every.Board().Cars, third.Board().Cars) {
		t.Error("games with different cadences moved cars alike")
	}
}
