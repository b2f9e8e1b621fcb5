package frogger

import (
	fcore "github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

// Status summarizes where a run stands.
type Status string

const (
	StatusPlaying    Status = "playing"
	StatusLevelClear Status = "level_clear"
	StatusGameOver   Status = "game_over"
	StatusPaused     Status = "paused"
)

// EntitySnapshot is the exported view of one moving entity.
type EntitySnapshot struct {
	ID       string  `yaml:"id" json:"id"`
	Kind     string  `yaml:"kind" json:"kind"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Width    float64 `yaml:"width" json:"width"`
	Velocity float64 `yaml:"velocity" json:"velocity"`
}

// HomeSnapshot is the exported view of a home slot.
type HomeSnapshot struct {
	ID      string  `yaml:"id" json:"id"`
	X       float64 `yaml:"x" json:"x"`
	Reached bool    `yaml:"reached" json:"reached"`
	Fly     bool    `yaml:"fly" json:"fly"`
}

// Snapshot is a read-only projection of a reducer state, used for
// determinism checks, the simulate command and the HTTP API.
type Snapshot struct {
	Status       Status           `yaml:"status" json:"status"`
	Score        int              `yaml:"score" json:"score"`
	HighestScore int              `yaml:"highest_score" json:"highest_score"`
	Level        int              `yaml:"level" json:"level"`
	FrogX        float64          `yaml:"frog_x" json:"frog_x"`
	FrogY        float64          `yaml:"frog_y" json:"frog_y"`
	Zone         string           `yaml:"zone" json:"zone"`
	FlyTarget    int              `yaml:"fly_target" json:"fly_target"`
	RNGState     int64            `yaml:"rng_state" json:"rng_state"`
	Homes        []HomeSnapshot   `yaml:"homes" json:"homes"`
	Plants       []EntitySnapshot `yaml:"plants,omitempty" json:"plants,omitempty"`
	Cars         []EntitySnapshot `yaml:"cars,omitempty" json:"cars,omitempty"`
	Crocodiles   []EntitySnapshot `yaml:"crocodiles,omitempty" json:"crocodiles,omitempty"`
}

// TakeSnapshot projects s. Entities are included only when withEntities is
// set, to keep summaries short.
func TakeSnapshot(s fcore.State, withEntities bool) Snapshot {
	status := StatusPlaying
	switch {
	case s.GameOver:
		status = StatusGameOver
	case s.CheckWin:
		status = StatusLevelClear
	}

	snap := Snapshot{
		Status:       status,
		Score:        s.Score,
		HighestScore: s.HighestScore,
		Level:        s.Level,
		FrogX:        s.Frog.X,
		FrogY:        s.Frog.Y,
		Zone:         s.Zone().String(),
		FlyTarget:    s.FlyTarget,
		RNGState:     s.RNG.State(),
		Homes:        make([]HomeSnapshot, len(s.Homes)),
	}
	for i, h := range s.Homes {
		snap.Homes[i] = HomeSnapshot{ID: h.ID, X: h.X, Reached: h.Reached, Fly: h.Fly}
	}
	if withEntities {
		snap.Plants = entitySnapshots(s.Plants)
		snap.Cars = entitySnapshots(s.Cars)
		snap.Crocodiles = entitySnapshots(s.Crocodiles)
	}
	return snap
}

func entitySnapshots(es []fcore.Entity) []EntitySnapshot {
	out := make([]EntitySnapshot, len(es))
	for i, e := range es {
		out[i] = EntitySnapshot{
			ID:       e.ID,
			Kind:     e.Kind.String(),
			X:        e.X,
			Y:        e.Y,
			Width:    e.Width,
			Velocity: e.Velocity,
		}
	}
	return out
}

// Snapshot returns the current game snapshot, entities included.
func (g *Game) Snapshot() Snapshot {
	snap := TakeSnapshot(g.state, true)
	if g.paused && snap.Status == StatusPlaying {
		snap.Status = StatusPaused
	}
	return snap
}
