package core

// State is one immutable snapshot of the game. Reduce never modifies a State
// it receives; slices are replaced wholesale when an element changes.
type State struct {
	Frog       Frog
	Plants     []Entity
	Cars       []Entity
	Crocodiles []Entity
	Homes      []HomeSlot

	GameOver     bool
	Score        int
	HighestScore int
	CheckWin     bool
	Level        int
	FlyTarget    int // index into Homes, NoFlyTarget until armed
	RNG          RNG

	seedRNG    RNG // generator the first board was built with, reused on restart
	startLevel int
}

// ReachedCount returns the number of homes the frog has landed in.
func (s State) ReachedCount() int {
	n := 0
	for _, h := range s.Homes {
		if h.Reached {
			n++
		}
	}
	return n
}

// FlyHome returns the armed home slot and whether one is armed.
func (s State) FlyHome() (HomeSlot, bool) {
	if s.FlyTarget < 0 || s.FlyTarget >= len(s.Homes) {
		return HomeSlot{}, false
	}
	return s.Homes[s.FlyTarget], true
}

// Zone returns the board zone the frog currently occupies.
func (s State) Zone() Zone {
	return ZoneOf(s.Frog.Y)
}

// withHome returns a copy of homes with the slot at index replaced.
func withHome(homes []HomeSlot, index int, h HomeSlot) []HomeSlot {
	out := make([]HomeSlot, len(homes))
	copy(out, homes)
	out[index] = h
	return out
}
