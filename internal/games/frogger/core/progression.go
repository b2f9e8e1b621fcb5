package core

// Fly-trap cadence in elapsed ticks.
const (
	flyOnEvery  = 2000
	flyOffEvery = 1000
)

// AdvanceLevel rebuilds the board for the next level. Score, highest score
// and the generator carry over; homes start empty again.
func AdvanceLevel(s State) State {
	next := newStateWithRNG(s.RNG)
	next.seedRNG = s.seedRNG
	next.startLevel = s.startLevel
	next.Level = s.Level + 1
	next.Score = s.Score
	next.HighestScore = s.HighestScore
	return next
}

// RestartState rebuilds the starting board (level 1 unless WithStartLevel
// said otherwise) with the generator it was first built with. Only the
// highest score survives.
func RestartState(s State) State {
	next := newStateWithRNG(s.seedRNG)
	next.Level = max(1, s.startLevel)
	next.startLevel = next.Level
	next.HighestScore = s.HighestScore
	return next
}

// WithStartLevel returns s playing at level, which restarts also return to.
// Levels below 1 are treated as 1.
func WithStartLevel(s State, level int) State {
	if level < 1 {
		level = 1
	}
	s.Level = level
	s.startLevel = level
	return s
}

// unreachedHomes returns the indices of homes still open.
func unreachedHomes(homes []HomeSlot) []int {
	var out []int
	for _, h := range homes {
		if !h.Reached {
			out = append(out, h.Index)
		}
	}
	return out
}

// armFly picks the fly target among unreached homes if none is armed yet.
func armFly(s State) State {
	if s.FlyTarget != NoFlyTarget {
		return s
	}
	open := unreachedHomes(s.Homes)
	if len(open) == 0 {
		return s
	}
	pick, rng := s.RNG.NextRange(len(open))
	s.FlyTarget = open[pick]
	s.RNG = rng
	return s
}

// toggleFly switches the armed slot's trap on or off on the cadence ticks.
func toggleFly(s State, elapsed int) State {
	h, ok := s.FlyHome()
	if !ok {
		return s
	}
	switch {
	case elapsed%flyOnEvery == 0:
		h.Fly = true
	case elapsed%flyOffEvery == 0:
		h.Fly = false
	default:
		return s
	}
	s.Homes = withHome(s.Homes, h.Index, h)
	return s
}

// TickState applies one clock pulse: highest score bookkeeping, fly trap
// scheduling, one generator step, then collision rules.
func TickState(s State, elapsed int) State {
	s.HighestScore = max(s.HighestScore, s.Score)
	s = armFly(s)
	s = toggleFly(s, elapsed)
	s.RNG = s.RNG.Next()
	return ResolveCollisions(s)
}
