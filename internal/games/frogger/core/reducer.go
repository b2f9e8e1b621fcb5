package core

// Reduce returns the state that follows s after e. The highest score is
// raised to the score after every event.
//
// A pending level clear is applied before anything else, whatever e is.
// Restart always rebuilds the board. While the game is over every other
// event leaves s untouched.
func Reduce(s State, e Event) State {
	next := reduce(s, e)
	next.HighestScore = max(next.HighestScore, next.Score)
	return next
}

func reduce(s State, e Event) State {
	if s.CheckWin {
		return AdvanceLevel(s)
	}
	if _, ok := e.(Restart); ok {
		return RestartState(s)
	}
	if s.GameOver {
		return s
	}

	switch ev := e.(type) {
	case Move:
		return ResolveCollisions(MoveFrog(s, ev))
	case PlatformTick:
		return MovePlatforms(s)
	case CarTick:
		return MoveCars(s)
	case Tick:
		return TickState(s, ev.Elapsed)
	default:
		return s
	}
}

// Fold applies events in order and returns every intermediate state, not
// including s itself.
func Fold(s State, events []Event) []State {
	out := make([]State, 0, len(events))
	for _, e := range events {
		s = Reduce(s, e)
		out = append(out, s)
	}
	return out
}

// Last folds events and returns only the final state.
func Last(s State, events []Event) State {
	for _, e := range events {
		s = Reduce(s, e)
	}
	return s
}
