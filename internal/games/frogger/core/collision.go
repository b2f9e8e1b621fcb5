package core

// Zone is a horizontal band of the board with its own collision rules.
type Zone int

const (
	ZoneRoad Zone = iota // road lanes, the start strip and the median
	ZoneWater
	ZoneHome
)

// Zone boundaries on the frog's y coordinate.
const (
	homeRowMaxY = 100 // exclusive
	waterMinY   = 125
	waterMaxY   = 300

	homeReward = 50
)

// String returns a human-readable name for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneRoad:
		return "road"
	case ZoneWater:
		return "water"
	case ZoneHome:
		return "home"
	default:
		return "unknown"
	}
}

// ZoneOf classifies a frog y coordinate.
func ZoneOf(y float64) Zone {
	switch {
	case y < homeRowMaxY:
		return ZoneHome
	case y >= waterMinY && y <= waterMaxY:
		return ZoneWater
	default:
		return ZoneRoad
	}
}

// sameRow reports whether a body anchored at top-left y shares the frog's
// row. The frog is stored by its centre, half a row below the top edge.
func sameRow(b Body, frog Frog) bool {
	return b.Y == frog.Y-FrogRadius
}

// Collided reports whether the frog touches b anywhere along b's row.
func Collided(b Body, frog Frog) bool {
	dx := frog.X - b.X
	return dx < 75 && dx > -25 && sameRow(b, frog)
}

// Contained reports whether the frog sits inside b's horizontal extent, away
// from its leading edge. limit is normally b's width minus 25.
func Contained(b Body, frog Frog, limit float64) bool {
	dx := frog.X - b.X
	return dx < limit && dx > 25 && sameRow(b, frog)
}

// ResolveCollisions applies the rules of the zone the frog is in.
func ResolveCollisions(s State) State {
	switch s.Zone() {
	case ZoneRoad:
		return resolveRoad(s)
	case ZoneWater:
		return resolveWater(s)
	case ZoneHome:
		return resolveHome(s)
	default:
		return s
	}
}

func resolveRoad(s State) State {
	for _, c := range s.Cars {
		if Collided(c.Body, s.Frog) {
			s.GameOver = true
			return s
		}
	}
	return s
}

func resolveWater(s State) State {
	for _, c := range s.Crocodiles {
		if c.Kind == KindCrocodileHead && Collided(c.Body, s.Frog) {
			s.GameOver = true
			return s
		}
	}
	for _, p := range s.Plants {
		if Contained(p.Body, s.Frog, p.Width-25) {
			return carry(s, p.Velocity)
		}
	}
	for _, c := range s.Crocodiles {
		if c.Kind == KindCrocodileBody && Contained(c.Body, s.Frog, c.Width-25) {
			return carry(s, c.Velocity)
		}
	}
	// nothing to stand on
	s.GameOver = true
	return s
}

func resolveHome(s State) State {
	for _, h := range s.Homes {
		if !Contained(h.Body, s.Frog, h.Width-25) {
			continue
		}
		switch {
		case h.Fly:
			s.GameOver = true
		case !h.Reached:
			h.Reached = true
			s.Homes = withHome(s.Homes, h.Index, h)
			s.Score += homeReward
			s.CheckWin = s.ReachedCount() == HomeCount
			s.Frog = spawnFrog()
		}
		return s
	}
	s.GameOver = true
	return s
}
