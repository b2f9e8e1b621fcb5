package core

// Wraparound limits and per-level speed bonuses.
const (
	plantWrapX      = 600
	crocodileLimitX = 750
	crocodileWrapX  = -150
	carRightLimitX  = 600
	carRightWrapX   = -25
	carLeftLimitX   = -25
	carLeftWrapX    = 600

	waterSpeedPerLevel    = 0.4
	carRightSpeedPerLevel = 0.4
	carLeftSpeedPerLevel  = 0.6
)

// levelBonus is the speed increment added at level.
func levelBonus(perLevel float64, level int) float64 {
	return perLevel * float64(level-1)
}

// stepEntity wraps e if it left the board on the previous tick, then moves it
// by its velocity plus the level bonus for its kind.
func stepEntity(e Entity, level int) Entity {
	switch e.Kind {
	case KindPlant:
		if e.X < -e.Width {
			e = e.withX(plantWrapX)
		}
		return e.withX(e.X + e.Velocity - levelBonus(waterSpeedPerLevel, level))
	case KindCrocodileHead, KindCrocodileBody:
		if e.X > crocodileLimitX {
			e = e.withX(crocodileWrapX)
		}
		return e.withX(e.X + e.Velocity + levelBonus(waterSpeedPerLevel, level))
	case KindCar, KindReverseCar:
		if e.Velocity > 0 {
			if e.X > carRightLimitX {
				e = e.withX(carRightWrapX)
			}
			return e.withX(e.X + e.Velocity + levelBonus(carRightSpeedPerLevel, level))
		}
		if e.X < carLeftLimitX {
			e = e.withX(carLeftWrapX)
		}
		return e.withX(e.X + e.Velocity - levelBonus(carLeftSpeedPerLevel, level))
	case KindFrog, KindHome:
		return e
	default:
		return e
	}
}

func stepAll(entities []Entity, level int) []Entity {
	out := make([]Entity, len(entities))
	for i, e := range entities {
		out[i] = stepEntity(e, level)
	}
	return out
}

// MovePlatforms advances plants and crocodiles by one tick.
func MovePlatforms(s State) State {
	s.Plants = stepAll(s.Plants, s.Level)
	s.Crocodiles = stepAll(s.Crocodiles, s.Level)
	return s
}

// MoveCars advances every car by one tick.
func MoveCars(s State) State {
	s.Cars = stepAll(s.Cars, s.Level)
	return s
}
