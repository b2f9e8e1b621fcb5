package core

// Playable area for the frog centre: x in (minFrogX, maxFrogX], y in
// (minFrogY, maxFrogY].
const (
	minFrogX = 20
	maxFrogX = 575
	minFrogY = 50
	maxFrogY = 600

	stepScore = 5
)

func inBounds(x, y float64) bool {
	return x > minFrogX && x <= maxFrogX && y > minFrogY && y <= maxFrogY
}

// moveScore is the score delta for an accepted move command. Moves with no
// horizontal component are worth +5 towards the homes (negative DY) and -5
// away from them; sideways moves are not scored.
func moveScore(m Move) int {
	if m.DX != 0 {
		return 0
	}
	if m.DY < 0 {
		return stepScore
	}
	return -stepScore
}

// MoveFrog applies a move command. Moves that would leave the board are
// dropped without any score change.
func MoveFrog(s State, m Move) State {
	x, y := s.Frog.X+m.DX, s.Frog.Y+m.DY
	if !inBounds(x, y) {
		return s
	}
	s.Frog.X, s.Frog.Y = x, y
	s.Score += moveScore(m)
	return s
}

// carry shifts the frog horizontally with the platform it rides. It uses the
// same bounds as MoveFrog but never scores.
func carry(s State, dx float64) State {
	x := s.Frog.X + dx
	if !inBounds(x, s.Frog.Y) {
		return s
	}
	s.Frog.X = x
	return s
}
