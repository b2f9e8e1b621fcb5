package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepEntity(t *testing.T) {
	tests := []struct {
		name  string
		e     Entity
		level int
		wantX float64
	}{
		{"plant moves left", newPlant(50, 250, 125, 2, -1), 1, 49},
		{"plant wraps", newPlant(-401, 150, 400, 1, -2), 1, 598},
		{"plant at edge does not wrap", newPlant(-400, 150, 400, 1, -2), 1, -402},
		{"plant level bonus", newPlant(50, 250, 125, 2, -1), 3, 48.2},
		{"crocodile moves right", newCrocodile(false, 0, 100, 2), 1, 1},
		{"crocodile wraps", newCrocodile(true, 751, 100, 1), 1, -149},
		{"crocodile level bonus", newCrocodile(true, 100, 100, 1), 2, 101.4},
		{"car right", newCar(400, 400, 4, 1), 1, 401},
		{"car right wraps", newCar(601, 400, 6, 1), 1, -24},
		{"car right level bonus", newCar(400, 400, 4, 1), 3, 401.8},
		{"car left", newCar(100, 450, 7, -2), 1, 98},
		{"car left wraps", newCar(-26, 450, 7, -2), 1, 598},
		{"car left level bonus", newCar(100, 450, 7, -2), 2, 97.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepEntity(tt.e, tt.level)
			if !approx(got.X, tt.wantX) {
				t.Errorf("x = %v, want %v", got.X, tt.wantX)
			}
			if got.Y != tt.e.Y || got.ID != tt.e.ID || got.Width != tt.e.Width {
				t.Errorf("step changed more than x: %+v -> %+v", tt.e, got)
			}
		})
	}
}

func TestMoveCarsLeavesPlatforms(t *testing.T) {
	s := NewState(1)
	next := MoveCars(s)
	for i := range s.Plants {
		if next.Plants[i].X != s.Plants[i].X {
			t.Errorf("plant %s moved on a car tick", s.Plants[i].ID)
		}
	}
	for i := range s.Cars {
		if next.Cars[i].X == s.Cars[i].X {
			t.Errorf("car %s did not move", s.Cars[i].ID)
		}
	}
	// the input keeps its own slice
	if s.Cars[0].X != 550 {
		t.Errorf("input state mutated: car1 x = %v", s.Cars[0].X)
	}
}

func TestWraparoundStaysOnBoard(t *testing.T) {
	for _, level := range []int{1, 3, 6} {
		s := WithStartLevel(NewState(1), level)
		// largest per-tick displacement at this level
		slack := 2 + float64(level-1)*0.6

		for i := 0; i < 5000; i++ {
			s = MoveCars(MovePlatforms(s))
			for _, group := range [][]Entity{s.Plants, s.Cars, s.Crocodiles} {
				for _, e := range group {
					if e.Right() < -150-slack || e.X > 750+slack {
						t.Fatalf("level %d tick %d: %s out of range at x=%v", level, i, e.ID, e.X)
					}
				}
			}
		}
	}
}
