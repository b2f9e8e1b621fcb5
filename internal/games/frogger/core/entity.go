// Package core implements the Frogger rules as a pure state reducer.
// It has no I/O, no clocks and no shared mutable state: every event produces
// a new State value from the previous one.
package core

// Kind tags every body on the board.
type Kind int

const (
	KindFrog Kind = iota
	KindPlant
	KindCar
	KindReverseCar
	KindCrocodileBody
	KindCrocodileHead
	KindHome
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFrog:
		return "frog"
	case KindPlant:
		return "plant"
	case KindCar:
		return "car"
	case KindReverseCar:
		return "reverse-car"
	case KindCrocodileBody:
		return "crocodile"
	case KindCrocodileHead:
		return "crocodile-head"
	case KindHome:
		return "home"
	default:
		return "unknown"
	}
}

// Body is the positioned part shared by every entity.
type Body struct {
	X    float64
	Y    float64
	Kind Kind
	ID   string
}

// Frog is the player. It is stored as a point and collides as a disk of
// radius FrogRadius.
type Frog struct {
	Body
}

// Entity is a moving axis-aligned rectangle anchored at its top-left corner:
// plants, cars and crocodile segments.
type Entity struct {
	Body
	Width    float64
	Height   float64
	Velocity float64 // signed, sign is the travel direction
}

// HomeSlot is one of the goal slots on the top row.
type HomeSlot struct {
	Body
	Index   int // 0-based construction order
	Width   float64
	Height  float64
	Reached bool
	Fly     bool // lethal while set
}

// IsCar reports whether the entity is a car of either direction.
func (e Entity) IsCar() bool {
	return e.Kind == KindCar || e.Kind == KindReverseCar
}

// Right returns the x-coordinate of the right edge.
func (e Entity) Right() float64 {
	return e.X + e.Width
}

// withX returns a copy of the entity moved to x.
func (e Entity) withX(x float64) Entity {
	e.X = x
	return e
}
