package core

import "fmt"

// Board geometry.
const (
	BoardWidth  = 600
	BoardHeight = 600

	FrogRadius = 25
	RowHeight  = 50
	StepSize   = 50 // distance covered by one move command

	SpawnX = 300
	SpawnY = 575

	HomeWidth  = 96
	HomeHeight = 50
	HomeCount  = 5
)

// NoFlyTarget marks a level where no home has been armed yet.
const NoFlyTarget = -1

func newEntity(kind Kind, id string, x, y, w, h, velocity float64) Entity {
	return Entity{
		Body: Body{
			X:    x,
			Y:    y,
			Kind: kind,
			ID:   id,
		},
		Width:    w,
		Height:   h,
		Velocity: velocity,
	}
}

func newPlant(x, y, w float64, id int, velocity float64) Entity {
	return newEntity(KindPlant, fmt.Sprintf("plant%d", id), x, y, w, RowHeight, velocity)
}

func newCar(x, y float64, id int, velocity float64) Entity {
	kind := KindCar
	if velocity < 0 {
		kind = KindReverseCar
	}
	return newEntity(kind, fmt.Sprintf("car%d", id), x, y, 50, RowHeight, velocity)
}

// Crocodiles are two segments sharing an id space: a lethal 50-wide head and
// a 100-wide body the frog can ride.
func newCrocodile(head bool, x, y float64, id int) Entity {
	cid := fmt.Sprintf("crocodile%d", id)
	if head {
		return newEntity(KindCrocodileHead, cid, x, y, 50, RowHeight, 1)
	}
	return newEntity(KindCrocodileBody, cid, x, y, 100, RowHeight, 1)
}

func newHome(x, y float64, index int) HomeSlot {
	return HomeSlot{
		Body: Body{
			X:    x,
			Y:    y,
			Kind: KindHome,
			ID:   fmt.Sprintf("home%d", index+1),
		},
		Index:  index,
		Width:  HomeWidth,
		Height: HomeHeight,
	}
}

func templateHomes() []HomeSlot {
	homes := make([]HomeSlot, HomeCount)
	for i := range homes {
		homes[i] = newHome(float64(20+116*i), 50, i)
	}
	return homes
}

func templatePlants() []Entity {
	return []Entity{
		newPlant(-100, 150, 400, 1, -2),
		newPlant(50, 250, 125, 2, -1),
		newPlant(300, 250, 125, 3, -1),
		newPlant(550, 250, 125, 4, -1),
	}
}

func templateCars() []Entity {
	return []Entity{
		newCar(550, 500, 1, 1),
		newCar(250, 500, 2, 1),
		newCar(200, 400, 3, 1),
		newCar(400, 400, 4, 1),
		newCar(600, 400, 6, 1),
		newCar(100, 450, 7, -2),
		newCar(600, 350, 8, -2),
		newCar(300, 350, 9, -2),
	}
}

func templateCrocodiles() []Entity {
	return []Entity{
		newCrocodile(true, 100, 100, 1),
		newCrocodile(false, 0, 100, 2),
		newCrocodile(true, 700, 100, 3),
		newCrocodile(false, 600, 100, 4),
		newCrocodile(true, 150, 200, 5),
		newCrocodile(false, 50, 200, 6),
		newCrocodile(true, 750, 200, 7),
		newCrocodile(false, 650, 200, 8),
		newCrocodile(true, 450, 200, 9),
		newCrocodile(false, 350, 200, 10),
		newCrocodile(true, 400, 100, 11),
		newCrocodile(false, 300, 100, 12),
	}
}

func spawnFrog() Frog {
	return Frog{Body: Body{X: SpawnX, Y: SpawnY, Kind: KindFrog, ID: "frog"}}
}

// NewState builds the level-1 board. The RNG is seeded with seed (0 draws a
// clock-based seed).
func NewState(seed int64) State {
	return newStateWithRNG(NewRNG(seed))
}

func newStateWithRNG(rng RNG) State {
	return State{
		Frog:       spawnFrog(),
		Plants:     templatePlants(),
		Cars:       templateCars(),
		Crocodiles: templateCrocodiles(),
		Homes:      templateHomes(),
		Level:      1,
		FlyTarget:  NoFlyTarget,
		RNG:        rng,
		seedRNG:    rng,
		startLevel: 1,
	}
}
