package core

import "fmt"

// Event is anything the reducer consumes. The set is closed: only the types
// in this file implement it.
type Event interface {
	isEvent()
	fmt.Stringer
}

// Tick is the periodic clock pulse. Elapsed counts pulses since start.
type Tick struct {
	Elapsed int
}

// PlatformTick advances plants and crocodiles.
type PlatformTick struct{}

// CarTick advances cars.
type CarTick struct{}

// Move is a directional command. Exactly one of DX, DY is non-zero.
type Move struct {
	DX float64
	DY float64
}

// Restart rebuilds the level-1 board keeping only the highest score.
type Restart struct{}

func (Tick) isEvent()         {}
func (PlatformTick) isEvent() {}
func (CarTick) isEvent()      {}
func (Move) isEvent()         {}
func (Restart) isEvent()      {}

func (e Tick) String() string       { return fmt.Sprintf("tick(%d)", e.Elapsed) }
func (PlatformTick) String() string { return "platform-tick" }
func (CarTick) String() string      { return "car-tick" }
func (e Move) String() string       { return fmt.Sprintf("move(%g,%g)", e.DX, e.DY) }
func (Restart) String() string      { return "restart" }

// Directional commands produced by the input layer.
var (
	MoveUp    = Move{DY: -StepSize}
	MoveDown  = Move{DY: StepSize}
	MoveLeft  = Move{DX: -StepSize}
	MoveRight = Move{DX: StepSize}
)
