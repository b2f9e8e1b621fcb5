package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW       int   // Screen width in characters
	ScreenH       int   // Screen height in characters
	TickRate      int   // Simulation ticks per second
	Seed          int64 // RNG seed, 0 picks one from the clock
	StartLevel    int   // first level of a run, 0 or 1 for the normal start
	PlatformEvery int   // steps between platform and car moves, 0 means every step
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		StartLevel:    1,
		PlatformEvery: 1,
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score     int
	HighScore int // best score of this session
	Level     int
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// LevelCleared is set on the step that started a new level.
	LevelCleared bool
}
