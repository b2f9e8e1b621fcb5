package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Timing: FroggerTiming{
			TickMS:     10,
			PlatformMS: 10,
		},
		Difficulty: DifficultyEasy,
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Server: ServerConfig{
			SSHAddress:         ":23234",
			APIAddress:         ":8080",
			IdleTimeoutMinutes: 30,
		},
	}
}
