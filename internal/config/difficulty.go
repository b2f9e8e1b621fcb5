package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset accepts a preset name case-insensitively. An empty name is
// easy.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyEasy, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// StartLevelForPreset returns the level a run starts at. Every level above
// the first makes the traffic and the river faster.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// ApplyFroggerPreset sets the difficulty on cfg.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
}
