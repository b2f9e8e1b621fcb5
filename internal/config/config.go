// Package config provides YAML-based configuration loading and difficulty
// presets for the Frogger arcade.
package config

import (
	"fmt"
	"time"
)

// FroggerConfig contains all configuration for the Frogger game and the
// services around it.
type FroggerConfig struct {
	Timing     FroggerTiming    `yaml:"timing"`
	Game       FroggerGame      `yaml:"game"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// FroggerTiming defines the real-time clocks that drive the reducer.
type FroggerTiming struct {
	TickMS     int `yaml:"tick_ms"`
	PlatformMS int `yaml:"platform_ms"`
}

// FroggerGame defines per-run game parameters.
type FroggerGame struct {
	Seed int64 `yaml:"seed"` // 0 = time based
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig holds the SSH and HTTP listener settings.
type ServerConfig struct {
	SSHAddress         string `yaml:"ssh_address"`
	APIAddress         string `yaml:"api_address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// TickInterval returns the clock pulse interval.
func (t FroggerTiming) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// PlatformInterval returns the platform and car movement interval.
func (t FroggerTiming) PlatformInterval() time.Duration {
	return time.Duration(t.PlatformMS) * time.Millisecond
}

// PlatformEvery returns how many clock pulses pass between two platform
// moves, at least 1.
func (t FroggerTiming) PlatformEvery() int {
	if t.TickMS <= 0 {
		return 1
	}
	return max(1, t.PlatformMS/t.TickMS)
}

// IdleTimeout returns the SSH idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// StartLevel returns the first level for the configured difficulty.
func (c FroggerConfig) StartLevel() int {
	return StartLevelForPreset(c.Difficulty)
}

// Validate rejects configurations the game cannot run with.
func (c FroggerConfig) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("config: timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	}
	if c.Timing.PlatformMS <= 0 {
		return fmt.Errorf("config: timing.platform_ms must be positive, got %d", c.Timing.PlatformMS)
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative")
	}
	return nil
}
