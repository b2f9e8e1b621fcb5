package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const froggerFile = "frogger.yaml"

// LoadFrogger loads the Frogger configuration.
// Search order: customPath -> ~/.arcade/configs/frogger.yaml ->
// ./configs/frogger.yaml -> embedded default.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	cfg := embeddedFrogger()

	// An explicit path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(froggerFile), filepath.Join("configs", froggerFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	return cfg, nil
}

func embeddedFrogger() FroggerConfig {
	cfg := DefaultFroggerConfig()
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil {
		return DefaultFroggerConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
