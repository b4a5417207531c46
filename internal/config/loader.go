package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "walk.yaml"

// LoadWalk loads the game configuration.
// Search order: customPath -> ~/.walkthedog/configs/walk.yaml -> ./configs/walk.yaml -> embedded default
//
// Files only need to set the values they change; everything else keeps its
// default. A custom path that cannot be read or is invalid is an error; the
// other locations are skipped with a warning.
func LoadWalk(customPath string) (WalkConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return WalkConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			log.Warn("ignoring config", "path", path, "err", err)
			continue
		}
		log.Debug("loaded config", "path", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWalkYAML)
	if err != nil {
		return DefaultWalkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (WalkConfig, error) {
	cfg := DefaultWalkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WalkConfig{}, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WalkConfig{}, err
	}
	return cfg, nil
}

func loadFile(path string) (WalkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WalkConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return WalkConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".walkthedog", "configs", filename)
}
