package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.hexpop/configs/hexpop.yaml -> ./configs/hexpop.yaml -> embedded default
func Load(customPath string) (HexpopConfig, error) {
	var cfg HexpopConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexpop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/hexpop.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexpopYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexpop", "configs", filename)
}
