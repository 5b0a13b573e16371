package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGobblet loads gobblet configuration.
// Search order: customPath -> ~/.gobblet/configs/gobblet.yaml -> ./configs/gobblet.yaml -> embedded default
func LoadGobblet(customPath string) (GobbletConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GobbletConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("gobblet.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return finish(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "gobblet.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return finish(cfg, "configs/gobblet.yaml")
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultGobbletYAML)
	if err != nil {
		return DefaultGobbletConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded default")
}

// decode unmarshals data over the hardcoded default, so keys missing from
// the file keep their default values.
func decode(data []byte) (GobbletConfig, error) {
	cfg := DefaultGobbletConfig()
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

func finish(cfg GobbletConfig, source string) (GobbletConfig, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (from %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.gobblet, or empty if home is unavailable.
// It holds user configs, the results database and debug logs.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gobblet")
}
