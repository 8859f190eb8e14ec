package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake configuration.
// Search order: customPath -> ~/.gameloop/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Values missing from a file keep their defaults. Files ending in .toml are decoded as TOML.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (SnakeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, false
	}
	cfg := DefaultSnakeConfig()
	if err := decode(path, data, &cfg); err != nil {
		return SnakeConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, false
	}
	return cfg, true
}

// decode unmarshals data into cfg, choosing the format from the file extension.
func decode(path string, data []byte, cfg *SnakeConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gameloop", "configs", filename)
}
