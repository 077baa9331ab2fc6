package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const configFile = "tweety.yaml"

// LoadTweety loads Tweety Escape configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tweety/tweety.yaml -> ./configs/tweety.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names. The result is validated.
func LoadTweety(customPath string) (TweetyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TweetyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTweety(data)
		if err != nil {
			return TweetyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTweety(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parseTweety(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTweety(defaultTweetyYAML)
	if err != nil {
		return DefaultTweetyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTweety decodes data over the hardcoded defaults and validates it.
func parseTweety(data []byte) (TweetyConfig, error) {
	cfg := DefaultTweetyConfig()
	// Explicit tiers replace the default table instead of merging by index.
	cfg.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TweetyConfig{}, err
	}
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTweetyConfig().Tiers
	}
	if err := cfg.Validate(); err != nil {
		return TweetyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path of an existing user config file, or empty if none is found.
func userConfigPath(filename string) string {
	path, err := xdg.SearchConfigFile(filepath.Join("tweety", filename))
	if err != nil {
		return ""
	}
	return path
}
