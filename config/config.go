// Package config loads server configuration from YAML, searching the XDG
// config path when no explicit file is given.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"landbattle/game"
)

const cfgFile = "landbattle/config.yaml"

// Config is the server and rule configuration.
type Config struct {
	Listen   string      `yaml:"listen"`
	LogLevel string      `yaml:"log_level"`
	Rules    RulesConfig `yaml:"rules"`
}

// RulesConfig mirrors the adjustable game rules.
type RulesConfig struct {
	BombBeatsLandmine bool `yaml:"bomb_beats_landmine"`
	MaxMoves          int  `yaml:"max_moves"`
}

// Default returns the built-in configuration.
func Default() Config {
	std := game.StandardRules()
	return Config{
		Listen:   "127.0.0.1:3000",
		LogLevel: "info",
		Rules: RulesConfig{
			BombBeatsLandmine: std.BombBeatsLandmine,
			MaxMoves:          std.MaxMoves,
		},
	}
}

// Load reads configuration from path. With an empty path the XDG config
// directories are searched; a missing file just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			return cfg, nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address is empty")
	}
	if c.Rules.MaxMoves < 0 {
		return fmt.Errorf("config: max_moves must not be negative")
	}
	return nil
}

// GameRules converts the config into the engine's rule set.
func (c Config) GameRules() game.Rules {
	return game.Rules{
		BombBeatsLandmine: c.Rules.BombBeatsLandmine,
		MaxMoves:          c.Rules.MaxMoves,
	}
}
