package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type animationOverrides struct {
	Animations map[string]AnimationDef `yaml:"animations"`
}

// Load reads a YAML override file on top of Default. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides to Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var overrides animationOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse animations: %w", err)
	}
	for name, def := range overrides.Animations {
		state, ok := ParseStateID(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownState, name)
		}
		cfg.Animations[state] = def
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (c *Config) Validate() error {
	if err := c.Animations.Validate(); err != nil {
		return err
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Skill.DeckSize <= 0 {
		return fmt.Errorf("deck size must be positive, got %d", c.Skill.DeckSize)
	}
	if c.Player.SummonLimit < 0 {
		return fmt.Errorf("summon limit must not be negative, got %d", c.Player.SummonLimit)
	}
	if c.Space.CellSize <= 0 {
		return fmt.Errorf("space cell size must be positive, got %d", c.Space.CellSize)
	}
	return nil
}
