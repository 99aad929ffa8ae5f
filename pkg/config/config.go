package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"linesift/pkg/command"
)

// Load reads and validates a preset file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks every preset and parses its command tokens, so a bad
// preset fails here rather than mid-run.
func Validate(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Presets))

	for i := range cfg.Presets {
		p := &cfg.Presets[i]
		if err := validatePreset(p); err != nil {
			return fmt.Errorf("presets[%d] (%s): %w", i, p.Name, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("presets[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

func validatePreset(p *Preset) error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if len(p.Commands) == 0 {
		return errors.New("at least one command is required")
	}
	for _, token := range p.Commands {
		if _, err := command.Parse(token); err != nil {
			return err
		}
	}
	return nil
}
