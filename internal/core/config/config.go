// Package config handles configuration loading and validation for contactform.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/contactform/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme string     `yaml:"theme"`
	Form  FormConfig `yaml:"form"`
}

// FormConfig controls the presentation of the form. Validation rules are
// fixed and not configurable.
type FormConfig struct {
	SubmitLabel  string       `yaml:"submit_label"`
	Placeholders Placeholders `yaml:"placeholders"`
}

// Placeholders holds the hint text shown in empty inputs.
type Placeholders struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Message   string `yaml:"message"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Form: FormConfig{
			SubmitLabel: "Submit",
			Placeholders: Placeholders{
				FirstName: "Edd",
				LastName:  "Burke",
				Email:     "bluebill1049@hotmail.com",
			},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Form.SubmitLabel == "" {
		c.Form.SubmitLabel = defaults.Form.SubmitLabel
	}
}

// Palette returns the palette of the configured theme.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}
