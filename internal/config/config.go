// Package config loads the optional mystref YAML configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked for when none is given.
const DefaultPath = "mystref.yaml"

// Config holds tree-wide defaults. CLI flags override these per invocation.
type Config struct {
	// Root is the documentation root directory.
	Root string `yaml:"root"`

	// Exclude holds discovery exclude patterns (path.Match syntax, matched
	// against slash-separated paths relative to Root).
	Exclude []string `yaml:"exclude,omitempty"`

	// LevelOneOnly restricts annotation to top-level headings.
	LevelOneOnly bool `yaml:"level_one_only,omitempty"`

	// PreserveLinkText keeps display text in rewritten references.
	PreserveLinkText bool `yaml:"preserve_link_text,omitempty"`

	// WatchDebounce is the settle delay for watch mode, e.g. "2s".
	WatchDebounce string `yaml:"watch_debounce,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Root: "."}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.WatchDebounce, validation.By(validDuration)),
	)
}

func validDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration such as 2s: %w", err)
	}
	return nil
}

// Debounce returns the watch settle delay, defaulting to 2 seconds.
func (c *Config) Debounce() time.Duration {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Load reads and validates the configuration at path. A missing file at the
// default path yields Default(); a missing file at an explicit path is an
// error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
