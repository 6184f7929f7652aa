// Package config loads and validates nib.yml, the optional per-project
// tool configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dyluth/nib/pkg/notebook"
)

// DefaultPath is where nib looks for project configuration.
const DefaultPath = "nib.yml"

// Config represents the top-level nib.yml configuration.
//
// It only shapes what nib creates (the starter notebook written by
// `nib init`); the wire-format defaults used during decoding are fixed by
// the format contract and deliberately not configurable.
type Config struct {
	Version string   `yaml:"version"`
	Kernel  string   `yaml:"kernel,omitempty"`  // kernel name for scaffolded notebooks
	Authors []string `yaml:"authors,omitempty"` // authors list for scaffolded notebooks
}

// Default returns the configuration used when no nib.yml exists.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Kernel:  notebook.DefaultKernel,
	}
}

// Validate performs strict validation on the configuration and applies
// defaults for omitted optional fields.
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Optional: kernel, defaulting to the wire-format default
	if c.Kernel == "" {
		c.Kernel = notebook.DefaultKernel
	}

	// Authors must not contain blank entries
	for i, author := range c.Authors {
		if strings.TrimSpace(author) == "" {
			return fmt.Errorf("authors[%d] is blank", i)
		}
	}

	return nil
}

// Load reads and validates nib.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads nib.yml from path when it exists, or returns the
// default configuration when it does not. A file that exists but fails to
// parse or validate is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
