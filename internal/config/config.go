// Package config holds settings for the boggle command-line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarthakjha889/go-boggle-trie/dictionary"
)

// Sort orders accepted for found words.
const (
	SortLength = "length"
	SortAlpha  = "alpha"
)

// Config is the tool's configuration. Zero values are replaced by Default.
type Config struct {
	Dictionary string `yaml:"dictionary"`
	MinLength  int    `yaml:"min_length"`
	Normalise  bool   `yaml:"normalise"`
	Workers    int    `yaml:"workers"`
	Sort       string `yaml:"sort"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Dictionary: "words.txt",
		MinLength:  dictionary.DefaultMinLength,
		Workers:    1,
		Sort:       SortLength,
	}
}

// Load reads a YAML file, expanding environment variables, on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the tool cannot act on.
func (c Config) Validate() error {
	if c.Dictionary == "" {
		return fmt.Errorf("dictionary is a required configuration field and cannot be empty")
	}
	if c.MinLength < 1 {
		return fmt.Errorf("min_length must be at least 1, got %d", c.MinLength)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Sort {
	case SortLength, SortAlpha:
	default:
		return fmt.Errorf("invalid sort %q: must be %q or %q", c.Sort, SortLength, SortAlpha)
	}
	return nil
}
