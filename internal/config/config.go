// Package config holds the YAML configuration for the basiclogger demo
// command.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config drives the load generator behind `basiclogger run`.
type Config struct {
	// Producers is the number of concurrent producer goroutines.
	Producers int `yaml:"producers"`
	// Messages is the number of messages each producer emits.
	Messages int `yaml:"messages"`
	// Parts is the number of values composing one message before its flush.
	Parts int `yaml:"parts"`
	// Output is "stdout" or a file path to append to.
	Output string `yaml:"output"`
	// DelayMS is an optional pause in milliseconds between one producer's
	// messages, used to make interleaving visible at human speed.
	DelayMS int `yaml:"delay_ms"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Producers: 4,
		Messages:  10,
		Parts:     3,
		Output:    "stdout",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse")
	}
	if cfg.Producers <= 0 || cfg.Messages <= 0 || cfg.Parts <= 0 {
		return nil, errors.New("config: producers, messages, and parts must be positive")
	}
	return cfg, nil
}
