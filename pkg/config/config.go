// Package config defines the adocast configuration surface shared by the
// CLI and embedding hosts.
package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultFileName is the configuration file looked up next to documents.
const DefaultFileName = ".adocast.yaml"

// Config holds the user-tunable options.
type Config struct {
	// Extensions lists extra file suffixes recognized in addition to the
	// core AsciiDoc set. Each entry must begin with a dot.
	Extensions []string `yaml:"extensions,omitempty"`

	// DetectLanguage enables language detection for code blocks whose
	// source names no language.
	DetectLanguage bool `yaml:"detect_language,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the rest of the program
// would silently misinterpret.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q: must begin with a dot", ext)
		}
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return nil
}
