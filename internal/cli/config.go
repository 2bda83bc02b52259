package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/dl/minigrep/internal/input"
	"github.com/dl/minigrep/internal/matcher"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

func (c *ColorMode) String() string {
	switch *c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

func (c *ColorMode) Set(s string) error {
	switch s {
	case "auto":
		*c = ColorAuto
	case "always":
		*c = ColorAlways
	case "never":
		*c = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (expected: auto|always|never)", s)
	}
	return nil
}

func (c *ColorMode) Type() string { return "when" }

var _ pflag.Value = (*ColorMode)(nil)

// Config holds all configuration for a minigrep search.
type Config struct {
	Pattern       string
	Path          string
	IgnoreCase    bool
	SmartCase     bool
	LineNumbers   bool
	CountOnly     bool
	JSONOutput    bool
	Color         ColorMode
	Workers       int
	MmapThreshold int64
	Verbose       bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Color:         ColorAuto,
		MmapThreshold: input.DefaultMmapThreshold,
	}
}

// Validate checks that the config is valid and returns an error if not.
// An empty pattern is allowed; it matches nothing.
func (c *Config) Validate() error {
	if c.Path == "" {
		return &ConfigError{Err: fmt.Errorf("no file specified")}
	}
	if c.CountOnly && c.JSONOutput {
		return &ConfigError{Err: fmt.Errorf("cannot use -c (count) and --json together")}
	}
	if c.Workers < 0 {
		return &ConfigError{Err: fmt.Errorf("invalid thread count: %d", c.Workers)}
	}
	if c.MmapThreshold < 0 {
		return &ConfigError{Err: fmt.Errorf("invalid mmap threshold: %d", c.MmapThreshold)}
	}
	return nil
}

// MatchOptions returns the options handed to the matcher.
func (c *Config) MatchOptions() matcher.Options {
	return matcher.Options{
		IgnoreCase: c.IgnoreCase,
		SmartCase:  c.SmartCase,
	}
}

// ConfigError reports invalid arguments or flags. It is detected before any
// file is read.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }
