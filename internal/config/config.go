// Package config handles configuration loading and validation for the
// simpleinput command.
package config

import (
	"fmt"
	"os"
	"strings"

	simpleinput "github.com/kililixi/SimpleInput"
)

// Config is the configuration of the simpleinput command.
type Config struct {
	Dictionary Dictionary `toml:"dictionary" yaml:"dictionary" json:"dictionary"`
	Output     Output     `toml:"output" yaml:"output" json:"output"`
	Trace      Trace      `toml:"trace" yaml:"trace" json:"trace"`
}

// Dictionary names the pinyin tables to load and the index backend.
type Dictionary struct {
	NoTone   string `toml:"notone" yaml:"notone" json:"notone"`
	WithTone string `toml:"withtone" yaml:"withtone" json:"withtone"`
	Backend  string `toml:"backend" yaml:"backend" json:"backend"`
}

// Output selects how snapshots are printed: text, yaml or json.
type Output struct {
	Format string `toml:"format" yaml:"format" json:"format"`
}

// Trace sets the trace level: error, info or debug.
type Trace struct {
	Level string `toml:"level" yaml:"level" json:"level"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// DefaultConfig returns a configuration with default values. It names no
// tables; these have to be configured.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: Dictionary{
			Backend: string(simpleinput.BackendDAT),
		},
		Output: Output{
			Format: FormatText,
		},
		Trace: Trace{
			Level: "error",
		},
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SIMPLEINPUT_NOTONE"); v != "" {
		c.Dictionary.NoTone = v
	}
	if v := os.Getenv("SIMPLEINPUT_WITHTONE"); v != "" {
		c.Dictionary.WithTone = v
	}
	if v := os.Getenv("SIMPLEINPUT_BACKEND"); v != "" {
		c.Dictionary.Backend = v
	}
	if v := os.Getenv("SIMPLEINPUT_TRACE"); v != "" {
		c.Trace.Level = v
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the enumerated settings. Table paths are not checked; a
// missing table is reported when the dictionary is opened.
func (c *Config) Validate() error {
	var errs ValidationErrors
	if _, err := simpleinput.ParseBackend(c.Dictionary.Backend); err != nil {
		errs = append(errs, ValidationError{
			Field:   "dictionary.backend",
			Message: fmt.Sprintf("unknown backend %q", c.Dictionary.Backend),
		})
	}
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unknown format %q", c.Output.Format),
		})
	}
	switch strings.ToLower(c.Trace.Level) {
	case "error", "info", "debug":
	default:
		errs = append(errs, ValidationError{
			Field:   "trace.level",
			Message: fmt.Sprintf("unknown level %q", c.Trace.Level),
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
