// Package config loads the YAML configuration of the command-line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/musicxml/internal/assemble"
	"github.com/simonhull/musicxml/internal/logging"
)

// Output formats of the dump tool.
const (
	OutputSummary     = "summary"
	OutputJSON        = "json"
	OutputDiagnostics = "diagnostics"
)

// Log configures the tool's logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the file configuration. Zero values mean "not set".
type Config struct {
	Strict         bool   `yaml:"strict"`
	IgnoreWarnings bool   `yaml:"ignore_warnings"`
	DurationCheck  string `yaml:"duration_check"`
	Output         string `yaml:"output"`
	Log            Log    `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DurationCheck: assemble.DurationCheckOff.String(),
		Output:        OutputSummary,
		Log:           Log{Level: "warn", Format: "text"},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Decode(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := assemble.ParseDurationCheck(c.DurationCheck); err != nil {
		return err
	}
	switch c.Output {
	case OutputSummary, OutputJSON, OutputDiagnostics:
	default:
		return fmt.Errorf("invalid output: %q", c.Output)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
