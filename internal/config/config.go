// Package config holds the settings shared by the baton commands.
//
// Values come from three layers: built-in defaults, an optional YAML file,
// and command-line flags. Later layers win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baton-protocol/baton-go/pkg/inspect"
	"github.com/baton-protocol/baton-go/pkg/wire"
)

// Config is the resolved command configuration.
type Config struct {
	// Conductor and Target are used when a command does not name them.
	Conductor string `yaml:"conductor"`
	Target    string `yaml:"target"`

	// Format is summary, hex or bits.
	Format string `yaml:"format"`

	// ASCII disables the UTF-8 arrow in summaries.
	ASCII bool `yaml:"ascii"`

	// Capture is a file that receives a CBOR event per encode or decode.
	// Empty disables capture.
	Capture string `yaml:"capture"`

	LogLevel string `yaml:"log_level"`

	Prompt string `yaml:"prompt"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Conductor: "C1",
		Target:    "ALL",
		Format:    string(inspect.FormatSummary),
		LogLevel:  "info",
		Prompt:    "baton> ",
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Set overrides one setting by its flag name.
func (c *Config) Set(name, value string) error {
	switch name {
	case "conductor":
		c.Conductor = value
	case "target":
		c.Target = value
	case "format":
		c.Format = value
	case "ascii":
		c.ASCII = value == "true"
	case "capture":
		c.Capture = value
	case "log-level":
		c.LogLevel = value
	case "prompt":
		c.Prompt = value
	default:
		return fmt.Errorf("unknown setting %q", name)
	}
	return nil
}

// Validate checks that every setting resolves.
func (c Config) Validate() error {
	if _, ok := inspect.ResolveConductor(c.Conductor); !ok {
		return fmt.Errorf("invalid conductor %q (must be C1-C4 or 1-4)", c.Conductor)
	}
	if _, ok := inspect.ResolveTarget(c.Target); !ok {
		return fmt.Errorf("invalid target %q (must be one of %s or 0-7)", c.Target, strings.Join(inspect.TargetNames(), ", "))
	}
	if _, ok := inspect.ParseFormat(c.Format); !ok {
		return fmt.Errorf("invalid format %q (must be summary, hex or bits)", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ConductorID returns the configured default conductor, C1 if invalid.
func (c Config) ConductorID() wire.ConductorID {
	id, _ := inspect.ResolveConductor(c.Conductor)
	return id
}

// TargetGroup returns the configured default target, ALL if invalid.
func (c Config) TargetGroup() wire.TargetGroup {
	g, _ := inspect.ResolveTarget(c.Target)
	return g
}

// OutputFormat returns the configured format, summary if invalid.
func (c Config) OutputFormat() inspect.Format {
	f, ok := inspect.ParseFormat(c.Format)
	if !ok {
		return inspect.FormatSummary
	}
	return f
}

// Formatter returns a formatter honouring the ASCII setting.
func (c Config) Formatter() *inspect.Formatter {
	return &inspect.Formatter{ASCII: c.ASCII}
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", s)
	}
}

// Logger returns a text slog.Logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
