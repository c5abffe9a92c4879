// Package config loads sqlalias CLI settings from defaults, an optional
// YAML file, SQLALIAS_* environment variables and command-line flags.
package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coregx/sqlalias"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// Default values.
const (
	DefaultOutput = string(output.FormatText)
	// MaxLengthFromDialect leaves the alias length limit to the dialect.
	MaxLengthFromDialect = -1
)

// Config holds the CLI settings.
type Config struct {
	Dialect   string `koanf:"dialect"`
	MaxLength int    `koanf:"max_length"`
	Rounds    int    `koanf:"rounds"`
	Strict    bool   `koanf:"strict"`
	Output    string `koanf:"output"`
	Verbose   bool   `koanf:"verbose"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		MaxLength: MaxLengthFromDialect,
		Rounds:    sqlalias.DefaultRounds,
		Output:    DefaultOutput,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dialect != "" {
		if _, err := sqlalias.LookupDialect(c.Dialect); err != nil {
			return fmt.Errorf("dialect: %w", err)
		}
	}
	if c.MaxLength < MaxLengthFromDialect {
		return fmt.Errorf("max_length must be 0 (unlimited) or positive, got %d", c.MaxLength)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the level CLI diagnostics are written at.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Options translates the configuration into Aliaser options.
func (c *Config) Options() []sqlalias.Option {
	opts := []sqlalias.Option{
		sqlalias.WithRounds(c.Rounds),
		sqlalias.WithStrictIdentifiers(c.Strict),
	}
	if c.Dialect != "" {
		opts = append(opts, sqlalias.WithDialect(c.Dialect))
	}
	if c.MaxLength != MaxLengthFromDialect {
		opts = append(opts, sqlalias.WithMaxLength(c.MaxLength))
	}
	return opts
}

type configKey struct{}

// WithContext returns a copy of ctx carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the configuration stored in ctx, or Default.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}
