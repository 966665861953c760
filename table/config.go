package table

import "log/slog"

// Config holds optional configuration for a Table.
type Config struct {
	// Logger receives table lifecycle notices (drop/create) at Info level
	// and synthesized statements at Debug level.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
