package predprey

import (
	"fmt"
	"strconv"
)

// Config controls the predator-prey world. It is read once per Reset.
type Config struct {
	Width  int
	Height int

	Seed int64

	Population Population

	// MaxTicks caps headless runs; zero runs to extinction or saturation.
	MaxTicks int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  24,
		Height: 24,
		Seed:   1337,
		Population: Population{
			Wolves:  6,
			Rabbits: 9,
			Plants:  9,
			Salmon:  9,
		},
	}
}

// Validate reports configurations that cannot start a run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, c.Width, c.Height)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("predprey: negative max_ticks %d", c.MaxTicks)
	}
	return c.Population.Validate(c.Width * c.Height)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	counts := []struct {
		key string
		dst *int
	}{
		{"wolves", &c.Population.Wolves},
		{"rabbits", &c.Population.Rabbits},
		{"plants", &c.Population.Plants},
		{"salmon", &c.Population.Salmon},
		{"max_ticks", &c.MaxTicks},
	}
	for _, entry := range counts {
		if v, ok := cfg[entry.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*entry.dst = parsed
			}
		}
	}
	return c
}
