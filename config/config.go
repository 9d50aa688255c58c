// Package config loads the game configuration: a YAML file over built-in
// defaults, then environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/plus3/stardodge/arcade"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvFullscreen = "STARDODGE_FULLSCREEN"
	EnvSeed       = "STARDODGE_SEED"
	EnvTickRate   = "STARDODGE_TICK_RATE"
)

type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`  // windowed size
	Height     int    `yaml:"height"` // windowed size
	Fullscreen bool   `yaml:"fullscreen"`
}

type Config struct {
	Window   Window        `yaml:"window"`
	TickRate int           `yaml:"tick_rate"` // fixed ticks per second
	Seed     uint64        `yaml:"seed"`      // 0 picks a random seed
	Tuning   arcade.Tuning `yaml:"tuning"`
}

// Default returns the stock configuration: borderless fullscreen at 64 ticks
// per second.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "Stardodge",
			Width:      1280,
			Height:     720,
			Fullscreen: true,
		},
		TickRate: 64,
		Tuning:   arcade.DefaultTuning(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := cfg.Decode(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto c. Unknown keys are rejected; an empty
// document leaves c unchanged.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// Encode writes c as YAML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ApplyEnv overrides fields from the STARDODGE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := GetEnv(EnvFullscreen, ""); v != "" {
		fullscreen, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFullscreen, err)
		}
		c.Window.Fullscreen = fullscreen
	}
	if v := GetEnv(EnvSeed, ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := GetEnv(EnvTickRate, ""); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		c.TickRate = rate
	}
	return nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.TickRate))
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tuning: %w", err))
	}
	return errors.Join(errs...)
}

// Step returns the fixed simulation step for TickRate.
func (c Config) Step() time.Duration {
	if c.TickRate <= 0 {
		return arcade.DefaultStep
	}
	return time.Second / time.Duration(c.TickRate)
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
