package stage

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultModalThreshold = 5.0
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultTickRate       = 60
)

// Config holds the registry settings.
type Config struct {
	// ModalThreshold is the minimum ZBase that keeps full input while an
	// overlay is active. Everything below it only animates.
	ModalThreshold float64 `yaml:"modal_threshold" json:"modal_threshold"`

	// ViewportWidth and ViewportHeight size the logical surface used for
	// on-screen tests.
	ViewportWidth  float64 `yaml:"viewport_width" json:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height" json:"viewport_height"`

	// TickRate is the number of update passes per second, used to advance
	// tweens.
	TickRate int `yaml:"tick_rate" json:"tick_rate"`

	// Debug logs per-pass statistics at debug level.
	Debug bool `yaml:"debug" json:"debug"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		ModalThreshold: DefaultModalThreshold,
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
		TickRate:       DefaultTickRate,
	}
}

// withDefaults fills zero sizes and rates from DefaultConfig. A zero
// ModalThreshold is a legal setting and is kept.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = d.ViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = d.ViewportHeight
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// LoadConfig decodes a YAML (or JSON) document on top of DefaultConfig.
// Keys missing from the document keep their default values. An empty
// document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}
