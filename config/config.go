package config

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Exported constants (magic numbers made visible)
// -----------------------------------------------------------------------------
const (
	DefaultWindowCapacity = 8
	DefaultEMAPeriod      = 4
	DefaultHistoryLength  = 256

	// DefaultMaxCapacity matches core.DefaultMaxCapacity.
	DefaultMaxCapacity = 65535
)

// -----------------------------------------------------------------------------
// Config – central place for all tunable parameters
// -----------------------------------------------------------------------------
type Config struct {
	WindowCapacity int // samples kept by the sliding average
	EMAPeriod      int // n in k = 2/(n+1)

	// StrictCapacity rejects a WindowCapacity of 0 instead of clamping it to 1.
	StrictCapacity bool
	MaxCapacity    int // upper bound for WindowCapacity

	// HistoryLength bounds the readings a suite keeps for plotting.
	HistoryLength int
}

// DefaultConfig returns a sensible set of defaults.
func DefaultConfig() Config {
	return Config{
		WindowCapacity: DefaultWindowCapacity,
		EMAPeriod:      DefaultEMAPeriod,
		MaxCapacity:    DefaultMaxCapacity,
		HistoryLength:  DefaultHistoryLength,
	}
}

// -------------------------------------------------------------------
// Validate – checks that the configuration values are sensible.
// -------------------------------------------------------------------
func (c Config) Validate() error {
	if c.WindowCapacity < 0 {
		return fmt.Errorf("WindowCapacity must not be negative, got %d", c.WindowCapacity)
	}
	if c.StrictCapacity && c.WindowCapacity == 0 {
		return errors.New("WindowCapacity must be greater than 0 in strict mode")
	}
	if c.MaxCapacity <= 0 {
		return fmt.Errorf("MaxCapacity must be greater than 0, got %d", c.MaxCapacity)
	}
	if c.WindowCapacity > c.MaxCapacity {
		return fmt.Errorf(
			"WindowCapacity is too large (%d); must be ≤ %d",
			c.WindowCapacity,
			c.MaxCapacity,
		)
	}
	// -1 would make the smoothing constant divide by zero.
	if c.EMAPeriod < 0 {
		return fmt.Errorf("EMAPeriod must not be negative, got %d", c.EMAPeriod)
	}
	if c.HistoryLength <= 0 {
		return fmt.Errorf("HistoryLength must be greater than 0, got %d", c.HistoryLength)
	}
	return nil
}
