package core

import (
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultWidth  = 14
	DefaultHeight = 10
	DefaultDelay  = 250 * time.Millisecond

	// MaxSide keeps the board drawable on an ordinary terminal or window.
	MaxSide = 200
)

type Config struct {
	Width  int
	Height int
	Delay  time.Duration
	// Seed for point placement. Zero means seed from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Delay:  DefaultDelay,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var merr error

	check := func(field string, v int) {
		switch {
		case v <= 0:
			merr = multierror.Append(merr, &ConfigError{Field: field, Err: ErrNotPositive})
		case v > MaxSide:
			merr = multierror.Append(merr, &ConfigError{Field: field, Err: ErrTooLarge})
		}
	}
	check("width", c.Width)
	check("height", c.Height)

	if c.Delay <= 0 {
		merr = multierror.Append(merr, &ConfigError{Field: "delay", Err: ErrNotPositive})
	}

	return merr
}
