package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotPositive = errors.New("must be positive")
	ErrTooLarge    = errors.New("too large")
)

type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
