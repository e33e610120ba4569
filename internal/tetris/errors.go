package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every *ConfigError under errors.Is.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// ConfigError describes a session parameter that cannot produce a playable grid.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tetris: invalid config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) succeed.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
