package adaptivecache

import (
	"errors"
	"fmt"
)

// Error types for specific failure scenarios
var (
	// ErrInvalidConfig indicates invalid configuration options
	ErrInvalidConfig = errors.New("invalid configuration")
)

// OptionError reports which option rejected its argument
type OptionError struct {
	Option string
	Err    error
}

// Error implements the error interface
func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s: %v", e.Option, e.Err)
}

// Unwrap returns the wrapped error
func (e *OptionError) Unwrap() error {
	return e.Err
}
