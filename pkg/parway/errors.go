package parway

import (
	"context"
	"errors"
	"fmt"
)

// WorkUnitError reports a work unit failure at its original input index.
// When several units fail in one parallel call, Index is the lowest of the
// failing original indexes.
type WorkUnitError struct {
	Index int
	Err   error
}

func (e *WorkUnitError) Error() string {
	return fmt.Sprintf("work unit failed at index %d: %v", e.Index, e.Err)
}

func (e *WorkUnitError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid execution configuration. Configuration is
// validated before any work unit is dispatched.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// IsCancellation reports whether err originates from context cancellation
// or deadline expiry.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
