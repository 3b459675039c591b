package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation setup.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrSinkFailed indicates the trajectory sink rejected a finished run.
	ErrSinkFailed = errors.New("dynamo: trajectory sink failed")
)

// ParamError wraps ErrParameterBounds with the offending field.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s %s, got %g", e.Field, e.Reason, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
