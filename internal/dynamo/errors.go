package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for startup and render setup.
var (
	// ErrInvalidParam indicates a startup parameter that is not a finite number.
	ErrInvalidParam = errors.New("dynamo: invalid parameter")

	// ErrInvalidShape indicates geometry that cannot back a drawable shape.
	ErrInvalidShape = errors.New("dynamo: invalid shape geometry")

	// ErrMissingParam indicates a startup parameter that was not supplied.
	ErrMissingParam = errors.New("dynamo: missing parameter")
)

// ParamError wraps a startup parameter failure with the parameter name.
type ParamError struct {
	Name    string
	Value   string
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Name, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// ShapeError reports which entity produced unusable geometry.
type ShapeError struct {
	Entity string
	Rect   Rect
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: cannot build shape from %+v", e.Entity, e.Rect)
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}
