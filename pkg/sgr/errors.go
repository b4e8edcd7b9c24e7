package sgr

import (
	"errors"
	"fmt"
)

// ErrInvalidColorComponent matches any 24-bit color construction failure
// via errors.Is.
var ErrInvalidColorComponent = errors.New("color component outside [0,255]")

// InvalidColorComponentError reports which component of a 24-bit color
// was outside [0, 255].
type InvalidColorComponentError struct {
	Channel string
	Value   int
}

// Error implements the error interface.
func (e *InvalidColorComponentError) Error() string {
	return fmt.Sprintf("invalid color component %s=%d: must be in [0,255]", e.Channel, e.Value)
}

// Is makes the error match ErrInvalidColorComponent.
func (e *InvalidColorComponentError) Is(target error) bool {
	return target == ErrInvalidColorComponent
}
