package ballistics

import (
	"errors"
	"fmt"

	"github.com/san-kum/trajsim/internal/dynamo"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("ballistics: invalid simulation parameters")

	// ErrEmptyTrajectory is returned when summarizing a trajectory with no samples.
	ErrEmptyTrajectory = errors.New("ballistics: empty trajectory")
)

// ConfigurationError reports the offending parameter and the constraint it broke.
type ConfigurationError struct {
	Field      string
	Value      any
	Constraint string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ballistics: invalid %s = %v: must be %s", e.Field, e.Value, e.Constraint)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, dynamo.ErrParameterBounds}
}
