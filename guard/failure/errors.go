package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterCountMismatch is matched by every *ParameterCountError.
	ErrParameterCountMismatch = errors.New("message placeholder count does not match parameter count")
	// ErrNoConstructor is returned when a kind has no usable constructor for the raise path taken.
	ErrNoConstructor = errors.New("no constructor registered for failure kind")
)

// ParameterCountError reports a message whose placeholders do not match the
// supplied parameters. It replaces the domain failure the chain would have produced.
type ParameterCountError struct {
	Template string
	Expected int
	Actual   int
}

// Error returns the offending template with the expected and actual counts.
func (e *ParameterCountError) Error() string {
	if e == nil {
		return ErrParameterCountMismatch.Error()
	}

	return fmt.Sprintf("the message '%s' contains %d parameter placeholder(s) but %d parameter(s) were supplied",
		e.Template, e.Expected, e.Actual)
}

// Unwrap returns ErrParameterCountMismatch for errors.Is.
func (e *ParameterCountError) Unwrap() error {
	return ErrParameterCountMismatch
}
