package interp

import (
	"errors"
	"fmt"

	"github.com/rubiojr/robo/env"
)

var (
	// ErrCancelled unwinds execution once the robot is dead or the context
	// is done. It ends a program normally and is not a failure.
	ErrCancelled = errors.New("cancelled")

	// ErrDivisionByZero is returned by div(a, b) when b evaluates to 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefinedVariable is returned when a program reads a variable it
	// never assigned.
	ErrUndefinedVariable = env.ErrUndefinedVariable

	// ErrStepLimit is returned when a run exceeds its configured step budget.
	ErrStepLimit = errors.New("step limit exceeded")
)

// IsCancelled reports whether err is the cancellation signal rather than
// a program failure.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }

// RuntimeError locates a failure at the statement that raised it.
type RuntimeError struct {
	Line int
	Err  error
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *RuntimeError) Unwrap() error { return e.Err }
