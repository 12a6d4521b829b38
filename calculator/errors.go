package calculator

import (
	"errors"
	"fmt"

	"calculator/command"
)

// ErrTooManyFaults is returned by Driver.Run when the fault limit is reached.
var ErrTooManyFaults = errors.New("too many errors, stopping")

// FaultError reports an arithmetic failure raised while running a command.
// The accumulator is left as it was before the command started.
type FaultError struct {
	Command command.Type
	Err     error
}

// Error fulfills the error interface for FaultError.
func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying arithmetic error.
func (e *FaultError) Unwrap() error {
	return e.Err
}
