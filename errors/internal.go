package errors

import (
	"errors"
	"fmt"
)

// InternalError marks a defect in the loader itself, as opposed to bad
// input. It is never converted into a diagnostic: every phase propagates
// it unchanged and it aborts the whole load.
type InternalError struct {
	Message string
	Err     error
}

// Error formats the internal error for display.
func (e *InternalError) Error() string {
	if e == nil {
		return "internal error <nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("internal: %s: %v", e.Message, e.Err)
	}
	return "internal: " + e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *InternalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Internalf builds an InternalError from a format string.
func Internalf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// IsInternal reports whether err is or wraps an InternalError.
func IsInternal(err error) bool {
	var internal *InternalError
	return errors.As(err, &internal)
}
