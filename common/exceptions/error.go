package exceptions

import (
	"errors"
	"fmt"
)

type causeError struct {
	message string
	cause   error
}

func (e *causeError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causeError) Unwrap() error {
	return e.cause
}

func New(message ...any) error {
	return errors.New(fmt.Sprint(message...))
}

// Cause prefixes cause with message. A nil cause yields nil.
func Cause(cause error, message ...any) error {
	if cause == nil {
		return nil
	}
	return &causeError{fmt.Sprint(message...), cause}
}
