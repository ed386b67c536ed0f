package nibble

import (
	"errors"
	"fmt"
)

// Reasons a ParseError can carry, exposed for errors.Is.
var (
	ErrEmpty     = errors.New("input was empty")
	ErrTooLarge  = errors.New("value does not fit in a nibble")
	ErrBadFormat = errors.New("input is not a valid number")
)

// RangeError is returned by validated construction when the input value
// falls outside [0, 15]. Callers can recover by falling back to Masked.
type RangeError struct {
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("nibble value %d out of range [0, 15]", e.Value)
}

func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

// ParseError is returned when textual input cannot be converted into a
// nibble. Unwrap exposes one of ErrEmpty, ErrTooLarge or ErrBadFormat.
type ParseError struct {
	Input  string
	reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse nibble %q: %s", e.Input, e.reason)
}

func (e *ParseError) Unwrap() error {
	return e.reason
}

func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}
