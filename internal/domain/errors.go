package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEnumerationValue = errors.New("unknown enumeration value")
	ErrUnknownEnumeration      = errors.New("unknown enumeration")
)

// UnknownValueError reports a token that is not a member of the named enumeration.
// It matches ErrUnknownEnumerationValue with errors.Is.
type UnknownValueError struct {
	Enumeration string
	Value       string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrUnknownEnumerationValue, e.Value, e.Enumeration)
}

func (e *UnknownValueError) Unwrap() error {
	return ErrUnknownEnumerationValue
}
