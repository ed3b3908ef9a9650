package repository

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid id")
)

// ValidationError reports an identifier that could not be read as a number.
// Param is the name of the identifier, e.g. "bookId".
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a number", e.Param)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidID
}

// NotFoundError reports a well-formed identifier that matches no record of Kind.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}
