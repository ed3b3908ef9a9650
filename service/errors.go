package service

import (
	"errors"
	"net/http"

	"github.com/emzola/bookstore/repository"
)

var (
	ErrFailedValidation = errors.New("failed validation")
	ErrRecordNotFound   = errors.New("record not found")
)

// Failure is a rejected operation in the shape the HTTP boundary reports it:
// a status code and a human readable message.
type Failure struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	kind    error
}

func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns ErrFailedValidation or ErrRecordNotFound.
func (f *Failure) Unwrap() error {
	return f.kind
}

// fail translates repository errors into a Failure. Other errors, including
// context errors, are passed through unchanged.
func fail(err error) error {
	var (
		validationErr *repository.ValidationError
		notFoundErr   *repository.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return &Failure{Status: http.StatusBadRequest, Message: validationErr.Error(), kind: ErrFailedValidation}
	case errors.As(err, &notFoundErr):
		return &Failure{Status: http.StatusNotFound, Message: notFoundErr.Error(), kind: ErrRecordNotFound}
	default:
		return err
	}
}
