package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes. Domain packages wrap these with %w.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUnprocessable = errors.New("unprocessable")
	ErrUpstream      = errors.New("upstream failure")
	ErrInternal      = errors.New("internal error")
)

// AppError is an error with the HTTP status and user-facing message it maps to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// MapError maps an error to an AppError by its class.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return New(http.StatusBadRequest, "Invalid request.", err)
	case errors.Is(err, ErrNotFound):
		return New(http.StatusNotFound, "Resource not found.", err)
	case errors.Is(err, ErrConflict):
		return New(http.StatusConflict, "Resource already exists.", err)
	case errors.Is(err, ErrUnauthorized):
		return New(http.StatusUnauthorized, "Unauthorized.", err)
	case errors.Is(err, ErrUnprocessable):
		return New(http.StatusUnprocessableEntity, "Request could not be processed.", err)
	case errors.Is(err, ErrUpstream):
		return New(http.StatusBadGateway, "Upstream service failed.", err)
	}
	return New(http.StatusInternalServerError, "An internal error occurred.", err)
}
