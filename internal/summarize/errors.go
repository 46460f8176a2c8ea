package summarize

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a Pipeline matches exactly one of the
// first four with errors.Is.
var (
	ErrExtraction         = errors.New("extraction error")
	ErrTransport          = errors.New("transport error")
	ErrResponseShape      = errors.New("model response shape error")
	ErrInvalidSummaryJSON = errors.New("invalid summary json")

	// ErrNoText refines ErrExtraction: the PDF parsed but carried no text.
	ErrNoText = errors.New("no extractable text")
)

var kinds = []error{ErrExtraction, ErrTransport, ErrResponseShape, ErrInvalidSummaryJSON}

type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the failure kind carried by err, or nil.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

func fail(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// StatusError is a non-2xx answer from the model endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("model endpoint returned %d", e.Code)
	}
	return fmt.Sprintf("model endpoint returned %d: %s", e.Code, e.Body)
}
