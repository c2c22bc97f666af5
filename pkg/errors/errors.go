package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrNotFound reports that the API has no record for the requested code.
var ErrNotFound = stdErrors.New("country not found")

// RequestError represents a transport failure before any response arrived.
type RequestError struct {
	Op  string
	URL string
	Err error
}

// NewRequestError constructs a RequestError.
func NewRequestError(op, url string, err error) error {
	return &RequestError{Op: op, URL: url, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.URL != "" {
		return fmt.Sprintf("request error: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("request error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusError captures a response with a non-2xx status code.
type StatusError struct {
	Op         string
	URL        string
	StatusCode int
}

// NewStatusError constructs a StatusError.
func NewStatusError(op, url string, code int) error {
	return &StatusError{Op: op, URL: url, StatusCode: code}
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("status error: %s %s: HTTP %d", e.Op, e.URL, e.StatusCode)
}

// DecodeError represents a response body that could not be decoded or failed
// validation.
type DecodeError struct {
	Op  string
	Err error
}

// NewDecodeError constructs a DecodeError.
func NewDecodeError(op string, err error) error {
	return &DecodeError{Op: op, Err: err}
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("decode error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsNotFound reports whether err marks a missing country record.
func IsNotFound(err error) bool {
	return stdErrors.Is(err, ErrNotFound)
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
