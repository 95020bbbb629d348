package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in business logic terms, not HTTP terms.
type Code string

const (
	CodeValidation   Code = "validation_failed"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"

	// CodeConfigurationNotFound marks a tenant id that is not present in the
	// tenant directory. Header values are never validated against the directory
	// before projection, so hitting this code is a service misconfiguration
	// rather than a client-correctable input error.
	CodeConfigurationNotFound Code = "configuration_not_found"
)

// Detail carries one additional error data point inside an Error.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error wraps domain failures with a stable code.
// It is transport-agnostic and can be used across all layers.
type Error struct {
	Code    Code
	Message string
	Target  string
	Details []Detail
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// NewWithTarget creates a new domain error pointing at the data element that
// caused the failure, e.g. a resource id.
func NewWithTarget(code Code, msg, target string) error {
	return &Error{Code: code, Message: msg, Target: target}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Target: existing.Target, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
