package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a client-side, pre-flight input error. It is always
// caught before any network call is made.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// NetworkError means the request could not reach the server at all
// (offline, DNS, timeout). Not locally recoverable; the user retries.
type NetworkError struct {
	Err error
}

func (err NetworkError) Error() string {
	return "server unreachable: " + err.Err.Error()
}

func (err NetworkError) Unwrap() error { return err.Err }

// APIError means the server was reachable but returned a non-2xx status.
// Message carries the server-supplied detail when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (err APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", err.StatusCode, err.Message)
}

// DataContractError means a response decoded but violated the expected
// shape. Always a bug (client/server version skew); logged, never shown
// raw to the end user.
type DataContractError struct {
	Op  string
	Err error
}

func (err DataContractError) Error() string {
	return fmt.Sprintf("bad payload from %s: %v", err.Op, err.Err)
}

func (err DataContractError) Unwrap() error { return err.Err }

func IsNetworkError(err error) bool {
	_, ok := errors.Cause(err).(*NetworkError)
	return ok
}

func IsAPIError(err error) bool {
	_, ok := errors.Cause(err).(*APIError)
	return ok
}

func IsDataContractError(err error) bool {
	_, ok := errors.Cause(err).(*DataContractError)
	return ok
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}
