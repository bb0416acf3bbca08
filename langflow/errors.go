package langflow

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a single failed request attempt.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeStatus indicates a non-2xx HTTP response.
	ErrCodeStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Error is a classified transport-level failure for one request attempt.
// Retryable drives the retry policy: timeouts, connection failures, and
// 5xx statuses retry; 4xx statuses do not.
type Error struct {
	Code       ErrorCode
	StatusCode int
	Message    string
	Retryable  bool
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("langflow: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("langflow: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a retryable timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewConnectionError creates a retryable connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Anything below 400 is success: redirects are followed by the transport,
// and a surviving 3xx (say a 304) carries a usable body. Statuses in
// [500,600) are retryable; the rest fail immediately with the response
// body preserved.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode < 400 {
		return nil
	}
	return &Error{
		Code:       ErrCodeStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Retryable:  statusCode >= 500 && statusCode < 600,
		Body:       body,
	}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsRetryable checks if an error is a retryable attempt failure.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

// ServiceError is the uniform failure type for anything that went wrong
// talking to the Langflow instance. It is internal to the gateway: the HTTP
// boundary translates it to an upstream-unavailable status, preserving the
// message for diagnostics.
type ServiceError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError wrapping cause.
func NewServiceError(cause error, format string, args ...any) *ServiceError {
	return &ServiceError{
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// IsServiceError checks if an error is a *ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
