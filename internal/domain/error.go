package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
// These map to HTTP status codes and determine user-facing messages.
const (
	EINVALID  = "invalid"   // 400 - Validation error (bad input)
	ENOTFOUND = "not_found" // 404 - Resource not found
	EINTERNAL = "internal"  // 500 - Internal or upstream server error
	ENETWORK  = "network"   // 502 - Transport failure before an HTTP status was obtained
)

// Category buckets drive which message, icon and actions the UI shows.
// Exactly one category applies to any failed lookup attempt.
const (
	CategoryNone     = "none"
	CategoryInvalid  = "invalid"
	CategoryNotFound = "notfound"
	CategoryServer   = "server"
	CategoryNetwork  = "network"
)

// Error represents an application error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	// Code is a machine-readable error code (e.g., EINVALID, ENETWORK).
	Code string

	// Message is a human-readable error message safe to show to users.
	Message string

	// Op is the operation where the error occurred (e.g., "minutes.lookup").
	// Used for debugging and logging, not shown to users.
	Op string

	// Err is the underlying error, if any. Used for error wrapping.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		if e.Op != "" {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode extracts the error code from an error.
// Returns EINTERNAL for non-domain errors.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return EINTERNAL
}

// ErrorMessage extracts a user-facing message from an error.
// For unknown error types, returns a generic message to avoid leaking details.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}

	// Unknown error type - hide details
	return "Something went wrong. Please try again."
}

// ErrorOp extracts the operation from an error (for logging).
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}

	return ""
}

// Category maps an error onto the UI classification bucket.
// Returns CategoryNone for nil errors and CategoryServer for anything
// that carries neither a domain code nor a recognizable failure mode.
func Category(err error) string {
	if err == nil {
		return CategoryNone
	}

	switch ErrorCode(err) {
	case EINVALID:
		return CategoryInvalid
	case ENOTFOUND:
		return CategoryNotFound
	case ENETWORK:
		return CategoryNetwork
	default:
		return CategoryServer
	}
}

// ErrorStatus maps an error onto an HTTP status code for the JSON API.
func ErrorStatus(err error) int {
	switch ErrorCode(err) {
	case "":
		return http.StatusOK
	case EINVALID:
		return http.StatusBadRequest
	case ENOTFOUND:
		return http.StatusNotFound
	case ENETWORK:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Errorf creates a new domain error with formatted message.
// Example: domain.Errorf(domain.EINVALID, "lookup.submit", "invalid phone: %s", phone)
func Errorf(code, op, format string, args ...interface{}) error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a domain error code and operation.
// Preserves the underlying error for logging while providing structure.
// Returns nil if err is nil.
// Example: domain.WrapError(err, domain.ENETWORK, "minutes.lookup", "connection failed")
func WrapError(err error, code, op, message string) error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsCode returns true if err has the given error code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

// NotFound creates a not found error for a resource.
// Example: domain.NotFound("minutes.lookup", "phone number", phone)
func NotFound(op, resource, identifier string) error {
	return &Error{
		Code:    ENOTFOUND,
		Op:      op,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
	}
}

// Invalid creates a validation error for a single issue.
// Example: domain.Invalid("lookup.submit", "Please enter a phone number")
func Invalid(op, message string) error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error (wraps underlying error).
// Example: domain.Internal(err, "minutes.lookup", "failed to decode response")
func Internal(err error, op, message string) error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Network creates a transport-level error (wraps underlying error).
// Used when the request failed before any HTTP status was obtained.
// Example: domain.Network(err, "minutes.lookup", "connection refused")
func Network(err error, op, message string) error {
	return &Error{
		Code:    ENETWORK,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
