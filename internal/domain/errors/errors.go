// Package errors defines application-specific error types carrying a
// business error code and the exact user-facing message the bot replies
// with. Workflow outcomes (not ready, already delivered, declined) are
// not errors; only genuine failures live here.
package errors

import (
	"boxbot/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-facing reply text
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrNotInitialized = NewBaseError(
		"NOT_INITIALIZED",
		"You are not initialized, link a phone number with /init first!",
		"",
	)

	ErrNotAuthorized = NewBaseError(
		"NOT_AUTHORIZED",
		"You are not authorized, initialize again!",
		"",
	)

	ErrConsentNotSet = NewBaseError(
		"CONSENT_NOT_SET",
		"You did not set your data collecting consent.\n\nSend /consent yes if you agree to data collection, or /consent no if you refuse.",
		"",
	)

	ErrParcelNotFound = NewBaseError(
		"PARCEL_NOT_FOUND",
		"No parcels found!",
		"",
	)

	ErrGroupInconsistent = NewBaseError(
		"GROUP_INCONSISTENT",
		"This multicompartment shipment looks inconsistent upstream, try again later or call the operator.",
		"",
	)

	ErrUpstreamFailure = NewBaseError(
		"UPSTREAM_FAILURE",
		"Unexpected parcel-machine API error occurred, try again later.",
		"",
	)

	ErrInternalError = NewBaseError(
		"INTERNAL_ERROR",
		"Bad things happened, call the admin now!",
		"",
	)
)
