// Package error defines domain-specific errors for the shared ledger.
package error

import "errors"

// AI extractor errors. These are always recoverable: an extractor failure
// surfaces as a chat-style error message and never fabricates a transaction.
var (
	// ErrExtractorUnavailable is returned when the extraction service is not
	// configured or cannot be reached.
	ErrExtractorUnavailable = errors.New("ai extractor unavailable")

	// ErrExtractorResponseInvalid is returned when the extractor's output
	// cannot be parsed into the expected shape.
	ErrExtractorResponseInvalid = errors.New("ai extractor returned unparseable output")
)

// ExtractorErrorCode defines error codes for extractor errors.
type ExtractorErrorCode string

const (
	ErrCodeExtractorUnavailable     ExtractorErrorCode = "AIX-010001"
	ErrCodeExtractorResponseInvalid ExtractorErrorCode = "AIX-010002"
)

// ExtractorError represents an error from the extraction boundary.
type ExtractorError struct {
	Code    ExtractorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExtractorError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *ExtractorError) Unwrap() error {
	return e.Err
}

// NewExtractorError creates a new ExtractorError instance.
func NewExtractorError(code ExtractorErrorCode, message string, err error) *ExtractorError {
	return &ExtractorError{Code: code, Message: message, Err: err}
}

// Auth errors for the PIN gate.
var (
	// ErrUnknownUser is returned when the login user is not a ledger member.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidPIN is returned when the PIN does not match.
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrMissingToken is returned when a protected route is hit without
	// credentials.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when the presented token cannot be
	// validated.
	ErrInvalidToken = errors.New("invalid token")

	// ErrRateLimited is returned when a caller exceeds the request budget.
	ErrRateLimited = errors.New("rate limited")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeUnknownUser  AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidPIN   AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010005"
)

// AuthError represents an authentication failure.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError instance.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}
