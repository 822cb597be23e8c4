// Package error defines domain-specific errors for the shared ledger.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when a budget limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("budget limit must be greater than zero")

	// ErrBudgetCategoryExists is returned when the category already has a budget.
	ErrBudgetCategoryExists = errors.New("a budget for this category already exists")
)

// Template domain errors.
var (
	// ErrTemplateNotFound is returned when a template is not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateName is returned when a template has no name.
	ErrMissingTemplateName = errors.New("template name is required")

	// ErrTemplateNameExists is returned when a template name collides with an
	// existing one. The caller reports it without blocking any primary write.
	ErrTemplateNameExists = errors.New("template name already exists")
)

// Store errors.
var (
	// ErrRemoteUnavailable is returned when the backing document store is
	// unreachable. Local state is left unchanged.
	ErrRemoteUnavailable = errors.New("document store unavailable")

	// ErrWriteInFlight is returned while a previous write is still
	// outstanding. Writes are serialized at the interaction layer.
	ErrWriteInFlight = errors.New("a save is already in progress")

	// ErrStoreNotInitialized is returned when the ledger has not loaded its
	// first snapshot yet.
	ErrStoreNotInitialized = errors.New("ledger store not initialized")
)

// LedgerErrorCode defines error codes for budget, template, and store errors.
type LedgerErrorCode string

const (
	// Budget validation errors (01XXXX)
	ErrCodeInvalidBudgetLimit   LedgerErrorCode = "BDG-010001"
	ErrCodeBudgetCategoryExists LedgerErrorCode = "BDG-010002"
	ErrCodeBudgetNotFound       LedgerErrorCode = "BDG-010003"

	// Template validation errors
	ErrCodeMissingTemplateName LedgerErrorCode = "TPL-010001"
	ErrCodeTemplateNameExists  LedgerErrorCode = "TPL-010002"
	ErrCodeTemplateNotFound    LedgerErrorCode = "TPL-010003"

	// Store errors (02XXXX)
	ErrCodeRemoteUnavailable   LedgerErrorCode = "STO-020001"
	ErrCodeWriteInFlight       LedgerErrorCode = "STO-020002"
	ErrCodeStoreNotInitialized LedgerErrorCode = "STO-020003"
)

// LedgerError represents a budget, template, or store error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
