// Package error defines domain-specific errors for the shared ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidMainCategory is returned when the category is outside the fixed enum.
	ErrInvalidMainCategory = errors.New("invalid main category")

	// ErrInvalidMedium is returned when the payment medium is unknown.
	ErrInvalidMedium = errors.New("invalid payment medium")

	// ErrSameTransferMedium is returned when a transfer names the same medium on both sides.
	ErrSameTransferMedium = errors.New("cannot transfer to the same medium")

	// ErrEmptyImportBatch is returned when a bulk import selects no candidates.
	ErrEmptyImportBatch = errors.New("no transactions selected for import")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidMainCategory      TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidMedium            TransactionErrorCode = "TXN-010004"
	ErrCodeSameTransferMedium       TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeEmptyImportBatch         TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
