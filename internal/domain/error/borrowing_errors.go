// Package error defines domain-specific errors for the shared ledger.
package error

import "errors"

// Borrowing domain errors.
var (
	// ErrBorrowingNotFound is returned when a borrowing is not found in the ledger.
	ErrBorrowingNotFound = errors.New("borrowing not found")

	// ErrMissingLenderName is returned when a borrowing has no lender name.
	ErrMissingLenderName = errors.New("lender name is required")

	// ErrMissingReturnDate is returned when a borrowing has no return date.
	ErrMissingReturnDate = errors.New("return date is required")

	// ErrInvalidPrincipal is returned when the principal is zero or negative.
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")

	// ErrInvalidInterest is returned when the interest percentage is negative.
	ErrInvalidInterest = errors.New("interest must not be negative")

	// ErrInvalidRepaymentAmount is returned when a repayment is zero or negative.
	ErrInvalidRepaymentAmount = errors.New("repayment amount must be greater than zero")

	// ErrRepaymentExceedsBalance is returned when a repayment overpays the
	// outstanding balance.
	ErrRepaymentExceedsBalance = errors.New("repayment exceeds outstanding balance")
)

// BorrowingErrorCode defines error codes for borrowing errors.
type BorrowingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingLenderName       BorrowingErrorCode = "BRW-010001"
	ErrCodeMissingReturnDate       BorrowingErrorCode = "BRW-010002"
	ErrCodeInvalidPrincipal        BorrowingErrorCode = "BRW-010003"
	ErrCodeInvalidInterest         BorrowingErrorCode = "BRW-010004"
	ErrCodeInvalidRepaymentAmount  BorrowingErrorCode = "BRW-010005"
	ErrCodeRepaymentExceedsBalance BorrowingErrorCode = "BRW-010006"
	ErrCodeBorrowingNotFound       BorrowingErrorCode = "BRW-010007"
)

// BorrowingError represents a borrowing error with code and message.
type BorrowingError struct {
	Code    BorrowingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BorrowingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BorrowingError) Unwrap() error {
	return e.Err
}

// NewBorrowingError creates a new BorrowingError with the given code and message.
func NewBorrowingError(code BorrowingErrorCode, message string, err error) *BorrowingError {
	return &BorrowingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
