// Package borrowing contains borrowing lifecycle use cases.
package borrowing

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// CreateBorrowingInput represents the input for recording a new borrowing.
type CreateBorrowingInput struct {
	LenderName      string
	Principal       decimal.Decimal
	Interest        decimal.Decimal
	LoanDate        time.Time
	ReturnDate      time.Time
	AdditionalCosts []entity.AdditionalCost
}

// CreateBorrowingOutput contains the persisted borrowing.
type CreateBorrowingOutput struct {
	Borrowing entity.Borrowing
}

// CreateBorrowingUseCase records a new borrowing with an empty repayment
// history and active status.
type CreateBorrowingUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
	now   func() time.Time
}

// NewCreateBorrowingUseCase creates a new CreateBorrowingUseCase instance.
func NewCreateBorrowingUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *CreateBorrowingUseCase {
	return &CreateBorrowingUseCase{store: store, sink: sink, now: time.Now}
}

// Execute validates the terms and persists the borrowing.
func (uc *CreateBorrowingUseCase) Execute(ctx context.Context, input CreateBorrowingInput) (*CreateBorrowingOutput, error) {
	if err := validateTerms(input.LenderName, input.Principal, input.Interest, input.ReturnDate); err != nil {
		return nil, err
	}

	loanDate := input.LoanDate
	if loanDate.IsZero() {
		loanDate = uc.now()
	}

	borrowing := entity.NewBorrowing(
		strings.TrimSpace(input.LenderName),
		input.Principal,
		input.Interest,
		input.AdditionalCosts,
		loanDate,
		input.ReturnDate,
	)

	snapshot := uc.store.Snapshot()
	borrowings := append(snapshot.Borrowings, borrowing)
	if err := uc.store.ReplaceBorrowings(ctx, borrowings); err != nil {
		return nil, err
	}

	uc.sink.Success("Borrowing Added")
	return &CreateBorrowingOutput{Borrowing: borrowing}, nil
}

func validateTerms(lenderName string, principal, interest decimal.Decimal, returnDate time.Time) error {
	if strings.TrimSpace(lenderName) == "" {
		return domainerror.NewBorrowingError(
			domainerror.ErrCodeMissingLenderName,
			"lender name is required",
			domainerror.ErrMissingLenderName,
		)
	}
	if returnDate.IsZero() {
		return domainerror.NewBorrowingError(
			domainerror.ErrCodeMissingReturnDate,
			"return date is required",
			domainerror.ErrMissingReturnDate,
		)
	}
	if !principal.IsPositive() {
		return domainerror.NewBorrowingError(
			domainerror.ErrCodeInvalidPrincipal,
			"principal must be greater than zero",
			domainerror.ErrInvalidPrincipal,
		)
	}
	if interest.IsNegative() {
		return domainerror.NewBorrowingError(
			domainerror.ErrCodeInvalidInterest,
			"interest rate cannot be negative",
			domainerror.ErrInvalidInterest,
		)
	}
	return nil
}
