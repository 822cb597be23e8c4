package borrowing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// UpdateBorrowingInput represents the input for revising a loan's terms.
// The repayment history is never touched by an update.
type UpdateBorrowingInput struct {
	ID              uuid.UUID
	LenderName      string
	Principal       decimal.Decimal
	Interest        decimal.Decimal
	LoanDate        time.Time
	ReturnDate      time.Time
	AdditionalCosts []entity.AdditionalCost
}

// UpdateBorrowingOutput contains the updated borrowing.
type UpdateBorrowingOutput struct {
	Borrowing entity.Borrowing
}

// UpdateBorrowingUseCase replaces a loan's terms and re-derives its
// status, since new terms change the total due.
type UpdateBorrowingUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewUpdateBorrowingUseCase creates a new UpdateBorrowingUseCase instance.
func NewUpdateBorrowingUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *UpdateBorrowingUseCase {
	return &UpdateBorrowingUseCase{store: store, sink: sink}
}

// Execute validates the revised terms and persists the updated loan.
func (uc *UpdateBorrowingUseCase) Execute(ctx context.Context, input UpdateBorrowingInput) (*UpdateBorrowingOutput, error) {
	if err := validateTerms(input.LenderName, input.Principal, input.Interest, input.ReturnDate); err != nil {
		return nil, err
	}

	snapshot := uc.store.Snapshot()
	current, ok := snapshot.FindBorrowing(input.ID)
	if !ok {
		return nil, domainerror.NewBorrowingError(
			domainerror.ErrCodeBorrowingNotFound,
			fmt.Sprintf("borrowing %s not found", input.ID),
			domainerror.ErrBorrowingNotFound,
		)
	}

	updated := current.Clone()
	updated.LenderName = strings.TrimSpace(input.LenderName)
	updated.Principal = input.Principal
	updated.Interest = input.Interest
	if !input.LoanDate.IsZero() {
		updated.LoanDate = input.LoanDate
	}
	updated.ReturnDate = input.ReturnDate
	updated.AdditionalCosts = input.AdditionalCosts
	if updated.AdditionalCosts == nil {
		updated.AdditionalCosts = []entity.AdditionalCost{}
	}
	updated.Status = updated.DeriveStatus()

	borrowings := replaceBorrowing(snapshot.Borrowings, updated)
	if err := uc.store.ReplaceBorrowings(ctx, borrowings); err != nil {
		return nil, err
	}

	uc.sink.Success("Borrowing Updated")
	return &UpdateBorrowingOutput{Borrowing: updated}, nil
}
