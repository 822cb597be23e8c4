package borrowing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// AddRepaymentInput represents the input for applying a payment to a loan.
type AddRepaymentInput struct {
	BorrowingID uuid.UUID
	Amount      decimal.Decimal
}

// AddRepaymentOutput contains the updated borrowing after the payment.
type AddRepaymentOutput struct {
	Borrowing entity.Borrowing
}

// AddRepaymentUseCase appends a payment to a loan's repayment history and
// re-derives its status. A payment may never exceed the outstanding
// balance, compared exactly, not to a rounding tolerance.
type AddRepaymentUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
	now   func() time.Time
}

// NewAddRepaymentUseCase creates a new AddRepaymentUseCase instance.
func NewAddRepaymentUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *AddRepaymentUseCase {
	return &AddRepaymentUseCase{store: store, sink: sink, now: time.Now}
}

// Execute validates the payment against the outstanding balance and
// persists the updated loan.
func (uc *AddRepaymentUseCase) Execute(ctx context.Context, input AddRepaymentInput) (*AddRepaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBorrowingError(
			domainerror.ErrCodeInvalidRepaymentAmount,
			"repayment amount must be greater than zero",
			domainerror.ErrInvalidRepaymentAmount,
		)
	}

	snapshot := uc.store.Snapshot()
	current, ok := snapshot.FindBorrowing(input.BorrowingID)
	if !ok {
		return nil, domainerror.NewBorrowingError(
			domainerror.ErrCodeBorrowingNotFound,
			fmt.Sprintf("borrowing %s not found", input.BorrowingID),
			domainerror.ErrBorrowingNotFound,
		)
	}

	outstanding := current.Outstanding()
	if input.Amount.GreaterThan(outstanding) {
		return nil, domainerror.NewBorrowingError(
			domainerror.ErrCodeRepaymentExceedsBalance,
			fmt.Sprintf("repayment %s exceeds outstanding balance %s", input.Amount, outstanding),
			domainerror.ErrRepaymentExceedsBalance,
		)
	}

	updated := current.Clone()
	updated.Repayments = append(updated.Repayments, entity.Repayment{
		Amount: input.Amount,
		Date:   uc.now(),
	})
	updated.Status = updated.DeriveStatus()

	borrowings := replaceBorrowing(snapshot.Borrowings, updated)
	if err := uc.store.ReplaceBorrowings(ctx, borrowings); err != nil {
		return nil, err
	}

	if updated.Status == entity.BorrowingStatusPaid {
		uc.sink.Success("Borrowing Paid Off")
	} else {
		uc.sink.Success("Repayment Added")
	}
	return &AddRepaymentOutput{Borrowing: updated}, nil
}

func replaceBorrowing(borrowings []entity.Borrowing, updated entity.Borrowing) []entity.Borrowing {
	out := make([]entity.Borrowing, len(borrowings))
	for i, b := range borrowings {
		if b.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = b
		}
	}
	return out
}
