package borrowing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// DeleteBorrowingInput represents the input for removing a loan.
type DeleteBorrowingInput struct {
	ID uuid.UUID
}

// DeleteBorrowingUseCase removes a loan and its repayment history.
type DeleteBorrowingUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewDeleteBorrowingUseCase creates a new DeleteBorrowingUseCase instance.
func NewDeleteBorrowingUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *DeleteBorrowingUseCase {
	return &DeleteBorrowingUseCase{store: store, sink: sink}
}

// Execute removes the loan, failing when the identifier is unknown.
func (uc *DeleteBorrowingUseCase) Execute(ctx context.Context, input DeleteBorrowingInput) error {
	snapshot := uc.store.Snapshot()

	borrowings := make([]entity.Borrowing, 0, len(snapshot.Borrowings))
	found := false
	for _, b := range snapshot.Borrowings {
		if b.ID == input.ID {
			found = true
			continue
		}
		borrowings = append(borrowings, b)
	}
	if !found {
		return domainerror.NewBorrowingError(
			domainerror.ErrCodeBorrowingNotFound,
			fmt.Sprintf("borrowing %s not found", input.ID),
			domainerror.ErrBorrowingNotFound,
		)
	}

	if err := uc.store.ReplaceBorrowings(ctx, borrowings); err != nil {
		return err
	}

	uc.sink.Success("Borrowing Deleted")
	return nil
}
