package borrowing

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// BorrowingView is a loan together with its derived amounts, so callers
// never recompute the amortization math themselves.
type BorrowingView struct {
	Borrowing   entity.Borrowing
	TotalDue    decimal.Decimal
	TotalRepaid decimal.Decimal
	Outstanding decimal.Decimal
	Progress    decimal.Decimal
}

// ListBorrowingsOutput contains the borrowings with derived amounts,
// newest loan first.
type ListBorrowingsOutput struct {
	Borrowings []BorrowingView
}

// ListBorrowingsUseCase lists the loans with their computed totals.
type ListBorrowingsUseCase struct {
	store adapter.LedgerStore
}

// NewListBorrowingsUseCase creates a new ListBorrowingsUseCase instance.
func NewListBorrowingsUseCase(store adapter.LedgerStore) *ListBorrowingsUseCase {
	return &ListBorrowingsUseCase{store: store}
}

// Execute returns every loan decorated with derived amounts.
func (uc *ListBorrowingsUseCase) Execute(_ context.Context) (*ListBorrowingsOutput, error) {
	snapshot := uc.store.Snapshot()

	views := make([]BorrowingView, 0, len(snapshot.Borrowings))
	for _, b := range snapshot.Borrowings {
		views = append(views, BorrowingView{
			Borrowing:   b,
			TotalDue:    b.TotalDue(),
			TotalRepaid: b.TotalRepaid(),
			Outstanding: b.Outstanding(),
			Progress:    b.Progress(),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Borrowing.LoanDate.After(views[j].Borrowing.LoanDate)
	})

	return &ListBorrowingsOutput{Borrowings: views}, nil
}
