package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for a category breakdown.
type GetCategoryBreakdownInput struct {
	Period Period
	Anchor time.Time
}

// CategoryTotal is one category's income and expense sums within the
// window.
type CategoryTotal struct {
	Category entity.MainCategory
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// GetCategoryBreakdownOutput lists every category with its income and
// expense sums, in the fixed enum order, zero totals included.
type GetCategoryBreakdownOutput struct {
	Start      time.Time
	End        time.Time
	Categories []CategoryTotal
}

// GetCategoryBreakdownUseCase sums income and expenses per category over a
// reporting window. Reading twice over the same data yields identical
// results.
type GetCategoryBreakdownUseCase struct {
	store adapter.LedgerStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(store adapter.LedgerStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{store: store}
}

// Execute computes the per-category income and expense sums for the
// window containing the anchor.
func (uc *GetCategoryBreakdownUseCase) Execute(_ context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	anchor := input.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}
	start, end := PeriodBounds(input.Period, anchor)

	totals := make(map[entity.MainCategory]CategoryTotal, len(entity.MainCategories()))
	for _, category := range entity.MainCategories() {
		totals[category] = CategoryTotal{Category: category, Income: decimal.Zero, Expense: decimal.Zero}
	}

	snapshot := uc.store.Snapshot()
	for _, t := range snapshot.Transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		total := totals[t.MainCategory]
		switch t.Type {
		case entity.TransactionTypeIncome:
			total.Income = total.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			total.Expense = total.Expense.Add(t.Amount)
		}
		totals[t.MainCategory] = total
	}

	categories := make([]CategoryTotal, 0, len(entity.MainCategories()))
	for _, category := range entity.MainCategories() {
		categories = append(categories, totals[category])
	}

	return &GetCategoryBreakdownOutput{Start: start, End: end, Categories: categories}, nil
}
