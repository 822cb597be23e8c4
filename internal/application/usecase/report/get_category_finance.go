package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// GetCategoryFinanceInput represents the input for one category's
// profit-and-loss view.
type GetCategoryFinanceInput struct {
	Category entity.MainCategory
}

// GetCategoryFinanceOutput is a category's income, expenses, and profit
// together with its transactions, newest first.
type GetCategoryFinanceOutput struct {
	Category     entity.MainCategory
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Profit       decimal.Decimal
	Transactions []entity.Transaction
}

// GetCategoryFinanceUseCase builds the profit-and-loss view for a single
// category across the full ledger.
type GetCategoryFinanceUseCase struct {
	store adapter.LedgerStore
}

// NewGetCategoryFinanceUseCase creates a new GetCategoryFinanceUseCase instance.
func NewGetCategoryFinanceUseCase(store adapter.LedgerStore) *GetCategoryFinanceUseCase {
	return &GetCategoryFinanceUseCase{store: store}
}

// Execute sums the category's income and expenses and returns its
// transactions sorted by date descending.
func (uc *GetCategoryFinanceUseCase) Execute(_ context.Context, input GetCategoryFinanceInput) (*GetCategoryFinanceOutput, error) {
	out := &GetCategoryFinanceOutput{
		Category:     input.Category,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Transactions: []entity.Transaction{},
	}

	snapshot := uc.store.Snapshot()
	for _, t := range snapshot.Transactions {
		if t.MainCategory != input.Category {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			out.TotalIncome = out.TotalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			out.TotalExpense = out.TotalExpense.Add(t.Amount)
		}
		out.Transactions = append(out.Transactions, t)
	}
	entity.SortTransactionsByDateDesc(out.Transactions)
	out.Profit = out.TotalIncome.Sub(out.TotalExpense)

	return out, nil
}
