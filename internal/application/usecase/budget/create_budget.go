package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a monthly budget.
type CreateBudgetInput struct {
	Category entity.MainCategory
	Limit    decimal.Decimal
}

// CreateBudgetOutput contains the persisted budget.
type CreateBudgetOutput struct {
	Budget entity.Budget
}

// CreateBudgetUseCase creates a monthly budget for a category. At most
// one budget may exist per category.
type CreateBudgetUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{store: store, sink: sink}
}

// Execute validates and persists the budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !entity.IsValidMainCategory(input.Category) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetLimit,
			fmt.Sprintf("unknown category %q", input.Category),
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	if !input.Limit.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"budget limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	snapshot := uc.store.Snapshot()
	for _, b := range snapshot.Budgets {
		if b.Category == input.Category {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeBudgetCategoryExists,
				fmt.Sprintf("a budget for %q already exists", input.Category),
				domainerror.ErrBudgetCategoryExists,
			)
		}
	}

	budget := entity.NewBudget(input.Category, input.Limit)
	budgets := append(snapshot.Budgets, budget)
	if err := uc.store.ReplaceBudgets(ctx, budgets); err != nil {
		return nil, err
	}

	uc.sink.Success("Budget Added")
	return &CreateBudgetOutput{Budget: budget}, nil
}
