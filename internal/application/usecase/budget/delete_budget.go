package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for removing a budget.
type DeleteBudgetInput struct {
	ID uuid.UUID
}

// DeleteBudgetUseCase removes a budget by identifier.
type DeleteBudgetUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{store: store, sink: sink}
}

// Execute removes the budget, failing when the identifier is unknown.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	snapshot := uc.store.Snapshot()

	budgets := make([]entity.Budget, 0, len(snapshot.Budgets))
	found := false
	for _, b := range snapshot.Budgets {
		if b.ID == input.ID {
			found = true
			continue
		}
		budgets = append(budgets, b)
	}
	if !found {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound,
			fmt.Sprintf("budget %s not found", input.ID),
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.store.ReplaceBudgets(ctx, budgets); err != nil {
		return err
	}

	uc.sink.Success("Budget Deleted")
	return nil
}
