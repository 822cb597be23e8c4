// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// EvaluateBudgetInput represents the input for a budget projection.
type EvaluateBudgetInput struct {
	Category          entity.MainCategory
	ProspectiveAmount decimal.Decimal

	// Editing, when set, is the original of a transaction being edited; its
	// amount is excluded from the month-to-date baseline to avoid double
	// counting.
	Editing *entity.Transaction

	// Now anchors the current month. Zero means time.Now().
	Now time.Time
}

// BudgetEvaluation is the projection result for a category with a
// configured budget.
type BudgetEvaluation struct {
	Category        entity.MainCategory
	Limit           decimal.Decimal
	CurrentExpenses decimal.Decimal
	Projected       decimal.Decimal
	Remaining       decimal.Decimal // limit - projected, may be negative
}

// EvaluateBudgetUseCase projects the effect of a prospective expense
// against the category's monthly limit. Advisory only: it never blocks a
// write.
type EvaluateBudgetUseCase struct {
	store adapter.LedgerStore
}

// NewEvaluateBudgetUseCase creates a new EvaluateBudgetUseCase instance.
func NewEvaluateBudgetUseCase(store adapter.LedgerStore) *EvaluateBudgetUseCase {
	return &EvaluateBudgetUseCase{store: store}
}

// Execute computes the month-to-date, projected, and remaining amounts.
// A category with no configured budget yields nil, not an error.
func (uc *EvaluateBudgetUseCase) Execute(_ context.Context, input EvaluateBudgetInput) (*BudgetEvaluation, error) {
	snapshot := uc.store.Snapshot()
	return Evaluate(snapshot.Transactions, snapshot.Budgets, input), nil
}

// Evaluate is the pure projection over explicit collections, shared with
// tests and callers that already hold a snapshot.
func Evaluate(transactions []entity.Transaction, budgets []entity.Budget, input EvaluateBudgetInput) *BudgetEvaluation {
	var limit decimal.Decimal
	found := false
	for _, b := range budgets {
		if b.Category == input.Category {
			limit = b.Limit
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	start, end := monthBounds(now)

	current := decimal.Zero
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || t.MainCategory != input.Category {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		current = current.Add(t.Amount)
	}

	// An edited transaction's original amount must leave the baseline
	// before the new amount is projected.
	if e := input.Editing; e != nil &&
		e.Type == entity.TransactionTypeExpense &&
		e.MainCategory == input.Category &&
		!e.Date.Before(start) && !e.Date.After(end) {
		current = current.Sub(e.Amount)
	}

	projected := current.Add(input.ProspectiveAmount)
	return &BudgetEvaluation{
		Category:        input.Category,
		Limit:           limit,
		CurrentExpenses: current,
		Projected:       projected,
		Remaining:       limit.Sub(projected),
	}
}

// monthBounds returns the inclusive first and last instants of the month
// containing the given time.
func monthBounds(at time.Time) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
