// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 5, 15, 10, 0, 0, 0, time.UTC)
	budgets := []entity.Budget{entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500))}

	transactions := []entity.Transaction{
		{
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(300),
			Date:         time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			// Previous month, outside the window.
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(400),
			Date:         time.Date(2026, 4, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			// Income never counts toward the baseline.
			Type:         entity.TransactionTypeIncome,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(1000),
			Date:         time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			// Different category.
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryPersonal,
			Amount:       decimal.NewFromInt(250),
			Date:         time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("projects a prospective expense against the monthly limit", func(t *testing.T) {
		evaluation := Evaluate(transactions, budgets, EvaluateBudgetInput{
			Category:          entity.CategoryGym,
			ProspectiveAmount: decimal.NewFromInt(250),
			Now:               now,
		})
		if evaluation == nil {
			t.Fatal("expected an evaluation, got nil")
		}

		if !evaluation.CurrentExpenses.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected current expenses 300, got %s", evaluation.CurrentExpenses)
		}
		if !evaluation.Projected.Equal(decimal.NewFromInt(550)) {
			t.Errorf("expected projected 550, got %s", evaluation.Projected)
		}
		if !evaluation.Remaining.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("expected remaining -50, got %s", evaluation.Remaining)
		}
	})

	t.Run("category without a budget yields nil", func(t *testing.T) {
		evaluation := Evaluate(transactions, budgets, EvaluateBudgetInput{
			Category:          entity.CategoryPersonal,
			ProspectiveAmount: decimal.NewFromInt(100),
			Now:               now,
		})
		if evaluation != nil {
			t.Errorf("expected nil evaluation, got %+v", evaluation)
		}
	})

	t.Run("editing excludes the original amount from the baseline", func(t *testing.T) {
		editing := transactions[0]
		evaluation := Evaluate(transactions, budgets, EvaluateBudgetInput{
			Category:          entity.CategoryGym,
			ProspectiveAmount: decimal.NewFromInt(350),
			Editing:           &editing,
			Now:               now,
		})
		if evaluation == nil {
			t.Fatal("expected an evaluation, got nil")
		}

		// Baseline drops to 0 once the edited original leaves it.
		if !evaluation.CurrentExpenses.IsZero() {
			t.Errorf("expected current expenses 0, got %s", evaluation.CurrentExpenses)
		}
		if !evaluation.Projected.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected projected 350, got %s", evaluation.Projected)
		}
		if !evaluation.Remaining.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected remaining 150, got %s", evaluation.Remaining)
		}
	})

	t.Run("edited transaction outside the month does not shift the baseline", func(t *testing.T) {
		editing := transactions[1]
		evaluation := Evaluate(transactions, budgets, EvaluateBudgetInput{
			Category:          entity.CategoryGym,
			ProspectiveAmount: decimal.NewFromInt(100),
			Editing:           &editing,
			Now:               now,
		})
		if evaluation == nil {
			t.Fatal("expected an evaluation, got nil")
		}

		if !evaluation.CurrentExpenses.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected current expenses 300, got %s", evaluation.CurrentExpenses)
		}
	})

	t.Run("last instant of the month is inside the window", func(t *testing.T) {
		endOfMonth := []entity.Transaction{{
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(10),
			Date:         time.Date(2026, 5, 31, 23, 59, 59, 999999999, time.UTC),
		}}

		evaluation := Evaluate(endOfMonth, budgets, EvaluateBudgetInput{
			Category: entity.CategoryGym,
			Now:      now,
		})
		if evaluation == nil {
			t.Fatal("expected an evaluation, got nil")
		}

		if !evaluation.CurrentExpenses.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected current expenses 10, got %s", evaluation.CurrentExpenses)
		}
	})
}
