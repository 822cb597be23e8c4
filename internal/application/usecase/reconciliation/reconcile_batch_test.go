// Package reconciliation classifies AI-derived candidate transactions
// against the existing ledger.
package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

func TestReconcileBatchUseCase_Execute(t *testing.T) {
	uc := NewReconcileBatchUseCase()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	existing := []entity.Transaction{
		{
			Type:        entity.TransactionTypeExpense,
			SubCategory: "Groceries",
			Amount:      decimal.NewFromInt(85),
			Date:        day.Add(9 * time.Hour),
			Payee:       "Carrefour",
		},
	}

	t.Run("exact match on amount, day and payee is flagged duplicate", func(t *testing.T) {
		output := uc.Execute(context.Background(), ReconcileBatchInput{
			Candidates: []entity.CandidateTransaction{{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(85),
				Date:   day.Add(18 * time.Hour),
				Payee:  "Carrefour",
			}},
			Existing: existing,
		})

		candidate := output.Candidates[0]
		if candidate.Status != entity.CandidateStatusDuplicate {
			t.Errorf("expected duplicate status, got %s", candidate.Status)
		}
		if candidate.Checked {
			t.Error("expected duplicate candidate to default unchecked")
		}
	})

	t.Run("sub-category match alone also triggers the duplicate flag", func(t *testing.T) {
		output := uc.Execute(context.Background(), ReconcileBatchInput{
			Candidates: []entity.CandidateTransaction{{
				Type:        entity.TransactionTypeExpense,
				SubCategory: "Groceries",
				Amount:      decimal.NewFromInt(85),
				Date:        day,
			}},
			Existing: existing,
		})

		if output.Candidates[0].Status != entity.CandidateStatusDuplicate {
			t.Errorf("expected duplicate status, got %s", output.Candidates[0].Status)
		}
	})

	t.Run("different amount clears the duplicate flag", func(t *testing.T) {
		output := uc.Execute(context.Background(), ReconcileBatchInput{
			Candidates: []entity.CandidateTransaction{{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(86),
				Date:   day,
				Payee:  "Carrefour",
			}},
			Existing: existing,
		})

		candidate := output.Candidates[0]
		if candidate.Status != entity.CandidateStatusNew {
			t.Errorf("expected new status, got %s", candidate.Status)
		}
		if !candidate.Checked {
			t.Error("expected new candidate to default checked")
		}
	})

	t.Run("different calendar day clears the duplicate flag", func(t *testing.T) {
		output := uc.Execute(context.Background(), ReconcileBatchInput{
			Candidates: []entity.CandidateTransaction{{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(85),
				Date:   day.AddDate(0, 0, 1),
				Payee:  "Carrefour",
			}},
			Existing: existing,
		})

		if output.Candidates[0].Status != entity.CandidateStatusNew {
			t.Errorf("expected new status, got %s", output.Candidates[0].Status)
		}
	})
}

func TestCoerceMainCategory(t *testing.T) {
	t.Run("out-of-enum category is coerced with an audit note", func(t *testing.T) {
		candidate := entity.CandidateTransaction{
			MainCategory: "Vacation",
			Notes:        "Flight to Kochi",
		}

		CoerceMainCategory(&candidate)

		if candidate.MainCategory != entity.DefaultMainCategory {
			t.Errorf("expected default category, got %s", candidate.MainCategory)
		}

		want := "Flight to Kochi | Original category: Vacation."
		if candidate.Notes != want {
			t.Errorf("expected notes %q, got %q", want, candidate.Notes)
		}
	})

	t.Run("in-enum category passes through untouched", func(t *testing.T) {
		candidate := entity.CandidateTransaction{
			MainCategory: entity.CategoryGym,
			Notes:        "Membership",
		}

		CoerceMainCategory(&candidate)

		if candidate.MainCategory != entity.CategoryGym {
			t.Errorf("expected category Gym, got %s", candidate.MainCategory)
		}
		if candidate.Notes != "Membership" {
			t.Errorf("expected notes untouched, got %q", candidate.Notes)
		}
	})

	t.Run("empty category is left for the defaults table", func(t *testing.T) {
		candidate := entity.CandidateTransaction{}

		CoerceMainCategory(&candidate)

		if candidate.MainCategory != "" {
			t.Errorf("expected empty category preserved, got %s", candidate.MainCategory)
		}
	})
}
