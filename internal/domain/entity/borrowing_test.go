// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBorrowing_Totals(t *testing.T) {
	loanDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	borrowing := NewBorrowing(
		"Hamid",
		decimal.NewFromInt(1000),
		decimal.NewFromInt(10),
		[]AdditionalCost{{Description: "Processing fee", Amount: decimal.NewFromInt(50)}},
		loanDate,
		returnDate,
	)

	t.Run("TotalDue includes interest and additional costs", func(t *testing.T) {
		want := decimal.NewFromInt(1150)
		if !borrowing.TotalDue().Equal(want) {
			t.Errorf("expected total due %s, got %s", want, borrowing.TotalDue())
		}
	})

	t.Run("Outstanding equals total due before any repayment", func(t *testing.T) {
		if !borrowing.Outstanding().Equal(borrowing.TotalDue()) {
			t.Errorf("expected outstanding %s, got %s", borrowing.TotalDue(), borrowing.Outstanding())
		}
	})

	t.Run("partial repayment reduces outstanding and stays active", func(t *testing.T) {
		b := borrowing.Clone()
		b.Repayments = append(b.Repayments, Repayment{Amount: decimal.NewFromInt(600), Date: loanDate})

		if !b.Outstanding().Equal(decimal.NewFromInt(550)) {
			t.Errorf("expected outstanding 550, got %s", b.Outstanding())
		}

		if b.DeriveStatus() != BorrowingStatusActive {
			t.Errorf("expected status active, got %s", b.DeriveStatus())
		}
	})

	t.Run("full repayment derives paid status", func(t *testing.T) {
		b := borrowing.Clone()
		b.Repayments = append(b.Repayments,
			Repayment{Amount: decimal.NewFromInt(600), Date: loanDate},
			Repayment{Amount: decimal.NewFromInt(550), Date: loanDate},
		)

		if !b.Outstanding().IsZero() {
			t.Errorf("expected outstanding zero, got %s", b.Outstanding())
		}

		if b.DeriveStatus() != BorrowingStatusPaid {
			t.Errorf("expected status paid, got %s", b.DeriveStatus())
		}

		if !b.Progress().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress 100, got %s", b.Progress())
		}
	})

	t.Run("zero total due counts as fully paid", func(t *testing.T) {
		b := NewBorrowing("Hamid", decimal.Zero, decimal.Zero, nil, loanDate, returnDate)

		if !b.Progress().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress 100 for zero due, got %s", b.Progress())
		}

		if b.DeriveStatus() != BorrowingStatusPaid {
			t.Errorf("expected status paid, got %s", b.DeriveStatus())
		}
	})

	t.Run("nil additional costs default to empty", func(t *testing.T) {
		b := NewBorrowing("Hamid", decimal.NewFromInt(100), decimal.Zero, nil, loanDate, returnDate)

		if b.AdditionalCosts == nil {
			t.Error("expected additional costs to be initialized")
		}

		if !b.TotalDue().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total due 100, got %s", b.TotalDue())
		}
	})
}

func TestBorrowing_Clone(t *testing.T) {
	original := NewBorrowing(
		"Shereen",
		decimal.NewFromInt(500),
		decimal.NewFromInt(5),
		[]AdditionalCost{{Description: "Transfer fee", Amount: decimal.NewFromInt(10)}},
		time.Now(),
		time.Now().AddDate(0, 3, 0),
	)
	original.Repayments = append(original.Repayments, Repayment{Amount: decimal.NewFromInt(100), Date: time.Now()})

	clone := original.Clone()
	clone.Repayments = append(clone.Repayments, Repayment{Amount: decimal.NewFromInt(50), Date: time.Now()})
	clone.AdditionalCosts[0].Amount = decimal.NewFromInt(999)

	if len(original.Repayments) != 1 {
		t.Errorf("expected original repayments untouched, got %d entries", len(original.Repayments))
	}

	if !original.AdditionalCosts[0].Amount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected original cost untouched, got %s", original.AdditionalCosts[0].Amount)
	}
}
