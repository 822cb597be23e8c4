// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLedgerDocument_Clone(t *testing.T) {
	doc := NewLedgerDocument()
	doc.Transactions = append(doc.Transactions, Transaction{
		Type:         TransactionTypeExpense,
		MainCategory: CategoryGym,
		Amount:       decimal.NewFromInt(100),
		Date:         time.Now(),
	})
	doc.Budgets = append(doc.Budgets, NewBudget(CategoryGym, decimal.NewFromInt(500)))

	clone := doc.Clone()
	clone.Transactions[0].Amount = decimal.NewFromInt(999)
	clone.Budgets[0].Limit = decimal.NewFromInt(1)

	if !doc.Transactions[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected original transaction untouched, got %s", doc.Transactions[0].Amount)
	}

	if !doc.Budgets[0].Limit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected original budget untouched, got %s", doc.Budgets[0].Limit)
	}
}

func TestLedgerDocument_RecentTransactions(t *testing.T) {
	doc := NewLedgerDocument()
	for i := 0; i < 3; i++ {
		doc.Transactions = append(doc.Transactions, Transaction{
			Type:   TransactionTypeExpense,
			Amount: decimal.NewFromInt(int64(i + 1)),
			Date:   time.Now(),
		})
	}

	t.Run("limit larger than collection returns everything", func(t *testing.T) {
		recent := doc.RecentTransactions(10)
		if len(recent) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(recent))
		}
	})

	t.Run("limit truncates from the front", func(t *testing.T) {
		recent := doc.RecentTransactions(2)
		if len(recent) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(recent))
		}
		if !recent[0].Amount.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected first transaction first, got amount %s", recent[0].Amount)
		}
	})
}

func TestCandidateTransaction_IsComplete(t *testing.T) {
	complete := CandidateTransaction{
		Type:   TransactionTypeExpense,
		Amount: decimal.NewFromInt(25),
		Date:   time.Now(),
	}

	tests := []struct {
		name      string
		mutate    func(c *CandidateTransaction)
		wantValid bool
	}{
		{"complete candidate", func(c *CandidateTransaction) {}, true},
		{"missing amount", func(c *CandidateTransaction) { c.Amount = decimal.Zero }, false},
		{"negative amount", func(c *CandidateTransaction) { c.Amount = decimal.NewFromInt(-5) }, false},
		{"missing type", func(c *CandidateTransaction) { c.Type = "" }, false},
		{"missing date", func(c *CandidateTransaction) { c.Date = time.Time{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := complete
			tt.mutate(&candidate)
			if candidate.IsComplete() != tt.wantValid {
				t.Errorf("expected IsComplete %v, got %v", tt.wantValid, candidate.IsComplete())
			}
		})
	}
}

func TestSortTransactionsByDateDesc(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	transactions := []Transaction{
		{SubCategory: "old", Date: day(1)},
		{SubCategory: "newest", Date: day(20)},
		{SubCategory: "same-a", Date: day(10)},
		{SubCategory: "same-b", Date: day(10)},
	}

	SortTransactionsByDateDesc(transactions)

	if transactions[0].SubCategory != "newest" {
		t.Errorf("expected newest first, got %s", transactions[0].SubCategory)
	}

	if transactions[3].SubCategory != "old" {
		t.Errorf("expected oldest last, got %s", transactions[3].SubCategory)
	}

	// Stable sort keeps same-instant records in their original order.
	if transactions[1].SubCategory != "same-a" || transactions[2].SubCategory != "same-b" {
		t.Errorf("expected stable order for equal dates, got %s then %s",
			transactions[1].SubCategory, transactions[2].SubCategory)
	}
}
