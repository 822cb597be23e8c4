// Package report contains read-only reporting use cases over the ledger.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
)

func seedTransactions(store *fakeLedgerStore) {
	april := func(d int) time.Time { return time.Date(2026, 4, d, 12, 0, 0, 0, time.UTC) }

	store.document.Transactions = []entity.Transaction{
		entity.NewTransaction(entity.Transaction{
			Type:         entity.TransactionTypeIncome,
			MainCategory: entity.CategoryTypingServices,
			Amount:       decimal.NewFromInt(2000),
			Medium:       entity.MediumCard,
			Date:         april(5),
		}, "Ajmal"),
		entity.NewTransaction(entity.Transaction{
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(300),
			Medium:       entity.MediumCard,
			Date:         april(10),
		}, "Ajmal"),
		entity.NewTransaction(entity.Transaction{
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryPersonal,
			Amount:       decimal.NewFromInt(150),
			Medium:       entity.MediumCash,
			Date:         april(12),
		}, "Irfan"),
		entity.NewTransaction(entity.Transaction{
			// Outside April, must not leak into the window.
			Type:         entity.TransactionTypeExpense,
			MainCategory: entity.CategoryGym,
			Amount:       decimal.NewFromInt(999),
			Medium:       entity.MediumCard,
			Date:         time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC),
		}, "Irfan"),
	}
}

func TestGetCategoryBreakdownUseCase_Execute(t *testing.T) {
	store := newFakeLedgerStore()
	seedTransactions(store)
	uc := NewGetCategoryBreakdownUseCase(store)

	input := GetCategoryBreakdownInput{
		Period: PeriodMonthly,
		Anchor: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	}

	output, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("every category appears in enum order", func(t *testing.T) {
		want := entity.MainCategories()
		if len(output.Categories) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(output.Categories))
		}
		for i, total := range output.Categories {
			if total.Category != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], total.Category)
			}
		}
	})

	t.Run("income and expense sums cover the window only", func(t *testing.T) {
		totals := map[entity.MainCategory]CategoryTotal{}
		for _, c := range output.Categories {
			totals[c.Category] = c
		}

		if !totals[entity.CategoryGym].Expense.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected Gym expense 300, got %s", totals[entity.CategoryGym].Expense)
		}
		if !totals[entity.CategoryPersonal].Expense.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected Personal expense 150, got %s", totals[entity.CategoryPersonal].Expense)
		}
		if !totals[entity.CategoryTypingServices].Income.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected Typing Services income 2000, got %s", totals[entity.CategoryTypingServices].Income)
		}
		// Income-only category has no expense side.
		if !totals[entity.CategoryTypingServices].Expense.IsZero() {
			t.Errorf("expected Typing Services expense 0, got %s", totals[entity.CategoryTypingServices].Expense)
		}
	})

	t.Run("a category with both flows reports them separately", func(t *testing.T) {
		mixed := newFakeLedgerStore()
		mixed.document.Transactions = []entity.Transaction{
			entity.NewTransaction(entity.Transaction{
				Type:         entity.TransactionTypeIncome,
				MainCategory: entity.CategoryGym,
				Amount:       decimal.NewFromInt(100),
				Medium:       entity.MediumCard,
				Date:         time.Date(2026, 4, 8, 9, 0, 0, 0, time.UTC),
			}, "Ajmal"),
			entity.NewTransaction(entity.Transaction{
				Type:         entity.TransactionTypeExpense,
				MainCategory: entity.CategoryGym,
				Amount:       decimal.NewFromInt(40),
				Medium:       entity.MediumCard,
				Date:         time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC),
			}, "Ajmal"),
		}

		output, err := NewGetCategoryBreakdownUseCase(mixed).Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range output.Categories {
			if c.Category != entity.CategoryGym {
				continue
			}
			if !c.Income.Equal(decimal.NewFromInt(100)) {
				t.Errorf("expected Gym income 100, got %s", c.Income)
			}
			if !c.Expense.Equal(decimal.NewFromInt(40)) {
				t.Errorf("expected Gym expense 40, got %s", c.Expense)
			}
		}
	})

	t.Run("reading twice yields identical results", func(t *testing.T) {
		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range output.Categories {
			if !output.Categories[i].Income.Equal(second.Categories[i].Income) ||
				!output.Categories[i].Expense.Equal(second.Categories[i].Expense) {
				t.Errorf("category %s: totals differ between reads", output.Categories[i].Category)
			}
		}
	})
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	store := newFakeLedgerStore()
	seedTransactions(store)
	uc := NewGetSummaryUseCase(store)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2000 income - 300 - 150 - 999 expenses.
	if !output.TotalBalance.Equal(decimal.NewFromInt(551)) {
		t.Errorf("expected total balance 551, got %s", output.TotalBalance)
	}

	// Only the 150 expense moved through cash.
	if !output.CashInHand.Equal(decimal.NewFromInt(-150)) {
		t.Errorf("expected cash in hand -150, got %s", output.CashInHand)
	}

	if !output.BankTotal.Equal(decimal.NewFromInt(701)) {
		t.Errorf("expected bank total 701, got %s", output.BankTotal)
	}
}

func TestGetSummaryUseCase_TransferNetsToZero(t *testing.T) {
	store := newFakeLedgerStore()
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	store.document.Transactions = []entity.Transaction{
		{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(500), Medium: entity.MediumCard, Date: date},
		{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(500), Medium: entity.MediumCash, Date: date},
	}
	uc := NewGetSummaryUseCase(store)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalBalance.IsZero() {
		t.Errorf("expected zero total balance, got %s", output.TotalBalance)
	}
	if !output.CashInHand.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected cash in hand 500, got %s", output.CashInHand)
	}
	if !output.BankTotal.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("expected bank total -500, got %s", output.BankTotal)
	}
}

func TestExportCSVUseCase_Execute(t *testing.T) {
	store := newFakeLedgerStore()
	seedTransactions(store)
	uc := NewExportCSVUseCase(store)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(output.Content)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse exported CSV: %v", err)
	}

	t.Run("header row matches the export format", func(t *testing.T) {
		wantHeader := []string{
			"ID", "Type", "Main Category", "Sub Category", "Amount",
			"Currency", "Medium", "Date", "Payee", "Notes", "Recorded By",
		}
		header := records[0]
		if len(header) != len(wantHeader) {
			t.Fatalf("expected %d columns, got %d", len(wantHeader), len(header))
		}
		for i, col := range wantHeader {
			if header[i] != col {
				t.Errorf("column %d: expected %q, got %q", i, col, header[i])
			}
		}
	})

	t.Run("one row per transaction, newest first", func(t *testing.T) {
		if len(records) != 5 {
			t.Fatalf("expected header plus 4 rows, got %d records", len(records))
		}

		// The April 12th expense is the newest.
		first := records[1]
		if first[4] != "150" {
			t.Errorf("expected newest row amount 150, got %s", first[4])
		}
	})

	t.Run("currency column comes from settings", func(t *testing.T) {
		if records[1][5] != string(entity.CurrencyAED) {
			t.Errorf("expected currency AED, got %s", records[1][5])
		}
	})

	t.Run("filename carries the export date", func(t *testing.T) {
		want := "transactions-" + time.Now().Format("2006-01-02") + ".csv"
		if output.FileName != want {
			t.Errorf("expected filename %s, got %s", want, output.FileName)
		}
	})
}
