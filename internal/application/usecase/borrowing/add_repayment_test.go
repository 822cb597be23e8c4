package borrowing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

func seedBorrowing(store *fakeLedgerStore) entity.Borrowing {
	borrowing := entity.NewBorrowing(
		"Hamid",
		decimal.NewFromInt(1000),
		decimal.NewFromInt(10),
		[]entity.AdditionalCost{{Description: "Processing fee", Amount: decimal.NewFromInt(50)}},
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	store.document.Borrowings = append(store.document.Borrowings, borrowing)
	return borrowing
}

func TestAddRepaymentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("partial repayment keeps the loan active", func(t *testing.T) {
		store := newFakeLedgerStore()
		borrowing := seedBorrowing(store)
		sink := &fakeActivitySink{}
		uc := NewAddRepaymentUseCase(store, sink)

		output, err := uc.Execute(ctx, AddRepaymentInput{
			BorrowingID: borrowing.ID,
			Amount:      decimal.NewFromInt(600),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Borrowing.Outstanding().Equal(decimal.NewFromInt(550)) {
			t.Errorf("expected outstanding 550, got %s", output.Borrowing.Outstanding())
		}
		if output.Borrowing.Status != entity.BorrowingStatusActive {
			t.Errorf("expected active status, got %s", output.Borrowing.Status)
		}

		last := sink.Last()
		if last == nil || last.Message != "Repayment Added" {
			t.Errorf("expected 'Repayment Added' activity, got %+v", last)
		}
	})

	t.Run("exact final repayment marks the loan paid", func(t *testing.T) {
		store := newFakeLedgerStore()
		borrowing := seedBorrowing(store)
		sink := &fakeActivitySink{}
		uc := NewAddRepaymentUseCase(store, sink)

		if _, err := uc.Execute(ctx, AddRepaymentInput{
			BorrowingID: borrowing.ID,
			Amount:      decimal.NewFromInt(600),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(ctx, AddRepaymentInput{
			BorrowingID: borrowing.ID,
			Amount:      decimal.NewFromInt(550),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Borrowing.Outstanding().IsZero() {
			t.Errorf("expected outstanding zero, got %s", output.Borrowing.Outstanding())
		}
		if output.Borrowing.Status != entity.BorrowingStatusPaid {
			t.Errorf("expected paid status, got %s", output.Borrowing.Status)
		}

		last := sink.Last()
		if last == nil || last.Message != "Borrowing Paid Off" {
			t.Errorf("expected 'Borrowing Paid Off' activity, got %+v", last)
		}
	})

	t.Run("overpayment is rejected exactly", func(t *testing.T) {
		store := newFakeLedgerStore()
		borrowing := seedBorrowing(store)
		sink := &fakeActivitySink{}
		uc := NewAddRepaymentUseCase(store, sink)

		_, err := uc.Execute(ctx, AddRepaymentInput{
			BorrowingID: borrowing.ID,
			Amount:      decimal.RequireFromString("1150.01"),
		})
		if !errors.Is(err, domainerror.ErrRepaymentExceedsBalance) {
			t.Errorf("expected exceeds-balance error, got %v", err)
		}

		if len(store.document.Borrowings[0].Repayments) != 0 {
			t.Error("expected repayment history untouched after rejection")
		}
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		store := newFakeLedgerStore()
		borrowing := seedBorrowing(store)
		uc := NewAddRepaymentUseCase(store, &fakeActivitySink{})

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
			_, err := uc.Execute(ctx, AddRepaymentInput{BorrowingID: borrowing.ID, Amount: amount})
			if !errors.Is(err, domainerror.ErrInvalidRepaymentAmount) {
				t.Errorf("amount %s: expected invalid-amount error, got %v", amount, err)
			}
		}
	})

	t.Run("unknown borrowing is rejected", func(t *testing.T) {
		store := newFakeLedgerStore()
		uc := NewAddRepaymentUseCase(store, &fakeActivitySink{})

		_, err := uc.Execute(ctx, AddRepaymentInput{
			BorrowingID: uuid.New(),
			Amount:      decimal.NewFromInt(100),
		})
		if !errors.Is(err, domainerror.ErrBorrowingNotFound) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})
}

func TestCreateBorrowingUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid borrowing with active status", func(t *testing.T) {
		store := newFakeLedgerStore()
		sink := &fakeActivitySink{}
		uc := NewCreateBorrowingUseCase(store, sink)

		output, err := uc.Execute(ctx, CreateBorrowingInput{
			LenderName: "  Hamid  ",
			Principal:  decimal.NewFromInt(1000),
			Interest:   decimal.NewFromInt(10),
			ReturnDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Borrowing.LenderName != "Hamid" {
			t.Errorf("expected trimmed lender name, got %q", output.Borrowing.LenderName)
		}
		if output.Borrowing.Status != entity.BorrowingStatusActive {
			t.Errorf("expected active status, got %s", output.Borrowing.Status)
		}
		if output.Borrowing.LoanDate.IsZero() {
			t.Error("expected loan date to default to now")
		}

		if len(store.document.Borrowings) != 1 {
			t.Errorf("expected 1 persisted borrowing, got %d", len(store.document.Borrowings))
		}
	})

	t.Run("invalid terms are rejected", func(t *testing.T) {
		store := newFakeLedgerStore()
		uc := NewCreateBorrowingUseCase(store, &fakeActivitySink{})
		returnDate := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

		tests := []struct {
			name     string
			input    CreateBorrowingInput
			sentinel error
		}{
			{
				name:     "blank lender name",
				input:    CreateBorrowingInput{LenderName: "   ", Principal: decimal.NewFromInt(100), ReturnDate: returnDate},
				sentinel: domainerror.ErrMissingLenderName,
			},
			{
				name:     "missing return date",
				input:    CreateBorrowingInput{LenderName: "Hamid", Principal: decimal.NewFromInt(100)},
				sentinel: domainerror.ErrMissingReturnDate,
			},
			{
				name:     "zero principal",
				input:    CreateBorrowingInput{LenderName: "Hamid", ReturnDate: returnDate},
				sentinel: domainerror.ErrInvalidPrincipal,
			},
			{
				name: "negative interest",
				input: CreateBorrowingInput{
					LenderName: "Hamid",
					Principal:  decimal.NewFromInt(100),
					Interest:   decimal.NewFromInt(-1),
					ReturnDate: returnDate,
				},
				sentinel: domainerror.ErrInvalidInterest,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("expected sentinel %v, got %v", tt.sentinel, err)
				}
			})
		}

		if len(store.document.Borrowings) != 0 {
			t.Errorf("expected no persisted borrowings, got %d", len(store.document.Borrowings))
		}
	})
}
