// Package aichat contains the conversational-extraction use cases.
package aichat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/reconciliation"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

type fakeLedgerStore struct {
	document entity.LedgerDocument
}

func (s *fakeLedgerStore) Snapshot() entity.LedgerDocument { return s.document.Clone() }

func (s *fakeLedgerStore) ReplaceTransactions(_ context.Context, transactions []entity.Transaction) error {
	s.document.Transactions = transactions
	return nil
}

func (s *fakeLedgerStore) ReplaceBorrowings(_ context.Context, borrowings []entity.Borrowing) error {
	s.document.Borrowings = borrowings
	return nil
}

func (s *fakeLedgerStore) ReplaceBudgets(_ context.Context, budgets []entity.Budget) error {
	s.document.Budgets = budgets
	return nil
}

func (s *fakeLedgerStore) ReplaceTemplates(_ context.Context, templates []entity.Template) error {
	s.document.Templates = templates
	return nil
}

func (s *fakeLedgerStore) ReplaceSettings(_ context.Context, settings entity.Settings) error {
	s.document.Settings = settings
	return nil
}

func (s *fakeLedgerStore) Saving() bool { return false }
func (s *fakeLedgerStore) Online() bool { return true }

type fakeExtractor struct {
	available  bool
	completion *adapter.ChatCompletion
	extracted  []entity.CandidateTransaction
	err        error

	lastChatRequest adapter.ChatRequest
	lastFileContext []entity.Transaction
}

func (f *fakeExtractor) IsAvailable() bool { return f.available }

func (f *fakeExtractor) Chat(_ context.Context, request adapter.ChatRequest) (*adapter.ChatCompletion, error) {
	f.lastChatRequest = request
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeExtractor) ExtractFromFiles(
	_ context.Context,
	_ []adapter.ImportFile,
	recentTransactions []entity.Transaction,
) ([]entity.CandidateTransaction, error) {
	f.lastFileContext = recentTransactions
	if f.err != nil {
		return nil, f.err
	}
	return f.extracted, nil
}

func TestProcessFilesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("incomplete rows are dropped before review", func(t *testing.T) {
		extractor := &fakeExtractor{
			available: true,
			extracted: []entity.CandidateTransaction{
				{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(40), Date: day},
				{Type: entity.TransactionTypeExpense, Date: day}, // no amount
				{Amount: decimal.NewFromInt(15), Date: day},      // no type
			},
		}
		uc := NewProcessFilesUseCase(
			&fakeLedgerStore{document: entity.NewLedgerDocument()},
			extractor,
			reconciliation.NewReconcileBatchUseCase(),
		)

		output, err := uc.Execute(ctx, ProcessFilesInput{
			Files: []adapter.ImportFile{{Name: "statement.csv", Kind: adapter.ImportFileCSV}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Candidates) != 1 {
			t.Fatalf("expected 1 complete candidate, got %d", len(output.Candidates))
		}
		if output.Candidates[0].Status != entity.CandidateStatusNew {
			t.Errorf("expected new status, got %s", output.Candidates[0].Status)
		}
	})

	t.Run("candidates matching the ledger are flagged duplicate", func(t *testing.T) {
		store := &fakeLedgerStore{document: entity.NewLedgerDocument()}
		store.document.Transactions = []entity.Transaction{{
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(85),
			Date:   day,
			Payee:  "Carrefour",
		}}
		extractor := &fakeExtractor{
			available: true,
			extracted: []entity.CandidateTransaction{{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(85),
				Date:   day,
				Payee:  "Carrefour",
			}},
		}
		uc := NewProcessFilesUseCase(store, extractor, reconciliation.NewReconcileBatchUseCase())

		output, err := uc.Execute(ctx, ProcessFilesInput{
			Files: []adapter.ImportFile{{Name: "statement.csv", Kind: adapter.ImportFileCSV}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Candidates[0].Status != entity.CandidateStatusDuplicate {
			t.Errorf("expected duplicate status, got %s", output.Candidates[0].Status)
		}
	})

	t.Run("file batches carry twenty recent transactions for context", func(t *testing.T) {
		store := &fakeLedgerStore{document: entity.NewLedgerDocument()}
		for i := 0; i < 25; i++ {
			store.document.Transactions = append(store.document.Transactions, entity.Transaction{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(int64(i + 1)),
				Date:   time.Now(),
			})
		}

		extractor := &fakeExtractor{available: true}
		uc := NewProcessFilesUseCase(store, extractor, reconciliation.NewReconcileBatchUseCase())

		if _, err := uc.Execute(ctx, ProcessFilesInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(extractor.lastFileContext) != 20 {
			t.Errorf("expected 20 recent transactions, got %d", len(extractor.lastFileContext))
		}
	})

	t.Run("unconfigured extractor is rejected", func(t *testing.T) {
		uc := NewProcessFilesUseCase(
			&fakeLedgerStore{document: entity.NewLedgerDocument()},
			&fakeExtractor{available: false},
			reconciliation.NewReconcileBatchUseCase(),
		)

		_, err := uc.Execute(ctx, ProcessFilesInput{})
		if !errors.Is(err, domainerror.ErrExtractorUnavailable) {
			t.Errorf("expected unavailable error, got %v", err)
		}
	})

	t.Run("extraction failure is fatal for the batch", func(t *testing.T) {
		uc := NewProcessFilesUseCase(
			&fakeLedgerStore{document: entity.NewLedgerDocument()},
			&fakeExtractor{available: true, err: errors.New("model overloaded")},
			reconciliation.NewReconcileBatchUseCase(),
		)

		_, err := uc.Execute(ctx, ProcessFilesInput{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestChatUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation reply carries reconciled candidates", func(t *testing.T) {
		day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
		store := &fakeLedgerStore{document: entity.NewLedgerDocument()}
		store.document.Transactions = []entity.Transaction{{
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(85),
			Date:   day,
			Payee:  "Carrefour",
		}}
		extractor := &fakeExtractor{
			available: true,
			completion: &adapter.ChatCompletion{
				Type:    adapter.ChatCompletionConfirmation,
				Message: "Add this expense?",
				Transactions: []entity.CandidateTransaction{{
					Type:         entity.TransactionTypeExpense,
					MainCategory: "Shopping",
					Amount:       decimal.NewFromInt(85),
					Date:         day,
					Payee:        "Carrefour",
				}},
			},
		}
		uc := NewChatUseCase(store, extractor, reconciliation.NewReconcileBatchUseCase())

		output, err := uc.Execute(ctx, ChatInput{Message: "I spent 85 at Carrefour"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		candidate := output.Completion.Transactions[0]
		if candidate.Status != entity.CandidateStatusDuplicate {
			t.Errorf("expected duplicate status, got %s", candidate.Status)
		}
		if candidate.MainCategory != entity.DefaultMainCategory {
			t.Errorf("expected coerced category, got %s", candidate.MainCategory)
		}
	})

	t.Run("recent transactions and budgets travel with the request", func(t *testing.T) {
		store := &fakeLedgerStore{document: entity.NewLedgerDocument()}
		for i := 0; i < 15; i++ {
			store.document.Transactions = append(store.document.Transactions, entity.Transaction{
				Type:   entity.TransactionTypeExpense,
				Amount: decimal.NewFromInt(int64(i + 1)),
				Date:   time.Now(),
			})
		}
		store.document.Budgets = []entity.Budget{entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500))}

		extractor := &fakeExtractor{
			available:  true,
			completion: &adapter.ChatCompletion{Type: adapter.ChatCompletionChat, Message: "Hello"},
		}
		uc := NewChatUseCase(store, extractor, reconciliation.NewReconcileBatchUseCase())

		if _, err := uc.Execute(ctx, ChatInput{Message: "Hi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(extractor.lastChatRequest.RecentTransactions) != 10 {
			t.Errorf("expected 10 recent transactions, got %d", len(extractor.lastChatRequest.RecentTransactions))
		}
		if len(extractor.lastChatRequest.Budgets) != 1 {
			t.Errorf("expected 1 budget in context, got %d", len(extractor.lastChatRequest.Budgets))
		}
	})

	t.Run("extractor failure degrades to an error-typed reply", func(t *testing.T) {
		uc := NewChatUseCase(
			&fakeLedgerStore{document: entity.NewLedgerDocument()},
			&fakeExtractor{available: true, err: errors.New("model overloaded")},
			reconciliation.NewReconcileBatchUseCase(),
		)

		output, err := uc.Execute(ctx, ChatInput{Message: "Hi"})
		if err != nil {
			t.Fatalf("expected degraded reply, got transport error: %v", err)
		}

		if output.Completion.Type != adapter.ChatCompletionError {
			t.Errorf("expected error-typed completion, got %s", output.Completion.Type)
		}
	})
}
