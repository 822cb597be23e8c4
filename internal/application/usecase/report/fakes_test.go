// Package report contains read-only reporting use cases over the ledger.
package report

import (
	"context"

	"github.com/homeledger/backend/internal/domain/entity"
)

type fakeLedgerStore struct {
	document entity.LedgerDocument
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{document: entity.NewLedgerDocument()}
}

func (s *fakeLedgerStore) Snapshot() entity.LedgerDocument {
	return s.document.Clone()
}

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
