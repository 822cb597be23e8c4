// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// fakeLedgerStore is an in-memory LedgerStore for use case tests. Errors
// and the online flag are configurable per test.
type fakeLedgerStore struct {
	document   entity.LedgerDocument
	replaceErr error
	offline    bool
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{document: entity.NewLedgerDocument()}
}

func (s *fakeLedgerStore) Snapshot() entity.LedgerDocument {
	return s.document.Clone()
}

func (s *fakeLedgerStore) ReplaceTransactions(_ context.Context, transactions []entity.Transaction) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.document.Transactions = transactions
	return nil
}

func (s *fakeLedgerStore) ReplaceBorrowings(_ context.Context, borrowings []entity.Borrowing) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.document.Borrowings = borrowings
	return nil
}

func (s *fakeLedgerStore) ReplaceBudgets(_ context.Context, budgets []entity.Budget) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.document.Budgets = budgets
	return nil
}

func (s *fakeLedgerStore) ReplaceTemplates(_ context.Context, templates []entity.Template) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.document.Templates = templates
	return nil
}

func (s *fakeLedgerStore) ReplaceSettings(_ context.Context, settings entity.Settings) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.document.Settings = settings
	return nil
}

func (s *fakeLedgerStore) Saving() bool { return false }

func (s *fakeLedgerStore) Online() bool { return !s.offline }

// fakeActivitySink records every reported outcome.
type fakeActivitySink struct {
	activities []adapter.Activity
}

func (s *fakeActivitySink) Success(message string) {
	s.activities = append(s.activities, adapter.Activity{
		Message:   message,
		Kind:      adapter.ActivitySuccess,
		Timestamp: time.Now(),
	})
}

func (s *fakeActivitySink) Error(message string) {
	s.activities = append(s.activities, adapter.Activity{
		Message:   message,
		Kind:      adapter.ActivityError,
		Timestamp: time.Now(),
	})
}

func (s *fakeActivitySink) Last() *adapter.Activity {
	if len(s.activities) == 0 {
		return nil
	}
	last := s.activities[len(s.activities)-1]
	return &last
}
