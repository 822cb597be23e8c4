// Package persistence implements the ledger store and document store
// adapters from the application layer.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// SyncedLedgerStore owns the in-memory ledger document and keeps it in
// sync with a backing document store. Writes are whole-collection
// replacements: the local snapshot advances only after the backing store
// acknowledges (last write wins across clients), so a failed write never
// leaves the snapshot ahead of the stored truth.
type SyncedLedgerStore struct {
	documents adapter.DocumentStore

	mu       sync.RWMutex
	snapshot entity.LedgerDocument

	saving atomic.Bool
	online atomic.Bool

	stopSubscription func()
}

// NewSyncedLedgerStore creates a store around the given document store.
// Call Start before use.
func NewSyncedLedgerStore(documents adapter.DocumentStore) *SyncedLedgerStore {
	return &SyncedLedgerStore{
		documents: documents,
		snapshot:  entity.NewLedgerDocument(),
	}
}

// Start loads the initial document and subscribes to remote changes. A
// load failure leaves the store offline on its empty default; the
// subscription recovers it once the backing store is reachable again.
func (s *SyncedLedgerStore) Start(ctx context.Context) error {
	document, err := s.documents.Load(ctx)
	if err != nil {
		slog.Warn("initial ledger load failed, starting offline", "error", err)
		s.online.Store(false)
	} else {
		s.applyDocument(document)
		s.online.Store(true)
	}

	stop, err := s.documents.Subscribe(ctx, s.onRemoteDocument, s.onRemoteError)
	if err != nil {
		return err
	}
	s.stopSubscription = stop
	return nil
}

// Stop cancels the remote subscription.
func (s *SyncedLedgerStore) Stop() {
	if s.stopSubscription != nil {
		s.stopSubscription()
	}
}

// Snapshot returns a deep copy of the current ledger document.
func (s *SyncedLedgerStore) Snapshot() entity.LedgerDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Saving reports whether a write is currently in flight.
func (s *SyncedLedgerStore) Saving() bool {
	return s.saving.Load()
}

// Online reports whether the last contact with the backing store succeeded.
func (s *SyncedLedgerStore) Online() bool {
	return s.online.Load()
}

// ReplaceTransactions atomically replaces the transaction collection.
func (s *SyncedLedgerStore) ReplaceTransactions(ctx context.Context, transactions []entity.Transaction) error {
	return s.merge(ctx, adapter.DocumentPatch{
		Transactions: transactions,
		Fields:       []adapter.DocumentField{adapter.FieldTransactions},
	}, func(d *entity.LedgerDocument) {
		d.Transactions = transactions
	})
}

// ReplaceBorrowings atomically replaces the borrowing collection.
func (s *SyncedLedgerStore) ReplaceBorrowings(ctx context.Context, borrowings []entity.Borrowing) error {
	return s.merge(ctx, adapter.DocumentPatch{
		Borrowings: borrowings,
		Fields:     []adapter.DocumentField{adapter.FieldBorrowings},
	}, func(d *entity.LedgerDocument) {
		d.Borrowings = borrowings
	})
}

// ReplaceBudgets atomically replaces the budget collection.
func (s *SyncedLedgerStore) ReplaceBudgets(ctx context.Context, budgets []entity.Budget) error {
	return s.merge(ctx, adapter.DocumentPatch{
		Budgets: budgets,
		Fields:  []adapter.DocumentField{adapter.FieldBudgets},
	}, func(d *entity.LedgerDocument) {
		d.Budgets = budgets
	})
}

// ReplaceTemplates atomically replaces the template collection.
func (s *SyncedLedgerStore) ReplaceTemplates(ctx context.Context, templates []entity.Template) error {
	return s.merge(ctx, adapter.DocumentPatch{
		Templates: templates,
		Fields:    []adapter.DocumentField{adapter.FieldTemplates},
	}, func(d *entity.LedgerDocument) {
		d.Templates = templates
	})
}

// ReplaceSettings replaces the settings singleton.
func (s *SyncedLedgerStore) ReplaceSettings(ctx context.Context, settings entity.Settings) error {
	return s.merge(ctx, adapter.DocumentPatch{
		Settings: &settings,
		Fields:   []adapter.DocumentField{adapter.FieldSettings},
	}, func(d *entity.LedgerDocument) {
		d.Settings = settings
	})
}

// merge pushes the patch to the backing store and, on acknowledgement,
// applies the same change to the local snapshot. The saving flag
// serializes user-initiated writes: a second writer gets ErrWriteInFlight
// instead of racing.
//
// An unreachable backing store does not fail the write: the change applies
// to the local snapshot anyway and the store goes offline, so the caller
// reports "saved offline". The next remote snapshot wins whole, as always.
// Any other merge failure leaves the snapshot untouched and is returned.
func (s *SyncedLedgerStore) merge(ctx context.Context, patch adapter.DocumentPatch, apply func(*entity.LedgerDocument)) error {
	if !s.saving.CompareAndSwap(false, true) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeWriteInFlight,
			"another save is already in progress",
			domainerror.ErrWriteInFlight,
		)
	}
	defer s.saving.Store(false)

	if err := s.documents.Merge(ctx, patch); err != nil {
		s.online.Store(false)
		if !errors.Is(err, domainerror.ErrRemoteUnavailable) {
			return err
		}
		slog.Warn("backing store unreachable, applying write locally", "error", err)
	} else {
		s.online.Store(true)
	}

	s.mu.Lock()
	apply(&s.snapshot)
	s.mu.Unlock()
	return nil
}

func (s *SyncedLedgerStore) applyDocument(document entity.LedgerDocument) {
	entity.SortTransactionsByDateDesc(document.Transactions)
	s.mu.Lock()
	s.snapshot = document
	s.mu.Unlock()
}

// onRemoteDocument replaces the snapshot with the remote truth. No merge
// is attempted: the remote document wins whole.
func (s *SyncedLedgerStore) onRemoteDocument(document entity.LedgerDocument) {
	s.applyDocument(document)
	s.online.Store(true)
}

func (s *SyncedLedgerStore) onRemoteError(err error) {
	if errors.Is(err, domainerror.ErrRemoteUnavailable) {
		s.online.Store(false)
		slog.Warn("ledger backing store unreachable", "error", err)
		return
	}
	slog.Error("ledger subscription error", "error", err)
}
