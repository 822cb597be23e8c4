// Package persistence implements the ledger store and document store
// adapters from the application layer.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// fakeDocumentStore is a controllable DocumentStore for store tests.
type fakeDocumentStore struct {
	document entity.LedgerDocument

	loadErr  error
	mergeErr error

	onDocument func(entity.LedgerDocument)
	onError    func(error)

	mergeCalls int
	mergeHook  func()
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{document: entity.NewLedgerDocument()}
}

func (f *fakeDocumentStore) Load(_ context.Context) (entity.LedgerDocument, error) {
	if f.loadErr != nil {
		return entity.LedgerDocument{}, f.loadErr
	}
	return f.document.Clone(), nil
}

func (f *fakeDocumentStore) Merge(_ context.Context, patch adapter.DocumentPatch) error {
	f.mergeCalls++
	if f.mergeHook != nil {
		f.mergeHook()
	}
	if f.mergeErr != nil {
		return f.mergeErr
	}
	for _, field := range patch.Fields {
		switch field {
		case adapter.FieldTransactions:
			f.document.Transactions = patch.Transactions
		case adapter.FieldBorrowings:
			f.document.Borrowings = patch.Borrowings
		case adapter.FieldBudgets:
			f.document.Budgets = patch.Budgets
		case adapter.FieldTemplates:
			f.document.Templates = patch.Templates
		case adapter.FieldSettings:
			f.document.Settings = *patch.Settings
		}
	}
	return nil
}

func (f *fakeDocumentStore) Subscribe(
	_ context.Context,
	onDocument func(entity.LedgerDocument),
	onError func(error),
) (func(), error) {
	f.onDocument = onDocument
	f.onError = onError
	return func() {}, nil
}

func startedStore(t *testing.T, documents *fakeDocumentStore) *SyncedLedgerStore {
	t.Helper()
	store := NewSyncedLedgerStore(documents)
	require.NoError(t, store.Start(context.Background()))
	t.Cleanup(store.Stop)
	return store
}

func TestSyncedLedgerStore_Start(t *testing.T) {
	t.Run("loads the initial document and comes online", func(t *testing.T) {
		documents := newFakeDocumentStore()
		documents.document.Templates = []entity.Template{{Name: "Rent"}}

		store := startedStore(t, documents)

		assert.True(t, store.Online())
		assert.Len(t, store.Snapshot().Templates, 1)
	})

	t.Run("load failure starts offline on an empty default", func(t *testing.T) {
		documents := newFakeDocumentStore()
		documents.loadErr = domainerror.ErrRemoteUnavailable

		store := startedStore(t, documents)

		assert.False(t, store.Online())
		assert.Empty(t, store.Snapshot().Transactions)
	})

	t.Run("initial transactions are sorted newest first", func(t *testing.T) {
		documents := newFakeDocumentStore()
		documents.document.Transactions = []entity.Transaction{
			{SubCategory: "old", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			{SubCategory: "new", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		}

		store := startedStore(t, documents)

		snapshot := store.Snapshot()
		require.Len(t, snapshot.Transactions, 2)
		assert.Equal(t, "new", snapshot.Transactions[0].SubCategory)
	})
}

func TestSyncedLedgerStore_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("acknowledged write advances the snapshot", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		budgets := []entity.Budget{entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500))}
		require.NoError(t, store.ReplaceBudgets(ctx, budgets))

		assert.Len(t, store.Snapshot().Budgets, 1)
		assert.Equal(t, 1, documents.mergeCalls)
		assert.True(t, store.Online())
	})

	t.Run("failed write leaves the snapshot untouched and goes offline", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)
		documents.mergeErr = errors.New("permission denied")

		err := store.ReplaceBudgets(ctx, []entity.Budget{
			entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500)),
		})

		require.Error(t, err)
		assert.Empty(t, store.Snapshot().Budgets)
		assert.False(t, store.Online())
	})

	t.Run("unreachable store applies the write locally and goes offline", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)
		documents.mergeErr = fmt.Errorf("merge ledger document: %w", domainerror.ErrRemoteUnavailable)

		err := store.ReplaceBudgets(ctx, []entity.Budget{
			entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500)),
		})

		require.NoError(t, err)
		assert.Len(t, store.Snapshot().Budgets, 1)
		assert.False(t, store.Online())

		// The remote truth still wins whole once it comes back.
		documents.onDocument(entity.NewLedgerDocument())
		assert.Empty(t, store.Snapshot().Budgets)
		assert.True(t, store.Online())
	})

	t.Run("concurrent write is rejected with a write-in-flight error", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		var second error
		documents.mergeHook = func() {
			// A write arriving while the first is still in flight.
			second = store.ReplaceTemplates(ctx, []entity.Template{{Name: "Rent"}})
		}

		require.NoError(t, store.ReplaceBudgets(ctx, []entity.Budget{
			entity.NewBudget(entity.CategoryGym, decimal.NewFromInt(500)),
		}))

		require.Error(t, second)
		assert.ErrorIs(t, second, domainerror.ErrWriteInFlight)
		assert.Equal(t, 1, documents.mergeCalls)
	})

	t.Run("saving flag resets after the write completes", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		require.NoError(t, store.ReplaceTemplates(ctx, []entity.Template{{Name: "Rent"}}))
		assert.False(t, store.Saving())
	})
}

func TestSyncedLedgerStore_RemoteUpdates(t *testing.T) {
	t.Run("remote document replaces the snapshot whole", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		remote := entity.NewLedgerDocument()
		remote.Templates = []entity.Template{{Name: "Groceries"}}
		documents.onDocument(remote)

		snapshot := store.Snapshot()
		require.Len(t, snapshot.Templates, 1)
		assert.Equal(t, "Groceries", snapshot.Templates[0].Name)
		assert.True(t, store.Online())
	})

	t.Run("unreachable subscription flips the store offline", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		documents.onError(domainerror.ErrRemoteUnavailable)
		assert.False(t, store.Online())

		// A remote document arriving afterwards recovers it.
		documents.onDocument(entity.NewLedgerDocument())
		assert.True(t, store.Online())
	})

	t.Run("non-availability errors do not flip the online flag", func(t *testing.T) {
		documents := newFakeDocumentStore()
		store := startedStore(t, documents)

		documents.onError(errors.New("decode failure"))
		assert.True(t, store.Online())
	})
}
