// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/homeledger/backend/internal/domain/entity"
)

// LedgerStore is the single owner of the canonical ledger collections.
// Readers receive deep-copied snapshots; writers submit whole-collection
// replacements computed from a snapshot. The store advances its in-memory
// state only after the backing document store acknowledges the write
// (last write wins across clients; no merge is performed).
type LedgerStore interface {
	// Snapshot returns a deep copy of the current ledger document.
	Snapshot() entity.LedgerDocument

	// ReplaceTransactions atomically replaces the transaction collection.
	ReplaceTransactions(ctx context.Context, transactions []entity.Transaction) error

	// ReplaceBorrowings atomically replaces the borrowing collection.
	ReplaceBorrowings(ctx context.Context, borrowings []entity.Borrowing) error

	// ReplaceBudgets atomically replaces the budget collection.
	ReplaceBudgets(ctx context.Context, budgets []entity.Budget) error

	// ReplaceTemplates atomically replaces the template collection.
	ReplaceTemplates(ctx context.Context, templates []entity.Template) error

	// ReplaceSettings replaces the settings singleton.
	ReplaceSettings(ctx context.Context, settings entity.Settings) error

	// Saving reports whether a write is currently in flight. Advisory: the
	// interaction layer uses it to serialize user-initiated mutations.
	Saving() bool

	// Online reports whether the last contact with the backing store
	// succeeded. A false value downgrades success messages to "saved
	// offline"; it never blocks reads.
	Online() bool
}
