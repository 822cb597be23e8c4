// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/homeledger/backend/internal/domain/entity"
)

// DocumentField names a top-level field of the shared ledger document.
// Writes merge at this granularity: a patch touching only transactions
// leaves every other field untouched remotely.
type DocumentField string

const (
	FieldTransactions DocumentField = "transactions"
	FieldBorrowings   DocumentField = "borrowings"
	FieldSettings     DocumentField = "settings"
	FieldBudgets      DocumentField = "budgets"
	FieldTemplates    DocumentField = "templates"
)

// DocumentPatch is a partial update of the ledger document. Only the fields
// present in the patch are written.
type DocumentPatch struct {
	Transactions []entity.Transaction
	Borrowings   []entity.Borrowing
	Settings     *entity.Settings
	Budgets      []entity.Budget
	Templates    []entity.Template
	Fields       []DocumentField // which fields above carry a value
}

// DocumentStore is the external persistence boundary: a synchronized
// key-value blob store holding one ledger document per deployment. The core
// never retries writes; retry/backoff is the store's own responsibility.
type DocumentStore interface {
	// Load fetches the current document, seeding a default one if none
	// exists yet. An unreachable store returns an error wrapping
	// domainerror.ErrRemoteUnavailable.
	Load(ctx context.Context) (entity.LedgerDocument, error)

	// Merge writes the patch, merging at top-level-field granularity.
	Merge(ctx context.Context, patch DocumentPatch) error

	// Subscribe delivers whole-document snapshots as they change remotely.
	// onError distinguishes "currently unreachable" (wrapping
	// domainerror.ErrRemoteUnavailable) from other failures. The returned
	// function stops the subscription.
	Subscribe(
		ctx context.Context,
		onDocument func(entity.LedgerDocument),
		onError func(error),
	) (stop func(), err error)
}
