// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase removes a transaction from the ledger.
type DeleteTransactionUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{store: store, sink: sink}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	snapshot := uc.store.Snapshot()

	remaining := make([]entity.Transaction, 0, len(snapshot.Transactions))
	found := false
	for _, t := range snapshot.Transactions {
		if t.ID == input.ID {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.store.ReplaceTransactions(ctx, remaining); err != nil {
		uc.sink.Error(fmt.Sprintf("Error: %s", err.Error()))
		return err
	}

	message := "Transaction Deleted"
	if !uc.store.Online() {
		message += " (Saved offline)"
	}
	uc.sink.Success(message)
	return nil
}
