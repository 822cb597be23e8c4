// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a transaction update.
// The update replaces the record wholesale; editing one leg of a transfer
// never touches the other leg.
type UpdateTransactionInput struct {
	UpdatedBy   string
	Transaction entity.Transaction
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction  entity.Transaction
	SavedOffline bool
}

// UpdateTransactionUseCase replaces an existing ledger entry, appending to
// its edit log.
type UpdateTransactionUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
	now   func() time.Time
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store: store,
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	updated := input.Transaction
	if !updated.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if updated.Type != entity.TransactionTypeIncome && updated.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"committed transactions are 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !entity.IsValidMainCategory(updated.MainCategory) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMainCategory,
			fmt.Sprintf("'%s' is not a valid main category", updated.MainCategory),
			domainerror.ErrInvalidMainCategory,
		)
	}
	if !entity.IsValidMedium(updated.Medium) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMedium,
			fmt.Sprintf("'%s' is not a valid payment medium", updated.Medium),
			domainerror.ErrInvalidMedium,
		)
	}

	snapshot := uc.store.Snapshot()
	existing, found := snapshot.FindTransaction(updated.ID)
	if !found {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	// The recorder and edit history survive the update; every mutation
	// appends to the edit log.
	updated.RecordedBy = existing.RecordedBy
	updated.Edits = append([]entity.EditLog{}, existing.Edits...)
	updated.AppendEdit(input.UpdatedBy, uc.now())

	transactions := snapshot.Transactions
	for i := range transactions {
		if transactions[i].ID == updated.ID {
			transactions[i] = updated
			break
		}
	}
	entity.SortTransactionsByDateDesc(transactions)

	if err := uc.store.ReplaceTransactions(ctx, transactions); err != nil {
		uc.sink.Error(fmt.Sprintf("Error: %s", err.Error()))
		return nil, err
	}

	offline := !uc.store.Online()
	message := "Transaction Updated"
	if offline {
		message += " (Saved offline)"
	}
	uc.sink.Success(message)

	return &UpdateTransactionOutput{Transaction: updated, SavedOffline: offline}, nil
}
