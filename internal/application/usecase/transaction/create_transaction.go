// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	RecordedBy   string
	Draft        Draft
	ActiveFilter entity.MainCategory

	// SaveAsTemplate persists the non-date fields as a named template
	// alongside the transaction. A name collision is reported through
	// TemplateConflict without blocking the transaction write.
	SaveAsTemplate bool
	TemplateName   string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transactions     []entity.Transaction
	TemplateConflict bool
	SavedOffline     bool
}

// CreateTransactionUseCase normalizes a draft and commits the resulting
// record(s) to the ledger.
type CreateTransactionUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
	now   func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store: store,
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	normalized, err := Normalize(input.Draft, StandardDefaults(uc.now(), input.ActiveFilter))
	if err != nil {
		return nil, err
	}

	output := &CreateTransactionOutput{}

	// Template persistence is a user-gated side effect. A name collision is
	// surfaced but must not block the primary write.
	if input.SaveAsTemplate && input.TemplateName != "" && input.Draft.Type != entity.TransactionTypeTransfer {
		if err := uc.saveTemplate(ctx, input.TemplateName, normalized[0]); err != nil {
			if isTemplateConflict(err) {
				output.TemplateConflict = true
				uc.sink.Error("Template name already exists!")
			} else {
				slog.Warn("Failed to save template", "name", input.TemplateName, "error", err)
			}
		}
	}

	snapshot := uc.store.Snapshot()
	committed := make([]entity.Transaction, 0, len(normalized))
	for _, record := range normalized {
		committed = append(committed, entity.NewTransaction(record, input.RecordedBy))
	}

	updated := append(committed, snapshot.Transactions...)
	entity.SortTransactionsByDateDesc(updated)

	if err := uc.store.ReplaceTransactions(ctx, updated); err != nil {
		uc.sink.Error(fmt.Sprintf("Error: %s", err.Error()))
		return nil, err
	}

	message := "Transaction Added"
	if len(committed) > 1 {
		message = fmt.Sprintf("%d transactions added", len(committed))
	}
	output.Transactions = committed
	output.SavedOffline = !uc.store.Online()
	uc.recordSuccess(message, output.SavedOffline)

	return output, nil
}

// saveTemplate persists the non-date fields of the normalized record under
// the given name, rejecting duplicates.
func (uc *CreateTransactionUseCase) saveTemplate(ctx context.Context, name string, record entity.Transaction) error {
	snapshot := uc.store.Snapshot()
	if snapshot.HasTemplate(name) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTemplateNameExists,
			fmt.Sprintf("template '%s' already exists", name),
			domainerror.ErrTemplateNameExists,
		)
	}

	template := entity.Template{
		Name: name,
		Transaction: entity.TemplateTransaction{
			Type:         record.Type,
			MainCategory: record.MainCategory,
			SubCategory:  record.SubCategory,
			Amount:       record.Amount,
			Medium:       record.Medium,
			Notes:        record.Notes,
			Payee:        record.Payee,
		},
	}
	return uc.store.ReplaceTemplates(ctx, append(snapshot.Templates, template))
}

func (uc *CreateTransactionUseCase) recordSuccess(message string, offline bool) {
	if offline {
		message += " (Saved offline)"
	}
	uc.sink.Success(message)
}

func isTemplateConflict(err error) bool {
	return errors.Is(err, domainerror.ErrTemplateNameExists)
}
