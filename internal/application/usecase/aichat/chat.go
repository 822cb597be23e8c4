// Package aichat contains the conversational-extraction use cases. The
// extractor output is never trusted: every candidate passes through
// reconciliation before a user sees it.
package aichat

import (
	"context"
	"log/slog"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// Recent-transaction context passed to the extractor. File batches get a
// deeper window than the chat turn: statements repeat payees the model
// should recognize.
const (
	chatRecentTransactionsLimit = 10
	bulkRecentTransactionsLimit = 20
)

// ChatInput represents one conversational turn from the user.
type ChatInput struct {
	Message    string
	Attachment *adapter.ChatAttachment
}

// ChatOutput is the assistant's reply. On a confirmation reply the
// candidates are already reconciled against the ledger.
type ChatOutput struct {
	Completion adapter.ChatCompletion
}

// ChatUseCase runs one assistant turn with ledger context attached.
type ChatUseCase struct {
	store     adapter.LedgerStore
	extractor adapter.AIExtractor
	reconcile *reconciliation.ReconcileBatchUseCase
	now       func() time.Time
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(
	store adapter.LedgerStore,
	extractor adapter.AIExtractor,
	reconcile *reconciliation.ReconcileBatchUseCase,
) *ChatUseCase {
	return &ChatUseCase{store: store, extractor: extractor, reconcile: reconcile, now: time.Now}
}

// Execute sends the message with recent history and budgets as context.
// An extractor failure degrades to an error-typed reply instead of a
// transport error so the conversation survives.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	if !uc.extractor.IsAvailable() {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorUnavailable,
			"assistant is not configured",
			domainerror.ErrExtractorUnavailable,
		)
	}

	snapshot := uc.store.Snapshot()
	completion, err := uc.extractor.Chat(ctx, adapter.ChatRequest{
		Message:            input.Message,
		Attachment:         input.Attachment,
		RecentTransactions: snapshot.RecentTransactions(chatRecentTransactionsLimit),
		Budgets:            snapshot.Budgets,
		Today:              uc.now(),
	})
	if err != nil {
		slog.Error("assistant chat turn failed", "error", err)
		return &ChatOutput{Completion: adapter.ChatCompletion{
			Type:    adapter.ChatCompletionError,
			Message: "Sorry, I could not process that. Please try again.",
		}}, nil
	}

	if completion.Type == adapter.ChatCompletionConfirmation {
		reconciled := uc.reconcile.Execute(ctx, reconciliation.ReconcileBatchInput{
			Candidates: completion.Transactions,
			Existing:   snapshot.Transactions,
		})
		completion.Transactions = reconciled.Candidates
	}

	return &ChatOutput{Completion: *completion}, nil
}
