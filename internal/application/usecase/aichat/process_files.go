package aichat

import (
	"context"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/reconciliation"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// ProcessFilesInput carries the uploaded documents for extraction.
type ProcessFilesInput struct {
	Files []adapter.ImportFile
}

// ProcessFilesOutput holds the reconciled candidates, ready for review.
type ProcessFilesOutput struct {
	Candidates []entity.CandidateTransaction
}

// ProcessFilesUseCase extracts candidate transactions from uploaded
// documents, drops incomplete rows, and reconciles the rest against the
// ledger.
type ProcessFilesUseCase struct {
	store     adapter.LedgerStore
	extractor adapter.AIExtractor
	reconcile *reconciliation.ReconcileBatchUseCase
}

// NewProcessFilesUseCase creates a new ProcessFilesUseCase instance.
func NewProcessFilesUseCase(
	store adapter.LedgerStore,
	extractor adapter.AIExtractor,
	reconcile *reconciliation.ReconcileBatchUseCase,
) *ProcessFilesUseCase {
	return &ProcessFilesUseCase{store: store, extractor: extractor, reconcile: reconcile}
}

// Execute runs the extraction and reconciliation pipeline over the batch.
func (uc *ProcessFilesUseCase) Execute(ctx context.Context, input ProcessFilesInput) (*ProcessFilesOutput, error) {
	if !uc.extractor.IsAvailable() {
		return nil, domainerror.NewExtractorError(
			domainerror.ErrCodeExtractorUnavailable,
			"assistant is not configured",
			domainerror.ErrExtractorUnavailable,
		)
	}

	snapshot := uc.store.Snapshot()
	extracted, err := uc.extractor.ExtractFromFiles(ctx, input.Files, snapshot.RecentTransactions(bulkRecentTransactionsLimit))
	if err != nil {
		return nil, err
	}

	// Rows without an amount, type, or date cannot become transactions and
	// are dropped before review rather than failing the batch.
	complete := make([]entity.CandidateTransaction, 0, len(extracted))
	for _, candidate := range extracted {
		if candidate.IsComplete() {
			complete = append(complete, candidate)
		}
	}

	reconciled := uc.reconcile.Execute(ctx, reconciliation.ReconcileBatchInput{
		Candidates: complete,
		Existing:   snapshot.Transactions,
	})

	return &ProcessFilesOutput{Candidates: reconciled.Candidates}, nil
}
