// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// BulkImportInput carries the user-reviewed candidate batch. Only checked
// candidates are committed; duplicate flags are advisory and have already
// set the review defaults.
type BulkImportInput struct {
	RecordedBy string
	Candidates []entity.CandidateTransaction
}

// BulkImportOutput reports how many rows were committed and how many were
// skipped, either left unchecked in review or dropped by normalization.
type BulkImportOutput struct {
	Imported     int
	Skipped      int
	SavedOffline bool
}

// BulkImportUseCase normalizes a reviewed candidate batch and commits it in
// a single collection replacement.
type BulkImportUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
	now   func() time.Time
}

// NewBulkImportUseCase creates a new BulkImportUseCase instance.
func NewBulkImportUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *BulkImportUseCase {
	return &BulkImportUseCase{
		store: store,
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the bulk import.
func (uc *BulkImportUseCase) Execute(ctx context.Context, input BulkImportInput) (*BulkImportOutput, error) {
	defaults := StandardDefaults(uc.now(), entity.DefaultMainCategory)

	committed := make([]entity.Transaction, 0, len(input.Candidates))
	skipped := 0
	for _, candidate := range input.Candidates {
		if !candidate.Checked {
			skipped++
			continue
		}
		records, err := Normalize(Draft{
			Type:         candidate.Type,
			MainCategory: candidate.MainCategory,
			SubCategory:  candidate.SubCategory,
			Amount:       candidate.Amount,
			Medium:       candidate.Medium,
			Date:         candidate.Date,
			Notes:        candidate.Notes,
			Payee:        candidate.Payee,
		}, defaults)
		if err != nil {
			// A reviewed row that still fails validation is dropped, not
			// fatal to the batch.
			slog.Warn("Skipping invalid import candidate",
				"sourceFile", candidate.SourceFile,
				"error", err,
			)
			skipped++
			continue
		}
		for _, record := range records {
			committed = append(committed, entity.NewTransaction(record, input.RecordedBy))
		}
	}

	if len(committed) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyImportBatch,
			"no transactions selected for import",
			domainerror.ErrEmptyImportBatch,
		)
	}

	snapshot := uc.store.Snapshot()
	updated := append(committed, snapshot.Transactions...)
	entity.SortTransactionsByDateDesc(updated)

	if err := uc.store.ReplaceTransactions(ctx, updated); err != nil {
		uc.sink.Error(fmt.Sprintf("Error: %s", err.Error()))
		return nil, err
	}

	offline := !uc.store.Online()
	message := fmt.Sprintf("%d transactions added", len(committed))
	if offline {
		message += " (Saved offline)"
	}
	uc.sink.Success(message)

	return &BulkImportOutput{Imported: len(committed), Skipped: skipped, SavedOffline: offline}, nil
}
