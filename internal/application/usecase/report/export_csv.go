package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

var csvHeader = []string{
	"ID", "Type", "Main Category", "Sub Category", "Amount",
	"Currency", "Medium", "Date", "Payee", "Notes", "Recorded By",
}

// ExportCSVOutput holds the rendered CSV document and a suggested
// download filename.
type ExportCSVOutput struct {
	FileName string
	Content  []byte
}

// ExportCSVUseCase renders the full transaction history as CSV, one row
// per transaction, newest first.
type ExportCSVUseCase struct {
	store adapter.LedgerStore
	now   func() time.Time
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(store adapter.LedgerStore) *ExportCSVUseCase {
	return &ExportCSVUseCase{store: store, now: time.Now}
}

// Execute renders the CSV export.
func (uc *ExportCSVUseCase) Execute(_ context.Context) (*ExportCSVOutput, error) {
	snapshot := uc.store.Snapshot()
	currency := string(snapshot.Settings.Currency)

	transactions := make([]entity.Transaction, len(snapshot.Transactions))
	copy(transactions, snapshot.Transactions)
	entity.SortTransactionsByDateDesc(transactions)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		row := []string{
			t.ID.String(),
			string(t.Type),
			string(t.MainCategory),
			t.SubCategory,
			t.Amount.String(),
			currency,
			string(t.Medium),
			t.Date.Format(time.RFC3339),
			t.Payee,
			t.Notes,
			t.RecordedBy,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportCSVOutput{
		FileName: fmt.Sprintf("transactions-%s.csv", uc.now().Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
