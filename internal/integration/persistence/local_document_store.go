package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/integration/persistence/model"
)

// ledgerBlobID is the primary key of the single stored document row.
const ledgerBlobID = "shared-data-v1"

// LedgerBlobModel is the single-row table holding the serialized ledger
// document for local deployments.
type LedgerBlobModel struct {
	ID        string `gorm:"primaryKey"`
	Document  []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

// TableName returns the table name for the ledger blob model.
func (LedgerBlobModel) TableName() string {
	return "ledger_documents"
}

// LocalDocumentStore implements adapter.DocumentStore on an embedded
// SQLite database. It serves single-host deployments and tests; there is
// no remote to watch, so Subscribe delivers the current document once and
// then stays silent.
type LocalDocumentStore struct {
	db *gorm.DB
}

// NewLocalDocumentStore creates a store on the given database, migrating
// the backing table.
func NewLocalDocumentStore(db *gorm.DB) (*LocalDocumentStore, error) {
	if err := db.AutoMigrate(&LedgerBlobModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate ledger table: %w", err)
	}
	return &LocalDocumentStore{db: db}, nil
}

// Load fetches the stored document, seeding a default one if none exists.
func (s *LocalDocumentStore) Load(ctx context.Context) (entity.LedgerDocument, error) {
	var row LedgerBlobModel
	err := s.db.WithContext(ctx).First(&row, "id = ?", ledgerBlobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		document := entity.NewLedgerDocument()
		if err := s.save(ctx, model.FromEntityDocument(document)); err != nil {
			return entity.LedgerDocument{}, err
		}
		return document, nil
	}
	if err != nil {
		return entity.LedgerDocument{}, fmt.Errorf("failed to load ledger document: %w", err)
	}

	var m model.LedgerDocumentModel
	if err := json.Unmarshal(row.Document, &m); err != nil {
		return entity.LedgerDocument{}, fmt.Errorf("failed to decode ledger document: %w", err)
	}
	return m.ToEntity(), nil
}

// Merge applies the patch read-modify-write: SQLite has no field-level
// merge, so the stored document is loaded, patched, and written back
// whole inside a transaction.
func (s *LocalDocumentStore) Merge(ctx context.Context, patch adapter.DocumentPatch) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row LedgerBlobModel
		m := model.FromEntityDocument(entity.NewLedgerDocument())

		err := tx.First(&row, "id = ?", ledgerBlobID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to load ledger document: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(row.Document, &m); err != nil {
				return fmt.Errorf("failed to decode ledger document: %w", err)
			}
		}

		applyPatch(&m, patch)

		encoded, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode ledger document: %w", err)
		}
		return tx.Save(&LedgerBlobModel{
			ID:        ledgerBlobID,
			Document:  encoded,
			UpdatedAt: time.Now(),
		}).Error
	})
}

// Subscribe delivers the current document once. A local store has no
// concurrent remote writers to observe.
func (s *LocalDocumentStore) Subscribe(
	ctx context.Context,
	onDocument func(entity.LedgerDocument),
	onError func(error),
) (func(), error) {
	document, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	onDocument(document)
	return func() {}, nil
}

func (s *LocalDocumentStore) save(ctx context.Context, m model.LedgerDocumentModel) error {
	encoded, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}
	return s.db.WithContext(ctx).Save(&LedgerBlobModel{
		ID:        ledgerBlobID,
		Document:  encoded,
		UpdatedAt: time.Now(),
	}).Error
}

func applyPatch(m *model.LedgerDocumentModel, patch adapter.DocumentPatch) {
	for _, field := range patch.Fields {
		switch field {
		case adapter.FieldTransactions:
			models := make([]model.TransactionModel, len(patch.Transactions))
			for i, t := range patch.Transactions {
				models[i] = model.FromEntityTransaction(t)
			}
			m.Transactions = models
		case adapter.FieldBorrowings:
			models := make([]model.BorrowingModel, len(patch.Borrowings))
			for i, b := range patch.Borrowings {
				models[i] = model.FromEntityBorrowing(b)
			}
			m.Borrowings = models
		case adapter.FieldBudgets:
			models := make([]model.BudgetModel, len(patch.Budgets))
			for i, b := range patch.Budgets {
				models[i] = model.FromEntityBudget(b)
			}
			m.Budgets = models
		case adapter.FieldTemplates:
			models := make([]model.TemplateModel, len(patch.Templates))
			for i, t := range patch.Templates {
				models[i] = model.FromEntityTemplate(t)
			}
			m.Templates = models
		case adapter.FieldSettings:
			if patch.Settings != nil {
				m.Settings = model.FromEntitySettings(*patch.Settings)
			}
		}
	}
}
