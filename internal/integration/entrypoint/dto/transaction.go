package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/usecase/transaction"
	"github.com/homeledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Transfers carry fromMedium/toMedium instead of medium.
type CreateTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=income expense transfer"`
	MainCategory string  `json:"mainCategory,omitempty"`
	SubCategory  string  `json:"subCategory,omitempty"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Medium       string  `json:"medium,omitempty"`
	Date         string  `json:"date,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Payee        string  `json:"payee,omitempty"`
	FromMedium   string  `json:"fromMedium,omitempty"`
	ToMedium     string  `json:"toMedium,omitempty"`

	ActiveFilter   string `json:"activeFilter,omitempty"`
	SaveAsTemplate bool   `json:"saveAsTemplate,omitempty"`
	TemplateName   string `json:"templateName,omitempty"`
}

// ToDraft converts the request body into a normalizer draft.
func (r CreateTransactionRequest) ToDraft() transaction.Draft {
	draft := transaction.Draft{
		Type:         entity.TransactionType(r.Type),
		MainCategory: entity.MainCategory(r.MainCategory),
		SubCategory:  r.SubCategory,
		Amount:       decimal.NewFromFloat(r.Amount),
		Medium:       entity.Medium(r.Medium),
		Notes:        r.Notes,
		Payee:        r.Payee,
		FromMedium:   entity.Medium(r.FromMedium),
		ToMedium:     entity.Medium(r.ToMedium),
	}
	if date, err := time.Parse(time.RFC3339, r.Date); err == nil {
		draft.Date = date
	} else if date, err := time.Parse("2006-01-02", r.Date); err == nil {
		draft.Date = date
	}
	return draft
}

// UpdateTransactionRequest represents the request body for a transaction
// update. The record is replaced wholesale.
type UpdateTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=income expense"`
	MainCategory string  `json:"mainCategory" binding:"required"`
	SubCategory  string  `json:"subCategory,omitempty"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Medium       string  `json:"medium" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Notes        string  `json:"notes,omitempty"`
	Payee        string  `json:"payee,omitempty"`
}

// ToEntity converts the request body into the replacement record.
func (r UpdateTransactionRequest) ToEntity(id uuid.UUID) entity.Transaction {
	record := entity.Transaction{
		ID:           id,
		Type:         entity.TransactionType(r.Type),
		MainCategory: entity.MainCategory(r.MainCategory),
		SubCategory:  r.SubCategory,
		Amount:       decimal.NewFromFloat(r.Amount),
		Medium:       entity.Medium(r.Medium),
		Notes:        r.Notes,
		Payee:        r.Payee,
	}
	if date, err := time.Parse(time.RFC3339, r.Date); err == nil {
		record.Date = date
	} else if date, err := time.Parse("2006-01-02", r.Date); err == nil {
		record.Date = date
	}
	return record
}

// EditLogResponse represents one edit-history entry.
type EditLogResponse struct {
	User string    `json:"user"`
	Date time.Time `json:"date"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	MainCategory string            `json:"mainCategory"`
	SubCategory  string            `json:"subCategory"`
	Amount       string            `json:"amount"`
	Medium       string            `json:"medium"`
	Date         time.Time         `json:"date"`
	Notes        string            `json:"notes"`
	Payee        string            `json:"payee"`
	RecordedBy   string            `json:"recordedBy"`
	Edits        []EditLogResponse `json:"edits,omitempty"`
}

// ToTransactionResponse converts an entity transaction to its response form.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	edits := make([]EditLogResponse, len(t.Edits))
	for i, e := range t.Edits {
		edits[i] = EditLogResponse{User: e.User, Date: e.Date}
	}
	return TransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		MainCategory: string(t.MainCategory),
		SubCategory:  t.SubCategory,
		Amount:       t.Amount.String(),
		Medium:       string(t.Medium),
		Date:         t.Date,
		Notes:        t.Notes,
		Payee:        t.Payee,
		RecordedBy:   t.RecordedBy,
		Edits:        edits,
	}
}

// ToTransactionListResponse converts a transaction slice to response form.
func ToTransactionListResponse(transactions []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}

// CreateTransactionResponse represents the result of transaction creation.
type CreateTransactionResponse struct {
	Transactions     []TransactionResponse `json:"transactions"`
	TemplateConflict bool                  `json:"templateConflict,omitempty"`
	SavedOffline     bool                  `json:"savedOffline,omitempty"`
}

// CandidateTransactionDTO is the wire form of an AI candidate, used both
// in extraction responses and import-commit requests.
type CandidateTransactionDTO struct {
	Type         string  `json:"type"`
	MainCategory string  `json:"mainCategory"`
	SubCategory  string  `json:"subCategory"`
	Amount       float64 `json:"amount"`
	Medium       string  `json:"medium"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
	Payee        string  `json:"payee"`
	Status       string  `json:"status,omitempty"`
	SourceFile   string  `json:"sourceFile,omitempty"`
	Checked      bool    `json:"checked"`
}

// ToEntity converts the wire candidate to its entity form.
func (c CandidateTransactionDTO) ToEntity() entity.CandidateTransaction {
	candidate := entity.CandidateTransaction{
		Type:         entity.TransactionType(c.Type),
		MainCategory: entity.MainCategory(c.MainCategory),
		SubCategory:  c.SubCategory,
		Amount:       decimal.NewFromFloat(c.Amount),
		Medium:       entity.Medium(c.Medium),
		Notes:        c.Notes,
		Payee:        c.Payee,
		Status:       entity.CandidateStatus(c.Status),
		SourceFile:   c.SourceFile,
		Checked:      c.Checked,
	}
	if date, err := time.Parse(time.RFC3339, c.Date); err == nil {
		candidate.Date = date
	} else if date, err := time.Parse("2006-01-02", c.Date); err == nil {
		candidate.Date = date
	}
	return candidate
}

// ToCandidateDTO converts an entity candidate to its wire form.
func ToCandidateDTO(c entity.CandidateTransaction) CandidateTransactionDTO {
	amount, _ := c.Amount.Float64()
	dto := CandidateTransactionDTO{
		Type:         string(c.Type),
		MainCategory: string(c.MainCategory),
		SubCategory:  c.SubCategory,
		Amount:       amount,
		Medium:       string(c.Medium),
		Notes:        c.Notes,
		Payee:        c.Payee,
		Status:       string(c.Status),
		SourceFile:   c.SourceFile,
		Checked:      c.Checked,
	}
	if !c.Date.IsZero() {
		dto.Date = c.Date.Format(time.RFC3339)
	}
	return dto
}

// BulkImportRequest represents the request body for committing a reviewed
// candidate batch.
type BulkImportRequest struct {
	Candidates []CandidateTransactionDTO `json:"candidates" binding:"required,min=1"`
}

// BulkImportResponse reports the import outcome.
type BulkImportResponse struct {
	Imported     int  `json:"imported"`
	Skipped      int  `json:"skipped"`
	SavedOffline bool `json:"savedOffline,omitempty"`
}
