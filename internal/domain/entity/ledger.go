// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget caps monthly expenses for one main category. At most one budget
// exists per category, enforced at creation time.
type Budget struct {
	ID       uuid.UUID
	Category MainCategory
	Limit    decimal.Decimal // monthly, > 0
}

// NewBudget creates a budget for a category.
func NewBudget(category MainCategory, limit decimal.Decimal) Budget {
	return Budget{ID: uuid.New(), Category: category, Limit: limit}
}

// TemplateTransaction is the reusable part of a transaction: everything
// except the commit-time fields (ID, date, recorder).
type TemplateTransaction struct {
	Type         TransactionType
	MainCategory MainCategory
	SubCategory  string
	Amount       decimal.Decimal
	Medium       Medium
	Notes        string
	Payee        string
}

// Template is a named, reusable transaction draft. Names are unique.
type Template struct {
	Name        string
	Transaction TemplateTransaction
}

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Currency is the display currency for the whole ledger. Amounts are
// currency-agnostic; no conversion happens anywhere.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyINR Currency = "INR"
)

// Settings is the process-wide configuration singleton for the ledger.
// PinHash holds a bcrypt hash when a custom PIN is set, empty otherwise.
type Settings struct {
	Theme        Theme
	Currency     Currency
	PinHash      string
	VoiceEnabled bool
}

// DefaultSettings returns the settings a fresh ledger starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:        ThemeDark,
		Currency:     CurrencyAED,
		VoiceEnabled: true,
	}
}

// LedgerDocument is the whole persistent state of one deployment: a single
// shared document in the backing store. The ledger store exclusively owns
// it; every other component works on copies.
type LedgerDocument struct {
	Transactions []Transaction
	Borrowings   []Borrowing
	Settings     Settings
	Budgets      []Budget
	Templates    []Template
}

// NewLedgerDocument returns an empty ledger with default settings.
func NewLedgerDocument() LedgerDocument {
	return LedgerDocument{
		Transactions: []Transaction{},
		Borrowings:   []Borrowing{},
		Settings:     DefaultSettings(),
		Budgets:      []Budget{},
		Templates:    []Template{},
	}
}

// Clone returns a deep copy of the document, safe to hand to read-only
// consumers.
func (d LedgerDocument) Clone() LedgerDocument {
	c := d
	c.Transactions = make([]Transaction, len(d.Transactions))
	for i, t := range d.Transactions {
		c.Transactions[i] = t.Clone()
	}
	c.Borrowings = make([]Borrowing, len(d.Borrowings))
	for i, b := range d.Borrowings {
		c.Borrowings[i] = b.Clone()
	}
	c.Budgets = make([]Budget, len(d.Budgets))
	copy(c.Budgets, d.Budgets)
	c.Templates = make([]Template, len(d.Templates))
	copy(c.Templates, d.Templates)
	return c
}

// FindBorrowing returns the borrowing with the given ID, or false.
func (d LedgerDocument) FindBorrowing(id uuid.UUID) (Borrowing, bool) {
	for _, b := range d.Borrowings {
		if b.ID == id {
			return b, true
		}
	}
	return Borrowing{}, false
}

// FindTransaction returns the transaction with the given ID, or false.
func (d LedgerDocument) FindTransaction(id uuid.UUID) (Transaction, bool) {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// FindBudget returns the budget configured for the category, or false.
func (d LedgerDocument) FindBudget(category MainCategory) (Budget, bool) {
	for _, b := range d.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return Budget{}, false
}

// HasTemplate reports whether a template with the given name exists.
func (d LedgerDocument) HasTemplate(name string) bool {
	for _, t := range d.Templates {
		if t.Name == name {
			return true
		}
	}
	return false
}

// RecentTransactions returns up to limit of the newest transactions,
// relying on the store keeping the collection sorted newest first.
func (d LedgerDocument) RecentTransactions(limit int) []Transaction {
	if limit > len(d.Transactions) {
		limit = len(d.Transactions)
	}
	recent := make([]Transaction, limit)
	copy(recent, d.Transactions[:limit])
	return recent
}

// CandidateStatus classifies an AI-derived candidate during batch review.
type CandidateStatus string

const (
	CandidateStatusNew       CandidateStatus = "new"
	CandidateStatusDuplicate CandidateStatus = "duplicate"
	CandidateStatusReview    CandidateStatus = "review"
)

// CandidateTransaction is an unvalidated transaction proposal from AI
// extraction. Every field is optional and untrusted until the normalizer
// accepts it: a zero Amount, empty Type, or zero Date marks the field as
// missing.
type CandidateTransaction struct {
	Type         TransactionType
	MainCategory MainCategory
	SubCategory  string
	Amount       decimal.Decimal
	Medium       Medium
	Date         time.Time
	Notes        string
	Payee        string

	// Batch-review annotations set by the reconciler.
	Status     CandidateStatus
	SourceFile string
	Checked    bool
}

// IsComplete reports whether the candidate carries the minimum fields
// (amount, type, date) required to enter reconciliation.
func (c CandidateTransaction) IsComplete() bool {
	return c.Amount.IsPositive() && c.Type != "" && !c.Date.IsZero()
}
