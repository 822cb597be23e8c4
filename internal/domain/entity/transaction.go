// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
// A transfer never reaches the ledger as a single record; it is split into
// an expense/income pair by the normalizer before commit.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// MainCategory is the closed top-level classification for transactions.
type MainCategory string

const (
	CategoryGym            MainCategory = "Gym"
	CategoryTypingServices MainCategory = "Typing Services"
	CategoryBorrowings     MainCategory = "Borrowings"
	CategoryPersonal       MainCategory = "Personal"
	CategoryOther          MainCategory = "Other"
)

// DefaultMainCategory is the fallback category for out-of-enum suggestions
// and for transfer legs.
const DefaultMainCategory = CategoryPersonal

// MainCategories returns the fixed category enum in display order.
func MainCategories() []MainCategory {
	return []MainCategory{
		CategoryGym,
		CategoryTypingServices,
		CategoryBorrowings,
		CategoryPersonal,
		CategoryOther,
	}
}

// IsValidMainCategory reports whether the category is a member of the
// closed enum.
func IsValidMainCategory(category MainCategory) bool {
	switch category {
	case CategoryGym, CategoryTypingServices, CategoryBorrowings, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// Medium is the payment instrument a transaction moved through.
type Medium string

const (
	MediumCash  Medium = "cash"
	MediumCard  Medium = "card"
	MediumMamo  Medium = "mamo"
	MediumTabby Medium = "tabby"
	MediumOther Medium = "other"
)

// DefaultMedium is the medium assumed when a draft omits one.
const DefaultMedium = MediumCard

// IsValidMedium reports whether the medium is a known payment instrument.
func IsValidMedium(medium Medium) bool {
	switch medium {
	case MediumCash, MediumCard, MediumMamo, MediumTabby, MediumOther:
		return true
	}
	return false
}

// EditLog records a single mutation of a transaction.
type EditLog struct {
	User string
	Date time.Time
}

// Transaction represents a committed entry in the shared ledger.
type Transaction struct {
	ID           uuid.UUID
	Type         TransactionType
	MainCategory MainCategory
	SubCategory  string
	Amount       decimal.Decimal
	Medium       Medium
	Date         time.Time
	Notes        string
	Payee        string
	RecordedBy   string
	Edits        []EditLog
}

// NewTransaction assigns the commit-time fields (ID, recorder) to a
// normalized draft and returns the committed record.
func NewTransaction(draft Transaction, recordedBy string) Transaction {
	draft.ID = uuid.New()
	draft.RecordedBy = recordedBy
	return draft
}

// AppendEdit records a mutation by the given user at the given instant.
func (t *Transaction) AppendEdit(user string, at time.Time) {
	t.Edits = append(t.Edits, EditLog{User: user, Date: at})
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	c := t
	if t.Edits != nil {
		c.Edits = make([]EditLog, len(t.Edits))
		copy(c.Edits, t.Edits)
	}
	return c
}

// SortTransactionsByDateDesc orders transactions newest first. The sort is
// stable so same-instant records keep their relative order.
func SortTransactionsByDateDesc(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
