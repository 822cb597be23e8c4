// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// Draft is an explicitly-partial transaction: what a form, an AI candidate,
// or a template provides before normalization. Zero values mark missing
// fields.
type Draft struct {
	Type         entity.TransactionType
	MainCategory entity.MainCategory
	SubCategory  string
	Amount       decimal.Decimal
	Medium       entity.Medium
	Date         time.Time
	Notes        string
	Payee        string

	// Transfer-only fields.
	FromMedium entity.Medium
	ToMedium   entity.Medium
}

// Defaults is the configuration table of fallback values, applied exactly
// once at the normalization boundary.
type Defaults struct {
	Date         time.Time
	Medium       entity.Medium
	MainCategory entity.MainCategory
}

// StandardDefaults returns the defaults for a draft entered now with the
// given active category filter.
func StandardDefaults(now time.Time, activeFilter entity.MainCategory) Defaults {
	category := activeFilter
	if !entity.IsValidMainCategory(category) {
		category = entity.DefaultMainCategory
	}
	return Defaults{
		Date:         now,
		Medium:       entity.DefaultMedium,
		MainCategory: category,
	}
}

// Normalize validates a draft against the defaults table and produces the
// complete records to commit, minus the commit-time fields (ID, recorder).
// Income and expense drafts yield one record. A transfer yields exactly
// two: an expense on the source medium and an income on the destination
// medium, both in the Personal category.
func Normalize(draft Draft, defaults Defaults) ([]entity.Transaction, error) {
	if !draft.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	date := draft.Date
	if date.IsZero() {
		date = defaults.Date
	}

	if draft.Type == entity.TransactionTypeTransfer {
		return normalizeTransfer(draft, date)
	}

	if draft.Type != entity.TransactionTypeIncome && draft.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	category := draft.MainCategory
	if category == "" {
		category = defaults.MainCategory
	}
	if !entity.IsValidMainCategory(category) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMainCategory,
			fmt.Sprintf("'%s' is not a valid main category", category),
			domainerror.ErrInvalidMainCategory,
		)
	}

	medium := draft.Medium
	if medium == "" {
		medium = defaults.Medium
	}
	if !entity.IsValidMedium(medium) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMedium,
			fmt.Sprintf("'%s' is not a valid payment medium", medium),
			domainerror.ErrInvalidMedium,
		)
	}

	return []entity.Transaction{{
		Type:         draft.Type,
		MainCategory: category,
		SubCategory:  draft.SubCategory,
		Amount:       draft.Amount,
		Medium:       medium,
		Date:         date,
		Notes:        draft.Notes,
		Payee:        draft.Payee,
	}}, nil
}

// normalizeTransfer splits a transfer draft into its expense/income pair.
func normalizeTransfer(draft Draft, date time.Time) ([]entity.Transaction, error) {
	if !entity.IsValidMedium(draft.FromMedium) || !entity.IsValidMedium(draft.ToMedium) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMedium,
			"transfer requires valid source and destination mediums",
			domainerror.ErrInvalidMedium,
		)
	}
	if draft.FromMedium == draft.ToMedium {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSameTransferMedium,
			"cannot transfer to the same medium",
			domainerror.ErrSameTransferMedium,
		)
	}

	expense := entity.Transaction{
		Type:         entity.TransactionTypeExpense,
		MainCategory: entity.DefaultMainCategory,
		SubCategory:  fmt.Sprintf("Transfer to %s", draft.ToMedium),
		Amount:       draft.Amount,
		Medium:       draft.FromMedium,
		Date:         date,
		Notes:        draft.Notes,
		Payee:        draft.Payee,
	}
	income := entity.Transaction{
		Type:         entity.TransactionTypeIncome,
		MainCategory: entity.DefaultMainCategory,
		SubCategory:  fmt.Sprintf("Transfer from %s", draft.FromMedium),
		Amount:       draft.Amount,
		Medium:       draft.ToMedium,
		Date:         date,
		Notes:        draft.Notes,
		Payee:        draft.Payee,
	}
	return []entity.Transaction{expense, income}, nil
}
