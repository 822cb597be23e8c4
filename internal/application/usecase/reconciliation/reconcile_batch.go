// Package reconciliation classifies AI-derived candidate transactions
// against the existing ledger. It performs no I/O: given a candidate batch
// and the transaction history it returns the annotated batch.
package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/domain/entity"
)

// ReconcileBatchInput represents the input for batch reconciliation.
type ReconcileBatchInput struct {
	Candidates []entity.CandidateTransaction
	Existing   []entity.Transaction
}

// ReconcileBatchOutput carries the annotated candidates.
type ReconcileBatchOutput struct {
	Candidates []entity.CandidateTransaction
}

// ReconcileBatchUseCase flags likely duplicates and coerces out-of-enum
// categories. Both rules are advisory: duplicates default to unchecked in
// review and nothing hard-blocks an import.
type ReconcileBatchUseCase struct{}

// NewReconcileBatchUseCase creates a new ReconcileBatchUseCase instance.
func NewReconcileBatchUseCase() *ReconcileBatchUseCase {
	return &ReconcileBatchUseCase{}
}

// Execute annotates each candidate with its status, coerced category, and
// review default (new rows checked, duplicates unchecked).
func (uc *ReconcileBatchUseCase) Execute(_ context.Context, input ReconcileBatchInput) ReconcileBatchOutput {
	annotated := make([]entity.CandidateTransaction, 0, len(input.Candidates))
	for _, candidate := range input.Candidates {
		candidate.Status = entity.CandidateStatusNew
		if IsDuplicate(candidate, input.Existing) {
			candidate.Status = entity.CandidateStatusDuplicate
		}
		CoerceMainCategory(&candidate)
		candidate.Checked = candidate.Status == entity.CandidateStatusNew
		annotated = append(annotated, candidate)
	}
	return ReconcileBatchOutput{Candidates: annotated}
}

// IsDuplicate reports whether any existing transaction matches the
// candidate on amount, calendar day, and payee or sub-category. This is a
// heuristic: false positives and negatives are expected and acceptable.
func IsDuplicate(candidate entity.CandidateTransaction, existing []entity.Transaction) bool {
	for _, tx := range existing {
		if !tx.Amount.Equal(candidate.Amount) {
			continue
		}
		if !sameCalendarDay(tx.Date, candidate.Date) {
			continue
		}
		if tx.Payee == candidate.Payee || tx.SubCategory == candidate.SubCategory {
			return true
		}
	}
	return false
}

// CoerceMainCategory rewrites an out-of-enum category to the default and
// appends the original suggestion to the notes as an audit trail. In-enum
// categories pass through untouched; an empty category is left for the
// normalizer's defaults table.
func CoerceMainCategory(candidate *entity.CandidateTransaction) {
	if candidate.MainCategory == "" || entity.IsValidMainCategory(candidate.MainCategory) {
		return
	}
	candidate.Notes += fmt.Sprintf(" | Original category: %s.", candidate.MainCategory)
	candidate.MainCategory = entity.DefaultMainCategory
}

// sameCalendarDay compares dates ignoring time-of-day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
