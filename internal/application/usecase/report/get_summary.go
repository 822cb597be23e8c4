package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// GetSummaryOutput is the all-time balance summary. Transfers net to zero
// in the total balance and move value between the cash and bank buckets.
type GetSummaryOutput struct {
	TotalBalance decimal.Decimal
	CashInHand   decimal.Decimal
	BankTotal    decimal.Decimal
}

// GetSummaryUseCase computes the running balances across the full ledger.
type GetSummaryUseCase struct {
	store adapter.LedgerStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(store adapter.LedgerStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{store: store}
}

// Execute sums income minus expenses overall, and per medium bucket:
// cash-in-hand covers the cash medium, bank total covers everything else.
func (uc *GetSummaryUseCase) Execute(_ context.Context) (*GetSummaryOutput, error) {
	out := &GetSummaryOutput{
		TotalBalance: decimal.Zero,
		CashInHand:   decimal.Zero,
		BankTotal:    decimal.Zero,
	}

	snapshot := uc.store.Snapshot()
	for _, t := range snapshot.Transactions {
		var signed decimal.Decimal
		switch t.Type {
		case entity.TransactionTypeIncome:
			signed = t.Amount
		case entity.TransactionTypeExpense:
			signed = t.Amount.Neg()
		default:
			continue
		}

		out.TotalBalance = out.TotalBalance.Add(signed)
		if t.Medium == entity.MediumCash {
			out.CashInHand = out.CashInHand.Add(signed)
		} else {
			out.BankTotal = out.BankTotal.Add(signed)
		}
	}

	return out, nil
}
