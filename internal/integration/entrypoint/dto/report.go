package dto

import (
	"time"

	"github.com/homeledger/backend/internal/application/usecase/report"
)

// CategoryTotalResponse is one category's income and expense sums in a
// breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
}

// CategoryBreakdownResponse represents a per-category breakdown over one
// reporting window.
type CategoryBreakdownResponse struct {
	Start      time.Time               `json:"start"`
	End        time.Time               `json:"end"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToCategoryBreakdownResponse converts the breakdown to response form.
func ToCategoryBreakdownResponse(out *report.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = CategoryTotalResponse{
			Category: string(c.Category),
			Income:   c.Income.String(),
			Expense:  c.Expense.String(),
		}
	}
	return CategoryBreakdownResponse{Start: out.Start, End: out.End, Categories: categories}
}

// SummaryResponse represents the all-time balance summary.
type SummaryResponse struct {
	TotalBalance string `json:"totalBalance"`
	CashInHand   string `json:"cashInHand"`
	BankTotal    string `json:"bankTotal"`
}

// CategoryFinanceResponse represents one category's profit-and-loss view.
type CategoryFinanceResponse struct {
	Category     string                `json:"category"`
	TotalIncome  string                `json:"totalIncome"`
	TotalExpense string                `json:"totalExpense"`
	Profit       string                `json:"profit"`
	Transactions []TransactionResponse `json:"transactions"`
}
