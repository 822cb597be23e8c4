// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BorrowingStatus represents the payoff state of a loan. It is always
// derived from the repayment history, never trusted as stored truth.
type BorrowingStatus string

const (
	BorrowingStatusActive BorrowingStatus = "active"
	BorrowingStatusPaid   BorrowingStatus = "paid"
)

// AdditionalCost is a fee attached to a loan on top of principal and interest.
type AdditionalCost struct {
	Description string
	Amount      decimal.Decimal
}

// Repayment is a single payment applied against a loan. The repayment list
// is append-only.
type Repayment struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Borrowing represents a loan taken from a lender, tracked by principal,
// interest percentage, additional costs, and its repayment history.
type Borrowing struct {
	ID              uuid.UUID
	LenderName      string
	Principal       decimal.Decimal
	Interest        decimal.Decimal // percentage, >= 0
	AdditionalCosts []AdditionalCost
	LoanDate        time.Time
	ReturnDate      time.Time
	Repayments      []Repayment
	Status          BorrowingStatus
}

// NewBorrowing creates a loan with an empty repayment history and active
// status. A nil additional-cost list defaults to empty.
func NewBorrowing(
	lenderName string,
	principal decimal.Decimal,
	interest decimal.Decimal,
	additionalCosts []AdditionalCost,
	loanDate time.Time,
	returnDate time.Time,
) Borrowing {
	if additionalCosts == nil {
		additionalCosts = []AdditionalCost{}
	}
	return Borrowing{
		ID:              uuid.New(),
		LenderName:      lenderName,
		Principal:       principal,
		Interest:        interest,
		AdditionalCosts: additionalCosts,
		LoanDate:        loanDate,
		ReturnDate:      returnDate,
		Repayments:      []Repayment{},
		Status:          BorrowingStatusActive,
	}
}

// TotalAdditionalCosts sums the loan's attached fees.
func (b Borrowing) TotalAdditionalCosts() decimal.Decimal {
	total := decimal.Zero
	for _, cost := range b.AdditionalCosts {
		total = total.Add(cost.Amount)
	}
	return total
}

// TotalDue is the full amount owed:
// principal * (1 + interest/100) + sum(additional costs).
func (b Borrowing) TotalDue() decimal.Decimal {
	interestFactor := decimal.NewFromInt(1).Add(b.Interest.Div(decimal.NewFromInt(100)))
	return b.Principal.Mul(interestFactor).Add(b.TotalAdditionalCosts())
}

// TotalRepaid sums the repayment history.
func (b Borrowing) TotalRepaid() decimal.Decimal {
	total := decimal.Zero
	for _, repayment := range b.Repayments {
		total = total.Add(repayment.Amount)
	}
	return total
}

// Outstanding is the balance still owed: total due minus total repaid.
func (b Borrowing) Outstanding() decimal.Decimal {
	return b.TotalDue().Sub(b.TotalRepaid())
}

// Progress is the payoff percentage (repaid / due * 100). A zero total due
// counts as fully paid to avoid dividing by zero.
func (b Borrowing) Progress() decimal.Decimal {
	due := b.TotalDue()
	if due.IsZero() {
		return decimal.NewFromInt(100)
	}
	return b.TotalRepaid().Div(due).Mul(decimal.NewFromInt(100))
}

// DeriveStatus recomputes the payoff state from the repayment history.
func (b Borrowing) DeriveStatus() BorrowingStatus {
	if b.TotalRepaid().GreaterThanOrEqual(b.TotalDue()) {
		return BorrowingStatusPaid
	}
	return BorrowingStatusActive
}

// Clone returns a deep copy of the borrowing.
func (b Borrowing) Clone() Borrowing {
	c := b
	if b.AdditionalCosts != nil {
		c.AdditionalCosts = make([]AdditionalCost, len(b.AdditionalCosts))
		copy(c.AdditionalCosts, b.AdditionalCosts)
	}
	if b.Repayments != nil {
		c.Repayments = make([]Repayment, len(b.Repayments))
		copy(c.Repayments, b.Repayments)
	}
	return c
}
