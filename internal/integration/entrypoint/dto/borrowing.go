package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/usecase/borrowing"
	"github.com/homeledger/backend/internal/domain/entity"
)

// AdditionalCostDTO is one loan fee on the wire.
type AdditionalCostDTO struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

// CreateBorrowingRequest represents the request body for recording a loan.
type CreateBorrowingRequest struct {
	LenderName      string              `json:"lenderName" binding:"required"`
	Principal       float64             `json:"principal" binding:"required,gt=0"`
	Interest        float64             `json:"interest" binding:"gte=0"`
	LoanDate        string              `json:"loanDate,omitempty"`
	ReturnDate      string              `json:"returnDate" binding:"required"`
	AdditionalCosts []AdditionalCostDTO `json:"additionalCosts,omitempty"`
}

// ToInput converts the request body into the use case input.
func (r CreateBorrowingRequest) ToInput() borrowing.CreateBorrowingInput {
	input := borrowing.CreateBorrowingInput{
		LenderName:      r.LenderName,
		Principal:       decimal.NewFromFloat(r.Principal),
		Interest:        decimal.NewFromFloat(r.Interest),
		AdditionalCosts: toEntityCosts(r.AdditionalCosts),
	}
	input.LoanDate = parseDate(r.LoanDate)
	input.ReturnDate = parseDate(r.ReturnDate)
	return input
}

// UpdateBorrowingRequest represents the request body for revising a loan's
// terms.
type UpdateBorrowingRequest struct {
	LenderName      string              `json:"lenderName" binding:"required"`
	Principal       float64             `json:"principal" binding:"required,gt=0"`
	Interest        float64             `json:"interest" binding:"gte=0"`
	LoanDate        string              `json:"loanDate,omitempty"`
	ReturnDate      string              `json:"returnDate" binding:"required"`
	AdditionalCosts []AdditionalCostDTO `json:"additionalCosts,omitempty"`
}

// AddRepaymentRequest represents the request body for applying a payment.
type AddRepaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// RepaymentResponse is one loan payment in API responses.
type RepaymentResponse struct {
	Amount string    `json:"amount"`
	Date   time.Time `json:"date"`
}

// BorrowingResponse represents a loan with its derived amounts.
type BorrowingResponse struct {
	ID              string              `json:"id"`
	LenderName      string              `json:"lenderName"`
	Principal       string              `json:"principal"`
	Interest        string              `json:"interest"`
	AdditionalCosts []AdditionalCostDTO `json:"additionalCosts"`
	LoanDate        time.Time           `json:"loanDate"`
	ReturnDate      time.Time           `json:"returnDate"`
	Repayments      []RepaymentResponse `json:"repayments"`
	Status          string              `json:"status"`
	TotalDue        string              `json:"totalDue"`
	TotalRepaid     string              `json:"totalRepaid"`
	Outstanding     string              `json:"outstanding"`
	Progress        string              `json:"progress"`
}

// ToBorrowingResponse converts an entity loan to its response form,
// computing the derived amounts.
func ToBorrowingResponse(b entity.Borrowing) BorrowingResponse {
	costs := make([]AdditionalCostDTO, len(b.AdditionalCosts))
	for i, c := range b.AdditionalCosts {
		amount, _ := c.Amount.Float64()
		costs[i] = AdditionalCostDTO{Description: c.Description, Amount: amount}
	}
	repayments := make([]RepaymentResponse, len(b.Repayments))
	for i, r := range b.Repayments {
		repayments[i] = RepaymentResponse{Amount: r.Amount.String(), Date: r.Date}
	}
	return BorrowingResponse{
		ID:              b.ID.String(),
		LenderName:      b.LenderName,
		Principal:       b.Principal.String(),
		Interest:        b.Interest.String(),
		AdditionalCosts: costs,
		LoanDate:        b.LoanDate,
		ReturnDate:      b.ReturnDate,
		Repayments:      repayments,
		Status:          string(b.Status),
		TotalDue:        b.TotalDue().String(),
		TotalRepaid:     b.TotalRepaid().String(),
		Outstanding:     b.Outstanding().String(),
		Progress:        b.Progress().Round(2).String(),
	}
}

// ToBorrowingViewResponse converts a decorated loan view to response form.
func ToBorrowingViewResponse(v borrowing.BorrowingView) BorrowingResponse {
	response := ToBorrowingResponse(v.Borrowing)
	response.TotalDue = v.TotalDue.String()
	response.TotalRepaid = v.TotalRepaid.String()
	response.Outstanding = v.Outstanding.String()
	response.Progress = v.Progress.Round(2).String()
	return response
}

func toEntityCosts(costs []AdditionalCostDTO) []entity.AdditionalCost {
	if costs == nil {
		return nil
	}
	out := make([]entity.AdditionalCost, len(costs))
	for i, c := range costs {
		out[i] = entity.AdditionalCost{
			Description: c.Description,
			Amount:      decimal.NewFromFloat(c.Amount),
		}
	}
	return out
}

func parseDate(value string) time.Time {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date
	}
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date
	}
	return time.Time{}
}
