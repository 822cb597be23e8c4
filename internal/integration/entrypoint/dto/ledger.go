package dto

import (
	"time"

	"github.com/homeledger/backend/internal/application/usecase/budget"
	"github.com/homeledger/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// ToBudgetResponse converts an entity budget to its response form.
func ToBudgetResponse(b entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID.String(),
		Category: string(b.Category),
		Limit:    b.Limit.String(),
	}
}

// BudgetEvaluationResponse represents a budget projection.
type BudgetEvaluationResponse struct {
	Category        string `json:"category"`
	Limit           string `json:"limit"`
	CurrentExpenses string `json:"currentExpenses"`
	Projected       string `json:"projected"`
	Remaining       string `json:"remaining"`
	OverBudget      bool   `json:"overBudget"`
}

// ToBudgetEvaluationResponse converts a projection to its response form.
func ToBudgetEvaluationResponse(e budget.BudgetEvaluation) BudgetEvaluationResponse {
	return BudgetEvaluationResponse{
		Category:        string(e.Category),
		Limit:           e.Limit.String(),
		CurrentExpenses: e.CurrentExpenses.String(),
		Projected:       e.Projected.String(),
		Remaining:       e.Remaining.String(),
		OverBudget:      e.Remaining.IsNegative(),
	}
}

// TemplateTransactionDTO is the reusable transaction part of a template.
type TemplateTransactionDTO struct {
	Type         string  `json:"type" binding:"required,oneof=income expense"`
	MainCategory string  `json:"mainCategory" binding:"required"`
	SubCategory  string  `json:"subCategory,omitempty"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Medium       string  `json:"medium" binding:"required"`
	Notes        string  `json:"notes,omitempty"`
	Payee        string  `json:"payee,omitempty"`
}

// CreateTemplateRequest represents the request body for saving a template.
type CreateTemplateRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Transaction TemplateTransactionDTO `json:"transaction" binding:"required"`
}

// TemplateResponse represents a template in API responses.
type TemplateResponse struct {
	Name        string                 `json:"name"`
	Transaction TemplateTransactionDTO `json:"transaction"`
}

// ToTemplateResponse converts an entity template to its response form.
func ToTemplateResponse(t entity.Template) TemplateResponse {
	amount, _ := t.Transaction.Amount.Float64()
	return TemplateResponse{
		Name: t.Name,
		Transaction: TemplateTransactionDTO{
			Type:         string(t.Transaction.Type),
			MainCategory: string(t.Transaction.MainCategory),
			SubCategory:  t.Transaction.SubCategory,
			Amount:       amount,
			Medium:       string(t.Transaction.Medium),
			Notes:        t.Transaction.Notes,
			Payee:        t.Transaction.Payee,
		},
	}
}

// UpdateSettingsRequest represents a partial settings change. Absent
// fields keep their current value.
type UpdateSettingsRequest struct {
	Theme        *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
	Currency     *string `json:"currency,omitempty" binding:"omitempty,oneof=AED INR"`
	PIN          *string `json:"pin,omitempty"`
	VoiceEnabled *bool   `json:"voiceEnabled,omitempty"`
}

// SettingsResponse represents the shared settings. The PIN hash never
// leaves the server; only whether a PIN is set.
type SettingsResponse struct {
	Theme        string `json:"theme"`
	Currency     string `json:"currency"`
	PinSet       bool   `json:"pinSet"`
	VoiceEnabled bool   `json:"voiceEnabled"`
}

// ToSettingsResponse converts entity settings to their response form.
func ToSettingsResponse(s entity.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:        string(s.Theme),
		Currency:     string(s.Currency),
		PinSet:       s.PinHash != "",
		VoiceEnabled: s.VoiceEnabled,
	}
}

// ActivityResponse represents the most recent user-visible outcome.
type ActivityResponse struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}
