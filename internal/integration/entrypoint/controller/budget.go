package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/budget"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	store           adapter.LedgerStore
	createUseCase   *budget.CreateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	evaluateUseCase *budget.EvaluateBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	store adapter.LedgerStore,
	createUseCase *budget.CreateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	evaluateUseCase *budget.EvaluateBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		store:           store,
		createUseCase:   createUseCase,
		deleteUseCase:   deleteUseCase,
		evaluateUseCase: evaluateUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	snapshot := c.store.Snapshot()
	responses := make([]dto.BudgetResponse, len(snapshot.Budgets))
	for i, b := range snapshot.Budgets {
		responses[i] = dto.ToBudgetResponse(b)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		Category: entity.MainCategory(req.Category),
		Limit:    decimal.NewFromFloat(req.Limit),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid budget ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

// Evaluate handles GET /budgets/evaluate requests. The projection is
// advisory; a category without a budget returns 204.
func (c *BudgetController) Evaluate(ctx *gin.Context) {
	input := budget.EvaluateBudgetInput{
		Category: entity.MainCategory(ctx.Query("category")),
	}

	if amountStr := ctx.Query("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
			return
		}
		input.ProspectiveAmount = amount
	}

	// An edit excludes the original record's amount from the baseline.
	if editingID := ctx.Query("editingId"); editingID != "" {
		if id, err := uuid.Parse(editingID); err == nil {
			if existing, found := c.store.Snapshot().FindTransaction(id); found {
				input.Editing = &existing
			}
		}
	}

	if atStr := ctx.Query("at"); atStr != "" {
		if at, err := time.Parse(time.RFC3339, atStr); err == nil {
			input.Now = at
		}
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if output == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetEvaluationResponse(*output))
}
