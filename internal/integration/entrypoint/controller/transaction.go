package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/transaction"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
	"github.com/homeledger/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	store             adapter.LedgerStore
	createUseCase     *transaction.CreateTransactionUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	bulkImportUseCase *transaction.BulkImportUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	store adapter.LedgerStore,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkImportUseCase *transaction.BulkImportUseCase,
) *TransactionController {
	return &TransactionController{
		store:             store,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkImportUseCase: bulkImportUseCase,
	}
}

// List handles GET /transactions requests. The collection is already
// sorted newest first; an optional category query filters it.
func (c *TransactionController) List(ctx *gin.Context) {
	snapshot := c.store.Snapshot()

	transactions := snapshot.Transactions
	if category := ctx.Query("category"); category != "" {
		filtered := make([]entity.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if string(t.MainCategory) == category {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		RecordedBy:     user,
		Draft:          req.ToDraft(),
		ActiveFilter:   entity.MainCategory(req.ActiveFilter),
		SaveAsTemplate: req.SaveAsTemplate,
		TemplateName:   req.TemplateName,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transactions:     dto.ToTransactionListResponse(output.Transactions),
		TemplateConflict: output.TemplateConflict,
		SavedOffline:     output.SavedOffline,
	})
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		UpdatedBy:   user,
		Transaction: req.ToEntity(id),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// BulkImport handles POST /transactions/bulk-import requests, committing
// a user-reviewed candidate batch.
func (c *TransactionController) BulkImport(ctx *gin.Context) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BulkImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	candidates := make([]entity.CandidateTransaction, len(req.Candidates))
	for i, candidate := range req.Candidates {
		candidates[i] = candidate.ToEntity()
	}

	output, err := c.bulkImportUseCase.Execute(ctx.Request.Context(), transaction.BulkImportInput{
		RecordedBy: user,
		Candidates: candidates,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BulkImportResponse{
		Imported:     output.Imported,
		Skipped:      output.Skipped,
		SavedOffline: output.SavedOffline,
	})
}
