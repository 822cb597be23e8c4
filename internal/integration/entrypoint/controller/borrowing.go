package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/application/usecase/borrowing"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// BorrowingController handles borrowing endpoints.
type BorrowingController struct {
	listUseCase         *borrowing.ListBorrowingsUseCase
	createUseCase       *borrowing.CreateBorrowingUseCase
	updateUseCase       *borrowing.UpdateBorrowingUseCase
	deleteUseCase       *borrowing.DeleteBorrowingUseCase
	addRepaymentUseCase *borrowing.AddRepaymentUseCase
}

// NewBorrowingController creates a new borrowing controller instance.
func NewBorrowingController(
	listUseCase *borrowing.ListBorrowingsUseCase,
	createUseCase *borrowing.CreateBorrowingUseCase,
	updateUseCase *borrowing.UpdateBorrowingUseCase,
	deleteUseCase *borrowing.DeleteBorrowingUseCase,
	addRepaymentUseCase *borrowing.AddRepaymentUseCase,
) *BorrowingController {
	return &BorrowingController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		addRepaymentUseCase: addRepaymentUseCase,
	}
}

// List handles GET /borrowings requests.
func (c *BorrowingController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	responses := make([]dto.BorrowingResponse, len(output.Borrowings))
	for i, view := range output.Borrowings {
		responses[i] = dto.ToBorrowingViewResponse(view)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Create handles POST /borrowings requests.
func (c *BorrowingController) Create(ctx *gin.Context) {
	var req dto.CreateBorrowingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBorrowingResponse(output.Borrowing))
}

// Update handles PUT /borrowings/:id requests.
func (c *BorrowingController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid borrowing ID"})
		return
	}

	var req dto.UpdateBorrowingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	create := dto.CreateBorrowingRequest{
		LenderName:      req.LenderName,
		Principal:       req.Principal,
		Interest:        req.Interest,
		LoanDate:        req.LoanDate,
		ReturnDate:      req.ReturnDate,
		AdditionalCosts: req.AdditionalCosts,
	}
	base := create.ToInput()

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), borrowing.UpdateBorrowingInput{
		ID:              id,
		LenderName:      base.LenderName,
		Principal:       base.Principal,
		Interest:        base.Interest,
		LoanDate:        base.LoanDate,
		ReturnDate:      base.ReturnDate,
		AdditionalCosts: base.AdditionalCosts,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBorrowingResponse(output.Borrowing))
}

// Delete handles DELETE /borrowings/:id requests.
func (c *BorrowingController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid borrowing ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), borrowing.DeleteBorrowingInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Borrowing deleted"})
}

// AddRepayment handles POST /borrowings/:id/repayments requests.
func (c *BorrowingController) AddRepayment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid borrowing ID"})
		return
	}

	var req dto.AddRepaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.addRepaymentUseCase.Execute(ctx.Request.Context(), borrowing.AddRepaymentInput{
		BorrowingID: id,
		Amount:      decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBorrowingResponse(output.Borrowing))
}
