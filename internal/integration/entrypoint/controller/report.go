package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/usecase/report"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	breakdownUseCase       *report.GetCategoryBreakdownUseCase
	summaryUseCase         *report.GetSummaryUseCase
	categoryFinanceUseCase *report.GetCategoryFinanceUseCase
	exportUseCase          *report.ExportCSVUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	summaryUseCase *report.GetSummaryUseCase,
	categoryFinanceUseCase *report.GetCategoryFinanceUseCase,
	exportUseCase *report.ExportCSVUseCase,
) *ReportController {
	return &ReportController{
		breakdownUseCase:       breakdownUseCase,
		summaryUseCase:         summaryUseCase,
		categoryFinanceUseCase: categoryFinanceUseCase,
		exportUseCase:          exportUseCase,
	}
}

// Breakdown handles GET /reports/breakdown requests.
func (c *ReportController) Breakdown(ctx *gin.Context) {
	period := report.Period(ctx.DefaultQuery("period", string(report.PeriodMonthly)))
	if !report.IsValidPeriod(period) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid period"})
		return
	}

	input := report.GetCategoryBreakdownInput{Period: period}
	if anchorStr := ctx.Query("anchor"); anchorStr != "" {
		anchor, err := time.Parse(time.RFC3339, anchorStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid anchor date"})
			return
		}
		input.Anchor = anchor
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		TotalBalance: output.TotalBalance.String(),
		CashInHand:   output.CashInHand.String(),
		BankTotal:    output.BankTotal.String(),
	})
}

// CategoryFinance handles GET /reports/categories/:category requests.
func (c *ReportController) CategoryFinance(ctx *gin.Context) {
	category := entity.MainCategory(ctx.Param("category"))
	if !entity.IsValidMainCategory(category) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unknown category"})
		return
	}

	output, err := c.categoryFinanceUseCase.Execute(ctx.Request.Context(), report.GetCategoryFinanceInput{
		Category: category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryFinanceResponse{
		Category:     string(output.Category),
		TotalIncome:  output.TotalIncome.String(),
		TotalExpense: output.TotalExpense.String(),
		Profit:       output.Profit.String(),
		Transactions: dto.ToTransactionListResponse(output.Transactions),
	})
}

// ExportCSV handles GET /reports/export requests, streaming the full
// transaction history as a CSV download.
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, "text/csv", output.Content)
}
