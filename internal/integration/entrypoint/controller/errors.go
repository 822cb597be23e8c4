// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// respondError maps a domain error onto an HTTP status and error body.
// Unknown errors become an opaque 500.
func respondError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Error: txnErr.Message, Code: string(txnErr.Code)})
		return
	}

	var brwErr *domainerror.BorrowingError
	if errors.As(err, &brwErr) {
		status := http.StatusBadRequest
		if brwErr.Code == domainerror.ErrCodeBorrowingNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{Error: brwErr.Message, Code: string(brwErr.Code)})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		switch ledgerErr.Code {
		case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeTemplateNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeBudgetCategoryExists, domainerror.ErrCodeTemplateNameExists,
			domainerror.ErrCodeWriteInFlight:
			status = http.StatusConflict
		case domainerror.ErrCodeRemoteUnavailable, domainerror.ErrCodeStoreNotInitialized:
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{Error: ledgerErr.Message, Code: string(ledgerErr.Code)})
		return
	}

	var extErr *domainerror.ExtractorError
	if errors.As(err, &extErr) {
		status := http.StatusBadGateway
		if extErr.Code == domainerror.ErrCodeExtractorUnavailable {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{Error: extErr.Message, Code: string(extErr.Code)})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: authErr.Message, Code: string(authErr.Code)})
		return
	}

	if errors.Is(err, domainerror.ErrRemoteUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Backing store is unreachable",
			Code:  string(domainerror.ErrCodeRemoteUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
