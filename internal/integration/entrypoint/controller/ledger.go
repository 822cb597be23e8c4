package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/application/usecase/settings"
	"github.com/homeledger/backend/internal/application/usecase/template"
	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

// TemplateController handles transaction template endpoints.
type TemplateController struct {
	store         adapter.LedgerStore
	createUseCase *template.CreateTemplateUseCase
	deleteUseCase *template.DeleteTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(
	store adapter.LedgerStore,
	createUseCase *template.CreateTemplateUseCase,
	deleteUseCase *template.DeleteTemplateUseCase,
) *TemplateController {
	return &TemplateController{
		store:         store,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /templates requests.
func (c *TemplateController) List(ctx *gin.Context) {
	snapshot := c.store.Snapshot()
	responses := make([]dto.TemplateResponse, len(snapshot.Templates))
	for i, t := range snapshot.Templates {
		responses[i] = dto.ToTemplateResponse(t)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Create handles POST /templates requests.
func (c *TemplateController) Create(ctx *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	candidate := dto.CandidateTransactionDTO{
		Type:         req.Transaction.Type,
		MainCategory: req.Transaction.MainCategory,
		SubCategory:  req.Transaction.SubCategory,
		Amount:       req.Transaction.Amount,
		Medium:       req.Transaction.Medium,
		Notes:        req.Transaction.Notes,
		Payee:        req.Transaction.Payee,
	}.ToEntity()

	output, err := c.createUseCase.Execute(ctx.Request.Context(), template.CreateTemplateInput{
		Name: req.Name,
		Transaction: entity.TemplateTransaction{
			Type:         candidate.Type,
			MainCategory: candidate.MainCategory,
			SubCategory:  candidate.SubCategory,
			Amount:       candidate.Amount,
			Medium:       candidate.Medium,
			Notes:        candidate.Notes,
			Payee:        candidate.Payee,
		},
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// Delete handles DELETE /templates/:name requests.
func (c *TemplateController) Delete(ctx *gin.Context) {
	name := ctx.Param("name")
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), template.DeleteTemplateInput{Name: name}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Template deleted"})
}

// SettingsController handles shared-settings endpoints.
type SettingsController struct {
	store         adapter.LedgerStore
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(store adapter.LedgerStore, updateUseCase *settings.UpdateSettingsUseCase) *SettingsController {
	return &SettingsController{store: store, updateUseCase: updateUseCase}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(c.store.Snapshot().Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := settings.UpdateSettingsInput{
		PIN:          req.PIN,
		VoiceEnabled: req.VoiceEnabled,
	}
	if req.Theme != nil {
		theme := entity.Theme(*req.Theme)
		input.Theme = &theme
	}
	if req.Currency != nil {
		currency := entity.Currency(*req.Currency)
		input.Currency = &currency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// ActivityController exposes the most recent user-visible outcome.
type ActivityController struct {
	sink adapter.ActivitySink
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(sink adapter.ActivitySink) *ActivityController {
	return &ActivityController{sink: sink}
}

// Last handles GET /activity requests.
func (c *ActivityController) Last(ctx *gin.Context) {
	activity := c.sink.Last()
	if activity == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, dto.ActivityResponse{
		Message:   activity.Message,
		Kind:      string(activity.Kind),
		Timestamp: activity.Timestamp,
	})
}
