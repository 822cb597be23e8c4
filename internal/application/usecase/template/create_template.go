// Package template contains saved-transaction-template use cases.
package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for saving a reusable
// transaction template.
type CreateTemplateInput struct {
	Name        string
	Transaction entity.TemplateTransaction
}

// CreateTemplateOutput contains the persisted template.
type CreateTemplateOutput struct {
	Template entity.Template
}

// CreateTemplateUseCase saves a named template. Names are unique.
type CreateTemplateUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{store: store, sink: sink}
}

// Execute validates and persists the template.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingTemplateName,
			"template name is required",
			domainerror.ErrMissingTemplateName,
		)
	}

	snapshot := uc.store.Snapshot()
	if snapshot.HasTemplate(name) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeTemplateNameExists,
			fmt.Sprintf("a template named %q already exists", name),
			domainerror.ErrTemplateNameExists,
		)
	}

	template := entity.Template{Name: name, Transaction: input.Transaction}
	templates := append(snapshot.Templates, template)
	if err := uc.store.ReplaceTemplates(ctx, templates); err != nil {
		return nil, err
	}

	uc.sink.Success("Template Saved")
	return &CreateTemplateOutput{Template: template}, nil
}
