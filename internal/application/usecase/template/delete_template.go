package template

import (
	"context"
	"fmt"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// DeleteTemplateInput represents the input for removing a template.
type DeleteTemplateInput struct {
	Name string
}

// DeleteTemplateUseCase removes a template by name.
type DeleteTemplateUseCase struct {
	store adapter.LedgerStore
	sink  adapter.ActivitySink
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(store adapter.LedgerStore, sink adapter.ActivitySink) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{store: store, sink: sink}
}

// Execute removes the template, failing when the name is unknown.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) error {
	snapshot := uc.store.Snapshot()

	templates := make([]entity.Template, 0, len(snapshot.Templates))
	found := false
	for _, t := range snapshot.Templates {
		if t.Name == input.Name {
			found = true
			continue
		}
		templates = append(templates, t)
	}
	if !found {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeTemplateNotFound,
			fmt.Sprintf("template %q not found", input.Name),
			domainerror.ErrTemplateNotFound,
		)
	}

	if err := uc.store.ReplaceTemplates(ctx, templates); err != nil {
		return err
	}

	uc.sink.Success("Template Deleted")
	return nil
}
