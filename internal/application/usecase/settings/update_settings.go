// Package settings contains the shared-settings use case.
package settings

import (
	"context"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

// UpdateSettingsInput carries a partial settings change. Nil fields keep
// their current value. A non-nil empty PIN clears the stored hash.
type UpdateSettingsInput struct {
	Theme        *entity.Theme
	Currency     *entity.Currency
	PIN          *string
	VoiceEnabled *bool
}

// UpdateSettingsOutput contains the merged settings.
type UpdateSettingsOutput struct {
	Settings entity.Settings
}

// UpdateSettingsUseCase merges a partial change into the shared settings.
// The raw PIN never reaches the store; only its hash is persisted.
type UpdateSettingsUseCase struct {
	store adapter.LedgerStore
	pins  adapter.PinService
	sink  adapter.ActivitySink
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(store adapter.LedgerStore, pins adapter.PinService, sink adapter.ActivitySink) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{store: store, pins: pins, sink: sink}
}

// Execute applies the partial change and persists the merged settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	snapshot := uc.store.Snapshot()
	merged := snapshot.Settings

	if input.Theme != nil {
		merged.Theme = *input.Theme
	}
	if input.Currency != nil {
		merged.Currency = *input.Currency
	}
	if input.VoiceEnabled != nil {
		merged.VoiceEnabled = *input.VoiceEnabled
	}
	if input.PIN != nil {
		if *input.PIN == "" {
			merged.PinHash = ""
		} else {
			hash, err := uc.pins.Hash(*input.PIN)
			if err != nil {
				return nil, err
			}
			merged.PinHash = hash
		}
	}

	if err := uc.store.ReplaceSettings(ctx, merged); err != nil {
		return nil, err
	}

	uc.sink.Success("Settings Updated")
	return &UpdateSettingsOutput{Settings: merged}, nil
}
