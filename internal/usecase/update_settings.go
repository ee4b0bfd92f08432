package usecase

import (
	"context"
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// UpdateSettingsInput contains the settings to change. Nil fields are kept.
type UpdateSettingsInput struct {
	BottomNavOffset *bool
}

// UpdateSettingsOutput contains the stored settings.
type UpdateSettingsOutput struct {
	Settings domain.Settings
}

// UpdateSettings changes presentation preferences.
type UpdateSettings struct {
	ports StatePorts
}

// NewUpdateSettings creates a new UpdateSettings use case.
func NewUpdateSettings(ports StatePorts) *UpdateSettings {
	return &UpdateSettings{ports: ports}
}

// Execute applies the changes. Without any field it only reports the
// current settings.
func (uc *UpdateSettings) Execute(_ context.Context, in UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	state, _, err := uc.ports.mutate(func(s *domain.AppState, _ time.Time) (domain.StatePatch, error) {
		settings := s.Settings
		if in.BottomNavOffset != nil {
			settings.BottomNavOffset = *in.BottomNavOffset
		}
		if settings == s.Settings {
			return domain.StatePatch{}, nil
		}
		return domain.UpdateSettings(settings), nil
	})
	if err != nil {
		return nil, err
	}
	return &UpdateSettingsOutput{Settings: state.Settings}, nil
}
