package usecase

import (
	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/usecase/shared"
)

// StatePorts are the ports shared by every use case that changes the snapshot.
type StatePorts struct {
	Repo   domain.StateRepository
	IDs    domain.IDGenerator
	Clock  domain.Clock
	Logger domain.Logger
}

// mutate runs fn through shared.Mutate at the current time.
func (p StatePorts) mutate(fn shared.PatchFunc) (*domain.AppState, domain.StatePatch, error) {
	return shared.Mutate(p.Repo, p.IDs, p.Clock.Now(), fn)
}

func (p StatePorts) logger() domain.Logger {
	if p.Logger == nil {
		return domain.NopLogger{}
	}
	return p.Logger
}
