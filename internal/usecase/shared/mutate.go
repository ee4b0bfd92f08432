// Package shared holds helpers used by several use cases.
package shared

import (
	"time"

	"github.com/runoshun/willflow/internal/domain"
)

// PatchFunc builds a patch from the current snapshot.
type PatchFunc func(state *domain.AppState, now time.Time) (domain.StatePatch, error)

// Mutate loads the snapshot, applies the patch built by fn and saves the
// result under one repository update. After any patch that changes the
// phase or the plan list, due fixed-day plans are injected into today.
//
// It returns the new snapshot and the patch that was applied, including
// injected instances. Nothing is saved when fn fails or returns an empty patch.
func Mutate(repo domain.StateRepository, ids domain.IDGenerator, now time.Time, fn PatchFunc) (*domain.AppState, domain.StatePatch, error) {
	var applied domain.StatePatch
	state, err := repo.Update(func(state *domain.AppState) (bool, error) {
		p, err := fn(state, now)
		if err != nil {
			return false, err
		}
		if p.IsEmpty() {
			return false, nil
		}
		state.Apply(p)
		if p.TouchesSchedule() {
			injected := domain.InjectScheduled(state, ids, now)
			state.Apply(injected)
			p = p.Merge(injected)
		}
		applied = p
		return true, nil
	})
	if err != nil {
		return nil, domain.StatePatch{}, err
	}
	return state, applied, nil
}
