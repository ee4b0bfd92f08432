package domain

// Budget is the derived view of today's willpower pool.
type Budget struct {
	Phase     Phase
	PoolMax   int // baseMax + diaryAdjustment
	Allocated int // Σcost of all today tasks
	Completed int // Σcost of completed today tasks
	Remaining int // What the progress bar shows; may be negative
}

// CalculateBudget derives the budget for a phase. In planning the pool is
// reduced by everything allocated, in execution only by what is done.
func CalculateBudget(phase Phase, poolMax int, tasks []Task) Budget {
	b := Budget{Phase: phase, PoolMax: poolMax}
	for _, t := range tasks {
		b.Allocated += t.Cost
		if t.Completed {
			b.Completed += t.Cost
		}
	}
	if phase == PhaseExecution {
		b.Remaining = poolMax - b.Completed
	} else {
		b.Remaining = poolMax - b.Allocated
	}
	return b
}

// Overdraft returns true if more was planned or spent than the pool holds.
func (b Budget) Overdraft() bool {
	return b.Remaining < 0
}

// Ratio returns Remaining/PoolMax clamped to [0, 1] for progress display.
func (b Budget) Ratio() float64 {
	total := b.PoolMax
	if total <= 0 {
		total = 1
	}
	r := float64(b.Remaining) / float64(total)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
