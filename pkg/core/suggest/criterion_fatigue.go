package suggest

import (
	"fmt"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// FatigueCriterion penalizes candidates already working a run of days going
// into the slot's date.
//
// Score:
//   - 0 for a candidate with no run ending the day before the shift
//   - scales to -1.0 as the run approaches their consecutive-day limit
type FatigueCriterion struct {
	weight float64
}

func NewFatigueCriterion(weight float64) *FatigueCriterion {
	return &FatigueCriterion{weight: weight}
}

func (c *FatigueCriterion) Name() string {
	return "Fatigue"
}

func (c *FatigueCriterion) Weight() float64 {
	return c.weight
}

func (c *FatigueCriterion) Gate() bool {
	return false
}

func (c *FatigueCriterion) Score(ctx Context, candidate model.Staff) float64 {
	run := c.runInto(ctx, candidate)
	limit := ctx.Rota.Config.EffectiveMaxConsecutive(candidate)
	if run == 0 || limit <= 0 {
		return 0
	}
	penalty := float64(run) / float64(limit)
	if penalty > 1 {
		penalty = 1
	}
	return -penalty
}

func (c *FatigueCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	run := c.runInto(ctx, candidate)
	if run < 2 {
		return "", false
	}
	return fmt.Sprintf("already worked %d consecutive days before %s", run, ctx.Shift.Date), true
}

func (c *FatigueCriterion) runInto(ctx Context, candidate model.Staff) int {
	return model.RunEndingBefore(ctx.Rota.AssignedDates(candidate.ID), ctx.Shift.Date)
}
