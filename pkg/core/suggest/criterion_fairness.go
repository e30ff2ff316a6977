package suggest

import (
	"fmt"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// FairnessCriterion boosts candidates with spare contracted hours so work
// spreads across the team instead of loading the usual few.
//
// Score:
//   - 1.0 for a candidate with nothing assigned this week
//   - falls linearly to 0 as assigned hours reach contracted hours
//   - 0.5 for candidates with no contracted hours on record
type FairnessCriterion struct {
	weight float64
}

func NewFairnessCriterion(weight float64) *FairnessCriterion {
	return &FairnessCriterion{weight: weight}
}

func (c *FairnessCriterion) Name() string {
	return "Fairness"
}

func (c *FairnessCriterion) Weight() float64 {
	return c.weight
}

func (c *FairnessCriterion) Gate() bool {
	return false
}

func (c *FairnessCriterion) Score(ctx Context, candidate model.Staff) float64 {
	if candidate.ContractedHours <= 0 {
		return 0.5
	}
	ratio := ctx.Rota.AssignedHours(candidate.ID) / candidate.ContractedHours
	if ratio >= 1 {
		return 0
	}
	return 1 - ratio
}

func (c *FairnessCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	if candidate.ContractedHours <= 0 || score < 0.5 {
		return "", false
	}
	assigned := ctx.Rota.AssignedHours(candidate.ID)
	return fmt.Sprintf("under contracted hours this week (%.1f of %.1f assigned)",
		assigned, candidate.ContractedHours), true
}
