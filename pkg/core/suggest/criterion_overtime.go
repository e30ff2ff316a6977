package suggest

import (
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// OvertimeCriterion keeps candidates inside their contracted hours. It
// carries no weight; it only gates.
//
// Score:
//   - 1.0 when the shift still fits inside the candidate's contracted
//     hours, or they have flexible hours or no recorded contract
//   - 0 otherwise, which excludes the candidate from the ranking
type OvertimeCriterion struct{}

func NewOvertimeCriterion() *OvertimeCriterion {
	return &OvertimeCriterion{}
}

func (c *OvertimeCriterion) Name() string {
	return "Overtime"
}

func (c *OvertimeCriterion) Weight() float64 {
	return 0
}

func (c *OvertimeCriterion) Gate() bool {
	return true
}

func (c *OvertimeCriterion) Score(ctx Context, candidate model.Staff) float64 {
	if candidate.ContractedHours <= 0 || candidate.Preferences.FlexibleHours {
		return 1.0
	}
	assigned := ctx.Rota.AssignedHours(candidate.ID)
	if assigned+ctx.Shift.Hours() > candidate.ContractedHours {
		return 0
	}
	return 1.0
}

func (c *OvertimeCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	return "", false
}
