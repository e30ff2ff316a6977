package suggest

import (
	"fmt"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// RoleMatchCriterion scores whether the candidate holds the slot's role.
//
// Score:
//   - 1.0 when the candidate holds the specific unfilled role
//   - 0 otherwise, which excludes the candidate from the ranking entirely
type RoleMatchCriterion struct {
	weight float64
}

func NewRoleMatchCriterion(weight float64) *RoleMatchCriterion {
	return &RoleMatchCriterion{weight: weight}
}

func (c *RoleMatchCriterion) Name() string {
	return "RoleMatch"
}

func (c *RoleMatchCriterion) Weight() float64 {
	return c.weight
}

func (c *RoleMatchCriterion) Gate() bool {
	return true
}

func (c *RoleMatchCriterion) Score(ctx Context, candidate model.Staff) float64 {
	if candidate.CanWork(ctx.Role) {
		return 1.0
	}
	return 0
}

func (c *RoleMatchCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	if score == 0 {
		return "", false
	}
	return fmt.Sprintf("holds the %s role", ctx.Role), true
}
