package validator

import (
	"sort"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// PriorWeek carries the preceding week's shifts so rest and consecutive-day
// checks can see across the week boundary. The engine is stateless across
// rotas; callers that have the previous week supply it here.
type PriorWeek struct {
	Shifts []*model.Shift
}

// ShiftsFor returns the prior-week shifts the staff member worked, in week
// order.
func (p *PriorWeek) ShiftsFor(staffID string) []*model.Shift {
	if p == nil {
		return nil
	}
	var shifts []*model.Shift
	for _, shift := range p.Shifts {
		if shift.HasStaff(staffID) {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// DatesFor returns the prior-week dates the staff member worked.
func (p *PriorWeek) DatesFor(staffID string) []string {
	var dates []string
	for _, shift := range p.ShiftsFor(staffID) {
		dates = append(dates, shift.Date)
	}
	return dates
}

// Input is everything a validation pass reads. The pass is a pure function
// of it: identical input yields an identical, identically ordered result.
type Input struct {
	Rota  *model.Rota
	Staff map[string]model.Staff
	Prior *PriorWeek
}

// Check inspects one aspect of a rota and reports its violations.
type Check interface {
	Name() string
	Check(in Input) []Violation
}

// DefaultChecks returns the full rule set in reporting order.
func DefaultChecks() []Check {
	return []Check{
		&CoverageCheck{},
		&QualificationCheck{},
		&RestCheck{},
		&ConsecutiveDayCheck{},
		&DoubleBookingCheck{},
	}
}

// Validate runs every check against the rota and returns the combined
// violation list. Checks are independent and all always run; a failing check
// never stops the rest. An empty result means the rota is valid.
func Validate(in Input) []Violation {
	var violations []Violation
	for _, check := range DefaultChecks() {
		violations = append(violations, check.Check(in)...)
	}
	return violations
}

// assignedStaffIDs returns the ids of every staff member assigned anywhere
// in the rota or the prior week, sorted for deterministic iteration.
func assignedStaffIDs(in Input) []string {
	seen := make(map[string]bool)
	collect := func(shifts []*model.Shift) {
		for _, shift := range shifts {
			for _, a := range shift.Assignments {
				seen[a.StaffID] = true
			}
		}
	}
	collect(in.Rota.Shifts)
	if in.Prior != nil {
		collect(in.Prior.Shifts)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
