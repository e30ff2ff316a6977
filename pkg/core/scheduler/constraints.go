package scheduler

import (
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// The generator never commits an assignment that breaks a hard scheduling
// rule. Soft concerns (preferences, fairness, fatigue) only move candidates
// around the ranking; these checks remove them outright for one slot.

// wouldDoubleBook reports whether the staff member already works a shift in
// the rota whose hours overlap the candidate shift.
func wouldDoubleBook(rota *model.Rota, shift *model.Shift, staffID string) bool {
	for _, other := range rota.Shifts {
		if other.ID == shift.ID || !other.HasStaff(staffID) {
			continue
		}
		if other.Overlaps(shift) {
			return true
		}
	}
	return false
}

// wouldBreakRest reports whether placing the staff member on the shift would
// leave less than their minimum rest gap to any shift they already work,
// in this week or the prior one.
func wouldBreakRest(rota *model.Rota, prior *validator.PriorWeek, shift *model.Shift, staff model.Staff) bool {
	minRest := rota.Config.EffectiveMinRest(staff)
	if minRest <= 0 {
		return false
	}

	existing := append(prior.ShiftsFor(staff.ID), rota.ShiftsFor(staff.ID)...)
	for _, worked := range existing {
		if worked.ID == shift.ID {
			continue
		}
		var gap float64
		switch {
		case !worked.EndTime().After(shift.StartTime()):
			gap = shift.StartTime().Sub(worked.EndTime()).Hours()
		case !shift.EndTime().After(worked.StartTime()):
			gap = worked.StartTime().Sub(shift.EndTime()).Hours()
		default:
			// Overlapping shifts are the double-booking check's problem.
			continue
		}
		if gap < minRest {
			return true
		}
	}
	return false
}

// wouldExceedConsecutive reports whether the shift's date would stretch the
// staff member's run of worked days past their consecutive-day limit.
func wouldExceedConsecutive(rota *model.Rota, prior *validator.PriorWeek, shift *model.Shift, staff model.Staff) bool {
	limit := rota.Config.EffectiveMaxConsecutive(staff)
	if limit <= 0 {
		return false
	}

	dates := append(prior.DatesFor(staff.ID), rota.AssignedDates(staff.ID)...)
	dates = append(dates, shift.Date)
	for _, run := range model.Runs(dates) {
		if len(run) <= limit {
			continue
		}
		for _, date := range run {
			if date == shift.Date {
				return true
			}
		}
	}
	return false
}

// wouldExceedWeeklyHours reports whether the shift would push the staff
// member past the rota's absolute weekly hours cap. The cap holds even when
// overtime past contracted hours is allowed.
func wouldExceedWeeklyHours(rota *model.Rota, shift *model.Shift, staff model.Staff) bool {
	limit := rota.Config.MaxWeeklyHours
	if limit <= 0 {
		return false
	}
	return rota.AssignedHours(staff.ID)+shift.Hours() > limit
}

// violatesHardConstraint runs every hard rule for one candidate placement.
func violatesHardConstraint(rota *model.Rota, prior *validator.PriorWeek, shift *model.Shift, staff model.Staff) bool {
	if wouldDoubleBook(rota, shift, staff.ID) {
		return true
	}
	if wouldBreakRest(rota, prior, shift, staff) {
		return true
	}
	if wouldExceedConsecutive(rota, prior, shift, staff) {
		return true
	}
	if wouldExceedWeeklyHours(rota, shift, staff) {
		return true
	}
	return false
}
