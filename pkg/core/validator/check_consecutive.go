package validator

import (
	"fmt"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// ConsecutiveDayCheck verifies no staff member works a run of calendar dates
// longer than their consecutive-day limit. Runs ignore time-of-day: two
// shifts on one date count as one day. Prior-week dates extend a run that
// crosses the week boundary, and each excessive run is reported once.
type ConsecutiveDayCheck struct{}

func (c *ConsecutiveDayCheck) Name() string {
	return "ConsecutiveDays"
}

func (c *ConsecutiveDayCheck) Check(in Input) []Violation {
	var violations []Violation

	for _, staffID := range assignedStaffIDs(in) {
		dates := append(in.Prior.DatesFor(staffID), in.Rota.AssignedDates(staffID)...)
		limit := in.Rota.Config.EffectiveMaxConsecutive(in.Staff[staffID])
		if limit <= 0 {
			continue
		}

		for _, run := range model.Runs(dates) {
			if len(run) <= limit || !runTouchesWeek(run, in.Rota) {
				continue
			}
			breach := run[limit]
			if breach < in.Rota.WeekStart {
				breach = firstDateInWeek(run, in.Rota)
			}
			violations = append(violations, Violation{
				Kind:      KindConsecutiveDay,
				Severity:  KindConsecutiveDay.Severity(),
				ShiftDate: breach,
				StaffID:   staffID,
				Description: fmt.Sprintf("%s works %d consecutive days from %s (limit %d)",
					staffID, len(run), run[0], limit),
			})
		}
	}

	return violations
}

func runTouchesWeek(run []string, rota *model.Rota) bool {
	for _, date := range run {
		if rota.ContainsDate(date) {
			return true
		}
	}
	return false
}

func firstDateInWeek(run []string, rota *model.Rota) string {
	for _, date := range run {
		if rota.ContainsDate(date) {
			return date
		}
	}
	return run[0]
}
