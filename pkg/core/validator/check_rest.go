package validator

import (
	"fmt"
	"sort"
)

// RestCheck verifies the gap between one assigned shift ending and the next
// starting meets the minimum rest period. Each offending adjacent pair is
// reported once. Prior-week shifts extend the sequence backwards so a short
// turnaround over the week boundary is still caught.
type RestCheck struct{}

func (c *RestCheck) Name() string {
	return "Rest"
}

func (c *RestCheck) Check(in Input) []Violation {
	var violations []Violation

	for _, staffID := range assignedStaffIDs(in) {
		shifts := append(in.Prior.ShiftsFor(staffID), in.Rota.ShiftsFor(staffID)...)
		if len(shifts) < 2 {
			continue
		}
		sort.SliceStable(shifts, func(i, j int) bool {
			return shifts[i].StartTime().Before(shifts[j].StartTime())
		})

		minRest := in.Rota.Config.EffectiveMinRest(in.Staff[staffID])

		for i := 1; i < len(shifts); i++ {
			prev, next := shifts[i-1], shifts[i]
			if !in.Rota.ContainsDate(next.Date) {
				// Pairs entirely inside the prior week were that rota's problem
				continue
			}
			gap := next.StartTime().Sub(prev.EndTime()).Hours()
			if gap >= minRest {
				continue
			}
			violations = append(violations, Violation{
				Kind:           KindRestViolation,
				Severity:       KindRestViolation.Severity(),
				ShiftID:        next.ID,
				ShiftDate:      next.Date,
				StaffID:        staffID,
				RelatedShiftID: prev.ID,
				Description: fmt.Sprintf("%s has %.1fh rest between %s %s and %s %s (minimum %.1fh)",
					staffID, gap, prev.Date, prev.Slot, next.Date, next.Slot, minRest),
			})
		}
	}

	return violations
}
