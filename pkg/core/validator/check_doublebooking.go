package validator

import "fmt"

// DoubleBookingCheck verifies no staff member is assigned to two shifts
// whose time windows overlap. Each overlapping pair is reported once,
// referencing both shifts.
type DoubleBookingCheck struct{}

func (c *DoubleBookingCheck) Name() string {
	return "DoubleBooking"
}

func (c *DoubleBookingCheck) Check(in Input) []Violation {
	var violations []Violation

	for _, staffID := range assignedStaffIDs(in) {
		shifts := in.Rota.ShiftsFor(staffID)
		for i := 0; i < len(shifts); i++ {
			for j := i + 1; j < len(shifts); j++ {
				if !shifts[i].Overlaps(shifts[j]) {
					continue
				}
				violations = append(violations, Violation{
					Kind:           KindDoubleBooking,
					Severity:       KindDoubleBooking.Severity(),
					ShiftID:        shifts[i].ID,
					ShiftDate:      shifts[i].Date,
					StaffID:        staffID,
					RelatedShiftID: shifts[j].ID,
					Description: fmt.Sprintf("%s is double-booked: %s %s overlaps %s %s",
						staffID, shifts[i].Date, shifts[i].Slot, shifts[j].Date, shifts[j].Slot),
				})
			}
		}
	}

	return violations
}
