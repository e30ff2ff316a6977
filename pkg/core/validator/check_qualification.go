package validator

import "fmt"

// QualificationCheck verifies every assigned staff member holds the role
// they are assigned in. Manual overrides are not blocked at assignment time,
// so mismatches surface here.
type QualificationCheck struct{}

func (c *QualificationCheck) Name() string {
	return "Qualification"
}

func (c *QualificationCheck) Check(in Input) []Violation {
	var violations []Violation

	for _, shift := range in.Rota.SortedShifts() {
		for _, assignment := range shift.Assignments {
			staff, known := in.Staff[assignment.StaffID]
			if !known {
				violations = append(violations, Violation{
					Kind:      KindQualificationMismatch,
					Severity:  KindQualificationMismatch.Severity(),
					ShiftID:   shift.ID,
					ShiftDate: shift.Date,
					StaffID:   assignment.StaffID,
					Role:      assignment.Role,
					Description: fmt.Sprintf("staff %s assigned to %s %s is not in the staff directory",
						assignment.StaffID, shift.Date, shift.Slot),
				})
				continue
			}
			if !staff.CanWork(assignment.Role) {
				violations = append(violations, Violation{
					Kind:      KindQualificationMismatch,
					Severity:  KindQualificationMismatch.Severity(),
					ShiftID:   shift.ID,
					ShiftDate: shift.Date,
					StaffID:   assignment.StaffID,
					Role:      assignment.Role,
					Description: fmt.Sprintf("%s does not hold the %s role on %s %s",
						staff.FullName(), assignment.Role, shift.Date, shift.Slot),
				})
			}
		}
	}

	return violations
}
