package validator

import "fmt"

// CoverageCheck verifies every shift's per-role requirement is met. Each
// under-filled role produces its own violation naming the shift and the
// deficit.
type CoverageCheck struct{}

func (c *CoverageCheck) Name() string {
	return "Coverage"
}

func (c *CoverageCheck) Check(in Input) []Violation {
	var violations []Violation

	for _, shift := range in.Rota.SortedShifts() {
		for _, req := range shift.Requirements {
			deficit := req.Count - shift.AssignedForRole(req.Role)
			if deficit <= 0 {
				continue
			}
			violations = append(violations, Violation{
				Kind:      KindCoverageShortfall,
				Severity:  KindCoverageShortfall.Severity(),
				ShiftID:   shift.ID,
				ShiftDate: shift.Date,
				Role:      req.Role,
				Description: fmt.Sprintf("%s %s shift is short %d %s (%d of %d filled)",
					shift.Date, shift.Slot, deficit, req.Role, shift.AssignedForRole(req.Role), req.Count),
			})
		}
	}

	return violations
}
