package model

import (
	"fmt"
	"time"
)

// Status is the staffing state of a shift, derived from its assignments.
type Status string

const (
	StatusUnfilled         Status = "Unfilled"
	StatusPartiallyStaffed Status = "PartiallyStaffed"
	StatusFullyStaffed     Status = "FullyStaffed"
)

// DeriveStatus computes the staffing status from assigned and required
// counts. The status is never stored alongside the assignment list, so it
// cannot drift from it.
func DeriveStatus(assigned, required int) Status {
	switch {
	case assigned == 0:
		return StatusUnfilled
	case assigned < required:
		return StatusPartiallyStaffed
	default:
		return StatusFullyStaffed
	}
}

// RoleCount pairs a role with how many staff holding it a shift needs.
type RoleCount struct {
	Role  Role `json:"role"`
	Count int  `json:"count"`
}

// Assignment binds one staff member to one shift in a specific role.
type Assignment struct {
	ID         string    `json:"id"`
	StaffID    string    `json:"staffId"`
	Role       Role      `json:"role"`
	AssignedBy string    `json:"assignedBy"`
	AssignedAt time.Time `json:"assignedAt"`
}

// Shift is a dated, timed work period with role-based staffing requirements.
type Shift struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Slot         Slot         `json:"slot"`
	Required     int          `json:"required"`
	Requirements []RoleCount  `json:"requirements"`
	Assignments  []Assignment `json:"assignments"`
}

// NewShift builds an empty shift for the given date and slot. The requirement
// list must be non-empty, free of duplicate roles, and its counts must sum to
// the declared required headcount.
func NewShift(id, date string, slot Slot, required int, requirements []RoleCount) (*Shift, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid shift date %q", date)}
	}
	if !slot.IsValid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid shift slot %q", slot)}
	}
	if len(requirements) == 0 {
		return nil, &ConfigurationError{Reason: "shift needs at least one role requirement"}
	}
	sum := 0
	seen := make(map[Role]bool, len(requirements))
	for _, req := range requirements {
		if !req.Role.IsValid() {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid role %q in requirements", req.Role)}
		}
		if req.Count <= 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("role %s needs a positive count", req.Role)}
		}
		if seen[req.Role] {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("role %s appears twice in requirements", req.Role)}
		}
		seen[req.Role] = true
		sum += req.Count
	}
	if sum != required {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("requirement counts sum to %d but required headcount is %d", sum, required)}
	}
	return &Shift{
		ID:           id,
		Date:         date,
		Slot:         slot,
		Required:     required,
		Requirements: append([]RoleCount(nil), requirements...),
		Assignments:  []Assignment{},
	}, nil
}

// AssignedCount returns the number of filled slots on the shift.
func (s *Shift) AssignedCount() int {
	return len(s.Assignments)
}

// Status derives the staffing state from the current assignment list.
func (s *Shift) Status() Status {
	return DeriveStatus(len(s.Assignments), s.Required)
}

// AssignedForRole counts the assignments filling the given role.
func (s *Shift) AssignedForRole(role Role) int {
	count := 0
	for _, a := range s.Assignments {
		if a.Role == role {
			count++
		}
	}
	return count
}

// RemainingForRole returns how many more staff the role still needs. An
// over-filled role reports zero remaining, not a negative count.
func (s *Shift) RemainingForRole(role Role) int {
	for _, req := range s.Requirements {
		if req.Role == role {
			remaining := req.Count - s.AssignedForRole(role)
			if remaining < 0 {
				return 0
			}
			return remaining
		}
	}
	return 0
}

// RequiresRole reports whether the role appears in the requirement list.
func (s *Shift) RequiresRole(role Role) bool {
	for _, req := range s.Requirements {
		if req.Role == role {
			return true
		}
	}
	return false
}

// HasStaff reports whether the staff member is already on the shift.
func (s *Shift) HasStaff(staffID string) bool {
	for _, a := range s.Assignments {
		if a.StaffID == staffID {
			return true
		}
	}
	return false
}

// Assign adds a staff member to the shift in the given role. A staff member
// already on the shift is rejected. Role eligibility is not checked here; the
// validator flags mismatches, so manual overrides stay possible.
func (s *Shift) Assign(assignmentID, staffID string, role Role, assignedBy string, assignedAt time.Time) (*Assignment, error) {
	if !role.IsValid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid role %q", role)}
	}
	if s.HasStaff(staffID) {
		return nil, &DuplicateAssignmentError{ShiftID: s.ID, StaffID: staffID}
	}
	assignment := Assignment{
		ID:         assignmentID,
		StaffID:    staffID,
		Role:       role,
		AssignedBy: assignedBy,
		AssignedAt: assignedAt,
	}
	s.Assignments = append(s.Assignments, assignment)
	return &assignment, nil
}

// Unassign removes the staff member's assignment and reports whether one was
// present. Removing an absent staff member is a no-op, so repeated calls are
// idempotent.
func (s *Shift) Unassign(staffID string) bool {
	for i, a := range s.Assignments {
		if a.StaffID == staffID {
			s.Assignments = append(s.Assignments[:i], s.Assignments[i+1:]...)
			return true
		}
	}
	return false
}

// StartTime returns the concrete start of the shift's window.
func (s *Shift) StartTime() time.Time {
	day, _ := ParseDate(s.Date)
	start, _ := s.Slot.Window()
	return day.Add(start)
}

// EndTime returns the concrete end of the shift's window. Night shifts end on
// the following morning.
func (s *Shift) EndTime() time.Time {
	day, _ := ParseDate(s.Date)
	_, end := s.Slot.Window()
	return day.Add(end)
}

// Overlaps reports whether the two shifts' time windows intersect.
func (s *Shift) Overlaps(other *Shift) bool {
	return Overlap(s.StartTime(), s.EndTime(), other.StartTime(), other.EndTime())
}

// Hours returns the shift's length in hours.
func (s *Shift) Hours() float64 {
	return s.Slot.Hours()
}
