package model

import (
	"fmt"
	"sort"
	"time"
)

// RotaStatus is the lifecycle state of a rota document.
type RotaStatus string

const (
	RotaDraft     RotaStatus = "Draft"
	RotaPublished RotaStatus = "Published"
)

// RotaConfig carries the policy parameters the rota is validated and
// generated against.
type RotaConfig struct {
	MaxConsecutiveDays  int         `json:"maxConsecutiveDays"`
	MinRestHours        float64     `json:"minRestHours"`
	MaxWeeklyHours      float64     `json:"maxWeeklyHours"`
	DefaultRequirements []RoleCount `json:"defaultRequirements,omitempty"`
}

// EffectiveMaxConsecutive returns the consecutive-day limit for a staff
// member. A personal limit tightens the rota policy, never loosens it.
func (c RotaConfig) EffectiveMaxConsecutive(staff Staff) int {
	personal := staff.Preferences.MaxConsecutiveDays
	if personal > 0 && personal < c.MaxConsecutiveDays {
		return personal
	}
	return c.MaxConsecutiveDays
}

// EffectiveMinRest returns the minimum rest hours for a staff member. A
// personal minimum tightens the rota policy, never loosens it.
func (c RotaConfig) EffectiveMinRest(staff Staff) float64 {
	personal := staff.Preferences.MinRestHours
	if personal > c.MinRestHours {
		return personal
	}
	return c.MinRestHours
}

// Rota is the one-week duty roster, the unit of persistence and validation.
// Every mutation replaces the whole document; Version guards against two
// editors silently overwriting each other at the store boundary.
type Rota struct {
	ID          string     `json:"id"`
	Site        string     `json:"site"`
	WeekStart   string     `json:"weekStart"`
	WeekEnd     string     `json:"weekEnd"`
	Status      RotaStatus `json:"status"`
	Config      RotaConfig `json:"config"`
	Shifts      []*Shift   `json:"shifts"`
	Version     int64      `json:"version"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedBy string     `json:"publishedBy,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	DeletedBy   string     `json:"deletedBy,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// NewRota creates an empty draft rota covering the week starting at
// weekStart.
func NewRota(id, site, weekStart string, cfg RotaConfig) (*Rota, error) {
	if _, err := ParseDate(weekStart); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("invalid week start %q", weekStart)}
	}
	return &Rota{
		ID:        id,
		Site:      site,
		WeekStart: weekStart,
		WeekEnd:   AddDays(weekStart, 6),
		Status:    RotaDraft,
		Config:    cfg,
		Shifts:    []*Shift{},
		Version:   1,
	}, nil
}

// Check verifies a rota decoded from a stored document is usable by the
// engine: the week start parses and every shift carries a parseable date and
// a known slot. The constructors enforce this on the way in; Check guards
// documents that arrive through unmarshalling, where a corrupt date would
// otherwise yield zero-time windows in the overlap and rest math.
func (r *Rota) Check() error {
	if _, err := ParseDate(r.WeekStart); err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("invalid week start %q", r.WeekStart)}
	}
	for _, shift := range r.Shifts {
		if shift == nil {
			return &ConfigurationError{Reason: "nil shift in document"}
		}
		if _, err := ParseDate(shift.Date); err != nil {
			return &ConfigurationError{Reason: fmt.Sprintf("shift %s has invalid date %q", shift.ID, shift.Date)}
		}
		if !shift.Slot.IsValid() {
			return &ConfigurationError{Reason: fmt.Sprintf("shift %s has unknown slot %q", shift.ID, shift.Slot)}
		}
	}
	return nil
}

func (r *Rota) IsPublished() bool {
	return r.Status == RotaPublished
}

func (r *Rota) IsDeleted() bool {
	return r.DeletedAt != nil
}

// ContainsDate reports whether the calendar date falls inside the rota week.
func (r *Rota) ContainsDate(date string) bool {
	return date >= r.WeekStart && date <= r.WeekEnd
}

// AddShift appends a shift after checking it belongs to the rota week and
// does not reuse an existing shift id. Shifts stay sorted in week order.
func (r *Rota) AddShift(shift *Shift) error {
	if shift == nil {
		return &ConfigurationError{Reason: "nil shift"}
	}
	if !r.ContainsDate(shift.Date) {
		return &ConfigurationError{Reason: fmt.Sprintf("shift date %s is outside week %s to %s", shift.Date, r.WeekStart, r.WeekEnd)}
	}
	if shift.ID != "" && r.ShiftByID(shift.ID) != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("shift %s already exists on the rota", shift.ID)}
	}
	r.Shifts = append(r.Shifts, shift)
	r.SortShifts()
	return nil
}

// RemoveShift deletes the shift with the given id and reports whether it was
// present.
func (r *Rota) RemoveShift(shiftID string) bool {
	for i, shift := range r.Shifts {
		if shift.ID == shiftID {
			r.Shifts = append(r.Shifts[:i], r.Shifts[i+1:]...)
			return true
		}
	}
	return false
}

// ShiftByID returns the shift with the given id, or nil.
func (r *Rota) ShiftByID(shiftID string) *Shift {
	for _, shift := range r.Shifts {
		if shift.ID == shiftID {
			return shift
		}
	}
	return nil
}

// SortShifts orders shifts by date, then slot start time, then id. Engine
// passes rely on this order for deterministic output.
func (r *Rota) SortShifts() {
	sort.SliceStable(r.Shifts, func(i, j int) bool {
		a, b := r.Shifts[i], r.Shifts[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		aStart, _ := a.Slot.Window()
		bStart, _ := b.Slot.Window()
		if aStart != bStart {
			return aStart < bStart
		}
		return a.ID < b.ID
	})
}

// SortedShifts returns a copy of the shift list in week order, leaving the
// rota untouched.
func (r *Rota) SortedShifts() []*Shift {
	sorted := make([]*Shift, len(r.Shifts))
	copy(sorted, r.Shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		aStart, _ := a.Slot.Window()
		bStart, _ := b.Slot.Window()
		if aStart != bStart {
			return aStart < bStart
		}
		return a.ID < b.ID
	})
	return sorted
}

// ShiftsFor returns the shifts the staff member is assigned to, in week
// order.
func (r *Rota) ShiftsFor(staffID string) []*Shift {
	var shifts []*Shift
	for _, shift := range r.Shifts {
		if shift.HasStaff(staffID) {
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// AssignedDates returns the unique calendar dates the staff member works,
// sorted ascending.
func (r *Rota) AssignedDates(staffID string) []string {
	seen := make(map[string]bool)
	var dates []string
	for _, shift := range r.Shifts {
		if shift.HasStaff(staffID) && !seen[shift.Date] {
			seen[shift.Date] = true
			dates = append(dates, shift.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// AssignedHours sums the staff member's assigned shift lengths for the week.
func (r *Rota) AssignedHours(staffID string) float64 {
	total := 0.0
	for _, shift := range r.Shifts {
		if shift.HasStaff(staffID) {
			total += shift.Hours()
		}
	}
	return total
}
