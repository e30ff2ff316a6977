package model

// Staff activity states as recorded in the staff directory.
const (
	StaffActive   = "Active"
	StaffInactive = "Inactive"
)

// Staff is a member of the care team as read from the staff directory.
// Records are read-only to the rota engine; the staff management system owns
// them.
type Staff struct {
	ID              string             `json:"id"`
	FirstName       string             `json:"firstName"`
	LastName        string             `json:"lastName"`
	Status          string             `json:"status"`
	Roles           []Role             `json:"roles"`
	ContractedHours float64            `json:"contractedHours"`
	Preferences     Preferences        `json:"preferences"`
	Metrics         PerformanceMetrics `json:"metrics"`
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// StaffByID indexes a staff list by identifier.
func StaffByID(staff []Staff) map[string]Staff {
	byID := make(map[string]Staff, len(staff))
	for _, s := range staff {
		byID[s.ID] = s
	}
	return byID
}

func (s Staff) IsActive() bool {
	return s.Status == StaffActive
}

// CanWork reports whether the staff member holds the given role.
func (s Staff) CanWork(role Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Preferences capture how a staff member would like to be scheduled. They
// steer scoring and generation; manual assignments may override them.
type Preferences struct {
	PreferredSlots     []Slot   `json:"preferredSlots,omitempty"`
	PreferredSites     []string `json:"preferredSites,omitempty"`
	PreferredTeammates []string `json:"preferredTeammates,omitempty"`
	UnavailableDates   []string `json:"unavailableDates,omitempty"`
	FlexibleHours      bool     `json:"flexibleHours,omitempty"`
	NightsOnly         bool     `json:"nightsOnly,omitempty"`
	MaxConsecutiveDays int      `json:"maxConsecutiveDays,omitempty"`
	MinRestHours       float64  `json:"minRestHours,omitempty"`
}

// UnavailableOn reports whether the staff member has marked the date off.
func (p Preferences) UnavailableOn(date string) bool {
	for _, d := range p.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}

func (p Preferences) PrefersSlot(slot Slot) bool {
	for _, s := range p.PreferredSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (p Preferences) PrefersSite(site string) bool {
	for _, s := range p.PreferredSites {
		if s == site {
			return true
		}
	}
	return false
}

// PerformanceMetrics are scoring inputs maintained by the staff management
// system. All rates are normalized to [0, 1].
type PerformanceMetrics struct {
	AttendanceRate  float64 `json:"attendanceRate"`
	PunctualityRate float64 `json:"punctualityRate"`
	CompletionRate  float64 `json:"completionRate"`
	FeedbackScore   float64 `json:"feedbackScore"`
}
