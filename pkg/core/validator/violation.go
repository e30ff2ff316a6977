package validator

import "github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"

// Kind enumerates the rule a violation breaks. Kinds are fixed identifiers,
// not free text, so callers can switch on them.
type Kind string

const (
	KindCoverageShortfall     Kind = "coverage-shortfall"
	KindQualificationMismatch Kind = "qualification-mismatch"
	KindRestViolation         Kind = "rest-violation"
	KindConsecutiveDay        Kind = "consecutive-day-violation"
	KindDoubleBooking         Kind = "double-booking"
)

// Severity grades a violation. Warnings flag breaches a manager may
// legitimately override; errors mean the rota is not safely staffed.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Severity returns the grade for the kind. Coverage, qualification, and
// double-booking breaches are errors; rest and consecutive-day breaches are
// warnings.
func (k Kind) Severity() Severity {
	switch k {
	case KindRestViolation, KindConsecutiveDay:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Violation is one finding from a rota validation pass.
type Violation struct {
	Kind           Kind
	Severity       Severity
	ShiftID        string
	ShiftDate      string
	StaffID        string
	Role           model.Role
	RelatedShiftID string
	Description    string
}
