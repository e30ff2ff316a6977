package e2e

import (
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/scheduler"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// Type aliases to avoid prefixing everything with the package name.
type (
	Rota               = model.Rota
	RotaConfig         = model.RotaConfig
	Shift              = model.Shift
	Staff              = model.Staff
	Role               = model.Role
	Slot               = model.Slot
	RoleCount          = model.RoleCount
	Preferences        = model.Preferences
	PerformanceMetrics = model.PerformanceMetrics
	Config             = scheduler.Config
	Outcome            = scheduler.Outcome
	UnfilledSlot       = scheduler.UnfilledSlot
	Options            = suggest.Options
	Violation          = validator.Violation
)

// Function and constant aliases
var (
	NewRota        = model.NewRota
	NewShift       = model.NewShift
	Generate       = scheduler.Generate
	DefaultOptions = suggest.DefaultOptions
	Validate       = validator.Validate
)

const (
	RoleShiftLeader    = model.RoleShiftLeader
	RoleDriver         = model.RoleDriver
	RoleCareStaff      = model.RoleCareStaff
	SlotMorning        = model.SlotMorning
	SlotEvening        = model.SlotEvening
	SlotNight          = model.SlotNight
	StatusFullyStaffed = model.StatusFullyStaffed
)
