package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// AssignResult reports a committed manual assignment along with the
// validation findings for the rota it produced. Manual overrides are flagged,
// never blocked: a qualification mismatch or rest breach comes back as a
// violation on a successful assignment.
type AssignResult struct {
	Shift      *model.Shift
	Assignment *model.Assignment
	Violations []validator.Violation
}

// AssignStaff puts a staff member on a shift in the given role. Cover changes
// happen after publication in the real world, so single assignments are
// allowed on both draft and published rotas.
func AssignStaff(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	actor string,
	weekStart string,
	shiftID string,
	staffID string,
	role model.Role,
) (*AssignResult, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	shift := rota.ShiftByID(shiftID)
	if shift == nil {
		return nil, model.ErrShiftNotFound
	}

	staff, err := directory.ListStaff(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff directory: %w", err)
	}
	staffByID := model.StaffByID(staff)
	if _, ok := staffByID[staffID]; !ok {
		return nil, model.ErrStaffNotFound
	}

	// Read the prior week before touching the rota so a failed read cannot
	// surface as an error after the assignment has already been persisted.
	prior, err := loadPriorWeek(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}

	assignment, err := shift.Assign(uuid.NewString(), staffID, role, actor, time.Now())
	if err != nil {
		notify(ctx, notifier, Event{Operation: "assign", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, err
	}

	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "assign", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("failed to save rota: %w", err)
	}

	violations := validator.Validate(validator.Input{Rota: rota, Staff: staffByID, Prior: prior})

	logger.Info("Staff assigned",
		zap.String("rota_id", rota.ID),
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID),
		zap.String("role", string(role)),
		zap.Int("violations", len(violations)))
	notify(ctx, notifier, Event{
		Operation: "assign",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("%s assigned to shift %s as %s", staffID, shiftID, role),
	})

	return &AssignResult{Shift: shift, Assignment: assignment, Violations: violations}, nil
}

// UnassignStaff takes a staff member off a shift. Removing someone who is not
// on the shift is a no-op, so repeated calls are idempotent; the document is
// only rewritten when something actually changed. Allowed on both draft and
// published rotas.
func UnassignStaff(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	logger *zap.Logger,
	actor string,
	weekStart string,
	shiftID string,
	staffID string,
) (removed bool, err error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return false, err
	}
	shift := rota.ShiftByID(shiftID)
	if shift == nil {
		return false, model.ErrShiftNotFound
	}

	if !shift.Unassign(staffID) {
		logger.Debug("Unassign was a no-op",
			zap.String("shift_id", shiftID),
			zap.String("staff_id", staffID))
		return false, nil
	}

	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "unassign", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return false, fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Staff unassigned",
		zap.String("rota_id", rota.ID),
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID))
	notify(ctx, notifier, Event{
		Operation: "unassign",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("%s removed from shift %s", staffID, shiftID),
	})
	return true, nil
}
