package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// AssignmentRow is one staffed slot in a week view.
type AssignmentRow struct {
	StaffID string
	Name    string
	Role    model.Role
}

// ShiftRow is one shift in a week view: its window, staffing state, who is
// on it, and what is still missing.
type ShiftRow struct {
	ShiftID     string
	Date        string
	Slot        model.Slot
	Window      string
	Status      model.Status
	Assignments []AssignmentRow
	Missing     []string
}

// RotaView is the formatted week a manager reads: header plus one row per
// shift in week order.
type RotaView struct {
	RotaID    string
	Site      string
	WeekStart string
	WeekEnd   string
	Status    model.RotaStatus
	Version   int64
	Rows      []ShiftRow
}

// ViewRota builds the week view for a rota. Staff ids resolve to names via
// the directory; an id the directory no longer knows falls back to the raw
// id rather than failing the whole view.
func ViewRota(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) (*RotaView, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	staff, err := directory.ListStaff(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff directory: %w", err)
	}
	staffByID := model.StaffByID(staff)

	view := &RotaView{
		RotaID:    rota.ID,
		Site:      rota.Site,
		WeekStart: rota.WeekStart,
		WeekEnd:   rota.WeekEnd,
		Status:    rota.Status,
		Version:   rota.Version,
	}

	for _, shift := range rota.SortedShifts() {
		row := ShiftRow{
			ShiftID: shift.ID,
			Date:    shift.Date,
			Slot:    shift.Slot,
			Window:  fmt.Sprintf("%s - %s", shift.StartTime().Format("15:04"), shift.EndTime().Format("15:04")),
			Status:  shift.Status(),
		}
		for _, assignment := range shift.Assignments {
			name := assignment.StaffID
			if member, ok := staffByID[assignment.StaffID]; ok {
				name = member.FullName()
			}
			row.Assignments = append(row.Assignments, AssignmentRow{
				StaffID: assignment.StaffID,
				Name:    name,
				Role:    assignment.Role,
			})
		}
		for _, role := range model.FillOrder() {
			if remaining := shift.RemainingForRole(role); remaining > 0 {
				row.Missing = append(row.Missing, fmt.Sprintf("%d x %s", remaining, role))
			}
		}
		view.Rows = append(view.Rows, row)
	}

	logger.Debug("Rota view built", zap.String("rota_id", rota.ID), zap.Int("rows", len(view.Rows)))
	return view, nil
}
