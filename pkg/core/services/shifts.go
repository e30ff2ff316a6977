package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// AddShift adds a shift to a draft rota. Published rotas must be unpublished
// before their shift layout changes.
func AddShift(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	logger *zap.Logger,
	actor string,
	weekStart string,
	date string,
	slot model.Slot,
	requirements []model.RoleCount,
) (*model.Shift, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	if rota.IsPublished() {
		return nil, model.ErrRotaPublished
	}

	total := 0
	for _, req := range requirements {
		total += req.Count
	}
	shift, err := model.NewShift(uuid.NewString(), date, slot, total, requirements)
	if err != nil {
		return nil, err
	}
	if err := rota.AddShift(shift); err != nil {
		return nil, err
	}

	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "addShift", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Shift added",
		zap.String("rota_id", rota.ID),
		zap.String("shift_id", shift.ID),
		zap.String("date", date),
		zap.String("slot", string(slot)))
	notify(ctx, notifier, Event{
		Operation: "addShift",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("%s %s shift needing %d staff", date, slot, total),
	})

	return shift, nil
}

// RemoveShift removes a shift from a draft rota, assignments and all.
func RemoveShift(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	logger *zap.Logger,
	actor string,
	weekStart string,
	shiftID string,
) error {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return err
	}
	if rota.IsPublished() {
		return model.ErrRotaPublished
	}
	if !rota.RemoveShift(shiftID) {
		return model.ErrShiftNotFound
	}

	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Shift removed", zap.String("rota_id", rota.ID), zap.String("shift_id", shiftID))
	notify(ctx, notifier, Event{
		Operation: "removeShift",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("shift %s removed", shiftID),
	})
	return nil
}
