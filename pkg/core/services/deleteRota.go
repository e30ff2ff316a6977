package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// DeleteRota soft-deletes a week. The document stays in the store for audit;
// it just stops appearing in lookups, and the week becomes free for a fresh
// rota. Published weeks must be unpublished first.
func DeleteRota(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	logger *zap.Logger,
	actor string,
	weekStart string,
) error {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return err
	}
	if rota.IsPublished() {
		return model.ErrRotaPublished
	}

	if err := store.SoftDelete(ctx, rota.ID, actor, time.Now()); err != nil {
		return fmt.Errorf("failed to delete rota: %w", err)
	}

	logger.Info("Rota deleted", zap.String("rota_id", rota.ID), zap.String("week_start", weekStart))
	notify(ctx, notifier, Event{
		Operation: "deleteRota",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    "soft deleted",
	})
	return nil
}
