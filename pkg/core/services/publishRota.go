package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// PublishResult reports a publish attempt. Violations always come back so
// the caller can show what a forced publish overrode, or why an unforced one
// was refused.
type PublishResult struct {
	Rota       *model.Rota
	Published  bool
	Violations []validator.Violation
}

// PublishRota moves a draft week to published. The week is validated first:
// error-severity findings block the publish unless force is set, while
// warnings (rest and consecutive-day breaches a manager may stand behind)
// never block on their own.
func PublishRota(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	actor string,
	weekStart string,
	force bool,
) (*PublishResult, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	if rota.IsPublished() {
		return nil, model.ErrRotaPublished
	}

	violations, err := ValidateRota(ctx, store, directory, cfg, logger, weekStart)
	if err != nil {
		return nil, err
	}

	blocking := 0
	for _, violation := range violations {
		if violation.Severity == validator.SeverityError {
			blocking++
		}
	}
	if blocking > 0 && !force {
		logger.Warn("Publish refused",
			zap.String("rota_id", rota.ID),
			zap.Int("blocking_violations", blocking))
		return &PublishResult{Rota: rota, Published: false, Violations: violations}, nil
	}

	now := time.Now()
	rota.Status = model.RotaPublished
	rota.PublishedBy = actor
	rota.PublishedAt = &now
	stamp(rota, actor, now)
	if err := store.Replace(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "publishRota", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("failed to save published rota: %w", err)
	}

	logger.Info("Rota published",
		zap.String("rota_id", rota.ID),
		zap.String("week_start", weekStart),
		zap.Bool("forced", force && blocking > 0))
	notify(ctx, notifier, Event{
		Operation: "publishRota",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("published with %d warnings", len(violations)-blocking),
	})

	return &PublishResult{Rota: rota, Published: true, Violations: violations}, nil
}

// UnpublishRota returns a published week to draft so bulk edits and
// regeneration open up again.
func UnpublishRota(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	logger *zap.Logger,
	actor string,
	weekStart string,
) (*model.Rota, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	if !rota.IsPublished() {
		return nil, model.ErrRotaNotPublished
	}

	rota.Status = model.RotaDraft
	rota.PublishedBy = ""
	rota.PublishedAt = nil
	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		return nil, fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Rota unpublished", zap.String("rota_id", rota.ID), zap.String("week_start", weekStart))
	notify(ctx, notifier, Event{
		Operation: "unpublishRota",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    "returned to draft",
	})
	return rota, nil
}
