package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// CreateRotaResult reports a freshly created week.
type CreateRotaResult struct {
	Rota        *model.Rota
	ShiftsAdded int
}

// CreateRota creates a draft rota for the week starting at weekStart and lays
// out the configured recurring shift templates across it, so a manager starts
// from a ready skeleton rather than an empty shell. The week must start on
// the configured weekday, and only one live rota may exist per week.
func CreateRota(
	ctx context.Context,
	store RotaStore,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	actor string,
	weekStart string,
) (*CreateRotaResult, error) {
	logger.Debug("Creating rota", zap.String("week_start", weekStart), zap.String("actor", actor))

	start, err := model.ParseDate(weekStart)
	if err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("invalid week start %q", weekStart)}
	}
	if start.Weekday() != cfg.WeekStart() {
		return nil, &model.ConfigurationError{
			Reason: fmt.Sprintf("week must start on a %s, %s is a %s", cfg.WeekStart(), weekStart, start.Weekday()),
		}
	}

	if existing, err := store.GetByWeekStart(ctx, weekStart); err == nil && !existing.IsDeleted() {
		return nil, model.ErrRotaExists
	} else if err != nil && !errors.Is(err, model.ErrRotaNotFound) {
		return nil, fmt.Errorf("failed to check for existing rota: %w", err)
	}

	rota, err := model.NewRota(uuid.NewString(), cfg.Site, weekStart, model.RotaConfig{
		MaxConsecutiveDays: cfg.Scheduling.MaxConsecutiveDays,
		MinRestHours:       cfg.Scheduling.MinRestHours,
		MaxWeeklyHours:     cfg.Scheduling.MaxWeeklyHours,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rota.CreatedBy = actor
	rota.CreatedAt = now
	rota.UpdatedBy = actor
	rota.UpdatedAt = now

	added, err := expandTemplates(rota, cfg.ShiftTemplates, start)
	if err != nil {
		return nil, err
	}

	if err := store.Create(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "createRota", WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("failed to create rota: %w", err)
	}

	logger.Info("Rota created",
		zap.String("rota_id", rota.ID),
		zap.String("week_start", weekStart),
		zap.Int("shifts", added))
	notify(ctx, notifier, Event{
		Operation: "createRota",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    fmt.Sprintf("%d shifts laid out from templates", added),
	})

	return &CreateRotaResult{Rota: rota, ShiftsAdded: added}, nil
}

// expandTemplates lays each recurring shift template out across the rota
// week and returns how many shifts it added.
func expandTemplates(rota *model.Rota, templates []config.ShiftTemplate, weekStart time.Time) (int, error) {
	added := 0
	for i, template := range templates {
		rule, err := rrule.StrToRRule(template.RRule)
		if err != nil {
			return 0, &model.ConfigurationError{Reason: fmt.Sprintf("invalid rrule in template %d: %v", i, err)}
		}
		rule.DTStart(weekStart)

		requirements := make([]model.RoleCount, 0, len(template.Requirements))
		total := 0
		for _, req := range template.Requirements {
			requirements = append(requirements, model.RoleCount{Role: model.Role(req.Role), Count: req.Count})
			total += req.Count
		}

		// The rota week is weekStart plus six days, inclusive.
		weekEnd := weekStart.AddDate(0, 0, 6)
		for _, occurrence := range rule.Between(weekStart, weekEnd, true) {
			date := occurrence.Format(model.DateFormat)
			shift, err := model.NewShift(uuid.NewString(), date, model.Slot(template.Slot), total, requirements)
			if err != nil {
				return 0, err
			}
			if err := rota.AddShift(shift); err != nil {
				return 0, err
			}
			added++
		}
	}
	return added, nil
}
