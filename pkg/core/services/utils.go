package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// loadRota fetches the live rota for a week. Soft-deleted rotas stay hidden
// from every lifecycle operation.
func loadRota(ctx context.Context, store RotaStore, weekStart string) (*model.Rota, error) {
	if _, err := model.ParseDate(weekStart); err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("invalid week start %q", weekStart)}
	}
	rota, err := store.GetByWeekStart(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load rota for week %s: %w", weekStart, err)
	}
	if rota.IsDeleted() {
		return nil, model.ErrRotaNotFound
	}
	return rota, nil
}

// stamp records who changed the rota and bumps the document version ahead of
// a Replace.
func stamp(rota *model.Rota, actor string, now time.Time) {
	rota.UpdatedBy = actor
	rota.UpdatedAt = now
	rota.Version++
}

// loadPriorWeek fetches the preceding week's shifts so rest and
// consecutive-day rules hold across the week boundary. A missing prior week
// is normal and yields nil.
func loadPriorWeek(ctx context.Context, store RotaStore, weekStart string) (*validator.PriorWeek, error) {
	prior, err := store.GetByWeekStart(ctx, model.AddDays(weekStart, -7))
	if errors.Is(err, model.ErrRotaNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load prior week: %w", err)
	}
	if prior.IsDeleted() {
		return nil, nil
	}
	return &validator.PriorWeek{Shifts: prior.Shifts}, nil
}
