package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/scheduler"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
)

// GenerateResult reports an auto-generation run: the saved rota and what the
// generator managed, including every slot it had to leave open.
type GenerateResult struct {
	Rota    *model.Rota
	Outcome *scheduler.Outcome
}

// GenerateRota auto-fills the week's open slots. Draft rotas only; existing
// manual assignments are kept and scheduled around. A week the generator
// cannot fully staff still saves and returns normally, with the gaps itemized
// in the outcome.
func GenerateRota(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	actor string,
	weekStart string,
	opts suggest.Options,
) (*GenerateResult, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	if rota.IsPublished() {
		return nil, model.ErrRotaPublished
	}

	staff, err := directory.ListStaff(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff directory: %w", err)
	}
	prior, err := loadPriorWeek(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}

	logger.Debug("Generating rota",
		zap.String("rota_id", rota.ID),
		zap.Int("shifts", len(rota.Shifts)),
		zap.Int("staff_pool", len(staff)),
		zap.Bool("prior_week", prior != nil))

	outcome, err := scheduler.Generate(scheduler.Config{
		Rota:    rota,
		Staff:   staff,
		Prior:   prior,
		Options: opts,
		Actor:   actor,
		Now:     time.Now(),
	})
	if err != nil {
		notify(ctx, notifier, Event{Operation: "generateRota", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	stamp(rota, actor, time.Now())
	if err := store.Replace(ctx, rota); err != nil {
		notify(ctx, notifier, Event{Operation: "generateRota", RotaID: rota.ID, WeekStart: weekStart, Actor: actor, Err: err})
		return nil, fmt.Errorf("failed to save generated rota: %w", err)
	}

	detail := fmt.Sprintf("%d assignments committed", outcome.Assigned)
	if !outcome.Complete {
		detail = fmt.Sprintf("%d assignments committed, %d slots left unfilled", outcome.Assigned, len(outcome.Unfilled))
	}
	logger.Info("Rota generated",
		zap.String("rota_id", rota.ID),
		zap.Int("assigned", outcome.Assigned),
		zap.Int("unfilled", len(outcome.Unfilled)),
		zap.Bool("complete", outcome.Complete))
	notify(ctx, notifier, Event{
		Operation: "generateRota",
		RotaID:    rota.ID,
		WeekStart: weekStart,
		Actor:     actor,
		Detail:    detail,
	})

	return &GenerateResult{Rota: rota, Outcome: outcome}, nil
}
