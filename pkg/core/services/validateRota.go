package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// ValidateRota runs the full rule set over a week and returns every finding.
// The previous week's rota, when one exists, joins the pass so rest and
// consecutive-day rules hold across the Sunday/Monday boundary. An empty
// result means the week is cleanly staffed.
func ValidateRota(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) ([]validator.Violation, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	staff, err := directory.ListStaff(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff directory: %w", err)
	}
	prior, err := loadPriorWeek(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}

	violations := validator.Validate(validator.Input{
		Rota:  rota,
		Staff: model.StaffByID(staff),
		Prior: prior,
	})

	logger.Debug("Rota validated",
		zap.String("rota_id", rota.ID),
		zap.Int("violations", len(violations)))
	return violations, nil
}
