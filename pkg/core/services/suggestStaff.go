package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
)

// SuggestStaff ranks the care team for one open role slot on a shift. With
// no role given it picks the first still-unfilled role in scheduling
// priority order. Read-only: nothing is assigned.
func SuggestStaff(
	ctx context.Context,
	store RotaStore,
	directory StaffDirectory,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
	shiftID string,
	role model.Role,
	opts suggest.Options,
) (*suggest.Suggestion, error) {
	rota, err := loadRota(ctx, store, weekStart)
	if err != nil {
		return nil, err
	}
	shift := rota.ShiftByID(shiftID)
	if shift == nil {
		return nil, model.ErrShiftNotFound
	}

	if role == "" {
		for _, candidate := range model.FillOrder() {
			if shift.RemainingForRole(candidate) > 0 {
				role = candidate
				break
			}
		}
		if role == "" {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("shift %s is fully staffed", shiftID)}
		}
	}
	if !shift.RequiresRole(role) {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("shift %s does not require the %s role", shiftID, role)}
	}

	staff, err := directory.ListStaff(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff directory: %w", err)
	}

	suggestion := suggest.Rank(suggest.Request{
		Rota:    rota,
		Shift:   shift,
		Role:    role,
		Staff:   staff,
		Options: opts,
	})

	logger.Debug("Suggestion built",
		zap.String("shift_id", shiftID),
		zap.String("role", string(role)),
		zap.Int("candidates", len(suggestion.Candidates)),
		zap.Float64("confidence", suggestion.Confidence))

	return suggestion, nil
}
