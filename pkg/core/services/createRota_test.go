package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

func TestCreateRota_LaysOutTemplates(t *testing.T) {
	cfg := testConfig()
	cfg.ShiftTemplates = []config.ShiftTemplate{
		{
			RRule: "FREQ=DAILY",
			Slot:  "Morning",
			Requirements: []config.RoleRequirement{
				{Role: "Shift Leader", Count: 1},
				{Role: "Care Staff", Count: 2},
			},
		},
		{
			RRule: "FREQ=WEEKLY;BYDAY=SA",
			Slot:  "Night",
			Requirements: []config.RoleRequirement{
				{Role: "Care Staff", Count: 1},
			},
		},
	}

	store := newMockStore()
	notifier := &mockNotifier{}

	result, err := CreateRota(context.Background(), store, notifier, cfg, zap.NewNop(), "manager-1", testWeek)
	require.NoError(t, err)
	require.NotNil(t, result)

	rota := result.Rota
	assert.Equal(t, model.RotaDraft, rota.Status)
	assert.Equal(t, testWeek, rota.WeekStart)
	assert.Equal(t, "2026-01-11", rota.WeekEnd)
	assert.Equal(t, "manager-1", rota.CreatedBy)
	assert.Equal(t, "Maple House", rota.Site)

	// Policy comes from the scheduling config.
	assert.Equal(t, 7, rota.Config.MaxConsecutiveDays)
	assert.Equal(t, 8.0, rota.Config.MinRestHours)

	// Daily template yields 7 shifts, the Saturday night template one more.
	assert.Equal(t, 8, result.ShiftsAdded)
	require.Len(t, rota.Shifts, 8)

	morning := rota.Shifts[0]
	assert.Equal(t, testWeek, morning.Date)
	assert.Equal(t, model.SlotMorning, morning.Slot)
	assert.Equal(t, 3, morning.Required)
	assert.Equal(t, model.StatusUnfilled, morning.Status())

	// Every shift is stored and the sink heard about the creation.
	stored, err := store.GetByWeekStart(context.Background(), testWeek)
	require.NoError(t, err)
	assert.Equal(t, rota.ID, stored.ID)
	assert.Equal(t, []string{"createRota"}, notifier.operations())
}

func TestCreateRota_RejectsWrongWeekday(t *testing.T) {
	store := newMockStore()

	_, err := CreateRota(context.Background(), store, nil, testConfig(), zap.NewNop(), "manager-1", "2026-01-06")
	require.Error(t, err)

	var cfgErr *model.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "Monday")
	assert.Empty(t, store.rotas)
}

func TestCreateRota_RejectsDuplicateWeek(t *testing.T) {
	existing, _ := draftRota()
	store := newMockStore(existing)

	_, err := CreateRota(context.Background(), store, nil, testConfig(), zap.NewNop(), "manager-1", testWeek)
	assert.ErrorIs(t, err, model.ErrRotaExists)
}

func TestCreateRota_DeletedWeekCanBeRecreated(t *testing.T) {
	existing, _ := draftRota()
	store := newMockStore(existing)
	require.NoError(t, DeleteRota(context.Background(), store, nil, zap.NewNop(), "manager-1", testWeek))

	result, err := CreateRota(context.Background(), store, nil, testConfig(), zap.NewNop(), "manager-1", testWeek)
	require.NoError(t, err)
	assert.NotEqual(t, existing.ID, result.Rota.ID)
}
