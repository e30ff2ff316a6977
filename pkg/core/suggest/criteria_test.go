package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

func suggestTestConfig() model.RotaConfig {
	return model.RotaConfig{
		MaxConsecutiveDays: 5,
		MinRestHours:       11,
		MaxWeeklyHours:     48,
	}
}

func suggestTestRota(t *testing.T) *model.Rota {
	t.Helper()
	rota, err := model.NewRota("rota-1", "Maple House", "2026-03-02", suggestTestConfig())
	require.NoError(t, err)
	return rota
}

func addSuggestShift(t *testing.T, rota *model.Rota, id, date string, slot model.Slot) *model.Shift {
	t.Helper()
	shift, err := model.NewShift(id, date, slot, 2, []model.RoleCount{
		{Role: model.RoleShiftLeader, Count: 1},
		{Role: model.RoleCareStaff, Count: 1},
	})
	require.NoError(t, err)
	require.NoError(t, rota.AddShift(shift))
	return shift
}

func assignTo(t *testing.T, shift *model.Shift, staffID string, role model.Role) {
	t.Helper()
	_, err := shift.Assign("asn-"+shift.ID+"-"+staffID, staffID, role, "manager-1", time.Now())
	require.NoError(t, err)
}

func TestRoleMatchCriterion_GatesOnRole(t *testing.T) {
	rota := suggestTestRota(t)
	shift := addSuggestShift(t, rota, "shift-1", "2026-03-03", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: shift, Role: model.RoleCareStaff}

	criterion := NewRoleMatchCriterion(WeightRoleMatch)
	assert.True(t, criterion.Gate())

	carer := model.Staff{ID: "carer-1", Roles: []model.Role{model.RoleCareStaff}}
	assert.Equal(t, 1.0, criterion.Score(ctx, carer))

	driver := model.Staff{ID: "driver-1", Roles: []model.Role{model.RoleDriver}}
	assert.Equal(t, 0.0, criterion.Score(ctx, driver))

	reason, ok := criterion.Reason(ctx, carer, 1.0)
	assert.True(t, ok)
	assert.Equal(t, "holds the Care Staff role", reason)
}

func TestPreferenceCriterion_Scores(t *testing.T) {
	rota := suggestTestRota(t)
	morning := addSuggestShift(t, rota, "shift-1", "2026-03-03", model.SlotMorning)
	night := addSuggestShift(t, rota, "shift-2", "2026-03-03", model.SlotNight)
	criterion := NewPreferenceCriterion(WeightPreference)

	tests := []struct {
		name     string
		shift    *model.Shift
		prefs    model.Preferences
		expected float64
	}{
		{
			name:     "no preferences recorded is neutral",
			shift:    morning,
			prefs:    model.Preferences{},
			expected: 0.5,
		},
		{
			name:  "preferred slot and site",
			shift: morning,
			prefs: model.Preferences{
				PreferredSlots: []model.Slot{model.SlotMorning},
				PreferredSites: []string{"Maple House"},
			},
			expected: 1.0,
		},
		{
			name:  "dispreferred slot still counts the neutral site",
			shift: morning,
			prefs: model.Preferences{
				PreferredSlots: []model.Slot{model.SlotEvening},
			},
			expected: 0.25,
		},
		{
			name:     "nights-only worker on a night shift",
			shift:    night,
			prefs:    model.Preferences{NightsOnly: true},
			expected: 0.75,
		},
		{
			name:     "nights-only worker on a day shift",
			shift:    morning,
			prefs:    model.Preferences{NightsOnly: true},
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Rota: rota, Shift: tt.shift, Role: model.RoleCareStaff}
			candidate := model.Staff{ID: "carer-1", Preferences: tt.prefs}
			assert.Equal(t, tt.expected, criterion.Score(ctx, candidate))
		})
	}
}

func TestPreferenceCriterion_ReasonOnlyWhenMaterial(t *testing.T) {
	rota := suggestTestRota(t)
	shift := addSuggestShift(t, rota, "shift-1", "2026-03-03", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: shift, Role: model.RoleCareStaff}
	criterion := NewPreferenceCriterion(WeightPreference)

	matched := model.Staff{ID: "carer-1", Preferences: model.Preferences{
		PreferredSlots: []model.Slot{model.SlotMorning},
		PreferredSites: []string{"Maple House"},
	}}
	reason, ok := criterion.Reason(ctx, matched, criterion.Score(ctx, matched))
	assert.True(t, ok)
	assert.Equal(t, "prefers morning shifts and prefers the Maple House site", reason)

	neutral := model.Staff{ID: "carer-2"}
	_, ok = criterion.Reason(ctx, neutral, criterion.Score(ctx, neutral))
	assert.False(t, ok, "a neutral score should not surface a reason")
}

func workMondayToWednesday(t *testing.T, rota *model.Rota, staffID string) {
	t.Helper()
	for _, day := range []struct{ id, date string }{
		{"shift-mon", "2026-03-02"},
		{"shift-tue", "2026-03-03"},
		{"shift-wed", "2026-03-04"},
	} {
		shift := addSuggestShift(t, rota, day.id, day.date, model.SlotMorning)
		assignTo(t, shift, staffID, model.RoleCareStaff)
	}
}

func TestFatigueCriterion_PenalizesRuns(t *testing.T) {
	rota := suggestTestRota(t)
	workMondayToWednesday(t, rota, "carer-1")
	thursday := addSuggestShift(t, rota, "shift-thu", "2026-03-05", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: thursday, Role: model.RoleCareStaff}
	criterion := NewFatigueCriterion(WeightFatigue)

	// Three days into a five-day limit: -3/5.
	tired := model.Staff{ID: "carer-1"}
	assert.InDelta(t, -0.6, criterion.Score(ctx, tired), 1e-9)

	reason, ok := criterion.Reason(ctx, tired, criterion.Score(ctx, tired))
	assert.True(t, ok)
	assert.Equal(t, "already worked 3 consecutive days before 2026-03-05", reason)

	fresh := model.Staff{ID: "carer-2"}
	assert.Equal(t, 0.0, criterion.Score(ctx, fresh))
	_, ok = criterion.Reason(ctx, fresh, 0)
	assert.False(t, ok)
}

func TestFatigueCriterion_PersonalLimitDeepensThePenalty(t *testing.T) {
	rota := suggestTestRota(t)
	workMondayToWednesday(t, rota, "carer-1")
	thursday := addSuggestShift(t, rota, "shift-thu", "2026-03-05", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: thursday, Role: model.RoleCareStaff}
	criterion := NewFatigueCriterion(WeightFatigue)

	// The same three-day run saturates a personal limit of three.
	limited := model.Staff{ID: "carer-1", Preferences: model.Preferences{MaxConsecutiveDays: 3}}
	assert.Equal(t, -1.0, criterion.Score(ctx, limited))
}

func TestFairnessCriterion_RewardsSpareHours(t *testing.T) {
	rota := suggestTestRota(t)
	monday := addSuggestShift(t, rota, "shift-mon", "2026-03-02", model.SlotMorning)
	assignTo(t, monday, "carer-1", model.RoleCareStaff)
	tuesday := addSuggestShift(t, rota, "shift-tue", "2026-03-03", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: tuesday, Role: model.RoleCareStaff}
	criterion := NewFairnessCriterion(WeightFairness)

	// One 8h morning against 24 contracted hours: 1 - 8/24.
	partLoaded := model.Staff{ID: "carer-1", ContractedHours: 24}
	assert.InDelta(t, 2.0/3.0, criterion.Score(ctx, partLoaded), 1e-9)

	unloaded := model.Staff{ID: "carer-2", ContractedHours: 24}
	assert.Equal(t, 1.0, criterion.Score(ctx, unloaded))

	noContract := model.Staff{ID: "bank-1"}
	assert.Equal(t, 0.5, criterion.Score(ctx, noContract))

	fullyLoaded := model.Staff{ID: "carer-1", ContractedHours: 8}
	assert.Equal(t, 0.0, criterion.Score(ctx, fullyLoaded))

	reason, ok := criterion.Reason(ctx, unloaded, 1.0)
	assert.True(t, ok)
	assert.Equal(t, "under contracted hours this week (0.0 of 24.0 assigned)", reason)
}

func TestPerformanceCriterion_BlendsMetrics(t *testing.T) {
	rota := suggestTestRota(t)
	shift := addSuggestShift(t, rota, "shift-1", "2026-03-03", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: shift, Role: model.RoleCareStaff}
	criterion := NewPerformanceCriterion(WeightPerformance)

	// 0.4*0.9 + 0.4*0.8 + 0.1*0.7 + 0.1*0.6 = 0.81
	candidate := model.Staff{ID: "carer-1", Metrics: model.PerformanceMetrics{
		AttendanceRate:  0.9,
		PunctualityRate: 0.8,
		CompletionRate:  0.7,
		FeedbackScore:   0.6,
	}}
	assert.InDelta(t, 0.81, criterion.Score(ctx, candidate), 1e-9)

	reason, ok := criterion.Reason(ctx, candidate, 0.81)
	assert.True(t, ok)
	assert.Equal(t, "strong attendance and punctuality record", reason)

	middling := model.Staff{ID: "carer-2", Metrics: model.PerformanceMetrics{
		AttendanceRate:  0.5,
		PunctualityRate: 0.5,
		CompletionRate:  0.5,
		FeedbackScore:   0.5,
	}}
	assert.Equal(t, 0.5, criterion.Score(ctx, middling))
	_, ok = criterion.Reason(ctx, middling, 0.5)
	assert.False(t, ok)
}

func TestOvertimeCriterion_GatesOverCommittedStaff(t *testing.T) {
	rota := suggestTestRota(t)
	monday := addSuggestShift(t, rota, "shift-mon", "2026-03-02", model.SlotMorning)
	assignTo(t, monday, "carer-1", model.RoleCareStaff)
	tuesday := addSuggestShift(t, rota, "shift-tue", "2026-03-03", model.SlotMorning)
	ctx := Context{Rota: rota, Shift: tuesday, Role: model.RoleCareStaff}
	criterion := NewOvertimeCriterion()

	assert.True(t, criterion.Gate())
	assert.Equal(t, 0.0, criterion.Weight(), "the overtime gate should not shift the weighted sum")

	// 8h assigned plus another 8h morning would pass 8 contracted hours.
	atLimit := model.Staff{ID: "carer-1", ContractedHours: 8}
	assert.Equal(t, 0.0, criterion.Score(ctx, atLimit))

	// Flexible hours and missing contracts bypass the gate.
	flexible := model.Staff{ID: "carer-1", ContractedHours: 8, Preferences: model.Preferences{FlexibleHours: true}}
	assert.Equal(t, 1.0, criterion.Score(ctx, flexible))

	bank := model.Staff{ID: "bank-1"}
	assert.Equal(t, 1.0, criterion.Score(ctx, bank))

	withRoom := model.Staff{ID: "carer-2", ContractedHours: 24}
	assert.Equal(t, 1.0, criterion.Score(ctx, withRoom))
}
