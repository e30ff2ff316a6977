package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("asn-%d", n)
	}
}

func generationTime() time.Time {
	return time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
}

func staffMember(id, firstName string, roles ...model.Role) model.Staff {
	return model.Staff{
		ID:              id,
		FirstName:       firstName,
		LastName:        "Example",
		Status:          model.StaffActive,
		Roles:           roles,
		ContractedHours: 40,
	}
}

func leaderAndCarerShift(t *testing.T, rota *model.Rota, id, date string, slot model.Slot) *model.Shift {
	t.Helper()
	shift, err := model.NewShift(id, date, slot, 2, []model.RoleCount{
		{Role: model.RoleShiftLeader, Count: 1},
		{Role: model.RoleCareStaff, Count: 1},
	})
	require.NoError(t, err)
	require.NoError(t, rota.AddShift(shift))
	return shift
}

func TestGenerate_FillsSlotsInWeekOrder(t *testing.T) {
	rota := buildTestRota(t, schedulerTestConfig())
	monday := leaderAndCarerShift(t, rota, "shift-mon", "2026-03-02", model.SlotMorning)
	tuesday := leaderAndCarerShift(t, rota, "shift-tue", "2026-03-03", model.SlotMorning)

	staff := []model.Staff{
		staffMember("leader-1", "Lena", model.RoleShiftLeader),
		staffMember("leader-2", "Liam", model.RoleShiftLeader),
		staffMember("carer-1", "Asha", model.RoleCareStaff),
		staffMember("carer-2", "Ben", model.RoleCareStaff),
	}

	outcome, err := Generate(Config{
		Rota:    rota,
		Staff:   staff,
		Options: suggest.DefaultOptions(),
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, outcome.Assigned)
	assert.True(t, outcome.Complete)
	assert.Empty(t, outcome.Unfilled)
	assert.Empty(t, outcome.Violations)

	// Monday fills before Tuesday, leader before carer, ties by staff id.
	require.Len(t, monday.Assignments, 2)
	assert.Equal(t, "asn-1", monday.Assignments[0].ID)
	assert.Equal(t, "leader-1", monday.Assignments[0].StaffID)
	assert.Equal(t, model.RoleShiftLeader, monday.Assignments[0].Role)
	assert.Equal(t, "carer-1", monday.Assignments[1].StaffID)

	// Re-scoring after each commit spreads the load: Monday's picks are
	// behind on fairness by Tuesday.
	require.Len(t, tuesday.Assignments, 2)
	assert.Equal(t, "leader-2", tuesday.Assignments[0].StaffID)
	assert.Equal(t, "carer-2", tuesday.Assignments[1].StaffID)

	for _, a := range monday.Assignments {
		assert.Equal(t, "manager-1", a.AssignedBy)
		assert.Equal(t, generationTime(), a.AssignedAt)
	}
}

func TestGenerate_LeavesUnfillableSlotsOpen(t *testing.T) {
	rota := buildTestRota(t, schedulerTestConfig())
	shift, err := model.NewShift("shift-mon", "2026-03-02", model.SlotMorning, 3, []model.RoleCount{
		{Role: model.RoleShiftLeader, Count: 1},
		{Role: model.RoleDriver, Count: 1},
		{Role: model.RoleCareStaff, Count: 1},
	})
	require.NoError(t, err)
	require.NoError(t, rota.AddShift(shift))

	// Nobody holds Driver.
	staff := []model.Staff{
		staffMember("leader-1", "Lena", model.RoleShiftLeader),
		staffMember("carer-1", "Asha", model.RoleCareStaff),
	}

	outcome, err := Generate(Config{
		Rota:    rota,
		Staff:   staff,
		Options: suggest.DefaultOptions(),
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	})
	require.NoError(t, err)

	// The other roles still fill; the gap is reported, not fatal.
	assert.Equal(t, 2, outcome.Assigned)
	assert.False(t, outcome.Complete)
	require.Len(t, outcome.Unfilled, 1)
	assert.Equal(t, UnfilledSlot{
		ShiftID:   "shift-mon",
		Date:      "2026-03-02",
		Slot:      model.SlotMorning,
		Role:      model.RoleDriver,
		Remaining: 1,
		Reason:    "no available staff hold the Driver role",
	}, outcome.Unfilled[0])

	require.Len(t, outcome.Violations, 1)
	assert.Equal(t, validator.KindCoverageShortfall, outcome.Violations[0].Kind)
	assert.Equal(t, model.RoleDriver, outcome.Violations[0].Role)
}

func TestGenerate_NeverDoubleBooks(t *testing.T) {
	rota := buildTestRota(t, schedulerTestConfig())
	morning := addCarerShift(t, rota, "shift-mon-m", "2026-03-02", model.SlotMorning)
	evening := addCarerShift(t, rota, "shift-mon-e", "2026-03-02", model.SlotEvening)

	// One carer cannot cover shifts that share the handover hour.
	staff := []model.Staff{staffMember("carer-1", "Asha", model.RoleCareStaff)}

	outcome, err := Generate(Config{
		Rota:    rota,
		Staff:   staff,
		Options: suggest.DefaultOptions(),
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Assigned)
	assert.True(t, morning.HasStaff("carer-1"))
	assert.False(t, evening.HasStaff("carer-1"))

	require.Len(t, outcome.Unfilled, 1)
	assert.Equal(t, "shift-mon-e", outcome.Unfilled[0].ShiftID)
	assert.Equal(t, "every available Care Staff would break a scheduling rule", outcome.Unfilled[0].Reason)

	for _, v := range outcome.Violations {
		assert.NotEqual(t, validator.KindDoubleBooking, v.Kind,
			"generation must never create a double-booking")
	}
}

func TestGenerate_HonorsRestAcrossThePriorWeek(t *testing.T) {
	rota := buildTestRota(t, schedulerTestConfig())
	addCarerShift(t, rota, "shift-mon-m", "2026-03-02", model.SlotMorning)

	sundayNight := carerShift(t, "prior-sun-n", "2026-03-01", model.SlotNight)
	assignCarer(t, sundayNight, "carer-1")
	prior := &validator.PriorWeek{Shifts: []*model.Shift{sundayNight}}

	cfg := Config{
		Rota:    rota,
		Staff:   []model.Staff{staffMember("carer-1", "Asha", model.RoleCareStaff)},
		Prior:   prior,
		Options: suggest.DefaultOptions(),
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	}

	// carer-1 walks out of the Sunday night handover as the morning starts.
	outcome, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Assigned)
	require.Len(t, outcome.Unfilled, 1)

	// A rested second carer takes the slot instead.
	rested := buildTestRota(t, schedulerTestConfig())
	monday := addCarerShift(t, rested, "shift-mon-m", "2026-03-02", model.SlotMorning)
	cfg.Rota = rested
	cfg.Staff = append(cfg.Staff, staffMember("carer-2", "Ben", model.RoleCareStaff))

	outcome, err = Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Assigned)
	assert.True(t, monday.HasStaff("carer-2"))
}

func TestGenerate_RespectsTheWeeklyHoursCap(t *testing.T) {
	cfg := schedulerTestConfig()
	cfg.MaxWeeklyHours = 16
	rota := buildTestRota(t, cfg)
	addCarerShift(t, rota, "shift-mon", "2026-03-02", model.SlotMorning)
	addCarerShift(t, rota, "shift-tue", "2026-03-03", model.SlotMorning)
	addCarerShift(t, rota, "shift-wed", "2026-03-04", model.SlotMorning)

	// Overtime past contracted hours is allowed; the weekly cap still holds.
	opts := suggest.DefaultOptions()
	opts.AllowOvertimeStaff = true

	outcome, err := Generate(Config{
		Rota:    rota,
		Staff:   []model.Staff{staffMember("carer-1", "Asha", model.RoleCareStaff)},
		Options: opts,
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Assigned)
	require.Len(t, outcome.Unfilled, 1)
	assert.Equal(t, "shift-wed", outcome.Unfilled[0].ShiftID)
}

func TestGenerate_SchedulesAroundManualAssignments(t *testing.T) {
	rota := buildTestRota(t, schedulerTestConfig())
	shift, err := model.NewShift("shift-mon", "2026-03-02", model.SlotMorning, 2, []model.RoleCount{
		{Role: model.RoleCareStaff, Count: 2},
	})
	require.NoError(t, err)
	require.NoError(t, rota.AddShift(shift))

	manual, err := shift.Assign("asn-manual", "carer-1", model.RoleCareStaff, "manager-2", generationTime().Add(-time.Hour))
	require.NoError(t, err)

	outcome, err := Generate(Config{
		Rota: rota,
		Staff: []model.Staff{
			staffMember("carer-1", "Asha", model.RoleCareStaff),
			staffMember("carer-2", "Ben", model.RoleCareStaff),
		},
		Options: suggest.DefaultOptions(),
		Actor:   "manager-1",
		Now:     generationTime(),
		NewID:   sequentialIDs(),
	})
	require.NoError(t, err)

	// Only the open half of the shift was generated.
	assert.Equal(t, 1, outcome.Assigned)
	assert.True(t, outcome.Complete)
	require.Len(t, shift.Assignments, 2)
	assert.Equal(t, *manual, shift.Assignments[0], "the manual assignment is untouched")
	assert.Equal(t, "manager-2", shift.Assignments[0].AssignedBy)
	assert.Equal(t, "carer-2", shift.Assignments[1].StaffID)
}

func TestGenerate_RequiresARota(t *testing.T) {
	_, err := Generate(Config{})
	assert.Error(t, err)
}
