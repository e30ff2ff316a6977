package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
)

func TestViewRota_BuildsWeekRows(t *testing.T) {
	rota, shift := draftRota()
	_, err := shift.Assign("a-1", "s-alice", model.RoleShiftLeader, "manager-1", rota.CreatedAt)
	require.NoError(t, err)
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	view, err := ViewRota(context.Background(), store, directory, testConfig(), zap.NewNop(), testWeek)
	require.NoError(t, err)

	assert.Equal(t, rota.ID, view.RotaID)
	assert.Equal(t, "Maple House", view.Site)
	assert.Equal(t, model.RotaDraft, view.Status)
	require.Len(t, view.Rows, 1)

	row := view.Rows[0]
	assert.Equal(t, model.SlotMorning, row.Slot)
	assert.Equal(t, "07:00 - 15:00", row.Window)
	assert.Equal(t, model.StatusPartiallyStaffed, row.Status)
	require.Len(t, row.Assignments, 1)
	assert.Equal(t, "Alice Amos", row.Assignments[0].Name)
	assert.Equal(t, []string{"1 x Care Staff"}, row.Missing)
}

func TestViewRota_UnknownStaffFallsBackToID(t *testing.T) {
	rota, shift := draftRota()
	_, err := shift.Assign("a-1", "s-gone", model.RoleCareStaff, "manager-1", rota.CreatedAt)
	require.NoError(t, err)
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	view, err := ViewRota(context.Background(), store, directory, testConfig(), zap.NewNop(), testWeek)
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
	require.Len(t, view.Rows[0].Assignments, 1)
	assert.Equal(t, "s-gone", view.Rows[0].Assignments[0].Name)
}

func TestSuggestStaff_PicksFirstOpenRole(t *testing.T) {
	rota, shift := draftRota()
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	suggestion, err := SuggestStaff(context.Background(), store, directory, testConfig(), zap.NewNop(),
		testWeek, shift.ID, "", suggest.DefaultOptions())
	require.NoError(t, err)

	// Shift Leader is the scarcer role, so it opens the ranking.
	assert.Equal(t, model.RoleShiftLeader, suggestion.Role)
	require.NotEmpty(t, suggestion.Candidates)
	for _, candidate := range suggestion.Candidates {
		assert.Contains(t, []string{"s-alice", "s-dave"}, candidate.StaffID)
	}
}

func TestSuggestStaff_RejectsUnrequiredRole(t *testing.T) {
	rota, shift := draftRota()
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	_, err := SuggestStaff(context.Background(), store, directory, testConfig(), zap.NewNop(),
		testWeek, shift.ID, model.RoleDriver, suggest.DefaultOptions())
	require.Error(t, err)

	var cfgErr *model.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
