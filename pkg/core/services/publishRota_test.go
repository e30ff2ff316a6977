package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// staffedRota builds a fully staffed, cleanly validating draft week.
func staffedRota(t *testing.T) *model.Rota {
	t.Helper()
	rota, shift := draftRota()
	_, err := shift.Assign("a-1", "s-alice", model.RoleShiftLeader, "manager-1", rota.CreatedAt)
	require.NoError(t, err)
	_, err = shift.Assign("a-2", "s-bob", model.RoleCareStaff, "manager-1", rota.CreatedAt)
	require.NoError(t, err)
	return rota
}

func TestPublishRota_CleanWeekPublishes(t *testing.T) {
	rota := staffedRota(t)
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}
	notifier := &mockNotifier{}

	result, err := PublishRota(context.Background(), store, directory, notifier, testConfig(), zap.NewNop(),
		"manager-1", testWeek, false)
	require.NoError(t, err)

	assert.True(t, result.Published)
	assert.Empty(t, result.Violations)
	assert.Equal(t, model.RotaPublished, rota.Status)
	assert.Equal(t, "manager-1", rota.PublishedBy)
	require.NotNil(t, rota.PublishedAt)
	assert.Equal(t, []string{"publishRota"}, notifier.operations())
}

func TestPublishRota_BlockedByCoverageErrors(t *testing.T) {
	rota, _ := draftRota()
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	result, err := PublishRota(context.Background(), store, directory, nil, testConfig(), zap.NewNop(),
		"manager-1", testWeek, false)
	require.NoError(t, err)

	assert.False(t, result.Published)
	assert.Equal(t, model.RotaDraft, rota.Status)
	assert.Empty(t, store.replaced)

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, validator.KindCoverageShortfall, result.Violations[0].Kind)
}

func TestPublishRota_ForcePublishesDespiteErrors(t *testing.T) {
	rota, _ := draftRota()
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	result, err := PublishRota(context.Background(), store, directory, nil, testConfig(), zap.NewNop(),
		"manager-1", testWeek, true)
	require.NoError(t, err)

	assert.True(t, result.Published)
	assert.NotEmpty(t, result.Violations, "the overridden findings still come back")
	assert.Equal(t, model.RotaPublished, rota.Status)
	assert.Len(t, store.replaced, 1)
}

func TestPublishRota_AlreadyPublished(t *testing.T) {
	rota := staffedRota(t)
	rota.Status = model.RotaPublished
	store := newMockStore(rota)
	directory := &mockDirectory{staff: testStaff()}

	_, err := PublishRota(context.Background(), store, directory, nil, testConfig(), zap.NewNop(),
		"manager-1", testWeek, false)
	assert.ErrorIs(t, err, model.ErrRotaPublished)
}

func TestUnpublishRota_ReturnsToDraft(t *testing.T) {
	rota := staffedRota(t)
	rota.Status = model.RotaPublished
	rota.PublishedBy = "manager-1"
	now := rota.CreatedAt
	rota.PublishedAt = &now
	store := newMockStore(rota)

	updated, err := UnpublishRota(context.Background(), store, nil, zap.NewNop(), "manager-2", testWeek)
	require.NoError(t, err)

	assert.Equal(t, model.RotaDraft, updated.Status)
	assert.Empty(t, updated.PublishedBy)
	assert.Nil(t, updated.PublishedAt)
	assert.Equal(t, "manager-2", updated.UpdatedBy)
}

func TestUnpublishRota_RequiresPublished(t *testing.T) {
	rota, _ := draftRota()
	store := newMockStore(rota)

	_, err := UnpublishRota(context.Background(), store, nil, zap.NewNop(), "manager-1", testWeek)
	assert.ErrorIs(t, err, model.ErrRotaNotPublished)
}

func TestDeleteRota_SoftDeletesDraft(t *testing.T) {
	rota, _ := draftRota()
	store := newMockStore(rota)
	notifier := &mockNotifier{}

	err := DeleteRota(context.Background(), store, notifier, zap.NewNop(), "manager-1", testWeek)
	require.NoError(t, err)

	assert.Equal(t, []string{rota.ID}, store.deleted)
	assert.True(t, rota.IsDeleted())
	assert.Equal(t, "manager-1", rota.DeletedBy)
	assert.Equal(t, []string{"deleteRota"}, notifier.operations())

	// The week no longer resolves.
	_, err = store.GetByWeekStart(context.Background(), testWeek)
	assert.ErrorIs(t, err, model.ErrRotaNotFound)
}

func TestDeleteRota_RefusesPublished(t *testing.T) {
	rota := staffedRota(t)
	rota.Status = model.RotaPublished
	store := newMockStore(rota)

	err := DeleteRota(context.Background(), store, nil, zap.NewNop(), "manager-1", testWeek)
	assert.ErrorIs(t, err, model.ErrRotaPublished)
	assert.Empty(t, store.deleted)
}
