package reservations

import (
	"context"
	"testing"
	"time"

	"seatwise/internal/notifications"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := NewRepository(store, logger.GetDefault())
	return NewService(repo, notifications.NewNoopProducer(), logger.GetDefault())
}

func commitReq(date string, units ...string) CommitRequest {
	return CommitRequest{
		Date:      date,
		Units:     units,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Total:     "free",
	}
}

func TestCommitCreatesPendingReservation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Commit(ctx, commitReq("2026-07-01", "A1", "A2"))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, r.Status)
	assert.Regexp(t, `^RSV-\d{8}$`, r.Number)
	assert.Equal(t, []string{"A1", "A2"}, r.Units)
	assert.Nil(t, r.ConfirmedAt)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommitRequiresDateAndUnits(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Commit(ctx, commitReq("", "A1"))
	assert.Error(t, err)

	_, err = svc.Commit(ctx, commitReq("2026-07-01"))
	assert.Error(t, err)
}

func TestNewNumberFormat(t *testing.T) {
	at := time.UnixMilli(1750000000000)
	assert.Equal(t, "RSV-00000000", NewNumber(at))

	at = time.UnixMilli(1750012345678)
	assert.Equal(t, "RSV-12345678", NewNumber(at))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusPending))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))
}

func TestUpdateStatusConfirmStampsTimestamp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Commit(ctx, commitReq("2026-07-01", "A1"))
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, r.Number, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	require.NotNil(t, updated.ConfirmedAt)

	// A confirmed reservation can no longer change status
	_, err = svc.UpdateStatus(ctx, r.Number, StatusCancelled)
	assert.Error(t, err)
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), "RSV-00000000", StatusConfirmed)
	assert.Error(t, err)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Commit(ctx, commitReq("2026-07-01", "A1"))
	require.NoError(t, err)
	second, err := svc.Commit(ctx, commitReq("2026-07-02", "B1"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first.Number))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.Number, list[0].Number)
}

func TestReservedUnitsForDateUnionsAllStatuses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Commit(ctx, commitReq("2026-07-01", "A1", "A2"))
	require.NoError(t, err)
	_, err = svc.Commit(ctx, commitReq("2026-07-01", "B1"))
	require.NoError(t, err)
	_, err = svc.Commit(ctx, commitReq("2026-07-02", "C1"))
	require.NoError(t, err)

	// Cancelled reservations still hold their units
	_, err = svc.UpdateStatus(ctx, r.Number, StatusCancelled)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)

	occupied := ReservedUnitsForDate(list, "2026-07-01")
	assert.Equal(t, map[string]bool{"A1": true, "A2": true, "B1": true}, occupied)
}

func TestStatsAggregation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r1, err := svc.Commit(ctx, CommitRequest{
		Date: "2026-07-01", Units: []string{"A1"}, FirstName: "A", LastName: "B",
		Email: "a@example.com", Total: "€25.00",
	})
	require.NoError(t, err)
	_, err = svc.Commit(ctx, CommitRequest{
		Date: "2026-07-02", Units: []string{"B1", "B2"}, FirstName: "C", LastName: "D",
		Email: "c@example.com", Total: "free",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, r1.Number, StatusConfirmed)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 25.0, stats.Revenue)
	assert.Equal(t, 3, stats.UnitsBooked)
	assert.Equal(t, 2, stats.UpcomingDays)
}

func TestCorruptReservationListYieldsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewRepository(store, logger.GetDefault())

	store.PutRaw(storage.KeyReservations, []byte(`{"not":"a list"`))

	list, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
