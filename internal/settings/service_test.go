package settings

import (
	"context"
	"encoding/json"
	"testing"

	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := NewRepository(store, logger.GetDefault())
	return NewService(repo), store
}

func TestLoadSynthesizesAndPersistsDefaults(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	settings, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.True(t, settings.General.SystemActive)
	assert.Equal(t, ModeIndividualSeats, settings.Seats.Mode)
	assert.Equal(t, 8, settings.Seats.MaxSeatsPerBooking)
	assert.True(t, settings.Prices.FreeEvent)

	// The synthesized document must now exist in the store
	var stored Settings
	err = store.Get(ctx, storage.KeySettings, &stored)
	require.NoError(t, err)
	assert.Equal(t, settings.General.EventName, stored.General.EventName)
}

func TestLoadCorruptDocumentFallsBackToDefaults(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	store.PutRaw(storage.KeySettings, []byte("{not valid json"))

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, settings.Seats.Rows)
	assert.True(t, settings.General.SystemActive)
}

func TestUpdateSectionMergesOverStoredValues(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"rows": 12, "mode": "grouped-slots"}`)
	updated, err := svc.UpdateSection(ctx, SectionSeats, payload)
	require.NoError(t, err)

	assert.Equal(t, 12, updated.Seats.Rows)
	assert.Equal(t, ModeGroupedSlots, updated.Seats.Mode)
	// Untouched fields keep their defaults
	assert.Equal(t, 10, updated.Seats.SeatsPerRow)
	assert.Equal(t, "STAGE", updated.Seats.StageName)
}

func TestUpdateSectionUnknownSection(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateSection(context.Background(), "nonsense", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestUpdateSectionStampsLastUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	updated, err := svc.UpdateSection(ctx, SectionGeneral, json.RawMessage(`{"eventName":"Spring Gala"}`))
	require.NoError(t, err)

	assert.Equal(t, "Spring Gala", updated.General.EventName)
	assert.NotEmpty(t, updated.System.LastUpdate)
}

func TestResetRestoresDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateSection(ctx, SectionSeats, json.RawMessage(`{"rows": 20}`))
	require.NoError(t, err)

	settings, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, settings.Seats.Rows)

	reloaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.Seats.Rows)
}

func TestNormalizeRepairsUnusableValues(t *testing.T) {
	s := Defaults()
	s.Seats.Mode = "theatre"
	s.Seats.Rows = 0
	s.Seats.MinSeatsPerBooking = 0
	s.Seats.MaxSeatsPerBooking = -1

	s.Normalize()

	assert.Equal(t, ModeIndividualSeats, s.Seats.Mode)
	assert.Equal(t, 1, s.Seats.Rows)
	assert.Equal(t, 1, s.Seats.MinSeatsPerBooking)
	assert.Equal(t, 1, s.Seats.MaxSeatsPerBooking)
}

func TestPublicViewExcludesSystemSection(t *testing.T) {
	s := Defaults()
	public := s.Public()

	data, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "smtpHost")
	assert.Contains(t, string(data), "eventName")
}
