package backup

import (
	"context"
	"encoding/json"
	"testing"

	"seatwise/internal/admin"
	"seatwise/internal/notifications"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	backup       Service
	settings     settings.Service
	reservations reservations.Service
	store        *storage.MemoryStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := logger.GetDefault()
	store := storage.NewMemoryStore()

	settingsService := settings.NewService(settings.NewRepository(store, log))
	reservationService := reservations.NewService(
		reservations.NewRepository(store, log),
		notifications.NewNoopProducer(),
		log,
	)
	adminRepo := admin.NewRepository(store, log)

	return &env{
		backup:       NewService(store, settingsService, reservationService, adminRepo, log),
		settings:     settingsService,
		reservations: reservationService,
		store:        store,
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.settings.UpdateSection(ctx, settings.SectionGeneral, json.RawMessage(`{"eventName":"Gala Night"}`))
	require.NoError(t, err)
	committed, err := e.reservations.Commit(ctx, reservations.CommitRequest{
		Date: "2026-07-01", Units: []string{"A1"},
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Total: "free",
	})
	require.NoError(t, err)

	snapshot, err := e.backup.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.Equal(t, "Gala Night", snapshot.Settings.General.EventName)
	require.Len(t, snapshot.Reservations, 1)

	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	// Restore into a fresh system
	restored := newEnv(t)
	_, err = restored.backup.Import(ctx, raw, true)
	require.NoError(t, err)

	cfg, err := restored.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Gala Night", cfg.General.EventName)

	list, err := restored.reservations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, committed.Number, list[0].Number)
}

func TestImportRequiresConfirmation(t *testing.T) {
	e := newEnv(t)

	_, err := e.backup.Import(context.Background(), json.RawMessage(`{}`), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
}

func TestImportRejectsInvalidSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.backup.Import(ctx, json.RawMessage(`{not json`), true)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = e.backup.Import(ctx, json.RawMessage(`{"version":"1.0"}`), true)
	assert.ErrorIs(t, err, ErrInvalidSnapshot, "missing settings")

	bad := `{"version":"1.0","settings":{},"reservations":[{"reservationNumber":"","date":""}]}`
	_, err = e.backup.Import(ctx, json.RawMessage(bad), true)
	assert.ErrorIs(t, err, ErrInvalidSnapshot, "reservation without identity")
}

func TestImportDoesNotPartiallyApply(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.settings.UpdateSection(ctx, settings.SectionGeneral, json.RawMessage(`{"eventName":"Keep Me"}`))
	require.NoError(t, err)

	bad := `{"version":"1.0","settings":{},"reservations":[{"reservationNumber":"RSV-1","date":"2026-07-01","status":"bogus"}]}`
	_, err = e.backup.Import(ctx, json.RawMessage(bad), true)
	require.ErrorIs(t, err, ErrInvalidSnapshot)

	cfg, err := e.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Keep Me", cfg.General.EventName)
}
