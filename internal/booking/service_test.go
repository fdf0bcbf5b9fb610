package booking

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"seatwise/internal/notifications"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/cache"
	"seatwise/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-process cache.Service for tests
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

type fixture struct {
	booking  Service
	settings settings.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.GetDefault()
	store := storage.NewMemoryStore()

	settingsService := settings.NewService(settings.NewRepository(store, log))
	reservationService := reservations.NewService(
		reservations.NewRepository(store, log),
		notifications.NewNoopProducer(),
		log,
	)
	sessions := NewSessionStore(newMemoryCache(), 30*time.Minute)

	svc := NewService(settingsService, reservationService, sessions, log).(*service)
	// Pin "today" and the booking window so availability is deterministic
	svc.now = func() time.Time {
		return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	}
	_, err := settingsService.UpdateSection(context.Background(), settings.SectionDates,
		json.RawMessage(`{"bookingStart": "2026-06-01", "bookingEnd": "2026-12-31"}`))
	require.NoError(t, err)

	return &fixture{booking: svc, settings: settingsService}
}

// openDate is a Wednesday inside the default 60-day window from the
// pinned test clock.
const openDate = "2026-07-01"

func TestSelectDateRejectsUnavailableDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Saturday is outside the default Monday-Friday weekday filter
	_, err := f.booking.SelectDate(ctx, "sess-1", "2026-07-04")
	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestSelectDateRejectsWhenSystemInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settings.UpdateSection(ctx, settings.SectionGeneral, json.RawMessage(`{"systemActive": false}`))
	require.NoError(t, err)

	_, err = f.booking.SelectDate(ctx, "sess-1", openDate)
	assert.ErrorIs(t, err, ErrSystemInactive)
}

func TestToggleAndSummaryRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)

	_, err = f.booking.Toggle(ctx, "sess-1", "A1")
	require.NoError(t, err)
	selection, err := f.booking.Toggle(ctx, "sess-1", "A2")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, selection.Units)

	summary, err := f.booking.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, openDate, summary.Date)
	assert.True(t, summary.Total.Free, "default settings describe a free event")
	assert.Equal(t, "free", summary.Display)
}

func TestToggleRejectsUnitOccupiedByOtherSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-1", "A1")
	require.NoError(t, err)
	_, err = f.booking.Confirm(ctx, "sess-1", ConfirmRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = f.booking.SelectDate(ctx, "sess-2", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-2", "A1")
	assert.ErrorIs(t, err, ErrUnitOccupied)
}

func TestConfirmCreatesReservationAndClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-1", "B3")
	require.NoError(t, err)

	reservation, err := f.booking.Confirm(ctx, "sess-1", ConfirmRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusPending, reservation.Status)
	assert.Equal(t, []string{"B3"}, reservation.Units)
	assert.Equal(t, "free", reservation.Total)

	// The session selection is gone after checkout
	summary, err := f.booking.Summary(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, summary.Units)
	assert.Empty(t, summary.Date)
}

func TestConfirmRequiresMinimumSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)

	_, err = f.booking.Confirm(ctx, "sess-1", ConfirmRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	assert.ErrorIs(t, err, ErrTooFewUnits)
}

func TestConfirmEnforcesDailyReservationCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settings.UpdateSection(ctx, settings.SectionGeneral, json.RawMessage(`{"maxDailyReservations": 1}`))
	require.NoError(t, err)

	_, err = f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-1", "A1")
	require.NoError(t, err)
	_, err = f.booking.Confirm(ctx, "sess-1", ConfirmRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)

	_, err = f.booking.SelectDate(ctx, "sess-2", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-2", "B1")
	require.NoError(t, err)
	_, err = f.booking.Confirm(ctx, "sess-2", ConfirmRequest{
		FirstName: "Alan", LastName: "Turing", Email: "alan@example.com",
	})
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestUnitsMarksOccupiedAndSelected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.booking.SelectDate(ctx, "sess-1", openDate)
	require.NoError(t, err)
	_, err = f.booking.Toggle(ctx, "sess-1", "A2")
	require.NoError(t, err)

	views, err := f.booking.Units(ctx, "sess-1", openDate)
	require.NoError(t, err)
	require.Len(t, views, 80) // default 8 rows x 10 seats

	byID := make(map[string]UnitView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID["A2"].Selected)
	assert.False(t, byID["A2"].Occupied)
	assert.False(t, byID["A1"].Selected)
}

func TestCalendarListsOnlyAvailableDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	from, _ := time.Parse("2006-01-02", "2026-07-01")
	to, _ := time.Parse("2006-01-02", "2026-07-07")

	dates, err := f.booking.Calendar(ctx, from, to)
	require.NoError(t, err)

	// Default weekday filter drops Saturday and Sunday (July 4/5)
	assert.Equal(t, []string{"2026-07-01", "2026-07-02", "2026-07-03", "2026-07-06", "2026-07-07"}, dates)
}
