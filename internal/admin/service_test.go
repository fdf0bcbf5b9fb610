package admin

import (
	"context"
	"testing"
	"time"

	"seatwise/internal/notifications"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{
			Password:          "changeme",
			JWTSecret:         "test-secret",
			SessionExpiry:     2 * time.Hour,
			LoginHistoryLimit: 3,
		},
	}
}

func newTestService(t *testing.T) (Service, *storage.MemoryStore) {
	t.Helper()
	log := logger.GetDefault()
	store := storage.NewMemoryStore()

	settingsService := settings.NewService(settings.NewRepository(store, log))
	reservationService := reservations.NewService(
		reservations.NewRepository(store, log),
		notifications.NewNoopProducer(),
		log,
	)

	svc, err := NewService(NewRepository(store, log), settingsService, reservationService, testConfig(), log)
	require.NoError(t, err)
	return svc, store
}

func TestLoginIssuesTwoHourToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, LoginAttempt{Password: "changeme", IP: "127.0.0.1"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	token, err := jwt.Parse(session.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	iat := time.Unix(int64(claims["iat"].(float64)), 0)
	assert.Equal(t, 2*time.Hour, exp.Sub(iat))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginAttempt{Password: "wrong", IP: "127.0.0.1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginHistoryRecordsAttemptsNewestFirstAndTrims(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _ = svc.Login(ctx, LoginAttempt{Password: "wrong", IP: "10.0.0.1"})
	_, err := svc.Login(ctx, LoginAttempt{Password: "changeme", IP: "10.0.0.2"})
	require.NoError(t, err)
	_, _ = svc.Login(ctx, LoginAttempt{Password: "wrong", IP: "10.0.0.3"})
	_, _ = svc.Login(ctx, LoginAttempt{Password: "wrong", IP: "10.0.0.4"})

	history, err := svc.LoginHistory(ctx)
	require.NoError(t, err)

	// Limit is 3: the oldest attempt fell off
	require.Len(t, history, 3)
	assert.Equal(t, "10.0.0.4", history[0].IP)
	assert.False(t, history[0].Success)
	assert.Equal(t, "10.0.0.2", history[2].IP)
	assert.True(t, history[2].Success)
}

func TestDashboardAggregates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginAttempt{Password: "changeme", IP: "127.0.0.1"})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.True(t, dashboard.SystemActive)
	assert.Equal(t, settings.ModeIndividualSeats, dashboard.LayoutMode)
	assert.NotNil(t, dashboard.LastLogin)
}

func TestResetAllWipesEverything(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, _ = svc.Login(ctx, LoginAttempt{Password: "changeme", IP: "127.0.0.1"})
	require.NoError(t, svc.ResetAll(ctx))

	history, err := svc.LoginHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	var list []reservations.Reservation
	err = store.Get(ctx, storage.KeyReservations, &list)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
