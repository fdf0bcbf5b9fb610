package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/admin"
	"seatwise/internal/reservations"
	"seatwise/internal/settings"
	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"
)

var (
	// ErrConfirmationRequired guards imports: a restore overwrites the
	// whole system state and must be explicitly confirmed.
	ErrConfirmationRequired = errors.New("import must be confirmed")
	ErrInvalidSnapshot      = errors.New("invalid snapshot")
)

type Service interface {
	Export(ctx context.Context) (*Snapshot, error)
	ExportSettings(ctx context.Context) (*SettingsSnapshot, error)
	// Import validates the snapshot and replaces settings, reservations
	// and login history in full. Nothing is written unless the whole
	// snapshot parses and validates.
	Import(ctx context.Context, raw json.RawMessage, confirm bool) (*Snapshot, error)
}

type service struct {
	store        storage.DocumentStore
	settings     settings.Service
	reservations reservations.Service
	admin        admin.Repository
	log          *logger.Logger
}

func NewService(store storage.DocumentStore, settingsService settings.Service, reservationService reservations.Service, adminRepo admin.Repository, log *logger.Logger) Service {
	return &service{
		store:        store,
		settings:     settingsService,
		reservations: reservationService,
		admin:        adminRepo,
		log:          log,
	}
}

func (s *service) Export(ctx context.Context) (*Snapshot, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.admin.LoginHistory(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Settings:     cfg,
		Reservations: list,
		LoginHistory: history,
		Timestamp:    time.Now().UTC(),
		Version:      SnapshotVersion,
	}, nil
}

func (s *service) ExportSettings(ctx context.Context) (*SettingsSnapshot, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &SettingsSnapshot{
		Settings:  cfg,
		Timestamp: time.Now().UTC(),
		Version:   SnapshotVersion,
	}, nil
}

func (s *service) Import(ctx context.Context, raw json.RawMessage, confirm bool) (*Snapshot, error) {
	if !confirm {
		return nil, ErrConfirmationRequired
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if snapshot.Settings == nil {
		return nil, fmt.Errorf("%w: missing settings", ErrInvalidSnapshot)
	}
	if snapshot.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidSnapshot)
	}

	snapshot.Settings.Normalize()
	if snapshot.Reservations == nil {
		snapshot.Reservations = []reservations.Reservation{}
	}
	for _, r := range snapshot.Reservations {
		if r.Number == "" || r.Date == "" {
			return nil, fmt.Errorf("%w: reservation without number or date", ErrInvalidSnapshot)
		}
		if !r.Status.Valid() {
			return nil, fmt.Errorf("%w: reservation %s has unknown status %q", ErrInvalidSnapshot, r.Number, r.Status)
		}
	}
	if snapshot.LoginHistory == nil {
		snapshot.LoginHistory = []admin.LoginRecord{}
	}

	// Validation passed; overwrite every document
	if err := s.store.Put(ctx, storage.KeySettings, snapshot.Settings); err != nil {
		return nil, fmt.Errorf("restore settings: %w", err)
	}
	if err := s.store.Put(ctx, storage.KeyReservations, snapshot.Reservations); err != nil {
		return nil, fmt.Errorf("restore reservations: %w", err)
	}
	if err := s.store.Put(ctx, storage.KeyLoginHistory, snapshot.LoginHistory); err != nil {
		return nil, fmt.Errorf("restore login history: %w", err)
	}

	s.log.InfoWithContext(ctx, "snapshot imported", map[string]interface{}{
		"reservations":  len(snapshot.Reservations),
		"login_records": len(snapshot.LoginHistory),
		"version":       snapshot.Version,
	})

	return &snapshot, nil
}
