package admin

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"
)

// Repository persists the admin login history document
type Repository interface {
	LoginHistory(ctx context.Context) ([]LoginRecord, error)
	// AppendLogin adds a record and trims the history to limit entries,
	// newest first.
	AppendLogin(ctx context.Context, record LoginRecord, limit int) error
	DeleteLoginHistory(ctx context.Context) error
}

type repository struct {
	store storage.DocumentStore
	log   *logger.Logger
}

func NewRepository(store storage.DocumentStore, log *logger.Logger) Repository {
	return &repository{store: store, log: log}
}

func (r *repository) LoginHistory(ctx context.Context) ([]LoginRecord, error) {
	var history []LoginRecord

	err := r.store.Get(ctx, storage.KeyLoginHistory, &history)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []LoginRecord{}, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			r.log.LogCorruptDocument(ctx, storage.KeyLoginHistory, err)
			return []LoginRecord{}, nil
		}
		return nil, fmt.Errorf("load login history: %w", err)
	}

	if history == nil {
		history = []LoginRecord{}
	}
	return history, nil
}

func (r *repository) AppendLogin(ctx context.Context, record LoginRecord, limit int) error {
	history, err := r.LoginHistory(ctx)
	if err != nil {
		return err
	}

	history = append([]LoginRecord{record}, history...)
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}

	if err := r.store.Put(ctx, storage.KeyLoginHistory, history); err != nil {
		return fmt.Errorf("save login history: %w", err)
	}
	return nil
}

func (r *repository) DeleteLoginHistory(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeyLoginHistory); err != nil {
		return fmt.Errorf("delete login history: %w", err)
	}
	return nil
}
