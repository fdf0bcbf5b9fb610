package settings

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"
)

type Repository interface {
	// Load returns the stored settings document. A missing document is
	// replaced by defaults which are persisted immediately; a corrupt
	// document falls back to defaults without overwriting the stored bytes.
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	Delete(ctx context.Context) error
}

type repository struct {
	store storage.DocumentStore
	log   *logger.Logger
}

func NewRepository(store storage.DocumentStore, log *logger.Logger) Repository {
	return &repository{store: store, log: log}
}

func (r *repository) Load(ctx context.Context) (*Settings, error) {
	// Unmarshal over a defaults document so sections absent from an
	// older stored version keep their default values.
	s := Defaults()

	err := r.store.Get(ctx, storage.KeySettings, s)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if saveErr := r.store.Put(ctx, storage.KeySettings, s); saveErr != nil {
				return nil, fmt.Errorf("persist default settings: %w", saveErr)
			}
			return s, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			r.log.LogCorruptDocument(ctx, storage.KeySettings, err)
			return Defaults(), nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}

	s.Normalize()
	return s, nil
}

func (r *repository) Save(ctx context.Context, s *Settings) error {
	s.Normalize()
	if err := r.store.Put(ctx, storage.KeySettings, s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeySettings); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
