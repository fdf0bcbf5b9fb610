package reservations

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/shared/storage"
	"seatwise/pkg/logger"
)

type Repository interface {
	// All returns every stored reservation. A missing document yields an
	// empty list; a corrupt one is logged and also yields an empty list.
	All(ctx context.Context) ([]Reservation, error)
	Append(ctx context.Context, r Reservation) error
	ReplaceAll(ctx context.Context, list []Reservation) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	store storage.DocumentStore
	log   *logger.Logger
}

func NewRepository(store storage.DocumentStore, log *logger.Logger) Repository {
	return &repository{store: store, log: log}
}

func (r *repository) All(ctx context.Context) ([]Reservation, error) {
	var list []Reservation

	err := r.store.Get(ctx, storage.KeyReservations, &list)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []Reservation{}, nil
		}
		if errors.Is(err, storage.ErrCorrupt) {
			r.log.LogCorruptDocument(ctx, storage.KeyReservations, err)
			return []Reservation{}, nil
		}
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	if list == nil {
		list = []Reservation{}
	}
	return list, nil
}

func (r *repository) Append(ctx context.Context, reservation Reservation) error {
	list, err := r.All(ctx)
	if err != nil {
		return err
	}

	list = append(list, reservation)
	return r.ReplaceAll(ctx, list)
}

func (r *repository) ReplaceAll(ctx context.Context, list []Reservation) error {
	if list == nil {
		list = []Reservation{}
	}
	if err := r.store.Put(ctx, storage.KeyReservations, list); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

func (r *repository) DeleteAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.KeyReservations); err != nil {
		return fmt.Errorf("delete reservations: %w", err)
	}
	return nil
}
