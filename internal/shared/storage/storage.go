package storage

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/shared/config"
)

// Fixed document keys. The whole persisted state of the system lives in a
// handful of named JSON documents, each read and rewritten in full.
const (
	KeySettings     = "settings"
	KeyReservations = "reservations"
	KeyLoginHistory = "login_history"
)

// ErrNotFound is returned when a document key has never been written
var ErrNotFound = errors.New("document not found")

// ErrCorrupt wraps decode failures so callers can fall back to defaults
// instead of failing hard on a damaged document.
var ErrCorrupt = errors.New("document corrupt")

// DocumentStore persists whole JSON documents under fixed keys. There is
// no partial update: callers read a document, mutate it, and write it back.
type DocumentStore interface {
	// Get unmarshals the document at key into dest. Returns ErrNotFound
	// when the key has never been written.
	Get(ctx context.Context, key string, dest interface{}) error

	// Put marshals value and overwrites the document at key.
	Put(ctx context.Context, key string, value interface{}) error

	// Delete removes the document at key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Open creates the document store selected by configuration
func Open(cfg *config.Config) (DocumentStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return NewRedisStore(cfg.Redis)
	case "postgres":
		return NewPostgresStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
