package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seatwise/pkg/cache"
)

const sessionKeyPrefix = "session:selection:"

// SessionStore keeps each visitor's in-progress selection in the cache
// with a sliding expiry. An expired or unknown session reads as empty.
type SessionStore struct {
	cache cache.Service
	ttl   time.Duration
}

func NewSessionStore(cacheService cache.Service, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: cacheService, ttl: ttl}
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) (*Selection, error) {
	var selection Selection

	err := s.cache.Get(ctx, sessionKeyPrefix+sessionID, &selection)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return &Selection{}, nil
		}
		return nil, fmt.Errorf("load selection: %w", err)
	}

	return &selection, nil
}

// Save persists the selection and renews its expiry
func (s *SessionStore) Save(ctx context.Context, sessionID string, selection *Selection) error {
	if err := s.cache.Set(ctx, sessionKeyPrefix+sessionID, selection, s.ttl); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}
