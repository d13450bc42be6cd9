package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
)

type memoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore creates a TokenRevocationStore local to the process
func NewMemoryRevocationStore() users.TokenRevocationStore {
	return &memoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// Drop entries whose tokens expired anyway
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	if expiresAt.After(now) {
		s.revoked[tokenID] = expiresAt
	}
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.revoked[tokenID]
	return ok && exp.After(s.now()), nil
}
